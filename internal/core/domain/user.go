package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// StartingBalance is the LimCoin amount credited to every new account.
const StartingBalance = 1000

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already exists")
var ErrEmailExists = errors.New("email already exists")
var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrCollaboratorUnavailable = errors.New("collaborator service unavailable")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// User is the account aggregate owned by this service.
//
// Pokemons and Bids belong to the collaborator services; aggregation reads
// attach them transiently and they are never persisted with the user record.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	LimCoins     int       `json:"lim_coins"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Pokemons []Pokemon `json:"pokemons,omitempty"`
	Bids     []Bid     `json:"bids,omitempty"`
}

// ValidRole reports whether role is one of the known role names.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
