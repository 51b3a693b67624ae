package handler

import (
	"time"

	"github.com/pokebid/user-service/internal/core/domain"
)

// --- Request / Response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}

type createUserRequest struct {
	Username     string `json:"username"      validate:"required"`
	Email        string `json:"email"         validate:"required,email"`
	PasswordHash string `json:"password_hash" validate:"required"`
	Role         string `json:"role"          validate:"omitempty,oneof=User Admin"`
	LimCoins     int    `json:"lim_coins"     validate:"gte=0"`
}

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role"  validate:"omitempty,oneof=User Admin"`
}

type coinsRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

type addPokemonRequest struct {
	Name        string         `json:"name"        validate:"required"`
	Description string         `json:"description"`
	TrueValue   int            `json:"true_value"  validate:"required,gt=0"`
	Types       []string       `json:"types"`
	Stats       map[string]int `json:"stats"`
}

type placeBidRequest struct {
	AuctionID int64   `json:"auction_id" validate:"required"`
	Amount    float64 `json:"amount"     validate:"required,gt=0"`
}

// Response-only types owned by the transport layer, kept separate from the
// domain so the JSON contract is not coupled to internal changes.

type userResponse struct {
	ID        string           `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Role      string           `json:"role"`
	LimCoins  int              `json:"lim_coins"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Pokemons  []domain.Pokemon `json:"pokemons,omitempty"`
	Bids      []domain.Bid     `json:"bids,omitempty"`
}

type balanceResponse struct {
	UserID string `json:"user_id"`
	Amount int    `json:"amount"`
	Op     string `json:"op"`
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		LimCoins:  u.LimCoins,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Pokemons:  u.Pokemons,
		Bids:      u.Bids,
	}
}

func toUserResponses(users []*domain.User) []*userResponse {
	out := make([]*userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
