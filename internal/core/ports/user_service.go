package ports

import (
	"context"

	"github.com/pokebid/user-service/internal/core/domain"
)

// UpdateUserInput carries the fields an admin may change on an existing
// account. Empty fields are left untouched; the password is never updatable
// through this path.
type UpdateUserInput struct {
	Username string
	Email    string
	Role     string
}

// UserService defines use-case operations over user accounts.
//
// actingRole is the role claim of the caller, extracted from its token by the
// transport layer. Admin-only operations fail with domain.ErrForbidden for
// any other role.
type UserService interface {
	GetAllUsers(ctx context.Context) ([]*domain.User, error)

	// GetUser is the aggregating read: it loads the user and attaches the
	// pokemons and bids fetched from both collaborators. Either collaborator
	// failing fails the whole call.
	GetUser(ctx context.Context, id string) (*domain.User, error)

	// AddUser inserts a user verbatim, without validation or hashing.
	// Trusted internal callers only.
	AddUser(ctx context.Context, user *domain.User) (*domain.User, error)

	UpdateUser(ctx context.Context, id string, patch UpdateUserInput, actingRole string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string, actingRole string) error

	AddLimCoins(ctx context.Context, id string, amount int) error
	DeductLimCoins(ctx context.Context, id string, amount int) error

	AddPokemon(ctx context.Context, id string, pokemon domain.Pokemon) error
	PlaceBid(ctx context.Context, id string, bid domain.Bid) error
	GetUserPokemons(ctx context.Context, id string) ([]domain.Pokemon, error)
	GetUserBids(ctx context.Context, id string) ([]domain.Bid, error)
}
