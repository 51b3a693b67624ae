package ports

import (
	"context"

	"github.com/pokebid/user-service/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
//
// Uniqueness of username and email is enforced by the storage layer (unique
// indexes); Create and Update translate duplicate-key violations into
// domain.ErrUserExists / domain.ErrEmailExists.
type UserRepository interface {
	GetAll(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error

	// CountByUsername / CountByEmail report how many users other than
	// excludeID carry the given value. Used to re-validate uniqueness on
	// admin updates before hitting the index.
	CountByUsername(ctx context.Context, username, excludeID string) (int64, error)
	CountByEmail(ctx context.Context, email, excludeID string) (int64, error)

	// AddCoins atomically adds amount (which may be negative only through
	// DeductCoins) to the user's balance.
	AddCoins(ctx context.Context, id string, amount int) error
	// DeductCoins atomically subtracts amount if and only if the current
	// balance covers it; returns domain.ErrInsufficientFunds otherwise.
	DeductCoins(ctx context.Context, id string, amount int) error
}
