package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pokebid/user-service/internal/core/domain"
	"github.com/pokebid/user-service/internal/core/ports"
)

// UserService orchestrates account CRUD, balance mutations, and the
// aggregation of collaborator-owned pokemons and bids.
type UserService struct {
	repo     ports.UserRepository
	pokemons ports.PokemonClient
	auctions ports.AuctionClient
	log      zerolog.Logger
}

func NewUserService(repo ports.UserRepository, pokemons ports.PokemonClient, auctions ports.AuctionClient, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, pokemons: pokemons, auctions: auctions, log: log}
}

// GetAllUsers lists every account without collaborator aggregation.
func (s *UserService) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.GetAll(ctx)
}

// GetUser loads an account and attaches its pokemons and bids from both
// collaborators. A collaborator failure fails the whole call; no partial or
// degraded result is returned.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pokemons, err := s.pokemons.ListPokemons(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch pokemons: %w", err)
	}
	bids, err := s.auctions.ListBids(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch bids: %w", err)
	}

	user.Pokemons = pokemons
	user.Bids = bids
	return user, nil
}

// AddUser inserts a user verbatim. No validation, no uniqueness pre-check, no
// hashing: trusted internal callers only.
func (s *UserService) AddUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	return s.repo.Create(ctx, user)
}

// UpdateUser applies the non-empty fields of patch to an existing account.
// Admin only. Username and email uniqueness is re-validated against other
// accounts before saving.
func (s *UserService) UpdateUser(ctx context.Context, id string, patch ports.UpdateUserInput, actingRole string) (*domain.User, error) {
	if actingRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Username != "" {
		user.Username = patch.Username
	}
	if patch.Email != "" {
		user.Email = patch.Email
	}
	if patch.Role != "" {
		if !domain.ValidRole(patch.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = patch.Role
	}

	if err := s.checkForDuplicate(ctx, user); err != nil {
		return nil, err
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Msg("user updated")
	return user, nil
}

// checkForDuplicate verifies no other account carries this user's username or
// email. The unique indexes remain the final arbiter; this check exists to
// return a clean typed error before the write.
func (s *UserService) checkForDuplicate(ctx context.Context, user *domain.User) error {
	n, err := s.repo.CountByUsername(ctx, user.Username, user.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrUserExists
	}

	n, err = s.repo.CountByEmail(ctx, user.Email, user.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrEmailExists
	}
	return nil
}

// DeleteUser removes an account. Admin only.
func (s *UserService) DeleteUser(ctx context.Context, id string, actingRole string) error {
	if actingRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// AddLimCoins credits amount to the account's balance.
func (s *UserService) AddLimCoins(ctx context.Context, id string, amount int) error {
	if amount <= 0 {
		return domain.ErrInvalidInput
	}
	if err := s.repo.AddCoins(ctx, id, amount); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Int("amount", amount).Msg("coins credited")
	return nil
}

// DeductLimCoins debits amount from the account's balance. The debit is
// all-or-nothing: a balance that cannot cover it is left untouched and the
// call fails with ErrInsufficientFunds.
func (s *UserService) DeductLimCoins(ctx context.Context, id string, amount int) error {
	if amount <= 0 {
		return domain.ErrInvalidInput
	}
	if err := s.repo.DeductCoins(ctx, id, amount); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Int("amount", amount).Msg("coins debited")
	return nil
}

// AddPokemon forwards a new pokemon to the pokemon collaborator on behalf of
// the user. The remote write is the only durable effect; if it fails nothing
// is applied anywhere.
func (s *UserService) AddPokemon(ctx context.Context, id string, pokemon domain.Pokemon) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.pokemons.AddPokemon(ctx, id, pokemon); err != nil {
		return fmt.Errorf("notify pokemon service: %w", err)
	}

	s.log.Info().Str("user_id", id).Str("pokemon", pokemon.Name).Msg("pokemon added")
	return nil
}

// PlaceBid forwards a bid to the auction collaborator on behalf of the user.
func (s *UserService) PlaceBid(ctx context.Context, id string, bid domain.Bid) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.auctions.PlaceBid(ctx, id, bid); err != nil {
		return fmt.Errorf("notify auction service: %w", err)
	}

	s.log.Info().Str("user_id", id).Int64("auction_id", bid.AuctionID).Float64("amount", bid.Amount).Msg("bid placed")
	return nil
}

// GetUserPokemons returns the pokemons the collaborator holds for the user.
func (s *UserService) GetUserPokemons(ctx context.Context, id string) ([]domain.Pokemon, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	pokemons, err := s.pokemons.ListPokemons(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch pokemons: %w", err)
	}
	return pokemons, nil
}

// GetUserBids returns the bids the collaborator holds for the user.
func (s *UserService) GetUserBids(ctx context.Context, id string) ([]domain.Bid, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	bids, err := s.auctions.ListBids(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch bids: %w", err)
	}
	return bids, nil
}
