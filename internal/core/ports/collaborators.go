package ports

import (
	"context"

	"github.com/pokebid/user-service/internal/core/domain"
)

// PokemonClient reads and forwards writes to the pokemon collaborator
// service. Calls are synchronous; a transport or remote error surfaces as
// domain.ErrCollaboratorUnavailable.
type PokemonClient interface {
	ListPokemons(ctx context.Context, userID string) ([]domain.Pokemon, error)
	AddPokemon(ctx context.Context, userID string, pokemon domain.Pokemon) error
}

// AuctionClient reads and forwards writes to the auction collaborator service.
type AuctionClient interface {
	ListBids(ctx context.Context, userID string) ([]domain.Bid, error)
	PlaceBid(ctx context.Context, userID string, bid domain.Bid) error
}
