package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pokebid/user-service/internal/core/domain"
)

const pokemonServiceName = "pokemon"

// PokemonClient talks to the pokemon collaborator service.
type PokemonClient struct {
	baseURL string
	hc      *http.Client
}

func NewPokemonClient(baseURL string, timeout time.Duration) *PokemonClient {
	return &PokemonClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      newHTTPClient(timeout),
	}
}

// ListPokemons fetches the pokemons the collaborator holds for the user.
func (c *PokemonClient) ListPokemons(ctx context.Context, userID string) ([]domain.Pokemon, error) {
	var pokemons []domain.Pokemon
	url := fmt.Sprintf("%s/pokemons/user/%s", c.baseURL, userID)
	if err := getJSON(ctx, c.hc, pokemonServiceName, url, &pokemons); err != nil {
		return nil, err
	}
	return pokemons, nil
}

// AddPokemon forwards a new pokemon to the collaborator for the user.
func (c *PokemonClient) AddPokemon(ctx context.Context, userID string, pokemon domain.Pokemon) error {
	url := fmt.Sprintf("%s/pokemons/add/%s", c.baseURL, userID)
	return postJSON(ctx, c.hc, pokemonServiceName, url, pokemon)
}
