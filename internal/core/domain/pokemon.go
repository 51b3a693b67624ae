package domain

import (
	"math/rand"
	"time"
)

// Pokemon is a collectible owned by the pokemon collaborator service. This
// service only reads it (aggregation) or forwards writes; it is never
// authoritative over its state.
type Pokemon struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	StartingBid int            `json:"starting_bid"`
	TrueValue   int            `json:"true_value"`
	Types       []string       `json:"types,omitempty"`
	Stats       map[string]int `json:"stats,omitempty"`
	BidHistory  map[int64]int  `json:"bid_history,omitempty"` // bidder user id -> amount
}

// NewPokemon builds a Pokemon with a starting bid drawn uniformly from
// 0.6x to 1.4x of its true value.
func NewPokemon(name, description string, trueValue int) Pokemon {
	return Pokemon{
		Name:        name,
		Description: description,
		TrueValue:   trueValue,
		StartingBid: int(float64(trueValue) * (0.6 + rand.Float64()*0.8)),
		BidHistory:  make(map[int64]int),
	}
}

// Bid is a single auction bid owned by the auction collaborator service.
type Bid struct {
	ID        int64     `json:"id"`
	AuctionID int64     `json:"auction_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}
