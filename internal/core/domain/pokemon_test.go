package domain

import "testing"

func TestNewPokemon_StartingBidRange(t *testing.T) {
	const trueValue = 1000
	for i := 0; i < 100; i++ {
		p := NewPokemon("Pikachu", "electric mouse", trueValue)
		if p.StartingBid < 600 || p.StartingBid > 1400 {
			t.Fatalf("starting bid %d outside 0.6x-1.4x of %d", p.StartingBid, trueValue)
		}
	}
}

func TestNewPokemon_Fields(t *testing.T) {
	p := NewPokemon("Snorlax", "sleepy", 900)
	if p.Name != "Snorlax" || p.Description != "sleepy" || p.TrueValue != 900 {
		t.Fatalf("unexpected pokemon: %+v", p)
	}
	if p.BidHistory == nil {
		t.Fatalf("expected initialised bid history")
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleAdmin) || !ValidRole(RoleUser) {
		t.Fatalf("known roles rejected")
	}
	if ValidRole("Root") || ValidRole("") {
		t.Fatalf("unknown role accepted")
	}
}
