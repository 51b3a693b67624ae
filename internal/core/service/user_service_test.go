package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pokebid/user-service/internal/core/domain"
	"github.com/pokebid/user-service/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub collaborator clients
// ---------------------------------------------------------------------------

type stubPokemonClient struct {
	pokemons []domain.Pokemon
	listErr  error
	addErr   error
	added    []domain.Pokemon
}

func (c *stubPokemonClient) ListPokemons(_ context.Context, _ string) ([]domain.Pokemon, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.pokemons, nil
}

func (c *stubPokemonClient) AddPokemon(_ context.Context, _ string, p domain.Pokemon) error {
	if c.addErr != nil {
		return c.addErr
	}
	c.added = append(c.added, p)
	return nil
}

type stubAuctionClient struct {
	bids     []domain.Bid
	listErr  error
	placeErr error
	placed   []domain.Bid
}

func (c *stubAuctionClient) ListBids(_ context.Context, _ string) ([]domain.Bid, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.bids, nil
}

func (c *stubAuctionClient) PlaceBid(_ context.Context, _ string, b domain.Bid) error {
	if c.placeErr != nil {
		return c.placeErr
	}
	c.placed = append(c.placed, b)
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, username string, coins int) *domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &domain.User{
		Username: username,
		Email:    username + "@x.com",
		Role:     domain.RoleUser,
		LimCoins: coins,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func newTestUserService(repo *stubUserRepo, pc *stubPokemonClient, ac *stubAuctionClient) *UserService {
	return NewUserService(repo, pc, ac, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Aggregation read
// ---------------------------------------------------------------------------

func TestUserService_GetUser_AttachesCollections(t *testing.T) {
	repo := newStubUserRepo()
	pc := &stubPokemonClient{pokemons: []domain.Pokemon{{ID: 1, Name: "Pikachu"}}}
	ac := &stubAuctionClient{bids: []domain.Bid{{ID: 7, AuctionID: 3, Amount: 250}}}
	svc := newTestUserService(repo, pc, ac)

	u := seedUser(t, repo, "ash", 1000)

	got, err := svc.GetUser(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if len(got.Pokemons) != 1 || got.Pokemons[0].Name != "Pikachu" {
		t.Fatalf("unexpected pokemons: %+v", got.Pokemons)
	}
	if len(got.Bids) != 1 || got.Bids[0].AuctionID != 3 {
		t.Fatalf("unexpected bids: %+v", got.Bids)
	}
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc := newTestUserService(newStubUserRepo(), &stubPokemonClient{}, &stubAuctionClient{})

	if _, err := svc.GetUser(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// Either collaborator failing fails the whole read; no partial result.
func TestUserService_GetUser_CollaboratorFailure(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "ash", 1000)

	pc := &stubPokemonClient{listErr: domain.ErrCollaboratorUnavailable}
	svc := newTestUserService(repo, pc, &stubAuctionClient{})
	if _, err := svc.GetUser(context.Background(), u.ID); !errors.Is(err, domain.ErrCollaboratorUnavailable) {
		t.Fatalf("expected ErrCollaboratorUnavailable, got %v", err)
	}

	ac := &stubAuctionClient{listErr: domain.ErrCollaboratorUnavailable}
	svc = newTestUserService(repo, &stubPokemonClient{}, ac)
	if _, err := svc.GetUser(context.Background(), u.ID); !errors.Is(err, domain.ErrCollaboratorUnavailable) {
		t.Fatalf("expected ErrCollaboratorUnavailable, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Admin gating
// ---------------------------------------------------------------------------

func TestUserService_UpdateUser_RequiresAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubPokemonClient{}, &stubAuctionClient{})
	u := seedUser(t, repo, "ash", 1000)

	_, err := svc.UpdateUser(context.Background(), u.ID, ports.UpdateUserInput{Username: "red"}, domain.RoleUser)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.users[u.ID].Username != "ash" {
		t.Fatalf("user modified despite forbidden call")
	}
}

func TestUserService_UpdateUser_AppliesPatch(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubPokemonClient{}, &stubAuctionClient{})
	u := seedUser(t, repo, "ash", 1000)

	got, err := svc.UpdateUser(context.Background(), u.ID, ports.UpdateUserInput{
		Username: "red",
		Role:     domain.RoleAdmin,
	}, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if got.Username != "red" || got.Role != domain.RoleAdmin {
		t.Fatalf("patch not applied: %+v", got)
	}
	// Email untouched when patch field is empty.
	if got.Email != "ash@x.com" {
		t.Fatalf("email should be unchanged, got %s", got.Email)
	}
}

func TestUserService_UpdateUser_RejectsUnknownRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubPokemonClient{}, &stubAuctionClient{})
	u := seedUser(t, repo, "ash", 1000)

	_, err := svc.UpdateUser(context.Background(), u.ID, ports.UpdateUserInput{Role: "Root"}, domain.RoleAdmin)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// The duplicate check must catch collisions with other accounts before saving.
func TestUserService_UpdateUser_DuplicateRecheck(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubPokemonClient{}, &stubAuctionClient{})
	seedUser(t, repo, "ash", 1000)
	u2 := seedUser(t, repo, "misty", 500)

	if _, err := svc.UpdateUser(context.Background(), u2.ID, ports.UpdateUserInput{Username: "ash"}, domain.RoleAdmin); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if _, err := svc.UpdateUser(context.Background(), u2.ID, ports.UpdateUserInput{Email: "ash@x.com"}, domain.RoleAdmin); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if repo.users[u2.ID].Username != "misty" {
		t.Fatalf("user modified despite duplicate")
	}
}

// Keeping the current value must not trip the duplicate check against itself.
func TestUserService_UpdateUser_SameValuesAllowed(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubPokemonClient{}, &stubAuctionClient{})
	u := seedUser(t, repo, "ash", 1000)

	if _, err := svc.UpdateUser(context.Background(), u.ID, ports.UpdateUserInput{Username: "ash"}, domain.RoleAdmin); err != nil {
		t.Fatalf("self-update failed: %v", err)
	}
}

func TestUserService_DeleteUser_RequiresAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubPokemonClient{}, &stubAuctionClient{})
	u := seedUser(t, repo, "ash", 1000)

	if err := svc.DeleteUser(context.Background(), u.ID, domain.RoleUser); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, ok := repo.users[u.ID]; !ok {
		t.Fatalf("user deleted despite forbidden call")
	}

	if err := svc.DeleteUser(context.Background(), u.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if err := svc.DeleteUser(context.Background(), u.ID, domain.RoleAdmin); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Balance
// ---------------------------------------------------------------------------

func TestUserService_Coins_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubPokemonClient{}, &stubAuctionClient{})
	u := seedUser(t, repo, "ash", 1000)

	if err := svc.AddLimCoins(context.Background(), u.ID, 250); err != nil {
		t.Fatalf("AddLimCoins failed: %v", err)
	}
	if repo.users[u.ID].LimCoins != 1250 {
		t.Fatalf("expected 1250, got %d", repo.users[u.ID].LimCoins)
	}
	if err := svc.DeductLimCoins(context.Background(), u.ID, 250); err != nil {
		t.Fatalf("DeductLimCoins failed: %v", err)
	}
	if repo.users[u.ID].LimCoins != 1000 {
		t.Fatalf("expected balance back at 1000, got %d", repo.users[u.ID].LimCoins)
	}
}

func TestUserService_DeductLimCoins_InsufficientFunds(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubPokemonClient{}, &stubAuctionClient{})
	u := seedUser(t, repo, "ash", 1000)

	if err := svc.DeductLimCoins(context.Background(), u.ID, 1500); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if repo.users[u.ID].LimCoins != 1000 {
		t.Fatalf("balance changed on failed debit: %d", repo.users[u.ID].LimCoins)
	}

	if err := svc.DeductLimCoins(context.Background(), u.ID, 400); err != nil {
		t.Fatalf("DeductLimCoins failed: %v", err)
	}
	if repo.users[u.ID].LimCoins != 600 {
		t.Fatalf("expected 600, got %d", repo.users[u.ID].LimCoins)
	}
}

func TestUserService_Coins_RejectNonPositiveAmounts(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubPokemonClient{}, &stubAuctionClient{})
	u := seedUser(t, repo, "ash", 1000)

	if err := svc.AddLimCoins(context.Background(), u.ID, -50); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := svc.DeductLimCoins(context.Background(), u.ID, 0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_Coins_UnknownUser(t *testing.T) {
	svc := newTestUserService(newStubUserRepo(), &stubPokemonClient{}, &stubAuctionClient{})

	if err := svc.AddLimCoins(context.Background(), "missing", 100); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := svc.DeductLimCoins(context.Background(), "missing", 100); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Collaborator writes
// ---------------------------------------------------------------------------

func TestUserService_AddPokemon_NotifiesCollaborator(t *testing.T) {
	repo := newStubUserRepo()
	pc := &stubPokemonClient{}
	svc := newTestUserService(repo, pc, &stubAuctionClient{})
	u := seedUser(t, repo, "ash", 1000)

	p := domain.NewPokemon("Pikachu", "electric mouse", 500)
	if err := svc.AddPokemon(context.Background(), u.ID, p); err != nil {
		t.Fatalf("AddPokemon failed: %v", err)
	}
	if len(pc.added) != 1 || pc.added[0].Name != "Pikachu" {
		t.Fatalf("collaborator not notified: %+v", pc.added)
	}
}

func TestUserService_AddPokemon_FailsWhenNotifyFails(t *testing.T) {
	repo := newStubUserRepo()
	pc := &stubPokemonClient{addErr: domain.ErrCollaboratorUnavailable}
	svc := newTestUserService(repo, pc, &stubAuctionClient{})
	u := seedUser(t, repo, "ash", 1000)

	err := svc.AddPokemon(context.Background(), u.ID, domain.Pokemon{Name: "Pikachu"})
	if !errors.Is(err, domain.ErrCollaboratorUnavailable) {
		t.Fatalf("expected ErrCollaboratorUnavailable, got %v", err)
	}
}

func TestUserService_AddPokemon_UnknownUser(t *testing.T) {
	pc := &stubPokemonClient{}
	svc := newTestUserService(newStubUserRepo(), pc, &stubAuctionClient{})

	err := svc.AddPokemon(context.Background(), "missing", domain.Pokemon{Name: "Pikachu"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(pc.added) != 0 {
		t.Fatalf("collaborator notified for unknown user")
	}
}

func TestUserService_PlaceBid_NotifiesCollaborator(t *testing.T) {
	repo := newStubUserRepo()
	ac := &stubAuctionClient{}
	svc := newTestUserService(repo, &stubPokemonClient{}, ac)
	u := seedUser(t, repo, "ash", 1000)

	bid := domain.Bid{AuctionID: 9, UserID: u.ID, Amount: 350, Timestamp: time.Now()}
	if err := svc.PlaceBid(context.Background(), u.ID, bid); err != nil {
		t.Fatalf("PlaceBid failed: %v", err)
	}
	if len(ac.placed) != 1 || ac.placed[0].AuctionID != 9 {
		t.Fatalf("collaborator not notified: %+v", ac.placed)
	}
}

func TestUserService_PlaceBid_FailsWhenNotifyFails(t *testing.T) {
	repo := newStubUserRepo()
	ac := &stubAuctionClient{placeErr: domain.ErrCollaboratorUnavailable}
	svc := newTestUserService(repo, &stubPokemonClient{}, ac)
	u := seedUser(t, repo, "ash", 1000)

	if err := svc.PlaceBid(context.Background(), u.ID, domain.Bid{AuctionID: 9}); !errors.Is(err, domain.ErrCollaboratorUnavailable) {
		t.Fatalf("expected ErrCollaboratorUnavailable, got %v", err)
	}
}

func TestUserService_GetUserPokemons(t *testing.T) {
	repo := newStubUserRepo()
	pc := &stubPokemonClient{pokemons: []domain.Pokemon{{Name: "Pikachu"}, {Name: "Snorlax"}}}
	svc := newTestUserService(repo, pc, &stubAuctionClient{})
	u := seedUser(t, repo, "ash", 1000)

	pokemons, err := svc.GetUserPokemons(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GetUserPokemons failed: %v", err)
	}
	if len(pokemons) != 2 {
		t.Fatalf("expected 2 pokemons, got %d", len(pokemons))
	}

	if _, err := svc.GetUserPokemons(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_GetUserBids(t *testing.T) {
	repo := newStubUserRepo()
	ac := &stubAuctionClient{bids: []domain.Bid{{ID: 1}}}
	svc := newTestUserService(repo, &stubPokemonClient{}, ac)
	u := seedUser(t, repo, "ash", 1000)

	bids, err := svc.GetUserBids(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GetUserBids failed: %v", err)
	}
	if len(bids) != 1 {
		t.Fatalf("expected 1 bid, got %d", len(bids))
	}
}

// ---------------------------------------------------------------------------
// End-to-end scenario through both services
// ---------------------------------------------------------------------------

func TestUserLifecycle_RegisterLoginSpend(t *testing.T) {
	repo := newStubUserRepo()
	auth := newTestAuthService(repo, nil)
	users := newTestUserService(repo, &stubPokemonClient{}, &stubAuctionClient{})
	ctx := context.Background()

	u, err := auth.Register(ctx, "ash", "ash@x.com", "pikachu1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.LimCoins != 1000 || u.Role != domain.RoleUser {
		t.Fatalf("unexpected defaults: %+v", u)
	}

	if _, _, err := auth.Login(ctx, "ash", "pikachu1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, _, err := auth.Login(ctx, "ash", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if err := users.DeductLimCoins(ctx, u.ID, 1500); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if repo.users[u.ID].LimCoins != 1000 {
		t.Fatalf("balance changed: %d", repo.users[u.ID].LimCoins)
	}

	if err := users.DeductLimCoins(ctx, u.ID, 400); err != nil {
		t.Fatalf("deduct: %v", err)
	}
	if repo.users[u.ID].LimCoins != 600 {
		t.Fatalf("expected 600, got %d", repo.users[u.ID].LimCoins)
	}
}
