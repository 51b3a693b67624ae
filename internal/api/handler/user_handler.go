package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pokebid/user-service/internal/api/metrics"
	"github.com/pokebid/user-service/internal/core/domain"
	"github.com/pokebid/user-service/internal/core/ports"
)

// UserHandler handles HTTP requests for user account operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /v1/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.GetAllUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// Get handles GET /v1/users/:id, the aggregating read.
//
// @Summary      Get a user with their pokemons and bids
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create handles POST /v1/users, a raw insert without registration defaults.
//
// @Summary      Insert a user verbatim (admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User record"
// @Success      201   {object}  userResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		Role:         req.Role,
		LimCoins:     req.LimCoins,
	}
	if user.Role == "" {
		user.Role = domain.RoleUser
	}

	created, err := h.service.AddUser(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(created))
}

// Update handles PUT /v1/users/:id.
//
// @Summary      Update a user (admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	role, err := ctxRole(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	}, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /v1/users/:id.
//
// @Summary      Delete a user (admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "User ID"
// @Success      204  "No Content"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	role, err := ctxRole(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id"), role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddCoins handles POST /v1/users/:id/coins/add.
//
// @Summary      Credit LimCoins to a user
// @Tags         coins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "User ID"
// @Param        body  body      coinsRequest  true  "Amount to credit"
// @Success      200   {object}  balanceResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/users/{id}/coins/add [post]
func (h *UserHandler) AddCoins(c echo.Context) error {
	id := c.Param("id")

	var req coinsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.AddLimCoins(c.Request().Context(), id, req.Amount); err != nil {
		metrics.CoinOperationsTotal.WithLabelValues("add", "error").Inc()
		return err
	}

	metrics.CoinOperationsTotal.WithLabelValues("add", "success").Inc()
	return c.JSON(http.StatusOK, balanceResponse{UserID: id, Amount: req.Amount, Op: "add"})
}

// DeductCoins handles POST /v1/users/:id/coins/deduct.
//
// @Summary      Debit LimCoins from a user
// @Tags         coins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "User ID"
// @Param        body  body      coinsRequest  true  "Amount to debit"
// @Success      200   {object}  balanceResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users/{id}/coins/deduct [post]
func (h *UserHandler) DeductCoins(c echo.Context) error {
	id := c.Param("id")

	var req coinsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.DeductLimCoins(c.Request().Context(), id, req.Amount); err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			metrics.CoinOperationsTotal.WithLabelValues("deduct", "insufficient_funds").Inc()
		} else {
			metrics.CoinOperationsTotal.WithLabelValues("deduct", "error").Inc()
		}
		return err
	}

	metrics.CoinOperationsTotal.WithLabelValues("deduct", "success").Inc()
	return c.JSON(http.StatusOK, balanceResponse{UserID: id, Amount: req.Amount, Op: "deduct"})
}

// ListPokemons handles GET /v1/users/:id/pokemons.
//
// @Summary      List a user's pokemons
// @Tags         pokemons
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {array}   domain.Pokemon
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/users/{id}/pokemons [get]
func (h *UserHandler) ListPokemons(c echo.Context) error {
	pokemons, err := h.service.GetUserPokemons(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pokemons)
}

// AddPokemon handles POST /v1/users/:id/pokemons.
//
// @Summary      Add a pokemon to a user's collection
// @Tags         pokemons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      addPokemonRequest  true  "Pokemon details"
// @Success      201   {object}  domain.Pokemon
// @Failure      404   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/users/{id}/pokemons [post]
func (h *UserHandler) AddPokemon(c echo.Context) error {
	var req addPokemonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pokemon := domain.NewPokemon(req.Name, req.Description, req.TrueValue)
	pokemon.Types = req.Types
	pokemon.Stats = req.Stats

	if err := h.service.AddPokemon(c.Request().Context(), c.Param("id"), pokemon); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, pokemon)
}

// ListBids handles GET /v1/users/:id/bids.
//
// @Summary      List a user's auction bids
// @Tags         bids
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {array}   domain.Bid
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/users/{id}/bids [get]
func (h *UserHandler) ListBids(c echo.Context) error {
	bids, err := h.service.GetUserBids(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bids)
}

// PlaceBid handles POST /v1/users/:id/bids.
//
// @Summary      Place a bid on behalf of a user
// @Tags         bids
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "User ID"
// @Param        body  body      placeBidRequest true  "Bid details"
// @Success      201   {object}  domain.Bid
// @Failure      404   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/users/{id}/bids [post]
func (h *UserHandler) PlaceBid(c echo.Context) error {
	var req placeBidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id := c.Param("id")
	bid := domain.Bid{
		AuctionID: req.AuctionID,
		UserID:    id,
		Amount:    req.Amount,
	}

	if err := h.service.PlaceBid(c.Request().Context(), id, bid); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, bid)
}
