package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ghiblihub/catalog-api/internal/api/metrics"
	"github.com/ghiblihub/catalog-api/internal/core/domain"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
)

type UserHandler struct {
	users ports.UserService
	log   zerolog.Logger
}

func NewUserHandler(users ports.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// List returns users matching the optional equality filters.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        limit     query     int     false  "Maximum number of users (default 100)"
// @Param        start     query     int     false  "Offset of the first user (default 0)"
// @Param        username  query     string  false  "Exact username"
// @Param        email     query     string  false  "Exact email"
// @Param        role_id   query     int     false  "Role id"
// @Success      200  {array}   userResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	var (
		page   ports.Page
		filter ports.UserFilter
		roleID int64
	)
	if err := echo.QueryParamsBinder(c).
		Int("limit", &page.Limit).
		Int("start", &page.Start).
		Int64("role_id", &roleID).
		BindError(); err != nil {
		return fmt.Errorf("%w: limit, start and role_id must be integers", domain.ErrValidation)
	}

	params := c.QueryParams()
	if params.Has("username") {
		v := params.Get("username")
		filter.Username = &v
	}
	if params.Has("email") {
		v := params.Get("email")
		filter.Email = &v
	}
	if params.Has("role_id") {
		filter.RoleID = &roleID
	}

	users, err := h.users.List(c.Request().Context(), filter, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// Get returns one user.
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create registers a new user under an existing role.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  userResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.users.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		RoleName: req.RoleName,
	})
	if err != nil {
		return err
	}

	h.audit(c, "create", user.ID)
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update applies a partial update.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.users.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		RoleName: req.RoleName,
		RoleID:   req.RoleID,
	})
	if err != nil {
		return err
	}

	h.audit(c, "update", id)
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete removes a user and returns the removed record.
//
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	user, err := h.users.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := h.users.Delete(ctx, id); err != nil {
		return err
	}

	h.audit(c, "delete", id)
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) audit(c echo.Context, op string, id int64) {
	metrics.UserMutationsTotal.WithLabelValues(op).Inc()

	ev := h.log.Info().Str("op", op).Int64("user_id", id)
	if claims, err := ctxClaims(c); err == nil {
		ev = ev.Str("actor", claims.Subject)
	}
	ev.Msg("user mutation")
}
