package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/service"
	"github.com/kingrain94/digital-menu-api/internal/utils"
)

//go:generate mockery --name UserService --output ../mocks
type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	CreateTenantUser(ctx context.Context, tenantID string, req dto.CreateUserRequest) (*domain.User, error)
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (service.LoginResult, error)
	Logout(ctx context.Context, sid string) error
	CurrentUser(ctx context.Context, p domain.Principal) (*domain.User, error)
}

type AuthHandler struct {
	*BaseHandler
	users UserService
	auth  AuthService
}

func NewAuthHandler(base *BaseHandler, users UserService, auth AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, users: users, auth: auth}
}

// Register godoc
// @Summary Register an account
// @Description Create a self-service account that is not bound to any tenant
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Credentials"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.users.Register(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromUser(user))
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.auth.Login(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      dto.FromUser(result.User),
	})
}

// Logout godoc
// @Summary Log out
// @Description Revoke the current session
// @Tags auth
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} dto.Error
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := h.RequestCtx(c)
	sid, _ := utils.GetSessionIDFromContext(ctx)
	if err := h.auth.Logout(ctx, sid); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CurrentUser godoc
// @Summary Current user
// @Description Return the account behind the bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.Error
// @Router /user [get]
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, err := h.auth.CurrentUser(h.RequestCtx(c), h.Principal(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromUser(user))
}
