package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/logger"
	"github.com/staffdesk/staffdesk/internal/types"
)

type AuthHandler struct {
	authService interfaces.AuthService
	logger      *logger.Logger
}

func NewAuthHandler(authService interfaces.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// @Summary Sign up
// @Description Register a user with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Sign up request"
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	respond(c, h.logger, http.StatusCreated, h.authService.SignUp(c.Request.Context(), req))
}

// @Summary Sign in
// @Description Exchange email and password for a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Sign in request"
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	respond(c, h.logger, http.StatusOK, h.authService.SignInWithPassword(c.Request.Context(), req))
}

func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	respond(c, h.logger, http.StatusOK, h.authService.GetCurrentUser(c.Request.Context(), c.GetHeader(types.HeaderAuthorization)))
}

func (h *AuthHandler) GetSession(c *gin.Context) {
	respond(c, h.logger, http.StatusOK, h.authService.GetSession(c.Request.Context(), c.GetHeader(types.HeaderAuthorization)))
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	respond(c, h.logger, http.StatusOK, h.authService.SignOut(c.Request.Context(), c.GetHeader(types.HeaderAuthorization)))
}
