package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voiceconsole/manager/internal/api/handlers"
	"github.com/voiceconsole/manager/internal/auth"
	"github.com/voiceconsole/manager/internal/metrics"
	"github.com/voiceconsole/manager/internal/routing"
	"github.com/voiceconsole/manager/internal/utils"
	"github.com/voiceconsole/manager/pkg/logger"
)

// AuthHandlers provides HTTP handlers for the console session: local login,
// logout, the current user and the admin first-login marker.
type AuthHandlers struct {
	authService *auth.Service
}

// NewAuthHandlers creates a new authentication handler with the provided service.
func NewAuthHandlers(authService *auth.Service) *AuthHandlers {
	return &AuthHandlers{authService: authService}
}

// LoginRequest is the body of POST /session/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse describes the logged-in user and where the console should
// send them.
type SessionResponse struct {
	User     handlers.UserResponse `json:"user"`
	Redirect string                `json:"redirect"`
}

// Login handles local username/password authentication via JSON POST.
// Returns 201 Created with the post-login route on success.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ProblemBadRequest(c, "Invalid login request format")
		return
	}

	user, err := h.authService.LocalLogin(c, req.Username, req.Password)
	if err != nil {
		handlers.HandleServiceError(c, err, "Session")
		return
	}

	resp := h.sessionResponse(c, handlers.NewUserResponse(user))
	c.JSON(http.StatusCreated, utils.Envelope{Data: resp})
}

// Logout ends the login. Returns 204 No Content and is safe to call repeatedly.
func (h *AuthHandlers) Logout(c *gin.Context) {
	if err := h.authService.Logout(c); err != nil {
		utils.ProblemInternalServer(c, "Failed to logout")
		return
	}
	utils.NoContent(c)
}

// GetCurrentUser returns the authenticated user together with the route the
// console should open for them.
func (h *AuthHandlers) GetCurrentUser(c *gin.Context) {
	current, ok := auth.CurrentUser(c)
	if !ok {
		utils.ProblemAuthentication(c, "Authentication required")
		return
	}

	utils.Success(c, h.sessionResponse(c, handlers.UserResponse{
		ID:       current.UserID,
		Username: current.Username,
		Role:     current.Role,
	}))
}

// MarkFirstLoginDone records that the admin finished the configuration wizard.
// Later logins in the same client resolve to the dashboard.
func (h *AuthHandlers) MarkFirstLoginDone(c *gin.Context) {
	session := h.authService.Session(c)
	flags := routing.SessionFlags{Session: session}

	if err := flags.Set(routing.AdminFirstLoginDoneKey, "true"); err != nil {
		utils.ProblemInternalServer(c, "Failed to update session")
		return
	}
	if err := session.Save(c); err != nil {
		logger.Error("Failed to save first-login flag: %v", err)
		utils.ProblemInternalServer(c, "Failed to update session")
		return
	}
	utils.NoContent(c)
}

func (h *AuthHandlers) sessionResponse(c *gin.Context, user handlers.UserResponse) SessionResponse {
	flags := routing.SessionFlags{Session: h.authService.Session(c)}
	redirect := routing.PostLoginPath(&routing.User{Role: user.Role}, flags)
	metrics.PostLoginRedirects.WithLabelValues(redirect).Inc()

	return SessionResponse{User: user, Redirect: redirect}
}
