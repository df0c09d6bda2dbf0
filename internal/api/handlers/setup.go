package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/voiceconsole/manager/internal/metrics"
	"github.com/voiceconsole/manager/internal/setup"
	"github.com/voiceconsole/manager/internal/utils"
)

// CreateInitialAdminRequest is the body of POST /setup/admin.
type CreateInitialAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

// GetSetupStatus reports whether the console still needs its first admin.
func (h *Handlers) GetSetupStatus(c *gin.Context) {
	status, err := h.setupSvc.Status(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err, "Setup status")
		return
	}

	metrics.SetupStatusRequests.WithLabelValues(strconv.FormatBool(status.NeedsSetup)).Inc()
	utils.Success(c, status)
}

// CreateInitialAdmin creates the first admin account. Once setup is complete
// the endpoint answers 409.
func (h *Handlers) CreateInitialAdmin(c *gin.Context) {
	var req CreateInitialAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ProblemBadRequest(c, "Invalid setup request format")
		return
	}

	user, err := h.setupSvc.CreateInitialAdmin(c.Request.Context(), setup.InitialAdmin{
		Username: req.Username,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		HandleServiceError(c, err, "User")
		return
	}

	c.Header("Location", "/api/session")
	utils.Created(c, NewUserResponse(user))
}
