package handlers

import (
	"github.com/voiceconsole/manager/internal/models"
	"github.com/voiceconsole/manager/internal/tts"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// UserResponse is the public view of a console user.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role"`
}

// NewUserResponse converts a stored user to its public view.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     u.Role,
	}
}

// ProviderCatalogResponse lists the TTS providers the console can configure.
type ProviderCatalogResponse struct {
	Providers  []tts.ProviderOption `json:"providers"`
	VoiceClone []string             `json:"voice_clone"`
	WithVoices []string             `json:"with_voices"`
}

// ProviderVoicesResponse lists the voices of one provider.
type ProviderVoicesResponse struct {
	Provider tts.ProviderOption `json:"provider"`
	Voices   []tts.VoiceOption  `json:"voices"`
}
