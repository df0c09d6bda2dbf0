package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/voiceconsole/manager/internal/metrics"
	"github.com/voiceconsole/manager/internal/tts"
	"github.com/voiceconsole/manager/internal/utils"
)

// ListProviders returns the provider catalog with the voice clone allow-list
// and the providers that expose a voice list.
func (h *Handlers) ListProviders(c *gin.Context) {
	metrics.CatalogRequests.WithLabelValues("providers").Inc()
	utils.Success(c, ProviderCatalogResponse{
		Providers:  tts.ProviderOptions(),
		VoiceClone: tts.ProvidersWithVoiceClone(),
		WithVoices: tts.ProvidersWithVoices(),
	})
}

// ListProviderVoices returns the static voice options of one provider.
// Unknown providers are 404; known providers without a static list return an
// empty list.
func (h *Handlers) ListProviderVoices(c *gin.Context) {
	metrics.CatalogRequests.WithLabelValues("voices").Inc()

	provider := c.Param("provider")
	if !tts.KnownProvider(provider) {
		utils.ProblemNotFound(c, "Provider")
		return
	}

	option, ok := tts.LookupProvider(provider)
	if !ok {
		option = tts.ProviderOption{Label: provider, Value: provider}
	}

	utils.Success(c, ProviderVoicesResponse{
		Provider: option,
		Voices:   tts.VoiceOptions(provider),
	})
}
