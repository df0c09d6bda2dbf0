// Package tts holds the static text-to-speech provider catalog shown in console forms.
//
// The catalog is derived once at package initialisation and never mutated;
// accessors hand out copies so callers cannot change shared state.
package tts

// ProviderOption is one selectable TTS provider.
type ProviderOption struct {
	Label              string `json:"label"`
	Value              string `json:"value"`
	SupportsVoiceClone bool   `json:"supports_voice_clone"`
}

// Provider identifiers.
const (
	ProviderDoubao       = "doubao"
	ProviderDoubaoWS     = "doubao_ws"
	ProviderEdge         = "edge"
	ProviderEdgeOffline  = "edge_offline"
	ProviderCosyVoice    = "cosyvoice"
	ProviderOpenAI       = "openai"
	ProviderAliyunQwen   = "aliyun_qwen"
	ProviderZhipu        = "zhipu"
	ProviderMinimax      = "minimax"
	ProviderIndexTTSVLLM = "indextts_vllm"
	ProviderMicrosoft    = "microsoft"
)

// providersWithVoiceClone lists providers that can clone a voice from a sample.
// Every entry must also appear in baseProviderOptions.
var providersWithVoiceClone = []string{
	ProviderMinimax,
	ProviderCosyVoice,
	ProviderAliyunQwen,
	ProviderIndexTTSVLLM,
}

// providersWithVoices lists providers whose forms offer a voice drop-down.
// doubao is the legacy HTTP provider and has no entry in the options list.
var providersWithVoices = []string{
	ProviderMinimax,
	ProviderEdge,
	ProviderDoubao,
	ProviderDoubaoWS,
	ProviderZhipu,
	ProviderOpenAI,
	ProviderIndexTTSVLLM,
}

var baseProviderOptions = []struct {
	label string
	value string
}{
	{label: "豆包 WebSocket", value: ProviderDoubaoWS},
	{label: "Edge TTS", value: ProviderEdge},
	{label: "Edge 离线", value: ProviderEdgeOffline},
	{label: "CosyVoice", value: ProviderCosyVoice},
	{label: "OpenAI", value: ProviderOpenAI},
	{label: "千问", value: ProviderAliyunQwen},
	{label: "智谱", value: ProviderZhipu},
	{label: "Minimax", value: ProviderMinimax},
	{label: "IndexTTS(vLLM)", value: ProviderIndexTTSVLLM},
}

var (
	voiceCloneSet  = toSet(providersWithVoiceClone)
	voiceListSet   = toSet(providersWithVoices)
	providerOption = buildProviderOptions()
	providerIndex  = indexProviders(providerOption)
)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func buildProviderOptions() []ProviderOption {
	options := make([]ProviderOption, 0, len(baseProviderOptions))
	for _, item := range baseProviderOptions {
		_, clone := voiceCloneSet[item.value]
		options = append(options, ProviderOption{
			Label:              item.label,
			Value:              item.value,
			SupportsVoiceClone: clone,
		})
	}
	return options
}

func indexProviders(options []ProviderOption) map[string]int {
	index := make(map[string]int, len(options))
	for i, o := range options {
		index[o.Value] = i
	}
	return index
}

// ProviderOptions returns the provider options in display order.
func ProviderOptions() []ProviderOption {
	out := make([]ProviderOption, len(providerOption))
	copy(out, providerOption)
	return out
}

// LookupProvider returns the option for value.
func LookupProvider(value string) (ProviderOption, bool) {
	i, ok := providerIndex[value]
	if !ok {
		return ProviderOption{}, false
	}
	return providerOption[i], true
}

// SupportsVoiceClone reports whether provider is on the voice-clone allow-list.
func SupportsVoiceClone(provider string) bool {
	_, ok := voiceCloneSet[provider]
	return ok
}

// ProvidersWithVoiceClone returns the voice-clone allow-list.
func ProvidersWithVoiceClone() []string {
	return append([]string(nil), providersWithVoiceClone...)
}

// ProvidersWithVoices returns the providers that expose a voice list.
func ProvidersWithVoices() []string {
	return append([]string(nil), providersWithVoices...)
}

// HasVoiceList reports whether provider is in the voice-list subset.
func HasVoiceList(provider string) bool {
	_, ok := voiceListSet[provider]
	return ok
}
