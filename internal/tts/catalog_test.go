package tts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderOptionsOrder(t *testing.T) {
	expected := []string{
		"doubao_ws", "edge", "edge_offline", "cosyvoice", "openai",
		"aliyun_qwen", "zhipu", "minimax", "indextts_vllm",
	}

	options := ProviderOptions()
	require.Len(t, options, 9)

	for i, o := range options {
		assert.Equal(t, expected[i], o.Value)
		assert.NotEmpty(t, o.Label)
	}
}

func TestProviderOptionsVoiceClone(t *testing.T) {
	clone := map[string]bool{"minimax": true, "cosyvoice": true, "aliyun_qwen": true, "indextts_vllm": true}

	for _, o := range ProviderOptions() {
		assert.Equal(t, clone[o.Value], o.SupportsVoiceClone, o.Value)
		assert.Equal(t, clone[o.Value], SupportsVoiceClone(o.Value), o.Value)
	}
	assert.False(t, SupportsVoiceClone("unknown"))
}

func TestVoiceCloneListIsSubsetOfOptions(t *testing.T) {
	for _, p := range ProvidersWithVoiceClone() {
		_, ok := LookupProvider(p)
		assert.True(t, ok, "%s missing from provider options", p)
	}
}

func TestProviderOptionsReturnsCopy(t *testing.T) {
	options := ProviderOptions()
	options[0].Label = "changed"
	options[0].SupportsVoiceClone = true

	fresh := ProviderOptions()
	assert.Equal(t, "豆包 WebSocket", fresh[0].Label)
	assert.False(t, fresh[0].SupportsVoiceClone)

	clone := ProvidersWithVoiceClone()
	clone[0] = "changed"
	assert.Equal(t, "minimax", ProvidersWithVoiceClone()[0])
}

func TestLookupProvider(t *testing.T) {
	o, ok := LookupProvider("aliyun_qwen")
	require.True(t, ok)
	assert.Equal(t, "千问", o.Label)
	assert.True(t, o.SupportsVoiceClone)

	_, ok = LookupProvider("doubao")
	assert.False(t, ok)
}

func TestVoiceLists(t *testing.T) {
	assert.Equal(t, []string{"minimax", "edge", "doubao", "doubao_ws", "zhipu", "openai", "indextts_vllm"}, ProvidersWithVoices())
	assert.True(t, HasVoiceList("doubao"))
	assert.False(t, HasVoiceList("cosyvoice"))

	zhipu := VoiceOptions("zhipu")
	require.NotEmpty(t, zhipu)
	assert.Equal(t, "tongtong", zhipu[0].Value)

	assert.Equal(t, VoiceOptions("edge"), VoiceOptions("microsoft"))
	assert.Empty(t, VoiceOptions("openai"))
	assert.NotNil(t, VoiceOptions("openai"))

	assert.True(t, KnownProvider("microsoft"))
	assert.True(t, KnownProvider("openai"))
	assert.False(t, KnownProvider("nope"))
}
