package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumauth-io/quantum-bridge-client/internal/catalog"
	"github.com/quantumauth-io/quantum-bridge-client/internal/constants"
)

func sampleConfig() *Config {
	return &Config{
		Bridge: BridgeConfig{
			Networks: []NetworkConfig{
				{ID: " eth ", DisplayName: "Ethereum", Kind: "evm"},
				{ID: "xch", Kind: "COINSET"},
			},
			Tokens: []TokenConfig{
				{
					Symbol:            " XCH",
					SourceNetworkType: "coinset",
					Supported:         []PairConfig{{EVMNetworkID: "eth ", CoinsetNetworkID: " xch"}},
				},
			},
		},
	}
}

func TestNormalize_Defaults(t *testing.T) {
	c := sampleConfig()
	c.ClientSettings = &ClientSettings{UIAllowedOrigins: []string{" http://localhost:5173 ", "", "  "}}

	require.NoError(t, c.Normalize())

	assert.Equal(t, constants.DefaultLocalHost, c.ClientSettings.LocalHost)
	assert.Equal(t, constants.DefaultPort, c.ClientSettings.Port)
	assert.Equal(t, constants.DefaultStepOneURL, c.ClientSettings.StepOneURL)
	assert.Equal(t, []string{"http://localhost:5173"}, c.ClientSettings.UIAllowedOrigins)

	assert.Equal(t, "eth", c.Bridge.Networks[0].ID)
	assert.Equal(t, "xch", c.Bridge.Networks[1].DisplayName, "display name falls back to id")
	assert.Equal(t, "XCH", c.Bridge.Tokens[0].Symbol)
	assert.Equal(t, PairConfig{EVMNetworkID: "eth", CoinsetNetworkID: "xch"}, c.Bridge.Tokens[0].Supported[0])
}

func TestNormalize_NilClientSettings(t *testing.T) {
	c := sampleConfig()
	require.NoError(t, c.Normalize())
	require.NotNil(t, c.ClientSettings)
	assert.Equal(t, constants.DefaultPort, c.ClientSettings.Port)
}

func TestNormalize_Rejects(t *testing.T) {
	c := sampleConfig()
	c.Bridge.Networks[1].ID = " "
	assert.Error(t, c.Normalize())

	c = sampleConfig()
	c.Bridge.Tokens[0].Symbol = ""
	assert.Error(t, c.Normalize())
}

func TestCatalog(t *testing.T) {
	c := sampleConfig()
	require.NoError(t, c.Normalize())

	cat, err := c.Catalog()
	require.NoError(t, err)

	assert.Equal(t, "XCH", cat.DefaultToken().Symbol)
	assert.Equal(t, catalog.KindCoinset, cat.DefaultToken().SourceNetworkType)
	assert.Equal(t, catalog.KindEVM, cat.KindOf("eth"))
	assert.Len(t, cat.ReachableNetworks(cat.DefaultToken()), 2)
}

func TestCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad network kind", func(c *Config) { c.Bridge.Networks[0].Kind = "solana" }},
		{"bad source type", func(c *Config) { c.Bridge.Tokens[0].SourceNetworkType = "" }},
		{"dangling pair", func(c *Config) { c.Bridge.Tokens[0].Supported[0].EVMNetworkID = "base" }},
		{"no tokens", func(c *Config) { c.Bridge.Tokens = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := sampleConfig()
			require.NoError(t, c.Normalize())
			tt.mutate(c)

			_, err := c.Catalog()
			assert.Error(t, err)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("BRIDGE_HOST", "::1")
	t.Setenv("BRIDGE_PORT", "7000")
	t.Setenv("BRIDGE_STEP_ONE_URL", "https://bridge.example/step-1")
	t.Setenv("BRIDGE_UI_ORIGINS", "http://a.test,http://b.test")

	c := &Config{ClientSettings: &ClientSettings{LocalHost: "127.0.0.1", Port: "6138"}}
	require.NoError(t, c.ApplyEnv())

	assert.Equal(t, "::1", c.ClientSettings.LocalHost)
	assert.Equal(t, "7000", c.ClientSettings.Port)
	assert.Equal(t, "https://bridge.example/step-1", c.ClientSettings.StepOneURL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.ClientSettings.UIAllowedOrigins)
}

func TestApplyEnv_UnsetKeepsFile(t *testing.T) {
	c := &Config{ClientSettings: &ClientSettings{Port: "6138", UIAllowedOrigins: []string{"http://x.test"}}}
	c.applyOverrides(Overrides{})

	assert.Equal(t, "6138", c.ClientSettings.Port)
	assert.Equal(t, []string{"http://x.test"}, c.ClientSettings.UIAllowedOrigins)
}

func TestEmbeddedConfigPresent(t *testing.T) {
	assert.Contains(t, string(EmbeddedConfigYAML), "Bridge:")
}
