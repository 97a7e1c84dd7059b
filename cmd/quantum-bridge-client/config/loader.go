package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
	utilsconfig "github.com/quantumauth-io/quantum-go-utils/config"

	"github.com/quantumauth-io/quantum-bridge-client/internal/catalog"
	"github.com/quantumauth-io/quantum-bridge-client/internal/constants"
)

type ClientSettings struct {
	LocalHost        string
	Port             string
	StepOneURL       string
	UIAllowedOrigins []string
}

type NetworkConfig struct {
	ID          string
	DisplayName string
	Kind        string
}

type PairConfig struct {
	EVMNetworkID     string
	CoinsetNetworkID string
}

type TokenConfig struct {
	Symbol            string
	SourceNetworkType string
	Supported         []PairConfig
}

type BridgeConfig struct {
	Networks []NetworkConfig
	Tokens   []TokenConfig
}

type Config struct {
	ClientSettings *ClientSettings
	Bridge         BridgeConfig `mapstructure:"Bridge"`
}

// Overrides are read from BRIDGE_* environment variables. Unset fields keep
// the file values.
type Overrides struct {
	Host       string   `envconfig:"HOST"`
	Port       string   `envconfig:"PORT"`
	StepOneURL string   `envconfig:"STEP_ONE_URL"`
	UIOrigins  []string `envconfig:"UI_ORIGINS"`
}

// configDir returns the per-user config directory. Snap installs keep config
// under the real home, not the confined one.
func configDir() string {
	if realHome := os.Getenv("SNAP_REAL_HOME"); realHome != "" {
		return filepath.Join(realHome, ".config", constants.ConfigDirName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", constants.ConfigDirName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, constants.ConfigDirName)
	}
	return "."
}

func Load() (*Config, error) {
	home, _ := os.UserHomeDir()
	paths := []string{
		configDir(),
		filepath.Join(home, "config"),
		".",
	}

	return utilsconfig.ParseConfigWithEmbedded[Config](paths, EmbeddedConfigYAML)
}

func (c *Config) ApplyEnv() error {
	var o Overrides
	if err := envconfig.Process(constants.EnvPrefix, &o); err != nil {
		return errors.Wrap(err, "read environment overrides")
	}
	c.applyOverrides(o)
	return nil
}

func (c *Config) applyOverrides(o Overrides) {
	if c.ClientSettings == nil {
		c.ClientSettings = &ClientSettings{}
	}
	if v := strings.TrimSpace(o.Host); v != "" {
		c.ClientSettings.LocalHost = v
	}
	if v := strings.TrimSpace(o.Port); v != "" {
		c.ClientSettings.Port = v
	}
	if v := strings.TrimSpace(o.StepOneURL); v != "" {
		c.ClientSettings.StepOneURL = v
	}
	if len(o.UIOrigins) > 0 {
		c.ClientSettings.UIAllowedOrigins = o.UIOrigins
	}
}

// Normalize fills defaults and trims every id and symbol so that catalog
// lookups can stay exact.
func (c *Config) Normalize() error {
	if c.ClientSettings == nil {
		c.ClientSettings = &ClientSettings{}
	}
	cs := c.ClientSettings
	cs.LocalHost = orDefault(cs.LocalHost, constants.DefaultLocalHost)
	cs.Port = orDefault(cs.Port, constants.DefaultPort)
	cs.StepOneURL = orDefault(cs.StepOneURL, constants.DefaultStepOneURL)

	origins := make([]string, 0, len(cs.UIAllowedOrigins))
	for _, o := range cs.UIAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cs.UIAllowedOrigins = origins

	for i := range c.Bridge.Networks {
		n := &c.Bridge.Networks[i]
		n.ID = strings.TrimSpace(n.ID)
		n.DisplayName = strings.TrimSpace(n.DisplayName)
		if n.ID == "" {
			return errors.Newf("Bridge.Networks[%d] has empty ID", i)
		}
		if n.DisplayName == "" {
			n.DisplayName = n.ID
		}
	}

	for i := range c.Bridge.Tokens {
		t := &c.Bridge.Tokens[i]
		t.Symbol = strings.TrimSpace(t.Symbol)
		if t.Symbol == "" {
			return errors.Newf("Bridge.Tokens[%d] has empty Symbol", i)
		}
		for j := range t.Supported {
			p := &t.Supported[j]
			p.EVMNetworkID = strings.TrimSpace(p.EVMNetworkID)
			p.CoinsetNetworkID = strings.TrimSpace(p.CoinsetNetworkID)
		}
	}

	return nil
}

// Catalog builds the validated, immutable catalog from the bridge tables.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	networks := make([]catalog.Network, 0, len(c.Bridge.Networks))
	for _, n := range c.Bridge.Networks {
		kind := catalog.ParseKind(n.Kind)
		if !kind.Valid() {
			return nil, errors.Newf("network %q: invalid kind %q (allowed: EVM, COINSET)", n.ID, n.Kind)
		}
		networks = append(networks, catalog.Network{ID: n.ID, DisplayName: n.DisplayName, Kind: kind})
	}

	tokens := make([]catalog.Token, 0, len(c.Bridge.Tokens))
	for _, t := range c.Bridge.Tokens {
		kind := catalog.ParseKind(t.SourceNetworkType)
		if !kind.Valid() {
			return nil, errors.Newf("token %q: invalid source network type %q", t.Symbol, t.SourceNetworkType)
		}
		pairs := make([]catalog.SupportedPair, 0, len(t.Supported))
		for _, p := range t.Supported {
			pairs = append(pairs, catalog.SupportedPair{EVMNetworkID: p.EVMNetworkID, CoinsetNetworkID: p.CoinsetNetworkID})
		}
		tokens = append(tokens, catalog.Token{Symbol: t.Symbol, SourceNetworkType: kind, Supported: pairs})
	}

	cat, err := catalog.New(networks, tokens)
	if err != nil {
		return nil, errors.Wrap(err, "build bridge catalog")
	}
	return cat, nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
