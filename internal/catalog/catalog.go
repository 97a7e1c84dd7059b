// Package catalog holds the read-only token and network tables the bridge
// selector works against. A Catalog is built once at startup and never mutated.
package catalog

import (
	"slices"

	"github.com/cockroachdb/errors"
)

var (
	ErrEmptyCatalog = errors.New("catalog: at least one token is required")
	ErrIntegrity    = errors.New("catalog: integrity check failed")
)

type Catalog struct {
	tokens   []Token
	networks []Network

	tokenBySymbol map[string]int
	networkByID   map[string]int
}

// New validates and copies the given tables. The first token is the default.
func New(networks []Network, tokens []Token) (*Catalog, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		tokens:        make([]Token, 0, len(tokens)),
		networks:      slices.Clone(networks),
		tokenBySymbol: make(map[string]int, len(tokens)),
		networkByID:   make(map[string]int, len(networks)),
	}

	for i, n := range c.networks {
		if n.ID == "" {
			return nil, errors.Wrapf(ErrIntegrity, "network #%d has empty id", i)
		}
		if !n.Kind.Valid() {
			return nil, errors.Wrapf(ErrIntegrity, "network %q has unknown kind %q", n.ID, n.Kind)
		}
		if _, dup := c.networkByID[n.ID]; dup {
			return nil, errors.Wrapf(ErrIntegrity, "duplicate network id %q", n.ID)
		}
		c.networkByID[n.ID] = i
	}

	for _, t := range tokens {
		if err := c.checkToken(t); err != nil {
			return nil, err
		}
		t.Supported = slices.Clone(t.Supported)
		c.tokenBySymbol[t.Symbol] = len(c.tokens)
		c.tokens = append(c.tokens, t)
	}

	return c, nil
}

func (c *Catalog) checkToken(t Token) error {
	if t.Symbol == "" {
		return errors.Wrap(ErrIntegrity, "token with empty symbol")
	}
	if _, dup := c.tokenBySymbol[t.Symbol]; dup {
		return errors.Wrapf(ErrIntegrity, "duplicate token symbol %q", t.Symbol)
	}
	if !t.SourceNetworkType.Valid() {
		return errors.Wrapf(ErrIntegrity, "token %q has unknown source network type %q", t.Symbol, t.SourceNetworkType)
	}
	if len(t.Supported) == 0 {
		return errors.Wrapf(ErrIntegrity, "token %q has no supported pairs", t.Symbol)
	}
	for i, p := range t.Supported {
		if k := c.KindOf(p.EVMNetworkID); k != KindEVM {
			return errors.Wrapf(ErrIntegrity, "token %q pair #%d: %q is not an EVM network", t.Symbol, i, p.EVMNetworkID)
		}
		if k := c.KindOf(p.CoinsetNetworkID); k != KindCoinset {
			return errors.Wrapf(ErrIntegrity, "token %q pair #%d: %q is not a coin-set network", t.Symbol, i, p.CoinsetNetworkID)
		}
	}
	return nil
}

// Tokens returns the tokens in catalog order.
func (c *Catalog) Tokens() []Token {
	return slices.Clone(c.tokens)
}

func (c *Catalog) DefaultToken() Token {
	return c.tokens[0]
}

func (c *Catalog) Token(symbol string) (Token, bool) {
	i, ok := c.tokenBySymbol[symbol]
	if !ok {
		return Token{}, false
	}
	return c.tokens[i], true
}

func (c *Catalog) Networks() []Network {
	return slices.Clone(c.networks)
}

func (c *Catalog) Network(id string) (Network, bool) {
	i, ok := c.networkByID[id]
	if !ok {
		return Network{}, false
	}
	return c.networks[i], true
}

// KindOf returns KindUnknown for ids the catalog does not know.
func (c *Catalog) KindOf(id string) NetworkKind {
	n, ok := c.Network(id)
	if !ok {
		return KindUnknown
	}
	return n.Kind
}

// ReachableNetworks is the deduplicated union of both sides of every
// supported pair, in first-seen order. Ids missing from the catalog are skipped.
func (c *Catalog) ReachableNetworks(t Token) []Network {
	seen := make(map[string]struct{}, 2*len(t.Supported))
	out := make([]Network, 0, 2*len(t.Supported))

	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		if n, ok := c.Network(id); ok {
			out = append(out, n)
		}
	}

	for _, p := range t.Supported {
		add(p.EVMNetworkID)
		add(p.CoinsetNetworkID)
	}
	return out
}
