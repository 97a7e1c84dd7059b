// Package bridge implements the entry step of a bridge transfer: keeping a
// token, a source network, a destination network and a recipient address
// consistent with each other and with the connected wallets.
//
// A Selector is not safe for concurrent use; the session package owns one per
// goroutine and feeds it user commands and wallet events in order.
package bridge

import (
	"github.com/cockroachdb/errors"

	"github.com/quantumauth-io/quantum-bridge-client/internal/catalog"
	"github.com/quantumauth-io/quantum-bridge-client/internal/wallet"
)

var ErrUnknownToken = errors.New("bridge: unknown token")

// WalletSource is the read side of a wallet provider.
type WalletSource interface {
	Connection() wallet.Connection
}

// Selection is the user-facing state of the step.
type Selection struct {
	Token                catalog.Token `json:"token"`
	SourceNetworkID      string        `json:"sourceNetworkId"`
	DestinationNetworkID string        `json:"destinationNetworkId"`
	Amount               string        `json:"amount"`
	RecipientAddress     string        `json:"recipientAddress"`
}

type Selector struct {
	catalog *catalog.Catalog
	evm     WalletSource
	coinset WalletSource

	state Selection
}

// NewSelector starts on the catalog's default token.
func NewSelector(c *catalog.Catalog, evm, coinset WalletSource) *Selector {
	s := &Selector{catalog: c, evm: evm, coinset: coinset}
	s.reset(c.DefaultToken())
	return s
}

// Initialize replaces the whole selection with the defaults for symbol.
// Amount and recipient are cleared.
func (s *Selector) Initialize(symbol string) error {
	t, ok := s.catalog.Token(symbol)
	if !ok {
		return errors.Wrapf(ErrUnknownToken, "%q", symbol)
	}
	s.reset(t)
	return nil
}

func (s *Selector) reset(t catalog.Token) {
	src, dst := defaultNetworks(t)
	s.state = Selection{
		Token:                t,
		SourceNetworkID:      src,
		DestinationNetworkID: dst,
	}
}

// defaultNetworks bridges from the side opposite the token's native one,
// using the first supported pair.
func defaultNetworks(t catalog.Token) (source, destination string) {
	p := t.Supported[0]
	if t.SourceNetworkType != catalog.KindEVM {
		return p.EVMNetworkID, p.CoinsetNetworkID
	}
	return p.CoinsetNetworkID, p.EVMNetworkID
}

func (s *Selector) Selection() Selection { return s.state }

// ReachableNetworks is the option set for both the source and the
// destination picker. It is deliberately not filtered per side.
func (s *Selector) ReachableNetworks() []catalog.Network {
	return s.catalog.ReachableNetworks(s.state.Token)
}

// SelectToken switches tokens and recomputes the default networks. Unknown
// symbols leave the state untouched and return false.
func (s *Selector) SelectToken(symbol string) bool {
	t, ok := s.catalog.Token(symbol)
	if !ok {
		return false
	}

	src, dst := defaultNetworks(t)
	s.state.Token = t
	s.state.SourceNetworkID = src
	s.state.DestinationNetworkID = dst
	s.DeriveRecipientAddress(dst)
	return true
}

// SelectSourceNetwork accepts any id; pickers only offer reachable ones.
func (s *Selector) SelectSourceNetwork(id string) {
	s.state.SourceNetworkID = id
}

func (s *Selector) SelectDestinationNetwork(id string) {
	s.state.DestinationNetworkID = id
	s.DeriveRecipientAddress(id)
}

func (s *Selector) SwapNetworks() {
	oldSrc, oldDst := s.state.SourceNetworkID, s.state.DestinationNetworkID
	s.state.SourceNetworkID = oldDst
	s.state.DestinationNetworkID = oldSrc
	s.DeriveRecipientAddress(oldSrc)
}

// DeriveRecipientAddress recomputes the recipient from scratch for the given
// destination and the wallets' current state.
func (s *Selector) DeriveRecipientAddress(destinationNetworkID string) {
	s.state.RecipientAddress = RecipientFor(
		s.catalog.KindOf(destinationNetworkID),
		s.evm.Connection(),
		s.coinset.Connection(),
	)
}

// RefreshRecipient is the wallet-event entry point.
func (s *Selector) RefreshRecipient() {
	s.DeriveRecipientAddress(s.state.DestinationNetworkID)
}

// SetAmount stores raw verbatim; see AmountWellFormed for the input filter.
func (s *Selector) SetAmount(raw string) {
	s.state.Amount = raw
}

// CanProceed requires the wallet that will send (the source side) and an amount.
func (s *Selector) CanProceed() bool {
	if s.state.Amount == "" {
		return false
	}
	return s.walletFor(s.catalog.KindOf(s.state.SourceNetworkID)).Usable()
}

func (s *Selector) walletFor(kind catalog.NetworkKind) wallet.Connection {
	switch kind {
	case catalog.KindEVM:
		return s.evm.Connection()
	case catalog.KindCoinset:
		return s.coinset.Connection()
	default:
		return wallet.Connection{}
	}
}

// NavigationParams is only meaningful when CanProceed is true.
func (s *Selector) NavigationParams() NavigationParams {
	return NavigationParams{
		SourceNetworkID:      s.state.SourceNetworkID,
		DestinationNetworkID: s.state.DestinationNetworkID,
		TokenSymbol:          s.state.Token.Symbol,
		Recipient:            s.state.RecipientAddress,
		Amount:               s.state.Amount,
	}
}
