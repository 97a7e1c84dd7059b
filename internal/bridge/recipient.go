package bridge

import (
	"github.com/quantumauth-io/quantum-bridge-client/internal/catalog"
	"github.com/quantumauth-io/quantum-bridge-client/internal/wallet"
)

// RecipientFor picks the address that should receive funds on a destination
// of the given kind. First match wins; unknown kinds always clear.
func RecipientFor(kind catalog.NetworkKind, evm, coinset wallet.Connection) string {
	switch {
	case kind == catalog.KindEVM && evm.Usable():
		return evm.Address
	case kind == catalog.KindCoinset && coinset.Usable():
		return coinset.Address
	default:
		return ""
	}
}
