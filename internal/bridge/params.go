package bridge

import (
	"regexp"

	"github.com/quantumauth-io/quantum-bridge-client/internal/catalog"
)

// NavigationParams is handed to the step navigator.
type NavigationParams struct {
	SourceNetworkID      string `json:"sourceNetworkId"`
	DestinationNetworkID string `json:"destinationNetworkId"`
	TokenSymbol          string `json:"tokenSymbol"`
	Recipient            string `json:"recipient"`
	Amount               string `json:"amount"`
}

// amountPattern mirrors the amount input's pattern: a non-negative decimal
// with at most 8 fractional digits.
var amountPattern = regexp.MustCompile(`^\d*(\.\d{0,8})?$`)

// AmountWellFormed is advisory; the selector stores whatever it is given.
func AmountWellFormed(raw string) bool {
	return amountPattern.MatchString(raw)
}

// Snapshot is a read-only view of a selector, resolved against the catalog.
type Snapshot struct {
	Selection

	Source            *catalog.Network  `json:"source,omitempty"`
	Destination       *catalog.Network  `json:"destination,omitempty"`
	ReachableNetworks []catalog.Network `json:"reachableNetworks"`
	AmountWellFormed  bool              `json:"amountWellFormed"`
	CanProceed        bool              `json:"canProceed"`
}

func (s *Selector) Snapshot() Snapshot {
	snap := Snapshot{
		Selection:         s.state,
		ReachableNetworks: s.ReachableNetworks(),
		AmountWellFormed:  AmountWellFormed(s.state.Amount),
		CanProceed:        s.CanProceed(),
	}
	if n, ok := s.catalog.Network(s.state.SourceNetworkID); ok {
		snap.Source = &n
	}
	if n, ok := s.catalog.Network(s.state.DestinationNetworkID); ok {
		snap.Destination = &n
	}
	return snap
}
