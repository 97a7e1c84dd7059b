package wallet

import "github.com/quantumauth-io/quantum-bridge-client/internal/catalog"

// Connection is what a wallet provider currently reports.
type Connection struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address,omitempty"`
}

// Usable reports a connected wallet that exposes an address.
func (c Connection) Usable() bool {
	return c.Connected && c.Address != ""
}

// Event is sent to subscribers whenever a provider's connection changes.
type Event struct {
	Kind       catalog.NetworkKind `json:"kind"`
	Connection Connection          `json:"connection"`
}
