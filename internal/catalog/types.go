package catalog

import "strings"

// NetworkKind is the address/accounting family of a network.
type NetworkKind string

const (
	KindUnknown NetworkKind = ""
	KindEVM     NetworkKind = "EVM"
	KindCoinset NetworkKind = "COINSET"
)

func (k NetworkKind) Valid() bool {
	return k == KindEVM || k == KindCoinset
}

// ParseKind accepts the config spellings ("evm", "coinset", "COINSET"...).
func ParseKind(s string) NetworkKind {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(KindEVM):
		return KindEVM
	case string(KindCoinset):
		return KindCoinset
	default:
		return KindUnknown
	}
}

type Network struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"displayName"`
	Kind        NetworkKind `json:"kind"`
}

// SupportedPair declares that a token moves between one EVM network and one coin-set network.
type SupportedPair struct {
	EVMNetworkID     string `json:"evmNetworkId"`
	CoinsetNetworkID string `json:"coinsetNetworkId"`
}

// IDFor returns the side of the pair that belongs to kind.
func (p SupportedPair) IDFor(kind NetworkKind) string {
	switch kind {
	case KindEVM:
		return p.EVMNetworkID
	case KindCoinset:
		return p.CoinsetNetworkID
	default:
		return ""
	}
}

type Token struct {
	Symbol string `json:"symbol"`

	// SourceNetworkType is the token's native side.
	SourceNetworkType NetworkKind     `json:"sourceNetworkType"`
	Supported         []SupportedPair `json:"supported"`
}
