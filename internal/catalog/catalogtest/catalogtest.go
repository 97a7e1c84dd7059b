// Package catalogtest builds small catalogs for tests in other packages.
package catalogtest

import (
	"testing"

	"github.com/quantumauth-io/quantum-bridge-client/internal/catalog"
)

const (
	Ethereum = "ethereum"
	Base     = "base"
	Chia     = "chia"
	ChiaTest = "chia-testnet11"
)

func Networks() []catalog.Network {
	return []catalog.Network{
		{ID: Ethereum, DisplayName: "Ethereum", Kind: catalog.KindEVM},
		{ID: Base, DisplayName: "Base", Kind: catalog.KindEVM},
		{ID: Chia, DisplayName: "Chia", Kind: catalog.KindCoinset},
		{ID: ChiaTest, DisplayName: "Chia Testnet11", Kind: catalog.KindCoinset},
	}
}

// Tokens returns XCH (single pair, native on coin-set) first, then a
// multi-pair coin-set token and an EVM-native token.
func Tokens() []catalog.Token {
	return []catalog.Token{
		{
			Symbol:            "XCH",
			SourceNetworkType: catalog.KindCoinset,
			Supported:         []catalog.SupportedPair{{EVMNetworkID: Ethereum, CoinsetNetworkID: Chia}},
		},
		{
			Symbol:            "SBX",
			SourceNetworkType: catalog.KindCoinset,
			Supported: []catalog.SupportedPair{
				{EVMNetworkID: Base, CoinsetNetworkID: Chia},
				{EVMNetworkID: Ethereum, CoinsetNetworkID: Chia},
			},
		},
		{
			Symbol:            "USDC",
			SourceNetworkType: catalog.KindEVM,
			Supported: []catalog.SupportedPair{
				{EVMNetworkID: Ethereum, CoinsetNetworkID: Chia},
				{EVMNetworkID: Base, CoinsetNetworkID: ChiaTest},
			},
		},
	}
}

func New(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(Networks(), Tokens())
	if err != nil {
		t.Fatalf("catalogtest: %v", err)
	}
	return c
}
