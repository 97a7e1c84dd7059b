package wallet

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/ethereum/go-ethereum/common"
)

// normalizeEVMAddress returns the EIP-55 form of hex addresses and leaves
// anything else untouched.
func normalizeEVMAddress(addr string) string {
	a := strings.TrimSpace(addr)
	if !common.IsHexAddress(a) {
		return a
	}
	return common.HexToAddress(a).Hex()
}

// normalizeCoinsetAddress lower-cases bech32/bech32m addresses (xch1..., txch1...).
func normalizeCoinsetAddress(addr string) string {
	a := strings.TrimSpace(addr)
	hrp, data, version, err := bech32.DecodeGeneric(a)
	if err != nil {
		return a
	}

	var out string
	if version == bech32.VersionM {
		out, err = bech32.EncodeM(hrp, data)
	} else {
		out, err = bech32.Encode(hrp, data)
	}
	if err != nil {
		return a
	}
	return out
}
