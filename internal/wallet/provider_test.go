package wallet

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumauth-io/quantum-bridge-client/internal/catalog"
)

func TestConnection_Usable(t *testing.T) {
	assert.False(t, Connection{}.Usable())
	assert.False(t, Connection{Connected: true}.Usable())
	assert.False(t, Connection{Address: "xch1abc"}.Usable())
	assert.True(t, Connection{Connected: true, Address: "xch1abc"}.Usable())
}

func TestProvider_ConnectDisconnect(t *testing.T) {
	p := NewCoinsetProvider()
	assert.Equal(t, catalog.KindCoinset, p.Kind())
	assert.Equal(t, Connection{}, p.Connection())

	assert.True(t, p.Connect("xch1abc"))
	assert.Equal(t, Connection{Connected: true, Address: "xch1abc"}, p.Connection())

	assert.True(t, p.Disconnect())
	assert.False(t, p.Disconnect(), "second disconnect is a no-op")
	assert.Equal(t, Connection{}, p.Connection())
}

func TestProvider_EmitsOnlyOnChange(t *testing.T) {
	p := NewEVMProvider()

	ch := make(chan Event, 4)
	sub := p.Subscribe(ch)
	defer sub.Unsubscribe()

	require.True(t, p.Connect("0xabc"))
	require.False(t, p.Connect("0xabc"))
	require.True(t, p.Connect(""))

	require.Len(t, ch, 2)
	first := <-ch
	assert.Equal(t, catalog.KindEVM, first.Kind)
	assert.Equal(t, Connection{Connected: true, Address: "0xabc"}, first.Connection)

	second := <-ch
	assert.Equal(t, Connection{Connected: true}, second.Connection)
}

func TestNormalizeEVMAddress(t *testing.T) {
	assert.Equal(t,
		"0x52908400098527886E0F7030069857D2E4169EE7",
		normalizeEVMAddress(" 0x52908400098527886e0f7030069857d2e4169ee7 "))

	// Not hex: kept verbatim.
	assert.Equal(t, "vitalik.eth", normalizeEVMAddress("vitalik.eth"))
}

func TestNormalizeCoinsetAddress(t *testing.T) {
	puzzleHash := make([]byte, 32)
	for i := range puzzleHash {
		puzzleHash[i] = byte(i * 7)
	}
	data, err := bech32.ConvertBits(puzzleHash, 8, 5, true)
	require.NoError(t, err)
	addr, err := bech32.EncodeM("xch", data)
	require.NoError(t, err)

	assert.Equal(t, addr, normalizeCoinsetAddress(strings.ToUpper(addr)))
	assert.Equal(t, addr, normalizeCoinsetAddress(addr))

	// Unparseable addresses are opaque.
	assert.Equal(t, "xch1abc", normalizeCoinsetAddress("xch1abc"))
}
