package session

import (
	"context"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumauth-io/quantum-bridge-client/internal/bridge"
	"github.com/quantumauth-io/quantum-bridge-client/internal/catalog/catalogtest"
	"github.com/quantumauth-io/quantum-bridge-client/internal/wallet"
)

type env struct {
	mgr     *Manager
	evm     *wallet.Provider
	coinset *wallet.Provider
}

func newEnv(t *testing.T) env {
	t.Helper()
	e := env{evm: wallet.NewEVMProvider(), coinset: wallet.NewCoinsetProvider()}
	e.mgr = NewManager(catalogtest.New(t), e.evm, e.coinset)
	t.Cleanup(e.mgr.Shutdown)
	return e
}

func view(t *testing.T, s *Session) bridge.Snapshot {
	t.Helper()
	snap, err := s.View(context.Background())
	require.NoError(t, err)
	return snap
}

func TestOpen_DefaultsAndExistingWallets(t *testing.T) {
	e := newEnv(t)
	e.coinset.Connect("xch1abc")

	s, err := e.mgr.Open("")
	require.NoError(t, err)

	snap := view(t, s)
	assert.Equal(t, "XCH", snap.Token.Symbol)
	assert.Equal(t, catalogtest.Ethereum, snap.SourceNetworkID)
	assert.Equal(t, catalogtest.Chia, snap.DestinationNetworkID)
	assert.Equal(t, "xch1abc", snap.RecipientAddress)
}

func TestOpen_UnknownToken(t *testing.T) {
	e := newEnv(t)

	_, err := e.mgr.Open("DOGE")
	require.Error(t, err)
	assert.True(t, errors.Is(err, bridge.ErrUnknownToken))
	assert.Equal(t, 0, e.mgr.Len())
}

func TestWalletEvents_RederiveRecipient(t *testing.T) {
	e := newEnv(t)
	s, err := e.mgr.Open("XCH")
	require.NoError(t, err)
	assert.Empty(t, view(t, s).RecipientAddress)

	e.coinset.Connect("xch1abc")
	assert.Equal(t, "xch1abc", view(t, s).RecipientAddress)

	// Same event twice leaves state unchanged.
	before := view(t, s)
	e.coinset.Connect("xch1abc")
	assert.Equal(t, before, view(t, s))

	e.coinset.Disconnect()
	snap := view(t, s)
	assert.Empty(t, snap.RecipientAddress)
	assert.Equal(t, catalogtest.Chia, snap.DestinationNetworkID)
}

func TestWalletEvents_FanOutToEverySession(t *testing.T) {
	e := newEnv(t)
	a, err := e.mgr.Open("XCH")
	require.NoError(t, err)
	b, err := e.mgr.Open("USDC")
	require.NoError(t, err)

	e.evm.Connect("0xabc")
	e.coinset.Connect("xch1abc")

	assert.Equal(t, "xch1abc", view(t, a).RecipientAddress, "XCH bridges to chia")
	assert.Equal(t, "0xabc", view(t, b).RecipientAddress, "USDC bridges to ethereum")
}

func TestOperations(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	s, err := e.mgr.Open("XCH")
	require.NoError(t, err)
	e.evm.Connect("0xabc")

	snap, err := s.Swap(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalogtest.Chia, snap.SourceNetworkID)
	assert.Equal(t, "0xabc", snap.RecipientAddress)

	snap, err = s.SelectDestination(ctx, catalogtest.ChiaTest)
	require.NoError(t, err)
	assert.Empty(t, snap.RecipientAddress)

	snap, err = s.SelectSource(ctx, catalogtest.Base)
	require.NoError(t, err)
	assert.Equal(t, catalogtest.Base, snap.SourceNetworkID)

	snap, err = s.SetAmount(ctx, "1.5")
	require.NoError(t, err)
	assert.True(t, snap.AmountWellFormed)
	assert.True(t, snap.CanProceed)

	applied, snap, err := s.SelectToken(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, catalogtest.Base, snap.SourceNetworkID)

	applied, snap, err = s.SelectToken(ctx, "SBX")
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, "SBX", snap.Token.Symbol)
}

func TestProceed(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	s, err := e.mgr.Open("XCH")
	require.NoError(t, err)

	_, snap, err := s.Proceed(ctx)
	assert.ErrorIs(t, err, ErrCannotProceed)
	assert.False(t, snap.CanProceed)
	assert.Equal(t, "XCH", snap.Token.Symbol)

	e.evm.Connect("0xabc")
	_, snap, err = s.Proceed(ctx)
	assert.ErrorIs(t, err, ErrCannotProceed, "amount still empty")
	assert.False(t, snap.CanProceed)
	assert.Empty(t, snap.Amount)

	_, err = s.SetAmount(ctx, "3")
	require.NoError(t, err)

	params, snap, err := s.Proceed(ctx)
	require.NoError(t, err)
	assert.True(t, snap.CanProceed)
	assert.Equal(t, bridge.NavigationParams{
		SourceNetworkID:      catalogtest.Ethereum,
		DestinationNetworkID: catalogtest.Chia,
		TokenSymbol:          "XCH",
		Amount:               "3",
	}, params)
}

func TestClose(t *testing.T) {
	e := newEnv(t)
	s, err := e.mgr.Open("")
	require.NoError(t, err)
	id := s.ID()

	_, ok := e.mgr.Get(id)
	require.True(t, ok)

	require.True(t, e.mgr.Close(id))
	assert.False(t, e.mgr.Close(id))
	_, ok = e.mgr.Get(id)
	assert.False(t, ok)

	_, err = s.View(context.Background())
	assert.ErrorIs(t, err, ErrClosed)

	// A closed session no longer holds up wallet providers.
	e.coinset.Connect("xch1abc")
	s.Close()
}

func TestManager_Shutdown(t *testing.T) {
	e := newEnv(t)
	for i := 0; i < 3; i++ {
		_, err := e.mgr.Open("")
		require.NoError(t, err)
	}
	require.Equal(t, 3, e.mgr.Len())

	e.mgr.Shutdown()
	assert.Equal(t, 0, e.mgr.Len())

	_, err := e.mgr.Open("")
	assert.ErrorIs(t, err, ErrShutdown)
	assert.Equal(t, 0, e.mgr.Len())
}

func TestManager_OpenRacingShutdown(t *testing.T) {
	e := newEnv(t)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		opened []*Session
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := e.mgr.Open("")
			if err != nil {
				assert.ErrorIs(t, err, ErrShutdown)
				return
			}
			mu.Lock()
			opened = append(opened, s)
			mu.Unlock()
		}()
	}
	e.mgr.Shutdown()
	wg.Wait()

	assert.Equal(t, 0, e.mgr.Len())
	for _, s := range opened {
		_, err := s.View(context.Background())
		assert.ErrorIs(t, err, ErrClosed, "every opened session is closed by Shutdown")
	}
}

func TestConcurrentCommandsAndEvents(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	s, err := e.mgr.Open("SBX")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := s.Swap(ctx)
				assert.NoError(t, err)
			}
		}()
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if (i+j)%2 == 0 {
					e.evm.Connect("0xabc")
					e.coinset.Disconnect()
				} else {
					e.coinset.Connect("xch1abc")
					e.evm.Disconnect()
				}
			}
		}(i)
	}
	wg.Wait()

	// Every Send returned, so the loop has seen the last change.
	snap := view(t, s)
	require.NotNil(t, snap.Destination)
	want := bridge.RecipientFor(snap.Destination.Kind, e.evm.Connection(), e.coinset.Connection())
	assert.Equal(t, want, snap.RecipientAddress)
}
