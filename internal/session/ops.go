package session

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/quantumauth-io/quantum-bridge-client/internal/bridge"
	"github.com/quantumauth-io/quantum-bridge-client/internal/metrics"
)

var ErrCannotProceed = errors.New("session: source wallet not connected or amount empty")

// Operation names, also used as metric labels.
const (
	OpSelectToken       = "select_token"
	OpSelectSource      = "select_source"
	OpSelectDestination = "select_destination"
	OpSwap              = "swap"
	OpSetAmount         = "set_amount"
	OpProceed           = "proceed"
)

// Apply runs fn and returns the snapshot taken right after it, in the same turn of the loop.
func (s *Session) Apply(ctx context.Context, op string, fn func(*bridge.Selector)) (bridge.Snapshot, error) {
	var snap bridge.Snapshot
	err := s.Do(ctx, func(sel *bridge.Selector) {
		fn(sel)
		snap = sel.Snapshot()
	})
	if err != nil {
		return bridge.Snapshot{}, err
	}
	metrics.RecordOperation(op)
	return snap, nil
}

// SelectToken reports whether symbol was known; unknown symbols change nothing.
func (s *Session) SelectToken(ctx context.Context, symbol string) (bool, bridge.Snapshot, error) {
	var applied bool
	snap, err := s.Apply(ctx, OpSelectToken, func(sel *bridge.Selector) {
		applied = sel.SelectToken(symbol)
	})
	return applied, snap, err
}

func (s *Session) SelectSource(ctx context.Context, networkID string) (bridge.Snapshot, error) {
	return s.Apply(ctx, OpSelectSource, func(sel *bridge.Selector) {
		sel.SelectSourceNetwork(networkID)
	})
}

func (s *Session) SelectDestination(ctx context.Context, networkID string) (bridge.Snapshot, error) {
	return s.Apply(ctx, OpSelectDestination, func(sel *bridge.Selector) {
		sel.SelectDestinationNetwork(networkID)
	})
}

func (s *Session) Swap(ctx context.Context) (bridge.Snapshot, error) {
	return s.Apply(ctx, OpSwap, (*bridge.Selector).SwapNetworks)
}

func (s *Session) SetAmount(ctx context.Context, raw string) (bridge.Snapshot, error) {
	return s.Apply(ctx, OpSetAmount, func(sel *bridge.Selector) {
		sel.SetAmount(raw)
	})
}

// Proceed returns the navigation params, or ErrCannotProceed when the
// selection is not ready. The gate, the params and the returned snapshot all
// come from the same turn of the loop.
func (s *Session) Proceed(ctx context.Context) (bridge.NavigationParams, bridge.Snapshot, error) {
	var (
		ok     bool
		params bridge.NavigationParams
	)
	snap, err := s.Apply(ctx, OpProceed, func(sel *bridge.Selector) {
		ok = sel.CanProceed()
		if ok {
			params = sel.NavigationParams()
		}
	})
	if err != nil {
		return bridge.NavigationParams{}, bridge.Snapshot{}, err
	}
	if !ok {
		metrics.RecordProceed(metrics.ProceedBlocked)
		return bridge.NavigationParams{}, snap, ErrCannotProceed
	}
	return params, snap, nil
}
