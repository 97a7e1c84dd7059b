// Package navigator hands a completed bridge selection to the next step.
package navigator

import (
	"context"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/quantumauth-io/quantum-bridge-client/internal/bridge"
)

// Query keys understood by the step-one page.
const (
	QuerySourceNetworkID      = "sourceNetworkId"
	QueryDestinationNetworkID = "destinationNetworkId"
	QueryTokenSymbol          = "tokenSymbol"
	QueryRecipient            = "recipient"
	QueryAmount               = "amount"
)

type Navigator interface {
	// Navigate returns where the caller should go next.
	Navigate(ctx context.Context, p bridge.NavigationParams) (string, error)
}

// URLNavigator builds the step-one URL; it never performs the transfer itself.
type URLNavigator struct {
	base *url.URL
}

func NewURLNavigator(base string) (*URLNavigator, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return nil, errors.New("navigator: step one url is empty")
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, errors.Wrapf(err, "navigator: parse step one url %q", base)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Newf("navigator: step one url %q must be absolute", base)
	}
	return &URLNavigator{base: u}, nil
}

func (n *URLNavigator) Navigate(ctx context.Context, p bridge.NavigationParams) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	u := *n.base
	q := u.Query()
	q.Set(QuerySourceNetworkID, p.SourceNetworkID)
	q.Set(QueryDestinationNetworkID, p.DestinationNetworkID)
	q.Set(QueryTokenSymbol, p.TokenSymbol)
	q.Set(QueryRecipient, p.Recipient)
	q.Set(QueryAmount, p.Amount)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
