package wallet

import (
	"sync"

	"github.com/ethereum/go-ethereum/event"
	"github.com/quantumauth-io/quantum-go-utils/log"

	"github.com/quantumauth-io/quantum-bridge-client/internal/catalog"
)

// Provider tracks the connection of one wallet kind and fans connection
// changes out to subscribers. It is the only writer of its Connection.
type Provider struct {
	kind      catalog.NetworkKind
	normalize func(string) string

	mu   sync.RWMutex
	conn Connection

	feed event.FeedOf[Event]
}

func NewEVMProvider() *Provider {
	return &Provider{kind: catalog.KindEVM, normalize: normalizeEVMAddress}
}

func NewCoinsetProvider() *Provider {
	return &Provider{kind: catalog.KindCoinset, normalize: normalizeCoinsetAddress}
}

func (p *Provider) Kind() catalog.NetworkKind { return p.kind }

func (p *Provider) Connection() Connection {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.conn
}

// Connect marks the wallet connected with address (which may be empty while
// the wallet is still handing out accounts). Switching accounts is a Connect
// with the new address. It reports whether anything changed.
func (p *Provider) Connect(address string) bool {
	return p.set(Connection{Connected: true, Address: p.normalize(address)})
}

// Disconnect is idempotent.
func (p *Provider) Disconnect() bool {
	return p.set(Connection{})
}

// Subscribe delivers an Event for every change. Send blocks until every
// subscriber has received, so ch should be drained by a running loop.
func (p *Provider) Subscribe(ch chan<- Event) event.Subscription {
	return p.feed.Subscribe(ch)
}

func (p *Provider) set(next Connection) bool {
	p.mu.Lock()
	if p.conn == next {
		p.mu.Unlock()
		return false
	}
	p.conn = next
	p.mu.Unlock()

	log.Info("wallet connection changed",
		"kind", string(p.kind),
		"connected", next.Connected,
		"address", next.Address,
	)

	p.feed.Send(Event{Kind: p.kind, Connection: next})
	return true
}
