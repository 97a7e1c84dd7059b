package session

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/quantumauth-io/quantum-go-utils/log"

	"github.com/quantumauth-io/quantum-bridge-client/internal/catalog"
	"github.com/quantumauth-io/quantum-bridge-client/internal/metrics"
)

var ErrShutdown = errors.New("session: manager shut down")

// Manager owns every open session. All sessions share the same catalog and
// the same pair of wallet providers.
type Manager struct {
	catalog *catalog.Catalog
	evm     WalletProvider
	coinset WalletProvider

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool
}

func NewManager(c *catalog.Catalog, evm, coinset WalletProvider) *Manager {
	return &Manager{
		catalog:  c,
		evm:      evm,
		coinset:  coinset,
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) Catalog() *catalog.Catalog { return m.catalog }

// Open starts a session on symbol, or on the catalog default when symbol is
// empty. It fails with ErrShutdown once Shutdown has been called.
func (m *Manager) Open(symbol string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrShutdown
	}

	s, err := open(uuid.NewString(), m.catalog, m.evm, m.coinset, symbol)
	if err != nil {
		return nil, err
	}
	m.sessions[s.id] = s

	metrics.SessionOpened()
	log.Info("bridge session opened", "session", s.id, "token", symbol)
	return s, nil
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Close is idempotent; it reports whether id was open.
func (m *Manager) Close(id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return false
	}
	s.Close()
	metrics.SessionClosed()
	return true
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	open := m.sessions
	m.sessions = make(map[string]*Session)
	m.closed = true
	m.mu.Unlock()

	for _, s := range open {
		s.Close()
		metrics.SessionClosed()
	}
}
