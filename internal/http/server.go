package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quantumauth-io/quantum-go-utils/log"

	"github.com/quantumauth-io/quantum-bridge-client/internal/catalog"
	"github.com/quantumauth-io/quantum-bridge-client/internal/navigator"
	"github.com/quantumauth-io/quantum-bridge-client/internal/session"
	"github.com/quantumauth-io/quantum-bridge-client/internal/wallet"
)

// WalletController is the write side of a wallet provider, driven by the
// browser wallet integrations through the API.
type WalletController interface {
	Kind() catalog.NetworkKind
	Connection() wallet.Connection
	Connect(address string) bool
	Disconnect() bool
}

type Server struct {
	engine *gin.Engine

	sessions *session.Manager
	catalog  *catalog.Catalog
	nav      navigator.Navigator
	wallets  map[string]WalletController

	uiAllowedOrigins []string
}

func NewServer(
	sessions *session.Manager,
	nav navigator.Navigator,
	evm, coinset WalletController,
	uiAllowedOrigins []string,
) http.Handler {
	s := &Server{
		sessions: sessions,
		catalog:  sessions.Catalog(),
		nav:      nav,
		wallets: map[string]WalletController{
			WalletKindEVM:     evm,
			WalletKindCoinset: coinset,
		},
		uiAllowedOrigins: uniqueOrigins(uiAllowedOrigins),
	}
	s.engine = NewRouter(s)

	log.Info("bridge api ready",
		"tokens", len(s.catalog.Tokens()),
		"networks", len(s.catalog.Networks()),
		"origins", s.uiAllowedOrigins,
	)
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}
