package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/quantumauth-io/quantum-go-utils/log"

	"github.com/quantumauth-io/quantum-bridge-client/internal/bridge"
	"github.com/quantumauth-io/quantum-bridge-client/internal/metrics"
	"github.com/quantumauth-io/quantum-bridge-client/internal/session"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{OK: true, Sessions: s.sessions.Len()})
}

func (s *Server) handleCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, catalogResponse{
		DefaultToken: s.catalog.DefaultToken().Symbol,
		Tokens:       s.catalog.Tokens(),
		Networks:     s.catalog.Networks(),
	})
}

// ---- wallets ----

func (s *Server) handleWallets(c *gin.Context) {
	c.JSON(http.StatusOK, walletsResponse{
		EVM:     s.wallets[WalletKindEVM].Connection(),
		Coinset: s.wallets[WalletKindCoinset].Connection(),
	})
}

func (s *Server) walletFromPath(c *gin.Context) (WalletController, bool) {
	w, ok := s.wallets[strings.ToLower(c.Param(ParamWalletKind))]
	if !ok {
		writeError(c, http.StatusNotFound, WalletKindUnknownText)
		return nil, false
	}
	return w, true
}

func (s *Server) handleWalletConnect(c *gin.Context) {
	w, ok := s.walletFromPath(c)
	if !ok {
		return
	}
	var req connectWalletReq
	if !bindJSON(c, &req) {
		return
	}

	changed := w.Connect(req.Address)
	c.JSON(http.StatusOK, walletChangeResponse{Kind: w.Kind(), Changed: changed, Connection: w.Connection()})
}

func (s *Server) handleWalletDisconnect(c *gin.Context) {
	w, ok := s.walletFromPath(c)
	if !ok {
		return
	}

	changed := w.Disconnect()
	c.JSON(http.StatusOK, walletChangeResponse{Kind: w.Kind(), Changed: changed, Connection: w.Connection()})
}

// ---- sessions ----

func (s *Server) handleOpenSession(c *gin.Context) {
	var req openSessionReq
	if !bindOptionalJSON(c, &req) {
		return
	}

	sess, err := s.sessions.Open(strings.TrimSpace(req.TokenSymbol))
	if err != nil {
		if errors.Is(err, bridge.ErrUnknownToken) {
			writeError(c, http.StatusNotFound, TokenNotFoundText)
			return
		}
		if errors.Is(err, session.ErrShutdown) {
			writeError(c, http.StatusServiceUnavailable, SessionUnavailableText)
			return
		}
		log.Error("open bridge session failed", "error", err)
		writeError(c, http.StatusInternalServerError, SessionUnavailableText)
		return
	}

	snap, err := sess.View(c.Request.Context())
	if err != nil {
		s.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse{SessionID: sess.ID(), State: snap})
}

func (s *Server) sessionFromPath(c *gin.Context) (*session.Session, bool) {
	sess, ok := s.sessions.Get(c.Param(ParamSessionID))
	if !ok {
		writeError(c, http.StatusNotFound, SessionNotFoundText)
		return nil, false
	}
	return sess, true
}

func (s *Server) writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrClosed):
		writeError(c, http.StatusNotFound, SessionNotFoundText)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(c, http.StatusServiceUnavailable, SessionUnavailableText)
	default:
		log.Error("bridge session error", "error", err)
		writeError(c, http.StatusInternalServerError, SessionUnavailableText)
	}
}

func (s *Server) writeState(c *gin.Context, sess *session.Session, snap bridge.Snapshot, err error) {
	if err != nil {
		s.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse{SessionID: sess.ID(), State: snap})
}

func (s *Server) handleGetSession(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}
	snap, err := sess.View(c.Request.Context())
	s.writeState(c, sess, snap, err)
}

func (s *Server) handleCloseSession(c *gin.Context) {
	if !s.sessions.Close(c.Param(ParamSessionID)) {
		writeError(c, http.StatusNotFound, SessionNotFoundText)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleSelectToken(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}
	var req selectTokenReq
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Symbol) == "" {
		writeError(c, http.StatusBadRequest, TokenSymbolMissingText)
		return
	}

	applied, snap, err := sess.SelectToken(c.Request.Context(), strings.TrimSpace(req.Symbol))
	if err != nil {
		s.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, selectTokenResponse{Applied: applied, State: snap})
}

func (s *Server) networkIDFromBody(c *gin.Context) (string, bool) {
	var req selectNetworkReq
	if !bindJSON(c, &req) {
		return "", false
	}
	id := strings.TrimSpace(req.NetworkID)
	if id == "" {
		writeError(c, http.StatusBadRequest, NetworkIDMissingText)
		return "", false
	}
	return id, true
}

func (s *Server) handleSelectSource(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}
	id, ok := s.networkIDFromBody(c)
	if !ok {
		return
	}
	snap, err := sess.SelectSource(c.Request.Context(), id)
	s.writeState(c, sess, snap, err)
}

func (s *Server) handleSelectDestination(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}
	id, ok := s.networkIDFromBody(c)
	if !ok {
		return
	}
	snap, err := sess.SelectDestination(c.Request.Context(), id)
	s.writeState(c, sess, snap, err)
}

func (s *Server) handleSwap(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}
	snap, err := sess.Swap(c.Request.Context())
	s.writeState(c, sess, snap, err)
}

// handleSetAmount stores the amount as typed; amountWellFormed in the
// response tells the UI whether to flag it.
func (s *Server) handleSetAmount(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}
	var req setAmountReq
	if !bindJSON(c, &req) {
		return
	}
	snap, err := sess.SetAmount(c.Request.Context(), req.Amount)
	s.writeState(c, sess, snap, err)
}

func (s *Server) handleProceed(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	params, snap, err := sess.Proceed(ctx)
	if errors.Is(err, session.ErrCannotProceed) {
		c.JSON(http.StatusConflict, proceedBlockedResponse{OK: false, Error: ProceedNotReadyText, State: snap})
		return
	}
	if err != nil {
		s.writeSessionError(c, err)
		return
	}

	next, err := s.nav.Navigate(ctx, params)
	if err != nil {
		metrics.RecordProceed(metrics.ProceedFailed)
		log.Error("navigate to next step failed", "session", sess.ID(), "error", err)
		writeError(c, http.StatusInternalServerError, ProceedNavigateFailedTxt)
		return
	}

	metrics.RecordProceed(metrics.ProceedOK)
	log.Info("bridge step completed",
		"session", sess.ID(),
		"token", params.TokenSymbol,
		"source", params.SourceNetworkID,
		"destination", params.DestinationNetworkID,
	)
	c.JSON(http.StatusOK, proceedResponse{Params: params, URL: next})
}
