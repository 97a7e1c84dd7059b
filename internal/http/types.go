package http

import (
	"github.com/quantumauth-io/quantum-bridge-client/internal/bridge"
	"github.com/quantumauth-io/quantum-bridge-client/internal/catalog"
	"github.com/quantumauth-io/quantum-bridge-client/internal/wallet"
)

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type healthResponse struct {
	OK       bool `json:"ok"`
	Sessions int  `json:"sessions"`
}

type catalogResponse struct {
	DefaultToken string            `json:"defaultToken"`
	Tokens       []catalog.Token   `json:"tokens"`
	Networks     []catalog.Network `json:"networks"`
}

type walletsResponse struct {
	EVM     wallet.Connection `json:"evm"`
	Coinset wallet.Connection `json:"coinset"`
}

type connectWalletReq struct {
	Address string `json:"address"`
}

type walletChangeResponse struct {
	Kind       catalog.NetworkKind `json:"kind"`
	Changed    bool                `json:"changed"`
	Connection wallet.Connection   `json:"connection"`
}

type openSessionReq struct {
	TokenSymbol string `json:"tokenSymbol"`
}

type sessionResponse struct {
	SessionID string          `json:"sessionId"`
	State     bridge.Snapshot `json:"state"`
}

type selectTokenReq struct {
	Symbol string `json:"symbol"`
}

type selectTokenResponse struct {
	Applied bool            `json:"applied"`
	State   bridge.Snapshot `json:"state"`
}

type selectNetworkReq struct {
	NetworkID string `json:"networkId"`
}

type setAmountReq struct {
	Amount string `json:"amount"`
}

type proceedResponse struct {
	Params bridge.NavigationParams `json:"params"`
	URL    string                  `json:"url"`
}

type proceedBlockedResponse struct {
	OK    bool            `json:"ok"`
	Error string          `json:"error"`
	State bridge.Snapshot `json:"state"`
}
