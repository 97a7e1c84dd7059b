package http

// Generic HTTP / JSON strings
const (
	HTTPErrorInvalidJSONText = "invalid JSON"
	HTTPErrorForbiddenText   = "forbidden"
	HTTPErrorForbiddenHost   = "forbidden host"
)

// Path parameters
const (
	ParamSessionID  = "id"
	ParamWalletKind = "kind"
)

// Wallet kinds as they appear in paths.
const (
	WalletKindEVM     = "evm"
	WalletKindCoinset = "coinset"
)

// Session / wallet messages
const (
	SessionNotFoundText      = "session not found"
	SessionUnavailableText   = "session unavailable"
	TokenNotFoundText        = "token not found"
	WalletKindUnknownText    = "unknown wallet kind (allowed: evm, coinset)"
	ProceedNotReadyText      = "source wallet not connected or amount empty"
	ProceedNavigateFailedTxt = "failed to build next step"
	NetworkIDMissingText     = "missing networkId"
	TokenSymbolMissingText   = "missing symbol"
)

const corsMaxAgeSeconds = 600
