package constants

import "time"

const (
	AppName       = "quantum-bridge-client"
	ConfigDirName = "quantum-bridge-client"
	DotEnvFile    = ".env"

	// EnvPrefix scopes environment overrides, e.g. BRIDGE_PORT.
	EnvPrefix = "BRIDGE"

	DefaultLocalHost  = "127.0.0.1"
	DefaultPort       = "6138"
	DefaultStepOneURL = "http://127.0.0.1:5173/bridge/step-1"

	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 5 * time.Second
)
