package kraken

import "time"

const (
	UserAgentHeader   = "User-Agent"
	APIKeyHeader      = "API-Key"
	APISignHeader     = "API-Sign"
	ContentTypeHeader = "Content-Type"
	FormContentType   = "application/x-www-form-urlencoded"

	BaseURL        = "https://api.kraken.com"
	DefaultVersion = 0
	DefaultTimeout = 5 * time.Second

	NonceField = "nonce"
	OTPField   = "otp"
)
