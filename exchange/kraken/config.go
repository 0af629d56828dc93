package kraken

import "time"

//
// Config describes where and how requests are sent. It is applied identically to public and private
// endpoints.
//
type Config struct {
	RootURL string        // Base address of the REST API, without a trailing slash.
	Timeout time.Duration // Deadline handed to the transport for each request.
	Version int           // API version embedded in every endpoint path.
}

//
// DefaultConfig returns the configuration used when nothing else is provided.
//
func DefaultConfig() Config {
	return Config{
		RootURL: BaseURL,
		Timeout: DefaultTimeout,
		Version: DefaultVersion,
	}
}

//
// CallOption overrides a single configuration field for one request. Overrides are applied in the
// order given, on top of the agent's defaults; fields that no option touches keep their default.
//
type CallOption func(*Config)

func WithRootURL(rootURL string) CallOption {
	return func(o *Config) {
		o.RootURL = rootURL
	}
}

func WithTimeout(timeout time.Duration) CallOption {
	return func(o *Config) {
		o.Timeout = timeout
	}
}

func WithVersion(version int) CallOption {
	return func(o *Config) {
		o.Version = version
	}
}

//
// With returns a copy of the configuration with the provided overrides applied. The receiver is
// left untouched.
//
func (o Config) With(opts ...CallOption) Config {
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
