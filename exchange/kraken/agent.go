package kraken

import (
	"context"
	"fmt"
	"github.com/haleyga/kraken-cryptoexchange-api/constants"
	"net/http"
	"sync/atomic"
)

//
// Agent is the single point through which every request to the exchange leaves the process. It
// owns the credentials, decides between the public and private request shapes, stamps private
// bodies with a nonce, signs them, and hands the result to its transport. It never retries and it
// never interprets what comes back.
//
// An Agent is safe for concurrent use. Calls do not wait on each other; the only shared mutable
// state is the nonce source, which serializes itself.
//
type Agent struct {
	credentials atomic.Pointer[Credentials]
	config      Config
	transport   Transport
	nonces      NonceSource
}

//
// Option configures an Agent (or a Client) at construction time.
//
type Option func(*Agent)

//
// WithConfig replaces the process defaults the agent applies to every call.
//
func WithConfig(config Config) Option {
	return func(o *Agent) {
		o.config = config
	}
}

//
// WithTransport replaces the transport requests are dispatched through.
//
func WithTransport(transport Transport) Option {
	return func(o *Agent) {
		o.transport = transport
	}
}

//
// WithNonceSource replaces the nonce source. By default every agent in the process shares one
// generator, so that two agents holding the same key pair still emit a single increasing sequence.
//
func WithNonceSource(nonces NonceSource) Option {
	return func(o *Agent) {
		o.nonces = nonces
	}
}

//
// NewAgent instantiates an agent. Passing nil credentials creates an unauthenticated agent that can
// only reach public endpoints until Upgrade is called.
//
func NewAgent(credentials *Credentials, opts ...Option) *Agent {
	o := &Agent{
		config:    DefaultConfig(),
		transport: NewHTTPTransport(nil),
		nonces:    defaultNonces,
	}

	for _, opt := range opts {
		opt(o)
	}

	if credentials != nil {
		o.Upgrade(*credentials)
	}

	return o
}

//
// IsUpgraded returns whether the agent currently holds credentials.
//
func (o *Agent) IsUpgraded() bool {
	return o.credentials.Load() != nil
}

//
// Upgrade replaces the agent's credentials with the provided ones. Nothing from the previous pair
// survives, and there is no way back to an unauthenticated agent.
//
func (o *Agent) Upgrade(credentials Credentials) {
	o.credentials.Store(&credentials)
}

//
// Config returns the defaults the agent applies to every call.
//
func (o *Agent) Config() Config {
	return o.config
}

//
// GetPublicEndpoint sends GET {root}/{version}/public/{name}?{query}. No credentials are needed.
// Transport failures come back exactly as the transport reported them.
//
func (o *Agent) GetPublicEndpoint(ctx context.Context, name string, query Body, opts ...CallOption) (*Response, error) {
	config := o.config.With(opts...)

	//
	// Build the request URL.
	//
	url := fmt.Sprintf("%s/%d/public/%s", config.RootURL, config.Version, name)
	if len(query) > 0 {
		url += "?" + Encode(query)
	}

	header := http.Header{}
	header.Set(UserAgentHeader, constants.UserAgent())

	logger.Printf("GET %s", url)

	//
	// Make the endpoint request.
	//
	return o.transport.Do(ctx, &Request{
		Method:  http.MethodGet,
		URL:     url,
		Header:  header,
		Timeout: config.Timeout,
	})
}

//
// PostToPrivateEndpoint sends a signed POST to {root}/{version}/private/{name}. It fails with
// ErrNotAuthenticated, without touching the network, when the agent holds no credentials. The
// body must not contain a nonce; the agent adds a fresh one to a copy of it, signs the copy, and
// sends exactly what it signed.
//
func (o *Agent) PostToPrivateEndpoint(ctx context.Context, name string, body Body, opts ...CallOption) (*Response, error) {
	//
	// Make sure we are allowed to make the call at all.
	//
	credentials := o.credentials.Load()
	if credentials == nil {
		return nil, ErrNotAuthenticated
	}

	if _, ok := body[NonceField]; ok {
		return nil, ErrNonceSupplied
	}

	config := o.config.With(opts...)

	//
	// Stamp a copy of the body with a fresh nonce so that the caller's map is never mutated.
	//
	signed := make(Body, len(body)+1)
	for k, v := range body {
		signed[k] = v
	}

	nonce := o.nonces.Next()
	signed[NonceField] = nonce

	//
	// Sign the request.
	//
	path := fmt.Sprintf("/%d/private/%s", config.Version, name)

	signature, err := Sign(path, signed, credentials.PrivateKey)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set(UserAgentHeader, constants.UserAgent())
	header.Set(ContentTypeHeader, FormContentType)
	header.Set(APIKeyHeader, credentials.PublicKey)
	header.Set(APISignHeader, signature)

	logger.Printf("POST %s (Nonce: %d)", path, nonce)

	//
	// Make the endpoint request.
	//
	return o.transport.Do(ctx, &Request{
		Method:  http.MethodPost,
		URL:     config.RootURL + path,
		Header:  header,
		Body:    Encode(signed),
		Timeout: config.Timeout,
	})
}
