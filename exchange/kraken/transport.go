package kraken

import (
	"context"
	"github.com/haleyga/kraken-cryptoexchange-api/exchange"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"
)

//
// Request is everything a transport needs to perform one call against the exchange.
//
type Request struct {
	Method  string
	URL     string
	Header  http.Header
	Body    string        // Already encoded. Empty for GET requests.
	Timeout time.Duration // Zero means no deadline beyond whatever the context carries.
}

//
// Transport performs the network call for the request agent. Implementations return the response
// when the exchange answered with a 2xx status and an error otherwise. They must not retry.
//
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

//
// HTTPTransport implements the Transport interface on top of a standard library HTTP client.
//
type HTTPTransport struct {
	httpClient *http.Client
}

//
// NewHTTPTransport instantiates a transport around the provided client. A nil client means a fresh
// one with no client-wide timeout, since deadlines are applied per request.
//
func NewHTTPTransport(httpClient *http.Client) *HTTPTransport {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &HTTPTransport{
		httpClient: httpClient,
	}
}

//
// Do makes the specified request and returns the wrapped response. A non-2xx status yields an
// *exchange.HTTPError alongside whatever response was read.
//
func (o *HTTPTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	//
	// Apply the per-request deadline.
	//
	if req.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	//
	// Build and make the request.
	//
	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}

	if req.Header != nil {
		httpReq.Header = req.Header.Clone()
	}

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	//
	// Read the response while the deadline still applies.
	//
	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	wrappedResp := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}

	//
	// Make sure the status code was a success.
	//
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return wrappedResp, exchange.NewHTTPError(resp.StatusCode, respBody)
	}

	return wrappedResp, nil
}
