package exchange

import (
	"context"
	"time"
)

//
// Client generically provides an interface to an object that can be used to interact with a
// cryptocurrency exchange's regular REST API. Normally, this is the client used to do things
// like place orders, check balances, and retrieve historical trade data.
//
// Whenever an endpoint fails – whether due to a system failure, an HTTP error, or an API error –
// the error component of the response will be non-nil.
//
type Client interface {

	//
	// Auth provides the relevant exchange's API key and secret to the client. Implementations
	// simply store the information for use when signing requests; no network call is made.
	//
	Auth(key string, secret string) error

	//
	// RetrieveCandles retrieves candles of the specified interval for the specified ticker symbol
	// starting at the specified instant. Exchanges cap how many candles come back from one call.
	//
	RetrieveCandles(ctx context.Context, symbol string, interval Interval, since time.Time) ([]Candle, error)
}
