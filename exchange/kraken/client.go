package kraken

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/haleyga/kraken-cryptoexchange-api/exchange"
	"time"
)

//
// Client implements the exchange.Client interface for the Kraken REST API. It exposes one method per
// documented endpoint; each method only shapes its parameters into a query or body and delegates to
// the request agent. Responses come back unparsed – use Response.Decode to unwrap them.
//
type Client struct {
	agent *Agent
}

//
// NewClient instantiates a client. Passing nil credentials creates a client that can only reach
// public endpoints until Auth or Upgrade is called.
//
func NewClient(credentials *Credentials, opts ...Option) *Client {
	return &Client{
		agent: NewAgent(credentials, opts...),
	}
}

//
// Agent returns the request agent the client delegates to.
//
func (o *Client) Agent() *Agent {
	return o.agent
}

func (o *Client) IsUpgraded() bool {
	return o.agent.IsUpgraded()
}

func (o *Client) Upgrade(credentials Credentials) {
	o.agent.Upgrade(credentials)
}

//
// Auth implements the exchange.Client interface. It simply stores the key pair; nothing is sent.
//
func (o *Client) Auth(key string, secret string) error {
	o.agent.Upgrade(Credentials{
		PublicKey:  key,
		PrivateKey: secret,
	})

	return nil
}

//
// RetrieveCandles implements the exchange.Client interface on top of the OHLC endpoint. The exchange
// returns at most 720 candles per call regardless of how far back since reaches. A zero since asks
// for the most recent candles.
//
func (o *Client) RetrieveCandles(
	ctx context.Context,
	symbol string,
	interval exchange.Interval,
	since time.Time,
) ([]exchange.Candle, error) {
	params := OHLCParams{
		Pair:     symbol,
		Interval: interval.Minutes(),
	}

	if !since.IsZero() {
		params.Since = since.Unix()
	}

	//
	// Make the endpoint request and handle any errors along the way.
	//
	resp, err := o.OHLC(ctx, params)
	if err != nil {
		return nil, err
	}

	//
	// Parse the response. The result is keyed by the exchange's own name for the pair, next to a
	// "last" cursor.
	//
	var result map[string]json.RawMessage

	if err := resp.Decode(&result); err != nil {
		return nil, err
	}

	for k, v := range result {
		if k == "last" {
			continue
		}

		var candles []*Candle

		if err := json.Unmarshal(v, &candles); err != nil {
			return nil, err
		}

		ret := make([]exchange.Candle, len(candles))

		for i, c := range candles {
			c.end = c.start.Add(interval.Duration()).Add(-1 * time.Nanosecond)
			ret[i] = c
		}

		return ret, nil
	}

	return nil, fmt.Errorf("no candles were returned for %s", symbol)
}
