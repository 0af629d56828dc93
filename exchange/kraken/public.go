package kraken

import "context"

//
// ServerTime retrieves the exchange's clock. (GET /public/Time)
//
func (o *Client) ServerTime(ctx context.Context, opts ...CallOption) (*Response, error) {
	return o.agent.GetPublicEndpoint(ctx, "Time", nil, opts...)
}

//
// SystemStatus retrieves whether the exchange is online, in maintenance, or restricted to cancels or
// posts. (GET /public/SystemStatus)
//
func (o *Client) SystemStatus(ctx context.Context, opts ...CallOption) (*Response, error) {
	return o.agent.GetPublicEndpoint(ctx, "SystemStatus", nil, opts...)
}

// AssetInfo calls GET /public/Assets.
func (o *Client) AssetInfo(ctx context.Context, params AssetInfoParams, opts ...CallOption) (*Response, error) {
	query, err := params.query()
	if err != nil {
		return nil, err
	}

	return o.agent.GetPublicEndpoint(ctx, "Assets", query, opts...)
}

// AssetPairs calls GET /public/AssetPairs.
func (o *Client) AssetPairs(ctx context.Context, params AssetPairsParams, opts ...CallOption) (*Response, error) {
	query, err := params.query()
	if err != nil {
		return nil, err
	}

	return o.agent.GetPublicEndpoint(ctx, "AssetPairs", query, opts...)
}

// Ticker calls GET /public/Ticker.
func (o *Client) Ticker(ctx context.Context, params TickerParams, opts ...CallOption) (*Response, error) {
	query, err := params.query()
	if err != nil {
		return nil, err
	}

	return o.agent.GetPublicEndpoint(ctx, "Ticker", query, opts...)
}

// OHLC calls GET /public/OHLC.
func (o *Client) OHLC(ctx context.Context, params OHLCParams, opts ...CallOption) (*Response, error) {
	query, err := params.query()
	if err != nil {
		return nil, err
	}

	return o.agent.GetPublicEndpoint(ctx, "OHLC", query, opts...)
}

// OrderBook calls GET /public/Depth.
func (o *Client) OrderBook(ctx context.Context, params OrderBookParams, opts ...CallOption) (*Response, error) {
	query, err := params.query()
	if err != nil {
		return nil, err
	}

	return o.agent.GetPublicEndpoint(ctx, "Depth", query, opts...)
}

// RecentTrades calls GET /public/Trades.
func (o *Client) RecentTrades(ctx context.Context, params RecentParams, opts ...CallOption) (*Response, error) {
	query, err := params.query("Trades")
	if err != nil {
		return nil, err
	}

	return o.agent.GetPublicEndpoint(ctx, "Trades", query, opts...)
}

// RecentSpread calls GET /public/Spread.
func (o *Client) RecentSpread(ctx context.Context, params RecentParams, opts ...CallOption) (*Response, error) {
	query, err := params.query("Spread")
	if err != nil {
		return nil, err
	}

	return o.agent.GetPublicEndpoint(ctx, "Spread", query, opts...)
}
