package kraken

import "context"

//
// Balance retrieves the cash balance of every asset on the account. (POST /private/Balance)
//
func (o *Client) Balance(ctx context.Context, params BalanceParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "Balance", body, opts...)
}

// TradeBalance retrieves the margin trade balance summary.
func (o *Client) TradeBalance(ctx context.Context, params TradeBalanceParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "TradeBalance", body, opts...)
}

// OpenOrders retrieves the orders that are currently open.
func (o *Client) OpenOrders(ctx context.Context, params OpenOrdersParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "OpenOrders", body, opts...)
}

//
// ClosedOrders retrieves up to 50 closed orders at a time. (POST /private/ClosedOrders)
//
func (o *Client) ClosedOrders(ctx context.Context, params ClosedOrdersParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "ClosedOrders", body, opts...)
}

// QueryOrders retrieves specific orders by transaction id.
func (o *Client) QueryOrders(ctx context.Context, params QueryOrdersParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "QueryOrders", body, opts...)
}

// TradesHistory retrieves up to 50 trades at a time.
func (o *Client) TradesHistory(ctx context.Context, params TradesHistoryParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "TradesHistory", body, opts...)
}

//
// QueryTrades retrieves specific trades by transaction id. (POST /private/QueryTrades)
//
func (o *Client) QueryTrades(ctx context.Context, params QueryTradesParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "QueryTrades", body, opts...)
}

// OpenPositions retrieves open margin positions.
func (o *Client) OpenPositions(ctx context.Context, params OpenPositionsParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "OpenPositions", body, opts...)
}

// Ledgers retrieves up to 50 ledger entries at a time.
func (o *Client) Ledgers(ctx context.Context, params LedgersParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "Ledgers", body, opts...)
}

//
// QueryLedgers retrieves specific ledger entries by id. (POST /private/QueryLedgers)
//
func (o *Client) QueryLedgers(ctx context.Context, params QueryLedgersParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "QueryLedgers", body, opts...)
}

// TradeVolume retrieves the 30 day trade volume and, optionally, fee tiers.
func (o *Client) TradeVolume(ctx context.Context, params TradeVolumeParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "TradeVolume", body, opts...)
}

// AddOrder places an order (or only validates it when Validate is set).
func (o *Client) AddOrder(ctx context.Context, params AddOrderParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "AddOrder", body, opts...)
}

//
// CancelOrder cancels an open order. (POST /private/CancelOrder)
//
func (o *Client) CancelOrder(ctx context.Context, params CancelOrderParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "CancelOrder", body, opts...)
}

// DepositMethods retrieves the methods available for depositing an asset.
func (o *Client) DepositMethods(ctx context.Context, params DepositMethodsParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "DepositMethods", body, opts...)
}

// DepositAddresses retrieves (or generates) deposit addresses.
func (o *Client) DepositAddresses(ctx context.Context, params DepositAddressesParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "DepositAddresses", body, opts...)
}

//
// DepositStatus retrieves the status of recent deposits. (POST /private/DepositStatus)
//
func (o *Client) DepositStatus(ctx context.Context, params DepositStatusParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "DepositStatus", body, opts...)
}

// WithdrawInfo retrieves the fee and limit that would apply to a withdrawal.
func (o *Client) WithdrawInfo(ctx context.Context, params WithdrawParams, opts ...CallOption) (*Response, error) {
	body, err := params.body("WithdrawInfo")
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "WithdrawInfo", body, opts...)
}

// Withdraw withdraws funds to a pre-configured withdrawal key.
func (o *Client) Withdraw(ctx context.Context, params WithdrawParams, opts ...CallOption) (*Response, error) {
	body, err := params.body("Withdraw")
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "Withdraw", body, opts...)
}

//
// WithdrawStatus retrieves the status of recent withdrawals. (POST /private/WithdrawStatus)
//
func (o *Client) WithdrawStatus(ctx context.Context, params WithdrawStatusParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "WithdrawStatus", body, opts...)
}

// WithdrawCancel requests that a pending withdrawal be cancelled.
func (o *Client) WithdrawCancel(ctx context.Context, params WithdrawCancelParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "WithdrawCancel", body, opts...)
}

//
// WebSocketsToken retrieves a short-lived token for the authenticated websocket feeds. The token
// must be used within 15 minutes of being issued. (POST /private/GetWebSocketsToken)
//
func (o *Client) WebSocketsToken(ctx context.Context, params WebSocketsTokenParams, opts ...CallOption) (*Response, error) {
	body, err := params.body()
	if err != nil {
		return nil, err
	}

	return o.agent.PostToPrivateEndpoint(ctx, "GetWebSocketsToken", body, opts...)
}
