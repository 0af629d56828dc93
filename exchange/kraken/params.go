package kraken

import (
	"github.com/shopspring/decimal"
	"strings"
)

//
// fields accumulates the wire form of an endpoint's parameters. Optional values that are left at
// their zero value are not sent at all.
//
type fields Body

func (o fields) str(key string, v string) {
	if v != "" {
		o[key] = v
	}
}

func (o fields) list(key string, v []string) {
	if len(v) > 0 {
		o[key] = strings.Join(v, ",")
	}
}

func (o fields) num(key string, v int64) {
	if v != 0 {
		o[key] = v
	}
}

func (o fields) dec(key string, v decimal.Decimal) {
	if !v.IsZero() {
		o[key] = v
	}
}

func (o fields) flag(key string, v bool) {
	if v {
		o[key] = true
	}
}

//
// requireStr and friends return a *MissingParamError when a mandatory value is empty.
//
func requireStr(endpoint string, key string, v string) error {
	if v == "" {
		return &MissingParamError{Endpoint: endpoint, Param: key}
	}

	return nil
}

func requireList(endpoint string, key string, v []string) error {
	if len(v) == 0 {
		return &MissingParamError{Endpoint: endpoint, Param: key}
	}

	return nil
}

func requireDec(endpoint string, key string, v decimal.Decimal) error {
	if v.IsZero() {
		return &MissingParamError{Endpoint: endpoint, Param: key}
	}

	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// ---------------------------------------------------------------------------------------------- //
// Public endpoint parameters.                                                                    //
// ---------------------------------------------------------------------------------------------- //

type AssetInfoParams struct {
	Info   string   // Info to retrieve. Defaults to "info".
	AClass string   // Asset class. Defaults to "currency".
	Assets []string // Assets to retrieve. Defaults to all.
}

func (o AssetInfoParams) query() (Body, error) {
	f := fields{}
	f.str("info", o.Info)
	f.str("aclass", o.AClass)
	f.list("asset", o.Assets)

	return Body(f), nil
}

type AssetPairsParams struct {
	Info  string   // One of "info", "leverage", "fees", or "margin".
	Pairs []string // Pairs to retrieve. Defaults to all.
}

func (o AssetPairsParams) query() (Body, error) {
	f := fields{}
	f.str("info", o.Info)
	f.list("pair", o.Pairs)

	return Body(f), nil
}

type TickerParams struct {
	Pairs []string
}

func (o TickerParams) query() (Body, error) {
	if err := requireList("Ticker", "pair", o.Pairs); err != nil {
		return nil, err
	}

	f := fields{}
	f.list("pair", o.Pairs)

	return Body(f), nil
}

type OHLCParams struct {
	Pair     string
	Interval int   // Candle width in minutes. Defaults to 1.
	Since    int64 // Unix time (seconds) of the earliest candle wanted.
}

func (o OHLCParams) query() (Body, error) {
	if err := requireStr("OHLC", "pair", o.Pair); err != nil {
		return nil, err
	}

	f := fields{}
	f.str("pair", o.Pair)
	f.num("interval", int64(o.Interval))
	f.num("since", o.Since)

	return Body(f), nil
}

type OrderBookParams struct {
	Pair  string
	Count int // Maximum number of asks and bids.
}

func (o OrderBookParams) query() (Body, error) {
	if err := requireStr("Depth", "pair", o.Pair); err != nil {
		return nil, err
	}

	f := fields{}
	f.str("pair", o.Pair)
	f.num("count", int64(o.Count))

	return Body(f), nil
}

//
// RecentParams serves both the recent trades and the recent spread endpoints, which share their
// parameters.
//
type RecentParams struct {
	Pair  string
	Since string // Cursor returned as "last" by a previous call.
}

func (o RecentParams) query(endpoint string) (Body, error) {
	if err := requireStr(endpoint, "pair", o.Pair); err != nil {
		return nil, err
	}

	f := fields{}
	f.str("pair", o.Pair)
	f.str("since", o.Since)

	return Body(f), nil
}

// ---------------------------------------------------------------------------------------------- //
// Private endpoint parameters. Every one of them carries the optional one-time password.        //
// ---------------------------------------------------------------------------------------------- //

type BalanceParams struct {
	OTP string
}

func (o BalanceParams) body() (Body, error) {
	f := fields{}
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type WebSocketsTokenParams struct {
	OTP string
}

func (o WebSocketsTokenParams) body() (Body, error) {
	f := fields{}
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type TradeBalanceParams struct {
	AClass string
	Asset  string // Base asset used to determine balance. Defaults to ZUSD.
	OTP    string
}

func (o TradeBalanceParams) body() (Body, error) {
	f := fields{}
	f.str("aclass", o.AClass)
	f.str("asset", o.Asset)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type OpenOrdersParams struct {
	Trades  bool  // Whether to include trades in the output.
	UserRef int32 // Restrict results to the given user reference id.
	OTP     string
}

func (o OpenOrdersParams) body() (Body, error) {
	f := fields{}
	f.flag("trades", o.Trades)
	f.num("userref", int64(o.UserRef))
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type ClosedOrdersParams struct {
	Trades    bool
	UserRef   int32
	Start     string // Unix timestamp or order tx id (exclusive).
	End       string // Unix timestamp or order tx id (inclusive).
	Offset    int64
	CloseTime string // One of "open", "close", or "both".
	OTP       string
}

func (o ClosedOrdersParams) body() (Body, error) {
	f := fields{}
	f.flag("trades", o.Trades)
	f.num("userref", int64(o.UserRef))
	f.str("start", o.Start)
	f.str("end", o.End)
	f.num("ofs", o.Offset)
	f.str("closetime", o.CloseTime)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type QueryOrdersParams struct {
	Trades  bool
	UserRef int32
	TxIDs   []string // Up to 50 transaction ids.
	OTP     string
}

func (o QueryOrdersParams) body() (Body, error) {
	if err := requireList("QueryOrders", "txid", o.TxIDs); err != nil {
		return nil, err
	}

	f := fields{}
	f.flag("trades", o.Trades)
	f.num("userref", int64(o.UserRef))
	f.list("txid", o.TxIDs)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type TradesHistoryParams struct {
	Type   string // e.g. "all", "any position", "closed position".
	Trades bool   // Whether to include trades related to position in the output.
	Start  string
	End    string
	Offset int64
	OTP    string
}

func (o TradesHistoryParams) body() (Body, error) {
	f := fields{}
	f.str("type", o.Type)
	f.flag("trades", o.Trades)
	f.str("start", o.Start)
	f.str("end", o.End)
	f.num("ofs", o.Offset)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type QueryTradesParams struct {
	TxIDs  []string
	Trades bool
	OTP    string
}

func (o QueryTradesParams) body() (Body, error) {
	if err := requireList("QueryTrades", "txid", o.TxIDs); err != nil {
		return nil, err
	}

	f := fields{}
	f.list("txid", o.TxIDs)
	f.flag("trades", o.Trades)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type OpenPositionsParams struct {
	TxIDs   []string
	DoCalcs bool // Whether to include profit/loss calculations.
	OTP     string
}

func (o OpenPositionsParams) body() (Body, error) {
	f := fields{}
	f.list("txid", o.TxIDs)
	f.flag("docalcs", o.DoCalcs)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type LedgersParams struct {
	AClass string
	Assets []string
	Type   string // e.g. "all", "deposit", "withdrawal", "trade", "margin".
	Start  string
	End    string
	Offset int64
	OTP    string
}

func (o LedgersParams) body() (Body, error) {
	f := fields{}
	f.str("aclass", o.AClass)
	f.list("asset", o.Assets)
	f.str("type", o.Type)
	f.str("start", o.Start)
	f.str("end", o.End)
	f.num("ofs", o.Offset)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type QueryLedgersParams struct {
	IDs []string // Up to 20 ledger ids.
	OTP string
}

func (o QueryLedgersParams) body() (Body, error) {
	if err := requireList("QueryLedgers", "id", o.IDs); err != nil {
		return nil, err
	}

	f := fields{}
	f.list("id", o.IDs)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type TradeVolumeParams struct {
	Pairs   []string
	FeeInfo bool // Whether to include fee info in the result.
	OTP     string
}

func (o TradeVolumeParams) body() (Body, error) {
	f := fields{}
	f.list("pair", o.Pairs)
	f.flag("fee-info", o.FeeInfo)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

//
// OrderSide is the direction of an order.
//
type OrderSide string

const (
	Buy  OrderSide = "buy"
	Sell OrderSide = "sell"
)

//
// OrderType is one of the order types the exchange accepts.
//
type OrderType string

const (
	Market          OrderType = "market"
	Limit           OrderType = "limit"
	StopLoss        OrderType = "stop-loss"
	TakeProfit      OrderType = "take-profit"
	StopLossLimit   OrderType = "stop-loss-limit"
	TakeProfitLimit OrderType = "take-profit-limit"
	SettlePosition  OrderType = "settle-position"
)

//
// Price is an order price exactly as the exchange should receive it. Besides plain values
// ("37500.5") the exchange accepts offsets from the last traded price: a "+" or "-" prefix for an
// absolute offset, a "%" suffix for a percentage, and a "#" prefix to let the exchange pick the sign
// from the order side. None of that survives a round trip through a decimal, so prices stay text.
//
type Price string

//
// PriceOf converts an absolute decimal price.
//
func PriceOf(d decimal.Decimal) Price {
	return Price(d.String())
}

func (o Price) String() string {
	return string(o)
}

//
// ConditionalClose describes the order that is placed automatically once the primary order fills.
// Its fields travel as close[ordertype], close[price], and close[price2].
//
type ConditionalClose struct {
	OrderType OrderType
	Price     Price
	Price2    Price
}

type AddOrderParams struct {
	Pair      string
	Side      OrderSide
	OrderType OrderType
	Volume    decimal.Decimal
	Price     Price    // Meaning depends on the order type.
	Price2    Price    // Secondary price, for the *-limit order types.
	Leverage  string   // e.g. "2:1". Defaults to none.
	OFlags    []string // e.g. "post", "fcib", "fciq", "nompp".
	StartTm   string   // "0" for now, "+<n>" for n seconds from now, or a unix timestamp.
	ExpireTm  string
	UserRef   int32
	Validate  bool // Validate inputs only; do not submit the order.
	Close     *ConditionalClose
	OTP       string
}

func (o AddOrderParams) body() (Body, error) {
	err := firstErr(
		requireStr("AddOrder", "pair", o.Pair),
		requireStr("AddOrder", "type", string(o.Side)),
		requireStr("AddOrder", "ordertype", string(o.OrderType)),
		requireDec("AddOrder", "volume", o.Volume),
	)
	if err != nil {
		return nil, err
	}

	f := fields{}
	f.str("pair", o.Pair)
	f.str("type", string(o.Side))
	f.str("ordertype", string(o.OrderType))
	f.dec("volume", o.Volume)
	f.str("price", o.Price.String())
	f.str("price2", o.Price2.String())
	f.str("leverage", o.Leverage)
	f.list("oflags", o.OFlags)
	f.str("starttm", o.StartTm)
	f.str("expiretm", o.ExpireTm)
	f.num("userref", int64(o.UserRef))
	f.flag("validate", o.Validate)
	f.str(OTPField, o.OTP)

	if o.Close != nil {
		if err := requireStr("AddOrder", "close[ordertype]", string(o.Close.OrderType)); err != nil {
			return nil, err
		}

		f.str("close[ordertype]", string(o.Close.OrderType))
		f.str("close[price]", o.Close.Price.String())
		f.str("close[price2]", o.Close.Price2.String())
	}

	return Body(f), nil
}

type CancelOrderParams struct {
	TxID string // Transaction id or user reference id.
	OTP  string
}

func (o CancelOrderParams) body() (Body, error) {
	if err := requireStr("CancelOrder", "txid", o.TxID); err != nil {
		return nil, err
	}

	f := fields{}
	f.str("txid", o.TxID)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type DepositMethodsParams struct {
	AClass string
	Asset  string
	OTP    string
}

func (o DepositMethodsParams) body() (Body, error) {
	if err := requireStr("DepositMethods", "asset", o.Asset); err != nil {
		return nil, err
	}

	f := fields{}
	f.str("aclass", o.AClass)
	f.str("asset", o.Asset)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type DepositAddressesParams struct {
	AClass string
	Asset  string
	Method string
	New    bool // Whether to generate a new address.
	OTP    string
}

func (o DepositAddressesParams) body() (Body, error) {
	err := firstErr(
		requireStr("DepositAddresses", "asset", o.Asset),
		requireStr("DepositAddresses", "method", o.Method),
	)
	if err != nil {
		return nil, err
	}

	f := fields{}
	f.str("aclass", o.AClass)
	f.str("asset", o.Asset)
	f.str("method", o.Method)
	f.flag("new", o.New)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type DepositStatusParams struct {
	AClass string
	Asset  string
	Method string
	OTP    string
}

func (o DepositStatusParams) body() (Body, error) {
	err := firstErr(
		requireStr("DepositStatus", "asset", o.Asset),
		requireStr("DepositStatus", "method", o.Method),
	)
	if err != nil {
		return nil, err
	}

	f := fields{}
	f.str("aclass", o.AClass)
	f.str("asset", o.Asset)
	f.str("method", o.Method)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

//
// WithdrawParams serves both the withdrawal information and the withdrawal endpoints, which share
// their parameters.
//
type WithdrawParams struct {
	AClass string
	Asset  string
	Key    string // Name of the withdrawal key, as set up on the account.
	Amount decimal.Decimal
	OTP    string
}

func (o WithdrawParams) body(endpoint string) (Body, error) {
	err := firstErr(
		requireStr(endpoint, "asset", o.Asset),
		requireStr(endpoint, "key", o.Key),
		requireDec(endpoint, "amount", o.Amount),
	)
	if err != nil {
		return nil, err
	}

	f := fields{}
	f.str("aclass", o.AClass)
	f.str("asset", o.Asset)
	f.str("key", o.Key)
	f.dec("amount", o.Amount)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type WithdrawStatusParams struct {
	AClass string
	Asset  string
	Method string
	OTP    string
}

func (o WithdrawStatusParams) body() (Body, error) {
	if err := requireStr("WithdrawStatus", "asset", o.Asset); err != nil {
		return nil, err
	}

	f := fields{}
	f.str("aclass", o.AClass)
	f.str("asset", o.Asset)
	f.str("method", o.Method)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}

type WithdrawCancelParams struct {
	AClass string
	Asset  string
	RefID  string // Withdrawal reference id.
	OTP    string
}

func (o WithdrawCancelParams) body() (Body, error) {
	err := firstErr(
		requireStr("WithdrawCancel", "asset", o.Asset),
		requireStr("WithdrawCancel", "refid", o.RefID),
	)
	if err != nil {
		return nil, err
	}

	f := fields{}
	f.str("aclass", o.AClass)
	f.str("asset", o.Asset)
	f.str("refid", o.RefID)
	f.str(OTPField, o.OTP)

	return Body(f), nil
}
