package cli

import (
	"fmt"
	"github.com/haleyga/kraken-cryptoexchange-api/exchange"
	"github.com/haleyga/kraken-cryptoexchange-api/exchange/kraken"
	"github.com/haleyga/kraken-cryptoexchange-api/structs/evictingqueue"
	"github.com/logrusorgru/aurora"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"strconv"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------------------------- //
// Public market data.                                                                            //
// ---------------------------------------------------------------------------------------------- //

func newTimeCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "time",
		Short: "Show the exchange's server time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := o.client.ServerTime(cmd.Context())

			return o.render(cmd, resp, err)
		},
	}
}

func newStatusCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the exchange is online",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := o.client.SystemStatus(cmd.Context())

			return o.render(cmd, resp, err)
		},
	}
}

func newTickerCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ticker PAIR [PAIR...]",
		Short: "Show ticker information for one or more pairs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := o.client.Ticker(cmd.Context(), kraken.TickerParams{Pairs: args})

			return o.render(cmd, resp, err)
		},
	}
}

func newOHLCCommand(o *options) *cobra.Command {
	var (
		interval string
		since    time.Duration
		last     int
	)

	cmd := &cobra.Command{
		Use:   "ohlc PAIR",
		Short: "Show recent candles for a pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := exchange.ParseInterval(interval)
			if err != nil {
				return err
			}

			candles, err := o.client.RetrieveCandles(cmd.Context(), args[0], parsed, time.Now().Add(-since))
			if err != nil {
				return err
			}

			recent := evictingqueue.New[exchange.Candle](last)
			recent.Add(candles...)

			rows := make([]map[string]interface{}, 0, recent.Len())

			for _, c := range recent.Items() {
				rows = append(rows, map[string]interface{}{
					"start":  c.StartTime().Format(time.RFC3339),
					"open":   c.Open().String(),
					"high":   c.High().String(),
					"low":    c.Low().String(),
					"close":  c.Close().String(),
					"vwap":   c.VWAP().String(),
					"volume": c.Volume().String(),
					"count":  c.Count(),
				})
			}

			return o.print(cmd, rows)
		},
	}

	cmd.Flags().StringVar(&interval, "interval", exchange.OneHour.String(), "Candle width: 1m, 5m, 15m, 30m, 1h, 4h, 1d, 1w, 15d")
	cmd.Flags().DurationVar(&since, "since", 24*time.Hour, "How far back to start")
	cmd.Flags().IntVar(&last, "last", 0, "Only show the most recent N candles (default: all)")

	return cmd
}

func newDepthCommand(o *options) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "depth PAIR",
		Short: "Show the order book for a pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := o.client.OrderBook(cmd.Context(), kraken.OrderBookParams{Pair: args[0], Count: count})

			return o.render(cmd, resp, err)
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "Maximum number of asks and bids")

	return cmd
}

// ---------------------------------------------------------------------------------------------- //
// Private account and trading.                                                                   //
// ---------------------------------------------------------------------------------------------- //

func newBalanceCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the account balance of every asset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := o.client.Balance(cmd.Context(), kraken.BalanceParams{OTP: o.otp})

			return o.render(cmd, resp, err)
		},
	}
}

func newTradeBalanceCommand(o *options) *cobra.Command {
	var asset string

	cmd := &cobra.Command{
		Use:   "trade-balance",
		Short: "Show the margin trade balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := o.client.TradeBalance(cmd.Context(), kraken.TradeBalanceParams{Asset: asset, OTP: o.otp})

			return o.render(cmd, resp, err)
		},
	}

	cmd.Flags().StringVar(&asset, "asset", "", "Base asset used to determine the balance (default ZUSD)")

	return cmd
}

func newOpenOrdersCommand(o *options) *cobra.Command {
	var trades bool

	cmd := &cobra.Command{
		Use:   "open-orders",
		Short: "List open orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := o.client.OpenOrders(cmd.Context(), kraken.OpenOrdersParams{Trades: trades, OTP: o.otp})

			return o.render(cmd, resp, err)
		},
	}

	cmd.Flags().BoolVar(&trades, "trades", false, "Include trades in the output")

	return cmd
}

func newAddOrderCommand(o *options) *cobra.Command {
	var (
		orderType  string
		price      string
		price2     string
		leverage   string
		validate   bool
		closeType  string
		closePrice string
	)

	cmd := &cobra.Command{
		Use:   "add-order buy|sell PAIR VOLUME",
		Short: "Place an order",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			volume, err := decimal.NewFromString(args[2])
			if err != nil {
				return fmt.Errorf("invalid volume %q: %w", args[2], err)
			}

			params := kraken.AddOrderParams{
				Pair:      args[1],
				Side:      kraken.OrderSide(strings.ToLower(args[0])),
				OrderType: kraken.OrderType(orderType),
				Volume:    volume,
				Price:     kraken.Price(price),
				Price2:    kraken.Price(price2),
				Leverage:  leverage,
				Validate:  validate,
				OTP:       o.otp,
			}

			if closeType != "" {
				params.Close = &kraken.ConditionalClose{
					OrderType: kraken.OrderType(closeType),
					Price:     kraken.Price(closePrice),
				}
			}

			resp, err := o.client.AddOrder(cmd.Context(), params)
			if err != nil {
				return err
			}

			if validate {
				fmt.Fprintln(cmd.ErrOrStderr(), aurora.Bold(aurora.Yellow("Validation only; no order was placed.")))
			}

			return o.render(cmd, resp, nil)
		},
	}

	cmd.Flags().StringVar(&orderType, "type", string(kraken.Market), "Order type (market, limit, stop-loss, ...)")
	cmd.Flags().StringVar(&price, "price", "", "Price; prefix with +, - or # or suffix with % for an offset from the last trade")
	cmd.Flags().StringVar(&price2, "price2", "", "Secondary price")
	cmd.Flags().StringVar(&leverage, "leverage", "", "Leverage, e.g. 2:1")
	cmd.Flags().BoolVar(&validate, "validate", false, "Validate the order without placing it")
	cmd.Flags().StringVar(&closeType, "close-type", "", "Order type of the conditional close order")
	cmd.Flags().StringVar(&closePrice, "close-price", "", "Price of the conditional close order")

	return cmd
}

func newCancelOrderCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel-order TXID",
		Short: "Cancel an open order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := o.client.CancelOrder(cmd.Context(), kraken.CancelOrderParams{TxID: args[0], OTP: o.otp})

			return o.render(cmd, resp, err)
		},
	}
}

// ---------------------------------------------------------------------------------------------- //
// Offline signing.                                                                               //
// ---------------------------------------------------------------------------------------------- //

func newSignCommand(o *options) *cobra.Command {
	var (
		path  string
		nonce int64
		key   string
	)

	cmd := &cobra.Command{
		Use:   "sign [KEY=VALUE...]",
		Short: "Compute a request signature without sending anything",
		Long: `sign prints the API-Sign header value for a private request, along with the exact body
that would be sent. Use it to check a signature produced by other tooling.

The private key defaults to the configured one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := kraken.Body{}

			for _, arg := range args {
				kv := strings.SplitN(arg, "=", 2)
				if len(kv) != 2 || kv[0] == "" {
					return fmt.Errorf("expected KEY=VALUE but got %q", arg)
				}

				body[kv[0]] = kv[1]
			}

			if nonce == 0 {
				nonce = kraken.NewNonceGenerator().Next()
			}

			body[kraken.NonceField] = strconv.FormatInt(nonce, 10)

			if key == "" {
				key = o.config.PrivateKey
			}

			signature, err := kraken.Sign(path, body, key)
			if err != nil {
				return err
			}

			return o.print(cmd, map[string]string{
				"path":      path,
				"body":      kraken.Encode(body),
				"signature": signature,
			})
		},
	}

	cmd.Flags().StringVar(&path, "path", "/0/private/Balance", "Request path")
	cmd.Flags().Int64Var(&nonce, "nonce", 0, "Nonce to sign with (default: a fresh one)")
	cmd.Flags().StringVar(&key, "key", "", "Base64 private key (default: the configured one)")

	return cmd
}
