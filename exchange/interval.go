package exchange

import (
	"fmt"
	"time"
)

//
// Interval is an enum that represents various kline/candlestick intervals that can be retrieved
// from an exchange's historical data endpoints.
//
type Interval int

const (
	OneMinute Interval = iota
	FiveMinute
	FifteenMinute
	ThirtyMinute
	OneHour
	FourHour
	OneDay
	OneWeek
	FifteenDay
)

var intervalMinutes = [...]int{1, 5, 15, 30, 60, 240, 1440, 10080, 21600}

func (o Interval) String() string {
	return [...]string{"1m", "5m", "15m", "30m", "1h", "4h", "1d", "1w", "15d"}[o]
}

//
// Minutes returns the length of the interval in minutes, which is how most exchanges expect it to
// be expressed on the wire.
//
func (o Interval) Minutes() int {
	return intervalMinutes[o]
}

//
// Duration returns the length of the interval.
//
func (o Interval) Duration() time.Duration {
	return time.Duration(o.Minutes()) * time.Minute
}

//
// ParseInterval converts a short interval label (e.g. "15m" or "1d") back into its Interval.
//
func ParseInterval(label string) (Interval, error) {
	for i := OneMinute; i <= FifteenDay; i++ {
		if i.String() == label {
			return i, nil
		}
	}

	return OneMinute, fmt.Errorf("unsupported candle interval %q", label)
}
