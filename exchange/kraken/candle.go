package kraken

import (
	"encoding/json"
	"fmt"
	"github.com/shopspring/decimal"
	"time"
)

// NOTE ~> The OHLC endpoint returns each candle as an array:
//
//  [0] 1688671200,     // Open time (unix seconds)
//  [1] "30306.1",      // Open
//  [2] "30306.2",      // High
//  [3] "30305.7",      // Low
//  [4] "30305.7",      // Close
//  [5] "30306.1",      // Volume-weighted average price
//  [6] "3.39243896",   // Volume
//  [7] 23              // Number of trades

const (
	StartTimeIndex = 0
	OpenIndex      = 1
	HighIndex      = 2
	LowIndex       = 3
	CloseIndex     = 4
	VWAPIndex      = 5
	VolumeIndex    = 6
	CountIndex     = 7

	candleFieldCount = 8
)

//
// Candle implements the exchange.Candle interface for OHLC rows provided by the Kraken API.
//
type Candle struct {
	start  time.Time
	end    time.Time
	open   decimal.Decimal
	high   decimal.Decimal
	low    decimal.Decimal
	close  decimal.Decimal
	vwap   decimal.Decimal
	volume decimal.Decimal
	count  int
}

func (o *Candle) StartTime() time.Time    { return o.start }
func (o *Candle) EndTime() time.Time      { return o.end }
func (o *Candle) Open() decimal.Decimal   { return o.open }
func (o *Candle) High() decimal.Decimal   { return o.high }
func (o *Candle) Low() decimal.Decimal    { return o.low }
func (o *Candle) Close() decimal.Decimal  { return o.close }
func (o *Candle) VWAP() decimal.Decimal   { return o.vwap }
func (o *Candle) Volume() decimal.Decimal { return o.volume }
func (o *Candle) Count() int              { return o.count }

//
// UnmarshalJSON implements the json.Unmarshaller interface for Candle structures so that the JSON
// arrays provided by the Kraken API that represent them can be properly unmarshalled. The end time
// is not part of the row; it is filled in by whoever knows the interval that was requested.
//
func (o *Candle) UnmarshalJSON(data []byte) error {
	//
	// Unmarshall the provided JSON string into a raw interface array.
	//
	// NOTE ~> Unknown numbers always come in as float64 types when unmarshalled. Thus, we are going
	//  to need to expect such values and cast them accordingly.
	//
	var raw []interface{}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	if len(raw) < candleFieldCount {
		return fmt.Errorf("expected %d fields in candle but got %d", candleFieldCount, len(raw))
	}

	//
	// Parse the start time of the candle.
	//
	startRaw, ok := raw[StartTimeIndex].(float64)
	if !ok {
		return fmt.Errorf("failed to assert type of start (open) time (%+v)", raw[StartTimeIndex])
	}

	o.start = time.Unix(int64(startRaw), 0).UTC()

	//
	// Parse the price and volume values of the candle. They are all sent as strings so that no
	// precision is lost.
	//
	targets := []struct {
		index int
		name  string
		dest  *decimal.Decimal
	}{
		{OpenIndex, "open", &o.open},
		{HighIndex, "high", &o.high},
		{LowIndex, "low", &o.low},
		{CloseIndex, "close", &o.close},
		{VWAPIndex, "vwap", &o.vwap},
		{VolumeIndex, "volume", &o.volume},
	}

	for _, t := range targets {
		s, ok := raw[t.index].(string)
		if !ok {
			return fmt.Errorf("failed to assert type of %s (%+v)", t.name, raw[t.index])
		}

		*t.dest, err = decimal.NewFromString(s)
		if err != nil {
			return err
		}
	}

	//
	// Parse the count value of the candle.
	//
	countRaw, ok := raw[CountIndex].(float64)
	if !ok {
		return fmt.Errorf("failed to assert type of count (%+v)", raw[CountIndex])
	}

	o.count = int(countRaw)

	return nil
}
