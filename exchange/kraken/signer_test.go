package kraken

import (
	"encoding/base64"
	"errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

const (
	testPrivateKey = "cHJpdmF0ZWtleQ==" // base64("privatekey")

	// Key published alongside the exchange's own signing walkthrough.
	docsPrivateKey = "kQH5HW/8p1uGOVjbgWA7FunAmGO8lsSUXNsu3eow76sz84Q18fWxnyRzBHCd3pd5nE9qa99HAZtuZuj6F1huXg=="
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)

	return d
}

func TestSignReferenceVectors(t *testing.T) {
	tests := []struct {
		name string
		path string
		body Body
		key  string
		want string
	}{
		{
			name: "balance",
			path: "/0/private/Balance",
			body: Body{"nonce": int64(1616492376594000)},
			key:  testPrivateKey,
			want: "jFBVPOWAdg1puMzZH4c+TP7A66GqolLSYmNCKhBbkYxX4it+ZxyDDVUn+nJafWCsnqECnqYHYVnjr4O4IdcW4w==",
		},
		{
			name: "add order",
			path: "/0/private/AddOrder",
			body: Body{
				"nonce":     int64(1616492376594),
				"ordertype": "limit",
				"pair":      "XBTUSD",
				"price":     mustDecimal(t, "37500"),
				"type":      "buy",
				"volume":    mustDecimal(t, "1.25"),
			},
			key:  docsPrivateKey,
			want: "4/dpxb3iT4tp/ZCVEwSnEsLxx0bqyhLpdfOpc6fn7OR8+UClSV5n9E6aSS8MPtnRfp32bAb0nmbRn6H8ndwLUQ==",
		},
		{
			name: "nonce written as a string",
			path: "/0/private/Balance",
			body: Body{"nonce": "1616492376594000"},
			key:  testPrivateKey,
			want: "jFBVPOWAdg1puMzZH4c+TP7A66GqolLSYmNCKhBbkYxX4it+ZxyDDVUn+nJafWCsnqECnqYHYVnjr4O4IdcW4w==",
		},
		{
			name: "missing nonce",
			path: "/0/private/Balance",
			body: Body{},
			key:  testPrivateKey,
			want: "UZNMqX98Y7GpB5vRL/CzP2amBa9L5MQwgGFla4evyAxeLS9QbjgYicoTgxQuGT1RvVdXBeUAMX8Ga33lMt7FRQ==",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sign(tt.path, tt.body, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignIsDeterministic(t *testing.T) {
	body := Body{"nonce": int64(42), "pair": "XBTUSD", "close[price]": "100"}

	first, err := Sign("/0/private/AddOrder", body, testPrivateKey)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Sign("/0/private/AddOrder", body, testPrivateKey)
		require.NoError(t, err)
		assert.Equal(t, first, again, "The signature should not change between calls.")
	}
}

func TestSignIsKeySensitive(t *testing.T) {
	body := Body{"nonce": int64(1616492376594000)}

	secret, err := base64.StdEncoding.DecodeString(docsPrivateKey)
	require.NoError(t, err)

	want, err := Sign("/0/private/Balance", body, docsPrivateKey)
	require.NoError(t, err)

	for i := range secret {
		altered := append([]byte(nil), secret...)
		altered[i] ^= 0x01

		got, err := Sign("/0/private/Balance", body, base64.StdEncoding.EncodeToString(altered))
		require.NoError(t, err)
		assert.NotEqual(t, want, got, "Flipping a bit of key byte %d should change the signature.", i)
	}
}

func TestSignIsPathAndBodySensitive(t *testing.T) {
	base, err := Sign("/0/private/Balance", Body{"nonce": int64(1)}, testPrivateKey)
	require.NoError(t, err)

	otherPath, err := Sign("/0/private/TradeBalance", Body{"nonce": int64(1)}, testPrivateKey)
	require.NoError(t, err)

	otherNonce, err := Sign("/0/private/Balance", Body{"nonce": int64(2)}, testPrivateKey)
	require.NoError(t, err)

	assert.NotEqual(t, base, otherPath)
	assert.NotEqual(t, base, otherNonce)
}

func TestSignRejectsInvalidKey(t *testing.T) {
	_, err := Sign("/0/private/Balance", Body{"nonce": int64(1)}, "not base64!")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidKeyEncoding), "Expected ErrInvalidKeyEncoding but got %v.", err)
}

func TestSignDoesNotMutateBody(t *testing.T) {
	body := Body{"nonce": int64(7), "pair": "XBTUSD"}

	_, err := Sign("/0/private/Balance", body, testPrivateKey)
	require.NoError(t, err)

	assert.Equal(t, Body{"nonce": int64(7), "pair": "XBTUSD"}, body)
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		body Body
		want string
	}{
		{
			name: "empty",
			body: Body{},
			want: "",
		},
		{
			name: "keys are sorted",
			body: Body{"volume": "1", "nonce": int64(5), "pair": "XBTUSD"},
			want: "nonce=5&pair=XBTUSD&volume=1",
		},
		{
			name: "brackets in keys stay literal",
			body: Body{"close[price]": "9000", "close[ordertype]": "limit"},
			want: "close[ordertype]=limit&close[price]=9000",
		},
		{
			name: "hyphenated keys",
			body: Body{"fee-info": true},
			want: "fee-info=true",
		},
		{
			name: "values are escaped",
			body: Body{"type": "any position", "pair": "XBTUSD,ETHUSD", "start": "+30"},
			want: "pair=XBTUSD%2CETHUSD&start=%2B30&type=any+position",
		},
		{
			name: "numbers and decimals",
			body: Body{"a": 3, "b": int32(-4), "c": uint64(5), "d": 1.5, "e": decimal.NewFromInt(37500)},
			want: "a=3&b=-4&c=5&d=1.5&e=37500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.body))
		})
	}
}
