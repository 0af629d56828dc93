package kraken

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"github.com/shopspring/decimal"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

//
// Body holds the fields of a request, keyed by their wire names. Values may be strings, integers,
// floats, booleans, or decimals.
//
type Body map[string]interface{}

var bracketReplacer = strings.NewReplacer("%5B", "[", "%5D", "]")

//
// Sign computes the API-Sign value for a private request:
//
//	base64( HMAC-SHA512( key = base64decode(privateKey), msg = path + SHA256(nonce + Encode(body)) ) )
//
// The nonce is read from the body's "nonce" field and written as a decimal string. Sign does not
// check that the field is there; a body without one simply hashes an empty nonce, which the
// exchange will reject. Sign has no side effects and is safe to call on its own to audit a request.
//
func Sign(path string, body Body, privateKey string) (string, error) {
	secret, err := base64.StdEncoding.DecodeString(privateKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}

	nonce := ""
	if v, ok := body[NonceField]; ok {
		nonce = formatValue(v)
	}

	//
	// Hash the nonce together with the encoded body. The raw digest (not its hex form) is what gets
	// appended to the path.
	//
	digest := sha256.Sum256([]byte(nonce + Encode(body)))

	mac := hmac.New(sha512.New, secret)
	mac.Write([]byte(path))
	mac.Write(digest[:])

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

//
// Encode renders a body as an application/x-www-form-urlencoded string. Keys are sorted so that the
// output is stable. Square brackets in keys are left as they are, so "close[price]" goes out as
// close[price]=... rather than being escaped or re-nested.
//
// NOTE ~> The string produced here is both what gets signed and what gets sent. The two must never
//  be produced by different code paths.
//
func Encode(body Body) string {
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var sb strings.Builder

	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}

		sb.WriteString(bracketReplacer.Replace(url.QueryEscape(k)))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(formatValue(body[k])))
	}

	return sb.String()
}

func formatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case decimal.Decimal:
		return t.String()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
