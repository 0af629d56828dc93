package kraken

import (
	"fmt"
	"strings"
)

//
// APIError implements the exchange.APIError interface for errors reported in the "error" array of a
// response. Messages look like "EAPI:Invalid nonce" – a severity letter, a category, and the message.
//
type APIError struct {
	messages []string
}

func (o *APIError) Messages() []string {
	return o.messages
}

func (o *APIError) Message() string {
	if len(o.messages) == 0 {
		return ""
	}

	return o.messages[0]
}

//
// Has reports whether the exchange returned the provided message (e.g. "EAPI:Invalid nonce").
//
func (o *APIError) Has(message string) bool {
	for _, m := range o.messages {
		if m == message {
			return true
		}
	}

	return false
}

func (o *APIError) Error() string {
	return fmt.Sprintf("the Kraken endpoint returned an API error (%s)", strings.Join(o.messages, "; "))
}
