package kraken

import (
	"encoding/json"
	"net/http"
)

//
// Response is the exchange's answer to one request, exactly as the transport received it. The agent
// never looks inside the body; the exchange reports its own failures (bad signature, stale nonce,
// unknown pair) in a normal 200 response, and it is up to the caller to check for them via Decode.
//
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

type envelope struct {
	Error  []string        `json:"error"`
	Result json.RawMessage `json:"result"`
}

//
// Decode unwraps the exchange's {"error": [...], "result": ...} envelope. If the error array is not
// empty an *APIError is returned and result is left untouched. Otherwise the result is unmarshalled
// into the provided value (which may be nil if the caller only cares about success).
//
func (o *Response) Decode(result interface{}) error {
	var env envelope

	if err := json.Unmarshal(o.Body, &env); err != nil {
		return err
	}

	if len(env.Error) > 0 {
		return &APIError{messages: env.Error}
	}

	if result == nil || len(env.Result) == 0 {
		return nil
	}

	return json.Unmarshal(env.Result, result)
}
