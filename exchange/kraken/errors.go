package kraken

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is returned when a private endpoint is called before credentials have been
	// provided. No request is sent.
	ErrNotAuthenticated = errors.New("kraken: private endpoint called without credentials")

	// ErrInvalidKeyEncoding is returned when the private key is not valid base64.
	ErrInvalidKeyEncoding = errors.New("kraken: private key is not valid base64")

	// ErrNonceSupplied is returned when a caller puts its own nonce into a private request body. The
	// agent is the only nonce source.
	ErrNonceSupplied = errors.New("kraken: request body must not carry a nonce")
)

//
// MissingParamError reports a required endpoint parameter that the caller left empty. It is raised
// while the request is being shaped, before anything is signed or sent.
//
type MissingParamError struct {
	Endpoint string
	Param    string
}

func (o *MissingParamError) Error() string {
	return fmt.Sprintf("kraken: %s requires the %q parameter", o.Endpoint, o.Param)
}
