package kraken

//
// Credentials holds an API key pair. The public key is sent as-is in the API-Key header; the private
// key is the base64 secret used to sign requests. Credentials are treated as a value: an agent
// replaces them wholesale and never edits them in place.
//
type Credentials struct {
	PublicKey  string
	PrivateKey string
}
