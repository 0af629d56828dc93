package exchange

//
// APIError generically provides an interface to objects that represent a first-class error provided
// in the response of a request against a cryptocurrency exchange's API.
//
type APIError interface {
	error

	//
	// Messages returns every error message provided by the API. Some exchanges report several
	// problems with a single request.
	//
	Messages() []string

	//
	// Message returns the first (and usually the only) error message provided by the API.
	//
	Message() string
}
