package constants

import (
	"fmt"
)

const (
	LogPrefixFmt = "%-17s "

	ClientName    = "kraken-cryptoexchange-api"
	ClientVersion = "1.0.0"
)

var (
	userAgent = fmt.Sprintf("%s/%s (Go)", ClientName, ClientVersion)
)

//
// UserAgent returns the value sent in the User-Agent header of every request made against the
// exchange.
//
func UserAgent() string {
	return userAgent
}
