package kraken

import (
	"fmt"
	"github.com/haleyga/kraken-cryptoexchange-api/constants"
	"io"
	"log"
)

const (
	Name = "≪kraken-agent≫"
)

var (
	logger *log.Logger
)

func init() {
	//
	// Initialize the logger. It stays silent until the caller asks for output, since this package is
	// normally embedded in somebody else's program.
	//
	logger = log.New(io.Discard, fmt.Sprintf(constants.LogPrefixFmt, Name), log.Ldate|log.Ltime|log.Lmsgprefix)
}

//
// SetLogOutput directs the request agent's debug log to the provided writer. Passing io.Discard
// silences it again.
//
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}
