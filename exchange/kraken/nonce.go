package kraken

import (
	"sync/atomic"
	"time"
)

//
// NonceSource hands out nonces for private requests. Every value returned must be strictly greater
// than every value returned before it, no matter how many goroutines are asking.
//
type NonceSource interface {
	Next() int64
}

//
// NonceGenerator is a NonceSource derived from the wall clock in microseconds. When two calls land
// in the same microsecond (or the clock steps backwards) the generator hands out the previous value
// plus one instead, so the sequence never stalls or repeats. The zero value is ready to use and
// reads the system clock.
//
type NonceGenerator struct {
	last int64
	now  func() time.Time
}

var defaultNonces = NewNonceGenerator()

//
// NewNonceGenerator instantiates a generator driven by the system clock.
//
func NewNonceGenerator() *NonceGenerator {
	return newNonceGenerator(time.Now)
}

func newNonceGenerator(now func() time.Time) *NonceGenerator {
	return &NonceGenerator{
		now: now,
	}
}

//
// Next returns the next nonce.
//
func (o *NonceGenerator) Next() int64 {
	now := o.now
	if now == nil {
		now = time.Now
	}

	for {
		last := atomic.LoadInt64(&o.last)

		next := now().UnixNano() / int64(time.Microsecond)
		if next <= last {
			next = last + 1
		}

		if atomic.CompareAndSwapInt64(&o.last, last, next) {
			return next
		}
	}
}
