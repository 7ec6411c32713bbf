// SPDX-License-Identifier: MIT

package corr

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Option configures Matrix construction.
type Option func(*options)

type options struct {
	workers int
	log     zerolog.Logger
}

func defaultOptions() options {
	return options{
		workers: runtime.GOMAXPROCS(0),
		log:     zerolog.Nop(),
	}
}

// WithWorkers bounds the number of concurrent row tasks.
// n ≤ 0 keeps the default of GOMAXPROCS; n == 1 computes sequentially.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithLogger sets the logger used for construction diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}
