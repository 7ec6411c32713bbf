// SPDX-License-Identifier: MIT

package builder

import "github.com/rs/zerolog"

// Option configures a Builder.
type Option func(*Builder)

// WithWeightFn replaces the correlation→distance transform. nil is ignored.
func WithWeightFn(fn WeightFn) Option {
	return func(b *Builder) {
		if fn != nil {
			b.weightFn = fn
		}
	}
}

// WithLogger sets the logger for build diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) { b.log = l }
}
