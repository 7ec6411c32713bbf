// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrUndefinedWeight marks an edge whose weight is NaN because the underlying
// correlation is undefined.
var ErrUndefinedWeight = errors.New("builder: undefined edge weight")

// UndefinedWeightError identifies one poisoned edge by region names.
type UndefinedWeightError struct {
	From, To    string
	Correlation float64
}

// Error implements error.
func (e *UndefinedWeightError) Error() string {
	return fmt.Sprintf("%v: %s-%s (correlation %g)", ErrUndefinedWeight, e.From, e.To, e.Correlation)
}

// Unwrap exposes the sentinel.
func (e *UndefinedWeightError) Unwrap() error { return ErrUndefinedWeight }
