/*
errors.go - Centralized error types for the projection engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The engine is total over well-formed input; these errors cover the
  structural and numeric guards at its boundary.

USAGE:
  if errors.Is(err, projection.ErrNonFiniteRate) {
      // pathological rate input, report to the caller
  }
*/
package projection

import "errors"

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDuration is returned when DurationYears is below 1.
	ErrInvalidDuration = errors.New("duration must be at least one year")

	// ErrNegativeCapital is returned when InitialCapital is negative.
	ErrNegativeCapital = errors.New("initial capital must not be negative")

	// ErrUnknownTransactionType is returned for transaction types other than
	// monthly or once. Unknown types are rejected rather than ignored.
	ErrUnknownTransactionType = errors.New("unknown transaction type")

	// ErrNonFiniteRate is returned when a configured annual rate makes the
	// monthly compounding factor diverge (rate at or below -100%). The
	// engine surfaces this instead of propagating NaN through the series.
	ErrNonFiniteRate = errors.New("annual rate produces a non-finite monthly rate")
)
