/*
Package projection provides the core investment growth projection engine.

PURPOSE:
  This package contains the pure computation core: given an initial capital,
  a schedule of deposits, a piecewise annual return schedule, and a
  reinvestment policy, it produces a year-by-year balance series and derives
  tax, inflation-adjusted, and benchmark comparison figures from it.

KEY CONCEPTS IN THIS FILE (types.go):
  - SimulationConfig: Immutable per-run configuration
  - YieldPhase: A time window with one fixed annual return rate
  - Transaction: A recurring (monthly) or one-time deposit/withdrawal
  - YearResult: One row of the projected series
  - TaxResult / BenchmarkResult: Derived metrics

DESIGN PRINCIPLES:
  1. Purity: The engine holds no state between invocations. Each call
     receives a full input snapshot and returns a fresh result.
  2. Precision: Uses decimal.Decimal for all monetary values. Rounding
     happens only at the reported output, never in accumulation.
  3. Determinism: Identical inputs produce bit-identical outputs.

USAGE:
  cfg := projection.SimulationConfig{
      InitialCapital: decimal.NewFromInt(30000),
      DurationYears:  15,
      ReinvestGains:  true,
  }
  years, err := projection.Simulate(cfg, phases, transactions)

SEE ALSO:
  - resolver.go: Effective rate and transaction activity resolution
  - simulator.go: The month-stepped balance simulation
  - metrics.go: Invested capital, tax, and inflation figures
  - benchmark.go: Historical index comparison (CAGR)
*/
package projection

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// SIMULATION INPUT
// =============================================================================

// SimulationConfig is the per-run configuration. It is immutable for one run
// and owned by the caller.
type SimulationConfig struct {
	InitialCapital decimal.Decimal
	DurationYears  int
	ReinvestGains  bool
}

// Validate checks the structural constraints the simulator depends on.
func (c SimulationConfig) Validate() error {
	if c.DurationYears < 1 {
		return ErrInvalidDuration
	}
	if c.InitialCapital.IsNegative() {
		return ErrNegativeCapital
	}
	return nil
}

// YieldPhase is a time window with one fixed annual return rate.
//
// Phases form an ordered collection; insertion order is the override
// priority. When several phases cover the same year, the LAST one in the
// collection wins. A phase without CustomDuration implicitly spans the
// whole horizon (1..DurationYears).
type YieldPhase struct {
	ID             string
	StartYear      int
	EndYear        int
	Rate           decimal.Decimal // annual percent, may be negative
	CustomDuration bool
}

// TransactionType distinguishes recurring from one-time transactions.
type TransactionType string

const (
	TxMonthly TransactionType = "monthly" // applied every month of each active year
	TxOnce    TransactionType = "once"    // applied once, in month 1 of StartYear
)

// Transaction is a deposit (or withdrawal, when Amount is negative) feeding
// the simulated balance. EndYear is only meaningful for monthly transactions;
// a monthly transaction without CustomDuration implicitly runs for the whole
// horizon.
type Transaction struct {
	ID             string
	Amount         decimal.Decimal
	Type           TransactionType
	StartYear      int
	EndYear        int
	CustomDuration bool
}

// =============================================================================
// SIMULATION OUTPUT
// =============================================================================

// YearResult is one row of the projected series. Balance, Deposits, and
// Returns are rounded to whole currency units; Rate is the effective annual
// percent used for the year.
type YearResult struct {
	Year     int
	Balance  decimal.Decimal
	Rate     decimal.Decimal
	Deposits decimal.Decimal
	Returns  decimal.Decimal
}

// TaxResult carries the capital-gains tax derivation for a finished
// projection. EffectiveRate is pre-formatted with one decimal place and
// reads "0.0" when there are no gains.
type TaxResult struct {
	Gains         decimal.Decimal
	Tax           decimal.Decimal
	AfterTax      decimal.Decimal
	InTodaysMoney decimal.Decimal
	EffectiveRate string
}

// BenchmarkResult compares the projection horizon against one historical
// index window. CAGR is nil when no data years fall inside the window.
// YearsAvailable vs YearsRequested lets a caller flag partial coverage.
type BenchmarkResult struct {
	Index          string
	CAGR           *float64 // percent
	TotalReturn    float64  // percent
	YearsAvailable int
	YearsRequested int
	FromYear       int
	ToYear         int
}
