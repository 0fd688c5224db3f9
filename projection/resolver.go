/*
resolver.go - Effective rate and transaction activity resolution

PURPOSE:
  For a given simulation year, determine (a) the single effective annual
  rate, and (b) which transactions are active and until when. These rules
  are the most bug-prone part of the system, so they live here as explicit,
  independently testable functions rather than inlined conditionals.

RESOLUTION RULES:
  Rate:
    Filter phases covering the year; the LAST match in the collection wins.
    This lets a later-added phase override an earlier overlapping one.
    No match means an effective rate of zero.

  Transaction activity:
    A monthly transaction without CustomDuration runs for the whole horizon.
    A once transaction fires only in its StartYear.
    Inverted ranges (StartYear > EndYear) simply match no year.

SEE ALSO:
  - simulator.go: Consumes these per-year resolutions
  - metrics.go: Uses occurrence counts for total invested capital
*/
package projection

import "github.com/shopspring/decimal"

// =============================================================================
// RATE RESOLUTION
// =============================================================================

// EffectiveRate returns the annual rate (percent) in effect for a simulation
// year. When several phases cover the year, the last one in the collection
// wins. A phase without CustomDuration spans the whole horizon regardless of
// its StartYear/EndYear fields.
func EffectiveRate(year, durationYears int, phases []YieldPhase) decimal.Decimal {
	rate := decimal.Zero
	for _, p := range phases {
		if p.coversYear(year, durationYears) {
			rate = p.Rate
		}
	}
	return rate
}

func (p YieldPhase) coversYear(year, durationYears int) bool {
	start, end := p.StartYear, p.EndYear
	if !p.CustomDuration {
		start, end = 1, durationYears
	}
	return start <= year && year <= end
}

// =============================================================================
// TRANSACTION ACTIVITY
// =============================================================================

// EffectiveEndYear resolves the last active year of a monthly transaction:
// the whole horizon unless the duration was customized. The result carries
// no meaning for once transactions.
func (t Transaction) EffectiveEndYear(durationYears int) int {
	if t.Type == TxMonthly && !t.CustomDuration {
		return durationYears
	}
	return t.EndYear
}

// ActiveIn reports whether the transaction applies in the given simulation
// year. Transactions with inverted year ranges are active in no year.
func (t Transaction) ActiveIn(year, durationYears int) bool {
	switch t.Type {
	case TxOnce:
		return year == t.StartYear
	case TxMonthly:
		return year >= t.StartYear && year <= t.EffectiveEndYear(durationYears)
	default:
		return false
	}
}

// Occurrences returns how many times the transaction amount is applied over
// the whole horizon: active years times twelve for monthly, one for once.
// Years outside 1..durationYears never fire.
func (t Transaction) Occurrences(durationYears int) int {
	switch t.Type {
	case TxOnce:
		if t.StartYear >= 1 && t.StartYear <= durationYears {
			return 1
		}
		return 0
	case TxMonthly:
		start := t.StartYear
		if start < 1 {
			start = 1
		}
		end := t.EffectiveEndYear(durationYears)
		if end > durationYears {
			end = durationYears
		}
		if end < start {
			return 0
		}
		return (end - start + 1) * 12
	default:
		return 0
	}
}
