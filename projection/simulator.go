/*
simulator.go - Month-stepped balance simulation

PURPOSE:
  Produces the ordered YearResult series from a full input snapshot. The
  balance compounds on a monthly step: the stated annual rate is converted
  to its effective monthly equivalent, deposits land every month (or once),
  and gains either compound immediately or accumulate outside the principal.

KEY INSIGHT:
  monthlyRate = (1 + annualRate)^(1/12) - 1

  The annual rate is treated as an effective annual rate, not a nominal one,
  so twelve monthly steps reproduce exactly the stated annual growth. This
  is a deliberate modeling choice, not annualRate/12.

REINVESTMENT:
  ReinvestGains = true:  gains are added to the balance immediately and
                         compound within the same year.
  ReinvestGains = false: gains never compound. They accumulate in a side
                         total and are added back only at the reported
                         year-end balance. Deposits still compound the
                         principal they are computed from - this asymmetry
                         is intentional and must be preserved.

ROUNDING:
  Half-up to whole currency units, applied only at the recorded output.
  Intermediate accumulation stays exact to avoid compounding rounding error.

SEE ALSO:
  - resolver.go: Per-year rate and activity resolution
  - metrics.go: Derivations over the finished series
*/
package projection

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const monthsPerYear = 12

// Simulate produces one YearResult per year in 1..DurationYears. It is a
// pure function of its inputs: no state is retained between invocations and
// identical snapshots yield identical series.
//
// Structural guards: unknown transaction types and invalid configs are
// rejected up front; a rate at or below -100% surfaces ErrNonFiniteRate.
func Simulate(cfg SimulationConfig, phases []YieldPhase, txs []Transaction) ([]YearResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, t := range txs {
		if t.Type != TxMonthly && t.Type != TxOnce {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTransactionType, t.Type)
		}
	}

	balance := cfg.InitialCapital
	totalGains := decimal.Zero
	results := make([]YearResult, 0, cfg.DurationYears)

	for year := 1; year <= cfg.DurationYears; year++ {
		annualRate := EffectiveRate(year, cfg.DurationYears, phases)
		monthlyRate, err := MonthlyRate(annualRate)
		if err != nil {
			return nil, err
		}

		yearDeposits := decimal.Zero
		yearReturns := decimal.Zero

		for month := 1; month <= monthsPerYear; month++ {
			for _, t := range txs {
				if !t.ActiveIn(year, cfg.DurationYears) {
					continue
				}
				if t.Type == TxOnce && month != 1 {
					continue
				}
				balance = balance.Add(t.Amount)
				yearDeposits = yearDeposits.Add(t.Amount)
			}

			gain := balance.Mul(monthlyRate)
			yearReturns = yearReturns.Add(gain)
			totalGains = totalGains.Add(gain)
			if cfg.ReinvestGains {
				balance = balance.Add(gain)
			}
		}

		reported := balance
		if !cfg.ReinvestGains {
			reported = balance.Add(totalGains)
		}

		results = append(results, YearResult{
			Year:     year,
			Balance:  reported.Round(0),
			Rate:     annualRate,
			Deposits: yearDeposits.Round(0),
			Returns:  yearReturns.Round(0),
		})
	}

	return results, nil
}

// MonthlyRate converts an annual percent rate into the effective monthly
// compounding rate. Rates at or below -100% have no real monthly equivalent
// and are rejected.
func MonthlyRate(annualPercent decimal.Decimal) (decimal.Decimal, error) {
	annual, _ := annualPercent.Float64()
	if annual <= -100 {
		return decimal.Decimal{}, fmt.Errorf("%w: %s%% annual", ErrNonFiniteRate, annualPercent)
	}
	monthly := math.Pow(1+annual/100, 1.0/monthsPerYear) - 1
	if math.IsNaN(monthly) || math.IsInf(monthly, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: %s%% annual", ErrNonFiniteRate, annualPercent)
	}
	return decimal.NewFromFloat(monthly), nil
}
