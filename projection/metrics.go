/*
metrics.go - Derived metrics over a finished projection

PURPOSE:
  Computes total invested capital, the capital-gains tax liability, and the
  inflation-adjusted final value from a simulated series. The tax model is
  the German equity-fund rule: a fixed fraction of gains is tax-exempt
  (Teilfreistellung), a flat annual allowance (Sparerpauschbetrag) reduces
  the taxable remainder, and a flat rate applies to what is left.

TAX DERIVATION:
  gains     = max(0, finalBalance - totalInvested)
  taxable   = gains * (1 - exempt fraction)
  remainder = max(0, taxable - allowance)
  tax       = round(remainder * rate)
  afterTax  = finalBalance - tax

INFLATION:
  inTodaysMoney = round((tax > 0 ? afterTax : finalBalance) / (1+i)^years)

All parameters are carried in TaxPolicy so a deployment can override them
from configuration without touching the engine.

SEE ALSO:
  - simulator.go: Produces the series these metrics derive from
  - config: Maps YAML settings onto TaxPolicy
*/
package projection

import (
	"math"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TOTAL INVESTED CAPITAL
// =============================================================================

// TotalInvested returns the capital paid in over the whole horizon: the
// initial capital plus every transaction amount times its occurrence count.
func TotalInvested(cfg SimulationConfig, txs []Transaction) decimal.Decimal {
	total := cfg.InitialCapital
	for _, t := range txs {
		n := t.Occurrences(cfg.DurationYears)
		if n == 0 {
			continue
		}
		total = total.Add(t.Amount.Mul(decimal.NewFromInt(int64(n))))
	}
	return total
}

// =============================================================================
// TAX POLICY
// =============================================================================

// TaxPolicy holds the parameters of the modeled capital-gains rule plus the
// inflation rate used for the today's-money figure.
type TaxPolicy struct {
	ExemptFraction decimal.Decimal // fraction of gains excluded from taxable income
	Allowance      decimal.Decimal // flat annual tax-free allowance, currency units
	Rate           decimal.Decimal // flat tax rate on the remainder
	InflationRate  decimal.Decimal // annual inflation as a fraction
}

// DefaultTaxPolicy returns the 2024 German equity-fund parameters:
// 30% Teilfreistellung, 1000 EUR Sparerpauschbetrag, 26.375% flat rate
// (Abgeltungsteuer incl. solidarity surcharge), 2% inflation.
func DefaultTaxPolicy() TaxPolicy {
	return TaxPolicy{
		ExemptFraction: decimal.NewFromFloat(0.30),
		Allowance:      decimal.NewFromInt(1000),
		Rate:           decimal.NewFromFloat(0.26375),
		InflationRate:  decimal.NewFromFloat(0.02),
	}
}

// ComputeTax derives the tax figures for a finished projection. It is total
// over finite input: the zero-gains case reports an effective rate of "0.0"
// instead of dividing by zero.
func (p TaxPolicy) ComputeTax(finalBalance, totalInvested decimal.Decimal, durationYears int) TaxResult {
	gains := finalBalance.Sub(totalInvested)
	if gains.IsNegative() {
		gains = decimal.Zero
	}

	taxable := gains.Mul(decimal.NewFromInt(1).Sub(p.ExemptFraction))
	remainder := taxable.Sub(p.Allowance)
	if remainder.IsNegative() {
		remainder = decimal.Zero
	}
	tax := remainder.Mul(p.Rate).Round(0)
	afterTax := finalBalance.Sub(tax)

	effectiveRate := "0.0"
	if gains.IsPositive() {
		effectiveRate = tax.Div(gains).Mul(decimal.NewFromInt(100)).StringFixed(1)
	}

	base := finalBalance
	if tax.IsPositive() {
		base = afterTax
	}

	return TaxResult{
		Gains:         gains,
		Tax:           tax,
		AfterTax:      afterTax,
		InTodaysMoney: base.Div(p.inflationFactor(durationYears)).Round(0),
		EffectiveRate: effectiveRate,
	}
}

func (p TaxPolicy) inflationFactor(durationYears int) decimal.Decimal {
	rate, _ := p.InflationRate.Float64()
	return decimal.NewFromFloat(math.Pow(1+rate, float64(durationYears)))
}
