package projection_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/warp/growth-engine/projection"
)

func money(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// =============================================================================
// TOTAL INVESTED
// =============================================================================

func TestTotalInvested(t *testing.T) {
	cfg := config(30000, 15, true)
	txs := []projection.Transaction{
		{ID: "m", Amount: money(500), Type: projection.TxMonthly, StartYear: 1}, // whole horizon
		monthlyTx("w", 100, 3, 5), // 36 months
		onceTx("o", 2000, 4),
		onceTx("late", 9999, 20), // outside horizon, never fires
	}

	// 30000 + 500*180 + 100*36 + 2000
	want := money(30000 + 90000 + 3600 + 2000)
	if got := projection.TotalInvested(cfg, txs); !got.Equal(want) {
		t.Errorf("total invested %s, want %s", got, want)
	}
}

func TestTotalInvested_WithdrawalsReduceTotal(t *testing.T) {
	cfg := config(10000, 5, true)
	txs := []projection.Transaction{monthlyTx("out", -100, 1, 5)}

	want := money(10000 - 100*60)
	if got := projection.TotalInvested(cfg, txs); !got.Equal(want) {
		t.Errorf("total invested %s, want %s", got, want)
	}
}

// =============================================================================
// TAX
// =============================================================================

func TestComputeTax_ZeroGains(t *testing.T) {
	// GIVEN: Final balance equal to invested capital
	// THEN: No tax, effective rate reported as "0.0"

	policy := projection.DefaultTaxPolicy()
	result := policy.ComputeTax(money(50000), money(50000), 10)

	if !result.Gains.IsZero() {
		t.Errorf("gains %s, want 0", result.Gains)
	}
	if !result.Tax.IsZero() {
		t.Errorf("tax %s, want 0", result.Tax)
	}
	if result.EffectiveRate != "0.0" {
		t.Errorf("effective rate %q, want \"0.0\"", result.EffectiveRate)
	}
	if !result.AfterTax.Equal(money(50000)) {
		t.Errorf("after tax %s, want 50000", result.AfterTax)
	}
}

func TestComputeTax_KnownExample(t *testing.T) {
	// gains 5000: taxable 5000*0.7 = 3500, after allowance 2500,
	// tax = round(2500 * 0.26375) = round(659.375) = 659

	policy := projection.DefaultTaxPolicy()
	result := policy.ComputeTax(money(15000), money(10000), 10)

	if !result.Gains.Equal(money(5000)) {
		t.Errorf("gains %s, want 5000", result.Gains)
	}
	if !result.Tax.Equal(money(659)) {
		t.Errorf("tax %s, want 659", result.Tax)
	}
	if !result.AfterTax.Equal(money(14341)) {
		t.Errorf("after tax %s, want 14341", result.AfterTax)
	}
	// 659 / 5000 * 100 = 13.18
	if result.EffectiveRate != "13.2" {
		t.Errorf("effective rate %q, want \"13.2\"", result.EffectiveRate)
	}

	// Taxed, so today's-money discounts the after-tax figure.
	factor := decimal.NewFromFloat(math.Pow(1.02, 10))
	want := money(14341).Div(factor).Round(0)
	if !result.InTodaysMoney.Equal(want) {
		t.Errorf("in today's money %s, want %s", result.InTodaysMoney, want)
	}
}

func TestComputeTax_GainsBelowAllowance(t *testing.T) {
	// taxable 1000*0.7 = 700 stays under the 1000 allowance: no tax,
	// and the untaxed final balance feeds the inflation adjustment.

	policy := projection.DefaultTaxPolicy()
	result := policy.ComputeTax(money(11000), money(10000), 5)

	if !result.Tax.IsZero() {
		t.Errorf("tax %s, want 0", result.Tax)
	}
	if result.EffectiveRate != "0.0" {
		t.Errorf("effective rate %q, want \"0.0\"", result.EffectiveRate)
	}

	factor := decimal.NewFromFloat(math.Pow(1.02, 5))
	want := money(11000).Div(factor).Round(0)
	if !result.InTodaysMoney.Equal(want) {
		t.Errorf("in today's money %s, want %s", result.InTodaysMoney, want)
	}
}

func TestComputeTax_LossesProduceNoNegativeGains(t *testing.T) {
	policy := projection.DefaultTaxPolicy()
	result := policy.ComputeTax(money(8000), money(10000), 5)

	if !result.Gains.IsZero() {
		t.Errorf("gains %s, want 0 for a losing projection", result.Gains)
	}
	if !result.Tax.IsZero() {
		t.Errorf("tax %s, want 0", result.Tax)
	}
}
