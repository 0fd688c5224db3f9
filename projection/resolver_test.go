package projection_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/warp/growth-engine/projection"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func pct(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func phase(id string, start, end int, rate float64) projection.YieldPhase {
	return projection.YieldPhase{
		ID:             id,
		StartYear:      start,
		EndYear:        end,
		Rate:           pct(rate),
		CustomDuration: true,
	}
}

func monthlyTx(id string, amount float64, start, end int) projection.Transaction {
	return projection.Transaction{
		ID:             id,
		Amount:         decimal.NewFromFloat(amount),
		Type:           projection.TxMonthly,
		StartYear:      start,
		EndYear:        end,
		CustomDuration: true,
	}
}

func onceTx(id string, amount float64, year int) projection.Transaction {
	return projection.Transaction{
		ID:        id,
		Amount:    decimal.NewFromFloat(amount),
		Type:      projection.TxOnce,
		StartYear: year,
	}
}

// =============================================================================
// RATE RESOLUTION
// =============================================================================

func TestEffectiveRate_LastMatchingPhaseWins(t *testing.T) {
	// GIVEN: Two phases both covering year 5 with different rates
	// WHEN: Resolving year 5
	// THEN: The phase later in the collection determines the rate

	phases := []projection.YieldPhase{
		phase("base", 1, 10, 4),
		phase("override", 5, 7, 8),
	}

	got := projection.EffectiveRate(5, 10, phases)
	if !got.Equal(pct(8)) {
		t.Errorf("expected override rate 8, got %s", got)
	}

	// Outside the override window the earlier phase still applies.
	got = projection.EffectiveRate(4, 10, phases)
	if !got.Equal(pct(4)) {
		t.Errorf("expected base rate 4 in year 4, got %s", got)
	}
}

func TestEffectiveRate_NoMatchingPhase_Zero(t *testing.T) {
	phases := []projection.YieldPhase{phase("late", 5, 10, 6)}

	got := projection.EffectiveRate(2, 10, phases)
	if !got.IsZero() {
		t.Errorf("expected zero rate for uncovered year, got %s", got)
	}
}

func TestEffectiveRate_NonCustomPhaseSpansHorizon(t *testing.T) {
	// GIVEN: A phase without custom duration whose year fields are stale
	// THEN: It still covers the whole horizon

	p := projection.YieldPhase{ID: "p", StartYear: 3, EndYear: 4, Rate: pct(5)}

	got := projection.EffectiveRate(1, 10, []projection.YieldPhase{p})
	if !got.Equal(pct(5)) {
		t.Errorf("expected non-custom phase to cover year 1, got %s", got)
	}
	got = projection.EffectiveRate(10, 10, []projection.YieldPhase{p})
	if !got.Equal(pct(5)) {
		t.Errorf("expected non-custom phase to cover year 10, got %s", got)
	}
}

func TestEffectiveRate_InvertedPhaseRangeMatchesNothing(t *testing.T) {
	phases := []projection.YieldPhase{phase("inverted", 7, 3, 6)}

	for year := 1; year <= 10; year++ {
		if got := projection.EffectiveRate(year, 10, phases); !got.IsZero() {
			t.Errorf("year %d: inverted range should match nothing, got %s", year, got)
		}
	}
}

// =============================================================================
// TRANSACTION ACTIVITY
// =============================================================================

func TestEffectiveEndYear_DefaultsToHorizon(t *testing.T) {
	tx := projection.Transaction{Type: projection.TxMonthly, StartYear: 1, EndYear: 3}

	if got := tx.EffectiveEndYear(15); got != 15 {
		t.Errorf("expected horizon end 15 for non-custom monthly, got %d", got)
	}

	tx.CustomDuration = true
	if got := tx.EffectiveEndYear(15); got != 3 {
		t.Errorf("expected own end year 3 for custom monthly, got %d", got)
	}
}

func TestActiveIn_OnceFiresOnlyInStartYear(t *testing.T) {
	tx := onceTx("bonus", 1000, 4)

	for year := 1; year <= 10; year++ {
		want := year == 4
		if got := tx.ActiveIn(year, 10); got != want {
			t.Errorf("year %d: got active=%v, want %v", year, got, want)
		}
	}
}

func TestActiveIn_MonthlyRespectsEffectiveEnd(t *testing.T) {
	tx := monthlyTx("savings", 500, 3, 5)

	cases := map[int]bool{1: false, 2: false, 3: true, 4: true, 5: true, 6: false}
	for year, want := range cases {
		if got := tx.ActiveIn(year, 10); got != want {
			t.Errorf("year %d: got active=%v, want %v", year, got, want)
		}
	}
}

func TestActiveIn_InvertedRangeMatchesNoYear(t *testing.T) {
	tx := monthlyTx("inverted", 500, 8, 2)

	for year := 1; year <= 10; year++ {
		if tx.ActiveIn(year, 10) {
			t.Errorf("year %d: inverted range should never be active", year)
		}
	}
}

func TestOccurrences(t *testing.T) {
	cases := []struct {
		name     string
		tx       projection.Transaction
		duration int
		want     int
	}{
		{"monthly full horizon", projection.Transaction{Type: projection.TxMonthly, StartYear: 1}, 15, 180},
		{"monthly custom window", monthlyTx("w", 500, 3, 5), 15, 36},
		{"monthly end clamped to horizon", monthlyTx("c", 500, 8, 99), 10, 36},
		{"monthly inverted range", monthlyTx("i", 500, 8, 2), 10, 0},
		{"once inside horizon", onceTx("o", 1000, 4), 10, 1},
		{"once outside horizon", onceTx("o2", 1000, 20), 10, 0},
		{"unknown type", projection.Transaction{Type: "weekly", StartYear: 1}, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tx.Occurrences(tc.duration); got != tc.want {
				t.Errorf("got %d occurrences, want %d", got, tc.want)
			}
		})
	}
}
