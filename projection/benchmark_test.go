package projection_test

import (
	"math"
	"testing"

	"github.com/warp/growth-engine/projection"
)

func TestCompareBenchmark_MissingYearsSkipped(t *testing.T) {
	// GIVEN: A 5-year window with 2022 missing from the table
	// THEN: n counts present years only; the missing year is skipped, not
	//       treated as zero

	tbl := projection.ReturnTable{
		Index:      "test",
		LatestYear: 2024,
		Returns: map[int]float64{
			2020: 10, 2021: -5, 2023: 20, 2024: 8,
		},
	}

	result := projection.CompareBenchmark(tbl, 5)

	if result.FromYear != 2020 || result.ToYear != 2024 {
		t.Errorf("window [%d, %d], want [2020, 2024]", result.FromYear, result.ToYear)
	}
	if result.YearsRequested != 5 {
		t.Errorf("years requested %d, want 5", result.YearsRequested)
	}
	if result.YearsAvailable != 4 {
		t.Errorf("years available %d, want 4 (2022 missing)", result.YearsAvailable)
	}

	cumulative := 1.10 * 0.95 * 1.20 * 1.08
	wantTotal := (cumulative - 1) * 100
	if math.Abs(result.TotalReturn-wantTotal) > 1e-9 {
		t.Errorf("total return %f, want %f", result.TotalReturn, wantTotal)
	}

	if result.CAGR == nil {
		t.Fatal("expected non-nil CAGR")
	}
	wantCAGR := (math.Pow(cumulative, 1.0/4) - 1) * 100
	if math.Abs(*result.CAGR-wantCAGR) > 1e-9 {
		t.Errorf("cagr %f, want %f", *result.CAGR, wantCAGR)
	}
}

func TestCompareBenchmark_NoDataInWindow_NilCAGR(t *testing.T) {
	// All data predates the requested window.
	tbl := projection.ReturnTable{
		Index:      "young",
		LatestYear: 2024,
		Returns:    map[int]float64{2001: 5, 2002: 7},
	}

	result := projection.CompareBenchmark(tbl, 3)

	if result.CAGR != nil {
		t.Errorf("expected nil CAGR for empty window, got %f", *result.CAGR)
	}
	if result.YearsAvailable != 0 {
		t.Errorf("years available %d, want 0", result.YearsAvailable)
	}
	if result.TotalReturn != 0 {
		t.Errorf("total return %f, want 0 for empty window", result.TotalReturn)
	}
}

func TestCompareBenchmark_FullCoverage(t *testing.T) {
	tbl := projection.ReturnTable{
		Index:      "full",
		LatestYear: 2024,
		Returns:    map[int]float64{2023: 10, 2024: 10},
	}

	result := projection.CompareBenchmark(tbl, 2)

	if result.YearsAvailable != result.YearsRequested {
		t.Errorf("expected full coverage, got %d of %d",
			result.YearsAvailable, result.YearsRequested)
	}
	// Two 10% years: CAGR is exactly 10.
	if result.CAGR == nil || math.Abs(*result.CAGR-10) > 1e-9 {
		t.Errorf("cagr = %v, want 10", result.CAGR)
	}
}

func TestCompareBenchmarks_PreservesOrder(t *testing.T) {
	tables := []projection.ReturnTable{
		{Index: "a", LatestYear: 2024, Returns: map[int]float64{2024: 1}},
		{Index: "b", LatestYear: 2024, Returns: map[int]float64{2024: 2}},
	}

	results := projection.CompareBenchmarks(tables, 1)

	if len(results) != 2 || results[0].Index != "a" || results[1].Index != "b" {
		t.Errorf("expected results in table order, got %+v", results)
	}
}
