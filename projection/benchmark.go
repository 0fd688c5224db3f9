/*
benchmark.go - Historical index comparison

PURPOSE:
  Compares a projection horizon against the trailing window of a historical
  per-year return table. The window is anchored at the table's latest year
  and reaches back DurationYears; years missing from the table are skipped,
  not treated as zero, so a young index yields a shorter effective window.

The engine only sees the ReturnTable shape. The concrete dataset lives in
the marketdata package and adapts itself into this type, keeping the static
reference data out of the computation core.
*/
package projection

import "math"

// ReturnTable is the per-index input for a benchmark comparison: calendar
// year to total return in percent, plus the latest year the table covers.
type ReturnTable struct {
	Index      string
	LatestYear int
	Returns    map[int]float64
}

// CompareBenchmark compounds the table's returns over the trailing window of
// the given horizon. CAGR is nil when no data years fall inside the window.
func CompareBenchmark(tbl ReturnTable, durationYears int) BenchmarkResult {
	to := tbl.LatestYear
	from := to - durationYears + 1

	cumulative := 1.0
	n := 0
	for year := from; year <= to; year++ {
		r, ok := tbl.Returns[year]
		if !ok {
			continue
		}
		cumulative *= 1 + r/100
		n++
	}

	result := BenchmarkResult{
		Index:          tbl.Index,
		TotalReturn:    (cumulative - 1) * 100,
		YearsAvailable: n,
		YearsRequested: durationYears,
		FromYear:       from,
		ToYear:         to,
	}
	if n > 0 {
		cagr := (math.Pow(cumulative, 1/float64(n)) - 1) * 100
		result.CAGR = &cagr
	}
	return result
}

// CompareBenchmarks runs CompareBenchmark over a set of tables, preserving
// their order.
func CompareBenchmarks(tables []ReturnTable, durationYears int) []BenchmarkResult {
	results := make([]BenchmarkResult, len(tables))
	for i, tbl := range tables {
		results[i] = CompareBenchmark(tbl, durationYears)
	}
	return results
}
