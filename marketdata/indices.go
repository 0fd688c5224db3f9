/*
Package marketdata holds the static benchmark reference dataset.

PURPOSE:
  A fixed, read-only table of historical per-year index returns used by the
  projection engine's benchmark comparison. The data is a constant input:
  not user-editable, not persisted, and never mutated at runtime.

DATA NOTES:
  Yearly total returns in percent, as of end 2024.
  Sources: MSCI, S&P Dow Jones Indices, Deutsche Boerse, FTSE Russell.
  Returns are nominal. Past performance does not guarantee future results.
  Each index is represented by a common UCITS ETF tracking it, which is
  where the ticker, ISIN, and expense ratio come from.

SEE ALSO:
  - projection/benchmark.go: Consumes these tables via ReturnTable
*/
package marketdata

import "github.com/warp/growth-engine/projection"

// LatestYear is the last calendar year the dataset covers. Benchmark
// windows are anchored here.
const LatestYear = 2024

// Index is one benchmark entry: identity and fund facts plus the per-year
// return table.
type Index struct {
	ID            string
	Name          string
	Ticker        string
	ISIN          string
	ExpenseRatio  float64 // percent per year
	InceptionYear int     // first year with return data
	Returns       map[int]float64
}

// ReturnTable adapts the index into the engine's comparison input.
func (ix Index) ReturnTable() projection.ReturnTable {
	return projection.ReturnTable{
		Index:      ix.ID,
		LatestYear: LatestYear,
		Returns:    ix.Returns,
	}
}

// ByID returns the index with the given ID, or nil if unknown.
func ByID(id string) *Index {
	for i := range Indices {
		if Indices[i].ID == id {
			return &Indices[i]
		}
	}
	return nil
}

// Indices is the full benchmark dataset, in display order.
var Indices = []Index{
	{
		ID:            "msci-world",
		Name:          "MSCI World",
		Ticker:        "EUNL",
		ISIN:          "IE00B4L5Y983",
		ExpenseRatio:  0.20,
		InceptionYear: 1999,
		Returns: map[int]float64{
			1999: 24.9, 2000: -13.2, 2001: -16.8, 2002: -19.9, 2003: 33.1,
			2004: 14.7, 2005: 9.5, 2006: 20.1, 2007: 9.0, 2008: -40.7,
			2009: 30.0, 2010: 11.8, 2011: -5.5, 2012: 15.8, 2013: 26.7,
			2014: 4.9, 2015: -0.9, 2016: 7.5, 2017: 22.4, 2018: -8.7,
			2019: 27.7, 2020: 15.9, 2021: 21.8, 2022: -18.1, 2023: 23.8,
			2024: 18.7,
		},
	},
	{
		ID:            "sp500",
		Name:          "S&P 500",
		Ticker:        "VUSA",
		ISIN:          "IE00B3XXRP09",
		ExpenseRatio:  0.07,
		InceptionYear: 1999,
		Returns: map[int]float64{
			1999: 21.0, 2000: -9.1, 2001: -11.9, 2002: -22.1, 2003: 28.7,
			2004: 10.9, 2005: 4.9, 2006: 15.8, 2007: 5.5, 2008: -37.0,
			2009: 26.5, 2010: 15.1, 2011: 2.1, 2012: 16.0, 2013: 32.4,
			2014: 13.7, 2015: 1.4, 2016: 12.0, 2017: 21.8, 2018: -4.4,
			2019: 31.5, 2020: 18.4, 2021: 28.7, 2022: -18.1, 2023: 26.3,
			2024: 25.0,
		},
	},
	{
		ID:            "dax",
		Name:          "DAX",
		Ticker:        "DBXD",
		ISIN:          "LU0274211480",
		ExpenseRatio:  0.09,
		InceptionYear: 1999,
		Returns: map[int]float64{
			1999: 39.1, 2000: -7.5, 2001: -19.8, 2002: -43.9, 2003: 37.1,
			2004: 7.3, 2005: 27.1, 2006: 22.0, 2007: 22.3, 2008: -40.4,
			2009: 23.8, 2010: 16.1, 2011: -14.7, 2012: 29.1, 2013: 25.5,
			2014: 2.7, 2015: 9.6, 2016: 6.9, 2017: 12.5, 2018: -18.3,
			2019: 25.5, 2020: 3.5, 2021: 15.8, 2022: -12.3, 2023: 20.3,
			2024: 18.8,
		},
	},
	{
		// Shorter history on purpose: windows longer than its data
		// exercise the partial-coverage reporting.
		ID:            "ftse-all-world",
		Name:          "FTSE All-World",
		Ticker:        "VWRL",
		ISIN:          "IE00B3RBWM25",
		ExpenseRatio:  0.22,
		InceptionYear: 2008,
		Returns: map[int]float64{
			2008: -41.9, 2009: 36.4, 2010: 13.8, 2011: -7.3, 2012: 17.1,
			2013: 23.3, 2014: 4.8, 2015: -1.7, 2016: 8.6, 2017: 24.6,
			2018: -9.6, 2019: 27.2, 2020: 16.6, 2021: 18.9, 2022: -17.7,
			2023: 22.3, 2024: 17.5,
		},
	},
}
