/*
Package report renders a finished projection as a PDF document.

PURPOSE:
  Document export is a thin, read-only consumer of the engine's output: it
  takes the YearResult series and derived metrics and lays them out as a
  printable report. It never mutates engine state.

SEE ALSO:
  - api/handlers.go: ScenarioReport endpoint using this writer
*/
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/warp/growth-engine/marketdata"
	"github.com/warp/growth-engine/projection"
)

// WriteProjection renders the projection series, tax summary, and benchmark
// comparison as a PDF to w.
func WriteProjection(w io.Writer, title string, years []projection.YearResult, tax projection.TaxResult, benchmarks []projection.BenchmarkResult) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, "Generated "+time.Now().Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	writeYearTable(pdf, years)
	pdf.Ln(6)
	writeTaxSummary(pdf, tax)
	pdf.Ln(6)
	writeBenchmarks(pdf, benchmarks)

	return pdf.Output(w)
}

func writeYearTable(pdf *fpdf.Fpdf, years []projection.YearResult) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Projection", "", 1, "L", false, 0, "")

	widths := []float64{15, 35, 20, 35, 35}
	headers := []string{"Year", "Balance", "Rate %", "Deposits", "Returns"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for i, hd := range headers {
		pdf.CellFormat(widths[i], 6, hd, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, y := range years {
		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%d", y.Year), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, y.Balance.StringFixed(0), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, y.Rate.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, y.Deposits.StringFixed(0), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, y.Returns.StringFixed(0), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
}

func writeTaxSummary(pdf *fpdf.Fpdf, tax projection.TaxResult) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Tax", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	rows := [][2]string{
		{"Capital gains", tax.Gains.StringFixed(0)},
		{"Tax due", tax.Tax.StringFixed(0)},
		{"After tax", tax.AfterTax.StringFixed(0)},
		{"In today's money", tax.InTodaysMoney.StringFixed(0)},
		{"Effective rate", tax.EffectiveRate + " %"},
	}
	for _, row := range rows {
		pdf.CellFormat(50, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, row[1], "", 1, "R", false, 0, "")
	}
}

func writeBenchmarks(pdf *fpdf.Fpdf, benchmarks []projection.BenchmarkResult) {
	if len(benchmarks) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Benchmark comparison", "", 1, "L", false, 0, "")

	widths := []float64{45, 25, 30, 40}
	headers := []string{"Index", "CAGR %", "Total return %", "Coverage"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for i, hd := range headers {
		pdf.CellFormat(widths[i], 6, hd, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, b := range benchmarks {
		name := b.Index
		if ix := marketdata.ByID(b.Index); ix != nil {
			name = ix.Name
		}
		cagr := "n/a"
		if b.CAGR != nil {
			cagr = fmt.Sprintf("%.2f", *b.CAGR)
		}
		coverage := fmt.Sprintf("%d of %d years", b.YearsAvailable, b.YearsRequested)

		pdf.CellFormat(widths[0], 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, cagr, "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%.1f", b.TotalReturn), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, coverage, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
}
