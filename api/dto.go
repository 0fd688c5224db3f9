/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's decimal-based model from the external API contract: JSON
  carries plain numbers, the engine keeps exact decimals.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Structural validation (unknown transaction types, bad durations) happens
  in the engine; handlers translate those errors to 400s. DTOs are pure
  data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - projection/types.go: The engine model these map onto
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/warp/growth-engine/marketdata"
	"github.com/warp/growth-engine/projection"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// SimulationRequest is the full input snapshot for one projection run.
type SimulationRequest struct {
	Config       SimulationConfigDTO `json:"config"`
	Phases       []YieldPhaseDTO     `json:"phases"`
	Transactions []TransactionDTO    `json:"transactions"`

	// Benchmark index IDs to compare against; empty means all.
	Benchmarks []string `json:"benchmarks,omitempty"`
}

type SimulationConfigDTO struct {
	InitialCapital float64 `json:"initial_capital"`
	DurationYears  int     `json:"duration_years"`
	ReinvestGains  bool    `json:"reinvest_gains"`
}

type YieldPhaseDTO struct {
	ID             string  `json:"id"`
	StartYear      int     `json:"start_year"`
	EndYear        int     `json:"end_year"`
	Rate           float64 `json:"rate"`
	CustomDuration bool    `json:"custom_duration"`
}

type TransactionDTO struct {
	ID             string  `json:"id"`
	Amount         float64 `json:"amount"`
	Type           string  `json:"type"`
	StartYear      int     `json:"start_year"`
	EndYear        int     `json:"end_year"`
	CustomDuration bool    `json:"custom_duration"`
}

// SaveScenarioRequest stores a named input snapshot.
type SaveScenarioRequest struct {
	ID       string            `json:"id,omitempty"`
	Name     string            `json:"name"`
	Snapshot SimulationRequest `json:"snapshot"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// SimulationResponse carries the projected series and its derived metrics.
type SimulationResponse struct {
	Years      []YearResultDTO      `json:"years"`
	Tax        TaxResultDTO         `json:"tax"`
	Benchmarks []BenchmarkResultDTO `json:"benchmarks"`
}

type YearResultDTO struct {
	Year     int     `json:"year"`
	Balance  float64 `json:"balance"`
	Rate     float64 `json:"rate"`
	Deposits float64 `json:"deposits"`
	Returns  float64 `json:"returns"`
}

type TaxResultDTO struct {
	Gains         float64 `json:"gains"`
	Tax           float64 `json:"tax"`
	AfterTax      float64 `json:"after_tax"`
	InTodaysMoney float64 `json:"in_todays_money"`
	EffectiveRate string  `json:"effective_rate"`
}

type BenchmarkResultDTO struct {
	Index          string   `json:"index"`
	Name           string   `json:"name"`
	Ticker         string   `json:"ticker"`
	ISIN           string   `json:"isin"`
	ExpenseRatio   float64  `json:"expense_ratio"`
	CAGR           *float64 `json:"cagr"`
	TotalReturn    float64  `json:"total_return"`
	YearsAvailable int      `json:"years_available"`
	YearsRequested int      `json:"years_requested"`
	FromYear       int      `json:"from_year"`
	ToYear         int      `json:"to_year"`
}

// BenchmarkDTO describes one dataset entry (GET /api/benchmarks).
type BenchmarkDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Ticker        string  `json:"ticker"`
	ISIN          string  `json:"isin"`
	ExpenseRatio  float64 `json:"expense_ratio"`
	InceptionYear int     `json:"inception_year"`
	LatestYear    int     `json:"latest_year"`
}

// ScenarioSummaryDTO is the list view of a saved scenario (no payload).
type ScenarioSummaryDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ScenarioDTO is the detail view including the stored snapshot.
type ScenarioDTO struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Snapshot  SimulationRequest `json:"snapshot"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func (d SimulationConfigDTO) toEngine() projection.SimulationConfig {
	return projection.SimulationConfig{
		InitialCapital: decimal.NewFromFloat(d.InitialCapital),
		DurationYears:  d.DurationYears,
		ReinvestGains:  d.ReinvestGains,
	}
}

func (d YieldPhaseDTO) toEngine() projection.YieldPhase {
	return projection.YieldPhase{
		ID:             d.ID,
		StartYear:      d.StartYear,
		EndYear:        d.EndYear,
		Rate:           decimal.NewFromFloat(d.Rate),
		CustomDuration: d.CustomDuration,
	}
}

func (d TransactionDTO) toEngine() projection.Transaction {
	return projection.Transaction{
		ID:             d.ID,
		Amount:         decimal.NewFromFloat(d.Amount),
		Type:           projection.TransactionType(d.Type),
		StartYear:      d.StartYear,
		EndYear:        d.EndYear,
		CustomDuration: d.CustomDuration,
	}
}

func (r SimulationRequest) toEngine() (projection.SimulationConfig, []projection.YieldPhase, []projection.Transaction) {
	phases := make([]projection.YieldPhase, len(r.Phases))
	for i, p := range r.Phases {
		phases[i] = p.toEngine()
	}
	txs := make([]projection.Transaction, len(r.Transactions))
	for i, t := range r.Transactions {
		txs[i] = t.toEngine()
	}
	return r.Config.toEngine(), phases, txs
}

func toYearResultDTOs(years []projection.YearResult) []YearResultDTO {
	dtos := make([]YearResultDTO, len(years))
	for i, y := range years {
		dtos[i] = YearResultDTO{
			Year:     y.Year,
			Balance:  y.Balance.InexactFloat64(),
			Rate:     y.Rate.InexactFloat64(),
			Deposits: y.Deposits.InexactFloat64(),
			Returns:  y.Returns.InexactFloat64(),
		}
	}
	return dtos
}

func toTaxResultDTO(t projection.TaxResult) TaxResultDTO {
	return TaxResultDTO{
		Gains:         t.Gains.InexactFloat64(),
		Tax:           t.Tax.InexactFloat64(),
		AfterTax:      t.AfterTax.InexactFloat64(),
		InTodaysMoney: t.InTodaysMoney.InexactFloat64(),
		EffectiveRate: t.EffectiveRate,
	}
}

func toBenchmarkResultDTO(res projection.BenchmarkResult, ix marketdata.Index) BenchmarkResultDTO {
	return BenchmarkResultDTO{
		Index:          res.Index,
		Name:           ix.Name,
		Ticker:         ix.Ticker,
		ISIN:           ix.ISIN,
		ExpenseRatio:   ix.ExpenseRatio,
		CAGR:           res.CAGR,
		TotalReturn:    res.TotalReturn,
		YearsAvailable: res.YearsAvailable,
		YearsRequested: res.YearsRequested,
		FromYear:       res.FromYear,
		ToYear:         res.ToYear,
	}
}
