/*
handlers.go - HTTP API handlers for the projection service

PURPOSE:
  Exposes the projection engine via REST. Handles HTTP request/response,
  JSON serialization, and delegates all computation to the projection
  package. The engine stays pure; everything stateful (scenario storage,
  response caching) lives behind interfaces held by the Handler.

ENDPOINTS:
  Projections:
    POST   /api/projections           Run a projection over a full snapshot

  Benchmarks:
    GET    /api/benchmarks            List the static benchmark dataset

  Scenarios:
    GET    /api/scenarios             List saved snapshots
    POST   /api/scenarios             Save a snapshot
    GET    /api/scenarios/{id}        Get one snapshot
    DELETE /api/scenarios/{id}        Delete a snapshot
    GET    /api/scenarios/{id}/report PDF export of the stored projection

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input, pathological rates
  - 404: Scenario not found
  - 500: Internal errors

CACHING:
  The engine is deterministic, so POST /api/projections responses are
  cached under a content hash of the raw request body. A cache miss costs
  one projection; a hit returns the stored bytes unchanged.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warp/growth-engine/cache"
	"github.com/warp/growth-engine/marketdata"
	"github.com/warp/growth-engine/projection"
	"github.com/warp/growth-engine/report"
	"github.com/warp/growth-engine/store"
)

// ErrUnknownBenchmark is returned for benchmark IDs not in the dataset.
var ErrUnknownBenchmark = errors.New("unknown benchmark index")

const (
	maxBodySize        = 1 << 20
	projectionCacheTTL = time.Hour
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store store.ScenarioStore
	Cache cache.Cache // nil disables response caching
	Tax   projection.TaxPolicy
}

// NewHandler creates a handler with the given store and cache.
func NewHandler(st store.ScenarioStore, c cache.Cache, tax projection.TaxPolicy) *Handler {
	return &Handler{Store: st, Cache: c, Tax: tax}
}

// =============================================================================
// PROJECTION
// =============================================================================

// RunProjection computes a full projection from the posted snapshot.
// POST /api/projections
func (h *Handler) RunProjection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	var key string
	if h.Cache != nil {
		key = cache.Key("projection", body)
		if cached, ok := h.Cache.Get(ctx, key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
	}

	var req SimulationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	outcome, err := h.project(req)
	if err != nil {
		writeError(w, statusFor(err), "Projection failed", err)
		return
	}

	resp := outcome.toResponse()
	if h.Cache != nil {
		if encoded, err := json.Marshal(resp); err == nil {
			h.Cache.Set(ctx, key, encoded, projectionCacheTTL)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// projectionOutcome bundles the engine-level results of one run so the
// JSON and PDF paths share a single computation.
type projectionOutcome struct {
	years      []projection.YearResult
	tax        projection.TaxResult
	benchmarks []projection.BenchmarkResult
	indices    []marketdata.Index // aligned with benchmarks
}

func (h *Handler) project(req SimulationRequest) (*projectionOutcome, error) {
	cfg, phases, txs := req.toEngine()

	years, err := projection.Simulate(cfg, phases, txs)
	if err != nil {
		return nil, err
	}

	invested := projection.TotalInvested(cfg, txs)
	finalBalance := years[len(years)-1].Balance
	tax := h.Tax.ComputeTax(finalBalance, invested, cfg.DurationYears)

	indices, err := resolveIndices(req.Benchmarks)
	if err != nil {
		return nil, err
	}
	tables := make([]projection.ReturnTable, len(indices))
	for i, ix := range indices {
		tables[i] = ix.ReturnTable()
	}

	return &projectionOutcome{
		years:      years,
		tax:        tax,
		benchmarks: projection.CompareBenchmarks(tables, cfg.DurationYears),
		indices:    indices,
	}, nil
}

func (o *projectionOutcome) toResponse() SimulationResponse {
	benchmarks := make([]BenchmarkResultDTO, len(o.benchmarks))
	for i, b := range o.benchmarks {
		benchmarks[i] = toBenchmarkResultDTO(b, o.indices[i])
	}
	return SimulationResponse{
		Years:      toYearResultDTOs(o.years),
		Tax:        toTaxResultDTO(o.tax),
		Benchmarks: benchmarks,
	}
}

func resolveIndices(ids []string) ([]marketdata.Index, error) {
	if len(ids) == 0 {
		return marketdata.Indices, nil
	}
	indices := make([]marketdata.Index, 0, len(ids))
	for _, id := range ids {
		ix := marketdata.ByID(id)
		if ix == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBenchmark, id)
		}
		indices = append(indices, *ix)
	}
	return indices, nil
}

// =============================================================================
// BENCHMARKS
// =============================================================================

// ListBenchmarks returns the static dataset entries.
// GET /api/benchmarks
func (h *Handler) ListBenchmarks(w http.ResponseWriter, r *http.Request) {
	dtos := make([]BenchmarkDTO, len(marketdata.Indices))
	for i, ix := range marketdata.Indices {
		dtos[i] = BenchmarkDTO{
			ID:            ix.ID,
			Name:          ix.Name,
			Ticker:        ix.Ticker,
			ISIN:          ix.ISIN,
			ExpenseRatio:  ix.ExpenseRatio,
			InceptionYear: ix.InceptionYear,
			LatestYear:    marketdata.LatestYear,
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// SCENARIOS
// =============================================================================

// ListScenarios returns all saved scenarios without their payloads.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.Store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list scenarios", err)
		return
	}

	dtos := make([]ScenarioSummaryDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = ScenarioSummaryDTO{
			ID:        s.ID,
			Name:      s.Name,
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
			UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SaveScenario stores a named input snapshot.
// POST /api/scenarios
func (h *Handler) SaveScenario(w http.ResponseWriter, r *http.Request) {
	var req SaveScenarioRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Scenario name is required", nil)
		return
	}

	// Reject snapshots the engine would refuse to replay.
	if _, err := h.project(req.Snapshot); err != nil {
		writeError(w, statusFor(err), "Invalid snapshot", err)
		return
	}

	id := req.ID
	if id == "" {
		id = fmt.Sprintf("scn-%d", time.Now().UnixNano())
	}
	payload, err := json.Marshal(req.Snapshot)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode snapshot", err)
		return
	}

	if err := h.Store.Save(r.Context(), store.Scenario{ID: id, Name: req.Name, Payload: payload}); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save scenario", err)
		return
	}

	dto, err := h.scenarioDTO(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load saved scenario", err)
		return
	}
	writeJSON(w, http.StatusCreated, dto)
}

// GetScenario returns one scenario including its snapshot.
// GET /api/scenarios/{id}
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	dto, err := h.scenarioDTO(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrScenarioNotFound) {
		writeError(w, http.StatusNotFound, "Scenario not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// DeleteScenario removes a scenario.
// DELETE /api/scenarios/{id}
func (h *Handler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete scenario", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ScenarioReport renders the stored scenario's projection as a PDF.
// GET /api/scenarios/{id}/report
func (h *Handler) ScenarioReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sc, err := h.Store.Get(r.Context(), id)
	if errors.Is(err, store.ErrScenarioNotFound) {
		writeError(w, http.StatusNotFound, "Scenario not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}

	var req SimulationRequest
	if err := json.Unmarshal(sc.Payload, &req); err != nil {
		writeError(w, http.StatusInternalServerError, "Corrupt scenario payload", err)
		return
	}

	outcome, err := h.project(req)
	if err != nil {
		writeError(w, statusFor(err), "Projection failed", err)
		return
	}

	// Render to a buffer first so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := report.WriteProjection(&buf, sc.Name, outcome.years, outcome.tax, outcome.benchmarks); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render report", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sc.Name+".pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) scenarioDTO(ctx context.Context, id string) (ScenarioDTO, error) {
	sc, err := h.Store.Get(ctx, id)
	if err != nil {
		return ScenarioDTO{}, err
	}
	var snapshot SimulationRequest
	if err := json.Unmarshal(sc.Payload, &snapshot); err != nil {
		return ScenarioDTO{}, fmt.Errorf("decode scenario %s: %w", id, err)
	}
	return ScenarioDTO{
		ID:        sc.ID,
		Name:      sc.Name,
		Snapshot:  snapshot,
		CreatedAt: sc.CreatedAt.Format(time.RFC3339),
		UpdatedAt: sc.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func statusFor(err error) int {
	switch {
	case errors.Is(err, projection.ErrInvalidDuration),
		errors.Is(err, projection.ErrNegativeCapital),
		errors.Is(err, projection.ErrUnknownTransactionType),
		errors.Is(err, projection.ErrNonFiniteRate),
		errors.Is(err, ErrUnknownBenchmark):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
