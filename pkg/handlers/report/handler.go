package report

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fin-tools/expense-atlas/pkg/adapters"
	"github.com/fin-tools/expense-atlas/pkg/models/api"
	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Engine is the analytics surface the report handlers depend on. Every method
// is a pure derivation over the posted snapshot.
type Engine interface {
	Summary(ctx context.Context, res domain.AnalysisResult) domain.Summary
	CategoryBreakdown(ctx context.Context, res domain.AnalysisResult, monthLabel string) []domain.CategoryPercentageRow
	CategoryTrends(ctx context.Context, res domain.AnalysisResult, topN int) []domain.CategoryTrend
	TopRecurring(ctx context.Context, res domain.AnalysisResult, topN int) []domain.RecurringTransaction
	IdenticalRecurring(ctx context.Context, res domain.AnalysisResult, topN int) []domain.IdenticalRecurringTransaction
	ColorMap(ctx context.Context, res domain.AnalysisResult) map[string]string
}

type Handler struct {
	engine     Engine
	defaultTop int
}

func NewHandler(engine Engine, defaultTop int) *Handler {
	return &Handler{
		engine:     engine,
		defaultTop: defaultTop,
	}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, ok := h.decodeSnapshot(w, r)
	if !ok {
		return
	}

	h.encode(ctx, w, adapters.MapSummaryDomainToApi(h.engine.Summary(ctx, res)))
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	monthLabel := r.URL.Query().Get("month")

	res, ok := h.decodeSnapshot(w, r)
	if !ok {
		return
	}

	rows := h.engine.CategoryBreakdown(ctx, res, monthLabel)
	response := make([]api.CategoryPercentageRow, 0, len(rows))
	for _, row := range rows {
		response = append(response, adapters.MapPercentageRowDomainToApi(row))
	}

	h.encode(ctx, w, response)
}

func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	topN, err := h.topParam(r)
	if err != nil {
		http.Error(w, "invalid top parameter", http.StatusBadRequest)
		return
	}
	res, ok := h.decodeSnapshot(w, r)
	if !ok {
		return
	}

	trends := h.engine.CategoryTrends(ctx, res, topN)
	response := make([]api.CategoryTrend, 0, len(trends))
	for _, trend := range trends {
		response = append(response, adapters.MapTrendDomainToApi(trend))
	}

	h.encode(ctx, w, response)
}

func (h *Handler) GetRecurring(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	topN, err := h.topParam(r)
	if err != nil {
		http.Error(w, "invalid top parameter", http.StatusBadRequest)
		return
	}
	res, ok := h.decodeSnapshot(w, r)
	if !ok {
		return
	}

	recurring := h.engine.TopRecurring(ctx, res, topN)
	response := make([]api.RecurringTransaction, 0, len(recurring))
	for _, tx := range recurring {
		response = append(response, adapters.MapRecurringDomainToApi(tx))
	}

	h.encode(ctx, w, response)
}

func (h *Handler) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	topN, err := h.topParam(r)
	if err != nil {
		http.Error(w, "invalid top parameter", http.StatusBadRequest)
		return
	}
	res, ok := h.decodeSnapshot(w, r)
	if !ok {
		return
	}

	subs := h.engine.IdenticalRecurring(ctx, res, topN)
	response := make([]api.IdenticalRecurringTransaction, 0, len(subs))
	for _, tx := range subs {
		response = append(response, adapters.MapIdenticalRecurringDomainToApi(tx))
	}

	h.encode(ctx, w, response)
}

func (h *Handler) GetColors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, ok := h.decodeSnapshot(w, r)
	if !ok {
		return
	}

	h.encode(ctx, w, h.engine.ColorMap(ctx, res))
}

func (h *Handler) decodeSnapshot(w http.ResponseWriter, r *http.Request) (domain.AnalysisResult, bool) {
	var snapshot api.AnalysisResult
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		zerolog.Ctx(r.Context()).Warn().
			Err(err).
			Msg("failed to decode analysis snapshot")
		http.Error(w, "invalid analysis snapshot", http.StatusBadRequest)
		return domain.AnalysisResult{}, false
	}
	return adapters.MapAnalysisResultApiToDomain(snapshot), true
}

func (h *Handler) topParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("top")
	if raw == "" {
		return h.defaultTop, nil
	}
	return strconv.Atoi(raw)
}

func (h *Handler) encode(ctx context.Context, w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Msg("failed to encode report response")
	}
}
