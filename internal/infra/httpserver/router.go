package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	appanalysis "github.com/bryanwahyu/venture-insight/internal/application/analysis"
	domain "github.com/bryanwahyu/venture-insight/internal/domain/analysis"
	"github.com/bryanwahyu/venture-insight/internal/insights"
	"github.com/bryanwahyu/venture-insight/internal/middleware"
)

type Router struct {
	svc     *appanalysis.Service
	reports domain.ReportStore // nil when uploads are not configured
}

func NewRouter(svc *appanalysis.Service, reports domain.ReportStore) http.Handler {
	r := &Router{svc: svc, reports: reports}
	mux := chi.NewRouter()

	mux.Get("/", r.handleRoot)
	mux.Get("/health", middleware.HealthHandler(map[string]middleware.HealthChecker{
		"text_generation": middleware.CheckerFunc(r.checkGenerator),
	}))
	mux.Get("/metrics", r.handleMetrics)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/analyses", r.wrap(r.handleAnalyze))
		rt.Get("/analyses", r.wrap(r.handleList))
		rt.Get("/analyses/{id}", r.wrap(r.handleGet))
		rt.Delete("/analyses/{id}", r.wrap(r.handleDelete))
		rt.Post("/analyses/{id}/pitch-deck", r.wrap(r.handlePitchDeck))
		rt.Post("/analyses/{id}/export", r.wrap(r.handleExport))
		rt.Get("/analyses/{id}/insights", r.wrap(r.handleInsights))
		rt.Post("/validate-business-model", r.wrap(r.handleValidate))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// badRequest marks caller errors so wrap maps them to 400.
type badRequest struct{ err error }

func (b badRequest) Error() string { return b.err.Error() }
func (b badRequest) Unwrap() error { return b.err }

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrEmptyHistory):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, domain.ErrNotImplemented):
			http.Error(w, err.Error(), http.StatusNotImplemented)
		case errors.Is(err, domain.ErrUnsupportedFormat), errors.Is(err, domain.ErrEmptyIdea):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			var br badRequest
			if errors.As(err, &br) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func (r *Router) checkGenerator(_ context.Context) error {
	if r.svc == nil || r.svc.Gen == nil {
		return errors.New("text generation client not configured")
	}
	return nil
}

func (r *Router) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Venture Insight API",
		"version": "1.0.0",
		"status":  "running",
	})
}

func (r *Router) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	m := middleware.GetMetrics()
	now := time.Now()
	var today, week, month int
	for _, rec := range r.svc.History().All() {
		if rec.CreatedAt.Year() == now.Year() && rec.CreatedAt.YearDay() == now.YearDay() {
			today++
		}
		if now.Sub(rec.CreatedAt) <= 7*24*time.Hour {
			week++
		}
		if rec.CreatedAt.Year() == now.Year() && rec.CreatedAt.Month() == now.Month() {
			month++
		}
	}
	m["total_analyses"] = r.svc.History().Len()
	m["analyses_today"] = today
	m["analyses_this_week"] = week
	m["analyses_this_month"] = month
	writeJSON(w, http.StatusOK, m)
}

// analysisResponse wraps a record with its history index, which is the public
// analysis identifier.
type analysisResponse struct {
	AnalysisID int `json:"analysis_id"`
	*domain.Record
}

// POST /v1/analyses
// Body: {"idea": "<description>"}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Idea string `json:"idea"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest{fmt.Errorf("decode request: %w", err)}
	}
	idea := middleware.SanitizeString(body.Idea)
	if err := middleware.ValidateIdea(idea); err != nil {
		middleware.IncrementAnalysesFailed()
		return badRequest{err}
	}

	rec, id, err := r.svc.Analyze(req.Context(), idea)
	if err != nil {
		middleware.IncrementAnalysesFailed()
		return err
	}
	middleware.IncrementAnalyses()

	return writeJSON(w, http.StatusCreated, analysisResponse{
		AnalysisID: id,
		Record:     rec,
	})
}

// GET /v1/analyses
func (r *Router) handleList(w http.ResponseWriter, _ *http.Request) error {
	records := r.svc.History().All()
	list := make([]map[string]any, 0, len(records))
	for i, rec := range records {
		summary := make(map[string]bool, len(domain.SectionOrder))
		for name, sec := range rec.Sections() {
			summary[string(name)] = sec.OK()
		}
		list = append(list, map[string]any{
			"analysis_id": i,
			"created_at":  rec.CreatedAt,
			"idea":        rec.Idea,
			"had_errors":  rec.HadErrors,
			"summary":     summary,
		})
	}
	return writeJSON(w, http.StatusOK, list)
}

// GET /v1/analyses/{id}
func (r *Router) handleGet(w http.ResponseWriter, req *http.Request) error {
	id, rec, err := r.recordFromPath(req)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, analysisResponse{AnalysisID: id, Record: rec})
}

// DELETE /v1/analyses/{id}
// History is append-only; identifiers are indices, so deletion is explicitly
// not implemented rather than silently ignored. Any syntactically valid id
// gets the same answer, in or out of range.
func (r *Router) handleDelete(_ http.ResponseWriter, req *http.Request) error {
	raw := chi.URLParam(req, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return badRequest{fmt.Errorf("invalid analysis id %q", raw)}
	}
	return r.svc.History().Delete(id)
}

// POST /v1/analyses/{id}/pitch-deck
func (r *Router) handlePitchDeck(w http.ResponseWriter, req *http.Request) error {
	id, rec, err := r.recordFromPath(req)
	if err != nil {
		return err
	}
	deck, err := r.svc.GeneratePitchDeck(req.Context(), rec)
	if err != nil {
		return err
	}
	middleware.IncrementPitchDecks()
	return writeJSON(w, http.StatusOK, map[string]any{
		"analysis_id":  id,
		"pitch_deck":   deck.Content,
		"generated_at": deck.GeneratedAt,
	})
}

// POST /v1/analyses/{id}/export
// Body: {"format": "json"|"markdown", "upload": bool}
func (r *Router) handleExport(w http.ResponseWriter, req *http.Request) error {
	id, rec, err := r.recordFromPath(req)
	if err != nil {
		return err
	}
	var body struct {
		Format string `json:"format"`
		Upload bool   `json:"upload"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest{fmt.Errorf("decode request: %w", err)}
	}
	if body.Format == "" {
		body.Format = "json"
	}

	content, err := r.svc.Export(rec, body.Format)
	if err != nil {
		return err
	}

	resp := map[string]any{
		"analysis_id": id,
		"format":      body.Format,
		"content":     content,
		"exported_at": time.Now(),
	}

	if body.Upload {
		if r.reports == nil {
			return badRequest{errors.New("report storage is not configured")}
		}
		f, _ := appanalysis.ParseFormat(body.Format)
		key := fmt.Sprintf("reports/%s%s", rec.ID, f.Extension())
		url, err := r.reports.UploadReport(req.Context(), key, []byte(content), f.ContentType())
		if err != nil {
			return err
		}
		resp["report_url"] = url
	}

	return writeJSON(w, http.StatusOK, resp)
}

// GET /v1/analyses/{id}/insights
func (r *Router) handleInsights(w http.ResponseWriter, req *http.Request) error {
	id, rec, err := r.recordFromPath(req)
	if err != nil {
		return err
	}
	metrics := insights.FromRecord(rec)
	model := insights.GenerateFinancialModel(metrics)
	report := insights.Report{
		Metrics:        metrics,
		SWOT:           insights.GenerateSWOT(insights.RecordText(rec)),
		FinancialModel: model,
		Competitors:    insights.CreateCompetitorAnalysis(time.Now()),
		ActionPlan:     insights.CreateActionPlan(),
		Charts:         insights.CreateMarketCharts(model),
	}
	return writeJSON(w, http.StatusOK, map[string]any{
		"analysis_id": id,
		"insights":    report,
	})
}

// POST /v1/validate-business-model
// Body: {"business_model": {...}}
func (r *Router) handleValidate(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		BusinessModel map[string]any `json:"business_model"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest{fmt.Errorf("decode request: %w", err)}
	}
	if body.BusinessModel == nil {
		return badRequest{errors.New("business_model is required")}
	}

	res, err := r.svc.ValidateBusinessModel(req.Context(), body.BusinessModel)
	if err != nil {
		return err
	}
	middleware.IncrementValidations()
	return writeJSON(w, http.StatusOK, res)
}

func (r *Router) recordFromPath(req *http.Request) (int, *domain.Record, error) {
	raw := chi.URLParam(req, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, nil, badRequest{fmt.Errorf("invalid analysis id %q", raw)}
	}
	rec, err := r.svc.History().Get(id)
	if err != nil {
		return 0, nil, err
	}
	return id, rec, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
