package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
	"github.com/fudosan-labs/estate-advisor/internal/core/matching"
	"github.com/fudosan-labs/estate-advisor/internal/core/ports"
	"github.com/fudosan-labs/estate-advisor/internal/observability/metrics"
)

type Router struct {
	chatSvc ports.ChatService
	catalog ports.PropertyCatalog

	metrics *metrics.HTTPServerMetrics
	service string

	generatorEnabled bool
	traffic          TrafficConfig
}

type TrafficConfig struct {
	RateLimitRPS   float64
	RateLimitBurst int
	MaxInflight    int
}

func NewRouter(
	chatSvc ports.ChatService,
	catalog ports.PropertyCatalog,
	serverMetrics *metrics.HTTPServerMetrics,
	service string,
	generatorEnabled bool,
	traffic TrafficConfig,
) *Router {
	return &Router{
		chatSvc:          chatSvc,
		catalog:          catalog,
		metrics:          serverMetrics,
		service:          service,
		generatorEnabled: generatorEnabled,
		traffic:          traffic,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/chat", rt.chat)
	mux.HandleFunc("/v1/properties", rt.listProperties)
	mux.HandleFunc("/v1/properties/", rt.propertyByID)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = backpressureMiddleware(handler, rt.traffic.MaxInflight, 50*time.Millisecond)
	handler = rateLimitMiddleware(handler, rt.traffic.RateLimitRPS, rt.traffic.RateLimitBurst)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(rt.service, handler)
	}
	handler = accessLogMiddleware(handler)
	return requestIDMiddleware(handler)
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	start := time.Now()
	result, err := rt.chatSvc.Complete(r.Context(), req)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordChatTurn(rt.service, string(result.Phase), result.Generated, time.Since(start))
		rt.metrics.RecordExtractedFields(rt.service, extractedFieldCount(result.ExtractedFields))
		if len(result.Recommendations) > 0 {
			rt.metrics.RecordRecommendations(rt.service, len(result.Recommendations), result.Recommendations[0].MatchScore)
		}
		if rt.generatorEnabled && !result.Generated {
			rt.metrics.RecordGeneratorFallback(rt.service)
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) listProperties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"properties": rt.catalog.All()})
}

func (rt *Router) propertyByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/v1/properties/")
	id, wantAnalysis := strings.CutSuffix(rest, "/analysis")
	id = strings.TrimSuffix(id, "/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "property id is required"})
		return
	}

	property, ok := rt.catalog.ByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "property not found"})
		return
	}

	if wantAnalysis {
		writeJSON(w, http.StatusOK, map[string]any{
			"property": property,
			"analysis": matching.Analyze(property),
		})
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func extractedFieldCount(profile domain.InvestorProfile) int {
	count := 0
	if profile.AnnualIncome != nil {
		count++
	}
	if profile.ExperienceYears != nil {
		count++
	}
	if profile.BudgetRange != nil {
		count++
	}
	if profile.RiskTolerance != nil {
		count++
	}
	if profile.InvestmentGoal != nil {
		count++
	}
	return count
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
