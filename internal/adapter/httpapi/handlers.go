package httpapi

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/kprsnt/brandscore/internal/domain"
	"github.com/kprsnt/brandscore/internal/ratelimit"
	"github.com/kprsnt/brandscore/internal/usecase/check"
	"github.com/kprsnt/brandscore/internal/validation"
)

type checkBrandRequest struct {
	Brand    string `json:"brand"`
	Category string `json:"category"`
}

type checkBrandResponse struct {
	Brand     string                 `json:"brand"`
	Category  string                 `json:"category"`
	Score     int                    `json:"score"`
	Responses []domain.ModelResponse `json:"responses"`
	Breakdown domain.Breakdown       `json:"breakdown"`
	Tips      []string               `json:"tips"`
	Meta      responseMeta           `json:"meta"`
}

type responseMeta struct {
	ResponseTime  int64     `json:"responseTime"` // milliseconds
	ModelsQueried int       `json:"modelsQueried"`
	Timestamp     time.Time `json:"timestamp"`
	Cached        bool      `json:"cached"`
}

func (s *Server) handleCheckBrand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed,
			"Method not allowed")
		return
	}

	start := time.Now()

	decision := s.limiter.Check(ratelimit.ClientKey(r))
	if !decision.Allowed {
		writeError(w, http.StatusTooManyRequests, CodeRateLimitExceeded,
			"Rate limit exceeded. Please try again later.")
		return
	}

	var req checkBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidJSON,
			"Invalid JSON in request body")
		return
	}

	input, err := validation.ValidateBrandInput(req.Brand, req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationError, err.Error())
		return
	}

	if !s.anyConfigured {
		writeError(w, http.StatusServiceUnavailable, CodeNoAPIKeys,
			"No API keys configured. Please set at least one provider API key.")
		return
	}

	cacheKey := check.CacheKey(input.Brand)
	if s.results != nil {
		if cached, ok := s.results.Get(cacheKey); ok {
			s.writeResult(w, decision, cached, start, true)
			return
		}
	}

	result, err := s.service.Check(r.Context(), check.Request{
		Brand:    input.Brand,
		Category: input.Category,
	})
	if err != nil {
		s.writeCheckError(w, err)
		return
	}

	if s.results != nil {
		s.results.Set(cacheKey, result)
	}

	s.writeResult(w, decision, result, start, false)
}

func (s *Server) writeResult(w http.ResponseWriter, decision ratelimit.Decision, result check.Result, start time.Time, cached bool) {
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
	resetSeconds := int(math.Ceil(decision.ResetIn.Seconds()))
	w.Header().Set("X-RateLimit-Reset", strconv.Itoa(resetSeconds))

	writeJSON(w, http.StatusOK, checkBrandResponse{
		Brand:     result.Brand,
		Category:  result.Category,
		Score:     result.Score,
		Responses: result.Responses,
		Breakdown: result.Breakdown,
		Tips:      result.Tips,
		Meta: responseMeta{
			ResponseTime:  time.Since(start).Milliseconds(),
			ModelsQueried: result.ModelsQueried,
			Timestamp:     time.Now().UTC(),
			Cached:        cached,
		},
	})
}

func (s *Server) writeCheckError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, check.ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, CodeTimeout,
			"Request timed out. Please try again.")
	case errors.Is(err, check.ErrAllProvidersFailed):
		writeError(w, http.StatusBadGateway, CodeAllProvidersFailed,
			"All AI models failed to respond. Please try again later.")
	case errors.Is(err, check.ErrNoProviders):
		writeError(w, http.StatusServiceUnavailable, CodeNoAPIKeys,
			"No API keys configured. Please set at least one provider API key.")
	default:
		writeError(w, http.StatusInternalServerError, CodeInternalError,
			"An unexpected error occurred")
	}
}

type healthResponse struct {
	Status       string            `json:"status"` // ok or degraded
	Providers    map[string]string `json:"providers"`
	Checked      []string          `json:"checked"`
	Timestamp    time.Time         `json:"timestamp"`
	Uptime       float64           `json:"uptime"`       // seconds since start
	ResponseTime int64             `json:"responseTime"` // milliseconds
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed,
			"Method not allowed")
		return
	}

	start := time.Now()

	providers := make(map[string]string, len(s.providerStatus))
	checked := make([]string, 0, len(s.providerStatus))
	for name, configured := range s.providerStatus {
		status := "not_configured"
		if configured {
			status = "configured"
		}
		providers[name] = status
		checked = append(checked, name)
	}
	sort.Strings(checked)

	resp := healthResponse{
		Status:    "ok",
		Providers: providers,
		Checked:   checked,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(s.startedAt).Seconds(),
	}

	status := http.StatusOK
	if !s.anyConfigured {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	resp.ResponseTime = time.Since(start).Milliseconds()
	writeJSON(w, status, resp)
}
