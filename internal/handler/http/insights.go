package http

import (
	"encoding/json"
	"net/http"

	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
	insightsService "github.com/workpulse/workpulse-backend-go/internal/service/insights"
)

type InsightsHandler interface {
	DetectAnomalies(w http.ResponseWriter, r *http.Request)
	SuggestSchedule(w http.ResponseWriter, r *http.Request)
	Chat(w http.ResponseWriter, r *http.Request)
}

type insightsHandlerImpl struct {
	insightsService insightsService.InsightsService
}

func NewInsightsHandler(svc insightsService.InsightsService) InsightsHandler {
	return &insightsHandlerImpl{insightsService: svc}
}

// DetectAnomalies implements InsightsHandler.
func (h *insightsHandlerImpl) DetectAnomalies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := h.insightsService.DetectAnomalies(r.Context(), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SuggestSchedule implements InsightsHandler.
func (h *insightsHandlerImpl) SuggestSchedule(w http.ResponseWriter, r *http.Request) {
	result, err := h.insightsService.SuggestSchedule(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Chat implements InsightsHandler.
func (h *insightsHandlerImpl) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.Question == "" {
		response.BadRequest(w, "Question is required", nil)
		return
	}

	response.Success(w, h.insightsService.Chat(req.Question))
}
