package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"lead-assessment-service/internal/app"
	"lead-assessment-service/internal/domain"
)

// RESTHandler exposes the assessment flow as plain JSON endpoints for form-based front ends.
type RESTHandler struct {
	service *app.AssessmentService
	logger  *zap.Logger
}

func NewRESTHandler(service *app.AssessmentService, logger *zap.Logger) *RESTHandler {
	return &RESTHandler{service: service, logger: logger}
}

type createRequest struct {
	QuestionnaireID string `json:"questionnaireId"`
}

type answerRequest struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"value"`
}

func (h *RESTHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.badRequest(w, "invalid request body")
			return
		}
	}
	view, err := h.service.Start(r.Context(), req.QuestionnaireID)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *RESTHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.View(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *RESTHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid answer payload")
		return
	}
	view, err := h.service.Select(r.Context(), mux.Vars(r)["id"], req.QuestionID, req.Value)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *RESTHandler) Advance(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Advance(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *RESTHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Retreat(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *RESTHandler) Result(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Result(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *RESTHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var identity domain.Identity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		h.badRequest(w, "invalid identity payload")
		return
	}
	result, err := h.service.Submit(r.Context(), mux.Vars(r)["id"], identity)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *RESTHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Abandon(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RESTHandler) badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorPayload{Message: msg, Code: "bad_request"})
}

func (h *RESTHandler) fail(w http.ResponseWriter, err error) {
	payload, status := classify(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err), zap.Int("status", status))
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
