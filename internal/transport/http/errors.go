package http

import (
	"errors"
	"net/http"

	"lead-assessment-service/internal/domain"
)

type errorPayload struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

var errorCodes = []struct {
	err    error
	code   string
	status int
}{
	{domain.ErrSessionNotFound, "session_not_found", http.StatusNotFound},
	{domain.ErrQuestionnaireNotFound, "questionnaire_not_found", http.StatusNotFound},
	{domain.ErrQuestionNotFound, "question_not_found", http.StatusNotFound},
	{domain.ErrInvalidOption, "invalid_option", http.StatusUnprocessableEntity},
	{domain.ErrInvalidIdentity, "invalid_identity", http.StatusUnprocessableEntity},
	{domain.ErrQuestionNotCurrent, "question_not_current", http.StatusConflict},
	{domain.ErrNotAnswered, "not_answered", http.StatusConflict},
	{domain.ErrNoPreviousQuestion, "no_previous_question", http.StatusConflict},
	{domain.ErrAlreadySubmitted, "already_submitted", http.StatusConflict},
	{domain.ErrIncomplete, "incomplete", http.StatusConflict},
	{domain.ErrInvalidSnapshot, "session_stale", http.StatusGone},
	{domain.ErrEmptyQuestionSet, "empty_questionnaire", http.StatusInternalServerError},
	{domain.ErrSubmissionFailed, "submission_failed", http.StatusBadGateway},
}

// classify maps a service error to a client-facing code and HTTP status.
func classify(err error) (errorPayload, int) {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			msg := err.Error()
			if ec.err == domain.ErrSubmissionFailed {
				// do not leak backend details; the visitor only needs to know to retry
				msg = "we could not send your results, please try again"
			}
			return errorPayload{Message: msg, Code: ec.code}, ec.status
		}
	}
	return errorPayload{Message: "internal error", Code: "internal"}, http.StatusInternalServerError
}
