package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/irongym/backend/internal/app/apperr"
)

// errorBody is the JSON envelope for non-validation failures.
type errorBody struct {
	Error string `json:"error"`
}

// validationBody maps each offending field to its message.
type validationBody struct {
	Errors map[string]string `json:"errors"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.WithError(err).Warn("write response failed")
	}
}

// writeError translates service errors to HTTP statuses: validation failures
// are 400 with a field map, missing records 404, business conflicts 409, and
// anything else a logged 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *apperr.ValidationError
	if errors.As(err, &vErr) {
		s.writeJSON(w, http.StatusBadRequest, validationBody{Errors: vErr.Fields})
		return
	}
	var nfErr *apperr.NotFoundError
	if errors.As(err, &nfErr) {
		s.writeJSON(w, http.StatusNotFound, errorBody{Error: nfErr.Error()})
		return
	}
	var cErr *apperr.ConflictError
	if errors.As(err, &cErr) {
		s.writeJSON(w, http.StatusConflict, errorBody{Error: cErr.Error()})
		return
	}
	s.log.WithError(err).
		WithField("method", r.Method).
		WithField("path", r.URL.Path).
		Error("request failed")
	s.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}

func decodeBody(r *http.Request, into any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		return apperr.Invalid("body", fmt.Sprintf("malformed JSON body: %v", err))
	}
	return nil
}
