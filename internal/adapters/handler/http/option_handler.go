package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nthusa/voting/internal/core/domain"
	"github.com/nthusa/voting/internal/core/ports"
)

type OptionHandler struct {
	service ports.OptionService
}

func NewOptionHandler(service ports.OptionService) *OptionHandler {
	return &OptionHandler{
		service: service,
	}
}

type createOptionRequest struct {
	ActivityID string             `json:"activity_id"`
	Label      string             `json:"label"`
	Candidate  domain.Candidate   `json:"candidate"`
	Vice       []domain.Candidate `json:"vice"`
}

type updateOptionRequest struct {
	Label     string             `json:"label"`
	Candidate domain.Candidate   `json:"candidate"`
	Vice      []domain.Candidate `json:"vice"`
}

func (h *OptionHandler) CreateOption(w http.ResponseWriter, r *http.Request) {
	var req createOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	option, err := h.service.Create(r.Context(), ports.CreateOptionInput{
		ActivityID: req.ActivityID,
		Label:      req.Label,
		Candidate:  req.Candidate,
		Vice:       req.Vice,
	})
	if err != nil {
		writeOptionError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, option)
}

func (h *OptionHandler) ListOptionsForActivity(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "id")

	options, err := h.service.ListForActivity(r.Context(), activityID)
	if err != nil {
		writeOptionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, options)
}

func (h *OptionHandler) UpdateOption(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	option, err := h.service.Update(r.Context(), id, ports.UpdateOptionInput{
		Label:     req.Label,
		Candidate: req.Candidate,
		Vice:      req.Vice,
	})
	if err != nil {
		writeOptionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, option)
}

func (h *OptionHandler) DeleteOption(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeOptionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}

func writeOptionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidActivityID),
		errors.Is(err, domain.ErrInvalidOptionID),
		errors.Is(err, domain.ErrMissingField):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrActivityNotFound), errors.Is(err, domain.ErrOptionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
