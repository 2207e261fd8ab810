package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nthusa/voting/internal/core/domain"
	"github.com/nthusa/voting/internal/core/ports"
)

type ActivityHandler struct {
	activities ports.ActivityService
	options    ports.OptionService
}

func NewActivityHandler(activities ports.ActivityService, options ports.OptionService) *ActivityHandler {
	return &ActivityHandler{
		activities: activities,
		options:    options,
	}
}

type activityRequest struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Rule        domain.Rule `json:"rule"`
	OpenFrom    time.Time   `json:"open_from"`
	OpenTo      time.Time   `json:"open_to"`
}

// activityResponse augments the entity with derived fields; the voter list
// itself never leaves the server.
type activityResponse struct {
	*domain.Activity
	Status     domain.ActivityStatus `json:"status"`
	VoterCount int                   `json:"voter_count"`
}

type activityWithOptionsResponse struct {
	activityResponse
	OptionDetails []*domain.Option `json:"option_details,omitempty"`
}

func newActivityResponse(activity *domain.Activity) activityResponse {
	return activityResponse{
		Activity:   activity,
		Status:     activity.Status(time.Now()),
		VoterCount: len(activity.Voters),
	}
}

func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activities.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]activityResponse, 0, len(activities))
	for _, activity := range activities {
		resp = append(resp, newActivityResponse(activity))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	activity, err := h.activities.Get(r.Context(), id)
	if err != nil {
		writeActivityError(w, err)
		return
	}

	resp := activityWithOptionsResponse{activityResponse: newActivityResponse(activity)}
	if r.URL.Query().Get("include_options") == "true" {
		options, err := h.options.ListForActivity(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.OptionDetails = options
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateActivity godoc
// @Summary      Creates an election activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      403
// @Router       /api/activities [post]
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	activity, err := h.activities.Create(r.Context(), ports.CreateActivityInput{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Rule:        req.Rule,
		OpenFrom:    req.OpenFrom,
		OpenTo:      req.OpenTo,
	})
	if err != nil {
		writeActivityError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newActivityResponse(activity))
}

func (h *ActivityHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	activity, err := h.activities.Update(r.Context(), id, ports.UpdateActivityInput{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Rule:        req.Rule,
		OpenFrom:    req.OpenFrom,
		OpenTo:      req.OpenTo,
	})
	if err != nil {
		writeActivityError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newActivityResponse(activity))
}

func (h *ActivityHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.activities.Delete(r.Context(), id); err != nil {
		writeActivityError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}

func writeActivityError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidActivityID),
		errors.Is(err, domain.ErrInvalidRule),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrMissingField):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrRuleLocked):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
