package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nthusa/voting/internal/core/domain"
	"github.com/nthusa/voting/internal/core/ports"
)

type ResultHandler struct {
	service ports.ResultService
}

func NewResultHandler(service ports.ResultService) *ResultHandler {
	return &ResultHandler{
		service: service,
	}
}

// GetActivityResults godoc
// @Summary      Returns aggregated tallies for an activity
// @Tags         results
// @Produce      json
// @Param        id  path  string  true  "activity id"
// @Success      200
// @Failure      403
// @Failure      404
// @Router       /api/activities/{id}/results [get]
func (h *ResultHandler) GetActivityResults(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	results, err := h.service.ActivityResults(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidActivityID):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, results)
}
