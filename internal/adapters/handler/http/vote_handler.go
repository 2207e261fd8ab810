package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nthusa/voting/internal/core/domain"
	"github.com/nthusa/voting/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type castVoteRequest struct {
	ActivityID string          `json:"activity_id"`
	Rule       domain.Rule     `json:"rule"`
	ChooseOne  string          `json:"choose_one,omitempty"`
	ChooseAll  []domain.Choice `json:"choose_all,omitempty"`
}

type castVoteResponse struct {
	Token string `json:"token"`
}

// CastVote godoc
// @Summary      Casts an anonymous ballot
// @Description  Validates the ballot, registers the voter exactly once, and returns the vote's retrieval token. The token is the only way to read the ballot back; the server keeps no link between it and the student.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      401
// @Failure      403
// @Failure      404
// @Failure      409
// @Router       /api/votes [post]
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	studentID, ok := r.Context().Value(StudentIDKey).(string)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.CastVoteInput{
		ActivityID: req.ActivityID,
		StudentID:  studentID,
		Rule:       req.Rule,
		ChooseOne:  req.ChooseOne,
		ChooseAll:  req.ChooseAll,
	}

	vote, err := h.service.CastVote(r.Context(), input)
	if err != nil {
		writeVoteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, castVoteResponse{Token: vote.Token})
}

// GetVote godoc
// @Summary      Retrieves a cast ballot by token
// @Tags         votes
// @Produce      json
// @Param        token  path  string  true  "vote token"
// @Success      200
// @Failure      401
// @Failure      404
// @Router       /api/votes/{token} [get]
func (h *VoteHandler) GetVote(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	vote, err := h.service.GetByToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrVoteNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, vote)
}

func writeVoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidActivityID),
		errors.Is(err, domain.ErrInvalidRule),
		errors.Is(err, domain.ErrRuleMismatch),
		errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrInvalidOptions),
		errors.Is(err, domain.ErrInvalidRemark):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrVoteNotStarted), errors.Is(err, domain.ErrVoteEnded):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrAlreadyVoted):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
