// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/app"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/service"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/utils"
	"github.com/ZaidAmirMahdi10/goal-tracker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createGoal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateGoalRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.GoalService.CreateGoal(r.Context(), req.Input())
	if err != nil {
		writeServiceError(w, r, err, app.MsgCreateGoalFailed)
		return
	}

	log.Info().Int64("goal_id", created.ID).Int64("user_id", created.UserID).Msg("goal created")
	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) setCompletion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := goalID(r)
	if err != nil {
		writeServiceError(w, r, err, app.MsgUpdateGoalFailed)
		return
	}

	var req models.SetCompletionRequest
	if err = utils.ReadJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.GoalService.SetCompletion(r.Context(), id, req.Completed, req.Progress)
	if err != nil {
		writeServiceError(w, r, err, app.MsgUpdateGoalFailed)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) setProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := goalID(r)
	if err != nil {
		writeServiceError(w, r, err, app.MsgUpdateProgressFailed)
		return
	}

	var req models.SetProgressRequest
	if err = utils.ReadJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.GoalService.SetProgress(r.Context(), id, req.Progress)
	if err != nil {
		writeServiceError(w, r, err, app.MsgUpdateProgressFailed)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// listPagedGoals serves GET /pagedgoals?userId=&page=. A missing or
// non-numeric page reads as the first one.
func (h *Handler) listPagedGoals(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("page")))
	if err != nil {
		page = 1
	}

	goalPage, err := h.services.GoalService.ListPaged(r.Context(), queryUserID(r), page)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFetchGoalsFailed)
		return
	}

	utils.WriteJSON(w, goalPage, http.StatusOK)
}

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.services.GoalService.ListAll(r.Context(), queryUserID(r))
	if err != nil {
		writeServiceError(w, r, err, app.MsgFetchGoalsFailed)
		return
	}

	utils.WriteJSON(w, goals, http.StatusOK)
}

func (h *Handler) getGoal(w http.ResponseWriter, r *http.Request) {
	id, err := goalID(r)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFetchGoalFailed)
		return
	}

	goal, err := h.services.GoalService.GetOne(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFetchGoalFailed)
		return
	}

	utils.WriteJSON(w, goal, http.StatusOK)
}

func (h *Handler) replaceGoal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := goalID(r)
	if err != nil {
		writeServiceError(w, r, err, app.MsgUpdateGoalFailed)
		return
	}

	var req models.ReplaceGoalRequest
	if err = utils.ReadJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.GoalService.ReplaceGoal(r.Context(), id, req.Input())
	if err != nil {
		writeServiceError(w, r, err, app.MsgUpdateGoalFailed)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteGoal serves DELETE /goals/{id}. An empty body is read as a missing
// user id, which never owns a goal.
func (h *Handler) deleteGoal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := goalID(r)
	if err != nil {
		writeServiceError(w, r, err, app.MsgDeleteGoalFailed)
		return
	}

	var req models.DeleteGoalRequest
	if err = utils.ReadJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err = h.services.GoalService.DeleteGoal(r.Context(), id, req.UserID.Int64()); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			log.Debug().Err(err).Msg("request rejected")
			writeError(w, app.MsgForbiddenDelete, http.StatusForbidden)
			return
		}
		writeServiceError(w, r, err, app.MsgDeleteGoalFailed)
		return
	}

	log.Info().Int64("goal_id", id).Msg("goal deleted")
	w.WriteHeader(http.StatusNoContent)
}

// goalID parses the {id} path segment.
func goalID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGoalID, raw)
	}

	return id, nil
}

// queryUserID reads the userId query parameter. Missing or malformed values
// yield 0, which the goal service rejects as a missing user id.
func queryUserID(r *http.Request) int64 {
	raw := strings.TrimSpace(r.URL.Query().Get("userId"))
	if raw == "" {
		return 0
	}

	id, err := models.ParseNumericID(raw)
	if err != nil {
		return 0
	}

	return id.Int64()
}
