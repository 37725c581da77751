package http

import (
	"net/http"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/app"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/utils"
	"github.com/ZaidAmirMahdi10/goal-tracker/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.Register(ctx, req); err != nil {
		writeServiceError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	log.Info().Str("username", req.Username).Msg("user registered")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgUserRegistered}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, app.MsgLoginFailed)
		return
	}

	log.Debug().Int64("id", session.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Success:  true,
		Token:    session.Token.String(),
		ID:       session.UserID,
		Username: session.Username,
	}, http.StatusOK)
}
