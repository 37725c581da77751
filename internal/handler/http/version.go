package http

import (
	"net/http"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/app"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/config"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/utils"
	"github.com/ZaidAmirMahdi10/goal-tracker/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	msg := app.MsgWelcomeGoalService
	if h.role == config.RoleUserService {
		msg = app.MsgWelcomeUserService
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(msg))
}

// healthz reports 503 when the store cannot be pinged.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		writeError(w, app.MsgServiceUnavailable, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "ok"}, http.StatusOK)
}
