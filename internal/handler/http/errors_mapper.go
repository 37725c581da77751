package http

import (
	"errors"
	"net/http"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/app"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/service"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/utils"
	"github.com/ZaidAmirMahdi10/goal-tracker/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:          http.StatusBadRequest,
	service.ErrInvalidDate:         http.StatusBadRequest,
	service.ErrMissingUserID:       http.StatusBadRequest,
	service.ErrDuplicateCredential: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusBadRequest,
	service.ErrNotFound:            http.StatusNotFound,
	service.ErrForbidden:           http.StatusForbidden,
	service.ErrTokenIsInvalid:      http.StatusUnauthorized,
	ErrInvalidGoalID:               http.StatusBadRequest,

	service.ErrInternal: http.StatusInternalServerError,
}

// errorMessageMap holds the client facing message of each mapped error.
// Validation errors carry their own message naming the missing fields.
var errorMessageMap = map[error]string{
	service.ErrInvalidDate:         app.MsgInvalidDate,
	service.ErrMissingUserID:       app.MsgUserIDRequired,
	service.ErrDuplicateCredential: app.MsgDuplicateCredential,
	service.ErrInvalidCredentials:  app.MsgInvalidCredentials,
	service.ErrNotFound:            app.MsgGoalNotFound,
	service.ErrForbidden:           app.MsgForbiddenUpdate,
	ErrInvalidGoalID:               app.MsgInvalidGoalID,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the message written for err. Server errors
// always get fallback so no internal detail reaches the client.
func messageFromError(err error, status int, fallback string) string {
	if status >= http.StatusInternalServerError {
		return fallback
	}

	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	if errors.Is(err, service.ErrValidation) {
		return err.Error()
	}

	return fallback
}

// writeServiceError maps err to a status and a JSON error body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeError(w, messageFromError(err, status, fallback), status)
}

func writeError(w http.ResponseWriter, msg string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, app.MsgNotFound, http.StatusNotFound)
}
