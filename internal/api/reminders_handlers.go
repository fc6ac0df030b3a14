package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/leetsquad/internal/error_values"
	"github.com/limbo/leetsquad/internal/service"
	"github.com/limbo/leetsquad/pkg/httputil"
)

type PreferencesRequest struct {
	EmailNotifications *bool   `json:"email_notifications,omitempty"`
	ReminderTime       *string `json:"reminder_time,omitempty"`
	Timezone           *string `json:"timezone,omitempty"`
}

func (s *Server) NotifyGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("notify group error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	groupID, err := groupIDParam(r)
	if err != nil {
		logger.Error("notify group error: invalid group id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id", nil)
		return
	}
	// Dispatch runs one blocking send per recipient; give it more room than
	// a plain read
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout*6)
	defer cancel()
	report, err := s.remindersService.NotifyInactiveMembers(ctx, uid, groupID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("notify group error: not a member")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group doesn't exist or you are not in it", nil)
		case errors.Is(err, errorvalues.ErrNotGroupAdmin):
			logger.Error("notify group error: insufficient role")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "only the owner or an admin can send reminders", nil)
		default:
			logger.Error("notify group error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while sending reminders", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("reminders dispatched",
		slog.Int("success", report.SuccessCount),
		slog.Int("failed", report.FailCount),
	)
}

func (s *Server) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update preferences error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req PreferencesRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update preferences error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	settings, err := s.remindersService.UpdatePreferences(ctx, uid, &service.PreferencesRequest{
		EmailNotifications: req.EmailNotifications,
		ReminderTime:       req.ReminderTime,
		Timezone:           req.Timezone,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update preferences error: invalid payload")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid preferences payload", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("update preferences error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
		default:
			logger.Error("update preferences error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating preferences", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"preferences": settings})
	logger.Info("preferences updated")
}
