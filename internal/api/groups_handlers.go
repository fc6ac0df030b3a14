package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/leetsquad/internal/error_values"
	"github.com/limbo/leetsquad/internal/service"
	"github.com/limbo/leetsquad/pkg/httputil"
)

const handlerTimeout = time.Second * 10

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"desc"`
	IsPublic    bool   `json:"is_public"`
	MaxMembers  int    `json:"max_members"`
}

type JoinGroupRequest struct {
	InviteCode string `json:"invite_code"`
}

func groupIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "groupID"))
}

func (s *Server) CreateGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create group error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateGroupRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create group error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	group, err := s.groupsService.CreateGroup(ctx, uid, &service.CreateGroupRequest{
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		MaxMembers:  req.MaxMembers,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create group error: invalid payload")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "group name is required", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create group error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create group: user doesn't exists", nil)
		default:
			logger.Error("create group error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating group", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"group_id":    group.ID.String(),
		"invite_code": group.InviteCode,
		"settings":    group.Settings,
	})
	logger.Info("group created", slog.String("group_id", group.ID.String()))
}

func (s *Server) JoinGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("join group error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req JoinGroupRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("join group error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	group, err := s.groupsService.JoinGroup(ctx, uid, req.InviteCode)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("join group error: invalid invite code format")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invite code is required", err)
		case errors.Is(err, errorvalues.ErrInviteCodeUnknown), errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("join group error: unknown invite code")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "invite code is not valid", nil)
		case errors.Is(err, errorvalues.ErrAlreadyMember):
			logger.Error("join group error: already a member")
			httputil.WriteErrorResponse(w, http.StatusConflict, "you are already in this group", nil)
		case errors.Is(err, errorvalues.ErrGroupFull):
			logger.Error("join group error: group full")
			httputil.WriteErrorResponse(w, http.StatusConflict, "group has reached its member limit", nil)
		default:
			logger.Error("join group error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while joining group", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"group_id":       group.ID.String(),
		"name":           group.Name,
		"active_members": group.ActiveMemberCount(),
	})
	logger.Info("joined group", slog.String("group_id", group.ID.String()))
}

// PreviewInvite serves anonymous callers too: uid stays uuid.Nil when the
// optional auth middleware found no valid token.
func (s *Server) PreviewInvite(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		uid = uuid.Nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	preview, err := s.groupsService.PreviewInvite(ctx, uid, chi.URLParam(r, "inviteCode"))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("preview invite error: invalid invite code format")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invite code is not valid", err)
		case errors.Is(err, errorvalues.ErrInviteCodeUnknown):
			logger.Error("preview invite error: unknown invite code")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "invite code is not valid", nil)
		default:
			logger.Error("preview invite error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resolving invite", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"group": preview})
}

func (s *Server) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("leave group error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	groupID, err := groupIDParam(r)
	if err != nil {
		logger.Error("leave group error: invalid group id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	err = s.groupsService.LeaveGroup(ctx, uid, groupID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("leave group error: not a member")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group doesn't exist or you are not in it", nil)
		case errors.Is(err, errorvalues.ErrOwnerCannotLeave):
			logger.Error("leave group error: owner leaving")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "owner cannot leave the group, transfer ownership first", nil)
		default:
			logger.Error("leave group error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while leaving group", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"left": true})
	logger.Info("left group", slog.String("group_id", groupID.String()))
}

func (s *Server) GetMyGroups(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get my groups error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	groups, err := s.groupsService.GetMyGroups(ctx, uid)
	if err != nil {
		logger.Error("get my groups error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting groups", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"groups": groups})
}

func (s *Server) GetGroupDetail(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get group detail error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	groupID, err := groupIDParam(r)
	if err != nil {
		logger.Error("get group detail error: invalid group id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	detail, err := s.groupsService.GetGroupDetail(ctx, uid, groupID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("get group detail error: not a member")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group doesn't exist or you are not in it", nil)
		default:
			logger.Error("get group detail error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting group", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"group": detail})
}
