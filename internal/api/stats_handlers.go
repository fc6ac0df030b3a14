package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/leetsquad/internal/error_values"
	"github.com/limbo/leetsquad/internal/service"
	"github.com/limbo/leetsquad/pkg/entity"
	"github.com/limbo/leetsquad/pkg/httputil"
)

type ReportDailyRequest struct {
	GroupID         uuid.UUID               `json:"group_id"`
	Date            string                  `json:"date,omitempty"`
	SolvedCount     int                     `json:"solved_count"`
	SolvedQuestions []entity.SolvedQuestion `json:"solved_questions"`
	DataSource      entity.DataSource       `json:"data_source"`
}

func intQuery(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func (s *Server) ReportDaily(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("report daily error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ReportDailyRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("report daily error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	stat, err := s.statsService.ReportDaily(ctx, uid, &service.ReportDailyRequest{
		GroupID:         req.GroupID,
		Date:            req.Date,
		SolvedCount:     req.SolvedCount,
		SolvedQuestions: req.SolvedQuestions,
		DataSource:      req.DataSource,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation),
			errors.Is(err, errorvalues.ErrNegativeSolvedCount),
			errors.Is(err, errorvalues.ErrBadDateFormat),
			errors.Is(err, errorvalues.ErrDateInFuture):
			logger.Error("report daily error: invalid payload")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid report payload", err)
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("report daily error: not a member")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group doesn't exist or you are not in it", nil)
		default:
			logger.Error("report daily error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while reporting", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"date":         stat.Date,
		"solved_count": stat.SolvedCount,
		"data_source":  stat.DataSource,
	})
	logger.Info("daily stat reported", slog.String("date", stat.Date), slog.Int("solved_count", stat.SolvedCount))
}

func (s *Server) DayRanking(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("day ranking error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	groupID, err := groupIDParam(r)
	if err != nil {
		logger.Error("day ranking error: invalid group id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	ranking, err := s.statsService.RankDay(ctx, uid, groupID, r.URL.Query().Get("date"), intQuery(r, "limit", 0))
	if err != nil {
		s.writeRankingError(w, logger, "day ranking", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ranking)
}

func (s *Server) WeekRanking(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("week ranking error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	groupID, err := groupIDParam(r)
	if err != nil {
		logger.Error("week ranking error: invalid group id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	ranking, err := s.statsService.RankWeek(ctx, uid, groupID, intQuery(r, "limit", 0))
	if err != nil {
		s.writeRankingError(w, logger, "week ranking", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ranking)
}

func (s *Server) UserHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("user history error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	groupID, err := groupIDParam(r)
	if err != nil {
		logger.Error("user history error: invalid group id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	history, err := s.statsService.UserHistory(ctx, uid, groupID, intQuery(r, "days", 0))
	if err != nil {
		s.writeRankingError(w, logger, "user history", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, history)
}

func (s *Server) Overview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("overview error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	groupID, err := groupIDParam(r)
	if err != nil {
		logger.Error("overview error: invalid group id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	overview, err := s.statsService.Overview(ctx, uid, groupID)
	if err != nil {
		s.writeRankingError(w, logger, "overview", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"overview": overview})
}

// Group-scoped reads share one error surface: membership failures mask as
// not found so group existence never leaks.
func (s *Server) writeRankingError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrGroupNotFound):
		logger.Error(op + " error: not a member")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "group doesn't exist or you are not in it", nil)
	case errors.Is(err, errorvalues.ErrBadDateFormat), errors.Is(err, errorvalues.ErrBadDateRange):
		logger.Error(op + " error: invalid date params")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date parameters", err)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building "+op, nil)
	}
}
