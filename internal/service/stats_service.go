package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"math"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/leetsquad/internal/error_values"
	"github.com/limbo/leetsquad/internal/repository"
	"github.com/limbo/leetsquad/pkg/entity"
)

const defaultHistoryDays = 30

type StatsService struct {
	groupsRepo repository.GroupsRepositoryI
	statsRepo  repository.StatsRepositoryI
	usersRepo  repository.UsersRepositoryI
}

func NewStatsService(groupsRepo repository.GroupsRepositoryI, statsRepo repository.StatsRepositoryI, usersRepo repository.UsersRepositoryI) *StatsService {
	if groupsRepo == nil || statsRepo == nil || usersRepo == nil {
		log.Fatal("on stats service provided nil repos")
	}
	return &StatsService{
		groupsRepo: groupsRepo,
		statsRepo:  statsRepo,
		usersRepo:  usersRepo,
	}
}

func (ss *StatsService) ReportDaily(ctx context.Context, uid uuid.UUID, req *ReportDailyRequest) (*entity.DailyStat, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrValidation, err.Error())
	}
	if req.SolvedCount < 0 {
		return nil, errorvalues.ErrNegativeSolvedCount
	}
	today := Today()
	date := req.Date
	if date == "" {
		date = today
	} else {
		if _, err := ParseDate(date); err != nil {
			return nil, err
		}
		// Lexicographic comparison is exact on canonical YYYY-MM-DD
		if date > today {
			return nil, errorvalues.ErrDateInFuture
		}
	}
	if _, err := activeMember(ctx, ss.groupsRepo, req.GroupID, uid); err != nil {
		return nil, err
	}
	source := req.DataSource
	if source == "" {
		source = entity.SourceRecentSubmissions
	}
	questions := req.SolvedQuestions
	if questions == nil {
		questions = []entity.SolvedQuestion{}
	}
	stat := &entity.DailyStat{
		UserID:          uid,
		GroupID:         req.GroupID,
		Date:            date,
		SolvedCount:     req.SolvedCount,
		SolvedQuestions: questions,
		DataSource:      source,
	}
	if err := ss.statsRepo.Upsert(ctx, stat); err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return nil, err
		}
		return nil, errors.New("stats repository error: " + err.Error())
	}
	// The snapshot is already stored; a failed activity bump is not worth
	// failing the report over
	if err := ss.groupsRepo.TouchActivity(ctx, req.GroupID); err != nil {
		slog.Warn("bumping group activity failed", slog.String("group_id", req.GroupID.String()), slog.String("error", err.Error()))
	}
	return stat, nil
}

func (ss *StatsService) RankDay(ctx context.Context, uid, groupID uuid.UUID, date string, limit int) (*DayRanking, error) {
	if _, err := activeMember(ctx, ss.groupsRepo, groupID, uid); err != nil {
		return nil, err
	}
	if date == "" {
		date = Today()
	} else if _, err := ParseDate(date); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = rankingLimit
	}
	group, err := ss.groupsRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return nil, err
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	stats, err := ss.statsRepo.GetByGroupAndDate(ctx, groupID, date, limit)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	users, err := ss.lookupStatUsers(ctx, stats)
	if err != nil {
		return nil, err
	}
	return &DayRanking{
		Date:         date,
		Ranking:      buildDayRanking(stats, users, limit),
		TotalMembers: group.Stats.TotalMembers,
	}, nil
}

func (ss *StatsService) RankWeek(ctx context.Context, uid, groupID uuid.UUID, limit int) (*WindowRanking, error) {
	today := Today()
	weekStart, err := WeekStartOf(today)
	if err != nil {
		return nil, err
	}
	return ss.RankWindow(ctx, uid, groupID, weekStart, today, limit)
}

func (ss *StatsService) RankWindow(ctx context.Context, uid, groupID uuid.UUID, from, to string, limit int) (*WindowRanking, error) {
	if _, err := ParseDate(from); err != nil {
		return nil, err
	}
	if _, err := ParseDate(to); err != nil {
		return nil, err
	}
	if from > to {
		return nil, errorvalues.ErrBadDateRange
	}
	if _, err := activeMember(ctx, ss.groupsRepo, groupID, uid); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = rankingLimit
	}
	group, err := ss.groupsRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return nil, err
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	stats, err := ss.statsRepo.GetByGroupAndDateRange(ctx, groupID, from, to)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	users, err := ss.lookupStatUsers(ctx, stats)
	if err != nil {
		return nil, err
	}
	return &WindowRanking{
		From:         from,
		To:           to,
		Ranking:      buildWindowRanking(stats, users, limit),
		TotalMembers: group.Stats.TotalMembers,
	}, nil
}

func (ss *StatsService) UserHistory(ctx context.Context, uid, groupID uuid.UUID, days int) (*UserHistory, error) {
	if _, err := activeMember(ctx, ss.groupsRepo, groupID, uid); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = defaultHistoryDays
	}
	to := Today()
	from, err := DaysBefore(to, days)
	if err != nil {
		return nil, err
	}
	stats, err := ss.statsRepo.GetByUserAndDateRange(ctx, uid, groupID, from, to)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	history := make([]HistoryDay, 0, len(stats))
	totalSolved := 0
	for _, s := range stats {
		history = append(history, HistoryDay{
			Date:            s.Date,
			SolvedCount:     s.SolvedCount,
			SolvedQuestions: s.SolvedQuestions,
			DataSource:      s.DataSource,
		})
		totalSolved += s.SolvedCount
	}
	return &UserHistory{
		History:     history,
		TotalDays:   len(history),
		TotalSolved: totalSolved,
	}, nil
}

func (ss *StatsService) Overview(ctx context.Context, uid, groupID uuid.UUID) (*GroupOverview, error) {
	if _, err := activeMember(ctx, ss.groupsRepo, groupID, uid); err != nil {
		return nil, err
	}
	group, err := ss.groupsRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return nil, err
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	today := Today()
	weekStart, err := WeekStartOf(today)
	if err != nil {
		return nil, err
	}
	todayStats, err := ss.statsRepo.GetByGroupAndDateRange(ctx, groupID, today, today)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	weekStats, err := ss.statsRepo.GetByGroupAndDateRange(ctx, groupID, weekStart, today)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	return &GroupOverview{
		GroupID:      group.ID,
		GroupName:    group.Name,
		TotalMembers: group.Stats.TotalMembers,
		Today:        summarize(todayStats),
		Week:         summarize(weekStats),
	}, nil
}

func (ss *StatsService) lookupStatUsers(ctx context.Context, stats []*entity.DailyStat) (map[uuid.UUID]*entity.User, error) {
	users, err := ss.usersRepo.FindByIDs(ctx, statUserIDs(stats))
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	return userMap(users), nil
}

func summarize(stats []*entity.DailyStat) PeriodOverview {
	total := 0
	active := make(map[uuid.UUID]struct{})
	for _, s := range stats {
		total += s.SolvedCount
		active[s.UserID] = struct{}{}
	}
	avg := 0.0
	if len(active) > 0 {
		avg = math.Round(float64(total)/float64(len(active))*10) / 10
	}
	return PeriodOverview{
		TotalSolved:    total,
		ActiveUsers:    len(active),
		AveragePerUser: avg,
	}
}
