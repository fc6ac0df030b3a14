package service

import (
	"sort"

	"github.com/google/uuid"
	"github.com/limbo/leetsquad/pkg/entity"
)

// Tie-break everywhere is ascending user id, so equal scores still produce a
// reproducible order. Ranks are consecutive 1-based positions; ties do not
// share a rank.

func buildDayRanking(stats []*entity.DailyStat, users map[uuid.UUID]*entity.User, limit int) []entity.DayRankingEntry {
	sorted := make([]*entity.DailyStat, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].SolvedCount != sorted[j].SolvedCount {
			return sorted[i].SolvedCount > sorted[j].SolvedCount
		}
		return sorted[i].UserID.String() < sorted[j].UserID.String()
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	ranking := make([]entity.DayRankingEntry, 0, len(sorted))
	for i, s := range sorted {
		ranking = append(ranking, entity.DayRankingEntry{
			Rank:            i + 1,
			User:            rankedUser(s.UserID, users),
			SolvedCount:     s.SolvedCount,
			SolvedQuestions: s.SolvedQuestions,
			DataSource:      s.DataSource,
		})
	}
	return ranking
}

func buildWindowRanking(stats []*entity.DailyStat, users map[uuid.UUID]*entity.User, limit int) []entity.WindowRankingEntry {
	type userAgg struct {
		uid         uuid.UUID
		totalSolved int
		daily       []entity.DayCount
	}
	byUser := make(map[uuid.UUID]*userAgg)
	order := make([]uuid.UUID, 0)
	for _, s := range stats {
		agg, ok := byUser[s.UserID]
		if !ok {
			agg = &userAgg{uid: s.UserID}
			byUser[s.UserID] = agg
			order = append(order, s.UserID)
		}
		agg.totalSolved += s.SolvedCount
		agg.daily = append(agg.daily, entity.DayCount{Date: s.Date, SolvedCount: s.SolvedCount})
	}
	aggs := make([]*userAgg, 0, len(order))
	for _, uid := range order {
		aggs = append(aggs, byUser[uid])
	}
	sort.SliceStable(aggs, func(i, j int) bool {
		if aggs[i].totalSolved != aggs[j].totalSolved {
			return aggs[i].totalSolved > aggs[j].totalSolved
		}
		return aggs[i].uid.String() < aggs[j].uid.String()
	})
	if limit > 0 && len(aggs) > limit {
		aggs = aggs[:limit]
	}
	ranking := make([]entity.WindowRankingEntry, 0, len(aggs))
	for i, agg := range aggs {
		ranking = append(ranking, entity.WindowRankingEntry{
			Rank:        i + 1,
			User:        rankedUser(agg.uid, users),
			TotalSolved: agg.totalSolved,
			ActiveDays:  len(agg.daily),
			DailyStats:  agg.daily,
		})
	}
	return ranking
}

func rankedUser(uid uuid.UUID, users map[uuid.UUID]*entity.User) entity.RankedUser {
	if u, ok := users[uid]; ok {
		return entity.RankedUser{
			ID:               u.ID,
			Name:             u.Name,
			AvatarURL:        u.AvatarURL,
			LeetcodeUsername: u.LeetcodeUsername,
		}
	}
	return entity.RankedUser{ID: uid}
}

func statUserIDs(stats []*entity.DailyStat) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(stats))
	uids := make([]uuid.UUID, 0, len(stats))
	for _, s := range stats {
		if _, ok := seen[s.UserID]; ok {
			continue
		}
		seen[s.UserID] = struct{}{}
		uids = append(uids, s.UserID)
	}
	return uids
}

func userMap(users []*entity.User) map[uuid.UUID]*entity.User {
	m := make(map[uuid.UUID]*entity.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return m
}
