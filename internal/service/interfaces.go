package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/leetsquad/pkg/entity"
)

type CreateGroupRequest struct {
	Name        string `validate:"required,min=1,max=100"`
	Description string `validate:"max=500"`
	IsPublic    bool
	MaxMembers  int `validate:"omitempty,min=2,max=500"`
}

type ReportDailyRequest struct {
	GroupID         uuid.UUID `validate:"required"`
	Date            string    // empty means today (UTC)
	SolvedCount     int
	SolvedQuestions []entity.SolvedQuestion
	DataSource      entity.DataSource `validate:"omitempty,oneof=recent_submissions calendar manual"`
}

type PreferencesRequest struct {
	EmailNotifications *bool
	ReminderTime       *string // HH:MM
	Timezone           *string
}

type MemberProfile struct {
	ID               uuid.UUID   `json:"id"`
	Name             string      `json:"name"`
	AvatarURL        string      `json:"avatar,omitempty"`
	LeetcodeUsername string      `json:"leetcode_username,omitempty"`
	Role             entity.Role `json:"role"`
	JoinedAt         time.Time   `json:"joined_at"`
}

type GroupView struct {
	ID           uuid.UUID                `json:"id"`
	Name         string                   `json:"name"`
	Description  string                   `json:"desc"`
	InviteCode   string                   `json:"invite_code"`
	Settings     entity.GroupSettings     `json:"settings"`
	Stats        entity.GroupStats        `json:"stats"`
	Members      []MemberProfile          `json:"members"`
	TodayRanking []entity.DayRankingEntry `json:"today_ranking"`
	CreatedAt    time.Time                `json:"created_at"`
}

type GroupDetail struct {
	GroupView
	WeekRanking []entity.WindowRankingEntry `json:"week_ranking"`
}

// InvitePreview is the public face of a group shown before joining. It
// deliberately omits the roster and the invite code itself.
type InvitePreview struct {
	GroupID       uuid.UUID `json:"group_id"`
	Name          string    `json:"name"`
	Description   string    `json:"desc"`
	MemberCount   int       `json:"member_count"`
	MaxMembers    int       `json:"max_members"`
	AlreadyMember bool      `json:"already_member"`
	CreatedAt     time.Time `json:"created_at"`
}

type DayRanking struct {
	Date         string                   `json:"date"`
	Ranking      []entity.DayRankingEntry `json:"ranking"`
	TotalMembers int                      `json:"total_members"`
}

type WindowRanking struct {
	From         string                      `json:"from"`
	To           string                      `json:"to"`
	Ranking      []entity.WindowRankingEntry `json:"ranking"`
	TotalMembers int                         `json:"total_members"`
}

type HistoryDay struct {
	Date            string                  `json:"date"`
	SolvedCount     int                     `json:"solved_count"`
	SolvedQuestions []entity.SolvedQuestion `json:"solved_questions"`
	DataSource      entity.DataSource       `json:"data_source"`
}

type UserHistory struct {
	History     []HistoryDay `json:"history"`
	TotalDays   int          `json:"total_days"`
	TotalSolved int          `json:"total_solved"`
}

type PeriodOverview struct {
	TotalSolved    int     `json:"total_solved"`
	ActiveUsers    int     `json:"active_users"`
	AveragePerUser float64 `json:"average_per_user"`
}

type GroupOverview struct {
	GroupID      uuid.UUID      `json:"group_id"`
	GroupName    string         `json:"group_name"`
	TotalMembers int            `json:"total_members"`
	Today        PeriodOverview `json:"today"`
	Week         PeriodOverview `json:"week"`
}

type DispatchResult struct {
	User    string `json:"user"`
	Email   string `json:"email"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type DispatchReport struct {
	GroupName    string           `json:"group_name"`
	TotalMembers int              `json:"total_members"`
	ActiveToday  int              `json:"active_today"`
	Results      []DispatchResult `json:"results"`
	SuccessCount int              `json:"success_count"`
	FailCount    int              `json:"fail_count"`
}

// ReminderEmail is the payload handed to the notification sink.
type ReminderEmail struct {
	GroupName    string
	Ranking      []entity.DayRankingEntry
	TotalMembers int
	ActiveToday  int
}

// MailerI is the opaque outbound notification sink.
type MailerI interface {
	SendReminder(ctx context.Context, to string, data *ReminderEmail) error
}

type GroupsServiceI interface {
	// Creates a group with the caller as sole active owner member and a
	// unique 8-char invite code
	CreateGroup(ctx context.Context, ownerID uuid.UUID, req *CreateGroupRequest) (*entity.Group, error)
	// Joins (or reactivates membership in) the group behind the invite code
	JoinGroup(ctx context.Context, uid uuid.UUID, inviteCode string) (*entity.Group, error)
	// Public preview of the group behind an invite code. uuid.Nil means
	// an anonymous caller
	PreviewInvite(ctx context.Context, uid uuid.UUID, inviteCode string) (*InvitePreview, error)
	// Marks the caller's membership inactive. Owners must transfer first
	LeaveGroup(ctx context.Context, uid, groupID uuid.UUID) error
	// Groups the caller is active in, each with today's ranking
	GetMyGroups(ctx context.Context, uid uuid.UUID) ([]*GroupView, error)
	// Full group view with today and week rankings
	GetGroupDetail(ctx context.Context, uid, groupID uuid.UUID) (*GroupDetail, error)
}

type StatsServiceI interface {
	// Insert-or-replace of the caller's snapshot for one day
	ReportDaily(ctx context.Context, uid uuid.UUID, req *ReportDailyRequest) (*entity.DailyStat, error)
	// Leaderboard for a single day (empty date means today)
	RankDay(ctx context.Context, uid, groupID uuid.UUID, date string, limit int) (*DayRanking, error)
	// Leaderboard for the current Sunday-started week
	RankWeek(ctx context.Context, uid, groupID uuid.UUID, limit int) (*WindowRanking, error)
	// Leaderboard aggregated over an inclusive date range
	RankWindow(ctx context.Context, uid, groupID uuid.UUID, from, to string, limit int) (*WindowRanking, error)
	// Caller's own per-day history over the trailing N days
	UserHistory(ctx context.Context, uid, groupID uuid.UUID, days int) (*UserHistory, error)
	// Today/week totals and activity for the group
	Overview(ctx context.Context, uid, groupID uuid.UUID) (*GroupOverview, error)
}

type RemindersServiceI interface {
	// Emails every active, opted-in member without a stat row for today.
	// Owner/admin only. Best effort per recipient
	NotifyInactiveMembers(ctx context.Context, callerID, groupID uuid.UUID) (*DispatchReport, error)
	// Updates the caller's notification preferences
	UpdatePreferences(ctx context.Context, uid uuid.UUID, req *PreferencesRequest) (*entity.UserSettings, error)
}
