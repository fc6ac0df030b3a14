package entity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type DataSource string

const (
	SourceRecentSubmissions DataSource = "recent_submissions"
	SourceCalendar          DataSource = "calendar"
	SourceManual            DataSource = "manual"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type User struct {
	ID               uuid.UUID    `json:"id"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	AvatarURL        string       `json:"avatar,omitempty"`
	LeetcodeUsername string       `json:"leetcode_username,omitempty"`
	Settings         UserSettings `json:"settings"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

type UserSettings struct {
	EmailNotifications bool   `json:"email_notifications"`
	ReminderTime       string `json:"reminder_time"`
	Timezone           string `json:"timezone"`
}

type GroupMember struct {
	UserID   uuid.UUID `json:"uid"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
	IsActive bool      `json:"is_active"`
}

type GroupSettings struct {
	IsPublic        bool `json:"is_public"`
	MaxMembers      int  `json:"max_members"`
	AllowInvites    bool `json:"allow_invites"`
	ReminderEnabled bool `json:"reminder_enabled"`
}

type GroupStats struct {
	TotalMembers int       `json:"total_members"`
	LastActivity time.Time `json:"last_activity"`
}

type Group struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"desc"`
	InviteCode  string        `json:"invite_code"`
	Members     []GroupMember `json:"members"`
	Settings    GroupSettings `json:"settings"`
	Stats       GroupStats    `json:"stats"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ActiveMemberCount recomputes what Stats.TotalMembers stores. Repositories
// maintain the stored counter in SQL; this is for in-memory snapshots.
func (g *Group) ActiveMemberCount() int {
	n := 0
	for _, m := range g.Members {
		if m.IsActive {
			n++
		}
	}
	return n
}

func (g *Group) FindMember(uid uuid.UUID) *GroupMember {
	for i := range g.Members {
		if g.Members[i].UserID == uid {
			return &g.Members[i]
		}
	}
	return nil
}

type SolvedQuestion struct {
	QuestionID string     `json:"question_id"`
	Title      string     `json:"title"`
	TitleSlug  string     `json:"title_slug"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	SolvedAt   time.Time  `json:"solved_at"`
}

// DailyStat is one user's solved-problem snapshot for one calendar day in one
// group. Date is a UTC YYYY-MM-DD string; (UserID, GroupID, Date) is unique.
type DailyStat struct {
	ID              int64            `json:"-"`
	UserID          uuid.UUID        `json:"uid"`
	GroupID         uuid.UUID        `json:"group_id"`
	Date            string           `json:"date"`
	SolvedCount     int              `json:"solved_count"`
	SolvedQuestions []SolvedQuestion `json:"solved_questions"`
	DataSource      DataSource       `json:"data_source"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type RankedUser struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	AvatarURL        string    `json:"avatar,omitempty"`
	LeetcodeUsername string    `json:"leetcode_username,omitempty"`
}

type DayRankingEntry struct {
	Rank            int              `json:"rank"`
	User            RankedUser       `json:"user"`
	SolvedCount     int              `json:"solved_count"`
	SolvedQuestions []SolvedQuestion `json:"solved_questions"`
	DataSource      DataSource       `json:"data_source"`
}

type DayCount struct {
	Date        string `json:"date"`
	SolvedCount int    `json:"solved_count"`
}

type WindowRankingEntry struct {
	Rank        int        `json:"rank"`
	User        RankedUser `json:"user"`
	TotalSolved int        `json:"total_solved"`
	ActiveDays  int        `json:"active_days"`
	DailyStats  []DayCount `json:"daily_stats"`
}
