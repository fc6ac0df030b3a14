package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/leetsquad/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by uid. Used by authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Batch lookup used to populate ranking entries and reminder targets
	FindByIDs(ctx context.Context, uids []uuid.UUID) ([]*entity.User, error)
	// Overwrites notification preferences for the user
	UpdateSettings(ctx context.Context, uid uuid.UUID, settings entity.UserSettings) error
}

type GroupsRepositoryI interface {
	// Inserts group together with its owner member row. Group must carry a
	// generated invite code; a code collision returns ErrInviteCodeTaken
	Create(ctx context.Context, group *entity.Group) error
	// Loads group with its full member roster
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	// Resolves an invite code to a group id
	GetIDByInviteCode(ctx context.Context, code string) (uuid.UUID, error)
	// Lists groups where uid is an active member, most recently updated first
	GetByMember(ctx context.Context, uid uuid.UUID) ([]*entity.Group, error)
	// Membership row for (groupID, uid) regardless of active flag
	GetMember(ctx context.Context, groupID, uid uuid.UUID) (*entity.GroupMember, error)
	// Adds uid to the group or reactivates an inactive row. The capacity check
	// and the append run in one transaction with the group row locked, so
	// concurrent joins cannot push the group past max_members
	Join(ctx context.Context, groupID, uid uuid.UUID) error
	// Marks the membership row inactive and recomputes total_members
	DeactivateMember(ctx context.Context, groupID, uid uuid.UUID) error
	// Bumps stats.last_activity on the group
	TouchActivity(ctx context.Context, groupID uuid.UUID) error
}

type StatsRepositoryI interface {
	// Single-statement insert-or-replace keyed by (user, group, date).
	// Fills ID/CreatedAt/UpdatedAt on the passed stat
	Upsert(ctx context.Context, stat *entity.DailyStat) error
	// Rows for one group and day, ordered solved_count DESC then user_id ASC
	GetByGroupAndDate(ctx context.Context, groupID uuid.UUID, date string, limit int) ([]*entity.DailyStat, error)
	// Rows with date in [from, to] inclusive, for window aggregation
	GetByGroupAndDateRange(ctx context.Context, groupID uuid.UUID, from, to string) ([]*entity.DailyStat, error)
	// One user's rows in a group over [from, to], newest day first
	GetByUserAndDateRange(ctx context.Context, uid, groupID uuid.UUID, from, to string) ([]*entity.DailyStat, error)
	// Users that already have a row for the day, whatever the count
	GetReportedUserIDs(ctx context.Context, groupID uuid.UUID, date string) ([]uuid.UUID, error)
}

type ReminderLedgerI interface {
	// Records that uid was reminded for the given group and day. Returns false
	// when a reminder was already recorded, so repeat dispatches skip the user
	MarkNotified(ctx context.Context, groupID, uid uuid.UUID, date string) (bool, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
