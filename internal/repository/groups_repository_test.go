package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/leetsquad/internal/error_values"
	"github.com/limbo/leetsquad/internal/repository"
	"github.com/limbo/leetsquad/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ownerID = uuid.New()
)

func newTestGroup() entity.Group {
	return entity.Group{
		Name:        "grind squad",
		Description: "two a day",
		InviteCode:  "A1B2C3D4",
		Members: []entity.GroupMember{
			{UserID: ownerID, Role: entity.RoleOwner},
		},
		Settings: entity.GroupSettings{
			IsPublic:        false,
			MaxMembers:      50,
			AllowInvites:    true,
			ReminderEnabled: true,
		},
	}
}

func TestCreateGroup(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewGroupsRepoWithConn(mock)
	insertGroup := regexp.QuoteMeta(`INSERT INTO groups (name, description, invite_code, is_public, max_members, allow_invites, reminder_enabled, total_members) VALUES ($1, $2, $3, $4, $5, $6, $7, 1) RETURNING id, created_at, updated_at;`)
	insertOwner := regexp.QuoteMeta(`INSERT INTO group_members (group_id, user_id, role, is_active) VALUES ($1, $2, $3, true) RETURNING joined_at;`)
	gid := uuid.New()
	ctx := context.Background()
	t.Run("successfully created", func(t *testing.T) {
		group := newTestGroup()
		now := time.Now()
		mock.ExpectBegin()
		mock.ExpectQuery(insertGroup).
			WithArgs(group.Name, group.Description, group.InviteCode, group.Settings.IsPublic, group.Settings.MaxMembers, group.Settings.AllowInvites, group.Settings.ReminderEnabled).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(gid, now, now))
		mock.ExpectQuery(insertOwner).
			WithArgs(gid, ownerID, entity.RoleOwner).
			WillReturnRows(pgxmock.NewRows([]string{"joined_at"}).AddRow(now))
		mock.ExpectCommit()
		err := repo.Create(ctx, &group)
		assert.NoError(t, err)
		assert.Equal(t, gid, group.ID)
		assert.Equal(t, 1, group.Stats.TotalMembers)
		assert.True(t, group.Members[0].IsActive)
	})
	t.Run("invite code collision", func(t *testing.T) {
		group := newTestGroup()
		mock.ExpectBegin()
		mock.ExpectQuery(insertGroup).
			WithArgs(group.Name, group.Description, group.InviteCode, group.Settings.IsPublic, group.Settings.MaxMembers, group.Settings.AllowInvites, group.Settings.ReminderEnabled).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()
		err := repo.Create(ctx, &group)
		assert.ErrorIs(t, err, errorvalues.ErrInviteCodeTaken)
	})
	t.Run("owner does not exist", func(t *testing.T) {
		group := newTestGroup()
		now := time.Now()
		mock.ExpectBegin()
		mock.ExpectQuery(insertGroup).
			WithArgs(group.Name, group.Description, group.InviteCode, group.Settings.IsPublic, group.Settings.MaxMembers, group.Settings.AllowInvites, group.Settings.ReminderEnabled).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(gid, now, now))
		mock.ExpectQuery(insertOwner).
			WithArgs(gid, ownerID, entity.RoleOwner).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		mock.ExpectRollback()
		err := repo.Create(ctx, &group)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		group := newTestGroup()
		mock.ExpectBegin()
		mock.ExpectQuery(insertGroup).
			WithArgs(group.Name, group.Description, group.InviteCode, group.Settings.IsPublic, group.Settings.MaxMembers, group.Settings.AllowInvites, group.Settings.ReminderEnabled).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		err := repo.Create(ctx, &group)
		assert.Error(t, err)
	})
}

func TestGetGroupByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewGroupsRepoWithConn(mock)
	groupQuery := regexp.QuoteMeta(`SELECT name, description, invite_code, is_public, max_members, allow_invites, reminder_enabled, total_members, last_activity, created_at, updated_at FROM groups WHERE id = $1;`)
	membersQuery := regexp.QuoteMeta(`SELECT user_id, role, joined_at, is_active FROM group_members WHERE group_id = $1 ORDER BY joined_at ASC;`)
	gid := uuid.New()
	memberID := uuid.New()
	now := time.Now()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(groupQuery).
			WithArgs(gid).
			WillReturnRows(pgxmock.NewRows([]string{"name", "description", "invite_code", "is_public", "max_members", "allow_invites", "reminder_enabled", "total_members", "last_activity", "created_at", "updated_at"}).
				AddRow("grind squad", "two a day", "A1B2C3D4", false, 50, true, true, 2, now, now, now))
		mock.ExpectQuery(membersQuery).
			WithArgs(gid).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "role", "joined_at", "is_active"}).
				AddRow(ownerID, entity.RoleOwner, now, true).
				AddRow(memberID, entity.RoleMember, now, true))
		group, err := repo.GetByID(ctx, gid)
		assert.NoError(t, err)
		assert.Equal(t, gid, group.ID)
		assert.Equal(t, 2, group.Stats.TotalMembers)
		require.Len(t, group.Members, 2)
		assert.Equal(t, ownerID, group.Members[0].UserID)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(groupQuery).
			WithArgs(gid).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, gid)
		assert.ErrorIs(t, err, errorvalues.ErrGroupNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(groupQuery).
			WithArgs(gid).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, gid)
		assert.Error(t, err)
	})
}

func TestGetIDByInviteCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewGroupsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id FROM groups WHERE invite_code = $1;`)
	gid := uuid.New()
	code := "A1B2C3D4"
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(code).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(gid))
			},
		},
		{
			Desc:  "unknown code",
			Error: errorvalues.ErrInviteCodeUnknown,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(code).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("resolving invite code error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(code).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := repo.GetIDByInviteCode(ctx, code)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, gid, id)
			}
		})
	}
}

func TestJoinGroup(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewGroupsRepoWithConn(mock)
	lockQuery := regexp.QuoteMeta(`SELECT max_members FROM groups WHERE id = $1 FOR UPDATE;`)
	memberQuery := regexp.QuoteMeta(`SELECT is_active FROM group_members WHERE group_id = $1 AND user_id = $2;`)
	countQuery := regexp.QuoteMeta(`SELECT COUNT(*) FROM group_members WHERE group_id = $1 AND is_active;`)
	insertQuery := regexp.QuoteMeta(`INSERT INTO group_members (group_id, user_id, role, is_active) VALUES ($1, $2, $3, true);`)
	reactivateQuery := regexp.QuoteMeta(`UPDATE group_members SET is_active = true, joined_at = NOW() WHERE group_id = $1 AND user_id = $2;`)
	recomputeQuery := regexp.QuoteMeta(`UPDATE groups SET total_members = (SELECT COUNT(*) FROM group_members WHERE group_id = $1 AND is_active), updated_at = NOW() WHERE id = $1;`)
	gid := uuid.New()
	uid := uuid.New()
	ctx := context.Background()
	t.Run("new member joins", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(gid).
			WillReturnRows(pgxmock.NewRows([]string{"max_members"}).AddRow(10))
		mock.ExpectQuery(memberQuery).
			WithArgs(gid, uid).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(countQuery).
			WithArgs(gid).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectExec(insertQuery).
			WithArgs(gid, uid, entity.RoleMember).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(recomputeQuery).
			WithArgs(gid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		assert.NoError(t, repo.Join(ctx, gid, uid))
	})
	t.Run("inactive membership is reactivated", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(gid).
			WillReturnRows(pgxmock.NewRows([]string{"max_members"}).AddRow(10))
		mock.ExpectQuery(memberQuery).
			WithArgs(gid, uid).
			WillReturnRows(pgxmock.NewRows([]string{"is_active"}).AddRow(false))
		mock.ExpectExec(reactivateQuery).
			WithArgs(gid, uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(recomputeQuery).
			WithArgs(gid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		assert.NoError(t, repo.Join(ctx, gid, uid))
	})
	t.Run("already an active member", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(gid).
			WillReturnRows(pgxmock.NewRows([]string{"max_members"}).AddRow(10))
		mock.ExpectQuery(memberQuery).
			WithArgs(gid, uid).
			WillReturnRows(pgxmock.NewRows([]string{"is_active"}).AddRow(true))
		mock.ExpectRollback()
		assert.ErrorIs(t, repo.Join(ctx, gid, uid), errorvalues.ErrAlreadyMember)
	})
	t.Run("group at capacity", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(gid).
			WillReturnRows(pgxmock.NewRows([]string{"max_members"}).AddRow(5))
		mock.ExpectQuery(memberQuery).
			WithArgs(gid, uid).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(countQuery).
			WithArgs(gid).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))
		mock.ExpectRollback()
		assert.ErrorIs(t, repo.Join(ctx, gid, uid), errorvalues.ErrGroupFull)
	})
	t.Run("group not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(gid).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()
		assert.ErrorIs(t, repo.Join(ctx, gid, uid), errorvalues.ErrGroupNotFound)
	})
}

func TestDeactivateMember(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewGroupsRepoWithConn(mock)
	deactivateQuery := regexp.QuoteMeta(`UPDATE group_members SET is_active = false WHERE group_id = $1 AND user_id = $2;`)
	recomputeQuery := regexp.QuoteMeta(`UPDATE groups SET total_members = (SELECT COUNT(*) FROM group_members WHERE group_id = $1 AND is_active), updated_at = NOW() WHERE id = $1;`)
	gid := uuid.New()
	uid := uuid.New()
	ctx := context.Background()
	t.Run("successful", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(deactivateQuery).
			WithArgs(gid, uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(recomputeQuery).
			WithArgs(gid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		assert.NoError(t, repo.DeactivateMember(ctx, gid, uid))
	})
	t.Run("not a member", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(deactivateQuery).
			WithArgs(gid, uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()
		assert.ErrorIs(t, repo.DeactivateMember(ctx, gid, uid), errorvalues.ErrNotGroupMember)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(deactivateQuery).
			WithArgs(gid, uid).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		assert.Error(t, repo.DeactivateMember(ctx, gid, uid))
	})
}

func TestGetMember(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewGroupsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT role, joined_at, is_active FROM group_members WHERE group_id = $1 AND user_id = $2;`)
	gid := uuid.New()
	uid := uuid.New()
	joinedAt := time.Now()
	ctx := context.Background()
	t.Run("successful", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(gid, uid).
			WillReturnRows(pgxmock.NewRows([]string{"role", "joined_at", "is_active"}).AddRow(entity.RoleAdmin, joinedAt, true))
		m, err := repo.GetMember(ctx, gid, uid)
		assert.NoError(t, err)
		assert.Equal(t, uid, m.UserID)
		assert.Equal(t, entity.RoleAdmin, m.Role)
		assert.True(t, m.IsActive)
	})
	t.Run("not a member", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(gid, uid).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetMember(ctx, gid, uid)
		assert.ErrorIs(t, err, errorvalues.ErrNotGroupMember)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(gid, uid).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetMember(ctx, gid, uid)
		assert.Error(t, err)
	})
}

func TestTouchActivity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewGroupsRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE groups SET last_activity = NOW() WHERE id = $1;`)
	gid := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(gid).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			Desc:  "group not found",
			Error: errorvalues.ErrGroupNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(gid).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("touching group activity error: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(gid).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.TouchActivity(ctx, gid)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
