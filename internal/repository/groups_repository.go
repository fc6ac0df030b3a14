package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/leetsquad/internal/error_values"
	"github.com/limbo/leetsquad/pkg/cleanup"
	"github.com/limbo/leetsquad/pkg/entity"
)

type GroupsRepository struct {
	conn PgConnection
}

func NewGroupsRepo(cfg DBConfig) *GroupsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for groupsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for groupsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing groups pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GroupsRepository{
		conn: pool,
	}
}

func NewGroupsRepoWithConn(conn PgConnection) *GroupsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for groupsRepo: " + err.Error())
	}
	return &GroupsRepository{
		conn: conn,
	}
}

func (gr *GroupsRepository) Create(ctx context.Context, group *entity.Group) error {
	tx, err := gr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting create group tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	row := tx.QueryRow(ctx, `INSERT INTO groups (name, description, invite_code, is_public, max_members, allow_invites, reminder_enabled, total_members) VALUES ($1, $2, $3, $4, $5, $6, $7, 1) RETURNING id, created_at, updated_at;`,
		group.Name,
		group.Description,
		group.InviteCode,
		group.Settings.IsPublic,
		group.Settings.MaxMembers,
		group.Settings.AllowInvites,
		group.Settings.ReminderEnabled,
	)
	if err := row.Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errorvalues.ErrInviteCodeTaken
		}
		return errors.New("creating group db error: " + err.Error())
	}
	if len(group.Members) != 1 || group.Members[0].Role != entity.RoleOwner {
		return errors.New("creating group error: group must start with exactly one owner member")
	}
	owner := &group.Members[0]
	err = tx.QueryRow(ctx, `INSERT INTO group_members (group_id, user_id, role, is_active) VALUES ($1, $2, $3, true) RETURNING joined_at;`,
		group.ID, owner.UserID, owner.Role,
	).Scan(&owner.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating owner member db error: " + err.Error())
	}
	owner.IsActive = true
	group.Stats.TotalMembers = 1
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing create group tx error: " + err.Error())
	}
	return nil
}

func (gr *GroupsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var group entity.Group
	group.ID = id
	row := gr.conn.QueryRow(ctx, `SELECT name, description, invite_code, is_public, max_members, allow_invites, reminder_enabled, total_members, last_activity, created_at, updated_at FROM groups WHERE id = $1;`, id)
	err := row.Scan(
		&group.Name, &group.Description, &group.InviteCode,
		&group.Settings.IsPublic, &group.Settings.MaxMembers, &group.Settings.AllowInvites, &group.Settings.ReminderEnabled,
		&group.Stats.TotalMembers, &group.Stats.LastActivity,
		&group.CreatedAt, &group.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGroupNotFound
		}
		return nil, errors.New("getting group by id error: " + err.Error())
	}
	members, err := gr.membersOf(ctx, id)
	if err != nil {
		return nil, err
	}
	group.Members = members
	return &group, nil
}

func (gr *GroupsRepository) membersOf(ctx context.Context, groupID uuid.UUID) ([]entity.GroupMember, error) {
	members := make([]entity.GroupMember, 0)
	rows, err := gr.conn.Query(ctx, `SELECT user_id, role, joined_at, is_active FROM group_members WHERE group_id = $1 ORDER BY joined_at ASC;`, groupID)
	if err != nil {
		return nil, errors.New("getting group members error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var m entity.GroupMember
		if err := rows.Scan(&m.UserID, &m.Role, &m.JoinedAt, &m.IsActive); err != nil {
			return nil, errors.New("unmarshalling group member error: " + err.Error())
		}
		members = append(members, m)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning members: " + rows.Err().Error())
	}
	return members, nil
}

func (gr *GroupsRepository) GetIDByInviteCode(ctx context.Context, code string) (uuid.UUID, error) {
	var id uuid.UUID
	row := gr.conn.QueryRow(ctx, `SELECT id FROM groups WHERE invite_code = $1;`, code)
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.UUID{}, errorvalues.ErrInviteCodeUnknown
		}
		return uuid.UUID{}, errors.New("resolving invite code error: " + err.Error())
	}
	return id, nil
}

func (gr *GroupsRepository) GetByMember(ctx context.Context, uid uuid.UUID) ([]*entity.Group, error) {
	groups := make([]*entity.Group, 0)
	rows, err := gr.conn.Query(ctx, `SELECT g.id, g.name, g.description, g.invite_code, g.is_public, g.max_members, g.allow_invites, g.reminder_enabled, g.total_members, g.last_activity, g.created_at, g.updated_at FROM groups g JOIN group_members gm ON gm.group_id = g.id WHERE gm.user_id = $1 AND gm.is_active ORDER BY g.updated_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting groups by member error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		g := entity.Group{}
		err = rows.Scan(
			&g.ID, &g.Name, &g.Description, &g.InviteCode,
			&g.Settings.IsPublic, &g.Settings.MaxMembers, &g.Settings.AllowInvites, &g.Settings.ReminderEnabled,
			&g.Stats.TotalMembers, &g.Stats.LastActivity,
			&g.CreatedAt, &g.UpdatedAt,
		)
		if err != nil {
			return nil, errors.New("unmarshalling group error: " + err.Error())
		}
		groups = append(groups, &g)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning groups: " + rows.Err().Error())
	}
	for _, g := range groups {
		members, err := gr.membersOf(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		g.Members = members
	}
	return groups, nil
}

func (gr *GroupsRepository) GetMember(ctx context.Context, groupID, uid uuid.UUID) (*entity.GroupMember, error) {
	m := entity.GroupMember{UserID: uid}
	row := gr.conn.QueryRow(ctx, `SELECT role, joined_at, is_active FROM group_members WHERE group_id = $1 AND user_id = $2;`, groupID, uid)
	if err := row.Scan(&m.Role, &m.JoinedAt, &m.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNotGroupMember
		}
		return nil, errors.New("getting group member error: " + err.Error())
	}
	return &m, nil
}

// Join locks the group row before the capacity check so a concurrent join
// cannot observe a stale active-member count.
func (gr *GroupsRepository) Join(ctx context.Context, groupID, uid uuid.UUID) error {
	tx, err := gr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting join tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var maxMembers int
	err = tx.QueryRow(ctx, `SELECT max_members FROM groups WHERE id = $1 FOR UPDATE;`, groupID).Scan(&maxMembers)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrGroupNotFound
		}
		return errors.New("locking group row error: " + err.Error())
	}

	var isActive bool
	err = tx.QueryRow(ctx, `SELECT is_active FROM group_members WHERE group_id = $1 AND user_id = $2;`, groupID, uid).Scan(&isActive)
	switch {
	case err == nil && isActive:
		return errorvalues.ErrAlreadyMember
	case err == nil:
		// Inactive row retained from an earlier leave: reactivate with a fresh join time
		_, err = tx.Exec(ctx, `UPDATE group_members SET is_active = true, joined_at = NOW() WHERE group_id = $1 AND user_id = $2;`, groupID, uid)
		if err != nil {
			return errors.New("reactivating member error: " + err.Error())
		}
	case errors.Is(err, pgx.ErrNoRows):
		var active int
		err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM group_members WHERE group_id = $1 AND is_active;`, groupID).Scan(&active)
		if err != nil {
			return errors.New("counting active members error: " + err.Error())
		}
		if active >= maxMembers {
			return errorvalues.ErrGroupFull
		}
		_, err = tx.Exec(ctx, `INSERT INTO group_members (group_id, user_id, role, is_active) VALUES ($1, $2, $3, true);`, groupID, uid, entity.RoleMember)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return errorvalues.ErrUserNotFound
			}
			return errors.New("inserting member error: " + err.Error())
		}
	default:
		return errors.New("checking membership error: " + err.Error())
	}

	_, err = tx.Exec(ctx, `UPDATE groups SET total_members = (SELECT COUNT(*) FROM group_members WHERE group_id = $1 AND is_active), updated_at = NOW() WHERE id = $1;`, groupID)
	if err != nil {
		return errors.New("recomputing total members error: " + err.Error())
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing join tx error: " + err.Error())
	}
	return nil
}

func (gr *GroupsRepository) DeactivateMember(ctx context.Context, groupID, uid uuid.UUID) error {
	tx, err := gr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting leave tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	ct, err := tx.Exec(ctx, `UPDATE group_members SET is_active = false WHERE group_id = $1 AND user_id = $2;`, groupID, uid)
	if err != nil {
		return errors.New("deactivating member error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotGroupMember
	}
	_, err = tx.Exec(ctx, `UPDATE groups SET total_members = (SELECT COUNT(*) FROM group_members WHERE group_id = $1 AND is_active), updated_at = NOW() WHERE id = $1;`, groupID)
	if err != nil {
		return errors.New("recomputing total members error: " + err.Error())
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing leave tx error: " + err.Error())
	}
	return nil
}

func (gr *GroupsRepository) TouchActivity(ctx context.Context, groupID uuid.UUID) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE groups SET last_activity = NOW() WHERE id = $1;`, groupID)
	if err != nil {
		return errors.New("touching group activity error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGroupNotFound
	}
	return nil
}
