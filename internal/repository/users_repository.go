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

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing users pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (name, email, avatar, leetcode_username, email_notifications, reminder_time, timezone) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at;`,
		user.Name,
		user.Email,
		user.AvatarURL,
		user.LeetcodeUsername,
		user.Settings.EmailNotifications,
		user.Settings.ReminderTime,
		user.Settings.Timezone,
	)
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errorvalues.ErrUserExists
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	user.ID = uid
	row := ur.conn.QueryRow(ctx, `SELECT name, email, avatar, leetcode_username, email_notifications, reminder_time, timezone, created_at, updated_at FROM users WHERE id = $1;`, uid)
	err := row.Scan(
		&user.Name, &user.Email, &user.AvatarURL, &user.LeetcodeUsername,
		&user.Settings.EmailNotifications, &user.Settings.ReminderTime, &user.Settings.Timezone,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("getting user by id error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByIDs(ctx context.Context, uids []uuid.UUID) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(uids))
	if len(uids) == 0 {
		return users, nil
	}
	rows, err := ur.conn.Query(ctx, `SELECT id, name, email, avatar, leetcode_username, email_notifications, reminder_time, timezone, created_at, updated_at FROM users WHERE id = ANY($1);`, uids)
	if err != nil {
		return nil, errors.New("getting users by ids error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		u := entity.User{}
		err = rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.AvatarURL, &u.LeetcodeUsername,
			&u.Settings.EmailNotifications, &u.Settings.ReminderTime, &u.Settings.Timezone,
			&u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, errors.New("unmarshalling user error: " + err.Error())
		}
		users = append(users, &u)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning users: " + rows.Err().Error())
	}
	return users, nil
}

func (ur *UsersRepository) UpdateSettings(ctx context.Context, uid uuid.UUID, settings entity.UserSettings) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET email_notifications = $1, reminder_time = $2, timezone = $3, updated_at = NOW() WHERE id = $4;`,
		settings.EmailNotifications, settings.ReminderTime, settings.Timezone, uid,
	)
	if err != nil {
		return errors.New("updating user settings error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
