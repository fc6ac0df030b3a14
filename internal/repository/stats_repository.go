package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/leetsquad/internal/error_values"
	"github.com/limbo/leetsquad/pkg/cleanup"
	"github.com/limbo/leetsquad/pkg/entity"
)

type StatsRepository struct {
	conn PgConnection
}

func NewStatsRepo(cfg DBConfig) *StatsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for statsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing stats pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StatsRepository{
		conn: pool,
	}
}

func NewStatsRepoWithConn(conn PgConnection) *StatsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	return &StatsRepository{
		conn: conn,
	}
}

// Upsert replaces the whole snapshot for (user, group, date) in one statement.
// Concurrent reporters on the same key race, last write wins, but the unique
// index always leaves exactly one row.
func (sr *StatsRepository) Upsert(ctx context.Context, stat *entity.DailyStat) error {
	questions, err := sonic.Marshal(stat.SolvedQuestions)
	if err != nil {
		return errors.New("marshalling solved questions error: " + err.Error())
	}
	row := sr.conn.QueryRow(ctx, `INSERT INTO daily_stats (user_id, group_id, date, solved_count, solved_questions, data_source) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (user_id, group_id, date) DO UPDATE SET solved_count = EXCLUDED.solved_count, solved_questions = EXCLUDED.solved_questions, data_source = EXCLUDED.data_source, updated_at = NOW() RETURNING id, created_at, updated_at;`,
		stat.UserID, stat.GroupID, stat.Date, stat.SolvedCount, questions, stat.DataSource,
	)
	if err := row.Scan(&stat.ID, &stat.CreatedAt, &stat.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrGroupNotFound
		}
		return errors.New("upserting daily stat error: " + err.Error())
	}
	return nil
}

func (sr *StatsRepository) GetByGroupAndDate(ctx context.Context, groupID uuid.UUID, date string, limit int) ([]*entity.DailyStat, error) {
	rows, err := sr.conn.Query(ctx, `SELECT id, user_id, group_id, date, solved_count, solved_questions, data_source, created_at, updated_at FROM daily_stats WHERE group_id = $1 AND date = $2 ORDER BY solved_count DESC, user_id ASC LIMIT $3;`, groupID, date, limit)
	if err != nil {
		return nil, errors.New("getting stats by group and date error: " + err.Error())
	}
	return scanStats(rows)
}

func (sr *StatsRepository) GetByGroupAndDateRange(ctx context.Context, groupID uuid.UUID, from, to string) ([]*entity.DailyStat, error) {
	rows, err := sr.conn.Query(ctx, `SELECT id, user_id, group_id, date, solved_count, solved_questions, data_source, created_at, updated_at FROM daily_stats WHERE group_id = $1 AND date >= $2 AND date <= $3 ORDER BY date ASC, user_id ASC;`, groupID, from, to)
	if err != nil {
		return nil, errors.New("getting stats by group and range error: " + err.Error())
	}
	return scanStats(rows)
}

func (sr *StatsRepository) GetByUserAndDateRange(ctx context.Context, uid, groupID uuid.UUID, from, to string) ([]*entity.DailyStat, error) {
	rows, err := sr.conn.Query(ctx, `SELECT id, user_id, group_id, date, solved_count, solved_questions, data_source, created_at, updated_at FROM daily_stats WHERE user_id = $1 AND group_id = $2 AND date >= $3 AND date <= $4 ORDER BY date DESC;`, uid, groupID, from, to)
	if err != nil {
		return nil, errors.New("getting stats by user and range error: " + err.Error())
	}
	return scanStats(rows)
}

func (sr *StatsRepository) GetReportedUserIDs(ctx context.Context, groupID uuid.UUID, date string) ([]uuid.UUID, error) {
	uids := make([]uuid.UUID, 0)
	rows, err := sr.conn.Query(ctx, `SELECT user_id FROM daily_stats WHERE group_id = $1 AND date = $2;`, groupID, date)
	if err != nil {
		return nil, errors.New("getting reported user ids error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var uid uuid.UUID
		if err := rows.Scan(&uid); err != nil {
			return nil, errors.New("unmarshalling reported user id error: " + err.Error())
		}
		uids = append(uids, uid)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning reported user ids: " + rows.Err().Error())
	}
	return uids, nil
}

func scanStats(rows pgx.Rows) ([]*entity.DailyStat, error) {
	defer rows.Close()
	stats := make([]*entity.DailyStat, 0)
	for rows.Next() {
		s := entity.DailyStat{}
		var questions []byte
		err := rows.Scan(&s.ID, &s.UserID, &s.GroupID, &s.Date, &s.SolvedCount, &questions, &s.DataSource, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling daily stat error: " + err.Error())
		}
		if len(questions) > 0 {
			if err := sonic.Unmarshal(questions, &s.SolvedQuestions); err != nil {
				return nil, errors.New("unmarshalling solved questions error: " + err.Error())
			}
		}
		stats = append(stats, &s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning daily stats: " + rows.Err().Error())
	}
	return stats, nil
}
