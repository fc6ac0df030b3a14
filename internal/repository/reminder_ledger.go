package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/leetsquad/pkg/cleanup"
	"github.com/redis/go-redis/v9"
)

// Keys outlive the day they guard so a dispatch shortly before midnight does
// not unlock a second send right after it.
var ledgerTTL = time.Hour * 48

// ReminderLedger keeps a per-day record of who was already reminded, so
// repeated dispatch invocations within the same day skip the recipient.
type ReminderLedger struct {
	rdb redis.Cmdable
}

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

func NewReminderLedger(cfg *RedisCfg) *ReminderLedger {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("error while pinging redis for reminderLedger: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &ReminderLedger{
		rdb: client,
	}
}

func NewReminderLedgerWithClient(rdb redis.Cmdable) *ReminderLedger {
	return &ReminderLedger{
		rdb: rdb,
	}
}

func (rl *ReminderLedger) MarkNotified(ctx context.Context, groupID, uid uuid.UUID, date string) (bool, error) {
	key := fmt.Sprintf("reminder:%s:%s:%s", groupID, uid, date)
	ok, err := rl.rdb.SetNX(ctx, key, 1, ledgerTTL).Result()
	if err != nil {
		return false, errors.New("marking reminder in ledger error: " + err.Error())
	}
	return ok, nil
}
