// @title LeetSquad API
// @description Group leaderboards and reminders for daily LeetCode activity
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/leetsquad/internal/api"
	"github.com/limbo/leetsquad/internal/repository"
	"github.com/limbo/leetsquad/internal/service"
	"github.com/limbo/leetsquad/pkg/cleanup"
	"github.com/limbo/leetsquad/pkg/config"
	jwtservice "github.com/limbo/leetsquad/pkg/jwt_service"
	"github.com/limbo/leetsquad/pkg/logging"
	"github.com/limbo/leetsquad/pkg/mailer"
)

func init() {
	service.InitValidator()
}

func main() {
	logging.Setup()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	groupsRepo := repository.NewGroupsRepo(&dbCfg)
	statsRepo := repository.NewStatsRepo(&dbCfg)
	usersRepo := repository.NewUsersRepo(&dbCfg)
	ledger := repository.NewReminderLedger(&repository.RedisCfg{
		Address:  cfg.GetString("REDIS_ADDRESS"),
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       cfg.GetInt("REDIS_DB", 0),
	})
	reminderMailer := mailer.New(&mailer.SMTPCfg{
		Host:     cfg.GetString("SMTP_HOST"),
		Port:     cfg.GetInt("SMTP_PORT", 587),
		Username: cfg.GetString("SMTP_USERNAME"),
		Password: cfg.GetString("SMTP_PASSWORD"),
		From:     cfg.GetString("SMTP_FROM"),
	})

	serv := api.New(&api.ServicesList{
		GroupsService:    service.NewGroupsService(groupsRepo, statsRepo, usersRepo),
		StatsService:     service.NewStatsService(groupsRepo, statsRepo, usersRepo),
		RemindersService: service.NewRemindersService(groupsRepo, statsRepo, usersRepo, ledger, reminderMailer),
		Users:            usersRepo,
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
