package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/leetsquad/internal/error_values"
	"github.com/limbo/leetsquad/internal/repository"
	"github.com/limbo/leetsquad/pkg/entity"
)

const (
	reminderSnippetSize = 10
	sendTimeout         = time.Second * 15
	timeOfDayLayout     = "15:04"
)

type RemindersService struct {
	groupsRepo repository.GroupsRepositoryI
	statsRepo  repository.StatsRepositoryI
	usersRepo  repository.UsersRepositoryI
	ledger     repository.ReminderLedgerI
	mailer     MailerI
}

func NewRemindersService(
	groupsRepo repository.GroupsRepositoryI,
	statsRepo repository.StatsRepositoryI,
	usersRepo repository.UsersRepositoryI,
	ledger repository.ReminderLedgerI,
	mailer MailerI,
) *RemindersService {
	if groupsRepo == nil || statsRepo == nil || usersRepo == nil || ledger == nil || mailer == nil {
		log.Fatal("on reminders service provided nil dependencies")
	}
	return &RemindersService{
		groupsRepo: groupsRepo,
		statsRepo:  statsRepo,
		usersRepo:  usersRepo,
		ledger:     ledger,
		mailer:     mailer,
	}
}

func (rs *RemindersService) NotifyInactiveMembers(ctx context.Context, callerID, groupID uuid.UUID) (*DispatchReport, error) {
	caller, err := activeMember(ctx, rs.groupsRepo, groupID, callerID)
	if err != nil {
		return nil, err
	}
	if err := requireRole(caller, entity.RoleOwner, entity.RoleAdmin); err != nil {
		return nil, err
	}
	group, err := rs.groupsRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return nil, err
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}

	today := Today()
	topStats, err := rs.statsRepo.GetByGroupAndDate(ctx, groupID, today, reminderSnippetSize)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	reported, err := rs.statsRepo.GetReportedUserIDs(ctx, groupID, today)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	reportedSet := make(map[uuid.UUID]struct{}, len(reported))
	for _, uid := range reported {
		reportedSet[uid] = struct{}{}
	}

	// Targets are active members with no stat row today, whatever its count.
	// A zero-count row still means the member reported
	targets := make([]uuid.UUID, 0, len(group.Members))
	for _, m := range group.Members {
		if !m.IsActive {
			continue
		}
		if _, ok := reportedSet[m.UserID]; ok {
			continue
		}
		targets = append(targets, m.UserID)
	}

	lookup := append(append([]uuid.UUID{}, targets...), statUserIDs(topStats)...)
	users, err := rs.usersRepo.FindByIDs(ctx, lookup)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	byID := userMap(users)

	email := &ReminderEmail{
		GroupName:    group.Name,
		Ranking:      buildDayRanking(topStats, byID, reminderSnippetSize),
		TotalMembers: group.Stats.TotalMembers,
		ActiveToday:  len(reported),
	}

	report := &DispatchReport{
		GroupName:    group.Name,
		TotalMembers: group.Stats.TotalMembers,
		ActiveToday:  len(reported),
		Results:      make([]DispatchResult, 0, len(targets)),
	}
	for _, uid := range targets {
		user, ok := byID[uid]
		if !ok || !user.Settings.EmailNotifications || user.Email == "" {
			continue
		}
		fresh, err := rs.ledger.MarkNotified(ctx, groupID, uid, today)
		if err != nil {
			// Ledger outage should not silence the whole dispatch; prefer a
			// possible duplicate mail over no mail
			slog.Warn("reminder ledger unavailable", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		} else if !fresh {
			slog.Debug("skipping already reminded member", slog.String("uid", uid.String()))
			continue
		}
		result := DispatchResult{User: user.Name, Email: user.Email}
		if err := rs.send(ctx, user.Email, email); err != nil {
			result.Error = err.Error()
			report.FailCount++
		} else {
			result.Success = true
			report.SuccessCount++
		}
		report.Results = append(report.Results, result)
	}
	return report, nil
}

// send bounds one delivery attempt. A timeout here is a per-recipient
// failure, never a dispatch-loop abort.
func (rs *RemindersService) send(ctx context.Context, to string, email *ReminderEmail) error {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if err := rs.mailer.SendReminder(sendCtx, to, email); err != nil {
		return fmt.Errorf("%w: %s", errorvalues.ErrMailDelivery, err.Error())
	}
	return nil
}

func (rs *RemindersService) UpdatePreferences(ctx context.Context, uid uuid.UUID, req *PreferencesRequest) (*entity.UserSettings, error) {
	user, err := rs.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	settings := user.Settings
	if req.EmailNotifications != nil {
		settings.EmailNotifications = *req.EmailNotifications
	}
	if req.ReminderTime != nil {
		if _, err := time.Parse(timeOfDayLayout, *req.ReminderTime); err != nil {
			return nil, fmt.Errorf("%w: reminder time must be in HH:MM form", errorvalues.ErrValidation)
		}
		settings.ReminderTime = *req.ReminderTime
	}
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, fmt.Errorf("%w: unknown timezone", errorvalues.ErrValidation)
		}
		settings.Timezone = *req.Timezone
	}
	if err := rs.usersRepo.UpdateSettings(ctx, uid, settings); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return &settings, nil
}
