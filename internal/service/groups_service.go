package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/leetsquad/internal/error_values"
	"github.com/limbo/leetsquad/internal/repository"
	"github.com/limbo/leetsquad/pkg/entity"
)

const (
	defaultMaxMembers  = 50
	inviteCodeLen      = 8
	inviteCodeAttempts = 5
	rankingLimit       = 20
)

type GroupsService struct {
	groupsRepo repository.GroupsRepositoryI
	statsRepo  repository.StatsRepositoryI
	usersRepo  repository.UsersRepositoryI
}

func NewGroupsService(groupsRepo repository.GroupsRepositoryI, statsRepo repository.StatsRepositoryI, usersRepo repository.UsersRepositoryI) *GroupsService {
	if groupsRepo == nil || statsRepo == nil || usersRepo == nil {
		log.Fatal("on groups service provided nil repos")
	}
	return &GroupsService{
		groupsRepo: groupsRepo,
		statsRepo:  statsRepo,
		usersRepo:  usersRepo,
	}
}

func (gs *GroupsService) CreateGroup(ctx context.Context, ownerID uuid.UUID, req *CreateGroupRequest) (*entity.Group, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrValidation, err.Error())
	}
	maxMembers := req.MaxMembers
	if maxMembers == 0 {
		maxMembers = defaultMaxMembers
	}
	group := &entity.Group{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Settings: entity.GroupSettings{
			IsPublic:        req.IsPublic,
			MaxMembers:      maxMembers,
			AllowInvites:    true,
			ReminderEnabled: true,
		},
		Members: []entity.GroupMember{
			{UserID: ownerID, Role: entity.RoleOwner, IsActive: true},
		},
	}
	for attempt := 0; attempt < inviteCodeAttempts; attempt++ {
		group.InviteCode = newInviteCode()
		err := gs.groupsRepo.Create(ctx, group)
		if err == nil {
			return group, nil
		}
		if errors.Is(err, errorvalues.ErrInviteCodeTaken) {
			continue
		}
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	return nil, errors.New("could not generate a unique invite code")
}

func (gs *GroupsService) JoinGroup(ctx context.Context, uid uuid.UUID, inviteCode string) (*entity.Group, error) {
	code := strings.ToUpper(strings.TrimSpace(inviteCode))
	if err := validate.Var(code, "required,min=4,max=16,upper_alphanum"); err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrValidation, err.Error())
	}
	groupID, err := gs.groupsRepo.GetIDByInviteCode(ctx, code)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInviteCodeUnknown) {
			return nil, err
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	err = gs.groupsRepo.Join(ctx, groupID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlreadyMember),
			errors.Is(err, errorvalues.ErrGroupFull),
			errors.Is(err, errorvalues.ErrGroupNotFound),
			errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	group, err := gs.groupsRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return nil, err
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	return group, nil
}

func (gs *GroupsService) PreviewInvite(ctx context.Context, uid uuid.UUID, inviteCode string) (*InvitePreview, error) {
	code := strings.ToUpper(strings.TrimSpace(inviteCode))
	if err := validate.Var(code, "required,min=4,max=16,upper_alphanum"); err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrValidation, err.Error())
	}
	groupID, err := gs.groupsRepo.GetIDByInviteCode(ctx, code)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInviteCodeUnknown) {
			return nil, err
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	group, err := gs.groupsRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return nil, errorvalues.ErrInviteCodeUnknown
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	preview := &InvitePreview{
		GroupID:     group.ID,
		Name:        group.Name,
		Description: group.Description,
		MemberCount: group.Stats.TotalMembers,
		MaxMembers:  group.Settings.MaxMembers,
		CreatedAt:   group.CreatedAt,
	}
	if uid != uuid.Nil {
		for _, m := range group.Members {
			if m.UserID == uid && m.IsActive {
				preview.AlreadyMember = true
				break
			}
		}
	}
	return preview, nil
}

func (gs *GroupsService) LeaveGroup(ctx context.Context, uid, groupID uuid.UUID) error {
	member, err := gs.groupsRepo.GetMember(ctx, groupID, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotGroupMember) {
			return errorvalues.ErrGroupNotFound
		}
		return errors.New("groups repository error: " + err.Error())
	}
	if member.Role == entity.RoleOwner {
		return errorvalues.ErrOwnerCannotLeave
	}
	err = gs.groupsRepo.DeactivateMember(ctx, groupID, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotGroupMember) {
			return errorvalues.ErrGroupNotFound
		}
		return errors.New("groups repository error: " + err.Error())
	}
	return nil
}

func (gs *GroupsService) GetMyGroups(ctx context.Context, uid uuid.UUID) ([]*GroupView, error) {
	groups, err := gs.groupsRepo.GetByMember(ctx, uid)
	if err != nil {
		return nil, errors.New("groups repository error: " + err.Error())
	}
	today := Today()
	views := make([]*GroupView, 0, len(groups))
	for _, g := range groups {
		todayStats, err := gs.statsRepo.GetByGroupAndDate(ctx, g.ID, today, rankingLimit)
		if err != nil {
			return nil, errors.New("stats repository error: " + err.Error())
		}
		users, err := gs.lookupUsers(ctx, g, todayStats)
		if err != nil {
			return nil, err
		}
		views = append(views, buildGroupView(g, users, buildDayRanking(todayStats, users, rankingLimit)))
	}
	return views, nil
}

func (gs *GroupsService) GetGroupDetail(ctx context.Context, uid, groupID uuid.UUID) (*GroupDetail, error) {
	if _, err := activeMember(ctx, gs.groupsRepo, groupID, uid); err != nil {
		return nil, err
	}
	group, err := gs.groupsRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return nil, err
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	today := Today()
	weekStart, err := WeekStartOf(today)
	if err != nil {
		return nil, err
	}
	todayStats, err := gs.statsRepo.GetByGroupAndDate(ctx, groupID, today, rankingLimit)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	weekStats, err := gs.statsRepo.GetByGroupAndDateRange(ctx, groupID, weekStart, today)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	users, err := gs.lookupUsers(ctx, group, append(append([]*entity.DailyStat{}, todayStats...), weekStats...))
	if err != nil {
		return nil, err
	}
	return &GroupDetail{
		GroupView:   *buildGroupView(group, users, buildDayRanking(todayStats, users, rankingLimit)),
		WeekRanking: buildWindowRanking(weekStats, users, rankingLimit),
	}, nil
}

// lookupUsers resolves profiles for the group roster plus any stat reporters
// that already left the roster.
func (gs *GroupsService) lookupUsers(ctx context.Context, group *entity.Group, stats []*entity.DailyStat) (map[uuid.UUID]*entity.User, error) {
	seen := make(map[uuid.UUID]struct{})
	uids := make([]uuid.UUID, 0, len(group.Members))
	for _, m := range group.Members {
		if _, ok := seen[m.UserID]; !ok {
			seen[m.UserID] = struct{}{}
			uids = append(uids, m.UserID)
		}
	}
	for _, statUID := range statUserIDs(stats) {
		if _, ok := seen[statUID]; !ok {
			seen[statUID] = struct{}{}
			uids = append(uids, statUID)
		}
	}
	users, err := gs.usersRepo.FindByIDs(ctx, uids)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	return userMap(users), nil
}

func buildGroupView(group *entity.Group, users map[uuid.UUID]*entity.User, todayRanking []entity.DayRankingEntry) *GroupView {
	members := make([]MemberProfile, 0, len(group.Members))
	for _, m := range group.Members {
		if !m.IsActive {
			continue
		}
		profile := MemberProfile{
			ID:       m.UserID,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}
		if u, ok := users[m.UserID]; ok {
			profile.Name = u.Name
			profile.AvatarURL = u.AvatarURL
			profile.LeetcodeUsername = u.LeetcodeUsername
		}
		members = append(members, profile)
	}
	return &GroupView{
		ID:           group.ID,
		Name:         group.Name,
		Description:  group.Description,
		InviteCode:   group.InviteCode,
		Settings:     group.Settings,
		Stats:        group.Stats,
		Members:      members,
		TodayRanking: todayRanking,
		CreatedAt:    group.CreatedAt,
	}
}

// newInviteCode derives an 8-char uppercase code from a fresh UUID. The space
// is large enough that collisions are rare; Create retries on the unique
// index anyway.
func newInviteCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return raw[:inviteCodeLen]
}
