package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/leetsquad/internal/error_values"
	"github.com/limbo/leetsquad/internal/repository/mocks"
	"github.com/limbo/leetsquad/internal/service"
	"github.com/limbo/leetsquad/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func newGroupsService(ctrl *gomock.Controller) (*service.GroupsService, *mocks.MockGroupsRepositoryI, *mocks.MockStatsRepositoryI, *mocks.MockUsersRepositoryI) {
	groupsRepo := mocks.NewMockGroupsRepositoryI(ctrl)
	statsRepo := mocks.NewMockStatsRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	return service.NewGroupsService(groupsRepo, statsRepo, usersRepo), groupsRepo, statsRepo, usersRepo
}

func TestCreateGroupService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, groupsRepo, _, _ := newGroupsService(ctrl)
	ownerID := uuid.New()
	gid := uuid.New()
	ctx := context.Background()
	t.Run("success with defaults", func(t *testing.T) {
		groupsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, g *entity.Group) error {
				assert.Len(t, g.InviteCode, 8)
				g.ID = gid
				return nil
			})
		group, err := serv.CreateGroup(ctx, ownerID, &service.CreateGroupRequest{Name: "  grind squad  "})
		require.NoError(t, err)
		assert.Equal(t, gid, group.ID)
		assert.Equal(t, "grind squad", group.Name)
		assert.Equal(t, 50, group.Settings.MaxMembers)
		assert.True(t, group.Settings.AllowInvites)
		assert.True(t, group.Settings.ReminderEnabled)
		require.Len(t, group.Members, 1)
		assert.Equal(t, ownerID, group.Members[0].UserID)
		assert.Equal(t, entity.RoleOwner, group.Members[0].Role)
	})
	t.Run("retries on invite code collision", func(t *testing.T) {
		var first, second string
		groupsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, g *entity.Group) error {
				first = g.InviteCode
				return errorvalues.ErrInviteCodeTaken
			})
		groupsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, g *entity.Group) error {
				second = g.InviteCode
				g.ID = gid
				return nil
			})
		_, err := serv.CreateGroup(ctx, ownerID, &service.CreateGroupRequest{Name: "grind squad"})
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
	t.Run("empty name rejected", func(t *testing.T) {
		_, err := serv.CreateGroup(ctx, ownerID, &service.CreateGroupRequest{Name: ""})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("max members below minimum rejected", func(t *testing.T) {
		_, err := serv.CreateGroup(ctx, ownerID, &service.CreateGroupRequest{Name: "solo", MaxMembers: 1})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("owner does not exist", func(t *testing.T) {
		groupsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserNotFound)
		_, err := serv.CreateGroup(ctx, ownerID, &service.CreateGroupRequest{Name: "grind squad"})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestJoinGroupService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, groupsRepo, _, _ := newGroupsService(ctrl)
	uid := uuid.New()
	gid := uuid.New()
	ctx := context.Background()
	t.Run("code is normalized before lookup", func(t *testing.T) {
		groupsRepo.EXPECT().GetIDByInviteCode(gomock.Any(), "A1B2C3D4").Return(gid, nil)
		groupsRepo.EXPECT().Join(gomock.Any(), gid, uid).Return(nil)
		groupsRepo.EXPECT().GetByID(gomock.Any(), gid).Return(&entity.Group{ID: gid, Name: "grind squad"}, nil)
		group, err := serv.JoinGroup(ctx, uid, "  a1b2c3d4  ")
		require.NoError(t, err)
		assert.Equal(t, gid, group.ID)
	})
	t.Run("malformed code rejected", func(t *testing.T) {
		_, err := serv.JoinGroup(ctx, uid, "a!")
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("unknown code", func(t *testing.T) {
		groupsRepo.EXPECT().GetIDByInviteCode(gomock.Any(), "A1B2C3D4").Return(uuid.UUID{}, errorvalues.ErrInviteCodeUnknown)
		_, err := serv.JoinGroup(ctx, uid, "A1B2C3D4")
		assert.ErrorIs(t, err, errorvalues.ErrInviteCodeUnknown)
	})
	t.Run("already a member", func(t *testing.T) {
		groupsRepo.EXPECT().GetIDByInviteCode(gomock.Any(), "A1B2C3D4").Return(gid, nil)
		groupsRepo.EXPECT().Join(gomock.Any(), gid, uid).Return(errorvalues.ErrAlreadyMember)
		_, err := serv.JoinGroup(ctx, uid, "A1B2C3D4")
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyMember)
	})
	t.Run("group at capacity", func(t *testing.T) {
		groupsRepo.EXPECT().GetIDByInviteCode(gomock.Any(), "A1B2C3D4").Return(gid, nil)
		groupsRepo.EXPECT().Join(gomock.Any(), gid, uid).Return(errorvalues.ErrGroupFull)
		_, err := serv.JoinGroup(ctx, uid, "A1B2C3D4")
		assert.ErrorIs(t, err, errorvalues.ErrGroupFull)
	})
}

func TestPreviewInviteService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, groupsRepo, _, _ := newGroupsService(ctrl)
	uid := uuid.New()
	gid := uuid.New()
	ctx := context.Background()
	group := &entity.Group{
		ID:          gid,
		Name:        "grind squad",
		Description: "one a day",
		Settings:    entity.GroupSettings{MaxMembers: 50},
		Stats:       entity.GroupStats{TotalMembers: 3},
		Members: []entity.GroupMember{
			{UserID: uid, Role: entity.RoleMember, IsActive: true},
		},
	}
	t.Run("anonymous caller gets the preview", func(t *testing.T) {
		groupsRepo.EXPECT().GetIDByInviteCode(gomock.Any(), "A1B2C3D4").Return(gid, nil)
		groupsRepo.EXPECT().GetByID(gomock.Any(), gid).Return(group, nil)
		preview, err := serv.PreviewInvite(ctx, uuid.Nil, " a1b2c3d4 ")
		require.NoError(t, err)
		assert.Equal(t, gid, preview.GroupID)
		assert.Equal(t, "grind squad", preview.Name)
		assert.Equal(t, 3, preview.MemberCount)
		assert.Equal(t, 50, preview.MaxMembers)
		assert.False(t, preview.AlreadyMember)
	})
	t.Run("active member is recognized", func(t *testing.T) {
		groupsRepo.EXPECT().GetIDByInviteCode(gomock.Any(), "A1B2C3D4").Return(gid, nil)
		groupsRepo.EXPECT().GetByID(gomock.Any(), gid).Return(group, nil)
		preview, err := serv.PreviewInvite(ctx, uid, "A1B2C3D4")
		require.NoError(t, err)
		assert.True(t, preview.AlreadyMember)
	})
	t.Run("malformed code rejected", func(t *testing.T) {
		_, err := serv.PreviewInvite(ctx, uuid.Nil, "a!")
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("unknown code", func(t *testing.T) {
		groupsRepo.EXPECT().GetIDByInviteCode(gomock.Any(), "A1B2C3D4").Return(uuid.UUID{}, errorvalues.ErrInviteCodeUnknown)
		_, err := serv.PreviewInvite(ctx, uuid.Nil, "A1B2C3D4")
		assert.ErrorIs(t, err, errorvalues.ErrInviteCodeUnknown)
	})
}

func TestLeaveGroupService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, groupsRepo, _, _ := newGroupsService(ctrl)
	uid := uuid.New()
	gid := uuid.New()
	ctx := context.Background()
	t.Run("member leaves", func(t *testing.T) {
		groupsRepo.EXPECT().GetMember(gomock.Any(), gid, uid).Return(&entity.GroupMember{UserID: uid, Role: entity.RoleMember, IsActive: true}, nil)
		groupsRepo.EXPECT().DeactivateMember(gomock.Any(), gid, uid).Return(nil)
		assert.NoError(t, serv.LeaveGroup(ctx, uid, gid))
	})
	t.Run("owner cannot leave", func(t *testing.T) {
		groupsRepo.EXPECT().GetMember(gomock.Any(), gid, uid).Return(&entity.GroupMember{UserID: uid, Role: entity.RoleOwner, IsActive: true}, nil)
		assert.ErrorIs(t, serv.LeaveGroup(ctx, uid, gid), errorvalues.ErrOwnerCannotLeave)
	})
	t.Run("outsider sees not found", func(t *testing.T) {
		groupsRepo.EXPECT().GetMember(gomock.Any(), gid, uid).Return(nil, errorvalues.ErrNotGroupMember)
		assert.ErrorIs(t, serv.LeaveGroup(ctx, uid, gid), errorvalues.ErrGroupNotFound)
	})
}

func TestGetGroupDetailService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, groupsRepo, statsRepo, usersRepo := newGroupsService(ctrl)
	uid := uuid.New()
	gid := uuid.New()
	other := uuid.New()
	today := service.Today()
	weekStart, err := service.WeekStartOf(today)
	require.NoError(t, err)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		group := &entity.Group{
			ID:   gid,
			Name: "grind squad",
			Members: []entity.GroupMember{
				{UserID: uid, Role: entity.RoleOwner, JoinedAt: time.Now(), IsActive: true},
				{UserID: other, Role: entity.RoleMember, JoinedAt: time.Now(), IsActive: false},
			},
			Stats: entity.GroupStats{TotalMembers: 1},
		}
		todayStats := []*entity.DailyStat{
			{UserID: uid, GroupID: gid, Date: today, SolvedCount: 2},
		}
		groupsRepo.EXPECT().GetMember(gomock.Any(), gid, uid).Return(&entity.GroupMember{UserID: uid, Role: entity.RoleOwner, IsActive: true}, nil)
		groupsRepo.EXPECT().GetByID(gomock.Any(), gid).Return(group, nil)
		statsRepo.EXPECT().GetByGroupAndDate(gomock.Any(), gid, today, 20).Return(todayStats, nil)
		statsRepo.EXPECT().GetByGroupAndDateRange(gomock.Any(), gid, weekStart, today).Return(todayStats, nil)
		usersRepo.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return([]*entity.User{
			{ID: uid, Name: "alice"},
		}, nil)
		detail, err := serv.GetGroupDetail(ctx, uid, gid)
		require.NoError(t, err)
		// Inactive members are not part of the view
		require.Len(t, detail.Members, 1)
		assert.Equal(t, "alice", detail.Members[0].Name)
		require.Len(t, detail.TodayRanking, 1)
		assert.Equal(t, 2, detail.TodayRanking[0].SolvedCount)
		require.Len(t, detail.WeekRanking, 1)
		assert.Equal(t, 2, detail.WeekRanking[0].TotalSolved)
	})
	t.Run("inactive membership sees not found", func(t *testing.T) {
		groupsRepo.EXPECT().GetMember(gomock.Any(), gid, uid).Return(&entity.GroupMember{UserID: uid, Role: entity.RoleMember, IsActive: false}, nil)
		_, err := serv.GetGroupDetail(ctx, uid, gid)
		assert.ErrorIs(t, err, errorvalues.ErrGroupNotFound)
	})
}
