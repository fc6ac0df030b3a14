package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/leetsquad/internal/error_values"
	"github.com/limbo/leetsquad/internal/repository"
	"github.com/limbo/leetsquad/pkg/entity"
)

// activeMember is the authorization gate every group-scoped operation runs
// through. Non-members of an existing group get the same not-found as unknown
// groups, so group existence never leaks to outsiders.
func activeMember(ctx context.Context, groupsRepo repository.GroupsRepositoryI, groupID, uid uuid.UUID) (*entity.GroupMember, error) {
	m, err := groupsRepo.GetMember(ctx, groupID, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotGroupMember) {
			return nil, errorvalues.ErrGroupNotFound
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if !m.IsActive {
		return nil, errorvalues.ErrGroupNotFound
	}
	return m, nil
}

func requireRole(m *entity.GroupMember, roles ...entity.Role) error {
	for _, r := range roles {
		if m.Role == r {
			return nil
		}
	}
	return errorvalues.ErrNotGroupAdmin
}
