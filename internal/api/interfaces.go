package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/leetsquad/pkg/entity"
	jwtservice "github.com/limbo/leetsquad/pkg/jwt_service"
)

type JwtServiceI interface {
	ParseToken(tokenString string) (*jwtservice.Claims, error)
}

// UserLookupI lets the auth middleware confirm the token's subject still
// exists. The users repository satisfies it directly.
type UserLookupI interface {
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}
