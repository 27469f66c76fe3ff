package repository

import (
	"context"

	"walkingtube/domain/model"
)

type IUser interface {
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByUserName(ctx context.Context, userName string) (model.User, error)
	CreateUser(ctx context.Context, user model.User) error
}
