package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"walkingtube/domain/model"
	"walkingtube/domain/repository"
	"walkingtube/infrastructure/logger"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.IUser { return &UserRepository{db: db} }

func (r *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	row := r.db.QueryRowContext(ctx, `SELECT id, name, user_name, password, created_at, updated_at FROM users WHERE id = $1`, id)
	if err := row.Scan(&u.ID, &u.Name, &u.UserName, &u.Password, &u.CreatedAt, &u.UpdatedAt); err != nil {
		logger.GetLogger().WithField("error", err).Error("query user by id failed")
		return u, err
	}
	return u, nil
}

func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (model.User, error) {
	var u model.User
	row := r.db.QueryRowContext(ctx, `SELECT id, name, user_name, password, created_at, updated_at FROM users WHERE user_name = $1`, userName)
	if err := row.Scan(&u.ID, &u.Name, &u.UserName, &u.Password, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if err != sql.ErrNoRows {
			logger.GetLogger().WithField("error", err).Error("query user by username failed")
		}
		return u, err
	}
	return u, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user model.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, user_name, password, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $5)`,
		user.ID, user.Name, user.UserName, user.Password, now,
	)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":     err,
			"user_name": user.UserName,
		}).Error("create user failed")
	}
	return err
}
