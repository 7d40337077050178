package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/digital-menu-api/internal/domain"
)

type UserRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewUserRepository(writerDB, readerDB *gorm.DB) *UserRepository {
	return &UserRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.readerDB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.readerDB.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}
