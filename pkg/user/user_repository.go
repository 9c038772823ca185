package user

import (
	"Agro-Assistant-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		FindByUsername(ctx context.Context, username string) (*entities.User, error)
		FindByID(ctx context.Context, id uint) (*entities.User, error)
		CreateUser(ctx context.Context, user *entities.User) error
		UpdateUser(ctx context.Context, id uint, user *entities.User) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// UpdateUser is a full-record replace of every mutable column. A missing id is
// a silent no-op here; the service re-reads the row to surface not-found.
func (r *userRepository) UpdateUser(ctx context.Context, id uint, user *entities.User) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"username":     user.Username,
			"password":     user.Password,
			"email":        user.Email,
			"organization": user.Organization,
		}).Error
}
