package chat

import (
	"Agro-Assistant-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ChatRepository interface {
		CreateMessage(ctx context.Context, message *entities.Message) error
		GetRecentMessages(ctx context.Context, limit int) ([]*entities.Message, error)
		GetHistory(ctx context.Context) ([]*entities.Message, error)
	}

	chatRepository struct {
		db *gorm.DB
	}
)

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateMessage(ctx context.Context, message *entities.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// GetRecentMessages returns the newest messages first; callers reverse the
// slice when they need chronological order.
func (r *chatRepository) GetRecentMessages(ctx context.Context, limit int) ([]*entities.Message, error) {
	messages := make([]*entities.Message, 0)
	if err := r.db.WithContext(ctx).
		Order("timestamp desc").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *chatRepository) GetHistory(ctx context.Context) ([]*entities.Message, error) {
	messages := make([]*entities.Message, 0)
	if err := r.db.WithContext(ctx).
		Order("timestamp asc").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
