package trend

import (
	"Agro-Assistant-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	TrendRepository interface {
		GetTrends(ctx context.Context) ([]*entities.Trend, error)
		SearchTrends(ctx context.Context, term string) ([]*entities.Trend, error)
	}

	trendRepository struct {
		db *gorm.DB
	}
)

func NewTrendRepository(db *gorm.DB) TrendRepository {
	return &trendRepository{db: db}
}

func (r *trendRepository) GetTrends(ctx context.Context) ([]*entities.Trend, error) {
	trends := make([]*entities.Trend, 0)
	if err := r.db.WithContext(ctx).Find(&trends).Error; err != nil {
		return nil, err
	}
	return trends, nil
}

// SearchTrends matches the term as a substring of title or description.
// SQLite LIKE is case-insensitive for ASCII, which is the documented contract.
func (r *trendRepository) SearchTrends(ctx context.Context, term string) ([]*entities.Trend, error) {
	trends := make([]*entities.Trend, 0)
	pattern := "%" + term + "%"
	if err := r.db.WithContext(ctx).
		Where("title LIKE ? OR description LIKE ?", pattern, pattern).
		Find(&trends).Error; err != nil {
		return nil, err
	}
	return trends, nil
}
