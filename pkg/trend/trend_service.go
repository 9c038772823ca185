package trend

import (
	"Agro-Assistant-Backend/entities"
	"context"
)

type (
	TrendService interface {
		GetTrends(ctx context.Context, search string) ([]*entities.Trend, error)
	}

	trendService struct {
		trendRepository TrendRepository
	}
)

func NewTrendService(trendRepository TrendRepository) TrendService {
	return &trendService{trendRepository: trendRepository}
}

func (s *trendService) GetTrends(ctx context.Context, search string) ([]*entities.Trend, error) {
	if search != "" {
		return s.trendRepository.SearchTrends(ctx, search)
	}
	return s.trendRepository.GetTrends(ctx)
}
