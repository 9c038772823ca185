package plant

import (
	"Agro-Assistant-Backend/domain"
	"Agro-Assistant-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	PlantService interface {
		GetPlants(ctx context.Context) ([]*entities.Plant, error)
		GetPlantByID(ctx context.Context, id uint) (*entities.Plant, error)
	}

	plantService struct {
		plantRepository PlantRepository
	}
)

func NewPlantService(plantRepository PlantRepository) PlantService {
	return &plantService{plantRepository: plantRepository}
}

func (s *plantService) GetPlants(ctx context.Context) ([]*entities.Plant, error) {
	return s.plantRepository.GetPlants(ctx)
}

func (s *plantService) GetPlantByID(ctx context.Context, id uint) (*entities.Plant, error) {
	plant, err := s.plantRepository.GetPlantByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlantNotFound
		}
		return nil, err
	}
	return plant, nil
}
