package plant

import (
	"Agro-Assistant-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	PlantRepository interface {
		GetPlants(ctx context.Context) ([]*entities.Plant, error)
		GetPlantByID(ctx context.Context, id uint) (*entities.Plant, error)
	}

	plantRepository struct {
		db *gorm.DB
	}
)

func NewPlantRepository(db *gorm.DB) PlantRepository {
	return &plantRepository{db: db}
}

func (r *plantRepository) GetPlants(ctx context.Context) ([]*entities.Plant, error) {
	plants := make([]*entities.Plant, 0)
	if err := r.db.WithContext(ctx).Find(&plants).Error; err != nil {
		return nil, err
	}
	return plants, nil
}

func (r *plantRepository) GetPlantByID(ctx context.Context, id uint) (*entities.Plant, error) {
	var plant entities.Plant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plant).Error; err != nil {
		return nil, err
	}
	return &plant, nil
}
