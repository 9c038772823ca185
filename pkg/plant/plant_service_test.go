package plant

import (
	"Agro-Assistant-Backend/domain"
	"Agro-Assistant-Backend/entities"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entities.Plant{}))
	return db
}

func TestGetPlants(t *testing.T) {
	db := newTestDB(t)
	service := NewPlantService(NewPlantRepository(db))

	require.NoError(t, db.Create(&entities.Plant{Name: "Cherry Tomato", Species: "Solanum lycopersicum", HealthStatus: "Healthy"}).Error)
	require.NoError(t, db.Create(&entities.Plant{Name: "Basil", Species: "Ocimum basilicum", HealthStatus: "Needs water"}).Error)

	plants, err := service.GetPlants(context.Background())
	require.NoError(t, err)
	assert.Len(t, plants, 2)
}

func TestGetPlantByIDIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	service := NewPlantService(NewPlantRepository(db))

	seeded := entities.Plant{Name: "Cherry Tomato", Species: "Solanum lycopersicum", HealthStatus: "Healthy"}
	require.NoError(t, db.Create(&seeded).Error)

	first, err := service.GetPlantByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	second, err := service.GetPlantByID(context.Background(), seeded.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetPlantByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewPlantService(NewPlantRepository(db))

	_, err := service.GetPlantByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrPlantNotFound)
}
