package user

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

	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return db
}

func countUsers(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entities.User{}).Count(&count).Error)
	return count
}

func TestLoginCreatesUnknownUser(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(NewUserRepository(db))

	res, outcome, err := service.Login(context.Background(), domain.LoginRequest{
		Username: "alice",
		Password: "pw1",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LoginNewUserCreated, outcome)
	assert.NotZero(t, res.ID)
	assert.Equal(t, "alice", res.Username)
	assert.Equal(t, "pw1", res.Password)
	assert.Equal(t, "alice@example.com", res.Email)
	assert.Equal(t, "Home Garden", res.Organization)
	assert.Equal(t, int64(1), countUsers(t, db))
}

func TestLoginExistingUserMatched(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(NewUserRepository(db))

	created, _, err := service.Login(context.Background(), domain.LoginRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	res, outcome, err := service.Login(context.Background(), domain.LoginRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	assert.Equal(t, domain.LoginExistingUserMatched, outcome)
	assert.Equal(t, created.ID, res.ID)
	assert.Equal(t, int64(1), countUsers(t, db))
}

func TestLoginWrongPasswordDoesNotMutate(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(NewUserRepository(db))

	_, _, err := service.Login(context.Background(), domain.LoginRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	_, _, err = service.Login(context.Background(), domain.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, int64(1), countUsers(t, db))
}

func TestGetUserByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(NewUserRepository(db))

	_, err := service.GetUserByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateUserReplacesRecord(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(NewUserRepository(db))

	created, _, err := service.Login(context.Background(), domain.LoginRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	res, err := service.UpdateUser(context.Background(), created.ID, domain.UpdateUserRequest{
		Username:     "alice",
		Password:     "pw2",
		Email:        "alice@garden.org",
		Organization: "Community Garden",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, res.ID)
	assert.Equal(t, "pw2", res.Password)
	assert.Equal(t, "alice@garden.org", res.Email)
	assert.Equal(t, "Community Garden", res.Organization)
}

func TestUpdateUserNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(NewUserRepository(db))

	_, err := service.UpdateUser(context.Background(), 42, domain.UpdateUserRequest{
		Username:     "ghost",
		Password:     "pw",
		Email:        "ghost@example.com",
		Organization: "Home Garden",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
