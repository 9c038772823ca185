package config

import (
	migration "Agro-Assistant-Backend/cmd/database/migrate"
	"Agro-Assistant-Backend/entities"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migration.Migrate(db))

	app, err := NewApp(db)
	require.NoError(t, err)

	t.Cleanup(func() { os.RemoveAll("./logs") })
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestLoginScenario(t *testing.T) {
	app, db := newTestApp(t)

	// fresh database carries exactly the seeded default user
	var count int64
	require.NoError(t, db.Model(&entities.User{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	resp := doJSON(t, app, "POST", "/api/auth/login", map[string]string{
		"username": "alice", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created map[string]interface{}
	decodeBody(t, resp, &created)
	assert.NotZero(t, created["id"])
	assert.Equal(t, "alice", created["username"])

	require.NoError(t, db.Model(&entities.User{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	resp = doJSON(t, app, "POST", "/api/auth/login", map[string]string{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var detail map[string]interface{}
	decodeBody(t, resp, &detail)
	assert.Equal(t, "Invalid credentials", detail["detail"])

	require.NoError(t, db.Model(&entities.User{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestGetPlantNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/plants/42", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var detail map[string]interface{}
	decodeBody(t, resp, &detail)
	assert.Equal(t, "Plant not found", detail["detail"])
}

func TestToggleTaskEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	seeded := entities.Task{Title: "Water the tomatoes", DueDate: time.Now().Add(24 * time.Hour)}
	require.NoError(t, db.Create(&seeded).Error)

	resp := doJSON(t, app, "PATCH", fmt.Sprintf("/api/tasks/%d", seeded.ID), map[string]bool{
		"isCompleted": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var task map[string]interface{}
	decodeBody(t, resp, &task)
	assert.Equal(t, true, task["isCompleted"])
	assert.Equal(t, "Water the tomatoes", task["title"])
}

func TestToggleTaskEndpointNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "PATCH", "/api/tasks/42", map[string]bool{"isCompleted": true})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestChatTurnAndHistory(t *testing.T) {
	app, db := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/chat", map[string]string{"content": "hello"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reply map[string]interface{}
	decodeBody(t, resp, &reply)
	assert.Equal(t, "assistant", reply["role"])
	assert.NotZero(t, reply["id"])

	var count int64
	require.NoError(t, db.Model(&entities.Message{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	resp = doJSON(t, app, "GET", "/api/chat/history", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var history []map[string]interface{}
	decodeBody(t, resp, &history)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0]["role"])
	assert.Equal(t, "assistant", history[1]["role"])
}

func TestTrendSearchEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	require.NoError(t, db.Create(&entities.Trend{Title: "Composting Basics", Description: "Turning scraps into soil"}).Error)
	require.NoError(t, db.Create(&entities.Trend{Title: "Hydroponics at Home", Description: "Soil-free setups"}).Error)

	resp := doJSON(t, app, "GET", "/api/trends?search=COMPOST", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var trends []map[string]interface{}
	decodeBody(t, resp, &trends)
	require.Len(t, trends, 1)
	assert.Equal(t, "Composting Basics", trends[0]["title"])
}
