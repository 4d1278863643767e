package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "polstat_backend/internals/databases"
	perfModel "polstat_backend/internals/features/performance/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	ctrl := NewModuleController(db)
	app := fiber.New()
	app.Get("/modules/:id", ctrl.GetByID)
	app.Post("/modules", ctrl.Create)
	app.Delete("/modules/:id", ctrl.Delete)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestModuleCreateAndDuplicateName(t *testing.T) {
	app, _ := newTestApp(t)

	status, envelope := postJSON(t, app, "/modules", fiber.Map{"module_name": "Crime Statistics"})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "SUCCESS", envelope["status"])

	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Crime Statistics", data["module_name"])
	// first module lands at the end of an empty page order
	assert.EqualValues(t, 1, data["module_priority"])

	status, envelope = postJSON(t, app, "/modules", fiber.Map{"module_name": "Crime Statistics"})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "ERROR", envelope["status"])
}

func TestModuleCreateValidation(t *testing.T) {
	app, _ := newTestApp(t)

	status, envelope := postJSON(t, app, "/modules", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "ERROR", envelope["status"])
}

func TestModuleGetByID(t *testing.T) {
	app, _ := newTestApp(t)
	_, envelope := postJSON(t, app, "/modules", fiber.Map{"module_name": "Traffic"})
	data := envelope["data"].(map[string]interface{})
	id := int(data["module_id"].(float64))

	resp, err := app.Test(httptest.NewRequest("GET", fmt.Sprintf("/modules/%d", id), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/modules/9999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestModuleDeleteRefusedWhenReferenced(t *testing.T) {
	app, db := newTestApp(t)
	_, envelope := postJSON(t, app, "/modules", fiber.Map{"module_name": "Crime"})
	data := envelope["data"].(map[string]interface{})
	id := uint(data["module_id"].(float64))

	require.NoError(t, db.Create(&perfModel.PerformanceStatistic{
		StatisticUserID:     uuid.New(),
		StatisticQuestionID: 1,
		StatisticMonthYear:  "JAN 2026",
		StatisticModuleID:   id,
		StatisticTopicID:    1,
		StatisticValue:      "1",
		StatisticValueKind:  perfModel.ValueKindNumeric,
		StatisticStatus:     perfModel.StatusSuccess,
		StatisticIsActive:   true,
	}).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/modules/%d", id), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// without references the soft delete goes through
	_, envelope = postJSON(t, app, "/modules", fiber.Map{"module_name": "Empty"})
	emptyID := int(envelope["data"].(map[string]interface{})["module_id"].(float64))
	resp, err = app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/modules/%d", emptyID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
