package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sweepApp() *fiber.App {
	app := fiber.New()
	app.Post("/sweep", EnqueueSweep)
	return app
}

func TestEnqueueSweepRejectsMalformedDate(t *testing.T) {
	app := sweepApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/sweep?date=02-06-2025", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEnqueueSweepWithoutJobClient(t *testing.T) {
	// ไม่มี Redis ใน test ดังนั้น AsynqClient เป็น nil
	app := sweepApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/sweep?date=2025-06-02", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/sweep", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
