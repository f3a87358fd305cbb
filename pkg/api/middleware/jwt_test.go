package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callWithSecret(t *testing.T, configured, presented string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/automation/process-queue", nil)
	if presented != "" {
		req.Header.Set("Authorization", presented)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := CronSecretMiddleware(configured)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestCronSecretMiddleware(t *testing.T) {
	t.Run("Success - Matching secret", func(t *testing.T) {
		rec := callWithSecret(t, "cron-secret", "Bearer cron-secret")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Error - Wrong secret", func(t *testing.T) {
		rec := callWithSecret(t, "cron-secret", "Bearer wrong")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Error - Missing header", func(t *testing.T) {
		rec := callWithSecret(t, "cron-secret", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Error - Empty configured secret rejects everything", func(t *testing.T) {
		rec := callWithSecret(t, "", "Bearer ")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
