package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
)

func TestAccessLog_NivelSegunStatus(t *testing.T) {
	tests := []struct {
		path      string
		status    int
		wantLevel string
	}{
		{"/ok", http.StatusOK, "info"},
		{"/bad", http.StatusBadRequest, "warn"},
		{"/boom", http.StatusInternalServerError, "error"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var buf bytes.Buffer
			app := fiber.New()
			app.Use(apphttp.AccessLog(zerolog.New(&buf)))
			app.Get(tt.path, func(c *fiber.Ctx) error { return c.SendStatus(tt.status) })

			resp := doGet(t, app, tt.path, "")
			resp.Body.Close()

			var line map[string]any
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, tt.path, line["path"])
			assert.EqualValues(t, tt.status, line["status"])
		})
	}
}
