package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatedApp(token string) *fiber.App {
	app := fiber.New()
	app.Use(GatewayAuthMiddleware(token, "/health"))
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/api/partidas", func(c *fiber.Ctx) error { return c.SendString("[]") })
	return app
}

func TestGatewayAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		path   string
		header string
		want   int
	}{
		{"disabled", "", "/api/partidas", "", http.StatusOK},
		{"missing header", "t0k", "/api/partidas", "", http.StatusUnauthorized},
		{"wrong token", "t0k", "/api/partidas", "Bearer nope", http.StatusUnauthorized},
		{"bearer token", "t0k", "/api/partidas", "Bearer t0k", http.StatusOK},
		{"raw token", "t0k", "/api/partidas", "t0k", http.StatusOK},
		{"open path", "t0k", "/health", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := newGatedApp(tt.token).Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
