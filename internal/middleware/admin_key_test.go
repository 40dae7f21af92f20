package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yardline/driver-admin-backend/internal/middleware"
)

func TestRequireAdminKey(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", middleware.RequireAdminKey("secret"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	tests := []struct {
		name       string
		target     string
		header     string
		value      string
		wantStatus int
	}{
		{name: "no key", target: "/protected", wantStatus: 401},
		{name: "wrong header key", target: "/protected", header: "X-Admin-Key", value: "nope", wantStatus: 401},
		{name: "admin header", target: "/protected", header: "X-Admin-Key", value: "secret", wantStatus: 200},
		{name: "api header", target: "/protected", header: "X-Api-Key", value: "secret", wantStatus: 200},
		{name: "query param", target: "/protected?key=secret", wantStatus: 200},
		{name: "wrong query param", target: "/protected?key=nope", wantStatus: 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
