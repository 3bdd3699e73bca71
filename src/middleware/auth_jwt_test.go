package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	DB "Backend-Scholarship-Finder/src/database"
	"Backend-Scholarship-Finder/src/utils"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin", AuthJWT, RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalUsername).(string))
	})
	return app
}

func request(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/admin", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthJWT(t *testing.T) {
	utils.ConfigureJWT("middleware-secret", 0)
	mr := miniredis.RunT(t)
	DB.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { DB.RedisClient = nil })

	app := newApp()
	adminToken, err := utils.GenerateJWT("a1", "admin", "admin")
	require.NoError(t, err)
	userToken, err := utils.GenerateJWT("u1", "someone", "user")
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, ""))
	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, "garbage"))
	assert.Equal(t, fiber.StatusForbidden, request(t, app, userToken))
	assert.Equal(t, fiber.StatusOK, request(t, app, adminToken))

	require.NoError(t, utils.BlacklistToken(adminToken, 0))
	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, adminToken))
}
