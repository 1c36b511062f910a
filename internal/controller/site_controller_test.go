package controller

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"eveshield-be/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSite(t *testing.T) {
	site := config.DefaultSiteConfig()
	site.SiteTitle = "Custom Admin"
	app := newTestApp(NewSiteController(site))

	code, res := do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/site", nil))
	require.Equal(t, fiber.StatusOK, code)

	var got config.SiteConfig
	require.NoError(t, json.Unmarshal(res.Data, &got))
	assert.Equal(t, "EveShield Administration", got.SiteHeader)
	assert.Equal(t, "Custom Admin", got.SiteTitle)
	assert.Equal(t, "Welcome to EveShield Admin Panel", got.IndexTitle)
}
