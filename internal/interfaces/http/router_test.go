package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/marketplace-api/internal/interfaces/http"
)

// Las rutas de edición y workflow de products responden a PATCH; sin token
// deben cortar en 401, nunca en 405 (la ruta debe existir).
func TestRouter_ProductsRespondenAPatch(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})

	rutas := []string{
		"/api/products/p-1",
		"/api/products/p-1/submit",
		"/api/products/p-1/approve",
		"/api/products/p-1/reject",
	}
	for _, ruta := range rutas {
		req := httptest.NewRequest(http.MethodPatch, ruta, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
			"PATCH %s debe estar registrado y exigir token", ruta)
	}
}
