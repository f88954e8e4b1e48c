package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"viajescaribe_backend/internals/configs"
)

// El preflight OPTIONS se contesta con 2xx vacío para que el sitio pueda
// llamar a los endpoints de pago desde el navegador.
func TestCorsPreflight(t *testing.T) {
	cfg := &configs.Config{CORSOrigins: []string{"https://viajescaribe.mx"}}

	app := fiber.New()
	app.Use(CorsMiddleware(cfg))
	app.Post("/api/payments/confirm", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	req := httptest.NewRequest("OPTIONS", "/api/payments/confirm", nil)
	req.Header.Set("Origin", "https://viajescaribe.mx")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		t.Errorf("preflight status = %d, quiero 2xx", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://viajescaribe.mx" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if got := resp.ContentLength; got > 0 {
		t.Errorf("el preflight debe ir sin cuerpo, ContentLength = %d", got)
	}
}
