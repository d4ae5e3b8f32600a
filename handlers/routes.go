package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/google/uuid"
	"github.com/software11inc/bluedot/config"
	"github.com/software11inc/bluedot/shared"
)

// knownRoutes is what the 404 body advertises
var knownRoutes = []string{"/stock-prices", "/fintech-marketcaps", "/company-details/:symbol"}

// SetupRoutes wires middleware and the public routes onto app. main and the
// handler tests build the same app through this function.
func SetupRoutes(app *fiber.App, h *ResearchHandler, cfg *config.Config, metrics *shared.GatewayMetrics) {
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	// Tag every request with an id for log correlation
	app.Use(func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Locals("request_id", requestID)
		c.Set("X-Request-ID", requestID)
		return c.Next()
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().Unix(),
			"metrics":   metrics.Snapshot(),
		})
	})

	// The upstream API key is required before any upstream call is attempted
	requireAPIKey := func(c *fiber.Ctx) error {
		if cfg.FinnhubAPIKey == "" {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "API key not configured",
			})
		}
		return c.Next()
	}

	app.Get("/stock-prices", requireAPIKey, h.GetStockPrices)
	app.Get("/fintech-marketcaps", requireAPIKey, h.GetMarketCaps)
	app.Get("/company-details/:symbol?", requireAPIKey, h.GetCompanyDetails)

	// Unknown path: self-describing 404
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":  "Not found",
			"routes": knownRoutes,
		})
	})
}
