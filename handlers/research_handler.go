package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/software11inc/bluedot/services"
)

type ResearchHandler struct {
	Service *services.ResearchService
}

func NewResearchHandler(service *services.ResearchService) *ResearchHandler {
	return &ResearchHandler{Service: service}
}

// GetStockPrices serves the IPO-tracking list with returns since listing
func (h *ResearchHandler) GetStockPrices(c *fiber.Ctx) error {
	resp, err := h.Service.GetStockPrices(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(resp)
}

// GetMarketCaps serves the fintech market-cap treemap data
func (h *ResearchHandler) GetMarketCaps(c *fiber.Ctx) error {
	resp, err := h.Service.GetMarketCaps(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(resp)
}

// GetCompanyDetails serves the per-symbol bundle of quote, profile,
// financials, news, and earnings
func (h *ResearchHandler) GetCompanyDetails(c *fiber.Ctx) error {
	symbol := strings.TrimSpace(c.Params("symbol"))
	if symbol == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Symbol required",
		})
	}

	details, err := h.Service.GetCompanyDetails(c.Context(), strings.ToUpper(symbol))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(details)
}
