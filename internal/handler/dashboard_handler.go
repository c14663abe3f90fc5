package handler

import (
	"strconv"

	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetStats returns the overview counters.
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, stats)
}

// GetRevenue returns sale totals over the last N days (default 7).
// GET /api/v1/dashboard/revenue?days=30
func (h *DashboardHandler) GetRevenue(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days <= 0 {
		days = 7
	}

	summary, err := h.service.GetRevenueSummary(days)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, 200, summary)
}
