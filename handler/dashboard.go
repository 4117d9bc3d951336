package handler

import (
	"net/http"

	"github.com/MatthewMangion/quantumblack-ai-platform/service"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	store *service.EngagementStore
}

func NewDashboardHandler(store *service.EngagementStore) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Metrics returns the cross-client rollup for the home dashboard.
func (h *DashboardHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, service.ComputeDashboardMetrics(h.store))
}
