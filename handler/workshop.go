package handler

import (
	"net/http"

	"github.com/MatthewMangion/quantumblack-ai-platform/service"
	"github.com/gin-gonic/gin"
)

type WorkshopHandler struct {
	store *service.EngagementStore
}

func NewWorkshopHandler(store *service.EngagementStore) *WorkshopHandler {
	return &WorkshopHandler{store: store}
}

// List returns all workshops with their capacity utilisation.
func (h *WorkshopHandler) List(c *gin.Context) {
	workshops := h.store.Workshops()
	result := make([]gin.H, len(workshops))
	for i, w := range workshops {
		result[i] = gin.H{
			"id":              w.ID,
			"title":           w.Title,
			"description":     w.Description,
			"category":        w.Category,
			"date":            w.Date,
			"duration":        w.Duration,
			"capacity":        w.Capacity,
			"enrolled":        w.Enrolled,
			"capacityPercent": service.CapacityPercent(w),
			"instructor":      w.Instructor,
			"status":          w.Status,
			"attendees":       w.Attendees,
		}
	}
	c.JSON(http.StatusOK, gin.H{"workshops": result})
}

// Stats returns the workshop programme rollup.
func (h *WorkshopHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, service.ComputeWorkshopStats(h.store.Workshops()))
}
