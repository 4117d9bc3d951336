package handler

import (
	"net/http"

	"github.com/MatthewMangion/quantumblack-ai-platform/model"
	"github.com/MatthewMangion/quantumblack-ai-platform/pkg/metrics"
	"github.com/MatthewMangion/quantumblack-ai-platform/service"
	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	store *service.EngagementStore
}

func NewEngagementHandler(store *service.EngagementStore) *EngagementHandler {
	return &EngagementHandler{store: store}
}

type statusUpdate struct {
	Status string `json:"status" binding:"required"`
}

// Phases returns a client's engagement phases with progress and status
// freshly derived from activity and deliverable state. The stored fields
// are never trusted for display.
func (h *EngagementHandler) Phases(c *gin.Context) {
	clientID := c.Param("id")
	if h.store.Client(clientID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	phases := h.store.PhasesForClient(clientID)
	out := make([]*model.EngagementPhase, len(phases))
	for i, p := range phases {
		derived := service.ComputePhaseProgress(p)
		next := *p
		next.Progress = derived.Progress
		next.Status = derived.Status
		out[i] = &next
	}
	c.JSON(http.StatusOK, gin.H{"phases": out})
}

// Stats returns the per-client engagement rollup.
func (h *EngagementHandler) Stats(c *gin.Context) {
	clientID := c.Param("id")
	if h.store.Client(clientID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, service.ComputeClientStats(h.store.PhasesForClient(clientID)))
}

// Deliverables returns a client's deliverables flattened across phases,
// optionally filtered by ?status=.
func (h *EngagementHandler) Deliverables(c *gin.Context) {
	clientID := c.Param("id")
	if h.store.Client(clientID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	filter := c.Query("status")
	if filter != "" && !model.ValidDeliverableStatus(filter) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deliverable status: " + filter})
		return
	}

	deliverables := make([]model.Deliverable, 0)
	for _, p := range h.store.PhasesForClient(clientID) {
		for _, d := range p.Deliverables {
			if filter == "" || d.Status == filter {
				deliverables = append(deliverables, d)
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"deliverables": deliverables})
}

// UpdateActivityStatus moves one activity to a new status. Completing an
// activity stamps its completion date.
func (h *EngagementHandler) UpdateActivityStatus(c *gin.Context) {
	phaseID := c.Param("id")
	activityID := c.Param("activityId")

	var req statusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status field"})
		return
	}
	if !model.ValidActivityStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity status: " + req.Status})
		return
	}

	phase := h.store.Phase(phaseID)
	if phase == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Phase not found"})
		return
	}
	h.store.UpdateActivityStatus(phaseID, activityID, req.Status)
	metrics.RecordStatusUpdate("activity")

	updated := h.store.Phase(phaseID)
	derived := service.ComputePhaseProgress(updated)
	next := *updated
	next.Progress = derived.Progress
	next.Status = derived.Status
	c.JSON(http.StatusOK, gin.H{"phase": &next})
}

// UpdateDeliverableStatus moves one deliverable to a new status.
// Delivering stamps its delivered date.
func (h *EngagementHandler) UpdateDeliverableStatus(c *gin.Context) {
	phaseID := c.Param("id")
	deliverableID := c.Param("deliverableId")

	var req statusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status field"})
		return
	}
	if !model.ValidDeliverableStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deliverable status: " + req.Status})
		return
	}

	phase := h.store.Phase(phaseID)
	if phase == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Phase not found"})
		return
	}
	h.store.UpdateDeliverableStatus(phaseID, deliverableID, req.Status)
	metrics.RecordStatusUpdate("deliverable")

	updated := h.store.Phase(phaseID)
	derived := service.ComputePhaseProgress(updated)
	next := *updated
	next.Progress = derived.Progress
	next.Status = derived.Status
	c.JSON(http.StatusOK, gin.H{"phase": &next})
}
