package handler

import (
	"net/http"

	"github.com/MatthewMangion/quantumblack-ai-platform/pkg/metrics"
	"github.com/MatthewMangion/quantumblack-ai-platform/service"
	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	store *service.EngagementStore
}

func NewClientHandler(store *service.EngagementStore) *ClientHandler {
	return &ClientHandler{store: store}
}

// List returns all clients.
func (h *ClientHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"clients": h.store.Clients()})
}

// Get returns a single client.
func (h *ClientHandler) Get(c *gin.Context) {
	client := h.store.Client(c.Param("id"))
	if client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// Create onboards a new client from an intake request, building the
// client record and its engagement phases from the selected services.
func (h *ClientHandler) Create(c *gin.Context) {
	var req service.IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid intake request: " + err.Error()})
		return
	}

	client, phases, err := service.BuildEngagement(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.AddClient(client, phases)
	metrics.RecordClientIntake()

	c.JSON(http.StatusCreated, gin.H{
		"client": client,
		"phases": phases,
	})
}

// Templates returns the standard engagement phase templates offered
// during intake.
func (h *ClientHandler) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": service.PhaseTemplates})
}
