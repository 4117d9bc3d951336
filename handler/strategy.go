package handler

import (
	"net/http"

	"github.com/MatthewMangion/quantumblack-ai-platform/model"
	"github.com/MatthewMangion/quantumblack-ai-platform/pkg/metrics"
	"github.com/MatthewMangion/quantumblack-ai-platform/service"
	"github.com/gin-gonic/gin"
)

type StrategyHandler struct {
	store *service.EngagementStore
}

func NewStrategyHandler(store *service.EngagementStore) *StrategyHandler {
	return &StrategyHandler{store: store}
}

// UseCases returns a client's AI use case backlog.
func (h *StrategyHandler) UseCases(c *gin.Context) {
	clientID := c.Param("id")
	if h.store.Client(clientID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"useCases": h.store.UseCasesForClient(clientID)})
}

// UpdateUseCaseStatus moves a use case through the evaluation pipeline.
func (h *StrategyHandler) UpdateUseCaseStatus(c *gin.Context) {
	var req statusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status field"})
		return
	}
	if !model.ValidUseCaseStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid use case status: " + req.Status})
		return
	}
	h.store.UpdateUseCaseStatus(c.Param("id"), req.Status)
	metrics.RecordStatusUpdate("use_case")
	c.JSON(http.StatusOK, gin.H{"message": "Use case updated"})
}

// Documents returns a client's strategy documents.
func (h *StrategyHandler) Documents(c *gin.Context) {
	clientID := c.Param("id")
	if h.store.Client(clientID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": h.store.StrategyDocumentsForClient(clientID)})
}

// UpdateDocumentStatus moves a strategy document between draft, review
// and approved.
func (h *StrategyHandler) UpdateDocumentStatus(c *gin.Context) {
	var req statusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status field"})
		return
	}
	if !model.ValidStrategyDocumentStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document status: " + req.Status})
		return
	}
	h.store.UpdateStrategyDocumentStatus(c.Param("id"), req.Status)
	metrics.RecordStatusUpdate("strategy_document")
	c.JSON(http.StatusOK, gin.H{"message": "Document updated"})
}
