package handler

import (
	"net/http"

	"github.com/MatthewMangion/quantumblack-ai-platform/service"
	"github.com/gin-gonic/gin"
)

type SurveyHandler struct {
	store *service.EngagementStore
}

func NewSurveyHandler(store *service.EngagementStore) *SurveyHandler {
	return &SurveyHandler{store: store}
}

// Questions returns the readiness survey questions.
func (h *SurveyHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.store.SurveyQuestions()})
}

// Responses returns all submitted survey responses.
func (h *SurveyHandler) Responses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"responses": h.store.SurveyResponses()})
}

// Readiness returns the aggregated readiness rollup over the standard
// readiness question.
func (h *SurveyHandler) Readiness(c *gin.Context) {
	stats := service.ComputeReadinessStats(
		h.store.SurveyResponses(),
		service.ReadinessQuestionID,
		service.SurveyInvitedCount,
	)
	c.JSON(http.StatusOK, stats)
}
