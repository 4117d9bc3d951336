package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MatthewMangion/quantumblack-ai-platform/service"
	"github.com/gin-gonic/gin"
)

func TestWorkshopHandlerList(t *testing.T) {
	handler := NewWorkshopHandler(service.NewSeededStore())

	router := gin.New()
	router.GET("/workshops", handler.List)

	req := httptest.NewRequest("GET", "/workshops", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string][]map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	workshops := response["workshops"]
	if len(workshops) != 4 {
		t.Fatalf("Expected 4 workshops, got %d", len(workshops))
	}

	// w1 is 22/25 enrolled.
	first := workshops[0]
	if first["id"] != "w1" {
		t.Errorf("Expected w1 first, got %v", first["id"])
	}
	if first["capacityPercent"].(float64) != 88 {
		t.Errorf("Expected 88%% capacity, got %v", first["capacityPercent"])
	}
}

func TestWorkshopHandlerStats(t *testing.T) {
	handler := NewWorkshopHandler(service.NewSeededStore())

	router := gin.New()
	router.GET("/workshops/stats", handler.Stats)

	req := httptest.NewRequest("GET", "/workshops/stats", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var stats service.WorkshopStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if stats.Upcoming != 3 {
		t.Errorf("Expected 3 upcoming, got %d", stats.Upcoming)
	}
	if stats.Completed != 1 {
		t.Errorf("Expected 1 completed, got %d", stats.Completed)
	}
	if stats.TotalEnrolled != 97 {
		t.Errorf("Expected 97 enrolled, got %d", stats.TotalEnrolled)
	}
}
