package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MatthewMangion/quantumblack-ai-platform/model"
	"github.com/MatthewMangion/quantumblack-ai-platform/service"
	"github.com/gin-gonic/gin"
)

func strategyRouter(store *service.EngagementStore) *gin.Engine {
	handler := NewStrategyHandler(store)
	router := gin.New()
	router.GET("/clients/:id/usecases", handler.UseCases)
	router.PUT("/usecases/:id/status", handler.UpdateUseCaseStatus)
	router.GET("/clients/:id/strategy-documents", handler.Documents)
	router.PUT("/strategy-documents/:id/status", handler.UpdateDocumentStatus)
	return router
}

func TestStrategyHandlerUseCases(t *testing.T) {
	router := strategyRouter(service.NewSeededStore())

	req := httptest.NewRequest("GET", "/clients/c1/usecases", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string][]map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(response["useCases"]) != 5 {
		t.Errorf("Expected 5 use cases for c1, got %d", len(response["useCases"]))
	}
}

func TestStrategyHandlerUpdateUseCaseStatus(t *testing.T) {
	store := service.NewSeededStore()
	router := strategyRouter(store)

	body := bytes.NewBufferString(`{"status": "approved"}`)
	req := httptest.NewRequest("PUT", "/usecases/uc-c1-5/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	for _, uc := range store.UseCasesForClient("c1") {
		if uc.ID == "uc-c1-5" && uc.Status != model.UseCaseApproved {
			t.Errorf("Expected approved, got %s", uc.Status)
		}
	}
}

func TestStrategyHandlerUpdateUseCaseStatusInvalid(t *testing.T) {
	router := strategyRouter(service.NewSeededStore())

	body := bytes.NewBufferString(`{"status": "shipped"}`)
	req := httptest.NewRequest("PUT", "/usecases/uc-c1-1/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestStrategyHandlerDocuments(t *testing.T) {
	router := strategyRouter(service.NewSeededStore())

	req := httptest.NewRequest("GET", "/clients/c1/strategy-documents", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string][]map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(response["documents"]) != 3 {
		t.Errorf("Expected 3 strategy documents for c1, got %d", len(response["documents"]))
	}
}

func TestStrategyHandlerUpdateDocumentStatus(t *testing.T) {
	store := service.NewSeededStore()
	router := strategyRouter(store)

	body := bytes.NewBufferString(`{"status": "review"}`)
	req := httptest.NewRequest("PUT", "/strategy-documents/sd-c2-2/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	for _, d := range store.StrategyDocumentsForClient("c2") {
		if d.ID == "sd-c2-2" && d.Status != model.DocReview {
			t.Errorf("Expected review, got %s", d.Status)
		}
	}
}

func TestStrategyHandlerUnknownClient(t *testing.T) {
	router := strategyRouter(service.NewSeededStore())

	for _, path := range []string{"/clients/missing/usecases", "/clients/missing/strategy-documents"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected status 404, got %d", path, w.Code)
		}
	}
}
