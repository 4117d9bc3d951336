package handler

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MatthewMangion/quantumblack-ai-platform/model"
	"github.com/MatthewMangion/quantumblack-ai-platform/pkg/metrics"
	"github.com/MatthewMangion/quantumblack-ai-platform/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	store     *service.EngagementStore
	documents *service.DocumentStore
	maxUpload int64
}

func NewDocumentHandler(store *service.EngagementStore, documents *service.DocumentStore, maxUpload int64) *DocumentHandler {
	return &DocumentHandler{store: store, documents: documents, maxUpload: maxUpload}
}

// Upload accepts a multipart file upload for a client workspace. The file
// content is embedded into the document record as a base64 data URI, so
// the record is self-contained and survives restarts through the document
// store.
func (h *DocumentHandler) Upload(c *gin.Context) {
	clientID := c.Param("id")
	if h.store.Client(clientID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	if header.Size > h.maxUpload {
		metrics.RecordDocumentUpload("rejected")
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("File too large (%s). Maximum size is %s.",
				formatFileSize(header.Size), formatFileSize(h.maxUpload)),
		})
		return
	}

	category := c.PostForm("category")
	if category == "" {
		category = model.CategoryReference
	}
	if !model.ValidDocumentCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document category: " + category})
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	doc := model.ClientDocument{
		ID:         fmt.Sprintf("doc-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:6]),
		ClientID:   clientID,
		Name:       header.Filename,
		Type:       contentType,
		Size:       header.Size,
		Data:       "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(content),
		UploadedAt: time.Now().Format(time.RFC3339),
		Category:   category,
	}
	h.documents.Add(doc)
	metrics.RecordDocumentUpload("accepted")

	c.JSON(http.StatusCreated, doc)
}

// List returns a client's uploaded documents, newest first.
func (h *DocumentHandler) List(c *gin.Context) {
	clientID := c.Param("id")
	if h.store.Client(clientID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": h.documents.ForClient(clientID)})
}

// Get returns a single document record, data URI included.
func (h *DocumentHandler) Get(c *gin.Context) {
	doc, ok := h.documents.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Download serves the original file bytes decoded from the stored data URI.
func (h *DocumentHandler) Download(c *gin.Context) {
	doc, ok := h.documents.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	_, encoded, found := strings.Cut(doc.Data, ",")
	if !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Document content is not readable"})
		return
	}
	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Document content is not readable"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	c.Data(http.StatusOK, doc.Type, content)
}

// Delete removes a document from the workspace.
func (h *DocumentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.documents.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	h.documents.Remove(id)
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// formatFileSize renders a byte count the way the workspace UI shows it.
func formatFileSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
