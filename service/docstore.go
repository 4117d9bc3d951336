package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/MatthewMangion/quantumblack-ai-platform/model"
)

// DocumentStore is the durable store for uploaded client documents. The
// backing record is a single JSON file holding the full collection; every
// mutation rewrites the whole file. This is last-writer-wins at collection
// granularity, which is acceptable for a single-user deployment.
//
// Validation (size limit, category) happens on the upload path before a
// record reaches the store.
type DocumentStore struct {
	mu   sync.Mutex
	path string
	docs []model.ClientDocument
}

// NewDocumentStore opens the store at path, loading any existing
// collection. A missing, unreadable or malformed file degrades to an
// empty collection; it never fails.
func NewDocumentStore(path string) *DocumentStore {
	s := &DocumentStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("document store unreadable, starting empty", "path", path, "error", err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.docs); err != nil {
		slog.Warn("document store corrupt, starting empty", "path", path, "error", err)
		s.docs = nil
	}
	return s
}

// Add prepends a document to the collection and persists it. Newest-first
// order is what the workspace presents.
func (s *DocumentStore) Add(doc model.ClientDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append([]model.ClientDocument{doc}, s.docs...)
	s.persist()
}

// Remove deletes the document with the given id, if present.
func (s *DocumentStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.docs[:0]
	for _, d := range s.docs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	s.docs = kept
	s.persist()
}

// Get returns the document with the given id.
func (s *DocumentStore) Get(id string) (model.ClientDocument, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.docs {
		if d.ID == id {
			return d, true
		}
	}
	return model.ClientDocument{}, false
}

// ForClient returns all documents belonging to a client, newest first.
func (s *DocumentStore) ForClient(clientID string) []model.ClientDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.ClientDocument
	for _, d := range s.docs {
		if d.ClientID == clientID {
			out = append(out, d)
		}
	}
	return out
}

// Count returns the number of stored documents.
func (s *DocumentStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

// persist writes the full collection back to disk. Must be called with the
// lock held. A write failure keeps the in-memory state and is logged; the
// next mutation retries the full write anyway.
func (s *DocumentStore) persist() {
	data, err := json.Marshal(s.docs)
	if err != nil {
		slog.Error("failed to encode document collection", "error", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		slog.Error("failed to persist document collection", "path", s.path, "error", err)
	}
}
