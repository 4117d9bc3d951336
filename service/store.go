package service

import (
	"sync"
	"time"

	"github.com/MatthewMangion/quantumblack-ai-platform/model"
)

// EngagementStore is the in-memory store for clients, engagement phases,
// use cases, strategy documents, workshops and survey data. All entities
// except uploaded documents live only here and are re-seeded on startup.
//
// Mutations replace whole records rather than editing them in place, so a
// reader holding a record never observes a partially-updated phase.
type EngagementStore struct {
	mu              sync.RWMutex
	clients         []*model.Client
	phases          []*model.EngagementPhase
	useCases        []*model.UseCase
	strategyDocs    []*model.StrategyDocument
	workshops       []*model.Workshop
	surveyQuestions []*model.SurveyQuestion
	surveyResponses []*model.SurveyResponse
}

// NewEngagementStore creates an empty store. Handlers receive the store by
// reference; there is no package-level instance, so tests can construct
// isolated stores.
func NewEngagementStore() *EngagementStore {
	return &EngagementStore{}
}

// Clients returns all clients in insertion order.
func (s *EngagementStore) Clients() []*model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Client returns the client with the given id, or nil.
func (s *EngagementStore) Client(id string) *model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// AddClient appends a client and its phase batch. Both become visible
// together; a concurrent reader sees either neither or both.
func (s *EngagementStore) AddClient(client *model.Client, phases []*model.EngagementPhase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, client)
	s.phases = append(s.phases, phases...)
}

// Phase returns the phase with the given id, or nil.
func (s *EngagementStore) Phase(id string) *model.EngagementPhase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.phases {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PhasesForClient returns the client's phases in phase order.
func (s *EngagementStore) PhasesForClient(clientID string) []*model.EngagementPhase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.EngagementPhase
	for _, p := range s.phases {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}

// UpdateActivityStatus replaces the status of one activity within a phase.
// Moving to completed stamps CompletedDate with today's date; any other
// transition leaves a previously-set date untouched. Unknown ids are a
// benign no-op.
func (s *EngagementStore) UpdateActivityStatus(phaseID, activityID, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.phases {
		if p.ID != phaseID {
			continue
		}
		next := *p
		next.Activities = make([]model.PhaseActivity, len(p.Activities))
		copy(next.Activities, p.Activities)
		for j := range next.Activities {
			if next.Activities[j].ID != activityID {
				continue
			}
			next.Activities[j].Status = status
			if status == model.ActivityCompleted {
				next.Activities[j].CompletedDate = isoToday()
			}
			s.phases[i] = &next
			return
		}
		return
	}
}

// UpdateDeliverableStatus replaces the status of one deliverable within a
// phase, stamping DeliveredDate when it moves to delivered. Unknown ids
// are a benign no-op.
func (s *EngagementStore) UpdateDeliverableStatus(phaseID, deliverableID, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.phases {
		if p.ID != phaseID {
			continue
		}
		next := *p
		next.Deliverables = make([]model.Deliverable, len(p.Deliverables))
		copy(next.Deliverables, p.Deliverables)
		for j := range next.Deliverables {
			if next.Deliverables[j].ID != deliverableID {
				continue
			}
			next.Deliverables[j].Status = status
			if status == model.DeliverableDelivered {
				next.Deliverables[j].DeliveredDate = isoToday()
			}
			s.phases[i] = &next
			return
		}
		return
	}
}

// UseCasesForClient returns the client's use cases in insertion order.
func (s *EngagementStore) UseCasesForClient(clientID string) []*model.UseCase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.UseCase
	for _, uc := range s.useCases {
		if uc.ClientID == clientID {
			out = append(out, uc)
		}
	}
	return out
}

// UpdateUseCaseStatus replaces a use case's status. Unknown ids are a
// benign no-op.
func (s *EngagementStore) UpdateUseCaseStatus(id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, uc := range s.useCases {
		if uc.ID == id {
			next := *uc
			next.Status = status
			s.useCases[i] = &next
			return
		}
	}
}

// StrategyDocumentsForClient returns the client's strategy documents.
func (s *EngagementStore) StrategyDocumentsForClient(clientID string) []*model.StrategyDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.StrategyDocument
	for _, d := range s.strategyDocs {
		if d.ClientID == clientID {
			out = append(out, d)
		}
	}
	return out
}

// UpdateStrategyDocumentStatus replaces a strategy document's status.
// Unknown ids are a benign no-op.
func (s *EngagementStore) UpdateStrategyDocumentStatus(id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.strategyDocs {
		if d.ID == id {
			next := *d
			next.Status = status
			s.strategyDocs[i] = &next
			return
		}
	}
}

// Workshops returns all workshops.
func (s *EngagementStore) Workshops() []*model.Workshop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Workshop, len(s.workshops))
	copy(out, s.workshops)
	return out
}

// SurveyQuestions returns the readiness survey questions.
func (s *EngagementStore) SurveyQuestions() []*model.SurveyQuestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.SurveyQuestion, len(s.surveyQuestions))
	copy(out, s.surveyQuestions)
	return out
}

// SurveyResponses returns all survey responses.
func (s *EngagementStore) SurveyResponses() []*model.SurveyResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.SurveyResponse, len(s.surveyResponses))
	copy(out, s.surveyResponses)
	return out
}

func isoToday() string {
	return time.Now().Format("2006-01-02")
}
