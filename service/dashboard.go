package service

import (
	"math"

	"github.com/MatthewMangion/quantumblack-ai-platform/model"
)

// WorkshopStats is the rollup shown on the workshops page.
type WorkshopStats struct {
	Upcoming      int `json:"upcoming"`
	Completed     int `json:"completed"`
	TotalEnrolled int `json:"totalEnrolled"`
}

// ComputeWorkshopStats aggregates workshop counts and enrolment.
func ComputeWorkshopStats(workshops []*model.Workshop) WorkshopStats {
	var stats WorkshopStats
	for _, w := range workshops {
		switch w.Status {
		case model.WorkshopUpcoming:
			stats.Upcoming++
		case model.WorkshopCompleted:
			stats.Completed++
		}
		stats.TotalEnrolled += w.Enrolled
	}
	return stats
}

// CapacityPercent returns how full a workshop is, rounded to the nearest
// whole percent. Zero-capacity workshops report 0.
func CapacityPercent(w *model.Workshop) int {
	if w.Capacity <= 0 {
		return 0
	}
	return int(math.Round(float64(w.Enrolled) / float64(w.Capacity) * 100))
}

// DashboardMetrics is the cross-client rollup on the home dashboard.
type DashboardMetrics struct {
	ActiveClients      int `json:"activeClients"`
	OngoingEngagements int `json:"ongoingEngagements"`
	SurveysCompleted   int `json:"surveysCompleted"`
	WorkshopsDelivered int `json:"workshopsDelivered"`
	DeliveredDocuments int `json:"deliveredDocuments"`
}

// ComputeDashboardMetrics derives the home dashboard rollup from current
// store state. An engagement is ongoing while any of the client's phases
// is not yet complete.
func ComputeDashboardMetrics(store *EngagementStore) DashboardMetrics {
	m := DashboardMetrics{}

	clients := store.Clients()
	m.ActiveClients = len(clients)
	for _, c := range clients {
		phases := store.PhasesForClient(c.ID)
		for _, p := range phases {
			if ComputePhaseProgress(p).Status != model.PhaseCompleted {
				m.OngoingEngagements++
				break
			}
		}
		for _, p := range phases {
			for i := range p.Deliverables {
				if p.Deliverables[i].Status == model.DeliverableDelivered {
					m.DeliveredDocuments++
				}
			}
		}
	}

	m.SurveysCompleted = len(store.SurveyResponses())
	for _, w := range store.Workshops() {
		if w.Status == model.WorkshopCompleted {
			m.WorkshopsDelivered++
		}
	}
	return m
}
