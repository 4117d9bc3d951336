package service

import (
	"testing"

	"github.com/MatthewMangion/quantumblack-ai-platform/model"
)

func TestComputeWorkshopStats(t *testing.T) {
	workshops := []*model.Workshop{
		{Status: model.WorkshopUpcoming, Enrolled: 22},
		{Status: model.WorkshopUpcoming, Enrolled: 28},
		{Status: model.WorkshopCompleted, Enrolled: 35},
		{Status: model.WorkshopCancelled, Enrolled: 5},
	}

	stats := ComputeWorkshopStats(workshops)

	if stats.Upcoming != 2 {
		t.Errorf("Expected 2 upcoming, got %d", stats.Upcoming)
	}
	if stats.Completed != 1 {
		t.Errorf("Expected 1 completed, got %d", stats.Completed)
	}
	if stats.TotalEnrolled != 90 {
		t.Errorf("Expected 90 enrolled, got %d", stats.TotalEnrolled)
	}
}

func TestCapacityPercent(t *testing.T) {
	tests := []struct {
		capacity int
		enrolled int
		expected int
	}{
		{25, 22, 88},
		{30, 30, 100},
		{20, 0, 0},
		{0, 10, 0},
		{3, 1, 33},
	}

	for _, tt := range tests {
		w := &model.Workshop{Capacity: tt.capacity, Enrolled: tt.enrolled}
		if got := CapacityPercent(w); got != tt.expected {
			t.Errorf("CapacityPercent(%d/%d): expected %d, got %d",
				tt.enrolled, tt.capacity, tt.expected, got)
		}
	}
}

func TestComputeDashboardMetrics(t *testing.T) {
	m := ComputeDashboardMetrics(NewSeededStore())

	if m.ActiveClients != 3 {
		t.Errorf("Expected 3 active clients, got %d", m.ActiveClients)
	}
	// Every seeded client still has unfinished phases.
	if m.OngoingEngagements != 3 {
		t.Errorf("Expected 3 ongoing engagements, got %d", m.OngoingEngagements)
	}
	if m.SurveysCompleted != 10 {
		t.Errorf("Expected 10 surveys, got %d", m.SurveysCompleted)
	}
	if m.WorkshopsDelivered != 1 {
		t.Errorf("Expected 1 delivered workshop, got %d", m.WorkshopsDelivered)
	}
	// c1 has 6 delivered deliverables, c2 has 2.
	if m.DeliveredDocuments != 8 {
		t.Errorf("Expected 8 delivered documents, got %d", m.DeliveredDocuments)
	}
}

func TestComputeDashboardMetricsEmpty(t *testing.T) {
	m := ComputeDashboardMetrics(NewEngagementStore())

	if m.ActiveClients != 0 || m.OngoingEngagements != 0 || m.DeliveredDocuments != 0 {
		t.Errorf("Expected zero metrics for empty store, got %+v", m)
	}
}
