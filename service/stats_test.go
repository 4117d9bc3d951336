package service

import (
	"testing"

	"github.com/MatthewMangion/quantumblack-ai-platform/model"
)

func TestTotalInvestment(t *testing.T) {
	tests := []struct {
		name        string
		investments []string
		expected    string
	}{
		{"simple sum", []string{"£12,000", "£8,000"}, "£20,000"},
		{"open amount marks the total", []string{"£12,000", "£8,000", "TBD"}, "£20,000+"},
		{"all open", []string{"TBD", "TBD"}, "TBD"},
		{"no phases", nil, "TBD"},
		{"unparseable labels count as zero", []string{"contact us", "£5,000"}, "£5,000"},
		{"only unparseable labels", []string{"contact us"}, "TBD"},
		{"euro symbol stripped too", []string{"€1,500"}, "£1,500"},
		{"trailing text ignored", []string{"£9,000 per phase"}, "£9,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var phases []*model.EngagementPhase
			for _, inv := range tt.investments {
				phases = append(phases, &model.EngagementPhase{Investment: inv})
			}
			if got := totalInvestment(phases); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestComputeClientStats(t *testing.T) {
	phases := []*model.EngagementPhase{
		{
			Investment: "£12,000",
			Activities: []model.PhaseActivity{
				{Status: model.ActivityCompleted},
				{Status: model.ActivityCompleted},
			},
			Deliverables: []model.Deliverable{
				{Status: model.DeliverableDelivered},
				{Status: model.DeliverableDelivered},
			},
		},
		{
			Investment: "£8,000",
			Activities: []model.PhaseActivity{
				{Status: model.ActivityInProgress},
				{Status: model.ActivityNotStarted},
				{Status: model.ActivityNotIncluded},
			},
			Deliverables: []model.Deliverable{
				{Status: model.DeliverableInProgress},
				{Status: model.DeliverableNotIncluded},
			},
		},
	}

	stats := ComputeClientStats(phases)

	if stats.TotalDeliverables != 3 {
		t.Errorf("Expected 3 deliverables, got %d", stats.TotalDeliverables)
	}
	if stats.DeliveredCount != 2 {
		t.Errorf("Expected 2 delivered, got %d", stats.DeliveredCount)
	}
	if stats.TotalActivities != 4 {
		t.Errorf("Expected 4 activities, got %d", stats.TotalActivities)
	}
	if stats.CompletedActivities != 2 {
		t.Errorf("Expected 2 completed activities, got %d", stats.CompletedActivities)
	}
	if stats.TotalInvestment != "£20,000" {
		t.Errorf("Expected total investment £20,000, got %s", stats.TotalInvestment)
	}
	// Phase one is 100%, phase two is 0%.
	if stats.OverallProgress != 50 {
		t.Errorf("Expected overall progress 50, got %d", stats.OverallProgress)
	}
}

func TestComputeClientStatsEmpty(t *testing.T) {
	stats := ComputeClientStats(nil)

	if stats.TotalDeliverables != 0 || stats.TotalActivities != 0 {
		t.Error("Expected zero counts for empty phase set")
	}
	if stats.TotalInvestment != "TBD" {
		t.Errorf("Expected TBD investment, got %s", stats.TotalInvestment)
	}
	if stats.OverallProgress != 0 {
		t.Errorf("Expected zero progress, got %d", stats.OverallProgress)
	}
}

func TestParseInvestment(t *testing.T) {
	tests := []struct {
		label    string
		expected float64
	}{
		{"£12,000", 12000},
		{"€1,500.50", 1500.50},
		{"8000", 8000},
		{"  £6,000  ", 6000},
		{"£9,000 per phase", 9000},
		{"contact us", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := parseInvestment(tt.label); got != tt.expected {
			t.Errorf("parseInvestment(%q): expected %v, got %v", tt.label, tt.expected, got)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{500, "500"},
		{20000, "20,000"},
		{1234567, "1,234,567"},
		{1500.5, "1,500.5"},
	}

	for _, tt := range tests {
		if got := groupThousands(tt.value); got != tt.expected {
			t.Errorf("groupThousands(%v): expected %q, got %q", tt.value, tt.expected, got)
		}
	}
}
