package service

import (
	"testing"

	"github.com/MatthewMangion/quantumblack-ai-platform/model"
)

func TestComputePhaseProgress(t *testing.T) {
	tests := []struct {
		name             string
		activities       []string
		deliverables     []string
		expectedProgress int
		expectedStatus   string
	}{
		{
			name:             "empty phase is complete",
			activities:       nil,
			deliverables:     nil,
			expectedProgress: 100,
			expectedStatus:   model.PhaseCompleted,
		},
		{
			name:             "all excluded counts as complete",
			activities:       []string{model.ActivityNotIncluded},
			deliverables:     []string{model.DeliverableNotIncluded},
			expectedProgress: 100,
			expectedStatus:   model.PhaseCompleted,
		},
		{
			name:             "everything done",
			activities:       []string{model.ActivityCompleted, model.ActivityCompleted},
			deliverables:     []string{model.DeliverableDelivered},
			expectedProgress: 100,
			expectedStatus:   model.PhaseCompleted,
		},
		{
			name:             "mixed progress",
			activities:       []string{model.ActivityCompleted, model.ActivityInProgress, model.ActivityNotStarted},
			deliverables:     []string{model.DeliverableDelivered, model.DeliverableNotStarted},
			expectedProgress: 40,
			expectedStatus:   model.PhaseInProgress,
		},
		{
			name:             "in progress with nothing done yet",
			activities:       []string{model.ActivityInProgress, model.ActivityNotStarted},
			deliverables:     nil,
			expectedProgress: 0,
			expectedStatus:   model.PhaseInProgress,
		},
		{
			name:             "deliverable in review marks phase active",
			activities:       []string{model.ActivityNotStarted},
			deliverables:     []string{model.DeliverableInReview},
			expectedProgress: 0,
			expectedStatus:   model.PhaseInProgress,
		},
		{
			name:             "nothing started",
			activities:       []string{model.ActivityNotStarted, model.ActivityUpcoming},
			deliverables:     []string{model.DeliverableNotStarted},
			expectedProgress: 0,
			expectedStatus:   model.PhaseNotStarted,
		},
		{
			name:             "excluded items do not dilute the percentage",
			activities:       []string{model.ActivityCompleted, model.ActivityNotIncluded},
			deliverables:     []string{model.DeliverableNotIncluded},
			expectedProgress: 100,
			expectedStatus:   model.PhaseCompleted,
		},
		{
			name:             "rounding to nearest percent",
			activities:       []string{model.ActivityCompleted, model.ActivityNotStarted, model.ActivityNotStarted},
			deliverables:     nil,
			expectedProgress: 33,
			expectedStatus:   model.PhaseInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase := &model.EngagementPhase{ID: "ep-test-1"}
			for i, s := range tt.activities {
				phase.Activities = append(phase.Activities, model.PhaseActivity{
					ID: "a-test-1-" + string(rune('1'+i)), Status: s,
				})
			}
			for i, s := range tt.deliverables {
				phase.Deliverables = append(phase.Deliverables, model.Deliverable{
					ID: "d-test-1-" + string(rune('1'+i)), Status: s,
				})
			}

			got := ComputePhaseProgress(phase)
			if got.Progress != tt.expectedProgress {
				t.Errorf("Expected progress %d, got %d", tt.expectedProgress, got.Progress)
			}
			if got.Status != tt.expectedStatus {
				t.Errorf("Expected status %s, got %s", tt.expectedStatus, got.Status)
			}
		})
	}
}

func TestComputePhaseProgressIgnoresStoredFields(t *testing.T) {
	phase := &model.EngagementPhase{
		Status:   model.PhaseCompleted,
		Progress: 100,
		Activities: []model.PhaseActivity{
			{ID: "a1", Status: model.ActivityNotStarted},
		},
	}

	got := ComputePhaseProgress(phase)
	if got.Status != model.PhaseNotStarted {
		t.Errorf("Expected derived status not_started, got %s", got.Status)
	}
	if got.Progress != 0 {
		t.Errorf("Expected derived progress 0, got %d", got.Progress)
	}
}
