package service

import (
	"math"

	"github.com/MatthewMangion/quantumblack-ai-platform/model"
)

// PhaseProgress is the derived completion state of an engagement phase.
type PhaseProgress struct {
	Progress int    `json:"progress"`
	Status   string `json:"status"`
}

// ComputePhaseProgress derives a phase's progress percentage and status
// from its activities and deliverables. Items marked not_included are out
// of the contracted scope and never affect the denominator. A phase with
// nothing in scope counts as complete. The stored Status/Progress fields
// on the phase are seed data and are ignored.
func ComputePhaseProgress(phase *model.EngagementPhase) PhaseProgress {
	var total, done int
	var activityInProgress, deliverableActive bool

	for i := range phase.Activities {
		a := &phase.Activities[i]
		if a.Status == model.ActivityNotIncluded {
			continue
		}
		total++
		switch a.Status {
		case model.ActivityCompleted:
			done++
		case model.ActivityInProgress:
			activityInProgress = true
		}
	}
	for i := range phase.Deliverables {
		d := &phase.Deliverables[i]
		if d.Status == model.DeliverableNotIncluded {
			continue
		}
		total++
		switch d.Status {
		case model.DeliverableDelivered:
			done++
		case model.DeliverableInProgress, model.DeliverableInReview:
			deliverableActive = true
		}
	}

	if total == 0 {
		// An empty phase is vacuously complete.
		return PhaseProgress{Progress: 100, Status: model.PhaseCompleted}
	}

	progress := int(math.Round(float64(done) / float64(total) * 100))

	switch {
	case progress == 100:
		return PhaseProgress{Progress: progress, Status: model.PhaseCompleted}
	case done > 0 || activityInProgress || deliverableActive:
		return PhaseProgress{Progress: progress, Status: model.PhaseInProgress}
	default:
		return PhaseProgress{Progress: progress, Status: model.PhaseNotStarted}
	}
}
