package model

// Activity status constants
const (
	ActivityCompleted   = "completed"
	ActivityInProgress  = "in_progress"
	ActivityUpcoming    = "upcoming"
	ActivityNotStarted  = "not_started"
	ActivityNotIncluded = "not_included"
)

// Deliverable status constants
const (
	DeliverableNotStarted  = "not_started"
	DeliverableInProgress  = "in_progress"
	DeliverableInReview    = "in_review"
	DeliverableDelivered   = "delivered"
	DeliverableNotIncluded = "not_included"
)

// Derived phase status constants
const (
	PhaseCompleted  = "completed"
	PhaseInProgress = "in_progress"
	PhaseNotStarted = "not_started"
)

// PhaseActivity is a unit of work within an engagement phase. Status
// transitions are unrestricted; CompletedDate is stamped when an activity
// moves to completed and is never cleared afterwards.
type PhaseActivity struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	CompletedDate string `json:"completedDate,omitempty"`
}

// Deliverable is a client-facing output of a phase, tracked to a status
// and due date. DeliveredDate follows the same stamping rule as
// PhaseActivity.CompletedDate, keyed on the delivered status.
type Deliverable struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	PhaseID       string `json:"phaseId"`
	Status        string `json:"status"`
	DueDate       string `json:"dueDate"`
	DeliveredDate string `json:"deliveredDate,omitempty"`
	DocumentID    string `json:"documentId,omitempty"`
}

// EngagementPhase is a discrete stage of a client engagement. The stored
// Status and Progress fields are seed data only; current values are always
// derived from the activities and deliverables.
type EngagementPhase struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"clientId"`
	PhaseNumber  int             `json:"phaseNumber"`
	Title        string          `json:"title"`
	Subtitle     string          `json:"subtitle"`
	Timeline     string          `json:"timeline"`   // free text, may be "TBD"
	Investment   string          `json:"investment"` // currency label or "TBD"
	Status       string          `json:"status"`
	Progress     int             `json:"progress"`
	Activities   []PhaseActivity `json:"activities"`
	Deliverables []Deliverable   `json:"deliverables"`
	KeyServices  []string        `json:"keyServices"`
}

// ValidActivityStatus reports whether s is a recognised activity status.
func ValidActivityStatus(s string) bool {
	switch s {
	case ActivityCompleted, ActivityInProgress, ActivityUpcoming, ActivityNotStarted, ActivityNotIncluded:
		return true
	}
	return false
}

// ValidDeliverableStatus reports whether s is a recognised deliverable status.
func ValidDeliverableStatus(s string) bool {
	switch s {
	case DeliverableNotStarted, DeliverableInProgress, DeliverableInReview, DeliverableDelivered, DeliverableNotIncluded:
		return true
	}
	return false
}
