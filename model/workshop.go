package model

// Workshop status constants
const (
	WorkshopUpcoming   = "upcoming"
	WorkshopInProgress = "in_progress"
	WorkshopCompleted  = "completed"
	WorkshopCancelled  = "cancelled"
)

// WorkshopAttendee is a registered participant of a training workshop.
type WorkshopAttendee struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Department    string  `json:"department"`
	Attended      bool    `json:"attended"`
	FeedbackScore float64 `json:"feedbackScore,omitempty"`
	FeedbackNotes string  `json:"feedbackNotes,omitempty"`
}

// Workshop is a scheduled training session delivered by the consultancy.
type Workshop struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Date        string             `json:"date"`
	Duration    string             `json:"duration"`
	Capacity    int                `json:"capacity"`
	Enrolled    int                `json:"enrolled"`
	Instructor  string             `json:"instructor"`
	Status      string             `json:"status"`
	Attendees   []WorkshopAttendee `json:"attendees"`
}
