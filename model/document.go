package model

// ClientDocument categories
const (
	CategoryDeliverable  = "deliverable"
	CategoryMeetingNotes = "meeting_notes"
	CategoryReference    = "reference"
	CategoryReport       = "report"
	CategoryTemplate     = "template"
)

// ClientDocument is an uploaded file attached to a client workspace. The
// file content is embedded in Data as a base64 data URI, which makes the
// record self-describing and lets the whole collection round-trip through
// the durable document store as plain JSON.
type ClientDocument struct {
	ID         string `json:"id"`
	ClientID   string `json:"clientId"`
	Name       string `json:"name"`
	Type       string `json:"type"` // MIME type
	Size       int64  `json:"size"` // original byte size
	Data       string `json:"data"` // data URI, base64 encoded
	UploadedAt string `json:"uploadedAt"`
	Category   string `json:"category"`
}

// ValidDocumentCategory reports whether s is a recognised document category.
func ValidDocumentCategory(s string) bool {
	switch s {
	case CategoryDeliverable, CategoryMeetingNotes, CategoryReference, CategoryReport, CategoryTemplate:
		return true
	}
	return false
}
