package model

// Survey question types
const (
	QuestionLikert         = "likert"
	QuestionMultipleChoice = "multiple_choice"
	QuestionOpenText       = "open_text"
	QuestionYesNo          = "yes_no"
)

// SurveyQuestion is a single question in the AI readiness survey.
type SurveyQuestion struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Category string   `json:"category"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

// Answer is one respondent answer, a tagged union over the question types.
// Each variant serialises as its bare value (number, string list, string
// or bool), matching the shape the survey tooling produces.
type Answer interface {
	answer()
}

// LikertAnswer is a 1-5 scale response.
type LikertAnswer int

// ChoiceAnswer is a multiple-choice selection.
type ChoiceAnswer []string

// TextAnswer is a free-text response.
type TextAnswer string

// BoolAnswer is a yes/no response.
type BoolAnswer bool

func (LikertAnswer) answer() {}
func (ChoiceAnswer) answer() {}
func (TextAnswer) answer()   {}
func (BoolAnswer) answer()   {}

// SurveyResponse is one submitted survey, answers keyed by question id.
type SurveyResponse struct {
	ID          string            `json:"id"`
	SurveyID    string            `json:"surveyId"`
	Respondent  string            `json:"respondent,omitempty"`
	Department  string            `json:"department"`
	Answers     map[string]Answer `json:"answers"`
	SubmittedAt string            `json:"submittedAt"`
}

// Likert returns the likert value for question id, or 0 when the question
// was not answered or answered with a different type.
func (r *SurveyResponse) Likert(questionID string) int {
	if v, ok := r.Answers[questionID].(LikertAnswer); ok {
		return int(v)
	}
	return 0
}
