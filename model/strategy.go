package model

// UseCase status constants
const (
	UseCaseIdentified = "identified"
	UseCaseEvaluated  = "evaluated"
	UseCaseApproved   = "approved"
	UseCaseInProgress = "in_progress"
	UseCaseCompleted  = "completed"
)

// UseCase complexity descriptors
const (
	ComplexityLow    = "low"
	ComplexityMedium = "medium"
	ComplexityHigh   = "high"
)

// UseCase is a candidate AI application scored by impact and effort for
// prioritisation. Impact and Effort are 0-10.
type UseCase struct {
	ID          string   `json:"id"`
	ClientID    string   `json:"clientId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Department  string   `json:"department"`
	Industry    string   `json:"industry"`
	Complexity  string   `json:"complexity"`
	Impact      int      `json:"impact"`
	Effort      int      `json:"effort"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
}

// StrategyDocument kinds
const (
	DocTypeAIStrategy     = "ai_strategy"
	DocTypeUsagePolicy    = "usage_policy"
	DocTypeEducationPlan  = "education_plan"
	DocTypeUseCaseRoadmap = "use_case_roadmap"
)

// StrategyDocument status constants
const (
	DocDraft    = "draft"
	DocReview   = "review"
	DocApproved = "approved"
)

// StrategyDocument is a consultancy-authored document (strategy, policy,
// education plan or roadmap). Content editing is out of scope; only the
// status moves after seeding.
type StrategyDocument struct {
	ID           string `json:"id"`
	ClientID     string `json:"clientId"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	Content      string `json:"content"`
	Version      int    `json:"version"`
	Status       string `json:"status"`
	LastModified string `json:"lastModified"`
	CreatedBy    string `json:"createdBy"`
}

// ValidUseCaseStatus reports whether s is a recognised use case status.
func ValidUseCaseStatus(s string) bool {
	switch s {
	case UseCaseIdentified, UseCaseEvaluated, UseCaseApproved, UseCaseInProgress, UseCaseCompleted:
		return true
	}
	return false
}

// ValidStrategyDocumentStatus reports whether s is a recognised document status.
func ValidStrategyDocumentStatus(s string) bool {
	switch s {
	case DocDraft, DocReview, DocApproved:
		return true
	}
	return false
}
