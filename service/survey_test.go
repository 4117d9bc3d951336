package service

import (
	"testing"

	"github.com/MatthewMangion/quantumblack-ai-platform/model"
)

func likertResponse(id, dept string, score int) *model.SurveyResponse {
	return &model.SurveyResponse{
		ID:         id,
		Department: dept,
		Answers:    map[string]model.Answer{"sq4": model.LikertAnswer(score)},
	}
}

func TestComputeReadinessStats(t *testing.T) {
	responses := []*model.SurveyResponse{
		likertResponse("r1", "Engineering", 4),
		likertResponse("r2", "Engineering", 5),
		likertResponse("r3", "Marketing", 2),
		likertResponse("r4", "Sales", 3),
	}

	stats := ComputeReadinessStats(responses, "sq4", 100)

	if stats.TotalResponses != 4 {
		t.Errorf("Expected 4 responses, got %d", stats.TotalResponses)
	}
	if stats.ResponseRate != 4 {
		t.Errorf("Expected 4%% response rate, got %d", stats.ResponseRate)
	}
	if stats.AvgReadiness != 3.5 {
		t.Errorf("Expected average 3.5, got %v", stats.AvgReadiness)
	}

	if len(stats.ByDepartment) != 3 {
		t.Fatalf("Expected 3 departments, got %d", len(stats.ByDepartment))
	}
	// Departments are sorted alphabetically.
	if stats.ByDepartment[0].Department != "Engineering" {
		t.Errorf("Expected Engineering first, got %s", stats.ByDepartment[0].Department)
	}
	if stats.ByDepartment[0].Responses != 2 || stats.ByDepartment[0].AvgScore != 4.5 {
		t.Errorf("Unexpected Engineering rollup: %+v", stats.ByDepartment[0])
	}
	if stats.ByDepartment[1].Department != "Marketing" || stats.ByDepartment[1].AvgScore != 2 {
		t.Errorf("Unexpected Marketing rollup: %+v", stats.ByDepartment[1])
	}
}

func TestComputeReadinessStatsMissingAnswers(t *testing.T) {
	responses := []*model.SurveyResponse{
		likertResponse("r1", "Engineering", 4),
		{
			ID:         "r2",
			Department: "Engineering",
			Answers:    map[string]model.Answer{"sq5": model.TextAnswer("no concerns")},
		},
	}

	stats := ComputeReadinessStats(responses, "sq4", 0)

	// The partial submission counts as a response but scores zero.
	if stats.TotalResponses != 2 {
		t.Errorf("Expected 2 responses, got %d", stats.TotalResponses)
	}
	if stats.AvgReadiness != 2 {
		t.Errorf("Expected average 2, got %v", stats.AvgReadiness)
	}
	if stats.ResponseRate != 0 {
		t.Errorf("Expected disabled response rate, got %d", stats.ResponseRate)
	}
}

func TestComputeReadinessStatsEmpty(t *testing.T) {
	stats := ComputeReadinessStats(nil, "sq4", 150)

	if stats.TotalResponses != 0 || stats.AvgReadiness != 0 || len(stats.ByDepartment) != 0 {
		t.Errorf("Expected zero-value stats, got %+v", stats)
	}
}

func TestResponseLikert(t *testing.T) {
	r := &model.SurveyResponse{
		Answers: map[string]model.Answer{
			"sq1": model.LikertAnswer(4),
			"sq2": model.BoolAnswer(true),
			"sq3": model.ChoiceAnswer{"ChatGPT"},
		},
	}

	if got := r.Likert("sq1"); got != 4 {
		t.Errorf("Expected 4, got %d", got)
	}
	// Non-likert and missing answers both read as zero.
	if got := r.Likert("sq2"); got != 0 {
		t.Errorf("Expected 0 for bool answer, got %d", got)
	}
	if got := r.Likert("sq9"); got != 0 {
		t.Errorf("Expected 0 for missing answer, got %d", got)
	}
}
