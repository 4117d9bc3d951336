package service

import (
	"math"
	"sort"

	"github.com/MatthewMangion/quantumblack-ai-platform/model"
)

// DepartmentReadiness is one department's slice of the readiness survey.
type DepartmentReadiness struct {
	Department string  `json:"department"`
	Responses  int     `json:"responses"`
	AvgScore   float64 `json:"avgScore"`
}

// ReadinessStats aggregates the AI readiness survey for the discovery
// dashboard.
type ReadinessStats struct {
	TotalResponses int                   `json:"totalResponses"`
	ResponseRate   int                   `json:"responseRate"` // percent of invited population
	AvgReadiness   float64               `json:"avgReadiness"` // 1-5, one decimal
	ByDepartment   []DepartmentReadiness `json:"byDepartment"`
}

// ComputeReadinessStats aggregates responses over the readiness likert
// question. Responses missing that answer (or answering with a different
// type) contribute zero to the averages, matching how the survey tooling
// treats partial submissions. invited is the surveyed population size used
// for the response rate; zero disables the rate.
func ComputeReadinessStats(responses []*model.SurveyResponse, questionID string, invited int) ReadinessStats {
	stats := ReadinessStats{TotalResponses: len(responses)}
	if len(responses) == 0 {
		return stats
	}

	byDept := make(map[string][]int)
	var sum int
	for _, r := range responses {
		score := r.Likert(questionID)
		sum += score
		byDept[r.Department] = append(byDept[r.Department], score)
	}
	stats.AvgReadiness = roundTo1(float64(sum) / float64(len(responses)))

	depts := make([]string, 0, len(byDept))
	for d := range byDept {
		depts = append(depts, d)
	}
	sort.Strings(depts)
	for _, d := range depts {
		scores := byDept[d]
		var deptSum int
		for _, s := range scores {
			deptSum += s
		}
		stats.ByDepartment = append(stats.ByDepartment, DepartmentReadiness{
			Department: d,
			Responses:  len(scores),
			AvgScore:   roundTo1(float64(deptSum) / float64(len(scores))),
		})
	}

	if invited > 0 {
		stats.ResponseRate = int(math.Round(float64(len(responses)) / float64(invited) * 100))
	}
	return stats
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
