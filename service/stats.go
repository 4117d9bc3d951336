package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/MatthewMangion/quantumblack-ai-platform/model"
)

// ClientStats is the per-client rollup shown on the engagement dashboard.
// All counts cover included (non not_included) items only.
type ClientStats struct {
	TotalDeliverables   int    `json:"totalDeliverables"`
	DeliveredCount      int    `json:"deliveredCount"`
	TotalActivities     int    `json:"totalActivities"`
	CompletedActivities int    `json:"completedActivities"`
	TotalInvestment     string `json:"totalInvestment"`
	OverallProgress     int    `json:"overallProgress"`
}

// ComputeClientStats derives the rollup for one client's phases. It is a
// read-only derivation and must be recomputed whenever the phase set
// changes.
func ComputeClientStats(phases []*model.EngagementPhase) ClientStats {
	var stats ClientStats

	for _, p := range phases {
		for i := range p.Deliverables {
			if p.Deliverables[i].Status == model.DeliverableNotIncluded {
				continue
			}
			stats.TotalDeliverables++
			if p.Deliverables[i].Status == model.DeliverableDelivered {
				stats.DeliveredCount++
			}
		}
		for i := range p.Activities {
			if p.Activities[i].Status == model.ActivityNotIncluded {
				continue
			}
			stats.TotalActivities++
			if p.Activities[i].Status == model.ActivityCompleted {
				stats.CompletedActivities++
			}
		}
	}

	stats.TotalInvestment = totalInvestment(phases)

	if len(phases) > 0 {
		var sum int
		for _, p := range phases {
			sum += ComputePhaseProgress(p).Progress
		}
		stats.OverallProgress = int(math.Round(float64(sum) / float64(len(phases))))
	}

	return stats
}

// totalInvestment sums the numeric investment labels across phases. Labels
// containing "TBD" are excluded from the sum but mark the result as open,
// rendered as a "+" suffix. A zero sum renders as the literal "TBD".
func totalInvestment(phases []*model.EngagementPhase) string {
	var sum float64
	var hasTBD bool
	for _, p := range phases {
		if strings.Contains(p.Investment, "TBD") {
			hasTBD = true
			continue
		}
		sum += parseInvestment(p.Investment)
	}

	if sum <= 0 {
		return "TBD"
	}
	out := "£" + groupThousands(sum)
	if hasTBD {
		out += "+"
	}
	return out
}

// parseInvestment extracts the numeric value from a currency label such as
// "£12,000". Currency symbols and thousands separators are stripped, then
// the leading numeric prefix is parsed; anything unparseable counts as 0.
func parseInvestment(label string) float64 {
	s := strings.NewReplacer("£", "", "€", "", ",", "").Replace(label)
	s = strings.TrimSpace(s)

	end := 0
	seenDot := false
	for end < len(s) {
		ch := s[end]
		if ch >= '0' && ch <= '9' {
			end++
			continue
		}
		if ch == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// groupThousands renders v with comma separators, e.g. 20000 -> "20,000".
func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	n := len(intPart)
	for i, ch := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
