package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/MatthewMangion/quantumblack-ai-platform/model"
	"github.com/google/uuid"
)

// PhaseTemplate is one of the fixed engagement phase offerings presented
// during client intake. Services are the menu an intake can pick from;
// each selected service becomes a phase activity.
type PhaseTemplate struct {
	Key      string   `json:"key"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Services []string `json:"services"`
}

// PhaseTemplates is the standard engagement structure, in delivery order.
var PhaseTemplates = []PhaseTemplate{
	{
		Key:      "discovery",
		Title:    "Discovery & Foundation",
		Subtitle: "Assess current AI readiness, gather stakeholder insights, and establish a baseline",
		Services: []string{
			"Leadership Interviews",
			"AI Readiness Survey",
			"Stakeholder Discovery Workshops",
			"Technology & Data Landscape Review",
		},
	},
	{
		Key:      "strategy",
		Title:    "Strategy & Roadmap Development",
		Subtitle: "Develop AI strategy, internal policy framework, and prioritised use case roadmap",
		Services: []string{
			"AI Strategy Development",
			"Internal AI Usage Policy",
			"Use Case Prioritisation",
			"C-Suite Alignment Workshop",
		},
	},
	{
		Key:      "pilot",
		Title:    "Pilot & Implementation Planning",
		Subtitle: "Define pilot projects, build change management plan, and design education programme",
		Services: []string{
			"Pilot Scoping",
			"Change Management Planning",
			"Education Programme Design",
			"Leadership Workshops",
		},
	},
	{
		Key:      "execution",
		Title:    "Execution & Governance",
		Subtitle: "Launch pilots, establish AI governance committee, and roll out education programme",
		Services: []string{
			"Pilot Execution Support",
			"AI Governance Setup",
			"Training Delivery",
			"Performance Monitoring",
		},
	},
}

// IntakeContact is the primary contact captured at intake.
type IntakeContact struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// IntakeRequest is a new-client onboarding request: the client profile
// plus the selected services per phase template, keyed by template key.
type IntakeRequest struct {
	Name           string              `json:"name" binding:"required"`
	Industry       string              `json:"industry" binding:"required"`
	Size           string              `json:"size" binding:"required"`
	Contact        IntakeContact       `json:"contact" binding:"required"`
	StrategicGoals []string            `json:"strategicGoals"`
	Phases         map[string][]string `json:"phases"`
}

// BuildEngagement turns an intake request into a client record and its
// phase batch. Templates with no selected services are skipped; phase
// numbers are sequential over the phases actually emitted. Timeline and
// investment start as "TBD" and are negotiated later.
func BuildEngagement(req *IntakeRequest) (*model.Client, []*model.EngagementPhase, error) {
	for key := range req.Phases {
		if templateByKey(key) == nil {
			return nil, nil, fmt.Errorf("unknown phase template %q", key)
		}
	}

	clientID := newID("c")
	client := &model.Client{
		ID:       clientID,
		Name:     strings.TrimSpace(req.Name),
		Industry: strings.TrimSpace(req.Industry),
		Size:     strings.TrimSpace(req.Size),
		Contacts: []model.Contact{
			{
				ID:        newID("ct"),
				Name:      strings.TrimSpace(req.Contact.Name),
				Role:      strings.TrimSpace(req.Contact.Role),
				Email:     strings.TrimSpace(req.Contact.Email),
				IsPrimary: true,
			},
		},
		CreatedAt: isoToday(),
	}
	for _, g := range req.StrategicGoals {
		if g = strings.TrimSpace(g); g != "" {
			client.StrategicGoals = append(client.StrategicGoals, g)
		}
	}

	var phases []*model.EngagementPhase
	phaseNum := 1
	for _, tmpl := range PhaseTemplates {
		services := req.Phases[tmpl.Key]
		if len(services) == 0 {
			continue
		}
		for _, svc := range services {
			if !tmpl.offers(svc) {
				return nil, nil, fmt.Errorf("phase template %q does not offer service %q", tmpl.Key, svc)
			}
		}

		phase := &model.EngagementPhase{
			ID:          fmt.Sprintf("ep-%s-%d", clientID, phaseNum),
			ClientID:    clientID,
			PhaseNumber: phaseNum,
			Title:       tmpl.Title,
			Subtitle:    tmpl.Subtitle,
			Timeline:    "TBD",
			Investment:  "TBD",
			Status:      model.PhaseNotStarted,
			Progress:    0,
			KeyServices: services,
		}
		for i, svc := range services {
			phase.Activities = append(phase.Activities, model.PhaseActivity{
				ID:     fmt.Sprintf("a-%s-%d-%d", clientID, phaseNum, i+1),
				Title:  svc,
				Status: model.ActivityNotStarted,
			})
		}
		phases = append(phases, phase)
		phaseNum++
	}

	return client, phases, nil
}

func (t *PhaseTemplate) offers(service string) bool {
	for _, s := range t.Services {
		if s == service {
			return true
		}
	}
	return false
}

func templateByKey(key string) *PhaseTemplate {
	for i := range PhaseTemplates {
		if PhaseTemplates[i].Key == key {
			return &PhaseTemplates[i]
		}
	}
	return nil
}

// newID builds a time-based identifier with a random suffix so that two
// intakes within the same millisecond cannot collide.
func newID(prefix string) string {
	return fmt.Sprintf("%s%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}
