package service

import "github.com/MatthewMangion/quantumblack-ai-platform/model"

// Readiness survey parameters baked into the seed data.
const (
	// ReadinessQuestionID is the likert question the readiness rollup is
	// computed over.
	ReadinessQuestionID = "sq4"
	// SurveyInvitedCount is the invited population the response rate is
	// measured against.
	SurveyInvitedCount = 150
)

// NewSeededStore builds a store populated with the standard fixture data.
// Every process start begins from this snapshot; only uploaded documents
// survive a restart, through the DocumentStore.
func NewSeededStore() *EngagementStore {
	s := NewEngagementStore()
	s.clients = seedClients()
	s.phases = seedPhases()
	s.useCases = seedUseCases()
	s.strategyDocs = seedStrategyDocuments()
	s.workshops = seedWorkshops()
	s.surveyQuestions = seedSurveyQuestions()
	s.surveyResponses = seedSurveyResponses()
	return s
}

func seedClients() []*model.Client {
	return []*model.Client{
		{
			ID:       "c1",
			Name:     "Meridian Financial Group",
			Industry: "Financial Services",
			Size:     "5,000–10,000 employees",
			Contacts: []model.Contact{
				{ID: "ct1", Name: "Sarah Chen", Role: "CTO", Email: "sarah.chen@meridian.com", IsPrimary: true},
				{ID: "ct2", Name: "James Rodriguez", Role: "VP of Innovation", Email: "james.r@meridian.com"},
			},
			StrategicGoals: []string{
				"Automate compliance reporting",
				"Deploy AI-driven fraud detection",
				"Improve customer onboarding with AI",
			},
			CreatedAt: "2025-06-12",
		},
		{
			ID:       "c2",
			Name:     "NovaCare Health Systems",
			Industry: "Healthcare",
			Size:     "2,000–5,000 employees",
			Contacts: []model.Contact{
				{ID: "ct3", Name: "Dr. Emily Park", Role: "Chief Medical Officer", Email: "epark@novacare.org", IsPrimary: true},
				{ID: "ct4", Name: "Tom Bradley", Role: "IT Director", Email: "tbradley@novacare.org"},
			},
			StrategicGoals: []string{
				"Implement predictive patient scheduling",
				"AI-assisted diagnostics support",
				"Reduce administrative burden with automation",
			},
			CreatedAt: "2025-09-01",
		},
		{
			ID:       "c3",
			Name:     "Atlas Manufacturing Co.",
			Industry: "Manufacturing",
			Size:     "10,000+ employees",
			Contacts: []model.Contact{
				{ID: "ct5", Name: "Michael Torres", Role: "COO", Email: "mtorres@atlasmanuf.com", IsPrimary: true},
			},
			StrategicGoals: []string{
				"Predictive maintenance across production lines",
				"Supply chain optimization with ML",
				"Quality control automation",
			},
			CreatedAt: "2025-11-20",
		},
	}
}

func seedPhases() []*model.EngagementPhase {
	return []*model.EngagementPhase{
		// Meridian Financial Group: strategy phase, most advanced.
		{
			ID: "ep-c1-1", ClientID: "c1", PhaseNumber: 1,
			Title:    "Discovery & Foundation",
			Subtitle: "Assess current AI readiness, gather stakeholder insights, and establish a baseline",
			Timeline: "Jul – Aug 2025", Investment: "£12,000",
			Status: model.PhaseCompleted, Progress: 100,
			Activities: []model.PhaseActivity{
				{ID: "a-c1-1-1", Title: "Leadership Interviews", Description: "1-on-1 interviews with CTO, VP Innovation, and department heads across Risk, Compliance, and Customer Service", Status: model.ActivityCompleted, CompletedDate: "2025-07-25"},
				{ID: "a-c1-1-2", Title: "AI Readiness Survey", Description: "Organisation-wide survey deployed to 350 employees measuring AI literacy, tool usage, and readiness", Status: model.ActivityCompleted, CompletedDate: "2025-08-10"},
				{ID: "a-c1-1-3", Title: "Stakeholder Discovery Workshops", Description: "Interactive sessions with cross-functional teams to map processes and identify quick wins", Status: model.ActivityCompleted, CompletedDate: "2025-08-20"},
				{ID: "a-c1-1-4", Title: "Technology & Data Landscape Review", Description: "Audit of Salesforce, SAP, Snowflake, and Microsoft 365 ecosystem for AI integration readiness", Status: model.ActivityCompleted, CompletedDate: "2025-08-28"},
			},
			Deliverables: []model.Deliverable{
				{ID: "d-c1-1-1", Title: "AI Readiness Report", Description: "Comprehensive maturity assessment covering people, processes, technology, and data foundations", PhaseID: "ep-c1-1", Status: model.DeliverableDelivered, DueDate: "2025-08-30", DeliveredDate: "2025-08-28", DocumentID: "sd-c1-1"},
				{ID: "d-c1-1-2", Title: "Stakeholder Interview Summary", Description: "Synthesised findings from leadership interviews highlighting strategic themes and concerns", PhaseID: "ep-c1-1", Status: model.DeliverableDelivered, DueDate: "2025-08-15", DeliveredDate: "2025-08-12"},
				{ID: "d-c1-1-3", Title: "Technology Audit Report", Description: "Full tech landscape review with gap analysis and AI integration opportunities", PhaseID: "ep-c1-1", Status: model.DeliverableDelivered, DueDate: "2025-08-30", DeliveredDate: "2025-08-30"},
			},
			KeyServices: []string{"Leadership Interviews", "AI Readiness Survey", "Discovery Workshops", "Technology Audit"},
		},
		{
			ID: "ep-c1-2", ClientID: "c1", PhaseNumber: 2,
			Title:    "Strategy & Roadmap Development",
			Subtitle: "Develop the AI strategy, internal policy framework, and prioritised use case roadmap",
			Timeline: "Sep – Nov 2025", Investment: "£8,000",
			Status: model.PhaseCompleted, Progress: 100,
			Activities: []model.PhaseActivity{
				{ID: "a-c1-2-1", Title: "AI Strategy Development", Description: "Crafting a 24-month strategic AI roadmap for fraud detection, compliance, and customer experience", Status: model.ActivityCompleted, CompletedDate: "2025-10-30"},
				{ID: "a-c1-2-2", Title: "Internal AI Usage Policy", Description: "Drafting governance framework covering data handling, approved tools, and compliance with FCA regulations", Status: model.ActivityCompleted, CompletedDate: "2025-11-10"},
				{ID: "a-c1-2-3", Title: "Use Case Prioritisation", Description: "Systematic ranking of 6 AI use cases based on impact, feasibility, and regulatory considerations", Status: model.ActivityCompleted, CompletedDate: "2025-10-15"},
				{ID: "a-c1-2-4", Title: "C-Suite Alignment Workshop", Description: "Strategy validation session with CEO, CTO, and CFO to align on investment priorities", Status: model.ActivityCompleted, CompletedDate: "2025-11-20"},
			},
			Deliverables: []model.Deliverable{
				{ID: "d-c1-2-1", Title: "AI Strategy Document (Draft)", Description: "24-month strategic AI roadmap with vision, pillars, milestones, and investment plan", PhaseID: "ep-c1-2", Status: model.DeliverableDelivered, DueDate: "2025-11-15", DeliveredDate: "2025-11-12"},
				{ID: "d-c1-2-2", Title: "AI Usage Policy", Description: "Internal policy framework covering responsible use, approved tools, and regulatory compliance", PhaseID: "ep-c1-2", Status: model.DeliverableDelivered, DueDate: "2025-11-15", DeliveredDate: "2025-11-14"},
				{ID: "d-c1-2-3", Title: "Prioritised Use Case Matrix", Description: "Ranked list of AI use cases with impact/effort scoring and implementation recommendations", PhaseID: "ep-c1-2", Status: model.DeliverableDelivered, DueDate: "2025-10-31", DeliveredDate: "2025-10-28"},
			},
			KeyServices: []string{"AI Strategy Development", "Policy Framework Design", "Use Case Prioritisation", "C-Suite Alignment"},
		},
		{
			ID: "ep-c1-3", ClientID: "c1", PhaseNumber: 3,
			Title:    "Pilot & Implementation Planning",
			Subtitle: "Define pilot projects, build change management plan, and design the education programme",
			Timeline: "Dec 2025 – Feb 2026", Investment: "£6,000",
			Status: model.PhaseInProgress, Progress: 45,
			Activities: []model.PhaseActivity{
				{ID: "a-c1-3-1", Title: "Fraud Detection Pilot Scoping", Description: "Defining scope, success metrics, and data requirements for the real-time fraud detection ML pilot", Status: model.ActivityInProgress},
				{ID: "a-c1-3-2", Title: "Compliance Automation Pilot Scoping", Description: "NLP-powered regulatory document analysis pilot with Legal and Compliance teams", Status: model.ActivityInProgress},
				{ID: "a-c1-3-3", Title: "Change Management Planning", Description: "Developing communications, training, and adoption support across 5,000+ employees", Status: model.ActivityUpcoming},
				{ID: "a-c1-3-4", Title: "AI Leadership Workshop", Description: "Executive workshop on AI strategy execution and governance responsibilities", Status: model.ActivityUpcoming},
			},
			Deliverables: []model.Deliverable{
				{ID: "d-c1-3-1", Title: "Final AI Strategy & Policy", Description: "Board-approved AI Strategy and Usage Policy documents", PhaseID: "ep-c1-3", Status: model.DeliverableInReview, DueDate: "2026-01-31"},
				{ID: "d-c1-3-2", Title: "Pilot Project Plans", Description: "Detailed implementation plans for fraud detection and compliance automation pilots", PhaseID: "ep-c1-3", Status: model.DeliverableInProgress, DueDate: "2026-02-15"},
				{ID: "d-c1-3-3", Title: "Education Programme Outline", Description: "Tiered AI training programme for executives, managers, and operational staff", PhaseID: "ep-c1-3", Status: model.DeliverableNotStarted, DueDate: "2026-02-28"},
			},
			KeyServices: []string{"Pilot Scoping", "Change Management", "Education Design", "Leadership Workshops"},
		},
		{
			ID: "ep-c1-4", ClientID: "c1", PhaseNumber: 4,
			Title:    "Execution & Governance",
			Subtitle: "Launch pilots, establish AI governance committee, and roll out the education programme",
			Timeline: "Mar – Jun 2026", Investment: "£10,000",
			Status: model.PhaseNotStarted, Progress: 0,
			Activities: []model.PhaseActivity{
				{ID: "a-c1-4-1", Title: "Fraud Detection Pilot Launch", Description: "Deploy ML models for real-time transaction monitoring in a controlled environment", Status: model.ActivityNotStarted},
				{ID: "a-c1-4-2", Title: "AI Governance Committee", Description: "Establish cross-functional governance committee with CTO, CLO, and CISO", Status: model.ActivityNotStarted},
				{ID: "a-c1-4-3", Title: "Education Programme Rollout", Description: "Deliver AI training across all departments starting with leadership tier", Status: model.ActivityNotStarted},
				{ID: "a-c1-4-4", Title: "Performance Monitoring", Description: "Track pilot KPIs, model performance metrics, and business impact indicators", Status: model.ActivityNotStarted},
			},
			Deliverables: []model.Deliverable{
				{ID: "d-c1-4-1", Title: "Pilot Launch Report", Description: "Post-launch assessment of fraud detection pilot with metrics and learnings", PhaseID: "ep-c1-4", Status: model.DeliverableNotStarted, DueDate: "2026-05-31"},
				{ID: "d-c1-4-2", Title: "AI Governance Framework", Description: "Committee charter, decision framework, risk escalation paths, and audit procedures", PhaseID: "ep-c1-4", Status: model.DeliverableNotStarted, DueDate: "2026-04-30"},
				{ID: "d-c1-4-3", Title: "Training Completion Report", Description: "Training delivery records, satisfaction scores, and competency assessments", PhaseID: "ep-c1-4", Status: model.DeliverableNotStarted, DueDate: "2026-06-30"},
			},
			KeyServices: []string{"Pilot Execution Support", "Governance Setup", "Training Delivery", "Performance Monitoring"},
		},

		// NovaCare Health Systems: assessment phase, mid-engagement.
		{
			ID: "ep-c2-1", ClientID: "c2", PhaseNumber: 1,
			Title:    "Discovery & Foundation",
			Subtitle: "Understand healthcare AI landscape, regulatory constraints, and stakeholder priorities",
			Timeline: "Oct – Nov 2025", Investment: "£8,000",
			Status: model.PhaseCompleted, Progress: 100,
			Activities: []model.PhaseActivity{
				{ID: "a-c2-1-1", Title: "Clinical Leadership Interviews", Description: "Interviews with CMO, IT Director, and department heads across clinical and admin functions", Status: model.ActivityCompleted, CompletedDate: "2025-10-25"},
				{ID: "a-c2-1-2", Title: "AI Readiness Survey", Description: "Survey deployed to 2,000+ staff covering AI awareness, clinical workflow understanding, and training needs", Status: model.ActivityCompleted, CompletedDate: "2025-11-08"},
				{ID: "a-c2-1-3", Title: "Clinical Workflow Mapping", Description: "Detailed mapping of patient scheduling, diagnostic, and administrative workflows for AI opportunity identification", Status: model.ActivityCompleted, CompletedDate: "2025-11-15"},
				{ID: "a-c2-1-4", Title: "Healthcare IT Audit", Description: "Review of EHR systems, PACS integration, HL7/FHIR compliance, and data governance practices", Status: model.ActivityCompleted, CompletedDate: "2025-11-20"},
			},
			Deliverables: []model.Deliverable{
				{ID: "d-c2-1-1", Title: "AI Readiness Report", Description: "Healthcare-specific maturity assessment covering clinical workflows, data readiness, and regulatory compliance", PhaseID: "ep-c2-1", Status: model.DeliverableDelivered, DueDate: "2025-11-30", DeliveredDate: "2025-11-28", DocumentID: "sd-c2-1"},
				{ID: "d-c2-1-2", Title: "Clinical Workflow Analysis", Description: "Detailed process maps with AI intervention points across patient scheduling, diagnostics, and admin", PhaseID: "ep-c2-1", Status: model.DeliverableDelivered, DueDate: "2025-11-25", DeliveredDate: "2025-11-22"},
			},
			KeyServices: []string{"Clinical Interviews", "AI Readiness Survey", "Workflow Mapping", "Healthcare IT Audit"},
		},
		{
			ID: "ep-c2-2", ClientID: "c2", PhaseNumber: 2,
			Title:    "Strategy & Roadmap Development",
			Subtitle: "Develop healthcare AI strategy with focus on patient outcomes, operational efficiency, and compliance",
			Timeline: "Dec 2025 – Feb 2026", Investment: "£6,000",
			Status: model.PhaseInProgress, Progress: 30,
			Activities: []model.PhaseActivity{
				{ID: "a-c2-2-1", Title: "Healthcare AI Strategy Development", Description: "Building an AI roadmap aligned with patient safety, clinical efficiency, and NHS/regulatory requirements", Status: model.ActivityInProgress},
				{ID: "a-c2-2-2", Title: "Clinical AI Use Case Prioritisation", Description: "Evaluating patient scheduling, diagnostics support, and admin automation use cases", Status: model.ActivityInProgress},
				{ID: "a-c2-2-3", Title: "Data Governance Framework", Description: "Designing data governance policies for patient data, GDPR compliance, and AI model validation", Status: model.ActivityUpcoming},
				{ID: "a-c2-2-4", Title: "Clinical Board Alignment", Description: "Presenting strategy options to clinical governance board for direction and approval", Status: model.ActivityNotStarted},
			},
			Deliverables: []model.Deliverable{
				{ID: "d-c2-2-1", Title: "Healthcare AI Strategy (Draft)", Description: "AI strategy document covering clinical AI, operational AI, and responsible AI principles", PhaseID: "ep-c2-2", Status: model.DeliverableInProgress, DueDate: "2026-02-15"},
				{ID: "d-c2-2-2", Title: "Use Case Priority Matrix", Description: "Healthcare-specific use case ranking with clinical impact, patient safety, and regulatory considerations", PhaseID: "ep-c2-2", Status: model.DeliverableInProgress, DueDate: "2026-01-31"},
				{ID: "d-c2-2-3", Title: "Data Governance Policy", Description: "Patient data handling framework for AI training, inference, and clinical decision support", PhaseID: "ep-c2-2", Status: model.DeliverableNotStarted, DueDate: "2026-02-28"},
			},
			KeyServices: []string{"AI Strategy Development", "Clinical Use Case Analysis", "Data Governance", "Clinical Board Alignment"},
		},
		{
			ID: "ep-c2-3", ClientID: "c2", PhaseNumber: 3,
			Title:    "Pilot & Implementation Planning",
			Subtitle: "Plan pilot deployments for patient scheduling AI and clinical decision support tools",
			Timeline: "Q2 2026", Investment: "£5,000",
			Status: model.PhaseNotStarted, Progress: 0,
			Activities: []model.PhaseActivity{
				{ID: "a-c2-3-1", Title: "Predictive Scheduling Pilot Design", Description: "Design ML pilot for optimising appointment scheduling and reducing no-show rates", Status: model.ActivityNotStarted},
				{ID: "a-c2-3-2", Title: "Clinical AI Training Programme", Description: "Design training for clinicians on AI-assisted tools, limitations, and responsible use", Status: model.ActivityNotStarted},
				{ID: "a-c2-3-3", Title: "Vendor Assessment", Description: "Evaluate healthcare AI vendors for EHR integration, clinical validation, and regulatory compliance", Status: model.ActivityNotStarted},
			},
			Deliverables: []model.Deliverable{
				{ID: "d-c2-3-1", Title: "Pilot Project Plans", Description: "Implementation plans for scheduling AI pilot with clinical validation criteria", PhaseID: "ep-c2-3", Status: model.DeliverableNotStarted, DueDate: "2026-05-31"},
				{ID: "d-c2-3-2", Title: "Clinical AI Education Plan", Description: "Training programme for clinical and administrative staff on AI tools", PhaseID: "ep-c2-3", Status: model.DeliverableNotStarted, DueDate: "2026-06-15"},
			},
			KeyServices: []string{"Pilot Design", "Clinical Training", "Vendor Assessment", "Regulatory Compliance"},
		},

		// Atlas Manufacturing: discovery phase, early engagement.
		{
			ID: "ep-c3-1", ClientID: "c3", PhaseNumber: 1,
			Title:    "Discovery & Opportunity Scan",
			Subtitle: "Rapid assessment of manufacturing AI opportunities across production, supply chain, and quality",
			Timeline: "Jan – Mar 2026", Investment: "£15,000",
			Status: model.PhaseInProgress, Progress: 25,
			Activities: []model.PhaseActivity{
				{ID: "a-c3-1-1", Title: "Executive Alignment", Description: "Engagement kickoff with COO and leadership team to define scope and success criteria", Status: model.ActivityCompleted, CompletedDate: "2026-01-22"},
				{ID: "a-c3-1-2", Title: "Plant Tour & Interviews", Description: "On-site visits to 3 production facilities for operational assessment and stakeholder interviews", Status: model.ActivityInProgress},
				{ID: "a-c3-1-3", Title: "IoT & Data Infrastructure Review", Description: "Assessment of sensor networks, SCADA systems, MES integration, and data lake capabilities", Status: model.ActivityUpcoming},
				{ID: "a-c3-1-4", Title: "AI Readiness Survey", Description: "Survey across engineering, operations, and quality teams on AI awareness and adoption readiness", Status: model.ActivityNotStarted},
			},
			Deliverables: []model.Deliverable{
				{ID: "d-c3-1-1", Title: "AI Opportunity Assessment", Description: "Rapid scan of AI opportunities across predictive maintenance, supply chain, and quality control", PhaseID: "ep-c3-1", Status: model.DeliverableInProgress, DueDate: "2026-03-15"},
				{ID: "d-c3-1-2", Title: "Technology Landscape Report", Description: "IoT infrastructure review with AI readiness scoring across 3 facilities", PhaseID: "ep-c3-1", Status: model.DeliverableNotStarted, DueDate: "2026-03-31"},
				{ID: "d-c3-1-3", Title: "Executive Summary & Recommendations", Description: "High-level findings with recommended next steps and investment considerations", PhaseID: "ep-c3-1", Status: model.DeliverableNotStarted, DueDate: "2026-04-15"},
			},
			KeyServices: []string{"Executive Alignment", "Plant Assessments", "IoT Infrastructure Review", "AI Readiness Survey"},
		},
		{
			ID: "ep-c3-2", ClientID: "c3", PhaseNumber: 2,
			Title:    "Strategy & Use Case Definition",
			Subtitle: "Develop manufacturing AI strategy focused on predictive maintenance and supply chain optimisation",
			Timeline: "Q2 2026", Investment: "TBD",
			Status: model.PhaseNotStarted, Progress: 0,
			Activities: []model.PhaseActivity{
				{ID: "a-c3-2-1", Title: "Manufacturing AI Strategy", Description: "Build an Industry 4.0 aligned AI strategy covering predictive maintenance, quality, and supply chain", Status: model.ActivityNotStarted},
				{ID: "a-c3-2-2", Title: "Use Case Prioritisation", Description: "Rank manufacturing AI use cases by ROI, technical feasibility, and operational impact", Status: model.ActivityNotStarted},
				{ID: "a-c3-2-3", Title: "Data Pipeline Architecture", Description: "Design data pipelines from IoT sensors to ML models for real-time and batch processing", Status: model.ActivityNotStarted},
			},
			Deliverables: []model.Deliverable{
				{ID: "d-c3-2-1", Title: "Manufacturing AI Strategy", Description: "Strategic roadmap for Industry 4.0 AI adoption across all production facilities", PhaseID: "ep-c3-2", Status: model.DeliverableNotStarted, DueDate: "2026-06-30"},
				{ID: "d-c3-2-2", Title: "Use Case Roadmap", Description: "Prioritised pipeline of manufacturing AI use cases with implementation timeline", PhaseID: "ep-c3-2", Status: model.DeliverableNotStarted, DueDate: "2026-06-30"},
			},
			KeyServices: []string{"AI Strategy Development", "Use Case Prioritisation", "Data Architecture", "Industry 4.0 Advisory"},
		},
	}
}

func seedUseCases() []*model.UseCase {
	return []*model.UseCase{
		{ID: "uc-c1-1", ClientID: "c1", Title: "AI-Powered Fraud Detection", Description: "Real-time ML models to flag suspicious transactions across payment and trading systems.", Department: "Risk & Compliance", Industry: "Financial Services", Complexity: model.ComplexityHigh, Impact: 9, Effort: 8, Status: model.UseCaseApproved, Tags: []string{"ML", "real-time", "fraud"}},
		{ID: "uc-c1-2", ClientID: "c1", Title: "Automated Compliance Reporting", Description: "NLP to extract and summarise regulatory requirements from FCA and PRA publications.", Department: "Legal", Industry: "Financial Services", Complexity: model.ComplexityMedium, Impact: 7, Effort: 5, Status: model.UseCaseApproved, Tags: []string{"NLP", "compliance", "automation"}},
		{ID: "uc-c1-3", ClientID: "c1", Title: "Customer Onboarding Assistant", Description: "Conversational AI for streamlined KYC verification and account setup.", Department: "Customer Service", Industry: "Financial Services", Complexity: model.ComplexityMedium, Impact: 8, Effort: 6, Status: model.UseCaseEvaluated, Tags: []string{"chatbot", "onboarding", "KYC"}},
		{ID: "uc-c1-4", ClientID: "c1", Title: "Microsoft Copilot Rollout", Description: "Organisation-wide deployment of Microsoft Copilot for productivity enhancement.", Department: "All Departments", Industry: "Financial Services", Complexity: model.ComplexityLow, Impact: 6, Effort: 2, Status: model.UseCaseInProgress, Tags: []string{"copilot", "productivity", "quick-win"}},
		{ID: "uc-c1-5", ClientID: "c1", Title: "Credit Risk Scoring Enhancement", Description: "ML models to enhance credit risk assessment beyond traditional scoring methods.", Department: "Risk & Compliance", Industry: "Financial Services", Complexity: model.ComplexityHigh, Impact: 8, Effort: 7, Status: model.UseCaseIdentified, Tags: []string{"ML", "risk", "credit"}},
		{ID: "uc-c2-1", ClientID: "c2", Title: "Predictive Patient Scheduling", Description: "ML models to optimise appointment scheduling and reduce no-shows by 30%.", Department: "Operations", Industry: "Healthcare", Complexity: model.ComplexityMedium, Impact: 8, Effort: 4, Status: model.UseCaseApproved, Tags: []string{"scheduling", "prediction", "healthcare"}},
		{ID: "uc-c2-2", ClientID: "c2", Title: "AI-Assisted Diagnostics Support", Description: "Clinical decision support system providing diagnostic suggestions based on patient history and imaging.", Department: "Clinical", Industry: "Healthcare", Complexity: model.ComplexityHigh, Impact: 9, Effort: 9, Status: model.UseCaseIdentified, Tags: []string{"diagnostics", "clinical", "ML"}},
		{ID: "uc-c2-3", ClientID: "c2", Title: "Administrative Automation", Description: "Automate patient intake forms, referral processing, and discharge summaries using NLP.", Department: "Administration", Industry: "Healthcare", Complexity: model.ComplexityLow, Impact: 7, Effort: 3, Status: model.UseCaseEvaluated, Tags: []string{"NLP", "admin", "automation"}},
		{ID: "uc-c2-4", ClientID: "c2", Title: "Patient Communication Bot", Description: "Automated appointment reminders, post-visit follow-ups, and FAQ handling via conversational AI.", Department: "Patient Services", Industry: "Healthcare", Complexity: model.ComplexityMedium, Impact: 7, Effort: 5, Status: model.UseCaseIdentified, Tags: []string{"chatbot", "patient", "communications"}},
		{ID: "uc-c3-1", ClientID: "c3", Title: "Predictive Maintenance", Description: "IoT sensor data + ML for equipment failure prediction across 3 production lines.", Department: "Production", Industry: "Manufacturing", Complexity: model.ComplexityHigh, Impact: 9, Effort: 7, Status: model.UseCaseIdentified, Tags: []string{"IoT", "ML", "maintenance"}},
		{ID: "uc-c3-2", ClientID: "c3", Title: "Supply Chain Optimisation", Description: "ML forecasting for demand prediction, inventory optimisation, and supplier risk assessment.", Department: "Supply Chain", Industry: "Manufacturing", Complexity: model.ComplexityHigh, Impact: 8, Effort: 8, Status: model.UseCaseIdentified, Tags: []string{"supply-chain", "forecasting", "optimisation"}},
		{ID: "uc-c3-3", ClientID: "c3", Title: "Computer Vision Quality Control", Description: "Automated visual inspection using computer vision to replace manual quality checks.", Department: "Quality", Industry: "Manufacturing", Complexity: model.ComplexityMedium, Impact: 8, Effort: 6, Status: model.UseCaseIdentified, Tags: []string{"computer-vision", "quality", "inspection"}},
		{ID: "uc-c3-4", ClientID: "c3", Title: "Energy Consumption Optimisation", Description: "ML-driven energy management to reduce production line power consumption by 10-15%.", Department: "Facilities", Industry: "Manufacturing", Complexity: model.ComplexityMedium, Impact: 6, Effort: 4, Status: model.UseCaseIdentified, Tags: []string{"energy", "sustainability", "ML"}},
	}
}

func seedStrategyDocuments() []*model.StrategyDocument {
	return []*model.StrategyDocument{
		{
			ID: "sd-c1-1", ClientID: "c1",
			Title: "AI Readiness Report — Meridian Financial", Type: model.DocTypeAIStrategy,
			Content: "<h1>AI Readiness Report</h1><h2>Executive Summary</h2><p>Findings from the Discovery phase of the Meridian Financial Group AI Strategy engagement, based on leadership interviews, a survey of 350 employees, and stakeholder workshops.</p><h2>Recommendations</h2><ol><li>Prioritise fraud detection and compliance automation as first AI pilots</li><li>Enable Microsoft Copilot as a quick win</li><li>Establish AI governance before scaling beyond pilots</li></ol>",
			Version: 1, Status: model.DocApproved, LastModified: "2025-08-28", CreatedBy: "Alex Morgan",
		},
		{
			ID: "sd-c1-2", ClientID: "c1",
			Title: "AI Strategy — Meridian Financial Group", Type: model.DocTypeAIStrategy,
			Content: "<h1>AI Strategy — Meridian Financial Group</h1><h2>Vision</h2><p>Establish Meridian Financial as an AI-first financial services organisation across fraud detection, regulatory compliance, and customer experience.</p><h2>Roadmap</h2><p>Phase 1 (Q1–Q2 2026): pilot launches for fraud detection and compliance automation. Phase 2 (Q3–Q4 2026): scale successful pilots and deploy customer onboarding AI.</p>",
			Version: 2, Status: model.DocApproved, LastModified: "2025-11-12", CreatedBy: "Alex Morgan",
		},
		{
			ID: "sd-c1-3", ClientID: "c1",
			Title: "AI Usage Policy — Meridian Financial", Type: model.DocTypeUsagePolicy,
			Content: "<h1>AI Usage Policy</h1><p>Guidelines for responsible use of AI tools across Meridian Financial Group, ensuring FCA and data protection compliance. Client financial data must not be input into external AI systems; all AI outputs affecting customer decisions require human review.</p>",
			Version: 2, Status: model.DocApproved, LastModified: "2025-11-14", CreatedBy: "Alex Morgan",
		},
		{
			ID: "sd-c2-1", ClientID: "c2",
			Title: "AI Readiness Report — NovaCare Health", Type: model.DocTypeAIStrategy,
			Content: "<h1>AI Readiness Report — NovaCare Health Systems</h1><p>Discovery-phase assessment covering clinical workflows, IT infrastructure, staff readiness, and healthcare regulatory considerations. Recommends predictive scheduling as the lowest-risk, highest-impact first pilot.</p>",
			Version: 1, Status: model.DocApproved, LastModified: "2025-11-28", CreatedBy: "Alex Morgan",
		},
		{
			ID: "sd-c2-2", ClientID: "c2",
			Title: "Healthcare AI Strategy — NovaCare (Draft)", Type: model.DocTypeAIStrategy,
			Content: "<h1>NovaCare Healthcare AI Strategy</h1><p>Enhance patient outcomes and operational efficiency through responsible AI adoption, starting with scheduling optimisation and administrative automation.</p>",
			Version: 1, Status: model.DocDraft, LastModified: "2026-01-15", CreatedBy: "Alex Morgan",
		},
		{
			ID: "sd-c3-1", ClientID: "c3",
			Title: "AI Opportunity Scan — Atlas Manufacturing (In Progress)", Type: model.DocTypeAIStrategy,
			Content: "<h1>AI Opportunity Scan — Atlas Manufacturing</h1><p>Initial findings from the Discovery phase: predictive maintenance, supply chain forecasting, and computer-vision quality control identified as the leading opportunities. Full report pending plant tours and data infrastructure review.</p>",
			Version: 1, Status: model.DocDraft, LastModified: "2026-01-25", CreatedBy: "Alex Morgan",
		},
	}
}

func seedWorkshops() []*model.Workshop {
	return []*model.Workshop{
		{
			ID: "w1", Title: "AI Foundations for Leaders",
			Description: "An executive-level overview of AI capabilities, limitations, and strategic implications.",
			Category:    "Leadership", Date: "2026-02-15", Duration: "3 hours",
			Capacity: 25, Enrolled: 22, Instructor: "Alex Morgan", Status: model.WorkshopUpcoming,
			Attendees: []model.WorkshopAttendee{
				{ID: "wa1", Name: "Sarah Chen", Email: "sarah.chen@meridian.com", Department: "Executive"},
				{ID: "wa2", Name: "James Rodriguez", Email: "james.r@meridian.com", Department: "Innovation"},
			},
		},
		{
			ID: "w2", Title: "Prompt Engineering Fundamentals",
			Description: "Hands-on workshop covering prompt design patterns, chain-of-thought reasoning, and practical applications.",
			Category:    "Technical", Date: "2026-02-22", Duration: "4 hours",
			Capacity: 30, Enrolled: 28, Instructor: "Dana Kim", Status: model.WorkshopUpcoming,
		},
		{
			ID: "w3", Title: "AI Ethics & Responsible Use",
			Description: "Framework for responsible AI adoption including bias, fairness, transparency, and governance.",
			Category:    "Governance", Date: "2026-01-10", Duration: "2 hours",
			Capacity: 40, Enrolled: 35, Instructor: "Alex Morgan", Status: model.WorkshopCompleted,
			Attendees: []model.WorkshopAttendee{
				{ID: "wa3", Name: "Tom Bradley", Email: "tbradley@novacare.org", Department: "IT", Attended: true, FeedbackScore: 4.5},
			},
		},
		{
			ID: "w4", Title: "AI for Marketing Teams",
			Description: "Practical AI applications for marketing: content generation, analytics, personalisation, and campaign optimisation.",
			Category:    "Department", Date: "2026-03-05", Duration: "3 hours",
			Capacity: 20, Enrolled: 12, Instructor: "Jordan Lee", Status: model.WorkshopUpcoming,
		},
	}
}

func seedSurveyQuestions() []*model.SurveyQuestion {
	return []*model.SurveyQuestion{
		{ID: "sq1", Text: "How familiar are you with AI and machine learning concepts?", Type: model.QuestionLikert, Category: "AI Literacy", Required: true},
		{ID: "sq2", Text: "Do you currently use any AI-powered tools in your daily work?", Type: model.QuestionYesNo, Category: "Current Usage", Required: true},
		{ID: "sq3", Text: "Which AI tools do you use? (Select all that apply)", Type: model.QuestionMultipleChoice, Category: "Current Usage", Options: []string{"ChatGPT", "Microsoft Copilot", "Google Gemini", "Jasper AI", "Custom internal tools", "None"}},
		{ID: "sq4", Text: "How would you rate your department's readiness to adopt AI solutions?", Type: model.QuestionLikert, Category: "Readiness", Required: true},
		{ID: "sq5", Text: "What is your biggest concern about AI adoption in your work?", Type: model.QuestionOpenText, Category: "Attitudes"},
		{ID: "sq6", Text: "How confident are you in your organisation's data privacy practices?", Type: model.QuestionLikert, Category: "Risk Perception", Required: true},
		{ID: "sq7", Text: "Would you be interested in AI training workshops?", Type: model.QuestionYesNo, Category: "Opportunities", Required: true},
		{ID: "sq8", Text: "What department do you work in?", Type: model.QuestionMultipleChoice, Category: "Demographics", Options: []string{"Engineering", "Marketing", "Sales", "Finance", "HR", "Operations", "Legal", "Executive"}, Required: true},
	}
}

func seedSurveyResponses() []*model.SurveyResponse {
	resp := func(id, dept string, literacy, readiness, privacy int, usesTools, wantsTraining bool, submitted string) *model.SurveyResponse {
		return &model.SurveyResponse{
			ID: id, SurveyID: "s1", Department: dept, SubmittedAt: submitted,
			Answers: map[string]model.Answer{
				"sq1": model.LikertAnswer(literacy),
				"sq2": model.BoolAnswer(usesTools),
				"sq4": model.LikertAnswer(readiness),
				"sq6": model.LikertAnswer(privacy),
				"sq7": model.BoolAnswer(wantsTraining),
			},
		}
	}
	return []*model.SurveyResponse{
		resp("sr1", "Engineering", 4, 4, 3, true, true, "2025-09-20"),
		resp("sr2", "Marketing", 2, 2, 3, true, true, "2025-09-21"),
		resp("sr3", "Sales", 3, 3, 4, false, true, "2025-09-22"),
		resp("sr4", "Finance", 2, 2, 4, false, false, "2025-09-22"),
		resp("sr5", "HR", 1, 1, 2, false, true, "2025-09-23"),
		resp("sr6", "Operations", 3, 3, 3, true, true, "2025-09-23"),
		resp("sr7", "Engineering", 5, 5, 4, true, true, "2025-09-24"),
		resp("sr8", "Legal", 2, 2, 5, false, false, "2025-09-24"),
		resp("sr9", "Executive", 3, 4, 3, true, true, "2025-09-25"),
		resp("sr10", "Marketing", 3, 3, 3, true, true, "2025-09-25"),
	}
}
