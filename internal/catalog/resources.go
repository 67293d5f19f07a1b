package catalog

// libraryResources is the full resource library. The marketing site renders
// these; the API serves their metadata and streams the PDFs.
var libraryResources = []Resource{
	{
		ID:          "res_001",
		Slug:        "employee-engagement-survey",
		Title:       "Employee Engagement Survey Template",
		Category:    "assessment",
		Type:        "Survey Template",
		Description: "Comprehensive 40-question survey based on validated organizational science research to measure employee engagement across 8 key dimensions.",
		Function:    "Measure employee engagement using scientifically validated questions",
		Downloads:   2847,
		Pages:       12,
		Format:      "PDF",
		FileSize:    "1.8 MB",
		FilePath:    "/downloads/assessment/employee-engagement-survey.pdf",
		Includes: []string{
			"40 research-backed survey questions",
			"Question rationale and scoring guide",
			"Results interpretation framework",
			"Action planning template",
			"Benchmark data from 500+ organizations",
			"Digital survey template (Google Forms ready)",
		},
		Tags:           []string{"engagement", "survey", "assessment", "HR", "organizational health"},
		Featured:       true,
		Difficulty:     "Intermediate",
		TimeToComplete: "45 minutes to deploy",
	},
	{
		ID:          "res_002",
		Slug:        "organizational-culture-assessment",
		Title:       "Organizational Culture Assessment",
		Category:    "assessment",
		Type:        "Assessment Tool",
		Description: "Diagnose your organizational culture using the Competing Values Framework. Identify cultural strengths and misalignments.",
		Function:    "Identify and analyze organizational culture type and gaps",
		Downloads:   1923,
		Pages:       18,
		Format:      "PDF",
		FileSize:    "2.3 MB",
		FilePath:    "/downloads/assessment/organizational-culture-assessment.pdf",
		Includes: []string{
			"Complete CVF assessment instrument",
			"Scoring and plotting guide",
			"Culture type descriptions and implications",
			"Gap analysis framework",
			"Culture change roadmap template",
		},
		Tags:           []string{"culture", "assessment", "change management", "organizational development"},
		Featured:       true,
		Difficulty:     "Advanced",
		TimeToComplete: "2-3 hours for full analysis",
	},
	{
		ID:          "res_003",
		Slug:        "360-degree-feedback-framework",
		Title:       "360-Degree Feedback Framework",
		Category:    "assessment",
		Type:        "Assessment Tool",
		Description: "Complete framework for implementing multi-rater feedback, including question banks, process guides, and development planning tools.",
		Function:    "Gather comprehensive feedback from multiple perspectives",
		Downloads:   1456,
		Pages:       24,
		Format:      "PDF",
		FileSize:    "3.1 MB",
		FilePath:    "/downloads/assessment/360-feedback-framework.pdf",
		Includes: []string{
			"120+ feedback questions across 12 competencies",
			"Rater selection guide",
			"Implementation timeline and checklist",
			"Report template and interpretation guide",
		},
		Tags:           []string{"feedback", "360", "leadership development", "performance"},
		Difficulty:     "Advanced",
		TimeToComplete: "4-6 weeks to implement",
	},
	{
		ID:             "res_004",
		Slug:           "okr-implementation-guide",
		Title:          "OKR Implementation Guide",
		Category:       "performance",
		Type:           "Framework",
		Description:    "Step-by-step guide to implementing Objectives and Key Results (OKRs) with templates, examples, and common mistakes to avoid.",
		Function:       "Implement goal-setting framework for organizational alignment",
		Downloads:      3421,
		Pages:          28,
		Format:         "PDF",
		FileSize:       "2.7 MB",
		FilePath:       "/downloads/performance/okr-implementation-guide.pdf",
		Tags:           []string{"OKR", "goals", "performance", "alignment"},
		Featured:       true,
		Difficulty:     "Intermediate",
		TimeToComplete: "2-3 weeks to pilot",
	},
	{
		ID:             "res_005",
		Slug:           "performance-review-template-kit",
		Title:          "Performance Review Template Kit",
		Category:       "performance",
		Type:           "Template",
		Description:    "Modern performance review templates that emphasize development, avoid rating bias, and facilitate meaningful conversations.",
		Function:       "Conduct effective, development-focused performance conversations",
		Downloads:      2156,
		Pages:          16,
		Format:         "PDF",
		FileSize:       "1.9 MB",
		FilePath:       "/downloads/performance/performance-review-templates.pdf",
		Tags:           []string{"performance review", "templates", "feedback"},
		Difficulty:     "Beginner",
		TimeToComplete: "1 hour per review",
	},
	{
		ID:             "res_006",
		Slug:           "goal-setting-framework",
		Title:          "Goal-Setting Framework & Worksheets",
		Category:       "performance",
		Type:           "Workbook",
		Description:    "Evidence-based goal-setting process combining SMART criteria with goal-setting theory research for maximum effectiveness.",
		Function:       "Set effective goals that drive motivation and performance",
		Downloads:      1834,
		Pages:          14,
		Format:         "PDF",
		FileSize:       "1.6 MB",
		FilePath:       "/downloads/performance/goal-setting-framework.pdf",
		Tags:           []string{"goals", "SMART", "worksheets"},
		Difficulty:     "Beginner",
		TimeToComplete: "30-45 minutes",
	},
	{
		ID:             "res_007",
		Slug:           "team-design-canvas",
		Title:          "Team Design Canvas",
		Category:       "design",
		Type:           "Template",
		Description:    "Visual tool for designing high-performing teams. Define purpose, structure, processes, and success metrics on one page.",
		Function:       "Design team structure, roles, and operating principles",
		Downloads:      1678,
		Pages:          8,
		Format:         "PDF",
		FileSize:       "1.2 MB",
		FilePath:       "/downloads/design/team-design-canvas.pdf",
		Tags:           []string{"team design", "canvas", "workshop"},
		Featured:       true,
		Difficulty:     "Intermediate",
		TimeToComplete: "2-hour workshop",
	},
	{
		ID:             "res_008",
		Slug:           "role-definition-toolkit",
		Title:          "Role Definition Toolkit",
		Category:       "design",
		Type:           "Template",
		Description:    "Create clear, comprehensive role definitions that attract the right talent and set clear expectations.",
		Function:       "Define roles clearly for recruitment and performance",
		Downloads:      1432,
		Pages:          12,
		Format:         "PDF",
		FileSize:       "1.4 MB",
		FilePath:       "/downloads/design/role-definition-toolkit.pdf",
		Tags:           []string{"roles", "recruitment", "expectations"},
		Difficulty:     "Beginner",
		TimeToComplete: "1-2 hours per role",
	},
	{
		ID:             "res_009",
		Slug:           "individual-development-plan",
		Title:          "Individual Development Plan Template",
		Category:       "learning",
		Type:           "Template",
		Description:    "Structured approach to creating development plans that actually lead to growth, using the 70-20-10 model.",
		Function:       "Create actionable individual development plans",
		Downloads:      2234,
		Pages:          10,
		Format:         "PDF",
		FileSize:       "1.5 MB",
		FilePath:       "/downloads/learning/individual-development-plan.pdf",
		Tags:           []string{"development", "IDP", "growth"},
		Featured:       true,
		Difficulty:     "Beginner",
		TimeToComplete: "1-2 hours initial planning",
	},
	{
		ID:             "res_010",
		Slug:           "onboarding-checklist-guide",
		Title:          "Onboarding Checklist & Guide",
		Category:       "learning",
		Type:           "Checklist",
		Description:    "90-day onboarding program that sets new hires up for success with structured learning and relationship building.",
		Function:       "Onboard new employees effectively with structured program",
		Downloads:      1867,
		Pages:          16,
		Format:         "PDF",
		FileSize:       "2.0 MB",
		FilePath:       "/downloads/learning/onboarding-checklist-guide.pdf",
		Tags:           []string{"onboarding", "checklist", "new hires"},
		Difficulty:     "Intermediate",
		TimeToComplete: "90-day program",
	},
	{
		ID:             "res_011",
		Slug:           "change-readiness-assessment",
		Title:          "Change Readiness Assessment",
		Category:       "change",
		Type:           "Assessment Tool",
		Description:    "Evaluate organizational readiness for change across 7 dimensions before launching transformation initiatives.",
		Function:       "Assess organizational readiness before major changes",
		Downloads:      1543,
		Pages:          14,
		Format:         "PDF",
		FileSize:       "1.8 MB",
		FilePath:       "/downloads/change/change-readiness-assessment.pdf",
		Tags:           []string{"change", "readiness", "assessment"},
		Difficulty:     "Advanced",
		TimeToComplete: "2-3 hours assessment",
	},
	{
		ID:             "res_012",
		Slug:           "change-communication-plan",
		Title:          "Change Communication Plan Template",
		Category:       "change",
		Type:           "Template",
		Description:    "Comprehensive communication planning framework for managing change initiatives with stakeholder-specific messaging.",
		Function:       "Plan and execute change communication strategies",
		Downloads:      1923,
		Pages:          18,
		Format:         "PDF",
		FileSize:       "2.1 MB",
		FilePath:       "/downloads/change/change-communication-plan.pdf",
		Tags:           []string{"change", "communication", "stakeholders"},
		Difficulty:     "Intermediate",
		TimeToComplete: "4-6 hours planning",
	},
}
