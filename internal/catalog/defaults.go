package catalog

// DefaultSkillCatalog returns the built-in skills categorization used when no
// skills document is present on disk.
func DefaultSkillCatalog() *SkillCatalog {
	return &SkillCatalog{
		Technical: []string{
			"python", "java", "javascript", "html", "css", "react", "angular", "vue",
			"node.js", "express", "flask", "django", "spring", "hibernate", "sql",
			"mysql", "postgresql", "mongodb", "redis", "aws", "azure", "gcp",
			"docker", "kubernetes", "jenkins", "git", "jira", "agile", "scrum",
			"c++", "c#", "php", "ruby", "swift", "kotlin", "rust", "golang", "scala",
			"machine learning", "deep learning", "artificial intelligence", "data science",
			"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy", "hadoop", "spark",
			"tableau", "power bi", "excel", "word", "powerpoint", "photoshop", "illustrator",
			"figma", "sketch", "adobe xd", "ui/ux", "seo", "digital marketing",
		},
		Soft: []string{
			"communication", "teamwork", "problem solving", "critical thinking",
			"creativity", "leadership", "time management", "adaptability", "flexibility",
			"organization", "planning", "decision making", "conflict resolution",
			"attention to detail", "interpersonal skills", "emotional intelligence",
			"negotiation", "persuasion", "presentation", "public speaking", "writing",
			"customer service", "project management", "prioritization", "self-motivated",
			"analytical", "logical", "innovative", "patient", "reliable", "responsible",
		},
		Certifications: []string{
			"aws certified", "microsoft certified", "google certified", "comptia",
			"cisco certified", "pmp", "six sigma", "itil", "scrum master", "agile certified",
			"cpa", "cfa", "ceh", "cissp", "ccna", "ccnp", "mcsa", "mcse", "rhce", "salesforce",
		},
		Languages: []string{
			"english", "spanish", "french", "german", "italian", "portuguese", "russian",
			"chinese", "japanese", "korean", "arabic", "hindi", "dutch", "swedish", "norwegian",
		},
	}
}

// DefaultRoleCatalog returns the built-in job roles used when no roles
// document is present on disk. Role order is the ranking tie-break order.
func DefaultRoleCatalog() *RoleCatalog {
	return &RoleCatalog{
		Roles: []Role{
			{
				Title:    "Software Engineer",
				Keywords: []string{"software", "developer", "programming", "coding", "java", "python", "javascript", "c++", "algorithms", "data structures"},
			},
			{
				Title:    "Data Scientist",
				Keywords: []string{"data science", "machine learning", "statistics", "python", "r", "ai", "deep learning", "analytics", "data mining", "big data"},
			},
			{
				Title:    "Web Developer",
				Keywords: []string{"web", "frontend", "backend", "full-stack", "html", "css", "javascript", "react", "angular", "vue", "node.js", "php"},
			},
			{
				Title:    "Product Manager",
				Keywords: []string{"product", "management", "agile", "scrum", "roadmap", "strategy", "user stories", "prioritization", "requirements", "stakeholders"},
			},
			{
				Title:    "UX/UI Designer",
				Keywords: []string{"ux", "ui", "user experience", "user interface", "design", "wireframes", "prototypes", "usability", "figma", "sketch", "adobe xd"},
			},
			{
				Title:    "DevOps Engineer",
				Keywords: []string{"devops", "ci/cd", "continuous integration", "deployment", "aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform"},
			},
			{
				Title:    "Business Analyst",
				Keywords: []string{"business analysis", "requirements", "stakeholders", "process", "documentation", "sql", "data analysis", "reporting", "visualization"},
			},
			{
				Title:    "Project Manager",
				Keywords: []string{"project management", "pmp", "agile", "scrum", "waterfall", "budget", "timeline", "resources", "risk management", "planning"},
			},
			{
				Title:    "Marketing Specialist",
				Keywords: []string{"marketing", "digital marketing", "seo", "sem", "social media", "content", "campaigns", "analytics", "brand", "strategy"},
			},
			{
				Title:    "Sales Representative",
				Keywords: []string{"sales", "business development", "account management", "negotiation", "client", "customer", "crm", "pipeline", "quota", "closing"},
			},
		},
	}
}
