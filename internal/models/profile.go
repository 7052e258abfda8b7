// internal/models/profile.go
package models

// BusinessProfile is the structured description of a client business,
// collected via the questionnaire or extracted from an uploaded document.
// Instances are immutable once validated.
type BusinessProfile struct {
	// Identity
	BusinessName     string   `json:"businessName"`
	Industry         string   `json:"industry"`
	BusinessModel    string   `json:"businessModel"`
	YearEstablished  string   `json:"yearEstablished"`
	TeamSize         string   `json:"teamSize"`
	OperatingRegions []string `json:"operatingRegions"`

	// Current operations
	CoreOperations     string `json:"coreOperations"`
	WorkflowChallenges string `json:"workflowChallenges"`
	ManualTasks        string `json:"manualTasks"`
	CurrentTools       string `json:"currentTools"`

	// Technology status
	HasWebsite             bool   `json:"hasWebsite"`
	HasMobileApp           bool   `json:"hasMobileApp"`
	HasCRM                 bool   `json:"hasCRM"`
	HasERP                 bool   `json:"hasERP"`
	HasCloudSetup          bool   `json:"hasCloudSetup"`
	HasAdminTools          bool   `json:"hasAdminTools"`
	TechnologyStack        string `json:"technologyStack"`
	CybersecurityPractices string `json:"cybersecurityPractices"`
	APIIntegrations        string `json:"apiIntegrations"`

	// Goals
	ShortTermGoals   string `json:"shortTermGoals"`
	LongTermGoals    string `json:"longTermGoals"`
	UpcomingLaunches string `json:"upcomingLaunches"`
	AutomationAreas  string `json:"automationAreas"`

	// Challenges & blockers
	RevenueChallenges         string `json:"revenueChallenges"`
	SalesMarketingChallenges  string `json:"salesMarketingChallenges"`
	TechBottlenecks           string `json:"techBottlenecks"`
	CustomerSupportChallenges string `json:"customerSupportChallenges"`
	ComplianceConcerns        string `json:"complianceConcerns"`

	// Industry-specific data
	TargetCustomers           string `json:"targetCustomers"`
	Competitors               string `json:"competitors"`
	DataFormat                string `json:"dataFormat"`
	IndustrySpecificProcesses string `json:"industrySpecificProcesses"`

	// Preferences & constraints
	BudgetPreference      string `json:"budgetPreference"`
	PreferredSolutionType string `json:"preferredSolutionType"`
	Deadline              string `json:"deadline"`
	HasDevTeam            bool   `json:"hasDevTeam"`
	ResourceConstraints   string `json:"resourceConstraints"`
}
