// internal/analyzer/prompt.go
package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"onboarding-engine/internal/models"
)

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// BuildAnalysisPrompt renders a validated business profile into the fixed
// consulting brief sent to the model. The template is deterministic: the
// same profile always produces the same prompt.
func BuildAnalysisPrompt(profile *models.BusinessProfile) string {
	return fmt.Sprintf(`You are an expert IT and cybersecurity consultant analyzing a client's business to provide highly specific, actionable, and valuable service recommendations.

CLIENT BUSINESS PROFILE:
Business Name: %s
Industry: %s
Business Model: %s
Year Established: %s
Team Size: %s
Operating Regions: %s

CURRENT OPERATIONS:
Core Operations: %s
Workflow Challenges: %s
Manual Tasks to Automate: %s
Current Tools/Software: %s

TECHNOLOGY STATUS:
Has Website: %s
Has Mobile App: %s
Has CRM: %s
Has ERP: %s
Has Cloud Setup: %s
Has Admin Tools: %s
Technology Stack: %s
Cybersecurity Practices: %s
API/Integrations: %s

BUSINESS GOALS:
Short-term Goals (6 months): %s
Long-term Goals (1-3 years): %s
Upcoming Launches/Expansions: %s
Desired Automation Areas: %s

CHALLENGES & BLOCKERS:
Revenue Challenges: %s
Sales/Marketing Challenges: %s
Tech/Infrastructure Bottlenecks: %s
Customer Support Challenges: %s
Compliance/Regulatory Concerns: %s

INDUSTRY-SPECIFIC DATA:
Target Customers: %s
Competitors: %s
Data Format: %s
Industry-Specific Processes: %s

PREFERENCES & CONSTRAINTS:
Budget Preference: %s
Preferred Solution Type: %s
Deadline/Urgency: %s
Has Developer Team: %s
Resource Constraints: %s

TASK:
Analyze this business deeply and generate 6-12 highly specific, personalized service recommendations across these categories:
1. Process Automation & Optimization
2. Software Solutions
3. Cybersecurity & Risk Reduction
4. Technology Modernization
5. AI & Intelligent Automation
6. Industry-Specific Solutions

For EACH recommendation, provide:
- title: Clear, specific title
- category: One of the 6 categories above, exactly as written
- description: Detailed 2-3 sentence description
- whyNeeded: Why this client specifically needs this (based on their data)
- howItHelps: Concrete benefits and outcomes
- businessImpact: Measurable business impact
- expectedROI: Expected return on investment or value
- priority: High, Medium, or Low based on urgency and impact
- estimatedTimeline: Realistic timeline (e.g., "2-3 months", "4-6 weeks")
- estimatedCost: Cost in Indian Rupees with the US dollar equivalent in parentheses, e.g. "₹45,000 ($540)". Every estimate must stay between ₹10,000 and ₹1,00,000.

Also create a high-level PROJECT BLUEPRINT with:
- deliverables: Array of 4-6 key deliverables
- timeline: Overall timeline (e.g., "3-6 months")
- costBracket: Overall cost estimate in the same currency format, within the same ₹10,000 to ₹1,00,000 range
- phases: Array of 3-5 project phases with name, duration, and description

Make recommendations unique, specific to their industry, challenges, and goals. Avoid generic advice. Focus on high-value, hard-to-ignore solutions.

Return ONLY valid JSON in this exact format:
{
  "recommendations": [
    {
      "id": "rec-1",
      "title": "...",
      "category": "...",
      "description": "...",
      "whyNeeded": "...",
      "howItHelps": "...",
      "businessImpact": "...",
      "expectedROI": "...",
      "priority": "High|Medium|Low",
      "estimatedTimeline": "...",
      "estimatedCost": "..."
    }
  ],
  "projectBlueprint": {
    "deliverables": ["...", "..."],
    "timeline": "...",
    "costBracket": "...",
    "phases": [
      {
        "name": "...",
        "duration": "...",
        "description": "..."
      }
    ]
  }
}`,
		profile.BusinessName,
		profile.Industry,
		profile.BusinessModel,
		profile.YearEstablished,
		profile.TeamSize,
		strings.Join(profile.OperatingRegions, ", "),
		profile.CoreOperations,
		profile.WorkflowChallenges,
		profile.ManualTasks,
		profile.CurrentTools,
		yesNo(profile.HasWebsite),
		yesNo(profile.HasMobileApp),
		yesNo(profile.HasCRM),
		yesNo(profile.HasERP),
		yesNo(profile.HasCloudSetup),
		yesNo(profile.HasAdminTools),
		profile.TechnologyStack,
		profile.CybersecurityPractices,
		profile.APIIntegrations,
		profile.ShortTermGoals,
		profile.LongTermGoals,
		profile.UpcomingLaunches,
		profile.AutomationAreas,
		profile.RevenueChallenges,
		profile.SalesMarketingChallenges,
		profile.TechBottlenecks,
		profile.CustomerSupportChallenges,
		profile.ComplianceConcerns,
		profile.TargetCustomers,
		profile.Competitors,
		profile.DataFormat,
		profile.IndustrySpecificProcesses,
		profile.BudgetPreference,
		profile.PreferredSolutionType,
		profile.Deadline,
		yesNo(profile.HasDevTeam),
		profile.ResourceConstraints,
	)
}

// BuildDocumentExtractionPrompt instructs the model to extract a complete
// business profile from unstructured document text. Critical identity fields
// are inferred from context rather than left blank; non-critical fields fall
// back to the "Not specified" sentinel so the result always validates.
func BuildDocumentExtractionPrompt(documentText, sourceName string) string {
	return fmt.Sprintf(`You are analyzing a business profile document. Extract all relevant business information and structure it into a complete business profile.

DOCUMENT NAME: %s

DOCUMENT CONTENT:
%s

TASK:
Extract and structure the business information into a complete profile.
For the critical fields (businessName, industry, yearEstablished, teamSize, operatingRegions), infer the most plausible value from contextual clues in the document rather than leaving them blank.
For any other field that is not found in the document, use "Not specified" instead of omitting the field.
Boolean fields must be true or false.

Return ONLY valid JSON in this exact format:
{
  "businessName": "...",
  "industry": "...",
  "businessModel": "...",
  "yearEstablished": "...",
  "teamSize": "...",
  "operatingRegions": "...",
  "coreOperations": "...",
  "workflowChallenges": "...",
  "manualTasks": "...",
  "currentTools": "...",
  "hasWebsite": true/false,
  "hasMobileApp": true/false,
  "hasCRM": true/false,
  "hasERP": true/false,
  "hasCloudSetup": true/false,
  "hasAdminTools": true/false,
  "technologyStack": "...",
  "cybersecurityPractices": "...",
  "apiIntegrations": "...",
  "shortTermGoals": "...",
  "longTermGoals": "...",
  "upcomingLaunches": "...",
  "automationAreas": "...",
  "revenueChallenges": "...",
  "salesMarketingChallenges": "...",
  "techBottlenecks": "...",
  "customerSupportChallenges": "...",
  "complianceConcerns": "...",
  "targetCustomers": "...",
  "competitors": "...",
  "dataFormat": "...",
  "industrySpecificProcesses": "...",
  "budgetPreference": "...",
  "preferredSolutionType": "...",
  "deadline": "...",
  "hasDevTeam": true/false,
  "resourceConstraints": "..."
}`, sourceName, documentText)
}

// BuildLiveSuggestionsPrompt renders the partially filled questionnaire into
// the quick-suggestion prompt. Only non-empty fields are included; keys are
// sorted so the prompt stays deterministic for a given form state.
func BuildLiveSuggestionsPrompt(formData map[string]interface{}) string {
	keys := make([]string, 0, len(formData))
	for k := range formData {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var lines []string
	for _, key := range keys {
		value := formData[key]
		var rendered string
		switch v := value.(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}
			rendered = v
		case []interface{}:
			if len(v) == 0 {
				continue
			}
			parts := make([]string, 0, len(v))
			for _, item := range v {
				parts = append(parts, fmt.Sprintf("%v", item))
			}
			rendered = strings.Join(parts, ", ")
		default:
			rendered = fmt.Sprintf("%v", v)
		}
		lines = append(lines, fmt.Sprintf("%s: %s", humanizeKey(key), rendered))
	}

	return fmt.Sprintf(`You are an expert IT and cybersecurity consultant analyzing a client's business information as they fill out a questionnaire.

CURRENT BUSINESS INFORMATION PROVIDED:
%s

TASK:
Based on the information provided so far, generate 2-3 SPECIFIC, ACTIONABLE service suggestions that would be valuable for this business. Keep each suggestion concise (1-2 sentences max).

IMPORTANT:
- Be specific to their industry, business model, and stated challenges
- Focus on high-impact, realistic solutions
- Make suggestions engaging and relevant to what they've shared
- Include a brief "why" this matters for their business
- If not enough information is provided yet, give general relevant suggestions based on what you know

Return ONLY a valid JSON object in this exact format:
{
  "suggestions": [
    {
      "title": "Service Name",
      "description": "Specific recommendation with why it matters",
      "icon": "Cloud" | "Shield" | "Zap" | "Brain" | "Target" | "Lock" | "Database" | "Workflow"
    }
  ]
}`, strings.Join(lines, "\n"))
}

// humanizeKey turns a camelCase form key into lower-case words,
// e.g. "workflowChallenges" -> "workflow challenges".
func humanizeKey(key string) string {
	var sb strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte(' ')
			sb.WriteRune(r - 'A' + 'a')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
