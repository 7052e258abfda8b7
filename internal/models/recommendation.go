// internal/models/recommendation.go
package models

// ServiceCategories are the six fixed categories a recommendation may carry.
// Matching is case-sensitive.
var ServiceCategories = []string{
	"Process Automation & Optimization",
	"Software Solutions",
	"Cybersecurity & Risk Reduction",
	"Technology Modernization",
	"AI & Intelligent Automation",
	"Industry-Specific Solutions",
}

// Priorities are the three allowed priority values.
var Priorities = []string{"High", "Medium", "Low"}

const PriorityHigh = "High"

// ServiceRecommendation is one actionable service suggestion produced by the
// analysis pipeline. ID is assigned during validation when the model omits it.
type ServiceRecommendation struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Category          string `json:"category"`
	Description       string `json:"description"`
	WhyNeeded         string `json:"whyNeeded"`
	HowItHelps        string `json:"howItHelps"`
	BusinessImpact    string `json:"businessImpact"`
	ExpectedROI       string `json:"expectedROI"`
	Priority          string `json:"priority"`
	EstimatedTimeline string `json:"estimatedTimeline"`
	EstimatedCost     string `json:"estimatedCost"`
}
