// internal/models/blueprint.go
package models

// BlueprintPhase is one phase of the implementation plan.
type BlueprintPhase struct {
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ProjectBlueprint is the aggregate phased implementation plan accompanying
// a set of recommendations.
type ProjectBlueprint struct {
	Deliverables []string         `json:"deliverables"`
	Timeline     string           `json:"timeline"`
	CostBracket  string           `json:"costBracket"`
	Phases       []BlueprintPhase `json:"phases"`
}

// AnalysisResult is the top-level response envelope of a profile analysis:
// 1-15 recommendations plus exactly one blueprint. Constructed once per
// pipeline invocation and never mutated afterwards.
type AnalysisResult struct {
	Recommendations  []ServiceRecommendation `json:"recommendations"`
	ProjectBlueprint ProjectBlueprint        `json:"projectBlueprint"`
}
