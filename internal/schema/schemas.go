// internal/schema/schemas.go
package schema

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schema documents for the domain entities. Compiled once at package
// load; a malformed schema is a programming error, hence the panic.

const recommendationSchemaJSON = `{
	"type": "object",
	"required": [
		"title", "category", "description", "whyNeeded", "howItHelps",
		"businessImpact", "expectedROI", "priority", "estimatedTimeline",
		"estimatedCost"
	],
	"properties": {
		"id": {"type": "string"},
		"title": {"type": "string", "minLength": 1},
		"category": {
			"type": "string",
			"enum": [
				"Process Automation & Optimization",
				"Software Solutions",
				"Cybersecurity & Risk Reduction",
				"Technology Modernization",
				"AI & Intelligent Automation",
				"Industry-Specific Solutions"
			]
		},
		"description": {"type": "string", "minLength": 1},
		"whyNeeded": {"type": "string", "minLength": 1},
		"howItHelps": {"type": "string", "minLength": 1},
		"businessImpact": {"type": "string", "minLength": 1},
		"expectedROI": {"type": "string", "minLength": 1},
		"priority": {"type": "string", "enum": ["High", "Medium", "Low"]},
		"estimatedTimeline": {"type": "string", "minLength": 1},
		"estimatedCost": {"type": "string", "minLength": 1}
	}
}`

const blueprintSchemaJSON = `{
	"type": "object",
	"required": ["deliverables", "timeline", "costBracket", "phases"],
	"properties": {
		"deliverables": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string", "minLength": 1}
		},
		"timeline": {"type": "string", "minLength": 1},
		"costBracket": {"type": "string", "minLength": 1},
		"phases": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["name", "duration", "description"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"duration": {"type": "string", "minLength": 1},
					"description": {"type": "string", "minLength": 1}
				}
			}
		}
	}
}`

const profileSchemaJSON = `{
	"type": "object",
	"required": [
		"businessName", "industry", "businessModel", "yearEstablished",
		"teamSize", "operatingRegions", "coreOperations", "workflowChallenges",
		"manualTasks", "currentTools", "hasWebsite", "hasMobileApp", "hasCRM",
		"hasERP", "hasCloudSetup", "hasAdminTools", "technologyStack",
		"cybersecurityPractices", "apiIntegrations", "shortTermGoals",
		"longTermGoals", "upcomingLaunches", "automationAreas",
		"revenueChallenges", "salesMarketingChallenges", "techBottlenecks",
		"customerSupportChallenges", "complianceConcerns", "targetCustomers",
		"competitors", "dataFormat", "industrySpecificProcesses",
		"budgetPreference", "preferredSolutionType", "deadline", "hasDevTeam",
		"resourceConstraints"
	],
	"properties": {
		"businessName": {"type": "string", "minLength": 1},
		"industry": {"type": "string", "minLength": 1},
		"businessModel": {"type": "string", "minLength": 1},
		"yearEstablished": {"type": "string", "minLength": 1},
		"teamSize": {"type": "string", "minLength": 1},
		"operatingRegions": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string", "minLength": 1}
		},
		"coreOperations": {"type": "string", "minLength": 1},
		"workflowChallenges": {"type": "string", "minLength": 1},
		"manualTasks": {"type": "string", "minLength": 1},
		"currentTools": {"type": "string", "minLength": 1},
		"hasWebsite": {"type": "boolean"},
		"hasMobileApp": {"type": "boolean"},
		"hasCRM": {"type": "boolean"},
		"hasERP": {"type": "boolean"},
		"hasCloudSetup": {"type": "boolean"},
		"hasAdminTools": {"type": "boolean"},
		"technologyStack": {"type": "string", "minLength": 1},
		"cybersecurityPractices": {"type": "string", "minLength": 1},
		"apiIntegrations": {"type": "string", "minLength": 1},
		"shortTermGoals": {"type": "string", "minLength": 1},
		"longTermGoals": {"type": "string", "minLength": 1},
		"upcomingLaunches": {"type": "string", "minLength": 1},
		"automationAreas": {"type": "string", "minLength": 1},
		"revenueChallenges": {"type": "string", "minLength": 1},
		"salesMarketingChallenges": {"type": "string", "minLength": 1},
		"techBottlenecks": {"type": "string", "minLength": 1},
		"customerSupportChallenges": {"type": "string", "minLength": 1},
		"complianceConcerns": {"type": "string", "minLength": 1},
		"targetCustomers": {"type": "string", "minLength": 1},
		"competitors": {"type": "string", "minLength": 1},
		"dataFormat": {"type": "string", "minLength": 1},
		"industrySpecificProcesses": {"type": "string", "minLength": 1},
		"budgetPreference": {"type": "string", "minLength": 1},
		"preferredSolutionType": {"type": "string", "minLength": 1},
		"deadline": {"type": "string", "minLength": 1},
		"hasDevTeam": {"type": "boolean"},
		"resourceConstraints": {"type": "string", "minLength": 1}
	}
}`

var analysisSchemaJSON = fmt.Sprintf(`{
	"type": "object",
	"required": ["recommendations", "projectBlueprint"],
	"properties": {
		"recommendations": {
			"type": "array",
			"minItems": 1,
			"maxItems": 15,
			"items": %s
		},
		"projectBlueprint": %s
	}
}`, recommendationSchemaJSON, blueprintSchemaJSON)

var (
	profileSchema        = mustCompile(profileSchemaJSON)
	recommendationSchema = mustCompile(recommendationSchemaJSON)
	blueprintSchema      = mustCompile(blueprintSchemaJSON)
	analysisSchema       = mustCompile(analysisSchemaJSON)
)

func mustCompile(doc string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("schema: invalid schema document: %v", err))
	}
	return s
}
