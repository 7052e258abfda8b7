// internal/schema/validate.go
package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	commonerrors "onboarding-engine/internal/common/errors"
	"onboarding-engine/internal/models"
)

// NewRecommendationID generates a recommendation identifier in the
// "rec-<timestamp>-<suffix>" wire format. The suffix comes from a UUID, so
// collisions are negligible even across concurrent analyses.
func NewRecommendationID() string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("rec-%d-%s", time.Now().UnixNano(), suffix)
}

// ValidateBusinessProfile checks a normalized candidate against the
// BusinessProfile contract and decodes it into a typed value. The returned
// error identifies the first failing field.
func ValidateBusinessProfile(candidate map[string]interface{}) (*models.BusinessProfile, error) {
	if err := check(profileSchema, candidate); err != nil {
		return nil, err
	}

	var profile models.BusinessProfile
	if err := decode(candidate, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ValidateServiceRecommendation checks a single recommendation candidate,
// assigning a generated ID when the input omits one.
func ValidateServiceRecommendation(candidate map[string]interface{}) (*models.ServiceRecommendation, error) {
	if err := check(recommendationSchema, candidate); err != nil {
		return nil, err
	}

	var rec models.ServiceRecommendation
	if err := decode(candidate, &rec); err != nil {
		return nil, err
	}
	if rec.ID == "" {
		rec.ID = NewRecommendationID()
	}
	return &rec, nil
}

// ValidateProjectBlueprint checks a blueprint candidate.
func ValidateProjectBlueprint(candidate map[string]interface{}) (*models.ProjectBlueprint, error) {
	if err := check(blueprintSchema, candidate); err != nil {
		return nil, err
	}

	var bp models.ProjectBlueprint
	if err := decode(candidate, &bp); err != nil {
		return nil, err
	}
	return &bp, nil
}

// ValidateAnalysisResult checks the full analysis envelope (1-15
// recommendations plus exactly one blueprint) and assigns IDs to
// recommendations that arrived without one.
func ValidateAnalysisResult(candidate map[string]interface{}) (*models.AnalysisResult, error) {
	if err := check(analysisSchema, candidate); err != nil {
		return nil, err
	}

	var result models.AnalysisResult
	if err := decode(candidate, &result); err != nil {
		return nil, err
	}
	for i := range result.Recommendations {
		if result.Recommendations[i].ID == "" {
			result.Recommendations[i].ID = NewRecommendationID()
		}
	}
	return &result, nil
}

func check(schema *gojsonschema.Schema, candidate map[string]interface{}) error {
	result, err := schema.Validate(gojsonschema.NewGoLoader(candidate))
	if err != nil {
		return commonerrors.NewValidationFailedError("(root)", err.Error())
	}
	if result.Valid() {
		return nil
	}

	field, reason := firstFailure(result)
	return commonerrors.NewValidationFailedError(field, reason)
}

// firstFailure extracts the first failing field and a plain-language reason.
// For required-property errors gojsonschema reports the parent as the field
// and names the missing property in the details map.
func firstFailure(result *gojsonschema.Result) (string, string) {
	errs := result.Errors()
	if len(errs) == 0 {
		return "(root)", "invalid document"
	}

	first := errs[0]
	field := first.Field()
	if prop, ok := first.Details()["property"].(string); ok && first.Type() == "required" {
		if field == "(root)" {
			field = prop
		} else {
			field = field + "." + prop
		}
	}
	return field, first.Description()
}

func decode(candidate map[string]interface{}, out interface{}) error {
	data, err := json.Marshal(candidate)
	if err != nil {
		return commonerrors.NewValidationFailedError("(root)", err.Error())
	}
	if err := json.Unmarshal(data, out); err != nil {
		return commonerrors.NewValidationFailedError("(root)", err.Error())
	}
	return nil
}
