// internal/schema/normalize.go

// Package schema normalizes loosely-typed input into the canonical shape of
// the domain entities and validates candidates against their contracts.
// Normalization is total and never fails; validation is strict and returns
// field-identified errors.
package schema

import (
	"fmt"
	"strings"
)

// BooleanFields are the seven technology-posture flags of a business profile
// that tolerate string/number encodings from upstream sources.
var BooleanFields = []string{
	"hasWebsite",
	"hasMobileApp",
	"hasCRM",
	"hasERP",
	"hasCloudSetup",
	"hasAdminTools",
	"hasDevTeam",
}

// CoerceBool converts loosely-typed truth values into a native bool.
// Strings match {"true","yes","1"} case-insensitively; numbers are
// zero/non-zero; anything else non-nil counts as true.
func CoerceBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		lower := strings.ToLower(strings.TrimSpace(v))
		return lower == "true" || lower == "yes" || lower == "1"
	case float64:
		return v != 0
	case float32:
		return v != 0
	case int:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case nil:
		return false
	default:
		return true
	}
}

// NormalizeBusinessProfile repairs the known shape deviations of a raw
// business profile before strict validation: operatingRegions supplied as a
// single or comma-separated string becomes an array of trimmed non-empty
// strings, and the seven boolean fields are coerced to native bools (absent
// fields become false). Every other field passes through unchanged. The
// input map is not mutated; normalizing an already-normalized profile
// yields the same result.
func NormalizeBusinessProfile(raw map[string]interface{}) map[string]interface{} {
	normalized := make(map[string]interface{}, len(raw)+len(BooleanFields)+1)
	for k, v := range raw {
		normalized[k] = v
	}

	normalized["operatingRegions"] = normalizeRegions(raw["operatingRegions"])

	for _, field := range BooleanFields {
		normalized[field] = CoerceBool(raw[field])
	}

	return normalized
}

func normalizeRegions(value interface{}) []interface{} {
	switch v := value.(type) {
	case nil:
		return []interface{}{}
	case string:
		parts := strings.Split(v, ",")
		regions := make([]interface{}, 0, len(parts))
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed != "" {
				regions = append(regions, trimmed)
			}
		}
		return regions
	case []interface{}:
		return v
	case []string:
		regions := make([]interface{}, 0, len(v))
		for _, s := range v {
			regions = append(regions, s)
		}
		return regions
	default:
		return []interface{}{fmt.Sprintf("%v", v)}
	}
}
