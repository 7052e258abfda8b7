// internal/proposal/cost.go
package proposal

import (
	"regexp"
	"strconv"
	"strings"

	"onboarding-engine/internal/models"
)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// CostValue extracts the primary numeric amount from a cost-estimate string
// such as "₹20,000 ($240)". The text before the first parenthesis is kept
// and every non-digit stripped; anything unparseable contributes zero. The
// cost field is fundamentally free text, so this is best-effort by design.
func CostValue(cost string) int64 {
	primary := cost
	if idx := strings.Index(cost, "("); idx >= 0 {
		primary = cost[:idx]
	}

	digits := nonDigits.ReplaceAllString(primary, "")
	if digits == "" {
		return 0
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// TotalInvestment sums the extracted cost values across all recommendations.
func TotalInvestment(recs []models.ServiceRecommendation) int64 {
	var total int64
	for _, rec := range recs {
		total += CostValue(rec.EstimatedCost)
	}
	return total
}

// formatINR renders an amount with Indian digit grouping: the last three
// digits, then groups of two ("1234567" -> "12,34,567").
func formatINR(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}
