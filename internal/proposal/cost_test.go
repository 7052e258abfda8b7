// internal/proposal/cost_test.go
package proposal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"onboarding-engine/internal/models"
)

func TestCostValue(t *testing.T) {
	tests := []struct {
		name string
		cost string
		want int64
	}{
		{"rupees with dollar parens", "₹20,000 ($240)", 20000},
		{"indian grouping", "₹1,00,000 ($1200)", 100000},
		{"plain number", "45000", 45000},
		{"no parens", "₹45,000", 45000},
		{"only parens amount ignored", "TBD ($500)", 0},
		{"free text", "depends on scope", 0},
		{"empty", "", 0},
		{"parenthesis first", "($240) ₹20,000", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CostValue(tt.cost))
		})
	}
}

func TestTotalInvestment(t *testing.T) {
	recs := []models.ServiceRecommendation{
		{EstimatedCost: "₹20,000 ($240)"},
		{EstimatedCost: "₹50,000 ($600)"},
		{EstimatedCost: "custom quote"},
	}

	assert.Equal(t, int64(70000), TotalInvestment(recs))
	assert.Equal(t, int64(0), TotalInvestment(nil))
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{70000, "70,000"},
		{100000, "1,00,000"},
		{1234567, "12,34,567"},
		{123456789, "12,34,56,789"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatINR(tt.amount))
	}
}
