// internal/proposal/share_test.go
package proposal

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding-engine/internal/models"
)

func TestShareMessage_HighPriorityTitles(t *testing.T) {
	recs := []models.ServiceRecommendation{
		{Title: "A", Priority: "High"},
		{Title: "B", Priority: "Low"},
		{Title: "C", Priority: "High"},
		{Title: "D", Priority: "High"},
		{Title: "E", Priority: "High"},
	}

	msg := ShareMessage("Acme Retail", recs, "")

	assert.Contains(t, msg, "proposal for Acme Retail")
	assert.Contains(t, msg, "Total Solutions: 5")
	assert.Contains(t, msg, "High Priority: 4")
	// Only the first three High titles are listed.
	assert.Contains(t, msg, "Top Recommendations: A, C, D")
	assert.NotContains(t, msg, "E")
	assert.NotContains(t, msg, "Personal Note")
}

func TestShareMessage_FallbackWhenNoHighPriority(t *testing.T) {
	recs := []models.ServiceRecommendation{
		{Title: "A", Priority: "Medium"},
		{Title: "B", Priority: "Low"},
		{Title: "C", Priority: "Low"},
	}

	msg := ShareMessage("Acme", recs, "")

	assert.Contains(t, msg, "Top Recommendations: A, B")
	assert.Contains(t, msg, "High Priority: 0")
}

func TestShareMessage_IncludesSalesNotes(t *testing.T) {
	msg := ShareMessage("Acme", nil, "Let's talk pricing on Friday.")

	assert.Contains(t, msg, "Personal Note:\nLet's talk pricing on Friday.")
	assert.Contains(t, msg, "Total Solutions: 0")
}

func TestWhatsAppLink(t *testing.T) {
	r := NewRenderer(testContact())
	recs := []models.ServiceRecommendation{{Title: "A", Priority: "High"}}

	link := r.WhatsAppLink("Acme Retail", recs, "")

	require.True(t, strings.HasPrefix(link, "https://wa.me/919091156095?text="))
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "Acme Retail")
	assert.Contains(t, text, "Total Solutions: 1")
}

func TestFileName(t *testing.T) {
	at := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		company string
		want    string
	}{
		{"Acme Retail", "Cehpoint_Proposal_Acme_Retail_2026-08-30.html"},
		{"Acme & Sons, Ltd.", "Cehpoint_Proposal_Acme___Sons__Ltd__2026-08-30.html"},
		{"Acme123", "Cehpoint_Proposal_Acme123_2026-08-30.html"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.company, at))
	}
}
