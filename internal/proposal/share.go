// internal/proposal/share.go
package proposal

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"onboarding-engine/internal/models"
)

// ShareMessage builds the plain-text summary used for handing a proposal to
// the sales channel: total count, High-priority count, the titles of up to
// the first three High-priority items (or the first two recommendations
// overall when none are High), plus an optional personal note.
func ShareMessage(companyName string, recs []models.ServiceRecommendation, salesNotes string) string {
	var highTitles []string
	highCount := 0
	for _, rec := range recs {
		if rec.Priority == models.PriorityHigh {
			highCount++
			if len(highTitles) < 3 {
				highTitles = append(highTitles, rec.Title)
			}
		}
	}

	top := strings.Join(highTitles, ", ")
	if top == "" {
		var fallback []string
		for _, rec := range recs {
			fallback = append(fallback, rec.Title)
			if len(fallback) == 2 {
				break
			}
		}
		top = strings.Join(fallback, ", ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi! Sharing the technology solutions proposal for %s.\n\n", companyName)
	sb.WriteString("Summary:\n")
	fmt.Fprintf(&sb, "- Total Solutions: %d\n", len(recs))
	fmt.Fprintf(&sb, "- High Priority: %d\n", highCount)
	fmt.Fprintf(&sb, "- Top Recommendations: %s", top)

	if salesNotes != "" {
		fmt.Fprintf(&sb, "\n\nPersonal Note:\n%s", salesNotes)
	}

	sb.WriteString("\n\nI'd like to schedule a consultation to discuss implementation, timelines, and pricing.\n\nLooking forward to connecting!")
	return sb.String()
}

// WhatsAppLink wraps ShareMessage in a pre-filled wa.me deep link.
func (r *Renderer) WhatsAppLink(companyName string, recs []models.ServiceRecommendation, salesNotes string) string {
	message := ShareMessage(companyName, recs, salesNotes)
	return fmt.Sprintf("https://wa.me/%s?text=%s", r.contact.WhatsApp, url.QueryEscape(message))
}

// proposalChatLink is the shorter WhatsApp CTA embedded in the document itself.
func (r *Renderer) proposalChatLink(companyName string) string {
	text := fmt.Sprintf("Hi, I'd like to discuss the proposal for %s", companyName)
	return fmt.Sprintf("https://wa.me/%s?text=%s", r.contact.WhatsApp, url.QueryEscape(text))
}

func (r *Renderer) mailtoLink(companyName string) string {
	subject := url.QueryEscape(fmt.Sprintf("Proposal Discussion - %s", companyName))
	return fmt.Sprintf("mailto:%s?subject=%s", r.contact.Email, subject)
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// FileName derives the download file name for a rendered proposal,
// e.g. "Cehpoint_Proposal_Acme_Corp_2026-08-30.html".
func FileName(companyName string, at time.Time) string {
	sanitized := unsafeFileChars.ReplaceAllString(companyName, "_")
	return fmt.Sprintf("Cehpoint_Proposal_%s_%s.html", sanitized, at.Format("2006-01-02"))
}
