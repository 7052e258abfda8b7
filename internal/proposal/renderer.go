// internal/proposal/renderer.go

// Package proposal deterministically renders validated recommendations and
// an optional blueprint into a self-contained HTML proposal plus derived
// share artifacts. It has no side effects: no network, no storage.
package proposal

import (
	"html/template"
	"strings"
	"time"

	"onboarding-engine/internal/common/config"
	"onboarding-engine/internal/models"
)

// ProposalData is the renderer input tuple.
type ProposalData struct {
	CompanyName     string                         `json:"companyName"`
	Recommendations []models.ServiceRecommendation `json:"recommendations"`
	Blueprint       *models.ProjectBlueprint       `json:"blueprint,omitempty"`
	GeneratedAt     time.Time                      `json:"generatedAt"`
	SalesNotes      string                         `json:"salesNotes,omitempty"`
}

type Renderer struct {
	contact config.ContactConfig
	tmpl    *template.Template
}

func NewRenderer(contact config.ContactConfig) *Renderer {
	return &Renderer{
		contact: contact,
		tmpl:    proposalTemplate,
	}
}

// recommendationView pairs a recommendation with its 1-based position and
// priority badge class.
type recommendationView struct {
	Index int
	models.ServiceRecommendation
	PriorityClass string
}

type phaseView struct {
	Index int
	models.BlueprintPhase
}

type proposalView struct {
	CompanyName     string
	GeneratedDate   string
	Year            int
	Contact         config.ContactConfig
	IntroHeading    string
	IntroText       string
	Recommendations []recommendationView
	Blueprint       *models.ProjectBlueprint
	Phases          []phaseView
	TotalCount      int
	HighCount       int
	TotalInvestment string
	AvgTimeline     string
	MailtoLink      template.URL
	TelLink         template.URL
	WhatsAppHref    template.URL
}

const defaultIntro = "This comprehensive technology solutions proposal has been generated using AI-powered analysis of your business operations and requirements. Each recommendation is tailored to your specific needs and designed to deliver measurable ROI."

// RenderHTML produces the complete proposal document. It never fails on
// malformed cost strings (they contribute zero to the investment total) and
// omits the blueprint section entirely when no blueprint was supplied.
func (r *Renderer) RenderHTML(data ProposalData) (string, error) {
	view := r.buildView(data)

	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, view); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r *Renderer) buildView(data ProposalData) proposalView {
	recs := make([]recommendationView, 0, len(data.Recommendations))
	highCount := 0
	for i, rec := range data.Recommendations {
		if rec.Priority == models.PriorityHigh {
			highCount++
		}
		recs = append(recs, recommendationView{
			Index:                 i + 1,
			ServiceRecommendation: rec,
			PriorityClass:         "badge-" + strings.ToLower(rec.Priority),
		})
	}

	var phases []phaseView
	if data.Blueprint != nil {
		phases = make([]phaseView, 0, len(data.Blueprint.Phases))
		for i, phase := range data.Blueprint.Phases {
			phases = append(phases, phaseView{Index: i + 1, BlueprintPhase: phase})
		}
	}

	introHeading := "About This Proposal"
	introText := defaultIntro
	if data.SalesNotes != "" {
		introHeading = "Personal Message from Your Consultant"
		introText = data.SalesNotes
	}

	avgTimeline := "8-12 weeks"
	if data.Blueprint != nil {
		avgTimeline = data.Blueprint.Timeline
	}

	return proposalView{
		CompanyName:     data.CompanyName,
		GeneratedDate:   data.GeneratedAt.Format("January 2, 2006"),
		Year:            data.GeneratedAt.Year(),
		Contact:         r.contact,
		IntroHeading:    introHeading,
		IntroText:       introText,
		Recommendations: recs,
		Blueprint:       data.Blueprint,
		Phases:          phases,
		TotalCount:      len(data.Recommendations),
		HighCount:       highCount,
		TotalInvestment: formatINR(TotalInvestment(data.Recommendations)),
		AvgTimeline:     avgTimeline,
		MailtoLink:      template.URL(r.mailtoLink(data.CompanyName)),
		TelLink:         template.URL("tel:" + strings.ReplaceAll(r.contact.Phone, " ", "")),
		WhatsAppHref:    template.URL(r.proposalChatLink(data.CompanyName)),
	}
}
