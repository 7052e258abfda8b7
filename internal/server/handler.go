// internal/server/handler.go

// Package server exposes the analysis pipeline and proposal renderer over
// HTTP. Handlers hold no cross-request state; concurrent requests are fully
// independent.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"onboarding-engine/internal/analyzer"
	"onboarding-engine/internal/common/config"
	commonerrors "onboarding-engine/internal/common/errors"
	"onboarding-engine/internal/common/logger"
	"onboarding-engine/internal/common/metrics"
	"onboarding-engine/internal/models"
	"onboarding-engine/internal/proposal"
	"onboarding-engine/internal/schema"
	"onboarding-engine/internal/session"
)

type Handler struct {
	analyzer *analyzer.Analyzer
	store    *session.Store
	renderer *proposal.Renderer
	limits   config.LimitsConfig
	logger   logger.Logger
}

func NewHandler(a *analyzer.Analyzer, store *session.Store, renderer *proposal.Renderer, limits config.LimitsConfig, log logger.Logger) *Handler {
	return &Handler{
		analyzer: a,
		store:    store,
		renderer: renderer,
		limits:   limits,
		logger:   log.WithFields(map[string]interface{}{"component": "server"}),
	}
}

// AnalyzeProfile accepts a raw (possibly malformed) business profile,
// normalizes and validates it, runs the analysis and persists the session.
func (h *Handler) AnalyzeProfile(c *gin.Context) {
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be a JSON object"})
		return
	}

	profile, err := schema.ValidateBusinessProfile(schema.NormalizeBusinessProfile(raw))
	if err != nil {
		h.writeError(c, err)
		return
	}

	result, err := h.analyzer.AnalyzeBusinessProfile(c.Request.Context(), profile)
	if err != nil {
		h.writeError(c, err)
		return
	}

	// Session persistence is best-effort: the analysis result is still
	// returned when the store is unavailable.
	record := &session.Record{Profile: profile, Result: result, SavedAt: time.Now().UTC()}
	if err := h.store.SaveAnalysis(c.Request.Context(), record); err != nil {
		h.logger.Warn("session save failed, returning result anyway", map[string]interface{}{
			"error": err.Error(),
		})
	}

	c.JSON(http.StatusOK, result)
}

type documentRequest struct {
	DocumentText string `json:"documentText"`
	SourceName   string `json:"sourceName"`
}

// AnalyzeDocument extracts a business profile from uploaded document text.
// Byte limits are enforced before the pipeline is invoked.
func (h *Handler) AnalyzeDocument(c *gin.Context) {
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be a JSON object"})
		return
	}
	if req.DocumentText == "" || req.SourceName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "documentText and sourceName are required"})
		return
	}
	if int64(len(req.DocumentText)) > h.limits.MaxDocumentBytes {
		h.writeError(c, commonerrors.NewPayloadTooLargeError("Document text", h.limits.MaxDocumentBytes))
		return
	}

	profile, err := h.analyzer.AnalyzeUploadedDocument(c.Request.Context(), req.DocumentText, req.SourceName)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

type suggestionsRequest struct {
	FormData       map[string]interface{} `json:"formData"`
	CurrentSection *int                   `json:"currentSection"`
}

// LiveSuggestions is explicitly best-effort: any pipeline failure degrades
// to an empty suggestions list with a 200 response.
func (h *Handler) LiveSuggestions(c *gin.Context) {
	var req suggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FormData == nil || req.CurrentSection == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	suggestions := h.analyzer.LiveSuggestions(c.Request.Context(), req.FormData)
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

type proposalRequest struct {
	CompanyName     string                   `json:"companyName"`
	Recommendations []map[string]interface{} `json:"recommendations"`
	Blueprint       map[string]interface{}   `json:"blueprint"`
	SalesNotes      string                   `json:"salesNotes"`
}

// GenerateProposal validates the submitted recommendations and optional
// blueprint, then renders the proposal document and its share artifacts.
// With ?download=1 the HTML is served as a named file attachment.
func (h *Handler) GenerateProposal(c *gin.Context) {
	var req proposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be a JSON object"})
		return
	}
	if req.CompanyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyName is required"})
		return
	}

	recs := make([]models.ServiceRecommendation, 0, len(req.Recommendations))
	for _, candidate := range req.Recommendations {
		rec, err := schema.ValidateServiceRecommendation(candidate)
		if err != nil {
			h.writeError(c, err)
			return
		}
		recs = append(recs, *rec)
	}

	var blueprint *models.ProjectBlueprint
	if req.Blueprint != nil {
		bp, err := schema.ValidateProjectBlueprint(req.Blueprint)
		if err != nil {
			h.writeError(c, err)
			return
		}
		blueprint = bp
	}

	now := time.Now().UTC()
	data := proposal.ProposalData{
		CompanyName:     req.CompanyName,
		Recommendations: recs,
		Blueprint:       blueprint,
		GeneratedAt:     now,
		SalesNotes:      req.SalesNotes,
	}

	html, err := h.renderer.RenderHTML(data)
	if err != nil {
		h.logger.Error("proposal rendering failed", map[string]interface{}{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render proposal"})
		return
	}
	metrics.ProposalsRendered.Inc()

	if c.Query("download") == "1" {
		c.Header("Content-Disposition", `attachment; filename="`+proposal.FileName(req.CompanyName, now)+`"`)
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"html":         html,
		"fileName":     proposal.FileName(req.CompanyName, now),
		"shareMessage": proposal.ShareMessage(req.CompanyName, recs, req.SalesNotes),
		"whatsappLink": h.renderer.WhatsAppLink(req.CompanyName, recs, req.SalesNotes),
	})
}

// GetSession returns the most recent stored analysis, if any.
func (h *Handler) GetSession(c *gin.Context) {
	record, err := h.store.LoadAnalysis(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No analysis session found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// writeError maps a pipeline error to a status code and a user-safe body.
// Internal detail never reaches the response; it is already logged upstream.
func (h *Handler) writeError(c *gin.Context, err error) {
	se, ok := commonerrors.AsStandardError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error. Please try again."})
		return
	}

	status := http.StatusBadGateway
	switch se.Code {
	case commonerrors.ErrCodeValidationFailed:
		status = http.StatusBadRequest
	case commonerrors.ErrCodePayloadTooLarge:
		status = http.StatusRequestEntityTooLarge
	case commonerrors.ErrCodeSessionStoreFailed:
		status = http.StatusServiceUnavailable
	}

	body := gin.H{
		"error":     se.Message,
		"code":      se.Code,
		"retryable": se.Retryable,
	}
	if se.Field != "" {
		body["field"] = se.Field
	}
	c.JSON(status, body)
}
