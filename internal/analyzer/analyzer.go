// internal/analyzer/analyzer.go

// Package analyzer turns validated business profiles into model requests and
// model responses into validated domain objects.
package analyzer

import (
	"context"
	"encoding/json"
	"time"

	commonerrors "onboarding-engine/internal/common/errors"
	"onboarding-engine/internal/common/logger"
	"onboarding-engine/internal/common/metrics"
	"onboarding-engine/internal/models"
	"onboarding-engine/internal/schema"
)

// TextGenerator is the single outbound boundary to the generative model:
// one prompt in, one JSON-formatted text response out. No conversation
// state, no streaming.
type TextGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

type Analyzer struct {
	generator TextGenerator
	logger    logger.Logger
}

func New(generator TextGenerator, log logger.Logger) *Analyzer {
	return &Analyzer{
		generator: generator,
		logger:    log.WithFields(map[string]interface{}{"component": "analyzer"}),
	}
}

// AnalyzeBusinessProfile runs the full analysis pipeline for a validated
// profile: build prompt, invoke the model, parse, validate. Transport and
// quota failures are logged with full detail but surfaced only as the
// generic analysis error.
func (a *Analyzer) AnalyzeBusinessProfile(ctx context.Context, profile *models.BusinessProfile) (*models.AnalysisResult, error) {
	const kind = "profile"
	start := time.Now()

	text, err := a.generator.GenerateJSON(ctx, BuildAnalysisPrompt(profile))
	if err != nil {
		a.logger.Error("model call failed", map[string]interface{}{
			"kind":     kind,
			"business": profile.BusinessName,
			"error":    err.Error(),
		})
		metrics.AnalysesFailed.WithLabelValues(kind, string(commonerrors.ErrCodeAnalysisFailed)).Inc()
		return nil, commonerrors.NewAnalysisFailedError()
	}

	candidate, ferr := a.parseResponse(kind, text)
	if ferr != nil {
		return nil, ferr
	}

	result, err := schema.ValidateAnalysisResult(candidate)
	if err != nil {
		return nil, a.schemaFailure(kind, err)
	}

	metrics.AnalysesCompleted.WithLabelValues(kind).Inc()
	metrics.AnalysisDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	a.logger.Info("analysis completed", map[string]interface{}{
		"kind":            kind,
		"business":        profile.BusinessName,
		"recommendations": len(result.Recommendations),
		"durationMs":      time.Since(start).Milliseconds(),
	})
	return result, nil
}

// AnalyzeUploadedDocument extracts a business profile from document text.
// Normalization runs before validation: document extraction is the path most
// likely to emit a scalar where the schema wants an array, and rejecting a
// response over a repairable shape mismatch would discard usable content.
func (a *Analyzer) AnalyzeUploadedDocument(ctx context.Context, documentText, sourceName string) (*models.BusinessProfile, error) {
	const kind = "document"
	start := time.Now()

	text, err := a.generator.GenerateJSON(ctx, BuildDocumentExtractionPrompt(documentText, sourceName))
	if err != nil {
		a.logger.Error("model call failed", map[string]interface{}{
			"kind":   kind,
			"source": sourceName,
			"error":  err.Error(),
		})
		metrics.AnalysesFailed.WithLabelValues(kind, string(commonerrors.ErrCodeAnalysisFailed)).Inc()
		return nil, commonerrors.NewAnalysisFailedError()
	}

	candidate, ferr := a.parseResponse(kind, text)
	if ferr != nil {
		return nil, ferr
	}

	profile, err := schema.ValidateBusinessProfile(schema.NormalizeBusinessProfile(candidate))
	if err != nil {
		return nil, a.schemaFailure(kind, err)
	}

	metrics.AnalysesCompleted.WithLabelValues(kind).Inc()
	metrics.AnalysisDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	a.logger.Info("document extraction completed", map[string]interface{}{
		"kind":       kind,
		"source":     sourceName,
		"business":   profile.BusinessName,
		"durationMs": time.Since(start).Milliseconds(),
	})
	return profile, nil
}

// Suggestion is one live hint shown while the questionnaire is being filled.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// LiveSuggestions is the best-effort hint path: any failure degrades to an
// empty list. Errors are logged and counted but never returned.
func (a *Analyzer) LiveSuggestions(ctx context.Context, formData map[string]interface{}) []Suggestion {
	const kind = "suggestions"

	prompt := BuildLiveSuggestionsPrompt(formData)
	text, err := a.generator.GenerateJSON(ctx, prompt)
	if err != nil {
		a.logger.Warn("live suggestions degraded", map[string]interface{}{"error": err.Error()})
		metrics.AnalysesFailed.WithLabelValues(kind, string(commonerrors.ErrCodeAnalysisFailed)).Inc()
		return []Suggestion{}
	}
	if text == "" {
		return []Suggestion{}
	}

	var parsed struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		a.logger.Warn("live suggestions degraded", map[string]interface{}{"error": err.Error()})
		metrics.AnalysesFailed.WithLabelValues(kind, string(commonerrors.ErrCodeMalformedJSON)).Inc()
		return []Suggestion{}
	}
	if parsed.Suggestions == nil {
		return []Suggestion{}
	}

	metrics.AnalysesCompleted.WithLabelValues(kind).Inc()
	return parsed.Suggestions
}

// parseResponse applies the shared empty-text and JSON checks of the
// response taxonomy.
func (a *Analyzer) parseResponse(kind, text string) (map[string]interface{}, error) {
	if text == "" {
		metrics.AnalysesFailed.WithLabelValues(kind, string(commonerrors.ErrCodeEmptyResponse)).Inc()
		return nil, commonerrors.NewEmptyResponseError()
	}

	var candidate map[string]interface{}
	if err := json.Unmarshal([]byte(text), &candidate); err != nil {
		a.logger.Error("model returned malformed JSON", map[string]interface{}{
			"kind":  kind,
			"error": err.Error(),
		})
		metrics.AnalysesFailed.WithLabelValues(kind, string(commonerrors.ErrCodeMalformedJSON)).Inc()
		return nil, commonerrors.NewMalformedJSONError(err)
	}
	return candidate, nil
}

// schemaFailure reclassifies a validation error on model output as a schema
// violation: the response parsed, but the domain contract was not met.
func (a *Analyzer) schemaFailure(kind string, err error) error {
	metrics.AnalysesFailed.WithLabelValues(kind, string(commonerrors.ErrCodeSchemaViolation)).Inc()

	if se, ok := commonerrors.AsStandardError(err); ok {
		a.logger.Error("model response failed validation", map[string]interface{}{
			"kind":   kind,
			"field":  se.Field,
			"reason": se.Message,
		})
		return commonerrors.NewSchemaViolationError(se.Field, se.Message)
	}
	return commonerrors.NewSchemaViolationError("(root)", err.Error())
}
