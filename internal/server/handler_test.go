// internal/server/handler_test.go
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding-engine/internal/analyzer"
	"onboarding-engine/internal/common/config"
	"onboarding-engine/internal/common/database"
	"onboarding-engine/internal/common/logger"
	"onboarding-engine/internal/proposal"
	"onboarding-engine/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) GenerateJSON(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

type testEnv struct {
	router *gin.Engine
	store  *session.Store
	redis  *miniredis.Miniredis
}

func newTestEnv(t *testing.T, gen analyzer.TextGenerator) *testEnv {
	t.Helper()
	log := logger.NewTestLogger(t)

	mr := miniredis.RunT(t)
	client, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	store := session.NewStore(client, 0, log)
	renderer := proposal.NewRenderer(config.ContactConfig{
		Company:  "Cehpoint Technology Consulting",
		Phone:    "+91 909 115 6095",
		Email:    "sales@cehpoint.co.in",
		Website:  "cehpoint.co.in",
		WhatsApp: "919091156095",
	})
	limits := config.LimitsConfig{MaxDocumentBytes: 1024, MaxPayloadBytes: 64 * 1024}

	h := NewHandler(analyzer.New(gen, log), store, renderer, limits, log)
	return &testEnv{
		router: NewRouter(h, log, limits.MaxPayloadBytes),
		store:  store,
		redis:  mr,
	}
}

func (e *testEnv) post(t *testing.T, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func rawProfile() map[string]interface{} {
	m := map[string]interface{}{
		"businessName":     "Acme Retail",
		"industry":         "Retail",
		"businessModel":    "B2C",
		"yearEstablished":  "2015",
		"teamSize":         "11-50",
		"operatingRegions": "USA, Canada",
		"hasWebsite":       "yes",
	}
	stringFields := []string{
		"coreOperations", "workflowChallenges", "manualTasks", "currentTools",
		"technologyStack", "cybersecurityPractices", "apiIntegrations",
		"shortTermGoals", "longTermGoals", "upcomingLaunches", "automationAreas",
		"revenueChallenges", "salesMarketingChallenges", "techBottlenecks",
		"customerSupportChallenges", "complianceConcerns", "targetCustomers",
		"competitors", "dataFormat", "industrySpecificProcesses",
		"budgetPreference", "preferredSolutionType", "deadline",
		"resourceConstraints",
	}
	for _, f := range stringFields {
		m[f] = "Not specified"
	}
	return m
}

func recommendationPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":             "Inventory Automation",
		"category":          "Process Automation & Optimization",
		"description":       "Automate stock tracking.",
		"whyNeeded":         "Manual counts cause errors.",
		"howItHelps":        "Removes reconciliation work.",
		"businessImpact":    "Saves 20 hours per week.",
		"expectedROI":       "Payback in 4 months.",
		"priority":          "High",
		"estimatedTimeline": "2-3 months",
		"estimatedCost":     "₹45,000 ($540)",
	}
}

func analysisResponseJSON(t *testing.T) string {
	t.Helper()
	payload := map[string]interface{}{
		"recommendations": []interface{}{recommendationPayload()},
		"projectBlueprint": map[string]interface{}{
			"deliverables": []interface{}{"Dashboard"},
			"timeline":     "3-6 months",
			"costBracket":  "₹80,000 ($960)",
			"phases": []interface{}{
				map[string]interface{}{
					"name":        "Discovery",
					"duration":    "2 weeks",
					"description": "Audit the workflow.",
				},
			},
		},
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(data)
}

func TestAnalyzeProfile_Success(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{response: analysisResponseJSON(t)})

	rec := env.post(t, "/api/analyze-profile", rawProfile())

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	recs := body["recommendations"].([]interface{})
	assert.Len(t, recs, 1)
	assert.NotNil(t, body["projectBlueprint"])

	// The analysis session was persisted.
	record, err := env.store.LoadAnalysis(context.Background())
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Acme Retail", record.Profile.BusinessName)
	assert.Equal(t, []string{"USA", "Canada"}, record.Profile.OperatingRegions)
}

func TestAnalyzeProfile_ValidationFailure(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{response: analysisResponseJSON(t)})
	profile := rawProfile()
	delete(profile, "industry")

	rec := env.post(t, "/api/analyze-profile", profile)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
	assert.Equal(t, "industry", body["field"])
	assert.Equal(t, false, body["retryable"])
}

func TestAnalyzeProfile_UpstreamFailure(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{err: errors.New("quota exceeded: key AIza123")})

	rec := env.post(t, "/api/analyze-profile", rawProfile())

	require.Equal(t, http.StatusBadGateway, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ANALYSIS_FAILED", body["code"])
	assert.Equal(t, true, body["retryable"])
	assert.NotContains(t, rec.Body.String(), "AIza123")
}

func TestAnalyzeProfile_SucceedsWhenSessionStoreDown(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{response: analysisResponseJSON(t)})
	env.redis.Close()

	rec := env.post(t, "/api/analyze-profile", rawProfile())

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnalyzeDocument_Success(t *testing.T) {
	profile := rawProfile()
	profile["hasWebsite"] = true
	data, err := json.Marshal(profile)
	require.NoError(t, err)
	env := newTestEnv(t, &stubGenerator{response: string(data)})

	rec := env.post(t, "/api/analyze-document", map[string]interface{}{
		"documentText": "Acme Retail is a chain of stores.",
		"sourceName":   "acme.pdf",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Acme Retail", body["businessName"])
}

func TestAnalyzeDocument_MissingFields(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{})

	rec := env.post(t, "/api/analyze-document", map[string]interface{}{
		"documentText": "some text",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeDocument_TooLarge(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{})

	rec := env.post(t, "/api/analyze-document", map[string]interface{}{
		"documentText": strings.Repeat("a", 2048),
		"sourceName":   "big.pdf",
	})

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", body["code"])
}

func TestLiveSuggestions_Success(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{
		response: `{"suggestions": [{"title": "CRM Setup", "description": "Track leads.", "icon": "Database"}]}`,
	})

	rec := env.post(t, "/api/live-suggestions", map[string]interface{}{
		"formData":       map[string]interface{}{"industry": "Retail"},
		"currentSection": 1,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["suggestions"].([]interface{}), 1)
}

func TestLiveSuggestions_DegradesOnUpstreamFailure(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{err: errors.New("timeout")})

	rec := env.post(t, "/api/live-suggestions", map[string]interface{}{
		"formData":       map[string]interface{}{"industry": "Retail"},
		"currentSection": 1,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Empty(t, body["suggestions"])
}

func TestLiveSuggestions_InvalidRequest(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{})

	rec := env.post(t, "/api/live-suggestions", map[string]interface{}{
		"formData": map[string]interface{}{"industry": "Retail"},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid request data", body["error"])
}

func TestGenerateProposal_Success(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{})

	rec := env.post(t, "/api/proposal", map[string]interface{}{
		"companyName":     "Acme Retail",
		"recommendations": []interface{}{recommendationPayload()},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["html"], "Acme Retail")
	assert.Contains(t, body["fileName"], "Cehpoint_Proposal_Acme_Retail_")
	assert.Contains(t, body["shareMessage"], "Total Solutions: 1")
	assert.Contains(t, body["whatsappLink"], "wa.me/919091156095")
}

func TestGenerateProposal_Download(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{})

	rec := env.post(t, "/api/proposal?download=1", map[string]interface{}{
		"companyName":     "Acme Retail",
		"recommendations": []interface{}{recommendationPayload()},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	disposition := rec.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "Cehpoint_Proposal_Acme_Retail_")
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
}

func TestGenerateProposal_InvalidRecommendation(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{})
	bad := recommendationPayload()
	bad["category"] = "Miscellaneous"

	rec := env.post(t, "/api/proposal", map[string]interface{}{
		"companyName":     "Acme Retail",
		"recommendations": []interface{}{bad},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
}

func TestGenerateProposal_MissingCompanyName(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{})

	rec := env.post(t, "/api/proposal", map[string]interface{}{
		"recommendations": []interface{}{recommendationPayload()},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSession(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{response: analysisResponseJSON(t)})

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	env.post(t, "/api/analyze-profile", rawProfile())

	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.NotNil(t, body["profile"])
	assert.NotNil(t, body["result"])
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
