package skinanalysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"skin-coach-server/modules/common/utils"
)

type stubGenerator struct {
	text   string
	err    error
	called bool
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string, image *utils.EncodedImage) (string, error) {
	s.called = true
	return s.text, s.err
}

func newTestHandler(stub *stubGenerator) *Handler {
	return &Handler{service: NewService(stub)}
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return body
}

func TestAnalyzeMissingProfile(t *testing.T) {
	stub := &stubGenerator{text: "{}"}
	h := newTestHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/skinAnalysis", strings.NewReader(`{"language":"en"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Analyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decodeErrorBody(t, rec)
	if body["ok"] != false {
		t.Errorf("ok = %v, want false", body["ok"])
	}
	if body["error"] != "Missing profile data." {
		t.Errorf("error = %q", body["error"])
	}
	if stub.called {
		t.Errorf("model must not be called on validation failure")
	}
}

func TestAnalyzeWrongContentType(t *testing.T) {
	h := newTestHandler(&stubGenerator{text: "{}"})

	req := httptest.NewRequest(http.MethodPost, "/skinAnalysis", strings.NewReader(`{"profile":{}}`))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	h.Analyze(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want 415", rec.Code)
	}
}

func TestAnalyzeMethodNotAllowed(t *testing.T) {
	r := mux.NewRouter()
	newTestHandler(&stubGenerator{text: "{}"}).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/skinAnalysis", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestAnalyzeEmptyModelResponse(t *testing.T) {
	h := newTestHandler(&stubGenerator{text: ""})

	req := httptest.NewRequest(http.MethodPost, "/skinAnalysis", strings.NewReader(`{"profile":{"skinType":"oily"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Analyze(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	body := decodeErrorBody(t, rec)
	if body["error"] != "Empty response from AI model." {
		t.Errorf("error = %q", body["error"])
	}
}

func TestAnalyzeUnparsableModelResponse(t *testing.T) {
	h := newTestHandler(&stubGenerator{text: "sorry, I cannot help with that"})

	req := httptest.NewRequest(http.MethodPost, "/skinAnalysis", strings.NewReader(`{"profile":{}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Analyze(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	body := decodeErrorBody(t, rec)
	if body["error"] != "Invalid AI response format." {
		t.Errorf("error = %q", body["error"])
	}
}

func TestAnalyzeSuccessWithFencedJSON(t *testing.T) {
	stub := &stubGenerator{text: "```json\n{\"overallScore\": 80, \"summary\": \"Healthy skin\"}\n```"}
	h := newTestHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/skinAnalysis", strings.NewReader(`{"profile":{"skinType":"dry"},"language":"fr"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Analyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	body := decodeErrorBody(t, rec)
	if body["overallScore"] != float64(80) {
		t.Errorf("overallScore = %v, want 80", body["overallScore"])
	}
	if body["summary"] != "Healthy skin" {
		t.Errorf("summary = %q", body["summary"])
	}
	if !stub.called {
		t.Errorf("model was never called")
	}
}
