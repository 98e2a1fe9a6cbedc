package bootstrap

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"readiness-backend/internal/shared/config"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	r, err := Build(config.Config{Port: "8080", Env: "test"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, headers map[string]string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

var guestHeaders = map[string]string{"X-Guest-Id": "g-123"}

func userHeaders(userID string) map[string]string {
	return map[string]string{"X-User-Id": userID, "X-Company-Id": "comp-1"}
}

func adminHeaders() map[string]string {
	return map[string]string{"X-User-Id": "admin-1", "X-User-Role": "admin"}
}

func deviceProbe() map[string]any {
	return map[string]any{
		"userAgent":        "Mozilla/5.0 (X11; Linux x86_64)",
		"screenResolution": "1920x1080",
		"timezone":         "Europe/Berlin",
		"language":         "de-DE",
		"platform":         "Linux x86_64",
		"cookieEnabled":    true,
		"localStorage":     true,
		"sessionStorage":   true,
		"canvas":           "c4nv4s-h4sh",
		"webgl":            "ANGLE (Mesa)",
	}
}

func TestHealth(t *testing.T) {
	r := newTestEngine(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/health", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMissingIdentityRejected(t *testing.T) {
	r := newTestEngine(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/assessments", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestGuestSubmitAndRecommendations(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/assessments", guestHeaders, map[string]any{
		"tier": "tier1",
		"responses": map[string]string{
			"t1_strategy": "BASIC",
			"t1_data":     "EMERGING",
			"t1_customer": "WORLD_CLASS",
		},
		"device": deviceProbe(),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decode(t, w)
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("expected assessment id in response")
	}
	result, _ := created["result"].(map[string]any)
	if result == nil {
		t.Fatalf("expected a scored result, got %v", created)
	}
	if got := result["overallScore"].(float64); got != 58 {
		t.Fatalf("expected overall score 58, got %v", got)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/assessments/"+id+"/recommendations", guestHeaders, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	recs, _ := decode(t, w)["recommendations"].([]any)
	if len(recs) == 0 {
		t.Fatal("expected recommendations for a scored assessment")
	}
	first, _ := recs[0].(map[string]any)
	if first["isPriority"] != true {
		t.Fatalf("expected the priority recommendation first, got %v", first)
	}
}

func TestAnonymousSubmitThenIdentifyLinks(t *testing.T) {
	r := newTestEngine(t)
	probe := deviceProbe()

	w := doJSON(t, r, http.MethodPost, "/api/v1/assessments", guestHeaders, map[string]any{
		"tier":      "tier1",
		"responses": map[string]string{"t1_strategy": "ESTABLISHED"},
		"device":    probe,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	assessmentID, _ := decode(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/v1/identify", userHeaders("user-1"), map[string]any{
		"email":    "user@example.com",
		"fullName": "Alex Example",
		"device":   probe,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("identify: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	linked, _ := decode(t, w)["linkedAssessments"].([]any)
	if len(linked) != 1 {
		t.Fatalf("expected 1 linked assessment, got %d", len(linked))
	}
	got, _ := linked[0].(map[string]any)
	if got["id"] != assessmentID {
		t.Fatalf("expected linked assessment %s, got %v", assessmentID, got["id"])
	}
	if got["userId"] != "user-1" {
		t.Fatalf("expected owner user-1, got %v", got["userId"])
	}

	// repeat identification finds nothing new
	w = doJSON(t, r, http.MethodPost, "/api/v1/identify", userHeaders("user-1"), map[string]any{
		"email":  "user@example.com",
		"device": probe,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("second identify: expected 200, got %d", w.Code)
	}
	linked, _ = decode(t, w)["linkedAssessments"].([]any)
	if len(linked) != 0 {
		t.Fatalf("expected no newly linked assessments, got %d", len(linked))
	}

	// the linked assessment now shows up in the user's list
	w = doJSON(t, r, http.MethodGet, "/api/v1/assessments", userHeaders("user-1"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	listed, _ := decode(t, w)["assessments"].([]any)
	if len(listed) != 1 {
		t.Fatalf("expected 1 assessment in list, got %d", len(listed))
	}
}

func TestIdentifyRejectsGuests(t *testing.T) {
	r := newTestEngine(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/identify", guestHeaders, map[string]any{
		"email": "user@example.com",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestCompanyRoutesRequireAdmin(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/companies", userHeaders("user-1"), nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/companies", adminHeaders(), map[string]any{
		"name":     "Acme GmbH",
		"industry": "manufacturing",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	company := decode(t, w)
	if company["name"] != "Acme GmbH" {
		t.Fatalf("unexpected company %v", company)
	}
}

func TestCallRequestLifecycleOverHTTP(t *testing.T) {
	r := newTestEngine(t)

	// creation is open to guests
	w := doJSON(t, r, http.MethodPost, "/api/v1/call-requests", guestHeaders, map[string]any{
		"name":  "Jamie Fischer",
		"email": "jamie@example.com",
		"phone": "+49 30 1234567",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	requestID, _ := decode(t, w)["id"].(string)

	// management needs the admin role
	w = doJSON(t, r, http.MethodGet, "/api/v1/call-requests", guestHeaders, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("list as guest: expected 403, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/v1/call-requests/"+requestID, adminHeaders(), map[string]any{
		"status": "scheduled",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("schedule: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPatch, "/api/v1/call-requests/"+requestID, adminHeaders(), map[string]any{
		"status": "pending",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("backward transition: expected 409, got %d", w.Code)
	}
}

func TestDimensionsEndpoints(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/dimensions", guestHeaders, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	dims, _ := decode(t, w)["dimensions"].([]any)
	if len(dims) != 10 {
		t.Fatalf("expected 10 dimensions, got %d", len(dims))
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/dimensions/digital-strategy", guestHeaders, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/v1/dimensions/nope", guestHeaders, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get missing: expected 404, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestEngine(t)
	w := doJSON(t, r, http.MethodGet, "/metrics", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("assessment_submitted_total")) {
		t.Fatalf("expected counters in metrics output, got %q", w.Body.String())
	}
}
