package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Chaitanya2267/edulink/config"
)

func newTestHandler(t *testing.T) *DBHandler {
	t.Helper()

	db, err := config.Connect(filepath.Join(t.TempDir(), "edulink_test.db"), false)
	if err != nil {
		t.Fatalf("connecting test database: %v", err)
	}

	return &DBHandler{DB: db, Settings: config.Settings{
		DemoEmail:    "demo@edulink.local",
		DemoUsername: "demo",
		DemoPassword: "demo123",
	}}
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	h.Health(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var body map[string]string
	decodeJSON(t, rr, &body)
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
	if body["message"] == "" {
		t.Error("message field is empty")
	}
}
