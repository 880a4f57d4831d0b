package handlers

import (
	"net/http"
	"testing"
)

type loginBody struct {
	OK    bool          `json:"ok"`
	Error string        `json:"error"`
	User  *userResponse `json:"user"`
}

func TestLoginSuccess(t *testing.T) {
	h := newTestHandler(t)

	rr := postJSON(t, h.Login, "/api/auth/login", `{"email":"demo@edulink.local","password":"demo123"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body)
	}

	var body loginBody
	decodeJSON(t, rr, &body)
	if !body.OK {
		t.Error("ok = false, want true")
	}
	if body.User == nil || body.User.Username != "demo" || body.User.Email != "demo@edulink.local" {
		t.Errorf("user = %+v", body.User)
	}
}

func TestLoginIdempotent(t *testing.T) {
	h := newTestHandler(t)

	var ids []uint
	for i := 0; i < 2; i++ {
		rr := postJSON(t, h.Login, "/api/auth/login", `{"email":"demo@edulink.local","password":"demo123"}`)
		if rr.Code != http.StatusOK {
			t.Fatalf("login %d: status = %d", i, rr.Code)
		}
		var body loginBody
		decodeJSON(t, rr, &body)
		if body.User == nil {
			t.Fatalf("login %d: no user in response", i)
		}
		ids = append(ids, body.User.ID)
	}

	if ids[0] != ids[1] {
		t.Errorf("logins returned different ids: %d vs %d", ids[0], ids[1])
	}
	if got := userCount(t, h); got != 1 {
		t.Errorf("user count = %d, want 1", got)
	}
}

func TestLoginRejected(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"demo@edulink.local","password":"nope"}`},
		{"wrong email", `{"email":"other@example.com","password":"demo123"}`},
		{"missing fields", `{}`},
		{"empty body", ``},
		{"not json", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(t, h.Login, "/api/auth/login", tt.body)
			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rr.Code)
			}

			var body loginBody
			decodeJSON(t, rr, &body)
			if body.OK {
				t.Error("ok = true, want false")
			}
			if body.Error == "" {
				t.Error("error message is empty")
			}
		})
	}

	if got := userCount(t, h); got != 0 {
		t.Errorf("user count = %d, want 0 after failed logins", got)
	}
}
