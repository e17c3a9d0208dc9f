// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/rahad-campaign/models"
)

// captureLogs routes the default logger into a buffer for the test's lifetime.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

// completedStatus returns the status of the "request completed" log line.
func completedStatus(t *testing.T, logs *bytes.Buffer) int {
	t.Helper()
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var entry struct {
			Msg    string `json:"msg"`
			Status int    `json:"status"`
		}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Invalid log line %q: %v", line, err)
		}
		if entry.Msg == "request completed" {
			return entry.Status
		}
	}
	t.Fatal("No request completed log line")
	return 0
}

func TestWithLogging_RecordsStatus(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    int
	}{
		{
			name:    "implicit 200",
			handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("OK")) },
			want:    http.StatusOK,
		},
		{
			name: "created",
			handler: func(w http.ResponseWriter, r *http.Request) {
				JSONResponse(w, http.StatusCreated, map[string]string{"id": "v1"})
			},
			want: http.StatusCreated,
		},
		{
			name: "conflict",
			handler: func(w http.ResponseWriter, r *http.Request) {
				ErrorResponse(w, http.StatusConflict, "already voted")
			},
			want: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			w := httptest.NewRecorder()

			WithLogging(tt.handler)(w, httptest.NewRequest("POST", "/poll/votes", nil))

			if w.Code != tt.want {
				t.Errorf("Response status = %d, want %d", w.Code, tt.want)
			}
			if got := completedStatus(t, logs); got != tt.want {
				t.Errorf("Logged status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusBadRequest, "name is required")

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var got models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	want := models.ErrorResponse{Error: "Bad Request", Message: "name is required"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ErrorResponse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSONBody_FormBodies(t *testing.T) {
	t.Run("volunteer", func(t *testing.T) {
		body := `{"name":"করিম","phone":"01712345678","area":"Ward 4","skills":"Driving\nFirst aid","extra":1}`
		var req models.VolunteerRequest
		if err := ParseJSONBody(httptest.NewRequest("POST", "/volunteers", strings.NewReader(body)), &req); err != nil {
			t.Fatalf("ParseJSONBody() error = %v", err)
		}
		want := models.VolunteerRequest{Name: "করিম", Phone: "01712345678", Area: "Ward 4", Skills: "Driving\nFirst aid"}
		if diff := cmp.Diff(want, req); diff != "" {
			t.Errorf("VolunteerRequest mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("meeting consent flag", func(t *testing.T) {
		body := `{"name":"Rahim","phone":"018","location":"Mongla","peopleCount":"40","isCommitted":true}`
		var req models.MeetingRequest
		if err := ParseJSONBody(httptest.NewRequest("POST", "/meetings", strings.NewReader(body)), &req); err != nil {
			t.Fatalf("ParseJSONBody() error = %v", err)
		}
		if !req.IsCommitted || req.PeopleCount != "40" {
			t.Errorf("Unexpected meeting request %+v", req)
		}
	})

	t.Run("invalid bodies", func(t *testing.T) {
		for _, body := range []string{"", "{not json", `{"isCommitted":"yes"}`} {
			var req models.MeetingRequest
			if err := ParseJSONBody(httptest.NewRequest("POST", "/meetings", strings.NewReader(body)), &req); err == nil {
				t.Errorf("ParseJSONBody(%q) expected error", body)
			}
		}
	})
}

func TestCORS(t *testing.T) {
	var called bool
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("preflight allows site headers", func(t *testing.T) {
		called = false
		req := httptest.NewRequest("OPTIONS", "/poll/votes", nil)
		req.Header.Set("Origin", "https://rahad.example")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if called {
			t.Error("Preflight should not reach the handler")
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://rahad.example" {
			t.Errorf("Allow-Origin = %q", got)
		}
		allowed := w.Header().Get("Access-Control-Allow-Headers")
		for _, h := range []string{DeviceHeader, AdminHeader, "Content-Type", "Accept-Language"} {
			if !strings.Contains(allowed, h) {
				t.Errorf("Allow-Headers %q missing %s", allowed, h)
			}
		}
		if methods := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(methods, "POST") {
			t.Errorf("Allow-Methods %q missing POST", methods)
		}
	})

	t.Run("regular request passes through", func(t *testing.T) {
		called = false
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/poll", nil))

		if !called {
			t.Error("Handler should be called")
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Allow-Origin without Origin header = %q, want *", got)
		}
	})
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain takes first hop", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.2:1234", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.4"}, "10.0.0.2:1234", "198.51.100.4"},
		{"remote addr without port", nil, "192.0.2.1:5678", "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := GetClientIP(req); got != tt.want {
				t.Errorf("GetClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
