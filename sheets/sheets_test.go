// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/rahad-campaign/models"
)

func TestSubmit_NotConfigured(t *testing.T) {
	c := NewClient("", time.Second)
	err := c.Submit(context.Background(), models.KindVolunteer, models.VolunteerSubmission{ID: "1"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Submit() error = %v, want ErrNotConfigured", err)
	}
}

func TestSubmit_Envelope(t *testing.T) {
	var got Envelope
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("Invalid envelope JSON: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	record := models.ProblemReport{
		ID:          "abc",
		Timestamp:   1700000000000,
		Category:    models.CategoryWater,
		Location:    "Ward 4",
		Description: "Tube well broken",
	}
	if err := c.Submit(context.Background(), models.KindProblem, record); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("Expected JSON content type, got %q", gotContentType)
	}
	if got.Action != "submit" || got.Type != "problem" {
		t.Errorf("Unexpected envelope header: action=%q type=%q", got.Action, got.Type)
	}
	if got.Data["location"] != "Ward 4" || got.Data["category"] != "Water" {
		t.Errorf("Record fields not forwarded: %v", got.Data)
	}
	if got.Data["serverTimestamp"] != "2026-01-02T03:04:05Z" {
		t.Errorf("Unexpected serverTimestamp %v", got.Data["serverTimestamp"])
	}
	// original timestamp is kept alongside the server one
	if got.Data["timestamp"] != float64(1700000000000) {
		t.Errorf("Expected record timestamp kept, got %v", got.Data["timestamp"])
	}
}

func TestSubmit_ResponseIsOpaque(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "script error", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	if err := c.Submit(context.Background(), models.KindMeeting, models.MeetingInvitation{ID: "m"}); err != nil {
		t.Errorf("Submit() should ignore response status, got %v", err)
	}
}

func TestSubmit_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient(url, time.Second)
	if err := c.Submit(context.Background(), models.KindVolunteer, models.VolunteerSubmission{ID: "v"}); err == nil {
		t.Error("Submit() expected error for unreachable endpoint")
	}
}

func TestForwarder_SendsInBackground(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		hits.Add(1)
	}))
	defer server.Close()

	f := NewForwarder(NewClient(server.URL, 5*time.Second))

	start := time.Now()
	f.Forward(models.KindVolunteer, models.VolunteerSubmission{ID: "1"})
	f.Forward(models.KindProblem, models.ProblemReport{ID: "2"})
	if time.Since(start) > time.Second {
		t.Error("Forward() should not block on the sink")
	}

	close(release)
	f.Wait()

	if hits.Load() != 2 {
		t.Errorf("Expected 2 requests, got %d", hits.Load())
	}
}

func TestForwarder_NotConfiguredIsNoop(t *testing.T) {
	f := NewForwarder(NewClient("", time.Second))
	f.Forward(models.KindVolunteer, models.VolunteerSubmission{ID: "1"})
	f.Wait()
}
