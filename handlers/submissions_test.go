// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/rahad-campaign/models"
	"github.com/danielhkuo/rahad-campaign/storage"
	"github.com/danielhkuo/rahad-campaign/testutil"
)

func TestCreateVolunteer(t *testing.T) {
	env := newTestEnv(t)

	req := testutil.MakeRequest("POST", "/volunteers", models.VolunteerRequest{
		Name:  "Karim",
		Phone: "01712345678",
		Area:  "Ward 4",
	}, nil)
	w := httptest.NewRecorder()

	env.submission.CreateVolunteer(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.SubmissionResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.ID == "" || resp.Timestamp == 0 {
		t.Errorf("Expected id and timestamp, got %+v", resp)
	}
	if resp.Title != "ধন্যবাদ!" {
		t.Errorf("Expected Bengali acknowledgment by default, got %q", resp.Title)
	}
	if resp.DisplayMS != models.AckDisplayMillis {
		t.Errorf("DisplayMS = %d, want %d", resp.DisplayMS, models.AckDisplayMillis)
	}

	stored := storage.Load[models.VolunteerSubmission](context.Background(), env.kv, storage.KeyVolunteers)
	if len(stored) != 1 || stored[0].ID != resp.ID {
		t.Fatalf("Expected stored volunteer %s, got %+v", resp.ID, stored)
	}

	calls := env.forwarder.Calls()
	if len(calls) != 1 || calls[0].Kind != models.KindVolunteer {
		t.Errorf("Expected one volunteer forward, got %+v", calls)
	}
}

func TestCreateSubmission_EnglishAck(t *testing.T) {
	env := newTestEnv(t)

	testCases := []struct {
		name      string
		handler   http.HandlerFunc
		path      string
		body      any
		wantTitle string
	}{
		{
			name:      "problem",
			handler:   env.submission.CreateProblem,
			path:      "/problems?lang=en",
			body:      models.ProblemRequest{Category: "Water", Location: "Mongla", Description: "No clean water"},
			wantTitle: "Report Submitted",
		},
		{
			name:      "meeting",
			handler:   env.submission.CreateMeeting,
			path:      "/meetings?lang=en",
			body:      models.MeetingRequest{Name: "Rahim", Phone: "018", Location: "Fakirhat", PeopleCount: "40", IsCommitted: true},
			wantTitle: "Invitation Received",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tc.handler(w, testutil.MakeRequest("POST", tc.path, tc.body, nil))

			testutil.AssertStatus(t, w, http.StatusCreated)
			var resp models.SubmissionResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Title != tc.wantTitle {
				t.Errorf("Title = %q, want %q", resp.Title, tc.wantTitle)
			}
		})
	}
}

func TestCreateSubmission_Rejected(t *testing.T) {
	env := newTestEnv(t)

	testCases := []struct {
		name        string
		handler     http.HandlerFunc
		body        any
		wantMessage string
	}{
		{"volunteer missing phone", env.submission.CreateVolunteer, models.VolunteerRequest{Name: "A", Area: "W"}, "phone"},
		{"problem missing description", env.submission.CreateProblem, models.ProblemRequest{Location: "L"}, "description"},
		{"problem unknown category", env.submission.CreateProblem, models.ProblemRequest{Category: "Parks", Location: "L", Description: "D"}, "category"},
		{"meeting without consent", env.submission.CreateMeeting, models.MeetingRequest{Name: "A", Phone: "1", Location: "L", PeopleCount: "5"}, "isCommitted"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tc.handler(w, testutil.MakeRequest("POST", "/", tc.body, nil))

			testutil.AssertStatus(t, w, http.StatusBadRequest)
			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if !strings.Contains(resp.Message, tc.wantMessage) {
				t.Errorf("Message %q does not mention %q", resp.Message, tc.wantMessage)
			}
		})
	}

	if len(env.forwarder.Calls()) != 0 {
		t.Error("Rejected submissions must not be forwarded")
	}
}

func TestCreateSubmission_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("POST", "/volunteers", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	env.submission.CreateVolunteer(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
