// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admin

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/rahad-campaign/models"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestBuildView_PlaceholdersAndOrder(t *testing.T) {
	older := now.Add(-2 * time.Hour).UnixMilli()
	newer := now.Add(-5 * time.Minute).UnixMilli()

	in := Input{
		Volunteers: []models.VolunteerSubmission{
			{ID: "v1", Timestamp: older, Name: "Karim", Skills: ""},
			{ID: "v2", Timestamp: newer, Name: "Rahim", Skills: "Driving", Email: "r@example.com"},
		},
		Problems: []models.ProblemReport{
			{ID: "p1", Timestamp: newer, Category: models.CategoryWater, Contact: ""},
		},
		Options: []models.PollOption{
			{ID: "edu", Label: models.LocalizedString{BN: "শিক্ষা", EN: "Education"}},
			{ID: "job", Label: models.LocalizedString{BN: "কর্মসংস্থান", EN: "Jobs"}},
		},
		Tally: map[string]int{"edu": 3},
	}

	view := BuildView(in, now, models.LangEnglish)

	if view.Volunteers[0].ID != "v2" || view.Volunteers[1].ID != "v1" {
		t.Errorf("Expected newest volunteer first, got %s, %s", view.Volunteers[0].ID, view.Volunteers[1].ID)
	}
	if view.Volunteers[1].Skills != NoSkills {
		t.Errorf("Skills = %q, want %q", view.Volunteers[1].Skills, NoSkills)
	}
	if view.Volunteers[1].Email != NoContact {
		t.Errorf("Email = %q, want %q", view.Volunteers[1].Email, NoContact)
	}
	if view.Volunteers[0].Skills != "Driving" {
		t.Errorf("Filled skills should be kept, got %q", view.Volunteers[0].Skills)
	}
	if view.Problems[0].Contact != NoContact {
		t.Errorf("Contact = %q, want %q", view.Problems[0].Contact, NoContact)
	}
	if in.Volunteers[0].Skills != "" {
		t.Error("BuildView must not modify its input")
	}

	if got := view.Volunteers[0].Submitted.Relative; got != "5 minutes ago" {
		t.Errorf("Relative = %q, want %q", got, "5 minutes ago")
	}
	if got := view.Volunteers[1].Submitted.Time; got == "" {
		t.Error("Expected formatted time")
	}

	wantCounts := Counts{Volunteers: 2, Problems: 1, Meetings: 0}
	if diff := cmp.Diff(wantCounts, view.Counts); diff != "" {
		t.Errorf("Counts mismatch (-want +got):\n%s", diff)
	}
	if view.Total() != 3 {
		t.Errorf("Total() = %d, want 3", view.Total())
	}

	wantTally := []TallyRow{
		{OptionID: "edu", Label: "Education", Votes: 3},
		{OptionID: "job", Label: "Jobs", Votes: 0},
	}
	if diff := cmp.Diff(wantTally, view.Tally); diff != "" {
		t.Errorf("Tally mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildView_Empty(t *testing.T) {
	view := BuildView(Input{}, now, models.LangBengali)
	if view.Volunteers == nil || view.Problems == nil || view.Meetings == nil {
		t.Error("Expected empty, non-nil rows")
	}
	if view.Total() != 0 {
		t.Errorf("Total() = %d, want 0", view.Total())
	}
}

func TestWriteCSV_Problems(t *testing.T) {
	problems := []models.ProblemReport{
		{ID: "p2", Timestamp: 1700000000002, Category: "Roads", Location: "Ward 4, Fakirhat", Description: "Broken \"main\" road\nsince June"},
		{ID: "p1", Timestamp: 1700000000001, Category: "Water", Location: "Mongla", Description: "Tube well"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, problems); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	rows, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(rows) != len(problems)+1 {
		t.Fatalf("Expected %d rows, got %d", len(problems)+1, len(rows))
	}

	wantHeader := []string{"id", "timestamp", "category", "location", "description", "contact"}
	if diff := cmp.Diff(wantHeader, rows[0]); diff != "" {
		t.Errorf("Header mismatch (-want +got):\n%s", diff)
	}
	if rows[1][3] != "Ward 4, Fakirhat" || rows[1][4] != problems[0].Description {
		t.Errorf("Field values not recovered: %v", rows[1])
	}
	if rows[1][1] != "1700000000002" {
		t.Errorf("Timestamp cell = %q", rows[1][1])
	}
	if rows[2][5] != "" {
		t.Errorf("Empty contact should be an empty cell, got %q", rows[2][5])
	}
}

func TestWriteCSV_OneLinePerRecord(t *testing.T) {
	volunteers := []models.VolunteerSubmission{
		{ID: "v3", Timestamp: 3, Name: "Karim, Jr.", Phone: "017", Area: "Ward 4", Skills: "Driving\nFirst aid"},
		{ID: "v2", Timestamp: 2, Name: `Rahim "Babu"`, Phone: "018", Area: "Ward 1\r\nMongla", Email: "r@example.com"},
		{ID: "v1", Timestamp: 1, Name: "Salma", Phone: "019", Area: "Chitalmari", Skills: "<b>Design</b>\tIT \\ web"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, volunteers); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, "\n"); got != len(volunteers)+1 {
		t.Fatalf("Expected %d lines, got %d:\n%s", len(volunteers)+1, got, out)
	}
	if strings.Contains(out, "\r") {
		t.Errorf("Carriage return leaked into output:\n%s", out)
	}

	rows, err := ReadCSV(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	for i, v := range volunteers {
		want := []string{v.ID, fmt.Sprint(v.Timestamp), v.Name, v.Phone, v.Email, v.Area, v.Skills}
		if diff := cmp.Diff(want, rows[i+1]); diff != "" {
			t.Errorf("Row %d mismatch (-want +got):\n%s", i+1, diff)
		}
	}
}

func TestWriteCSV_CellsAreJSON(t *testing.T) {
	var buf bytes.Buffer
	WriteCSV(&buf, []models.ProblemReport{{ID: "p", Timestamp: 5, Category: "Roads", Location: "L", Description: "a\nb"}})

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{`"p"`, "5", `"Roads"`, `"L"`, `"a\nb"`, ""}
	if diff := cmp.Diff(want, rows[1]); diff != "" {
		t.Errorf("Raw cells mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCSV_EmptyHasHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV[models.MeetingInvitation](&buf, nil); err != nil {
		t.Fatal(err)
	}
	want := "id,timestamp,name,phone,location,peopleCount,isCommitted\n"
	if buf.String() != want {
		t.Errorf("WriteCSV() = %q, want %q", buf.String(), want)
	}
}

func TestWriteCSV_MeetingBool(t *testing.T) {
	var buf bytes.Buffer
	WriteCSV(&buf, []models.MeetingInvitation{{ID: "m", Timestamp: 1, PeopleCount: "40", IsCommitted: true}})

	rows, err := ReadCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := rows[1][5:]; got[0] != "40" || got[1] != "true" {
		t.Errorf("Unexpected meeting row: %q", rows[1])
	}
}

func TestReadCSV_RejectsInvalidCell(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("id\nnot-json\n")); err == nil {
		t.Error("Expected error for a cell that is not JSON")
	}
}

func TestExportFilename(t *testing.T) {
	if got := ExportFilename("volunteers"); got != "volunteers.csv" {
		t.Errorf("ExportFilename() = %q", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	got := string(RenderMarkdown("## Water\n- Fix **tube wells**\n<script>alert(1)</script>"))

	for _, want := range []string{"<h2>Water</h2>", "<strong>tube wells</strong>"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderMarkdown() missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("Raw HTML should not be passed through:\n%s", got)
	}
}

func TestRenderDashboard(t *testing.T) {
	view := BuildView(Input{
		Volunteers: []models.VolunteerSubmission{{ID: "v1", Timestamp: now.UnixMilli(), Name: "<b>Karim</b>"}},
		Options:    []models.PollOption{{ID: "edu", Label: models.LocalizedString{BN: "শিক্ষা", EN: "Education"}}},
	}, now, models.LangEnglish)

	var buf bytes.Buffer
	if err := RenderDashboard(&buf, view); err != nil {
		t.Fatalf("RenderDashboard() error = %v", err)
	}
	page := buf.String()

	for _, want := range []string{"Admin Dashboard", "&lt;b&gt;Karim&lt;/b&gt;", "/admin/export/volunteers", "Education"} {
		if !strings.Contains(page, want) {
			t.Errorf("Dashboard missing %q", want)
		}
	}
}
