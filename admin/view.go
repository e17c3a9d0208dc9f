// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admin

import (
	"cmp"
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/rahad-campaign/models"
)

// Placeholders for optional fields left blank
const (
	NoSkills  = "None"
	NoContact = "N/A"
)

const timeLayout = "2006-01-02 15:04"

// Submitted is the display form of a record timestamp.
type Submitted struct {
	Time     string `json:"time"`
	Relative string `json:"relative"`
}

type VolunteerRow struct {
	models.VolunteerSubmission
	Submitted Submitted `json:"submitted"`
}

type ProblemRow struct {
	models.ProblemReport
	Submitted Submitted `json:"submitted"`
}

type MeetingRow struct {
	models.MeetingInvitation
	Submitted Submitted `json:"submitted"`
}

type Counts struct {
	Volunteers int `json:"volunteers"`
	Problems   int `json:"problems"`
	Meetings   int `json:"meetings"`
}

type TallyRow struct {
	OptionID string `json:"option_id"`
	Label    string `json:"label"`
	Votes    int    `json:"votes"`
}

// View is everything the admin dashboard shows.
type View struct {
	Volunteers []VolunteerRow `json:"volunteers"`
	Problems   []ProblemRow   `json:"problems"`
	Meetings   []MeetingRow   `json:"meetings"`
	Counts     Counts         `json:"counts"`
	Tally      []TallyRow     `json:"poll_tally"`
	Language   string         `json:"language"`
}

// Input collects the raw data a View is built from.
type Input struct {
	Volunteers []models.VolunteerSubmission
	Problems   []models.ProblemReport
	Meetings   []models.MeetingInvitation
	Options    []models.PollOption
	Tally      map[string]int
}

// BuildView orders every collection newest first and fills placeholders for
// blank optional fields. Stored data is not modified.
func BuildView(in Input, now time.Time, lang models.Language) View {
	view := View{
		Volunteers: make([]VolunteerRow, 0, len(in.Volunteers)),
		Problems:   make([]ProblemRow, 0, len(in.Problems)),
		Meetings:   make([]MeetingRow, 0, len(in.Meetings)),
		Counts: Counts{
			Volunteers: len(in.Volunteers),
			Problems:   len(in.Problems),
			Meetings:   len(in.Meetings),
		},
		Tally:    make([]TallyRow, 0, len(in.Options)),
		Language: string(lang),
	}

	for _, v := range in.Volunteers {
		if v.Skills == "" {
			v.Skills = NoSkills
		}
		if v.Email == "" {
			v.Email = NoContact
		}
		view.Volunteers = append(view.Volunteers, VolunteerRow{v, submitted(v.Timestamp, now)})
	}
	for _, p := range in.Problems {
		if p.Contact == "" {
			p.Contact = NoContact
		}
		view.Problems = append(view.Problems, ProblemRow{p, submitted(p.Timestamp, now)})
	}
	for _, m := range in.Meetings {
		view.Meetings = append(view.Meetings, MeetingRow{m, submitted(m.Timestamp, now)})
	}

	slices.SortStableFunc(view.Volunteers, func(a, b VolunteerRow) int { return cmp.Compare(b.Timestamp, a.Timestamp) })
	slices.SortStableFunc(view.Problems, func(a, b ProblemRow) int { return cmp.Compare(b.Timestamp, a.Timestamp) })
	slices.SortStableFunc(view.Meetings, func(a, b MeetingRow) int { return cmp.Compare(b.Timestamp, a.Timestamp) })

	for _, opt := range in.Options {
		view.Tally = append(view.Tally, TallyRow{
			OptionID: opt.ID,
			Label:    opt.Label.In(lang),
			Votes:    in.Tally[opt.ID],
		})
	}

	return view
}

func (v View) Total() int {
	return v.Counts.Volunteers + v.Counts.Problems + v.Counts.Meetings
}

func submitted(ms int64, now time.Time) Submitted {
	if ms == 0 {
		return Submitted{}
	}
	t := time.UnixMilli(ms)
	return Submitted{
		Time:     t.Format(timeLayout),
		Relative: humanize.RelTime(t, now, "ago", "from now"),
	}
}
