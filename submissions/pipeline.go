// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submissions

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/rahad-campaign/models"
	"github.com/danielhkuo/rahad-campaign/storage"
)

// Forwarder mirrors an accepted record somewhere else without blocking.
type Forwarder interface {
	Forward(kind models.SubmissionKind, record any)
}

// Pipeline validates, stores and forwards the three form submissions.
type Pipeline struct {
	volunteers *storage.Collection[models.VolunteerSubmission]
	problems   *storage.Collection[models.ProblemReport]
	meetings   *storage.Collection[models.MeetingInvitation]
	kv         storage.KV
	forwarder  Forwarder

	now   func() time.Time
	newID func() string
}

func NewPipeline(kv storage.KV, forwarder Forwarder) *Pipeline {
	return &Pipeline{
		volunteers: storage.NewCollection[models.VolunteerSubmission](kv, storage.KeyVolunteers),
		problems:   storage.NewCollection[models.ProblemReport](kv, storage.KeyProblems),
		meetings:   storage.NewCollection[models.MeetingInvitation](kv, storage.KeyMeetings),
		kv:         kv,
		forwarder:  forwarder,
		now:        time.Now,
		newID:      generateID,
	}
}

// generateID returns a UUIDv7, ordered by creation time.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (p *Pipeline) SubmitVolunteer(ctx context.Context, req models.VolunteerRequest) (models.VolunteerSubmission, error) {
	req = normalizeVolunteer(req)
	if err := ValidateVolunteer(req); err != nil {
		return models.VolunteerSubmission{}, err
	}

	record := models.VolunteerSubmission{
		ID:        p.newID(),
		Timestamp: p.now().UnixMilli(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Area:      req.Area,
		Skills:    req.Skills,
	}
	p.volunteers.Prepend(ctx, record)
	p.forward(models.KindVolunteer, record.ID, record)

	return record, nil
}

func (p *Pipeline) SubmitProblem(ctx context.Context, req models.ProblemRequest) (models.ProblemReport, error) {
	req = normalizeProblem(req)
	if err := ValidateProblem(req); err != nil {
		return models.ProblemReport{}, err
	}

	record := models.ProblemReport{
		ID:          p.newID(),
		Timestamp:   p.now().UnixMilli(),
		Category:    req.Category,
		Location:    req.Location,
		Description: req.Description,
		Contact:     req.Contact,
	}
	p.problems.Prepend(ctx, record)
	p.forward(models.KindProblem, record.ID, record)

	return record, nil
}

func (p *Pipeline) SubmitMeeting(ctx context.Context, req models.MeetingRequest) (models.MeetingInvitation, error) {
	req = normalizeMeeting(req)
	if err := ValidateMeeting(req); err != nil {
		return models.MeetingInvitation{}, err
	}

	record := models.MeetingInvitation{
		ID:          p.newID(),
		Timestamp:   p.now().UnixMilli(),
		Name:        req.Name,
		Phone:       req.Phone,
		Location:    req.Location,
		PeopleCount: req.PeopleCount,
		IsCommitted: req.IsCommitted,
	}
	p.meetings.Prepend(ctx, record)
	p.forward(models.KindMeeting, record.ID, record)

	return record, nil
}

func (p *Pipeline) forward(kind models.SubmissionKind, id string, record any) {
	slog.Info("submission accepted", "type", kind, "id", id)
	if p.forwarder != nil {
		p.forwarder.Forward(kind, record)
	}
}

// Volunteers lists stored volunteers, most recent first.
func (p *Pipeline) Volunteers(ctx context.Context) []models.VolunteerSubmission {
	return p.volunteers.All(ctx)
}

func (p *Pipeline) Problems(ctx context.Context) []models.ProblemReport {
	return p.problems.All(ctx)
}

func (p *Pipeline) Meetings(ctx context.Context) []models.MeetingInvitation {
	return p.meetings.All(ctx)
}

// Clear wipes all three collections together and returns the cleared keys.
// On error nothing is removed. Poll state is not touched.
func (p *Pipeline) Clear(ctx context.Context) ([]string, error) {
	if err := storage.ClearAll(ctx, p.kv, p.volunteers, p.problems, p.meetings); err != nil {
		return nil, err
	}
	slog.Info("submissions cleared")
	return []string{p.volunteers.Key(), p.problems.Key(), p.meetings.Key()}, nil
}
