// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submissions

import (
	"strings"

	"github.com/danielhkuo/rahad-campaign/models"
)

// Categories is the closed set of problem categories
var Categories = []string{
	models.CategoryRoads,
	models.CategoryWater,
	models.CategoryEducation,
	models.CategoryHealth,
	models.CategoryOther,
}

// ValidationError rejects a submission. No record is created.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func ValidateVolunteer(req models.VolunteerRequest) error {
	switch {
	case blank(req.Name):
		return required("name")
	case blank(req.Phone):
		return required("phone")
	case blank(req.Area):
		return required("area")
	}
	return nil
}

func ValidateProblem(req models.ProblemRequest) error {
	if !isCategory(req.Category) {
		return &ValidationError{
			Field:   "category",
			Message: "category must be one of: " + strings.Join(Categories, ", "),
		}
	}
	switch {
	case blank(req.Location):
		return required("location")
	case blank(req.Description):
		return required("description")
	}
	return nil
}

func ValidateMeeting(req models.MeetingRequest) error {
	switch {
	case blank(req.Name):
		return required("name")
	case blank(req.Phone):
		return required("phone")
	case blank(req.Location):
		return required("location")
	case blank(req.PeopleCount):
		return required("peopleCount")
	case !req.IsCommitted:
		return &ValidationError{Field: "isCommitted", Message: "isCommitted must be true"}
	}
	return nil
}

func isCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func normalizeVolunteer(req models.VolunteerRequest) models.VolunteerRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)
	req.Area = strings.TrimSpace(req.Area)
	req.Skills = strings.TrimSpace(req.Skills)
	return req
}

// Category defaults to Roads, the form's preselected value.
func normalizeProblem(req models.ProblemRequest) models.ProblemRequest {
	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" {
		req.Category = models.CategoryRoads
	}
	req.Location = strings.TrimSpace(req.Location)
	req.Description = strings.TrimSpace(req.Description)
	req.Contact = strings.TrimSpace(req.Contact)
	return req
}

func normalizeMeeting(req models.MeetingRequest) models.MeetingRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Location = strings.TrimSpace(req.Location)
	req.PeopleCount = strings.TrimSpace(req.PeopleCount)
	return req
}
