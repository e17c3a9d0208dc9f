package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// CSV columns follow the JSON field order of each record. Every cell holds
// the JSON encoding of its field, so line breaks inside free text are
// escaped and a record always occupies one line. Unset values are empty.

func (VolunteerSubmission) CSVHeader() []string {
	return []string{"id", "timestamp", "name", "phone", "email", "area", "skills"}
}

func (v VolunteerSubmission) CSVValues() []string {
	return []string{
		stringCell(v.ID), millisCell(v.Timestamp), stringCell(v.Name), stringCell(v.Phone),
		stringCell(v.Email), stringCell(v.Area), stringCell(v.Skills),
	}
}

func (ProblemReport) CSVHeader() []string {
	return []string{"id", "timestamp", "category", "location", "description", "contact"}
}

func (p ProblemReport) CSVValues() []string {
	return []string{
		stringCell(p.ID), millisCell(p.Timestamp), stringCell(p.Category),
		stringCell(p.Location), stringCell(p.Description), stringCell(p.Contact),
	}
}

func (MeetingInvitation) CSVHeader() []string {
	return []string{"id", "timestamp", "name", "phone", "location", "peopleCount", "isCommitted"}
}

func (m MeetingInvitation) CSVValues() []string {
	return []string{
		stringCell(m.ID), millisCell(m.Timestamp), stringCell(m.Name), stringCell(m.Phone),
		stringCell(m.Location), stringCell(m.PeopleCount), strconv.FormatBool(m.IsCommitted),
	}
}

func stringCell(s string) string {
	if s == "" {
		return ""
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

func millisCell(ms int64) string {
	if ms == 0 {
		return ""
	}
	return strconv.FormatInt(ms, 10)
}
