package models

// Supported display languages
const (
	LangBengali Language = "bn"
	LangEnglish Language = "en"
)

// Submission kinds, also the "type" tag sent to the spreadsheet sink
const (
	KindVolunteer SubmissionKind = "volunteer"
	KindProblem   SubmissionKind = "problem"
	KindMeeting   SubmissionKind = "meeting"
)

// Problem categories
const (
	CategoryRoads     = "Roads"
	CategoryWater     = "Water"
	CategoryEducation = "Education"
	CategoryHealth    = "Health"
	CategoryOther     = "Other"
)

// Chat roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// AckDisplayMillis is how long the frontend shows a submission acknowledgment
// before resetting and closing the form.
const AckDisplayMillis = 2000

type Language string

type SubmissionKind string

type LocalizedString struct {
	BN string `json:"bn" yaml:"bn"`
	EN string `json:"en" yaml:"en"`
}

// In returns the text for lang, falling back to Bengali.
func (s LocalizedString) In(lang Language) string {
	if lang == LangEnglish && s.EN != "" {
		return s.EN
	}
	return s.BN
}

// Request types

type VolunteerRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Area   string `json:"area"`
	Skills string `json:"skills"`
}

type ProblemRequest struct {
	Category    string `json:"category"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
}

type MeetingRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	PeopleCount string `json:"peopleCount"`
	IsCommitted bool   `json:"isCommitted"`
}

type VoteRequest struct {
	OptionID string `json:"option_id"`
}

type ChatRequest struct {
	History []ChatMessage `json:"history"`
	Message string        `json:"message"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

// Response types

type SubmissionResponse struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	DisplayMS int    `json:"display_ms"`
}

type ChatResponse struct {
	Reply   string        `json:"reply"`
	History []ChatMessage `json:"history"`
}

type LoginResponse struct {
	Authenticated bool   `json:"authenticated"`
	Token         string `json:"token,omitempty"`
	Error         string `json:"error,omitempty"`
	Message       string `json:"message,omitempty"`
	ClearPassword bool   `json:"clear_password,omitempty"`
}

type ClearResponse struct {
	Cleared []string `json:"cleared"`
}

type AnalysisResponse struct {
	Summary     string `json:"summary"`
	SummaryHTML string `json:"summary_html"`
}

// Domain types

// VolunteerSubmission timestamps are Unix milliseconds.
type VolunteerSubmission struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Area      string `json:"area"`
	Skills    string `json:"skills"`
}

type ProblemReport struct {
	ID          string `json:"id"`
	Timestamp   int64  `json:"timestamp"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
}

type MeetingInvitation struct {
	ID          string `json:"id"`
	Timestamp   int64  `json:"timestamp"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	PeopleCount string `json:"peopleCount"`
	IsCommitted bool   `json:"isCommitted"`
}

// ChatMessage is never persisted.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type PollOption struct {
	ID    string          `json:"id"`
	Label LocalizedString `json:"label"`
	Votes int             `json:"votes"`
}

// Poll view types

type PollOptionView struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Votes      *int   `json:"votes,omitempty"`
	Percentage *int   `json:"percentage,omitempty"`
}

type PollView struct {
	Question            string           `json:"question"`
	Options             []PollOptionView `json:"options"`
	Voted               bool             `json:"voted"`
	TotalVotes          *int             `json:"total_votes,omitempty"`
	LastActivityMinutes int              `json:"last_activity_minutes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
