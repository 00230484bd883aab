package domain

import "time"

// Option is one selectable answer. Points are trusted as configured.
type Option struct {
	Value  string `json:"value" yaml:"value"`
	Label  string `json:"label" yaml:"label"`
	Points int    `json:"points" yaml:"points"`
}

// Question models a single-choice question.
type Question struct {
	ID      string   `json:"id" yaml:"id"`
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Options []Option `json:"options" yaml:"options"`
}

// Option returns the option with the given value.
func (q Question) Option(value string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// MaxPoints is the highest point value among the question's options.
func (q Question) MaxPoints() int {
	best := 0
	for _, opt := range q.Options {
		if opt.Points > best {
			best = opt.Points
		}
	}
	return best
}

// Questionnaire is the fixed ordered list of questions for an assessment.
type Questionnaire struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Tier is a named result bucket.
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// TierProfile is the display metadata attached to a tier.
type TierProfile struct {
	Tier            Tier     `json:"tier"`
	Title           string   `json:"title"`
	Badge           string   `json:"badge"`
	Recommendations []string `json:"recommendations"`
}

// ScoreResult is derived from the answers on demand and never stored.
type ScoreResult struct {
	RawTotal    int  `json:"rawTotal"`
	Denominator int  `json:"denominator"`
	Percentage  int  `json:"percentage"`
	Tier        Tier `json:"tier"`
}

// Phase describes where a session is in its lifecycle.
type Phase string

const (
	PhaseInProgress       Phase = "in_progress"
	PhaseAwaitingIdentity Phase = "awaiting_identity"
	PhaseSubmitted        Phase = "submitted"
)

// Identity holds the contact details captured after the last question.
type Identity struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BusinessType string `json:"businessType"`
}

// Lead is what gets handed to the submission backend.
type Lead struct {
	ID              string            `json:"id"`
	SessionID       string            `json:"sessionId"`
	QuestionnaireID string            `json:"questionnaireId"`
	Identity        Identity          `json:"identity"`
	Summary         string            `json:"summary"`
	Percentage      int               `json:"percentage"`
	Tier            Tier              `json:"tier"`
	Answers         map[string]string `json:"answers"`
	SubmittedAt     time.Time         `json:"submittedAt"`
}

// SessionRecord is the persistable form of an assessment session.
type SessionRecord struct {
	ID              string            `json:"id"`
	QuestionnaireID string            `json:"questionnaireId"`
	CurrentIndex    int               `json:"currentIndex"`
	Answers         map[string]string `json:"answers"`
	Submitted       bool              `json:"submitted"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}
