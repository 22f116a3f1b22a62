// Package fields holds the per-field extraction strategies and their shared
// result type. Each strategy produces one typed field from resume text,
// independently of every other field.
package fields

// Outcome tags the three distinguishable results of a strategy run. A failed
// extraction is never collapsed into "absent": observability needs to tell
// them apart even though the final data shape treats both as empty.
type Outcome string

const (
	OutcomeFound    Outcome = "found"
	OutcomeNotFound Outcome = "not_found"
	OutcomeFailed   Outcome = "failed"
)

// FieldResult is the tagged outcome of one strategy's attempt.
type FieldResult struct {
	Outcome Outcome
	Value   any
	Reason  string
}

// Found wraps a successfully extracted value.
func Found(value any) FieldResult {
	return FieldResult{Outcome: OutcomeFound, Value: value}
}

// NotFound marks a field that is simply absent from the document.
func NotFound() FieldResult {
	return FieldResult{Outcome: OutcomeNotFound}
}

// Failed marks an extraction fault with its reason.
func Failed(reason string) FieldResult {
	return FieldResult{Outcome: OutcomeFailed, Reason: reason}
}

// EducationEntry is the structured shape produced by the education strategy.
type EducationEntry struct {
	Institution    string `json:"institution,omitempty"`
	Degree         string `json:"degree,omitempty"`
	FieldOfStudy   string `json:"field_of_study,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// ExperienceEntry is the structured shape produced by the experience strategy.
type ExperienceEntry struct {
	Company          string   `json:"company,omitempty"`
	Title            string   `json:"title,omitempty"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}
