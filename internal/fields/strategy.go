package fields

import (
	"context"
	"time"

	"resume-parser/internal/llm"
)

// Field names used as registry keys and ResumeData mapping targets.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldSkills     = "skills"
	FieldEducation  = "education"
	FieldExperience = "experience"
	FieldLinkedIn   = "linkedin_url"
	FieldGitHub     = "github_url"
)

// Strategy extracts one field from the full document text. Implementations
// are stateless apart from cached resources (compiled patterns, compiled
// schemas) and never carry per-request state.
type Strategy interface {
	Field() string
	Extract(ctx context.Context, text string) FieldResult
}

// Registry maps field names to strategies. It is built once at startup and
// read-only during request processing.
type Registry map[string]Strategy

// NewRegistry builds the default strategy set: pattern-based strategies for
// name, email, and profile links; delegated-model strategies for phone,
// skills, education, and experience, all sharing client and fieldTimeout.
func NewRegistry(client llm.Client, fieldTimeout time.Duration) Registry {
	strategies := []Strategy{
		NewNameStrategy(),
		NewEmailStrategy(),
		NewLinkStrategy(FieldLinkedIn, linkedinPattern),
		NewLinkStrategy(FieldGitHub, githubPattern),
		NewPhoneStrategy(client, fieldTimeout),
		NewSkillsStrategy(client, fieldTimeout),
		NewEducationStrategy(client, fieldTimeout),
		NewExperienceStrategy(client, fieldTimeout),
	}
	reg := make(Registry, len(strategies))
	for _, s := range strategies {
		reg[s.Field()] = s
	}
	return reg
}
