// Package resumes hosts the parse pipeline: validation gate, reader
// selection, field coordination, and the HTTP surface.
package resumes

import (
	"time"

	"resume-parser/internal/fields"
)

// ResumeData is the structured output of a parse. Scalar fields are empty
// strings when absent or failed; list fields are empty slices, never nil, so
// they serialize as [] rather than null.
type ResumeData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Summary  string `json:"summary"`

	Skills         []string                 `json:"skills"`
	Certifications []string                 `json:"certifications"`
	Languages      []string                 `json:"languages"`
	Education      []fields.EducationEntry  `json:"education"`
	Experience     []fields.ExperienceEntry `json:"experience"`

	LinkedInURL string    `json:"linkedin_url"`
	GitHubURL   string    `json:"github_url"`
	WebsiteURL  string    `json:"website_url"`
	ParsedAt    time.Time `json:"parsed_at"`
}

// NewResumeData returns an empty result with list fields initialized.
func NewResumeData() *ResumeData {
	return &ResumeData{
		Skills:         []string{},
		Certifications: []string{},
		Languages:      []string{},
		Education:      []fields.EducationEntry{},
		Experience:     []fields.ExperienceEntry{},
	}
}

// assemble maps field results into the output shape. Failed and not-found
// results both leave the field empty; the distinction lives in the results
// map, not the data.
func assemble(results map[string]fields.FieldResult) *ResumeData {
	data := NewResumeData()
	data.ParsedAt = time.Now().UTC()

	for field, res := range results {
		if res.Outcome != fields.OutcomeFound {
			continue
		}
		switch field {
		case fields.FieldName:
			data.Name, _ = res.Value.(string)
		case fields.FieldEmail:
			data.Email, _ = res.Value.(string)
		case fields.FieldPhone:
			data.Phone, _ = res.Value.(string)
		case fields.FieldLinkedIn:
			data.LinkedInURL, _ = res.Value.(string)
		case fields.FieldGitHub:
			data.GitHubURL, _ = res.Value.(string)
		case fields.FieldSkills:
			if skills, ok := res.Value.([]string); ok {
				data.Skills = skills
			}
		case fields.FieldEducation:
			if entries, ok := res.Value.([]fields.EducationEntry); ok {
				data.Education = entries
			}
		case fields.FieldExperience:
			if entries, ok := res.Value.([]fields.ExperienceEntry); ok {
				data.Experience = entries
			}
		}
	}
	return data
}
