package resumes

import (
	"encoding/json"
	"strings"
	"testing"

	"resume-parser/internal/fields"
)

func TestAssembleMapsFoundFields(t *testing.T) {
	results := map[string]fields.FieldResult{
		fields.FieldName:   fields.Found("Jane Doe"),
		fields.FieldEmail:  fields.Found("jane.doe@corp.com"),
		fields.FieldPhone:  fields.NotFound(),
		fields.FieldSkills: fields.Found([]string{"Python", "SQL"}),
		fields.FieldExperience: fields.Found([]fields.ExperienceEntry{
			{Company: "Acme", Title: "Engineer"},
		}),
		fields.FieldEducation: fields.Failed("llm call: boom"),
	}

	data := assemble(results)

	if data.Name != "Jane Doe" || data.Email != "jane.doe@corp.com" {
		t.Fatalf("identity fields: %+v", data)
	}
	if data.Phone != "" {
		t.Fatalf("phone should be empty when not found, got %q", data.Phone)
	}
	if len(data.Skills) != 2 {
		t.Fatalf("skills = %v", data.Skills)
	}
	if len(data.Experience) != 1 || data.Experience[0].Company != "Acme" {
		t.Fatalf("experience = %v", data.Experience)
	}
	if data.Education == nil || len(data.Education) != 0 {
		t.Fatalf("failed field must leave an empty, non-nil list: %#v", data.Education)
	}
	if data.ParsedAt.IsZero() {
		t.Fatal("ParsedAt must be set")
	}
}

func TestResumeDataSerializesEmptyLists(t *testing.T) {
	raw, err := json.Marshal(NewResumeData())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	for _, want := range []string{`"skills":[]`, `"certifications":[]`, `"languages":[]`, `"education":[]`, `"experience":[]`} {
		if !strings.Contains(body, want) {
			t.Errorf("serialized form missing %s: %s", want, body)
		}
	}
	if strings.Contains(body, "null") {
		t.Fatalf("list fields must never serialize as null: %s", body)
	}
}
