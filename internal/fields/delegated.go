package fields

import (
	"context"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"resume-parser/internal/llm"
)

const reasonEmptyInput = "empty input"

// mustCompileSchema compiles a JSON-Schema document at construction time so
// each strategy caches its compiled shape. Definitions are static, so a
// compile failure is a programming error.
func mustCompileSchema(def string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(def)); err != nil {
		panic(err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		panic(err)
	}
	return schema
}

// complete runs the prompt through the client with the per-field timeout.
// The client already wraps transient-failure retries; anything that comes
// back as an error here is final.
func complete(ctx context.Context, client llm.Client, timeout time.Duration, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return client.Complete(ctx, prompt)
}

// extractJSONArray scrapes the outermost JSON array from a model response
// that may carry stray text around it.
func extractJSONArray(s string) (string, bool) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

// extractJSONObject scrapes the outermost JSON object from a model response.
func extractJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}
