package resumes

import (
	"context"
	"time"

	"resume-parser/internal/extract"
	"resume-parser/internal/fields"
	"resume-parser/internal/shared/metrics"
	"resume-parser/internal/shared/telemetry"
	"resume-parser/internal/validation"
)

// Service runs the full parse pipeline: gate, reader selection, text
// extraction, and coordinated field extraction.
type Service struct {
	gate        *validation.Gate
	readers     *extract.Registry
	coordinator *Coordinator
}

// NewService wires the pipeline stages together.
func NewService(gate *validation.Gate, readers *extract.Registry, coordinator *Coordinator) *Service {
	return &Service{gate: gate, readers: readers, coordinator: coordinator}
}

// ProcessResume parses one uploaded document. Document-level faults (gate
// rejection, reader selection, text extraction) abort the parse with an
// error; field-level faults never do. The second return value maps failed
// field names to their reasons for callers that surface partial results.
func (s *Service) ProcessResume(ctx context.Context, data []byte, declaredName string) (*ResumeData, map[string]string, error) {
	metrics.IncParseStarted()
	start := time.Now()

	contentType, err := s.gate.Validate(data, declaredName)
	if err != nil {
		metrics.IncParseFailed()
		return nil, nil, err
	}

	reader, err := s.readers.Select(contentType)
	if err != nil {
		metrics.IncParseFailed()
		telemetry.Error("reader.missing", map[string]any{
			"content_type": contentType,
			"file_name":    declaredName,
		})
		return nil, nil, err
	}

	text, err := reader.Read(ctx, data)
	if err != nil {
		metrics.IncParseFailed()
		return nil, nil, err
	}

	results := s.coordinator.Extract(ctx, text)
	resume := assemble(results)

	failed := make(map[string]string)
	for field, res := range results {
		if res.Outcome == fields.OutcomeFailed {
			failed[field] = res.Reason
		}
	}

	elapsed := time.Since(start)
	metrics.IncParseCompleted()
	metrics.ObserveParseDurationMs(float64(elapsed.Milliseconds()))
	telemetry.Info("parse.completed", map[string]any{
		"file_name":     declaredName,
		"content_type":  contentType,
		"text_length":   len(text),
		"fields_failed": len(failed),
		"duration_ms":   elapsed.Milliseconds(),
	})
	return resume, failed, nil
}
