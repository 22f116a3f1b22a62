package resumes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/extract"
	"resume-parser/internal/shared/server/respond"
	"resume-parser/internal/shared/telemetry"
	"resume-parser/internal/validation"
)

// Handler exposes the parse pipeline over HTTP.
type Handler struct {
	service *Service
}

// NewHandler builds the resumes handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the resumes endpoints on the router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/resumes/parse", h.Parse)
}

// parseResponse is the success envelope. FieldErrors carries per-field
// failure reasons so clients can tell "absent" from "extraction failed".
type parseResponse struct {
	Data        *ResumeData       `json:"data"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// Parse accepts a multipart upload under the "file" part, runs the pipeline,
// and returns structured resume data.
func (h *Handler) Parse(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "missing_file", "multipart field \"file\" is required", nil)
		return
	}
	// Picked up by the request logging middleware.
	c.Set("fileName", fileHeader.Filename)

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unreadable_file", "could not open uploaded file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unreadable_file", "could not read uploaded file", nil)
		return
	}

	resume, failed, err := h.service.ProcessResume(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := parseResponse{Data: resume}
	if len(failed) > 0 {
		resp.FieldErrors = failed
	}
	respond.OK(c, resp)
}

// respondError maps pipeline errors to HTTP statuses. An unsupported format
// after the gate passed means the reader registry drifted from the gate's
// allow-list, which is an operator problem, not a caller one.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, validation.ErrFileTooLarge):
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "uploaded file exceeds the maximum allowed size", nil)
	case errors.Is(err, validation.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "unsupported_file_type", "only PDF and DOCX uploads are accepted", nil)
	case errors.Is(err, validation.ErrUnsafePath):
		respond.Error(c, http.StatusBadRequest, "unsafe_file_path", "declared file name is not acceptable", nil)
	case errors.Is(err, extract.ErrParsingTimeout):
		respond.Error(c, http.StatusUnprocessableEntity, "parsing_timeout", "document could not be parsed within the time limit", nil)
	case errors.Is(err, extract.ErrUnsupportedFormat):
		telemetry.Error("parse.registry_drift", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "unsupported_format", "no parser is available for this document type", nil)
	default:
		var parseErr *extract.ParseError
		if errors.As(err, &parseErr) {
			respond.Error(c, http.StatusUnprocessableEntity, "parsing_failed", "document could not be parsed", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "internal server error", nil)
	}
}
