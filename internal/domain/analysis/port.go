package analysis

import "context"

// TextGenerator port for the external text-generation capability. The prompt
// is an instruction string; the response is free text treated opaquely.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// Source labels the backing service in section values (e.g. "openai").
	Source() string
}

// ReportStore port for uploading exported reports to object storage.
type ReportStore interface {
	UploadReport(ctx context.Context, key string, content []byte, contentType string) (string, error)
}
