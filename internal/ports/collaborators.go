package ports

import (
	"context"

	"idmlx/internal/domain"
)

// UploadedDocument is one parsed document returned by the upload service.
// A .zip upload may yield several; a bare .idml yields exactly one.
type UploadedDocument struct {
	ID       string           `json:"fileId"`
	Name     string           `json:"name"`
	Segments []domain.Segment `json:"segments"`
}

// Uploader sends a raw document to the parsing service and returns the
// extracted documents in response order.
type Uploader interface {
	Upload(ctx context.Context, filename string, content []byte) ([]UploadedDocument, error)
}

// Translation modes understood by the remote service.
const (
	ModeNormal  = ""
	ModeReverse = "reverse"
)

// Translator is the remote translation service. TranslateBatch must
// return exactly one result per input, in input order.
type Translator interface {
	TranslateOne(ctx context.Context, text, mode string) (string, error)
	TranslateBatch(ctx context.Context, texts []string) ([]string, error)
}

// Replacement carries one translated segment into an export request.
type Replacement struct {
	StoryPath      string `json:"storyPath"`
	Index          int    `json:"index"`
	TranslatedText string `json:"translatedText"`
}

// ExportResult is the re-serialized document returned by the export service.
type ExportResult struct {
	Filename string
	Content  []byte
}

// DocumentExporter renders a translated copy of an uploaded document.
type DocumentExporter interface {
	Export(ctx context.Context, fileID string, replacements []Replacement) (ExportResult, error)
}
