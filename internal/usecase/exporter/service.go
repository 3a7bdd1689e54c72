package exporter

import (
	"context"
	"errors"
	"strings"

	"idmlx/internal/ports"
	"idmlx/internal/usecase/workspace"
)

// ErrNothingToExport means no active document or no translated
// segments; no request is made in either case.
var ErrNothingToExport = errors.New("nothing to export")

// Service renders a translated copy of the active document through the
// export collaborator. Only segments with a non-blank translation are
// sent, trimmed.
type Service struct {
	ex ports.DocumentExporter
	ws *workspace.Workspace
}

func New(ex ports.DocumentExporter, ws *workspace.Workspace) *Service {
	return &Service{ex: ex, ws: ws}
}

func (s *Service) ExportActive(ctx context.Context) (ports.ExportResult, error) {
	id, _ := s.ws.Active()
	if id == "" {
		return ports.ExportResult{}, ErrNothingToExport
	}
	var repl []ports.Replacement
	for _, sg := range s.ws.SegmentsFor(id) {
		if sg.Translated() {
			repl = append(repl, ports.Replacement{
				StoryPath:      sg.StoryPath,
				Index:          sg.Index,
				TranslatedText: strings.TrimSpace(sg.TranslatedText),
			})
		}
	}
	if len(repl) == 0 {
		return ports.ExportResult{}, ErrNothingToExport
	}
	return s.ex.Export(ctx, id, repl)
}
