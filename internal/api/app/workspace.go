package app

import (
	"idmlx/internal/domain"
	"idmlx/internal/usecase/workspace"
)

// WorkspaceAPI exposes the document registry, segment cache and filter
// state to the frontend.
type WorkspaceAPI struct{ ws *workspace.Workspace }

func NewWorkspaceAPI(ws *workspace.Workspace) *WorkspaceAPI { return &WorkspaceAPI{ws: ws} }

// Files lists uploaded documents for the sidebar, newest first.
func (a *WorkspaceAPI) Files() []domain.UploadedFile { return a.ws.Files() }

type ActiveDocument struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Loading bool   `json:"loading"`
}

func (a *WorkspaceAPI) Active() ActiveDocument {
	id, name := a.ws.Active()
	return ActiveDocument{ID: id, Name: name, Loading: a.ws.Loading()}
}

func (a *WorkspaceAPI) Select(id string) (ActiveDocument, error) {
	if err := a.ws.SelectDocument(id); err != nil {
		return ActiveDocument{}, err
	}
	return a.Active(), nil
}

// Segments returns the active document's visible (filtered) segments.
func (a *WorkspaceAPI) Segments() []domain.Segment { return a.ws.VisibleSegments() }

// AllSegments returns the active document's full list regardless of filter.
func (a *WorkspaceAPI) AllSegments() []domain.Segment { return a.ws.ActiveSegments() }

// ApplyVisible merges edits made on the visible subset back into the
// canonical list by (storyPath, index).
func (a *WorkspaceAPI) ApplyVisible(segs []domain.Segment) []domain.Segment {
	a.ws.ApplyVisibleUpdate(segs)
	return a.ws.VisibleSegments()
}

func (a *WorkspaceAPI) Stats() domain.Stats { return a.ws.Stats() }

func (a *WorkspaceAPI) Filter() string { return string(a.ws.Filter()) }

// SetFilter applies a filter and returns the effective one after
// auto-correction.
func (a *WorkspaceAPI) SetFilter(f string) (string, error) {
	eff, err := a.ws.SetFilter(domain.Filter(f))
	return string(eff), err
}
