package exporter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"idmlx/internal/domain"
	"idmlx/internal/ports"
	"idmlx/internal/usecase/workspace"
)

type nullStore struct{}

func (nullStore) Load(ctx context.Context) (domain.Snapshot, error) { return domain.Snapshot{}, nil }
func (nullStore) Save(ctx context.Context, snap domain.Snapshot) error {
	return nil
}

type fakeExporter struct {
	calls int
	repl  []ports.Replacement
}

func (f *fakeExporter) Export(ctx context.Context, fileID string, replacements []ports.Replacement) (ports.ExportResult, error) {
	f.calls++
	f.repl = replacements
	return ports.ExportResult{Filename: "translated.idml", Content: []byte("zip")}, nil
}

func newTestService(ex *fakeExporter) (*Service, *workspace.Workspace) {
	ws := workspace.NewWithSaveDelay(nullStore{}, time.Hour)
	return New(ex, ws), ws
}

func TestExportActive_NoActiveDocument(t *testing.T) {
	ex := &fakeExporter{}
	svc, _ := newTestService(ex)

	_, err := svc.ExportActive(context.Background())
	require.ErrorIs(t, err, ErrNothingToExport)
	require.Equal(t, 0, ex.calls)
}

func TestExportActive_ZeroReplacementsMakesNoRequest(t *testing.T) {
	ex := &fakeExporter{}
	svc, ws := newTestService(ex)
	ws.RegisterDocument("a", "a.idml", time.Now())
	ws.SetFullSegments("a", []domain.Segment{
		{StoryPath: "s", Index: 0, OriginalText: "x"},
		{StoryPath: "s", Index: 1, OriginalText: "y", TranslatedText: "  "},
	})

	_, err := svc.ExportActive(context.Background())
	require.ErrorIs(t, err, ErrNothingToExport)
	require.Equal(t, 0, ex.calls)
}

func TestExportActive_SendsTrimmedTranslatedOnly(t *testing.T) {
	ex := &fakeExporter{}
	svc, ws := newTestService(ex)
	ws.RegisterDocument("a", "a.idml", time.Now())
	ws.SetFullSegments("a", []domain.Segment{
		{StoryPath: "s1", Index: 0, OriginalText: "x", TranslatedText: " iks "},
		{StoryPath: "s1", Index: 1, OriginalText: "y"},
		{StoryPath: "s2", Index: 0, OriginalText: "z", TranslatedText: "zet"},
	})

	res, err := svc.ExportActive(context.Background())
	require.NoError(t, err)
	require.Equal(t, "translated.idml", res.Filename)
	require.Equal(t, 1, ex.calls)
	require.Equal(t, []ports.Replacement{
		{StoryPath: "s1", Index: 0, TranslatedText: "iks"},
		{StoryPath: "s2", Index: 0, TranslatedText: "zet"},
	}, ex.repl)
}
