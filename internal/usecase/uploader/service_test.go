package uploader

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

type fakeUploader struct {
	calls int
	docs  []ports.UploadedDocument
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, filename string, content []byte) ([]ports.UploadedDocument, error) {
	f.calls++
	return f.docs, f.err
}

func newTestService(up *fakeUploader) (*Service, *workspace.Workspace) {
	ws := workspace.NewWithSaveDelay(nullStore{}, time.Hour)
	return New(up, ws), ws
}

func TestUpload_RejectsWrongExtensionBeforeNetwork(t *testing.T) {
	up := &fakeUploader{}
	svc, ws := newTestService(up)

	_, err := svc.Upload(context.Background(), "layout.pdf", []byte("x"))
	require.ErrorIs(t, err, ErrUnsupportedFile)
	require.Equal(t, 0, up.calls)
	require.Empty(t, ws.Files())
}

func TestUpload_SingleDocument(t *testing.T) {
	up := &fakeUploader{docs: []ports.UploadedDocument{{
		ID:   "d1",
		Name: "brochure.idml",
		Segments: []domain.Segment{
			{StoryPath: "s", Index: 0, OriginalText: "hello"},
		},
	}}}
	svc, ws := newTestService(up)

	docs, err := svc.Upload(context.Background(), "brochure.idml", []byte("zipbytes"))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	id, name := ws.Active()
	require.Equal(t, "d1", id)
	require.Equal(t, "brochure.idml", name)
	require.Len(t, ws.ActiveSegments(), 1)
	require.False(t, ws.Loading())
}

func TestUpload_MultiDocumentFirstBecomesActive(t *testing.T) {
	up := &fakeUploader{docs: []ports.UploadedDocument{
		{ID: "d1", Name: "one.idml", Segments: []domain.Segment{{StoryPath: "s", Index: 0, OriginalText: "a"}}},
		{ID: "d2", Name: "two.idml", Segments: []domain.Segment{{StoryPath: "s", Index: 0, OriginalText: "b"}}},
		{ID: "d3", Name: "three.idml"},
	}}
	svc, ws := newTestService(up)

	_, err := svc.Upload(context.Background(), "bundle.zip", []byte("zipbytes"))
	require.NoError(t, err)

	require.Len(t, ws.Files(), 3)
	id, _ := ws.Active()
	require.Equal(t, "d1", id)
	require.Equal(t, "a", ws.ActiveSegments()[0].OriginalText)
}

func TestUpload_EmptyArchive(t *testing.T) {
	up := &fakeUploader{}
	svc, ws := newTestService(up)

	_, err := svc.Upload(context.Background(), "bundle.zip", []byte("zipbytes"))
	require.ErrorIs(t, err, ErrEmptyArchive)
	require.Empty(t, ws.Files())
}

func TestUpload_FallbackIDAndName(t *testing.T) {
	up := &fakeUploader{docs: []ports.UploadedDocument{{}}}
	svc, ws := newTestService(up)

	docs, err := svc.Upload(context.Background(), "NoMeta.IDML", nil)
	require.NoError(t, err)
	require.NotEmpty(t, docs[0].ID)
	require.Equal(t, "NoMeta.IDML", docs[0].Name)

	id, name := ws.Active()
	require.Equal(t, docs[0].ID, id)
	require.Equal(t, "NoMeta.IDML", name)
}
