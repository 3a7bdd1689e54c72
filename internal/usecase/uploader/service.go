package uploader

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"idmlx/internal/ports"
	"idmlx/internal/usecase/workspace"
)

var (
	// ErrUnsupportedFile is raised before any network call.
	ErrUnsupportedFile = errors.New("only .idml files or .zip archives of .idml files are supported")
	ErrEmptyArchive    = errors.New("archive contains no IDML documents")
)

// Service runs the upload flow: validate the filename, hand the bytes
// to the parsing collaborator, then register every returned document
// and fill the segment cache. With a multi-document response the
// documents are registered in response order and the first one ends up
// active.
type Service struct {
	up  ports.Uploader
	ws  *workspace.Workspace
	now func() time.Time
}

func New(up ports.Uploader, ws *workspace.Workspace) *Service {
	return &Service{up: up, ws: ws, now: time.Now}
}

func (s *Service) Upload(ctx context.Context, filename string, content []byte) ([]ports.UploadedDocument, error) {
	if !allowedName(filename) {
		return nil, ErrUnsupportedFile
	}
	docs, err := s.up.Upload(ctx, filename, content)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrEmptyArchive
	}
	for i := range docs {
		if docs[i].ID == "" {
			docs[i].ID = uuid.New().String()
		}
		if docs[i].Name == "" {
			docs[i].Name = filename
		}
	}
	for _, d := range docs {
		s.ws.RegisterDocument(d.ID, d.Name, s.now())
		s.ws.SetFullSegments(d.ID, d.Segments)
	}
	if err := s.ws.SelectDocument(docs[0].ID); err != nil {
		return nil, err
	}
	return docs, nil
}

func allowedName(name string) bool {
	n := strings.ToLower(name)
	return strings.HasSuffix(n, ".idml") || strings.HasSuffix(n, ".zip")
}
