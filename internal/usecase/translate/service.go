package translate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"idmlx/internal/domain"
	"idmlx/internal/ports"
	"idmlx/internal/usecase/workspace"
)

// chunkSize bounds one batch request. Chunks are issued strictly
// sequentially, which keeps progress monotonic and network bursts flat.
const chunkSize = 100

// ErrBusy is returned when a translation is already in flight for the
// same document. Single-segment and whole-document translation share
// one guard per document id, so neither can start under the other.
var ErrBusy = errors.New("translation already in progress for this document")

type EventEmitter interface {
	Emit(name string, payload any)
}

// Service drives translation against the remote collaborator and merges
// results into the workspace cache. Operations are document-scoped:
// switching the active selection mid-flight does not redirect or cancel
// a running batch.
type Service struct {
	tr ports.Translator
	ws *workspace.Workspace

	mu       sync.Mutex
	inflight map[string]struct{}
	em       EventEmitter
}

func New(tr ports.Translator, ws *workspace.Workspace) *Service {
	return &Service{tr: tr, ws: ws, inflight: map[string]struct{}{}}
}

func (s *Service) SetEmitter(em EventEmitter) {
	s.mu.Lock()
	s.em = em
	s.mu.Unlock()
}

func (s *Service) emit(name string, payload any) {
	s.mu.Lock()
	em := s.em
	s.mu.Unlock()
	if em != nil {
		em.Emit(name, payload)
	}
}

// Busy reports whether a translation is in flight for the document.
func (s *Service) Busy(docID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inflight[docID]
	return ok
}

func (s *Service) acquire(docID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inflight[docID]; ok {
		return false
	}
	s.inflight[docID] = struct{}{}
	return true
}

func (s *Service) release(docID string) {
	s.mu.Lock()
	delete(s.inflight, docID)
	s.mu.Unlock()
}

// TranslateAll translates every untranslated segment with source text
// in the given document, in fixed-size sequential chunks. Progress
// events carry a rounded percentage that only grows and ends at 100.
// The merged list is committed once; if a chunk fails, everything
// merged from earlier chunks is committed before the error returns.
func (s *Service) TranslateAll(ctx context.Context, docID string) error {
	working := s.ws.SegmentsFor(docID)
	targets := make([]int, 0, len(working))
	for i, sg := range working {
		if !sg.Translated() && sg.Translatable() {
			targets = append(targets, i)
		}
	}
	if len(targets) == 0 {
		return nil
	}
	if !s.acquire(docID) {
		return ErrBusy
	}
	defer s.release(docID)

	total := len(targets)
	done := 0
	s.emit("translate.started", map[string]any{"file_id": docID, "total": total})

	for off := 0; off < total; off += chunkSize {
		end := off + chunkSize
		if end > total {
			end = total
		}
		chunk := targets[off:end]
		texts := make([]string, len(chunk))
		for j, pos := range chunk {
			texts[j] = working[pos].OriginalText
		}
		out, err := s.tr.TranslateBatch(ctx, texts)
		if err == nil && len(out) != len(chunk) {
			err = fmt.Errorf("batch translate: got %d results for %d items", len(out), len(chunk))
		}
		if err != nil {
			// keep what earlier chunks produced
			s.ws.SetFullSegments(docID, working)
			s.emit("translate.failed", map[string]any{"file_id": docID, "done": done, "total": total, "error": err.Error()})
			return err
		}
		for j, pos := range chunk {
			working[pos].TranslatedText = out[j]
		}
		done += len(chunk)
		percent := int(math.Round(float64(done) / float64(total) * 100))
		s.emit("translate.progress", map[string]any{"file_id": docID, "done": done, "total": total, "percent": percent})
	}

	s.ws.SetFullSegments(docID, working)
	if id, _ := s.ws.Active(); id == docID {
		if left := segmentsLeft(working); !left {
			_, _ = s.ws.SetFilter(domain.FilterTranslated)
		}
	}
	s.emit("translate.done", map[string]any{"file_id": docID, "total": total})
	return nil
}

// TranslateOne translates a single segment, addressed by its position
// in the document's full list. The skip rules match the batch path: a
// segment without source text, or one already counting as translated
// (non-blank after trimming), is a no-op.
func (s *Service) TranslateOne(ctx context.Context, docID string, index int, mode string) error {
	working := s.ws.SegmentsFor(docID)
	if index < 0 || index >= len(working) {
		return fmt.Errorf("segment index out of range: %d", index)
	}
	sg := working[index]
	if !sg.Translatable() || sg.Translated() {
		return nil
	}
	if !s.acquire(docID) {
		return ErrBusy
	}
	defer s.release(docID)

	out, err := s.tr.TranslateOne(ctx, sg.OriginalText, mode)
	if err != nil {
		return err
	}

	// positions are stable across merges, so re-read and replace in place
	current := s.ws.SegmentsFor(docID)
	if index < len(current) {
		current[index].TranslatedText = out
		s.ws.SetFullSegments(docID, current)
	}
	return nil
}

func segmentsLeft(list []domain.Segment) bool {
	for _, sg := range list {
		if !sg.Translated() && sg.Translatable() {
			return true
		}
	}
	return false
}
