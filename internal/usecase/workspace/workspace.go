package workspace

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"idmlx/internal/domain"
	"idmlx/internal/ports"
	"idmlx/internal/usecase/segments"
)

// Workspace owns the whole client state: the registry of uploaded
// documents, the per-document segment cache, the active selection and
// the visible filter. The cache is the single source of truth for
// segment data; everything the UI shows is a projection of it. Every
// mutation schedules a debounced snapshot write to the store.
type Workspace struct {
	mu           sync.Mutex
	files        []domain.UploadedFile // most recently registered first
	fileSegments map[string][]domain.Segment
	activeID     string
	activeName   string
	filter       domain.Filter
	loading      bool

	store ports.SnapshotStore
	saver *saver
}

func New(store ports.SnapshotStore) *Workspace {
	return NewWithSaveDelay(store, saveDelay)
}

// NewWithSaveDelay exists for tests that drive the debounce window.
func NewWithSaveDelay(store ports.SnapshotStore, delay time.Duration) *Workspace {
	w := &Workspace{
		fileSegments: map[string][]domain.Segment{},
		filter:       domain.FilterAll,
		store:        store,
	}
	w.saver = newSaver(delay, w.persist)
	return w
}

// Load restores the persisted snapshot. Any store failure or corrupt
// payload leaves the workspace empty; a persisted active id that no
// longer matches a registry entry is discarded rather than kept
// dangling, so the UI never renders a stale segment list.
func (w *Workspace) Load(ctx context.Context) {
	snap, err := w.store.Load(ctx)
	if err != nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.files = append(w.files[:0], snap.Files...)
	w.fileSegments = map[string][]domain.Segment{}
	for id, segs := range snap.FileSegments {
		w.fileSegments[id] = append([]domain.Segment(nil), segs...)
	}
	w.activeID, w.activeName = "", ""
	if snap.ActiveFileID != "" {
		if f, ok := w.findLocked(snap.ActiveFileID); ok {
			w.activeID = f.ID
			w.activeName = snap.ActiveFileName
			if w.activeName == "" {
				w.activeName = f.Name
			}
		}
	}
	w.loading = false
	w.correctFilterLocked()
}

// RegisterDocument inserts a document at the front of the registry and
// makes it active. Re-uploading a document with a known id replaces the
// old entry instead of duplicating it.
func (w *Workspace) RegisterDocument(id, name string, createdAt time.Time) {
	w.mu.Lock()
	kept := w.files[:0]
	for _, f := range w.files {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	w.files = append([]domain.UploadedFile{{ID: id, Name: name, CreatedAt: createdAt}}, kept...)
	w.activeID = id
	w.activeName = name
	w.loading = true // upload path fills the cache right after
	w.correctFilterLocked()
	w.mu.Unlock()
	w.saver.Schedule()
}

// SelectDocument switches the active document. A cache hit surfaces the
// cached segments immediately; a miss clears the view and enters the
// loading state until someone calls SetFullSegments for that id.
func (w *Workspace) SelectDocument(id string) error {
	w.mu.Lock()
	f, ok := w.findLocked(id)
	if !ok {
		w.mu.Unlock()
		return fmt.Errorf("unknown document: %s", id)
	}
	w.activeID = f.ID
	w.activeName = f.Name
	w.loading = len(w.fileSegments[id]) == 0
	w.correctFilterLocked()
	w.mu.Unlock()
	w.saver.Schedule()
	return nil
}

// RemoveDocument drops a document from the registry together with its
// cached segments. When the removed document was active, the most
// recently registered remaining one takes over (or none).
func (w *Workspace) RemoveDocument(id string) {
	w.mu.Lock()
	kept := w.files[:0]
	for _, f := range w.files {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	w.files = kept
	delete(w.fileSegments, id)

	if w.activeID == id {
		if len(w.files) > 0 {
			next := w.files[0]
			w.activeID = next.ID
			w.activeName = next.Name
			w.loading = len(w.fileSegments[next.ID]) == 0
		} else {
			w.activeID, w.activeName = "", ""
			w.loading = false
		}
	}
	w.correctFilterLocked()
	w.mu.Unlock()
	w.saver.Schedule()
}

// SetFullSegments overwrites the cached list for a document. For the
// active document this also ends the loading state and re-checks the
// filter against the new statistics.
func (w *Workspace) SetFullSegments(docID string, segs []domain.Segment) {
	w.mu.Lock()
	w.fileSegments[docID] = append([]domain.Segment(nil), segs...)
	if docID == w.activeID {
		w.loading = false
		w.correctFilterLocked()
	}
	w.mu.Unlock()
	w.saver.Schedule()
}

// ApplyVisibleUpdate merges a possibly filtered subset of the active
// document's segments back into the canonical list by (storyPath,
// index). Edits made under a non-"all" filter land here.
func (w *Workspace) ApplyVisibleUpdate(visible []domain.Segment) {
	w.mu.Lock()
	id := w.activeID
	if id == "" {
		w.mu.Unlock()
		return
	}
	w.fileSegments[id] = segments.Merge(w.fileSegments[id], visible)
	w.correctFilterLocked()
	w.mu.Unlock()
	w.saver.Schedule()
}

// SetFilter applies a user-chosen filter and returns the effective one
// after auto-correction.
func (w *Workspace) SetFilter(f domain.Filter) (domain.Filter, error) {
	if !domain.ValidFilter(f) {
		return "", fmt.Errorf("unknown filter: %s", f)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.filter = f
	w.correctFilterLocked()
	return w.filter, nil
}

// Files returns the registry ordered for display, newest first.
func (w *Workspace) Files() []domain.UploadedFile {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := append([]domain.UploadedFile(nil), w.files...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Active returns the active document id and display name ("" when none).
func (w *Workspace) Active() (id, name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.activeID, w.activeName
}

func (w *Workspace) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

func (w *Workspace) Filter() domain.Filter {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.filter
}

// ActiveSegments returns a copy of the active document's full list.
func (w *Workspace) ActiveSegments() []domain.Segment {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]domain.Segment(nil), w.fileSegments[w.activeID]...)
}

// SegmentsFor returns a copy of any document's full list; absence means
// "not yet loaded" and comes back as an empty slice.
func (w *Workspace) SegmentsFor(docID string) []domain.Segment {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]domain.Segment(nil), w.fileSegments[docID]...)
}

// VisibleSegments projects the active list through the current filter.
func (w *Workspace) VisibleSegments() []domain.Segment {
	w.mu.Lock()
	defer w.mu.Unlock()
	return segments.Visible(w.fileSegments[w.activeID], w.filter)
}

// Stats derives the counters for the active document.
func (w *Workspace) Stats() domain.Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return segments.Stats(w.fileSegments[w.activeID])
}

// Snapshot assembles the persisted aggregate from the current state.
func (w *Workspace) Snapshot() domain.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	snap := domain.Snapshot{
		Files:          append([]domain.UploadedFile(nil), w.files...),
		FileSegments:   make(map[string][]domain.Segment, len(w.fileSegments)),
		ActiveFileID:   w.activeID,
		ActiveFileName: w.activeName,
		Version:        domain.SnapshotVersion,
	}
	for id, segs := range w.fileSegments {
		snap.FileSegments[id] = append([]domain.Segment(nil), segs...)
	}
	return snap
}

// Close flushes any pending snapshot write.
func (w *Workspace) Close() {
	w.saver.Flush()
}

func (w *Workspace) findLocked(id string) (domain.UploadedFile, bool) {
	for _, f := range w.files {
		if f.ID == id {
			return f, true
		}
	}
	return domain.UploadedFile{}, false
}

// correctFilterLocked reacts to any statistics change; a filter whose
// set went empty is moved to the nearest non-empty one.
func (w *Workspace) correctFilterLocked() {
	st := segments.Stats(w.fileSegments[w.activeID])
	w.filter = segments.CorrectFilter(w.filter, st)
}

func (w *Workspace) persist() {
	// Storage failures stay invisible: the in-memory state remains
	// authoritative for the session.
	_ = w.store.Save(context.Background(), w.Snapshot())
}
