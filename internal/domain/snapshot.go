package domain

// SnapshotVersion is bumped when the persisted shape changes. Loading a
// snapshot with a different version silently rewrites the marker; the
// data itself is kept (forward-compatible no-op migration).
const SnapshotVersion = 1

// Snapshot is the persisted aggregate of the whole client state.
// If ActiveFileID is set it must reference an id present in Files; the
// load path discards an invalid reference instead of failing.
type Snapshot struct {
	Files          []UploadedFile       `json:"files"`
	FileSegments   map[string][]Segment `json:"fileSegments"`
	ActiveFileID   string               `json:"activeFileId"`
	ActiveFileName string               `json:"activeFileName"`
	Version        int                  `json:"version"`
}
