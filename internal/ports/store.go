package ports

import (
	"context"

	"idmlx/internal/domain"
)

// SnapshotStore persists the client state aggregate. Implementations
// must tolerate missing or corrupt data on Load by returning a
// zero-value snapshot rather than an error the UI would ever see.
type SnapshotStore interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snap domain.Snapshot) error
}
