package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"idmlx/internal/domain"
)

// snapshotKey is the single row holding the whole client state.
const snapshotKey = "workspace"

// SnapshotRepo persists the client snapshot as one versioned JSON row.
// Load never propagates corruption to the caller: a missing row or an
// unreadable payload comes back as an empty snapshot with a nil error.
// Without a database connection the session runs memory-only: loads
// come back empty and saves report ErrStoreUnavailable.
type SnapshotRepo struct{ *Repo }

// ErrStoreUnavailable is returned by Save when the database never opened.
var ErrStoreUnavailable = errors.New("snapshot store unavailable")

func NewSnapshotRepo(db *sql.DB) *SnapshotRepo { return &SnapshotRepo{NewRepo(db)} }

func (r *SnapshotRepo) Load(ctx context.Context) (domain.Snapshot, error) {
	empty := domain.Snapshot{Version: domain.SnapshotVersion}
	if !r.Available() {
		return empty, nil
	}
	q := r.SQ.Select("version", "payload").From("snapshots").Where(sq.Eq{"key": snapshotKey})
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	var version int
	var payload string
	if err := row.Scan(&version, &payload); err != nil {
		if err == sql.ErrNoRows {
			return empty, nil
		}
		return empty, err
	}
	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		// corrupt payload falls back to defaults
		return empty, nil
	}
	if version != domain.SnapshotVersion {
		// silent upgrade: keep the data, rewrite the marker
		snap.Version = domain.SnapshotVersion
		uq := r.SQ.Update("snapshots").Set("version", domain.SnapshotVersion).Where(sq.Eq{"key": snapshotKey})
		if us, uargs, err := uq.ToSql(); err == nil {
			_, _ = r.DB.ExecContext(ctx, us, uargs...)
		}
	}
	return snap, nil
}

func (r *SnapshotRepo) Save(ctx context.Context, snap domain.Snapshot) error {
	if !r.Available() {
		return ErrStoreUnavailable
	}
	snap.Version = domain.SnapshotVersion
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	q := r.SQ.Insert("snapshots").Columns("key", "version", "payload", "updated_at").
		Values(snapshotKey, snap.Version, string(payload), now).
		Suffix("ON CONFLICT(key) DO UPDATE SET version=excluded.version, payload=excluded.payload, updated_at=excluded.updated_at")
	sqlStr, args, _ := q.ToSql()
	_, err = r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}
