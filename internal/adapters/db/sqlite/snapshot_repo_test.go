package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"idmlx/internal/domain"
)

func tempDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(os.TempDir(), fmt.Sprintf("idmlx-test-%s.db", uuid.New().String()))
	db, err := Init(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
		_ = os.Remove(path)
	})
	return db
}

func TestSnapshotRepo_LoadEmpty(t *testing.T) {
	repo := NewSnapshotRepo(tempDB(t))
	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, snap.Files)
	require.Equal(t, "", snap.ActiveFileID)
	require.Equal(t, domain.SnapshotVersion, snap.Version)
}

func TestSnapshotRepo_RoundTrip(t *testing.T) {
	repo := NewSnapshotRepo(tempDB(t))
	in := domain.Snapshot{
		Files: []domain.UploadedFile{{ID: "a", Name: "a.idml", CreatedAt: time.Now().UTC().Truncate(time.Second)}},
		FileSegments: map[string][]domain.Segment{
			"a": {{StoryPath: "s", Index: 0, OriginalText: "x", TranslatedText: "iks"}},
		},
		ActiveFileID:   "a",
		ActiveFileName: "a.idml",
	}
	require.NoError(t, repo.Save(context.Background(), in))

	// a later save wins
	in.ActiveFileName = "renamed.idml"
	require.NoError(t, repo.Save(context.Background(), in))

	out, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Files, 1)
	require.Equal(t, "a", out.ActiveFileID)
	require.Equal(t, "renamed.idml", out.ActiveFileName)
	require.Equal(t, "iks", out.FileSegments["a"][0].TranslatedText)
	require.Equal(t, domain.SnapshotVersion, out.Version)
}

func TestSnapshotRepo_UnavailableDatabaseRunsMemoryOnly(t *testing.T) {
	repo := NewSnapshotRepo(nil)

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, snap.Files)
	require.Equal(t, domain.SnapshotVersion, snap.Version)

	err = repo.Save(context.Background(), domain.Snapshot{})
	require.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestSnapshotRepo_CorruptPayloadFallsBackToEmpty(t *testing.T) {
	db := tempDB(t)
	repo := NewSnapshotRepo(db)
	_, err := db.Exec(`INSERT INTO snapshots(key, version, payload, updated_at) VALUES(?, ?, ?, ?)`,
		"workspace", domain.SnapshotVersion, "{not json", time.Now().UTC().Format(time.RFC3339))
	require.NoError(t, err)

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, snap.Files)
	require.Empty(t, snap.FileSegments)
}

func TestSnapshotRepo_VersionMismatchUpgradesMarkerKeepingData(t *testing.T) {
	db := tempDB(t)
	repo := NewSnapshotRepo(db)
	payload := `{"files":[{"id":"a","name":"a.idml","createdAt":"2025-01-02T03:04:05Z"}],"fileSegments":{},"activeFileId":"a","activeFileName":"a.idml","version":0}`
	_, err := db.Exec(`INSERT INTO snapshots(key, version, payload, updated_at) VALUES(?, ?, ?, ?)`,
		"workspace", 0, payload, time.Now().UTC().Format(time.RFC3339))
	require.NoError(t, err)

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Files, 1)
	require.Equal(t, domain.SnapshotVersion, snap.Version)

	var stored int
	require.NoError(t, db.QueryRow(`SELECT version FROM snapshots WHERE key = 'workspace'`).Scan(&stored))
	require.Equal(t, domain.SnapshotVersion, stored)
}
