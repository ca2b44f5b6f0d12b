package store

import (
	"bytes"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/lox/dotoo/internal/snapshot"
)

// SaveSnapshot stores snap compressed. Saving the same ID twice is a no-op.
func (s *Store) SaveSnapshot(snap snapshot.Snapshot) error {
	var buf bytes.Buffer
	if err := snapshot.Encode(&buf, snap); err != nil {
		return err
	}
	payload := buf.Bytes()
	hash := sha256.Sum256(payload)

	_, err := s.db.Exec(`
		INSERT INTO snapshots (id, source, fetched_at, day_offset, payload_compressed, payload_hash)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, snap.ID, snap.Source, snap.FetchedAt.UTC(), snap.Day, s.enc.EncodeAll(payload, nil), hex.EncodeToString(hash[:]))
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	s.logger.Debug().Str("snapshot", snap.ID).Int("bytes", len(payload)).Msg("saved snapshot")
	return nil
}

// LatestSnapshot returns the newest snapshot for forecast day no older
// than maxAge at now. A non-positive maxAge accepts any age. ok is false
// when nothing qualifies.
func (s *Store) LatestSnapshot(now time.Time, day int, maxAge time.Duration) (snap snapshot.Snapshot, ok bool, err error) {
	row := s.db.QueryRow(`
		SELECT id, payload_compressed, payload_hash
		FROM snapshots
		WHERE day_offset = ?
		ORDER BY fetched_at DESC
		LIMIT 1
	`, day)
	snap, err = s.scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return snapshot.Snapshot{}, false, nil
	}
	if err != nil {
		return snapshot.Snapshot{}, false, err
	}
	if maxAge > 0 && snap.Age(now) > maxAge {
		return snapshot.Snapshot{}, false, nil
	}
	return snap, true, nil
}

func (s *Store) GetSnapshot(id string) (snapshot.Snapshot, error) {
	row := s.db.QueryRow(`SELECT id, payload_compressed, payload_hash FROM snapshots WHERE id = ?`, id)
	return s.scanSnapshot(row)
}

func (s *Store) scanSnapshot(row *sql.Row) (snapshot.Snapshot, error) {
	var id, hash string
	var compressed []byte
	if err := row.Scan(&id, &compressed, &hash); err != nil {
		return snapshot.Snapshot{}, err
	}

	payload, err := s.dec.DecodeAll(compressed, nil)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("decompress snapshot %s: %w", id, err)
	}
	sum := sha256.Sum256(payload)
	if hex.EncodeToString(sum[:]) != hash {
		return snapshot.Snapshot{}, fmt.Errorf("snapshot %s: payload hash mismatch", id)
	}
	return snapshot.Decode(bytes.NewReader(payload))
}

// PruneSnapshots deletes snapshots fetched before cutoff, always keeping
// the newest one overall.
func (s *Store) PruneSnapshots(cutoff time.Time) (int64, error) {
	result, err := s.db.Exec(`
		DELETE FROM snapshots
		WHERE fetched_at < ?
		AND id != (SELECT id FROM snapshots ORDER BY fetched_at DESC LIMIT 1)
	`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}
	return result.RowsAffected()
}

func (s *Store) CountSnapshots() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&n)
	return n, err
}
