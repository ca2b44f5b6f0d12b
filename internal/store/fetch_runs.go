package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// FetchRun records one attempt to build a snapshot, for auditing.
type FetchRun struct {
	ID           string
	StartedAt    time.Time
	FinishedAt   sql.NullTime
	Source       string // "metoffice", "ftp", "file"
	DayOffset    int
	SnapshotID   sql.NullString
	Success      bool
	ErrorMessage sql.NullString
}

func (s *Store) StartFetchRun(source string, dayOffset int) (*FetchRun, error) {
	run := &FetchRun{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Source:    source,
		DayOffset: dayOffset,
	}
	_, err := s.db.Exec(`
		INSERT INTO fetch_runs (id, started_at, source, day_offset, success)
		VALUES (?, ?, ?, ?, FALSE)
	`, run.ID, run.StartedAt, run.Source, run.DayOffset)
	if err != nil {
		return nil, err
	}
	return run, nil
}

// CompleteFetchRun marks run finished. A nil fetchErr means success with
// snapshotID.
func (s *Store) CompleteFetchRun(run *FetchRun, snapshotID string, fetchErr error) error {
	if run == nil {
		return nil
	}

	run.FinishedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}
	run.Success = fetchErr == nil
	if fetchErr != nil {
		run.ErrorMessage = sql.NullString{String: fetchErr.Error(), Valid: true}
	} else if snapshotID != "" {
		run.SnapshotID = sql.NullString{String: snapshotID, Valid: true}
	}

	_, err := s.db.Exec(`
		UPDATE fetch_runs SET
			finished_at = ?,
			snapshot_id = ?,
			success = ?,
			error_message = ?
		WHERE id = ?
	`, run.FinishedAt, run.SnapshotID, run.Success, run.ErrorMessage, run.ID)
	return err
}

// RecentFetchRuns returns up to limit runs, newest first.
func (s *Store) RecentFetchRuns(limit int) ([]FetchRun, error) {
	rows, err := s.db.Query(`
		SELECT id, started_at, finished_at, source, day_offset, snapshot_id, success, error_message
		FROM fetch_runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []FetchRun
	for rows.Next() {
		var r FetchRun
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.Source, &r.DayOffset, &r.SnapshotID, &r.Success, &r.ErrorMessage); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
