// Package snapshot collects, stores and exchanges forecast snapshots: one
// complete activity.WebData plus where and when it came from.
package snapshot

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/lox/dotoo/internal/activity"
)

const (
	SourceMetOffice = "metoffice"
	SourceFile      = "file"
	SourceFTP       = "ftp"
)

// Snapshot is an immutable set of forecasts for every location.
type Snapshot struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
	// Day is the forecast day counted from FetchedAt: 0 today, 1 tomorrow.
	Day       int              `json:"day"`
	Forecasts activity.WebData `json:"forecasts"`
}

// New stamps forecasts with a fresh ID. The forecasts must be complete.
func New(source string, fetchedAt time.Time, day int, forecasts activity.WebData) (Snapshot, error) {
	if err := forecasts.Validate(); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		ID:        uuid.NewString(),
		Source:    source,
		FetchedAt: fetchedAt.UTC(),
		Day:       day,
		Forecasts: forecasts.Clone(),
	}, nil
}

// Age is how old the snapshot is at now.
func (s Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}

// Decode reads a JSON snapshot and validates its forecasts.
func Decode(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := s.Forecasts.Validate(); err != nil {
		return Snapshot{}, err
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return s, nil
}

func Encode(w io.Writer, s Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

func ReadFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile writes s to path via a temporary file so readers never see a
// partial snapshot.
func WriteFile(path string, s Snapshot) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := Encode(f, s); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}
