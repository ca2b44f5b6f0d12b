package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lox/dotoo/internal/activity"
	"github.com/lox/dotoo/internal/metrics"
	"github.com/lox/dotoo/internal/snapshot"
	"github.com/lox/dotoo/internal/store"
)

// snapshotSource fetches a fresh snapshot for a forecast day.
type snapshotSource func(ctx context.Context, day int) (snapshot.Snapshot, error)

func (f CollectorFlags) source(g *Globals) (snapshotSource, string, error) {
	if f.FTPAddr != "" {
		return func(ctx context.Context, day int) (snapshot.Snapshot, error) {
			return snapshot.FetchFTP(ctx, f.ftpSource(day))
		}, snapshot.SourceFTP, nil
	}
	collector, err := snapshot.NewCollector(f.collectorConfig(), g.logger)
	if err != nil {
		return nil, "", err
	}
	return collector.Collect, snapshot.SourceMetOffice, nil
}

// fetchAndCache fetches a snapshot, audits the attempt and caches the
// result.
func fetchAndCache(ctx context.Context, st *store.Store, fetch snapshotSource, source string, day int) (snapshot.Snapshot, error) {
	run, err := st.StartFetchRun(source, day)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("start fetch run: %w", err)
	}

	snap, fetchErr := fetch(ctx, day)
	if fetchErr == nil {
		fetchErr = checkDay(snap, day)
	}
	if fetchErr == nil {
		fetchErr = st.SaveSnapshot(snap)
	}
	if err := st.CompleteFetchRun(run, snap.ID, fetchErr); err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("complete fetch run: %w", err)
	}
	if fetchErr != nil {
		return snapshot.Snapshot{}, fetchErr
	}
	return snap, nil
}

// checkDay rejects a snapshot taken for a different forecast day than the
// one asked for.
func checkDay(snap snapshot.Snapshot, day int) error {
	if snap.Day == day {
		return nil
	}
	return &activity.ConfigError{
		Field:  "snapshot",
		Value:  snap.ID,
		Reason: fmt.Sprintf("holds forecast day %d, want day %d", snap.Day, day),
	}
}

// cachePolicy decides when a cached snapshot can stand in for a fetch.
type cachePolicy struct {
	// Reuse skips fetching when a snapshot at most this old exists.
	Reuse time.Duration
	// Fallback is the oldest snapshot accepted when fetching fails.
	Fallback time.Duration
}

// loadSnapshot returns a cached snapshot when one is fresh enough,
// otherwise fetches one, falling back to an older cached snapshot if the
// fetch fails.
func loadSnapshot(ctx context.Context, g *Globals, st *store.Store, fetch snapshotSource, source string, day int, policy cachePolicy) (snapshot.Snapshot, error) {
	now := time.Now()
	if policy.Reuse > 0 {
		snap, ok, err := st.LatestSnapshot(now, day, policy.Reuse)
		if err != nil {
			return snapshot.Snapshot{}, fmt.Errorf("read snapshot cache: %w", err)
		}
		if ok {
			metrics.SnapshotCacheHits.Inc()
			g.logger.Info().Str("snapshot", snap.ID).Dur("age", snap.Age(now)).Msg("using cached snapshot")
			return snap, nil
		}
	}

	snap, fetchErr := fetchAndCache(ctx, st, fetch, source, day)
	if fetchErr == nil {
		return snap, nil
	}

	cached, ok, err := st.LatestSnapshot(now, day, policy.Fallback)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("read snapshot cache: %w", err)
	}
	if !ok {
		return snapshot.Snapshot{}, fmt.Errorf("fetch forecasts: %w", fetchErr)
	}
	metrics.SnapshotFallbacks.Inc()
	g.logger.Warn().Err(fetchErr).Str("snapshot", cached.ID).Dur("age", cached.Age(now)).Msg("fetch failed, using cached snapshot")
	return cached, nil
}
