package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lox/dotoo/internal/snapshot"
	"github.com/lox/dotoo/internal/store"
)

type FetchCmd struct {
	Day        int           `name:"day" default:"0" help:"Forecast day to read: 0 today, 1 tomorrow."`
	Out        string        `name:"out" help:"Also write the snapshot to this JSON file."`
	PruneOlder time.Duration `name:"prune-older-than" default:"168h" help:"Delete cached snapshots older than this; 0 keeps everything."`

	CollectorFlags `embed:""`
}

func (c *FetchCmd) Run(g *Globals) error {
	st, err := store.Open(g.DB, g.logger)
	if err != nil {
		return err
	}
	defer st.Close()

	fetch, source, err := c.CollectorFlags.source(g)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.FetchTimeout)
	defer cancel()

	snap, err := fetchAndCache(ctx, st, fetch, source, c.Day)
	if err != nil {
		return fmt.Errorf("fetch forecasts: %w", err)
	}
	g.logger.Info().Str("snapshot", snap.ID).Str("source", snap.Source).Msg("cached snapshot")

	if c.Out != "" {
		if err := snapshot.WriteFile(c.Out, snap); err != nil {
			return err
		}
	}
	if c.PruneOlder > 0 {
		n, err := st.PruneSnapshots(time.Now().Add(-c.PruneOlder))
		if err != nil {
			return err
		}
		g.logger.Info().Int64("deleted", n).Msg("pruned snapshots")
	}
	fmt.Println(snap.ID)
	return nil
}
