package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/lox/dotoo/internal/activity"
	"github.com/lox/dotoo/internal/narrate"
	"github.com/lox/dotoo/internal/render"
	"github.com/lox/dotoo/internal/snapshot"
	"github.com/lox/dotoo/internal/store"
)

type RecommendCmd struct {
	TimeAvailable string `arg:"" name:"time-available" help:"How much time you have, e.g. all_day."`
	HowFarAhead   string `arg:"" name:"how-far-ahead" help:"When it is, e.g. tomorrow."`
	Budget        string `arg:"" name:"budget" help:"Daily budget, e.g. one_hundred_pounds_per_day."`
	Legs          string `arg:"" name:"legs" help:"How your legs are, e.g. no_problems."`
	Arms          string `arg:"" name:"arms" help:"How your arms are, e.g. no_problems."`
	Day           string `name:"day" help:"Day of week; required unless planning for today or tomorrow."`
	Month         string `name:"month" help:"Month; required unless planning for today or tomorrow."`

	Snapshot       string        `name:"snapshot" type:"existingfile" help:"Use this snapshot file instead of fetching."`
	MaxSnapshotAge time.Duration `name:"max-snapshot-age" default:"72h" help:"Oldest cached snapshot to fall back to when fetching fails."`
	ReuseAge       time.Duration `name:"reuse-age" default:"3h" help:"Reuse a cached snapshot up to this old instead of fetching; 0 always fetches."`
	JSON           bool          `name:"json" help:"Print JSON instead of text."`
	PNG            string        `name:"png" help:"Also render the top suggestions to this PNG file."`
	Narrate        bool          `name:"narrate" help:"Add a short written summary (needs OPENAI_API_KEY)."`
	OpenAIKey      string        `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key for --narrate."`
	OpenAIModel    string        `name:"openai-model" env:"DOTOO_OPENAI_MODEL" default:"${openai_model}" help:"Chat model for --narrate."`

	CollectorFlags `embed:""`
}

func (c *RecommendCmd) args() activity.Args {
	return activity.Args{
		TimeAvailable: c.TimeAvailable,
		HowFarAhead:   c.HowFarAhead,
		Day:           c.Day,
		Month:         c.Month,
		Budget:        c.Budget,
		Legs:          c.Legs,
		Arms:          c.Arms,
	}
}

func (c *RecommendCmd) Run(g *Globals) error {
	// Parse the circumstances before any network work so a typo fails fast.
	how, err := activity.ParseHowFarPlanningAhead(c.HowFarAhead)
	if err != nil {
		return err
	}
	if _, err := activity.BuildInput(c.args(), time.Now(), placeholderForecasts()); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.FetchTimeout)
	defer cancel()

	snap, err := c.snapshot(ctx, g, forecastDay(how))
	if err != nil {
		return err
	}

	in, err := activity.BuildInput(c.args(), time.Now(), snap.Forecasts)
	if err != nil {
		return err
	}
	engine := activity.NewEngine(activity.DefaultRegistry(), g.logger)
	ranked, err := engine.Recommend(in)
	if err != nil {
		return err
	}

	var summary string
	if c.Narrate {
		summary = c.narrate(ctx, g, ranked)
	}

	if c.JSON {
		err = writeJSON(os.Stdout, snap, in, ranked, summary)
	} else {
		err = writeText(os.Stdout, ranked, summary)
	}
	if err != nil {
		return err
	}

	if c.PNG != "" {
		card := render.Card{
			Title:    "Suggestions",
			Subtitle: fmt.Sprintf("%s, %s, %s %s", in.TimeAvailable, in.HowFarAhead, in.Day, in.Month),
		}
		b, err := render.Render(ranked, card)
		if err != nil {
			return err
		}
		if err := os.WriteFile(c.PNG, b, 0o644); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
	}
	return nil
}

func (c *RecommendCmd) snapshot(ctx context.Context, g *Globals, day int) (snapshot.Snapshot, error) {
	if c.Snapshot != "" {
		snap, err := snapshot.ReadFile(c.Snapshot)
		if err != nil {
			return snapshot.Snapshot{}, err
		}
		if err := checkDay(snap, day); err != nil {
			return snapshot.Snapshot{}, err
		}
		return snap, nil
	}

	st, err := store.Open(g.DB, g.logger)
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	defer st.Close()

	fetch, source, err := c.CollectorFlags.source(g)
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	return loadSnapshot(ctx, g, st, fetch, source, day, cachePolicy{Reuse: c.ReuseAge, Fallback: c.MaxSnapshotAge})
}

// narrate is best effort; failures are logged and the list is still
// printed.
func (c *RecommendCmd) narrate(ctx context.Context, g *Globals, ranked []activity.Recommendation) string {
	n, err := narrate.New(c.OpenAIKey, c.OpenAIModel, g.logger)
	if err != nil {
		g.logger.Warn().Err(err).Msg("narration disabled")
		return ""
	}
	text, err := n.Narrate(ctx, ranked)
	if err != nil {
		g.logger.Warn().Err(err).Msg("narration failed")
		return ""
	}
	return text
}

// forecastDay is the Met Office forecast day to read for a horizon.
// Anything beyond tomorrow uses today's forecast.
func forecastDay(how activity.HowFarPlanningAhead) int {
	if how == activity.Tomorrow {
		return 1
	}
	return 0
}

// placeholderForecasts lets argument parsing be checked before the real
// forecasts are fetched.
func placeholderForecasts() activity.WebData {
	w := make(activity.WebData, len(activity.Locations))
	for _, loc := range activity.Locations {
		w[loc] = activity.Forecast{
			Wind:        activity.AlmostNoWind,
			Surf:        activity.NoSurf,
			SunAndRain:  activity.Sunny,
			Temperature: activity.TenToFourteen,
			Snowiness:   activity.NoSnow,
		}
	}
	return w
}

func writeText(w io.Writer, ranked []activity.Recommendation, summary string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Suggestions:")
	for _, rec := range ranked {
		fmt.Fprintln(bw, activity.FormatLine(rec))
	}
	if summary != "" {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, summary)
	}
	return bw.Flush()
}

type jsonOutput struct {
	Snapshot    jsonSnapshot              `json:"snapshot"`
	Input       activity.Input            `json:"input"`
	Suggestions []activity.Recommendation `json:"suggestions"`
	Summary     string                    `json:"summary,omitempty"`
}

type jsonSnapshot struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
	Day       int       `json:"day"`
}

func writeJSON(w io.Writer, snap snapshot.Snapshot, in activity.Input, ranked []activity.Recommendation, summary string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonOutput{
		Snapshot:    jsonSnapshot{ID: snap.ID, Source: snap.Source, FetchedAt: snap.FetchedAt, Day: snap.Day},
		Input:       in,
		Suggestions: ranked,
		Summary:     summary,
	})
}
