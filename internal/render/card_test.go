package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/lox/dotoo/internal/activity"
)

func TestRender(t *testing.T) {
	ranked := []activity.Recommendation{
		{Activity: "run_with_local_running_club", Result: activity.Result{Suitability: activity.Yeah, Notes: []string{"parkrun"}}},
		{Activity: "boom", Result: activity.Result{Suitability: activity.No, Notes: []string{"rule failed: boom"}}, Failed: true},
		{Activity: "some_random_local_attraction", Result: activity.Result{Suitability: activity.IGuessICouldDo, Notes: []string{strings.Repeat("cinema, ", 40)}}},
		{Activity: "skiing", Result: activity.Result{Suitability: activity.No}},
	}

	b, err := Render(ranked, Card{Title: "Suggestions", Subtitle: "all_day, this_week", MaxRows: 2})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}

	wantH := headerH + 2*rowH + padding
	if got := img.Bounds(); got.Dx() != CardWidth || got.Dy() != wantH {
		t.Errorf("card size = %dx%d, want %dx%d", got.Dx(), got.Dy(), CardWidth, wantH)
	}
}

func TestFitText(t *testing.T) {
	loadFonts()
	if fontErr != nil {
		t.Fatalf("load fonts: %v", fontErr)
	}
	if got := fitText("short", fontBody, 500); got != "short" {
		t.Errorf("fitText() = %q, want unchanged", got)
	}
	got := fitText(strings.Repeat("word ", 100), fontBody, 300)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("fitText() = %q, want an ellipsis", got)
	}
}
