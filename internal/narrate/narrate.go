// Package narrate turns a ranked recommendation list into a short
// paragraph using an OpenAI chat model.
package narrate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog"

	"github.com/lox/dotoo/internal/activity"
	"github.com/lox/dotoo/internal/logging"
)

const (
	DefaultModel = "gpt-4o-mini"
	// DefaultPicks is how many of the best suggestions go into the prompt.
	DefaultPicks = 5
)

const systemPrompt = `You suggest what to do with some free time. Given a ranked list of ` +
	`activities with verdicts and notes, write two or three friendly sentences ` +
	`recommending the top choices. Use only the activities listed.`

type Narrator struct {
	client openai.Client
	model  string
	picks  int
	logger zerolog.Logger
}

// New returns a narrator. An empty apiKey is an error; callers treat
// narration as optional and skip it.
func New(apiKey, model string, logger zerolog.Logger, opts ...option.RequestOption) (*Narrator, error) {
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY not set")
	}
	if model == "" {
		model = DefaultModel
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Narrator{
		client: openai.NewClient(opts...),
		model:  model,
		picks:  DefaultPicks,
		logger: logging.Component(logger, "narrate"),
	}, nil
}

// Narrate describes the best of a ranked list.
func (n *Narrator) Narrate(ctx context.Context, ranked []activity.Recommendation) (string, error) {
	prompt := BuildPrompt(ranked, n.picks)
	if prompt == "" {
		return "", errors.New("nothing worth suggesting")
	}

	resp, err := n.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(n.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		MaxCompletionTokens: openai.Int(200),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion returned")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	n.logger.Debug().Str("model", n.model).Int("chars", len(text)).Msg("narrated suggestions")
	return text, nil
}

// BuildPrompt lists up to picks recommendations that are not ruled out, in
// ranked order. It returns "" when everything is ruled out.
func BuildPrompt(ranked []activity.Recommendation, picks int) string {
	var b strings.Builder
	n := 0
	for _, rec := range ranked {
		if n == picks {
			break
		}
		if rec.Result.Suitability == activity.No || rec.Failed {
			continue
		}
		fmt.Fprintf(&b, "- %s\n", activity.FormatLine(rec))
		n++
	}
	if n == 0 {
		return ""
	}
	return "Suggestions, best first:\n" + b.String()
}
