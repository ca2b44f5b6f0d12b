package activity

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/lox/dotoo/internal/logging"
	"github.com/lox/dotoo/internal/metrics"
)

// Recommendation is one evaluated rule.
type Recommendation struct {
	Activity string `json:"activity"`
	Result   Result `json:"result"`
	Failed   bool   `json:"failed,omitempty"`
}

// Engine evaluates a registry against an Input.
type Engine struct {
	registry *Registry
	logger   zerolog.Logger
}

func NewEngine(reg *Registry, logger zerolog.Logger) *Engine {
	return &Engine{
		registry: reg,
		logger:   logging.Component(logger, "engine"),
	}
}

// Evaluate runs every rule in registration order. The input is validated
// first; on error no rule runs. A rule that panics is reported as a failed
// "no" verdict and the remaining rules still run.
func (e *Engine) Evaluate(in Input) ([]Recommendation, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	rules := e.registry.rules
	recs := make([]Recommendation, 0, len(rules))
	for _, rule := range rules {
		rec := e.evaluateRule(rule, in)
		metrics.RuleEvaluationsTotal.WithLabelValues(rec.Result.Suitability.String()).Inc()
		recs = append(recs, rec)
	}

	e.logger.Debug().
		Int("rules", len(recs)).
		Str("time_available", in.TimeAvailable.String()).
		Str("how_far_ahead", in.HowFarAhead.String()).
		Msg("evaluated rules")
	return recs, nil
}

func (e *Engine) evaluateRule(rule Rule, in Input) (rec Recommendation) {
	rec.Activity = rule.Name
	defer func() {
		if r := recover(); r != nil {
			rec.Result = result(No, fmt.Sprintf("rule failed: %v", r))
			rec.Failed = true
			metrics.RuleFailuresTotal.WithLabelValues(rule.Name).Inc()
			e.logger.Error().Str("rule", rule.Name).Interface("panic", r).Msg("rule failed")
		}
	}()
	rec.Result = rule.Evaluate(in)
	if !rec.Result.Suitability.Valid() {
		panic(fmt.Sprintf("invalid suitability %d", int(rec.Result.Suitability)))
	}
	return rec
}

// Recommend evaluates and ranks.
func (e *Engine) Recommend(in Input) ([]Recommendation, error) {
	recs, err := e.Evaluate(in)
	if err != nil {
		return nil, err
	}
	return Rank(recs), nil
}

// Rank returns a copy ordered by suitability, best first. Equal verdicts
// keep their input order.
func Rank(recs []Recommendation) []Recommendation {
	out := append([]Recommendation(nil), recs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.Suitability.Outranks(out[j].Result.Suitability)
	})
	return out
}
