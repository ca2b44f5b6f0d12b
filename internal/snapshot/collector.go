package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/lox/dotoo/internal/activity"
	"github.com/lox/dotoo/internal/httputil"
	"github.com/lox/dotoo/internal/logging"
	"github.com/lox/dotoo/internal/metrics"
)

const MetOfficeBaseURL = "https://www.metoffice.gov.uk/weather/forecast"

// CollectorConfig controls how Met Office pages are fetched.
type CollectorConfig struct {
	BaseURL           string        `validate:"required,url"`
	UserAgent         string        `validate:"required"`
	Concurrency       int           `validate:"min=1,max=16"`
	RequestsPerSecond float64       `validate:"gt=0"`
	Burst             int           `validate:"min=1"`
	Timeout           time.Duration `validate:"gt=0"`
	RetryInitial      time.Duration `validate:"gt=0"`
	RetryMaxElapsed   time.Duration `validate:"gtefield=RetryInitial"`
	BreakerFailures   uint32        `validate:"min=1"`
	BreakerCooldown   time.Duration `validate:"gt=0"`
}

func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		BaseURL:           MetOfficeBaseURL,
		UserAgent:         httputil.DefaultUserAgent,
		Concurrency:       4,
		RequestsPerSecond: 2,
		Burst:             2,
		Timeout:           httputil.DefaultTimeout,
		RetryInitial:      500 * time.Millisecond,
		RetryMaxElapsed:   time.Minute,
		BreakerFailures:   5,
		BreakerCooldown:   30 * time.Second,
	}
}

var validate = validator.New()

// Validate reports every invalid field in one error.
func (c CollectorConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate collector config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return &activity.ConfigError{Field: "collector", Reason: strings.Join(msgs, ", ")}
}

// Collector scrapes Met Office pages into a complete snapshot.
type Collector struct {
	cfg     CollectorConfig
	client  *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]byte]
	logger  zerolog.Logger
}

func NewCollector(cfg CollectorConfig, logger zerolog.Logger) (*Collector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger = logging.Component(logger, "collector")

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "metoffice",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		IsSuccessful: func(err error) bool {
			var permanent *backoff.PermanentError
			return err == nil || errors.As(err, &permanent)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
	})

	return &Collector{
		cfg:     cfg,
		client:  httputil.NewClient(cfg.Timeout, cfg.UserAgent),
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		breaker: breaker,
		logger:  logger,
	}, nil
}

// Collect fetches every site and returns a snapshot for forecast day n
// (0 is today). Any site failing fails the whole collection; a partial
// snapshot is never returned.
func (c *Collector) Collect(ctx context.Context, day int) (Snapshot, error) {
	forecasts := make([]activity.Forecast, len(Sites))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Concurrency)
	for i, site := range Sites {
		g.Go(func() error {
			f, err := c.fetchSite(gCtx, site, day)
			if err != nil {
				return fmt.Errorf("site %s: %w", site.Name, err)
			}
			forecasts[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	bySite := make(map[string]activity.Forecast, len(Sites))
	for i, site := range Sites {
		bySite[site.Name] = forecasts[i]
	}
	data := make(activity.WebData, len(activity.Locations))
	for _, loc := range activity.Locations {
		f, ok := bySite[siteFor[loc]]
		if !ok {
			return Snapshot{}, fmt.Errorf("no site for location %s", loc)
		}
		data[loc] = f
	}

	snap, err := New(SourceMetOffice, time.Now(), day, data)
	if err != nil {
		return Snapshot{}, err
	}
	c.logger.Info().Str("snapshot", snap.ID).Int("sites", len(Sites)).Int("day", day).Msg("collected forecasts")
	return snap, nil
}

func (c *Collector) fetchSite(ctx context.Context, site Site, day int) (activity.Forecast, error) {
	body, err := c.fetch(ctx, site)
	if err != nil {
		return activity.Forecast{}, err
	}
	reading, err := parseMetOfficeDay(string(body), day)
	if err != nil {
		return activity.Forecast{}, fmt.Errorf("parse page: %w", err)
	}
	f, err := reading.Forecast()
	if err != nil {
		return activity.Forecast{}, err
	}
	c.logger.Debug().
		Str("site", site.Name).
		Str("sun_and_rain", f.SunAndRain.String()).
		Str("wind", f.Wind.String()).
		Str("temperature", f.Temperature.String()).
		Msg("classified forecast")
	return f, nil
}

// fetch retries transport errors, 429s and 5xx responses. Other non-200
// statuses and an open breaker end the retries.
func (c *Collector) fetch(ctx context.Context, site Site) ([]byte, error) {
	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + site.Code
	var body []byte

	operation := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(fmt.Errorf("rate limit: %w", err))
		}
		start := time.Now()
		b, err := c.breaker.Execute(func() ([]byte, error) {
			return c.get(ctx, site, url)
		})
		metrics.FetchLatency.WithLabelValues(site.Name).Observe(time.Since(start).Seconds())
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return backoff.Permanent(err)
		}
		if err != nil {
			c.logger.Debug().Err(err).Str("site", site.Name).Msg("fetch attempt failed")
			return err
		}
		body = b
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.cfg.RetryInitial
	bo.MaxElapsedTime = c.cfg.RetryMaxElapsed
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Collector) get(ctx context.Context, site Site, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.FetchCallsTotal.WithLabelValues(site.Name, "error").Inc()
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	metrics.FetchCallsTotal.WithLabelValues(site.Name, strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, fmt.Errorf("fetch page: status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, backoff.Permanent(fmt.Errorf("fetch page: status %d", resp.StatusCode))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
