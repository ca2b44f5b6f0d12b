package snapshot

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lox/dotoo/internal/activity"
	"github.com/lox/dotoo/internal/htmlutil"
)

var (
	dayStartPattern  = regexp.MustCompile(`<div[^>]*class="[^"]*\bforecast-day\b[^"]*"`)
	symbolRowPattern = regexp.MustCompile(`(?s)<tr[^>]*class="[^"]*\bstep-symbol\b[^"]*"[^>]*>(.*?)</tr>`)
	tempRowPattern   = regexp.MustCompile(`(?s)<tr[^>]*class="[^"]*\bstep-temp\b[^"]*"[^>]*>(.*?)</tr>`)
	windRowPattern   = regexp.MustCompile(`(?s)<tr[^>]*class="[^"]*\bstep-wind\b[^"]*"[^>]*>(.*?)</tr>`)
	altPattern       = regexp.MustCompile(`alt="([^"]*)"`)
	dataValuePattern = regexp.MustCompile(`data-value="(-?\d+(?:\.\d+)?)"`)
)

// dayReading is the raw per-step values for one forecast day.
type dayReading struct {
	Symbols []string
	Temps   []float64
	Winds   []float64
}

// parseMetOfficeDay extracts the steps of forecast day n (0 is today) from
// a Met Office location page.
func parseMetOfficeDay(page string, n int) (dayReading, error) {
	starts := dayStartPattern.FindAllStringIndex(page, -1)
	if len(starts) == 0 {
		return dayReading{}, fmt.Errorf("no forecast days in page")
	}
	if n < 0 || n >= len(starts) {
		return dayReading{}, fmt.Errorf("day %d not in forecast (%d days)", n, len(starts))
	}
	end := len(page)
	if n+1 < len(starts) {
		end = starts[n+1][0]
	}
	section := page[starts[n][0]:end]

	var r dayReading
	if m := symbolRowPattern.FindStringSubmatch(section); m != nil {
		for _, alt := range altPattern.FindAllStringSubmatch(m[1], -1) {
			r.Symbols = append(r.Symbols, htmlutil.Label(alt[1]))
		}
	}
	if m := tempRowPattern.FindStringSubmatch(section); m != nil {
		r.Temps = dataValues(m[1])
	}
	if m := windRowPattern.FindStringSubmatch(section); m != nil {
		r.Winds = dataValues(m[1])
	}

	switch {
	case len(r.Symbols) == 0:
		return dayReading{}, fmt.Errorf("day %d: no weather symbols", n)
	case len(r.Temps) == 0:
		return dayReading{}, fmt.Errorf("day %d: no temperatures", n)
	case len(r.Winds) == 0:
		return dayReading{}, fmt.Errorf("day %d: no wind speeds", n)
	}
	return r, nil
}

func dataValues(row string) []float64 {
	var out []float64
	for _, m := range dataValuePattern.FindAllStringSubmatch(row, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Forecast summarises the day. Surf is not on the page, so it is always
// no_surf.
func (r dayReading) Forecast() (activity.Forecast, error) {
	weather, ok := summariseWeather(r.Symbols)
	if !ok {
		return activity.Forecast{}, fmt.Errorf("unrecognised weather symbols: %s", strings.Join(r.Symbols, ", "))
	}
	return activity.Forecast{
		Wind:        WindBucket(maxOf(r.Winds)),
		Surf:        activity.NoSurf,
		SunAndRain:  weather,
		Temperature: TemperatureBucket(maxOf(r.Temps)),
		Snowiness:   summariseSnow(r.Symbols),
	}, nil
}

// ClassifySymbol maps a Met Office symbol label to a weather tier. The
// first matching case wins.
func ClassifySymbol(label string) (activity.Weather, bool) {
	l := strings.ToLower(label)
	switch {
	case containsAny(l, "heavy", "thunder", "hail", "sleet"):
		return activity.HeavyRain, true
	case containsAny(l, "rain", "drizzle", "snow"):
		return activity.OvercastWithShowers, true
	case containsAny(l, "shower", "partly cloudy", "sunny intervals"):
		return activity.SunWithShowers, true
	case containsAny(l, "cloudy", "overcast", "mist", "fog"):
		return activity.OvercastWithShowers, true
	case containsAny(l, "sunny", "clear"):
		return activity.Sunny, true
	}
	return 0, false
}

// summariseWeather picks the most common tier across the day's steps.
// Ties go to the wetter tier.
func summariseWeather(symbols []string) (activity.Weather, bool) {
	counts := make(map[activity.Weather]int)
	for _, s := range symbols {
		if w, ok := ClassifySymbol(s); ok {
			counts[w]++
		}
	}
	var best activity.Weather
	for _, w := range activity.WeatherValues() {
		if counts[w] > counts[best] {
			best = w
		}
	}
	return best, best.Valid()
}

func summariseSnow(symbols []string) activity.Snowiness {
	snow := activity.NoSnow
	for _, s := range symbols {
		l := strings.ToLower(s)
		switch {
		case strings.Contains(l, "heavy snow"):
			return activity.LotsOfSnow
		case strings.Contains(l, "snow"):
			snow = activity.Dusting
		}
	}
	return snow
}

// TemperatureBucket maps a maximum temperature in °C to its band.
func TemperatureBucket(c float64) activity.Temperature {
	t := math.Round(c)
	switch {
	case t <= 1:
		return activity.OneOrLess
	case t <= 6:
		return activity.TwoToSix
	case t < 10:
		return activity.SevenToTen
	case t <= 14:
		return activity.TenToFourteen
	case t <= 19:
		return activity.FifteenToNineteen
	case t <= 24:
		return activity.TwentyToTwentyFour
	default:
		return activity.TwentyFivePlus
	}
}

// WindBucket maps a maximum wind speed in mph to a windsurfing verdict.
func WindBucket(mph float64) activity.WindsurfForecast {
	switch {
	case mph < 8:
		return activity.AlmostNoWind
	case mph < 15:
		return activity.BobbingAbout
	case mph <= 30:
		return activity.Planing
	default:
		return activity.TooMuchWind
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func maxOf(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
