package activity

import (
	"fmt"
	"sort"
	"strings"
)

// Location is one of the fixed places a forecast snapshot covers.
type Location string

const (
	Bristol     Location = "bristol"
	Porthcawl   Location = "porthcawl"
	Woolacombe  Location = "woolacombe"
	Brecon      Location = "brecon"
	Llanberis   Location = "llanberis"
	Keswick     Location = "keswick"
	FortWilliam Location = "fort_william"
	Poole       Location = "poole"
	Truro       Location = "truro"
	Newquay     Location = "newquay"
	Weymouth    Location = "weymouth"
	Aviemore    Location = "aviemore"
	Axbridge    Location = "axbridge"
	Llandegfedd Location = "llandegfedd"
	Weston      Location = "weston"
)

// Locations is every key a WebData must carry, in canonical order.
var Locations = []Location{
	Bristol, Porthcawl, Woolacombe, Brecon, Llanberis, Keswick, FortWilliam,
	Poole, Truro, Newquay, Weymouth, Aviemore, Axbridge, Llandegfedd, Weston,
}

func (l Location) Known() bool {
	for _, k := range Locations {
		if k == l {
			return true
		}
	}
	return false
}

// Forecast is the weather summary for one location.
type Forecast struct {
	Wind        WindsurfForecast `json:"wind"`
	Surf        SurfForecast     `json:"surf"`
	SunAndRain  Weather          `json:"sun_and_rain"`
	Temperature Temperature      `json:"temperature"`
	Snowiness   Snowiness        `json:"snowiness"`
}

// Valid reports whether every field holds a declared value.
func (f Forecast) Valid() bool {
	return f.Wind.Valid() && f.Surf.Valid() && f.SunAndRain.Valid() &&
		f.Temperature.Valid() && f.Snowiness.Valid()
}

// WebData maps every Location to its Forecast. Treat it as read-only once
// built.
type WebData map[Location]Forecast

// Validate fails if any location is missing, unknown or carries an invalid
// forecast. All problems are reported in one error.
func (w WebData) Validate() error {
	var missing, invalid, unknown []string
	for _, loc := range Locations {
		f, ok := w[loc]
		switch {
		case !ok:
			missing = append(missing, string(loc))
		case !f.Valid():
			invalid = append(invalid, string(loc))
		}
	}
	for loc := range w {
		if !loc.Known() {
			unknown = append(unknown, string(loc))
		}
	}
	sort.Strings(unknown)

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "missing locations: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		problems = append(problems, "invalid forecasts: "+strings.Join(invalid, ", "))
	}
	if len(unknown) > 0 {
		problems = append(problems, "unknown locations: "+strings.Join(unknown, ", "))
	}
	if len(problems) > 0 {
		return &ConfigError{Field: "forecasts", Reason: strings.Join(problems, "; ")}
	}
	return nil
}

// Clone returns an independent copy.
func (w WebData) Clone() WebData {
	out := make(WebData, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// Input is the context every rule is evaluated against.
type Input struct {
	TimeAvailable TimeAvailable       `json:"time_available"`
	HowFarAhead   HowFarPlanningAhead `json:"how_far_ahead"`
	Day           DayOfWeek           `json:"day"`
	Month         Month               `json:"month"`
	Budget        Budget              `json:"budget"`
	Forecasts     WebData             `json:"forecasts"`
	Legs          TiredOrInjuredness  `json:"legs"`
	Arms          TiredOrInjuredness  `json:"arms"`
}

// Forecast returns the forecast for a named location. Validate guarantees
// every location is present before any rule runs.
func (in Input) Forecast(loc Location) Forecast {
	return in.Forecasts[loc]
}

// Validate checks that the context is fully populated.
func (in Input) Validate() error {
	checks := []struct {
		field string
		ok    bool
		unset bool
		value fmt.Stringer
	}{
		{"time_available", in.TimeAvailable.Valid(), in.TimeAvailable == 0, in.TimeAvailable},
		{"how_far_ahead", in.HowFarAhead.Valid(), in.HowFarAhead == 0, in.HowFarAhead},
		{"day", in.Day.Valid(), in.Day == 0, in.Day},
		{"month", in.Month.Valid(), in.Month == 0, in.Month},
		{"budget", in.Budget.Valid(), in.Budget == 0, in.Budget},
		{"legs", in.Legs.Valid(), in.Legs == 0, in.Legs},
		{"arms", in.Arms.Valid(), in.Arms == 0, in.Arms},
	}
	for _, c := range checks {
		if c.ok {
			continue
		}
		reason := "out of range"
		if c.unset {
			reason = "not set"
		}
		return &ConfigError{Field: c.field, Value: c.value.String(), Reason: reason}
	}
	return in.Forecasts.Validate()
}

// Result is one rule's verdict.
type Result struct {
	Suitability Suitability `json:"suitability"`
	Notes       []string    `json:"notes"`
}

func result(s Suitability, notes ...string) Result {
	return Result{Suitability: s, Notes: notes}
}
