package activity

import (
	"fmt"
	"strings"
	"time"
)

// nameTable is the declared order of an enumerated type. Value n (1-based)
// is names[n-1]; the zero value of every enum is unset and never valid.
type nameTable[T ~int] struct {
	kind  string
	names []string
}

func newNameTable[T ~int](kind string, names ...string) nameTable[T] {
	return nameTable[T]{kind: kind, names: names}
}

func (t nameTable[T]) valid(v T) bool {
	return v >= 1 && int(v) <= len(t.names)
}

func (t nameTable[T]) name(v T) string {
	if !t.valid(v) {
		return fmt.Sprintf("%s(%d)", strings.ReplaceAll(t.kind, " ", "_"), int(v))
	}
	return t.names[v-1]
}

func (t nameTable[T]) parse(field, s string) (T, error) {
	for i, n := range t.names {
		if n == s {
			return T(i + 1), nil
		}
	}
	return 0, &ConfigError{
		Field:  field,
		Value:  s,
		Reason: fmt.Sprintf("unknown %s, want one of: %s", t.kind, strings.Join(t.names, ", ")),
	}
}

func (t nameTable[T]) values() []T {
	out := make([]T, len(t.names))
	for i := range t.names {
		out[i] = T(i + 1)
	}
	return out
}

func (t nameTable[T]) marshal(v T) ([]byte, error) {
	if !t.valid(v) {
		return nil, fmt.Errorf("marshal %s: invalid value %d", t.kind, int(v))
	}
	return []byte(t.names[v-1]), nil
}

func (t nameTable[T]) unmarshal(field string, b []byte, dst *T) error {
	v, err := t.parse(field, string(b))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// TimeAvailable is ordered from least to most time.
type TimeAvailable int

const (
	AnHour TimeAvailable = iota + 1
	TwoHours
	FourHours
	Evening
	AllDay
	AllWeekend
	FourDays
	OneWeekPlus
)

var timeAvailableNames = newNameTable[TimeAvailable]("time available",
	"an_hour", "two_hours", "four_hours", "evening", "all_day", "all_weekend", "four_days", "one_week_plus")

func (t TimeAvailable) String() string { return timeAvailableNames.name(t) }
func (t TimeAvailable) Valid() bool    { return timeAvailableNames.valid(t) }

// Before reports whether t is strictly less time than o.
func (t TimeAvailable) Before(o TimeAvailable) bool { return t < o }

// After reports whether t is strictly more time than o.
func (t TimeAvailable) After(o TimeAvailable) bool { return t > o }

func (t TimeAvailable) AtLeast(o TimeAvailable) bool { return t >= o }
func (t TimeAvailable) AtMost(o TimeAvailable) bool  { return t <= o }

func (t TimeAvailable) MarshalText() ([]byte, error) { return timeAvailableNames.marshal(t) }
func (t *TimeAvailable) UnmarshalText(b []byte) error {
	return timeAvailableNames.unmarshal("time_available", b, t)
}

func ParseTimeAvailable(s string) (TimeAvailable, error) {
	return timeAvailableNames.parse("time_available", s)
}

func TimeAvailableValues() []TimeAvailable { return timeAvailableNames.values() }

// HowFarPlanningAhead has no ordering.
type HowFarPlanningAhead int

const (
	Today HowFarPlanningAhead = iota + 1
	Tomorrow
	ThisWeek
	NextWeek
	MonthsAhead
)

var howFarNames = newNameTable[HowFarPlanningAhead]("planning horizon",
	"today", "tomorrow", "this_week", "next_week", "months_ahead")

func (h HowFarPlanningAhead) String() string { return howFarNames.name(h) }
func (h HowFarPlanningAhead) Valid() bool    { return howFarNames.valid(h) }

// Relative reports whether the day and month follow from the current date.
func (h HowFarPlanningAhead) Relative() bool { return h == Today || h == Tomorrow }

func (h HowFarPlanningAhead) MarshalText() ([]byte, error) { return howFarNames.marshal(h) }
func (h *HowFarPlanningAhead) UnmarshalText(b []byte) error {
	return howFarNames.unmarshal("how_far_ahead", b, h)
}

func ParseHowFarPlanningAhead(s string) (HowFarPlanningAhead, error) {
	return howFarNames.parse("how_far_ahead", s)
}

func HowFarPlanningAheadValues() []HowFarPlanningAhead { return howFarNames.values() }

// DayOfWeek runs mon..sun; MoreThanOneDay means the plan spans several days.
type DayOfWeek int

const (
	Mon DayOfWeek = iota + 1
	Tue
	Wed
	Thu
	Fri
	Sat
	Sun
	MoreThanOneDay
)

var dayNames = newNameTable[DayOfWeek]("day of week",
	"mon", "tue", "wed", "thu", "fri", "sat", "sun", "more_than_one")

func (d DayOfWeek) String() string { return dayNames.name(d) }
func (d DayOfWeek) Valid() bool    { return dayNames.valid(d) }

func (d DayOfWeek) MarshalText() ([]byte, error) { return dayNames.marshal(d) }
func (d *DayOfWeek) UnmarshalText(b []byte) error {
	return dayNames.unmarshal("day", b, d)
}

func ParseDayOfWeek(s string) (DayOfWeek, error) { return dayNames.parse("day", s) }

func DayOfWeekValues() []DayOfWeek { return dayNames.values() }

// DayFromWeekday converts a calendar weekday.
func DayFromWeekday(w time.Weekday) DayOfWeek {
	if w == time.Sunday {
		return Sun
	}
	return DayOfWeek(w)
}

// Month is numbered jan=1..dec=12 so ranges compare numerically.
type Month int

const (
	Jan Month = iota + 1
	Feb
	Mar
	Apr
	May
	Jun
	Jul
	Aug
	Sep
	Oct
	Nov
	Dec
)

var monthNames = newNameTable[Month]("month",
	"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec")

func (m Month) String() string { return monthNames.name(m) }
func (m Month) Valid() bool    { return monthNames.valid(m) }

// Between reports whether m lies in [from, to], inclusive on both ends.
func (m Month) Between(from, to Month) bool { return from <= m && m <= to }

func (m Month) MarshalText() ([]byte, error) { return monthNames.marshal(m) }
func (m *Month) UnmarshalText(b []byte) error {
	return monthNames.unmarshal("month", b, m)
}

func ParseMonth(s string) (Month, error) { return monthNames.parse("month", s) }

func MonthValues() []Month { return monthNames.values() }

// Budget tiers are ordered cheapest first.
type Budget int

const (
	FiftyPoundsPerDay Budget = iota + 1
	OneHundredPoundsPerDay
	OneHundredFiftyPoundsPerDay
	TwoHundredFiftyPoundsPerDay
)

var budgetNames = newNameTable[Budget]("budget",
	"fifty_pounds_per_day", "one_hundred_pounds_per_day",
	"one_hundred_fifty_pounds_per_day", "two_hundred_fifty_pounds_per_day")

func (b Budget) String() string { return budgetNames.name(b) }
func (b Budget) Valid() bool    { return budgetNames.valid(b) }

func (b Budget) AtLeast(o Budget) bool { return b >= o }

func (b Budget) MarshalText() ([]byte, error) { return budgetNames.marshal(b) }
func (b *Budget) UnmarshalText(text []byte) error {
	return budgetNames.unmarshal("budget", text, b)
}

func ParseBudget(s string) (Budget, error) { return budgetNames.parse("budget", s) }

func BudgetValues() []Budget { return budgetNames.values() }

// TiredOrInjuredness is ordered from fine to properly injured.
type TiredOrInjuredness int

const (
	NoProblems TiredOrInjuredness = iota + 1
	PrettyTiredOrNigglingInjury
	ReallyTired
	ProperlyInjured
)

var tirednessNames = newNameTable[TiredOrInjuredness]("tiredness",
	"no_problems", "pretty_tired_or_niggling_injury", "really_tired", "properly_injured")

func (t TiredOrInjuredness) String() string { return tirednessNames.name(t) }
func (t TiredOrInjuredness) Valid() bool    { return tirednessNames.valid(t) }

func (t TiredOrInjuredness) AtLeast(o TiredOrInjuredness) bool { return t >= o }

func (t TiredOrInjuredness) MarshalText() ([]byte, error) { return tirednessNames.marshal(t) }
func (t *TiredOrInjuredness) UnmarshalText(b []byte) error {
	return tirednessNames.unmarshal("tiredness", b, t)
}

// ParseTiredOrInjuredness parses the named limb's state; field is "legs" or "arms".
func ParseTiredOrInjuredness(field, s string) (TiredOrInjuredness, error) {
	return tirednessNames.parse(field, s)
}

func TiredOrInjurednessValues() []TiredOrInjuredness { return tirednessNames.values() }

// Weather summarises sky and rain. It is unordered; rules match exact values.
type Weather int

const (
	HeavyRain Weather = iota + 1
	OvercastWithShowers
	SunWithShowers
	Sunny
)

var weatherNames = newNameTable[Weather]("weather",
	"heavy_rain", "overcast_with_showers", "sun_with_showers", "sunny")

func (w Weather) String() string { return weatherNames.name(w) }
func (w Weather) Valid() bool    { return weatherNames.valid(w) }

func (w Weather) MarshalText() ([]byte, error) { return weatherNames.marshal(w) }
func (w *Weather) UnmarshalText(b []byte) error {
	return weatherNames.unmarshal("sun_and_rain", b, w)
}

func WeatherValues() []Weather { return weatherNames.values() }

type WindsurfForecast int

const (
	AlmostNoWind WindsurfForecast = iota + 1
	BobbingAbout
	Planing
	TooMuchWind
)

var windNames = newNameTable[WindsurfForecast]("wind",
	"almost_none", "bobbing_about", "planing", "too_much")

func (w WindsurfForecast) String() string { return windNames.name(w) }
func (w WindsurfForecast) Valid() bool    { return windNames.valid(w) }

func (w WindsurfForecast) MarshalText() ([]byte, error) { return windNames.marshal(w) }
func (w *WindsurfForecast) UnmarshalText(b []byte) error {
	return windNames.unmarshal("wind", b, w)
}

func WindsurfForecastValues() []WindsurfForecast { return windNames.values() }

type SurfForecast int

const (
	NoSurf SurfForecast = iota + 1
	SmallSurf
	BigSurf
)

var surfNames = newNameTable[SurfForecast]("surf", "no_surf", "small_surf", "big_surf")

func (s SurfForecast) String() string { return surfNames.name(s) }
func (s SurfForecast) Valid() bool    { return surfNames.valid(s) }

func (s SurfForecast) MarshalText() ([]byte, error) { return surfNames.marshal(s) }
func (s *SurfForecast) UnmarshalText(b []byte) error {
	return surfNames.unmarshal("surf", b, s)
}

func SurfForecastValues() []SurfForecast { return surfNames.values() }

type Snowiness int

const (
	NoSnow Snowiness = iota + 1
	Dusting
	LotsOfSnow
)

var snowNames = newNameTable[Snowiness]("snowiness", "no_snow", "dusting", "lots")

func (s Snowiness) String() string { return snowNames.name(s) }
func (s Snowiness) Valid() bool    { return snowNames.valid(s) }

func (s Snowiness) MarshalText() ([]byte, error) { return snowNames.marshal(s) }
func (s *Snowiness) UnmarshalText(b []byte) error {
	return snowNames.unmarshal("snowiness", b, s)
}

func SnowinessValues() []Snowiness { return snowNames.values() }

// Temperature buckets are in degrees Celsius.
type Temperature int

const (
	OneOrLess Temperature = iota + 1
	TwoToSix
	SevenToTen
	TenToFourteen
	FifteenToNineteen
	TwentyToTwentyFour
	TwentyFivePlus
)

var temperatureNames = newNameTable[Temperature]("temperature",
	"one_or_less", "two_to_six", "seven_to_ten", "ten_to_fourteen",
	"fifteen_to_nineteen", "twenty_to_twenty_four", "twenty_five_plus")

func (t Temperature) String() string { return temperatureNames.name(t) }
func (t Temperature) Valid() bool    { return temperatureNames.valid(t) }

func (t Temperature) MarshalText() ([]byte, error) { return temperatureNames.marshal(t) }
func (t *Temperature) UnmarshalText(b []byte) error {
	return temperatureNames.unmarshal("temperature", b, t)
}

func TemperatureValues() []Temperature { return temperatureNames.values() }

// Suitability is the verdict tier and the only ranking key:
// No < IGuessICouldDo < Yeah < Yay.
type Suitability int

const (
	No Suitability = iota + 1
	IGuessICouldDo
	Yeah
	Yay
)

var suitabilityNames = newNameTable[Suitability]("suitability",
	"no", "i_guess_i_could_do", "yeah", "yay")

func (s Suitability) String() string { return suitabilityNames.name(s) }
func (s Suitability) Valid() bool    { return suitabilityNames.valid(s) }

// Outranks reports whether s sorts ahead of o in a ranking.
func (s Suitability) Outranks(o Suitability) bool { return s > o }

func (s Suitability) MarshalText() ([]byte, error) { return suitabilityNames.marshal(s) }
func (s *Suitability) UnmarshalText(b []byte) error {
	return suitabilityNames.unmarshal("suitability", b, s)
}

func SuitabilityValues() []Suitability { return suitabilityNames.values() }

// EnumListing names one user-facing enumerated type and its values in order.
type EnumListing struct {
	Kind  string
	Names []string
}

// Enums lists the types a caller supplies by name, for usage output.
func Enums() []EnumListing {
	tables := []struct {
		kind  string
		names []string
	}{
		{"TimeAvailable", timeAvailableNames.names},
		{"HowFarPlanningAhead", howFarNames.names},
		{"DayOfWeek", dayNames.names},
		{"Month", monthNames.names},
		{"Budget", budgetNames.names},
		{"TiredOrInjuredness", tirednessNames.names},
	}
	out := make([]EnumListing, 0, len(tables))
	for _, t := range tables {
		out = append(out, EnumListing{Kind: t.kind, Names: append([]string(nil), t.names...)})
	}
	return out
}
