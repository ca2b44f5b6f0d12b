package activity

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseNames(t *testing.T) {
	tests := []struct {
		name  string
		parse func() (int, error)
		want  int
	}{
		{"time first", func() (int, error) { v, err := ParseTimeAvailable("an_hour"); return int(v), err }, int(AnHour)},
		{"time last", func() (int, error) { v, err := ParseTimeAvailable("one_week_plus"); return int(v), err }, int(OneWeekPlus)},
		{"horizon", func() (int, error) { v, err := ParseHowFarPlanningAhead("months_ahead"); return int(v), err }, int(MonthsAhead)},
		{"day sentinel", func() (int, error) { v, err := ParseDayOfWeek("more_than_one"); return int(v), err }, int(MoreThanOneDay)},
		{"month", func() (int, error) { v, err := ParseMonth("oct"); return int(v), err }, 10},
		{"budget", func() (int, error) { v, err := ParseBudget("one_hundred_fifty_pounds_per_day"); return int(v), err }, int(OneHundredFiftyPoundsPerDay)},
		{"legs", func() (int, error) { v, err := ParseTiredOrInjuredness("legs", "really_tired"); return int(v), err }, int(ReallyTired)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse()
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parse = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseUnknownName(t *testing.T) {
	_, err := ParseBudget("a_million")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("ParseBudget() error = %v, want *ConfigError", err)
	}
	if cfgErr.Field != "budget" || cfgErr.Value != "a_million" {
		t.Errorf("ConfigError = %+v, want field budget value a_million", cfgErr)
	}
	if !strings.Contains(err.Error(), "fifty_pounds_per_day") {
		t.Errorf("error %q should list the allowed names", err)
	}
}

func TestParseIsExactMatch(t *testing.T) {
	for _, s := range []string{"Sunny", " mon", "MON", "an hour", ""} {
		if _, err := ParseDayOfWeek(s); err == nil {
			t.Errorf("ParseDayOfWeek(%q) succeeded, want error", s)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, v := range TimeAvailableValues() {
		b, err := v.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", v, err)
		}
		var got TimeAvailable
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", b, err)
		}
		if got != v {
			t.Errorf("round trip %v = %v", v, got)
		}
	}
	for _, v := range WeatherValues() {
		b, _ := v.MarshalText()
		if string(b) != v.String() {
			t.Errorf("MarshalText(%v) = %s, want %s", v, b, v.String())
		}
	}
}

func TestZeroValueInvalid(t *testing.T) {
	if TimeAvailable(0).Valid() || Suitability(0).Valid() || Weather(0).Valid() || Month(0).Valid() {
		t.Error("zero enum values must not be valid")
	}
	if _, err := Suitability(0).MarshalText(); err == nil {
		t.Error("MarshalText of zero suitability should fail")
	}
	if got := Suitability(0).String(); got != "suitability(0)" {
		t.Errorf("String() = %q, want suitability(0)", got)
	}
}

func TestOrdering(t *testing.T) {
	if !AnHour.Before(TwoHours) || !OneWeekPlus.After(FourDays) {
		t.Error("TimeAvailable ordering broken")
	}
	if !Evening.AtMost(Evening) || !Evening.AtLeast(Evening) {
		t.Error("AtMost/AtLeast should be inclusive")
	}
	if !Yay.Outranks(Yeah) || !Yeah.Outranks(IGuessICouldDo) || !IGuessICouldDo.Outranks(No) {
		t.Error("Suitability ordering broken")
	}
	if No.Outranks(No) {
		t.Error("a tier must not outrank itself")
	}
	if !ProperlyInjured.AtLeast(ReallyTired) || PrettyTiredOrNigglingInjury.AtLeast(ReallyTired) {
		t.Error("TiredOrInjuredness ordering broken")
	}
	if !Mar.Between(Mar, Oct) || !Oct.Between(Mar, Oct) || Nov.Between(Mar, Oct) {
		t.Error("Month.Between should be inclusive")
	}
}

func TestDayFromWeekday(t *testing.T) {
	tests := []struct {
		in   time.Weekday
		want DayOfWeek
	}{
		{time.Monday, Mon},
		{time.Wednesday, Wed},
		{time.Saturday, Sat},
		{time.Sunday, Sun},
	}
	for _, tt := range tests {
		if got := DayFromWeekday(tt.in); got != tt.want {
			t.Errorf("DayFromWeekday(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEnumsListing(t *testing.T) {
	listing := Enums()
	if len(listing) != 6 {
		t.Fatalf("Enums() returned %d types, want 6", len(listing))
	}
	if listing[0].Kind != "TimeAvailable" || listing[0].Names[0] != "an_hour" {
		t.Errorf("Enums()[0] = %+v", listing[0])
	}
	listing[0].Names[0] = "changed"
	if Enums()[0].Names[0] != "an_hour" {
		t.Error("Enums() must return copies")
	}
}
