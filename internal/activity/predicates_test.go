package activity

import "testing"

func TestColdAndWet(t *testing.T) {
	tests := []struct {
		name    string
		weather Weather
		month   Month
		want    bool
	}{
		{"heavy rain in summer", HeavyRain, Jun, true},
		{"heavy rain in winter", HeavyRain, Dec, true},
		{"showers in december", OvercastWithShowers, Dec, true},
		{"showers in november", OvercastWithShowers, Nov, true},
		{"showers in june", OvercastWithShowers, Jun, false},
		{"showers in march", OvercastWithShowers, Mar, false},
		{"showers in october", OvercastWithShowers, Oct, false},
		{"sun with showers in january", SunWithShowers, Jan, false},
		{"sunny in january", Sunny, Jan, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := withWeather(sunnyForecast(), tt.weather)
			if got := coldAndWet(f, tt.month); got != tt.want {
				t.Errorf("coldAndWet(%v, %v) = %v, want %v", tt.weather, tt.month, got, tt.want)
			}
		})
	}
}

func TestEveningBrightAndFairlyDry(t *testing.T) {
	tests := []struct {
		weather Weather
		month   Month
		want    bool
	}{
		{Sunny, Apr, true},
		{SunWithShowers, Sep, true},
		{Sunny, Mar, false},
		{Sunny, Oct, false},
		{OvercastWithShowers, Jul, false},
		{HeavyRain, Jul, false},
	}

	for _, tt := range tests {
		f := withWeather(sunnyForecast(), tt.weather)
		if got := eveningBrightAndFairlyDry(f, tt.month); got != tt.want {
			t.Errorf("eveningBrightAndFairlyDry(%v, %v) = %v, want %v", tt.weather, tt.month, got, tt.want)
		}
	}
}

func TestBudgetThresholds(t *testing.T) {
	in := baseInput()
	in.Budget = FiftyPoundsPerDay
	if canAffordHotelOneNight(in) {
		t.Error("fifty pounds should not cover a hotel night")
	}
	in.Budget = OneHundredPoundsPerDay
	if !canAffordHotelOneNight(in) || canAffordHotelEveryNight(in) {
		t.Error("one hundred pounds covers one night only")
	}
	in.Budget = OneHundredFiftyPoundsPerDay
	if !canAffordHotelEveryNight(in) || !canAffordCheapGuidedHoliday(in) || canAffordExpensiveGuidedHoliday(in) {
		t.Error("one hundred fifty pounds covers hotels and cheap guided holidays")
	}
	in.Budget = TwoHundredFiftyPoundsPerDay
	if !canAffordExpensiveGuidedHoliday(in) {
		t.Error("two hundred fifty pounds covers an expensive guided holiday")
	}
}

func TestMountainHelpers(t *testing.T) {
	in := baseInput()
	in.Month = Dec
	in.Forecasts = uniformForecasts(withWeather(sunnyForecast(), HeavyRain))
	if !coldAndWetEverywhere(in, mountainVenues) {
		t.Error("coldAndWetEverywhere() = false with heavy rain at every venue")
	}
	in.Forecasts[Keswick] = sunnyForecast()
	if coldAndWetEverywhere(in, mountainVenues) {
		t.Error("coldAndWetEverywhere() = true with sun at keswick")
	}
	got := sunnyAt(in, mountainVenues)
	if len(got) != 1 || got[0] != Keswick {
		t.Errorf("sunnyAt() = %v, want [keswick]", got)
	}
}
