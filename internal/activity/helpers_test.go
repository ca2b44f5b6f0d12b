package activity

import "testing"

// uniformForecasts gives every location the same forecast.
func uniformForecasts(f Forecast) WebData {
	w := make(WebData, len(Locations))
	for _, loc := range Locations {
		w[loc] = f
	}
	return w
}

func sunnyForecast() Forecast {
	return Forecast{
		Wind:        BobbingAbout,
		Surf:        SmallSurf,
		SunAndRain:  Sunny,
		Temperature: FifteenToNineteen,
		Snowiness:   NoSnow,
	}
}

func withWeather(f Forecast, w Weather) Forecast {
	f.SunAndRain = w
	return f
}

// baseInput is a valid input for a free summer Saturday with no problems.
func baseInput() Input {
	return Input{
		TimeAvailable: AllDay,
		HowFarAhead:   ThisWeek,
		Day:           Sat,
		Month:         Jun,
		Budget:        OneHundredPoundsPerDay,
		Forecasts:     uniformForecasts(sunnyForecast()),
		Legs:          NoProblems,
		Arms:          NoProblems,
	}
}

func ruleByName(t testing.TB, name string) Rule {
	t.Helper()
	for _, r := range DefaultRegistry().Rules() {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no rule named %q", name)
	return Rule{}
}
