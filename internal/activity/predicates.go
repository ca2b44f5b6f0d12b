package activity

// Shared conditions. Rules compose these instead of re-deriving thresholds.

// coldAndWet is true for heavy rain, or for showers outside March–October.
func coldAndWet(f Forecast, m Month) bool {
	return f.SunAndRain == HeavyRain ||
		(f.SunAndRain == OvercastWithShowers && !m.Between(Mar, Oct))
}

// eveningBrightAndFairlyDry is true for sunny or sunny-with-showers skies
// between April and September.
func eveningBrightAndFairlyDry(f Forecast, m Month) bool {
	return (f.SunAndRain == SunWithShowers || f.SunAndRain == Sunny) &&
		m.Between(Apr, Sep)
}

// eveningOrAllDay matches exactly those two tiers, not "at least evening".
func eveningOrAllDay(in Input) bool {
	return in.TimeAvailable == Evening || in.TimeAvailable == AllDay
}

// shortSlot is an hour or two hours.
func shortSlot(in Input) bool {
	return in.TimeAvailable == AnHour || in.TimeAvailable == TwoHours
}

func outdoorSeason(m Month) bool {
	return m.Between(Mar, Oct)
}

func weak(t TiredOrInjuredness) bool {
	return t.AtLeast(ReallyTired)
}

func canAffordHotelOneNight(in Input) bool {
	return in.Budget.AtLeast(OneHundredPoundsPerDay)
}

func canAffordHotelEveryNight(in Input) bool {
	return in.Budget.AtLeast(OneHundredFiftyPoundsPerDay)
}

func canAffordCheapGuidedHoliday(in Input) bool {
	return in.Budget.AtLeast(OneHundredFiftyPoundsPerDay)
}

func canAffordExpensiveGuidedHoliday(in Input) bool {
	return in.Budget.AtLeast(TwoHundredFiftyPoundsPerDay)
}

// localForecast is the forecast used by activities done around home.
func localForecast(in Input) Forecast {
	return in.Forecast(Bristol)
}

var mountainVenues = []Location{Llanberis, Keswick, FortWilliam, Aviemore}

var windsurfSpots = []Location{Poole, Weymouth, Weston, Llandegfedd}

// sunnyAt returns the given locations with a sunny forecast, in order.
func sunnyAt(in Input, locs []Location) []Location {
	var out []Location
	for _, loc := range locs {
		if in.Forecast(loc).SunAndRain == Sunny {
			out = append(out, loc)
		}
	}
	return out
}

// coldAndWetEverywhere is true when every location is cold and wet.
func coldAndWetEverywhere(in Input, locs []Location) bool {
	for _, loc := range locs {
		if !coldAndWet(in.Forecast(loc), in.Month) {
			return false
		}
	}
	return true
}

func planingAt(in Input, locs []Location) []Location {
	var out []Location
	for _, loc := range locs {
		if in.Forecast(loc).Wind == Planing {
			out = append(out, loc)
		}
	}
	return out
}
