package activity

import "strings"

// defaultRules is the rule table in registration order. Ranking ties keep
// this order, so new rules go where they should sort among equals.
func defaultRules() []Rule {
	return []Rule{
		{"swim_indoors", swimIndoors},
		{"swim_in_sea_or_marine_lake", swimInSeaOrMarineLake},
		{"indoor_bouldering_or_autobelay", indoorBoulderingOrAutobelay},
		{"indoor_partnered_climbing", indoorPartneredClimbing},
		{"climb_outside_with_a_partner", climbOutsideWithAPartner},
		{"climb_outside_on_own_bouldering_or_self_belay", climbOutsideOnOwn},
		{"slackline", slackline},
		{"kayak_holiday", kayakHoliday},
		{"kayak_with_kayak_club", always},
		{"sail_at_axbridge", dryAt(Axbridge)},
		{"sail_in_southern_england", dryAt(Weymouth)},
		{"windsurf_at_axbridge", dryAt(Axbridge)},
		{"windsurf_uk", windsurfUK},
		{"windsurf_abroad", windsurfAbroad},
		{"surf_uk", dryAt(Newquay)},
		{"skiing", skiing},
		{"road_bike_locally", roadBikeLocally},
		{"road_bike_further_afield", roadBikeFurtherAfield},
		{"cycle_touring", cycleTouring},
		{"orienteering_virtual_course", orienteeringVirtualCourse},
		{"orienteering_event", always},
		{"ten_k_run_on_own", tenKRunOnOwn},
		{"long_run_walk_on_own", longRunWalkOnOwn},
		{"run_with_local_running_club", runWithLocalRunningClub},
		{"organise_micro_tach", organiseMicroTach},
		{"study_first_aid_or_ropework", always},
		{"read_a_book_or_watch_tv", readABookOrWatchTV},
		{"practice_guitar", always},
		{"learn_to_cook", always},
		{"walk_with_a_meetup_group", atLeast(AllDay)},
		{"surf_with_a_meetup_group", atLeast(AllDay)},
		{"nav_practice_in_brecons", navPracticeInBrecons},
		{"big_run_or_walk_in_actual_mountains", bigRunOrWalkInMountains},
		{"scrambling_in_the_mountains", scramblingInTheMountains},
		{"bristol_con_vol", bristolConVol},
		{"con_vol_holiday", conVolHoliday},
		{"yoga_or_fitness_class", always},
		{"home_fitness_workout", always},
		{"short_local_walk", always},
		{"some_random_local_attraction", someRandomLocalAttraction},
		{"visit_family", always},
	}
}

const (
	noteWeak          = "i am weak"
	noteTired         = "tired"
	noteNotEnough     = "not enough time"
	noteColdAndWet    = "cold and wet"
	noteHeavyRain     = "heavy rain"
	noteDarkEvening   = "evening isn't bright and dry"
	noteCantAfford    = "can't afford it"
	noteLessons       = "Get lessons?"
	noteAttractions   = "E.g.: hire a mountain bike, go-karting, cinema, trampolining, museum, theatre, musical performance, astronomy talk, science talk, poetry reading, read a book in a cafe, board game group"
	noteSkiDiscipline = "downhill, ski touring, cross country"
)

func always(Input) Result {
	return result(IGuessICouldDo)
}

// atLeast rules out anything shorter than shortest.
func atLeast(shortest TimeAvailable) Predicate {
	return func(in Input) Result {
		if in.TimeAvailable.Before(shortest) {
			return result(No)
		}
		return result(IGuessICouldDo)
	}
}

// dryAt rules out heavy rain at loc.
func dryAt(loc Location) Predicate {
	return func(in Input) Result {
		if in.Forecast(loc).SunAndRain == HeavyRain {
			return result(No, noteHeavyRain)
		}
		return result(IGuessICouldDo)
	}
}

func swimIndoors(in Input) Result {
	if coldAndWet(localForecast(in), in.Month) && in.TimeAvailable.Before(AllWeekend) {
		return result(Yeah, "It's cold and damp and not much time", noteLessons)
	}
	if in.TimeAvailable == AnHour {
		return result(Yeah, "Not much time for other stuff", noteLessons)
	}
	return result(IGuessICouldDo, noteLessons)
}

func swimInSeaOrMarineLake(in Input) Result {
	if weak(in.Arms) {
		return result(No, noteWeak)
	}
	if coldAndWet(localForecast(in), in.Month) {
		return result(No, "It's cold and damp")
	}
	if in.TimeAvailable.AtMost(AllDay) {
		return result(Yeah)
	}
	return result(No, "too long for a swim")
}

func indoorBoulderingOrAutobelay(in Input) Result {
	if weak(in.Arms) {
		return result(No, noteWeak)
	}
	if in.TimeAvailable.Before(TwoHours) {
		return result(No, noteNotEnough)
	}
	if coldAndWet(localForecast(in), in.Month) && in.TimeAvailable.Before(AllWeekend) {
		return result(Yeah)
	}
	return result(IGuessICouldDo)
}

func indoorPartneredClimbing(in Input) Result {
	if weak(in.Arms) {
		return result(No, noteWeak)
	}
	if (in.HowFarAhead == ThisWeek || in.HowFarAhead == NextWeek) && eveningOrAllDay(in) {
		return result(Yeah, "Could try to find a climbing partner")
	}
	if eveningOrAllDay(in) && !eveningBrightAndFairlyDry(localForecast(in), in.Month) {
		return result(Yeah)
	}
	return result(IGuessICouldDo)
}

func climbOutsideWithAPartner(in Input) Result {
	if in.Arms == ProperlyInjured {
		return result(No, noteWeak)
	}
	if shortSlot(in) {
		return result(No, "Not enough time")
	}
	local := localForecast(in)
	if eveningBrightAndFairlyDry(local, in.Month) &&
		(in.Day == Wed || in.HowFarAhead == ThisWeek) &&
		eveningOrAllDay(in) {
		return result(Yeah)
	}
	if coldAndWet(local, in.Month) {
		return result(No, noteColdAndWet)
	}
	return result(IGuessICouldDo)
}

func climbOutsideOnOwn(in Input) Result {
	if weak(in.Arms) {
		return result(No, noteWeak)
	}
	local := localForecast(in)
	if coldAndWet(local, in.Month) {
		return result(No, noteColdAndWet)
	}
	if in.TimeAvailable == Evening && !eveningBrightAndFairlyDry(local, in.Month) {
		return result(No, noteDarkEvening)
	}
	if shortSlot(in) {
		return result(No, noteNotEnough)
	}
	if in.TimeAvailable.AtMost(FourHours) {
		return result(Yeah)
	}
	return result(IGuessICouldDo)
}

func slackline(in Input) Result {
	local := localForecast(in)
	if coldAndWet(local, in.Month) {
		return result(No, noteColdAndWet)
	}
	if in.TimeAvailable == Evening && !eveningBrightAndFairlyDry(local, in.Month) {
		return result(No, noteDarkEvening)
	}
	if in.TimeAvailable == AnHour {
		return result(No, noteNotEnough)
	}
	switch in.TimeAvailable {
	case TwoHours, Evening, AllDay:
		return result(Yeah)
	}
	return result(IGuessICouldDo)
}

func kayakHoliday(in Input) Result {
	if in.TimeAvailable.Before(AllWeekend) {
		return result(No, "Time available")
	}
	if !outdoorSeason(in.Month) {
		return result(No, "Time of year")
	}
	if !canAffordHotelEveryNight(in) {
		return result(No, noteCantAfford)
	}
	return result(IGuessICouldDo)
}

func windsurfUK(in Input) Result {
	if spots := planingAt(in, windsurfSpots); len(spots) > 0 {
		return result(Yeah, "planing at "+joinLocations(spots))
	}
	return result(IGuessICouldDo)
}

func windsurfAbroad(in Input) Result {
	if in.TimeAvailable.Before(OneWeekPlus) {
		return result(No, noteNotEnough)
	}
	if !canAffordCheapGuidedHoliday(in) {
		return result(No, noteCantAfford)
	}
	return result(IGuessICouldDo)
}

func skiing(in Input) Result {
	if in.TimeAvailable.Before(OneWeekPlus) {
		return result(No, noteNotEnough)
	}
	if !canAffordCheapGuidedHoliday(in) {
		return result(No, noteCantAfford)
	}
	if canAffordExpensiveGuidedHoliday(in) {
		return result(IGuessICouldDo, noteSkiDiscipline, "could go on a guided trip")
	}
	return result(IGuessICouldDo, noteSkiDiscipline)
}

func roadBikeLocally(in Input) Result {
	if weak(in.Legs) {
		return result(No, noteTired)
	}
	local := localForecast(in)
	if !coldAndWet(local, in.Month) {
		return result(Yeah)
	}
	if local.SunAndRain == HeavyRain {
		return result(No, noteHeavyRain)
	}
	return result(IGuessICouldDo)
}

func roadBikeFurtherAfield(in Input) Result {
	if weak(in.Legs) {
		return result(No, noteTired)
	}
	if in.TimeAvailable.Before(AllDay) {
		return result(No, noteNotEnough)
	}
	return result(IGuessICouldDo)
}

func cycleTouring(in Input) Result {
	if coldAndWet(localForecast(in), in.Month) {
		return result(No, noteColdAndWet)
	}
	if in.TimeAvailable.Before(AllWeekend) {
		return result(No, noteNotEnough)
	}
	if !canAffordHotelEveryNight(in) {
		return result(No, noteCantAfford)
	}
	return result(IGuessICouldDo)
}

func orienteeringVirtualCourse(in Input) Result {
	if weak(in.Legs) {
		return result(No, noteTired)
	}
	if in.TimeAvailable.After(AllDay) || in.TimeAvailable.Before(TwoHours) {
		return result(No, "unsuitable amount of time")
	}
	return result(IGuessICouldDo)
}

func tenKRunOnOwn(in Input) Result {
	if weak(in.Legs) {
		return result(No, noteTired)
	}
	if !coldAndWet(localForecast(in), in.Month) {
		return result(Yeah)
	}
	return result(IGuessICouldDo)
}

func longRunWalkOnOwn(in Input) Result {
	if in.TimeAvailable.Before(FourHours) {
		return result(No, noteNotEnough)
	}
	if in.Legs != NoProblems {
		return result(No, "too tired or injured")
	}
	if !coldAndWet(localForecast(in), in.Month) {
		return result(Yeah)
	}
	return result(IGuessICouldDo)
}

func runWithLocalRunningClub(in Input) Result {
	if weak(in.Legs) {
		return result(No, noteTired)
	}
	if !eveningOrAllDay(in) {
		return result(No, noteNotEnough)
	}
	switch in.Day {
	case Sat:
		return result(Yeah, "parkrun")
	case Tue:
		return result(Yeah, "bok or TACH")
	case Thu:
		return result(Yeah, "TACH")
	case Wed, Sun:
		return result(Yeah, "LARG")
	}
	return result(No, "Wrong day")
}

func organiseMicroTach(in Input) Result {
	if in.TimeAvailable.Before(Evening) {
		return result(No, "time available")
	}
	if in.HowFarAhead == Today {
		return result(No, "can't organise run for today")
	}
	return result(IGuessICouldDo)
}

func readABookOrWatchTV(in Input) Result {
	if in.TimeAvailable.After(TwoHours) {
		return result(No)
	}
	return result(IGuessICouldDo)
}

func navPracticeInBrecons(in Input) Result {
	if weak(in.Legs) {
		return result(No, noteTired)
	}
	if in.Forecast(Brecon).SunAndRain == HeavyRain {
		return result(IGuessICouldDo, "heavy rain in the Brecons, good practice in poor visibility")
	}
	return result(IGuessICouldDo)
}

func bigRunOrWalkInMountains(in Input) Result {
	if in.TimeAvailable.AtMost(AllWeekend) {
		return result(No, noteNotEnough)
	}
	if sunny := sunnyAt(in, mountainVenues); len(sunny) > 0 {
		return result(Yeah, "sunny at "+joinLocations(sunny))
	}
	return result(IGuessICouldDo)
}

func scramblingInTheMountains(in Input) Result {
	if in.TimeAvailable.AtMost(AllWeekend) {
		return result(No, noteNotEnough)
	}
	if coldAndWetEverywhere(in, mountainVenues) {
		return result(No, noteColdAndWet)
	}
	if sunny := sunnyAt(in, mountainVenues); len(sunny) > 0 {
		return result(Yeah, "sunny at "+joinLocations(sunny))
	}
	return result(IGuessICouldDo)
}

func bristolConVol(in Input) Result {
	if in.TimeAvailable.Before(AllDay) {
		return result(No, noteNotEnough)
	}
	return result(IGuessICouldDo)
}

func conVolHoliday(in Input) Result {
	if in.TimeAvailable.AtMost(AllWeekend) {
		return result(No, noteNotEnough)
	}
	if !canAffordHotelOneNight(in) {
		return result(No, noteCantAfford)
	}
	return result(IGuessICouldDo)
}

func someRandomLocalAttraction(Input) Result {
	return result(IGuessICouldDo, noteAttractions)
}

func joinLocations(locs []Location) string {
	names := make([]string, len(locs))
	for i, l := range locs {
		names[i] = DisplayName(string(l))
	}
	return strings.Join(names, ", ")
}
