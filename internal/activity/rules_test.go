package activity

import (
	"reflect"
	"testing"
)

func TestRules(t *testing.T) {
	tests := []struct {
		name      string
		rule      string
		modify    func(*Input)
		want      Suitability
		wantNotes []string
	}{
		{
			name: "all day sunny bouldering",
			rule: "indoor_bouldering_or_autobelay",
			modify: func(in *Input) {
				in.HowFarAhead = Today
				in.Budget = TwoHundredFiftyPoundsPerDay
			},
			want: IGuessICouldDo,
		},
		{
			name:      "bouldering needs two hours",
			rule:      "indoor_bouldering_or_autobelay",
			modify:    func(in *Input) { in.TimeAvailable = AnHour },
			want:      No,
			wantNotes: []string{noteNotEnough},
		},
		{
			name: "bouldering when cold and wet",
			rule: "indoor_bouldering_or_autobelay",
			modify: func(in *Input) {
				in.Month = Dec
				in.Forecasts[Bristol] = withWeather(sunnyForecast(), OvercastWithShowers)
			},
			want: Yeah,
		},
		{
			name:      "weak arms rule out sea swimming",
			rule:      "swim_in_sea_or_marine_lake",
			modify:    func(in *Input) { in.Arms = ReallyTired },
			want:      No,
			wantNotes: []string{noteWeak},
		},
		{
			name:      "weak arms rule out bouldering",
			rule:      "indoor_bouldering_or_autobelay",
			modify:    func(in *Input) { in.Arms = ReallyTired },
			want:      No,
			wantNotes: []string{noteWeak},
		},
		{
			name:      "weak arms rule out partnered climbing",
			rule:      "indoor_partnered_climbing",
			modify:    func(in *Input) { in.Arms = ReallyTired },
			want:      No,
			wantNotes: []string{noteWeak},
		},
		{
			name:      "weak arms rule out climbing on own",
			rule:      "climb_outside_on_own_bouldering_or_self_belay",
			modify:    func(in *Input) { in.Arms = ReallyTired },
			want:      No,
			wantNotes: []string{noteWeak},
		},
		{
			name:   "really tired arms can still climb with a partner",
			rule:   "climb_outside_with_a_partner",
			modify: func(in *Input) { in.Arms = ReallyTired },
			want:   Yeah,
		},
		{
			name:      "injured arms rule out climbing with a partner",
			rule:      "climb_outside_with_a_partner",
			modify:    func(in *Input) { in.Arms = ProperlyInjured },
			want:      No,
			wantNotes: []string{noteWeak},
		},
		{
			name:      "saturday parkrun",
			rule:      "run_with_local_running_club",
			want:      Yeah,
			wantNotes: []string{"parkrun"},
		},
		{
			name: "tuesday evening club run",
			rule: "run_with_local_running_club",
			modify: func(in *Input) {
				in.Day = Tue
				in.TimeAvailable = Evening
			},
			want:      Yeah,
			wantNotes: []string{"bok or TACH"},
		},
		{
			name:      "no club on monday",
			rule:      "run_with_local_running_club",
			modify:    func(in *Input) { in.Day = Mon },
			want:      No,
			wantNotes: []string{"Wrong day"},
		},
		{
			name:      "club run needs an evening",
			rule:      "run_with_local_running_club",
			modify:    func(in *Input) { in.TimeAvailable = FourHours },
			want:      No,
			wantNotes: []string{noteNotEnough},
		},
		{
			name:      "indoor swim with an hour",
			rule:      "swim_indoors",
			modify:    func(in *Input) { in.TimeAvailable = AnHour },
			want:      Yeah,
			wantNotes: []string{"Not much time for other stuff", noteLessons},
		},
		{
			name: "indoor swim when cold and damp",
			rule: "swim_indoors",
			modify: func(in *Input) {
				in.Month = Jan
				in.Forecasts[Bristol] = withWeather(sunnyForecast(), HeavyRain)
			},
			want:      Yeah,
			wantNotes: []string{"It's cold and damp and not much time", noteLessons},
		},
		{
			name: "dark evening rules out slackline",
			rule: "slackline",
			modify: func(in *Input) {
				in.Month = Dec
				in.TimeAvailable = Evening
			},
			want:      No,
			wantNotes: []string{noteDarkEvening},
		},
		{
			name: "kayak holiday out of season",
			rule: "kayak_holiday",
			modify: func(in *Input) {
				in.TimeAvailable = AllWeekend
				in.Budget = OneHundredFiftyPoundsPerDay
				in.Month = Dec
			},
			want:      No,
			wantNotes: []string{"Time of year"},
		},
		{
			name:      "kayak holiday needs hotel budget",
			rule:      "kayak_holiday",
			modify:    func(in *Input) { in.TimeAvailable = AllWeekend },
			want:      No,
			wantNotes: []string{noteCantAfford},
		},
		{
			name: "planing wind at weymouth",
			rule: "windsurf_uk",
			modify: func(in *Input) {
				f := sunnyForecast()
				f.Wind = Planing
				in.Forecasts[Weymouth] = f
			},
			want:      Yeah,
			wantNotes: []string{"planing at weymouth"},
		},
		{
			name: "windsurf without planing wind",
			rule: "windsurf_uk",
			want: IGuessICouldDo,
		},
		{
			name:      "heavy rain at newquay rules out surfing",
			rule:      "surf_uk",
			modify:    func(in *Input) { in.Forecasts[Newquay] = withWeather(sunnyForecast(), HeavyRain) },
			want:      No,
			wantNotes: []string{noteHeavyRain},
		},
		{
			name: "skiing on a big budget",
			rule: "skiing",
			modify: func(in *Input) {
				in.TimeAvailable = OneWeekPlus
				in.Budget = TwoHundredFiftyPoundsPerDay
			},
			want:      IGuessICouldDo,
			wantNotes: []string{noteSkiDiscipline, "could go on a guided trip"},
		},
		{
			name:      "skiing unaffordable",
			rule:      "skiing",
			modify:    func(in *Input) { in.TimeAvailable = OneWeekPlus },
			want:      No,
			wantNotes: []string{noteCantAfford},
		},
		{
			name:      "mountains need more than a weekend",
			rule:      "big_run_or_walk_in_actual_mountains",
			want:      No,
			wantNotes: []string{noteNotEnough},
		},
		{
			name:      "sunny mountains",
			rule:      "big_run_or_walk_in_actual_mountains",
			modify:    func(in *Input) { in.TimeAvailable = FourDays },
			want:      Yeah,
			wantNotes: []string{"sunny at llanberis, keswick, fort william, aviemore"},
		},
		{
			name: "scrambling when every venue is wet",
			rule: "scrambling_in_the_mountains",
			modify: func(in *Input) {
				in.TimeAvailable = FourDays
				in.Forecasts = uniformForecasts(withWeather(sunnyForecast(), HeavyRain))
			},
			want:      No,
			wantNotes: []string{noteColdAndWet},
		},
		{
			name: "micro tach cannot be organised for today",
			rule: "organise_micro_tach",
			modify: func(in *Input) {
				in.HowFarAhead = Today
			},
			want:      No,
			wantNotes: []string{"can't organise run for today"},
		},
		{
			name: "too much time for the sofa",
			rule: "read_a_book_or_watch_tv",
			want: No,
		},
		{
			name:      "orienteering needs a sensible slot",
			rule:      "orienteering_virtual_course",
			modify:    func(in *Input) { in.TimeAvailable = AllWeekend },
			want:      No,
			wantNotes: []string{"unsuitable amount of time"},
		},
		{
			name:      "long run with tired legs",
			rule:      "long_run_walk_on_own",
			modify:    func(in *Input) { in.Legs = PrettyTiredOrNigglingInjury },
			want:      No,
			wantNotes: []string{"too tired or injured"},
		},
		{
			name:      "heavy rain in the brecons",
			rule:      "nav_practice_in_brecons",
			modify:    func(in *Input) { in.Forecasts[Brecon] = withWeather(sunnyForecast(), HeavyRain) },
			want:      IGuessICouldDo,
			wantNotes: []string{"heavy rain in the Brecons, good practice in poor visibility"},
		},
		{
			name:      "con vol holiday on a tight budget",
			rule:      "con_vol_holiday",
			modify:    func(in *Input) { in.TimeAvailable = OneWeekPlus; in.Budget = FiftyPoundsPerDay },
			want:      No,
			wantNotes: []string{noteCantAfford},
		},
		{
			name:   "meetup walk needs a day",
			rule:   "walk_with_a_meetup_group",
			modify: func(in *Input) { in.TimeAvailable = Evening },
			want:   No,
		},
		{
			name:   "meetup surf needs a day",
			rule:   "surf_with_a_meetup_group",
			modify: func(in *Input) { in.TimeAvailable = Evening },
			want:   No,
		},
		{
			name: "meetup surf with a day",
			rule: "surf_with_a_meetup_group",
			want: IGuessICouldDo,
		},
		{
			name:      "heavy rain at axbridge rules out sailing there",
			rule:      "sail_at_axbridge",
			modify:    func(in *Input) { in.Forecasts[Axbridge] = withWeather(sunnyForecast(), HeavyRain) },
			want:      No,
			wantNotes: []string{noteHeavyRain},
		},
		{
			name:   "heavy rain in bristol does not stop sailing at axbridge",
			rule:   "sail_at_axbridge",
			modify: func(in *Input) { in.Forecasts[Bristol] = withWeather(sunnyForecast(), HeavyRain) },
			want:   IGuessICouldDo,
		},
		{
			name:      "heavy rain at weymouth rules out southern sailing",
			rule:      "sail_in_southern_england",
			modify:    func(in *Input) { in.Forecasts[Weymouth] = withWeather(sunnyForecast(), HeavyRain) },
			want:      No,
			wantNotes: []string{noteHeavyRain},
		},
		{
			name:   "heavy rain in bristol does not stop southern sailing",
			rule:   "sail_in_southern_england",
			modify: func(in *Input) { in.Forecasts[Bristol] = withWeather(sunnyForecast(), HeavyRain) },
			want:   IGuessICouldDo,
		},
		{
			name:      "heavy rain at axbridge rules out windsurfing there",
			rule:      "windsurf_at_axbridge",
			modify:    func(in *Input) { in.Forecasts[Axbridge] = withWeather(sunnyForecast(), HeavyRain) },
			want:      No,
			wantNotes: []string{noteHeavyRain},
		},
		{
			name:   "heavy rain in bristol does not stop windsurfing at axbridge",
			rule:   "windsurf_at_axbridge",
			modify: func(in *Input) { in.Forecasts[Bristol] = withWeather(sunnyForecast(), HeavyRain) },
			want:   IGuessICouldDo,
		},
		{
			name:      "windsurf abroad needs a week",
			rule:      "windsurf_abroad",
			want:      No,
			wantNotes: []string{noteNotEnough},
		},
		{
			name:      "windsurf abroad needs a guided holiday budget",
			rule:      "windsurf_abroad",
			modify:    func(in *Input) { in.TimeAvailable = OneWeekPlus },
			want:      No,
			wantNotes: []string{noteCantAfford},
		},
		{
			name: "windsurf abroad affordable",
			rule: "windsurf_abroad",
			modify: func(in *Input) {
				in.TimeAvailable = OneWeekPlus
				in.Budget = OneHundredFiftyPoundsPerDay
			},
			want: IGuessICouldDo,
		},
		{
			name:      "tired legs rule out local road biking",
			rule:      "road_bike_locally",
			modify:    func(in *Input) { in.Legs = ReallyTired },
			want:      No,
			wantNotes: []string{noteTired},
		},
		{
			name: "local road biking when dry",
			rule: "road_bike_locally",
			want: Yeah,
		},
		{
			name:      "heavy rain rules out local road biking",
			rule:      "road_bike_locally",
			modify:    func(in *Input) { in.Forecasts[Bristol] = withWeather(sunnyForecast(), HeavyRain) },
			want:      No,
			wantNotes: []string{noteHeavyRain},
		},
		{
			name: "local road biking in winter showers",
			rule: "road_bike_locally",
			modify: func(in *Input) {
				in.Month = Dec
				in.Forecasts[Bristol] = withWeather(sunnyForecast(), OvercastWithShowers)
			},
			want: IGuessICouldDo,
		},
		{
			name:      "tired legs rule out road biking further afield",
			rule:      "road_bike_further_afield",
			modify:    func(in *Input) { in.Legs = ReallyTired },
			want:      No,
			wantNotes: []string{noteTired},
		},
		{
			name:      "road biking further afield needs a day",
			rule:      "road_bike_further_afield",
			modify:    func(in *Input) { in.TimeAvailable = FourHours },
			want:      No,
			wantNotes: []string{noteNotEnough},
		},
		{
			name: "road biking further afield with a day",
			rule: "road_bike_further_afield",
			want: IGuessICouldDo,
		},
		{
			name: "cycle touring when cold and wet",
			rule: "cycle_touring",
			modify: func(in *Input) {
				in.TimeAvailable = AllWeekend
				in.Budget = OneHundredFiftyPoundsPerDay
				in.Month = Dec
				in.Forecasts[Bristol] = withWeather(sunnyForecast(), OvercastWithShowers)
			},
			want:      No,
			wantNotes: []string{noteColdAndWet},
		},
		{
			name:      "cycle touring needs a weekend",
			rule:      "cycle_touring",
			want:      No,
			wantNotes: []string{noteNotEnough},
		},
		{
			name:      "cycle touring needs a hotel every night",
			rule:      "cycle_touring",
			modify:    func(in *Input) { in.TimeAvailable = AllWeekend },
			want:      No,
			wantNotes: []string{noteCantAfford},
		},
		{
			name: "cycle touring affordable",
			rule: "cycle_touring",
			modify: func(in *Input) {
				in.TimeAvailable = AllWeekend
				in.Budget = OneHundredFiftyPoundsPerDay
			},
			want: IGuessICouldDo,
		},
		{
			name:      "tired legs rule out a 10k",
			rule:      "ten_k_run_on_own",
			modify:    func(in *Input) { in.Legs = ReallyTired },
			want:      No,
			wantNotes: []string{noteTired},
		},
		{
			name: "10k when dry",
			rule: "ten_k_run_on_own",
			want: Yeah,
		},
		{
			name:   "10k in heavy rain",
			rule:   "ten_k_run_on_own",
			modify: func(in *Input) { in.Forecasts[Bristol] = withWeather(sunnyForecast(), HeavyRain) },
			want:   IGuessICouldDo,
		},
		{
			name:      "con vol needs a day",
			rule:      "bristol_con_vol",
			modify:    func(in *Input) { in.TimeAvailable = Evening },
			want:      No,
			wantNotes: []string{noteNotEnough},
		},
		{
			name: "con vol with a day",
			rule: "bristol_con_vol",
			want: IGuessICouldDo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			if tt.modify != nil {
				tt.modify(&in)
			}
			got := ruleByName(t, tt.rule).Evaluate(in)
			if got.Suitability != tt.want {
				t.Errorf("%s suitability = %v, want %v (notes %q)", tt.rule, got.Suitability, tt.want, got.Notes)
			}
			if len(got.Notes) != 0 || len(tt.wantNotes) != 0 {
				if !reflect.DeepEqual(got.Notes, tt.wantNotes) {
					t.Errorf("%s notes = %q, want %q", tt.rule, got.Notes, tt.wantNotes)
				}
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	if reg.Len() != 41 {
		t.Fatalf("DefaultRegistry().Len() = %d, want 41", reg.Len())
	}
	names := reg.Names()
	if names[0] != "swim_indoors" || names[len(names)-1] != "visit_family" {
		t.Errorf("registration order = %s ... %s", names[0], names[len(names)-1])
	}
}
