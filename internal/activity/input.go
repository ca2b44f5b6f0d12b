package activity

import "time"

// Args are the raw enum names a caller supplies.
type Args struct {
	TimeAvailable string
	HowFarAhead   string
	Day           string
	Month         string
	Budget        string
	Legs          string
	Arms          string
}

// BuildInput parses args into an Input. For today and tomorrow the day and
// month come from now and args.Day/args.Month are ignored; otherwise both
// must be given.
func BuildInput(args Args, now time.Time, forecasts WebData) (Input, error) {
	var in Input
	var err error

	if in.TimeAvailable, err = ParseTimeAvailable(args.TimeAvailable); err != nil {
		return Input{}, err
	}
	if in.HowFarAhead, err = ParseHowFarPlanningAhead(args.HowFarAhead); err != nil {
		return Input{}, err
	}
	if in.Day, in.Month, err = resolveCalendar(in.HowFarAhead, args.Day, args.Month, now); err != nil {
		return Input{}, err
	}
	if in.Budget, err = ParseBudget(args.Budget); err != nil {
		return Input{}, err
	}
	if in.Legs, err = ParseTiredOrInjuredness("legs", args.Legs); err != nil {
		return Input{}, err
	}
	if in.Arms, err = ParseTiredOrInjuredness("arms", args.Arms); err != nil {
		return Input{}, err
	}

	if err := forecasts.Validate(); err != nil {
		return Input{}, err
	}
	in.Forecasts = forecasts.Clone()
	return in, nil
}

func resolveCalendar(how HowFarPlanningAhead, day, month string, now time.Time) (DayOfWeek, Month, error) {
	switch how {
	case Today:
		return DayFromWeekday(now.Weekday()), Month(now.Month()), nil
	case Tomorrow:
		t := now.AddDate(0, 0, 1)
		return DayFromWeekday(t.Weekday()), Month(t.Month()), nil
	}

	if day == "" {
		return 0, 0, &ConfigError{Field: "day", Reason: "required unless planning for today or tomorrow"}
	}
	if month == "" {
		return 0, 0, &ConfigError{Field: "month", Reason: "required unless planning for today or tomorrow"}
	}
	d, err := ParseDayOfWeek(day)
	if err != nil {
		return 0, 0, err
	}
	m, err := ParseMonth(month)
	if err != nil {
		return 0, 0, err
	}
	return d, m, nil
}
