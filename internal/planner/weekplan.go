package planner

import (
	"encoding/json"
	"fmt"
)

// Weekdays are the canonical keys of a WeeklyPlan, in display order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayKind discriminates the three shapes a day can take.
type DayKind string

const (
	DayRest     DayKind = "rest"
	DayActivity DayKind = "activity"
	DayWorkout  DayKind = "workout"
)

// Exercise is one exercise inside a workout. DurationUnit records whether
// Duration counts reps, steps, seconds or minutes; the markdown format
// collapses these into one number, so the unit is kept alongside it.
type Exercise struct {
	Name         string   `json:"name"`
	Duration     int      `json:"duration"`
	DurationUnit string   `json:"durationUnit,omitempty"`
	Break        int      `json:"break"`
	Intensity    string   `json:"intensity"`
	Description  string   `json:"description"`
	MuscleGroups []string `json:"muscleGroups"`
	Equipment    []string `json:"equipment"`
}

// Activity is a single-activity day (a hike, a swim session).
type Activity struct {
	Name      string   `json:"name"`
	Duration  int      `json:"duration"`
	Equipment []string `json:"equipment"`
}

// Workout is a multi-exercise day.
type Workout struct {
	Name       string     `json:"name"`
	Time       int        `json:"time"`
	Activities []Exercise `json:"activities"`
}

// DayEntry is one day of the weekly plan: a rest-day string, a single
// Activity, or a Workout. On the wire it serializes to exactly one of the
// three shapes, matching what the plan renderer and email export consume.
type DayEntry struct {
	Kind     DayKind
	Rest     string
	Activity *Activity
	Workout  *Workout
}

// RestDay builds a rest-day entry with the given descriptive text.
func RestDay(text string) DayEntry {
	return DayEntry{Kind: DayRest, Rest: text}
}

// ActivityDay builds a single-activity entry.
func ActivityDay(a *Activity) DayEntry {
	return DayEntry{Kind: DayActivity, Activity: a}
}

// WorkoutDay builds a multi-exercise entry.
func WorkoutDay(w *Workout) DayEntry {
	return DayEntry{Kind: DayWorkout, Workout: w}
}

func (e DayEntry) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case DayActivity:
		return json.Marshal(e.Activity)
	case DayWorkout:
		return json.Marshal(e.Workout)
	default:
		return json.Marshal(e.Rest)
	}
}

// UnmarshalJSON discriminates on shape: a string is a rest day, an object
// with an "activities" key is a workout, anything else is an activity.
func (e *DayEntry) UnmarshalJSON(data []byte) error {
	var rest string
	if err := json.Unmarshal(data, &rest); err == nil {
		*e = RestDay(rest)
		return nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("day entry is neither a string nor an object: %w", err)
	}

	if _, ok := probe["activities"]; ok {
		var w Workout
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		*e = WorkoutDay(&w)
		return nil
	}

	var a Activity
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*e = ActivityDay(&a)
	return nil
}

// WeeklyPlan maps each of the 7 canonical weekday names to its entry. Every
// constructed plan has exactly the 7 keys; missing days are rest days.
type WeeklyPlan map[string]DayEntry

// NewRestWeek returns a plan with every day set to the default rest entry.
func NewRestWeek() WeeklyPlan {
	plan := make(WeeklyPlan, len(Weekdays))
	for _, day := range Weekdays {
		plan[day] = RestDay(restDayText)
	}
	return plan
}
