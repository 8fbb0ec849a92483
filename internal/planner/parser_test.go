package planner

import (
	"reflect"
	"testing"
)

func TestParsePlanRestDay(t *testing.T) {
	raw := "# Monday\n# Rest\nno activity\n"

	plan := ParsePlan(raw)
	entry := plan["Monday"]
	if entry.Kind != DayRest {
		t.Fatalf("Expected rest day, got %s", entry.Kind)
	}
	if entry.Rest != "no activity" {
		t.Errorf("Expected rest text 'no activity', got '%s'", entry.Rest)
	}
}

func TestParsePlanActivity(t *testing.T) {
	raw := `# Saturday
# Morning Hike
Duration: 90 minutes
Equipment:
* Yoga mat
* Resistance band
`

	plan := ParsePlan(raw)
	entry := plan["Saturday"]
	if entry.Kind != DayActivity {
		t.Fatalf("Expected activity, got %s", entry.Kind)
	}
	if entry.Activity.Name != "Morning Hike" {
		t.Errorf("Expected name 'Morning Hike', got '%s'", entry.Activity.Name)
	}
	if entry.Activity.Duration != 90 {
		t.Errorf("Expected duration 90, got %d", entry.Activity.Duration)
	}
	wantEquipment := []string{"Yoga mat", "Resistance band"}
	if !reflect.DeepEqual(entry.Activity.Equipment, wantEquipment) {
		t.Errorf("Expected equipment %v, got %v", wantEquipment, entry.Activity.Equipment)
	}
}

func TestParsePlanWorkout(t *testing.T) {
	raw := `# Tuesday
# Upper Body Strength
Duration: 45 minutes
* Push-ups
10 reps x 3
> Break: 30 seconds
* Plank
60 seconds x 3
> Break: 45 seconds
`

	plan := ParsePlan(raw)
	entry := plan["Tuesday"]
	if entry.Kind != DayWorkout {
		t.Fatalf("Expected workout, got %s", entry.Kind)
	}
	if entry.Workout.Name != "Upper Body Strength" {
		t.Errorf("Expected name 'Upper Body Strength', got '%s'", entry.Workout.Name)
	}
	if entry.Workout.Time != 45 {
		t.Errorf("Expected time 45, got %d", entry.Workout.Time)
	}
	if len(entry.Workout.Activities) != 2 {
		t.Fatalf("Expected 2 exercises, got %d", len(entry.Workout.Activities))
	}

	first := entry.Workout.Activities[0]
	if first.Name != "Push-ups" {
		t.Errorf("Expected exercise name 'Push-ups', got '%s'", first.Name)
	}
	if first.Duration != 10 || first.DurationUnit != "reps" {
		t.Errorf("Expected duration 10 reps, got %d %s", first.Duration, first.DurationUnit)
	}
	if first.Break != 30 {
		t.Errorf("Expected break 30, got %d", first.Break)
	}
	if first.Intensity != "medium" {
		t.Errorf("Expected default intensity 'medium', got '%s'", first.Intensity)
	}
	if len(first.MuscleGroups) != 0 || len(first.Equipment) != 0 || first.Description != "" {
		t.Errorf("Expected empty per-exercise details, got %+v", first)
	}

	second := entry.Workout.Activities[1]
	if second.Duration != 60 || second.DurationUnit != "seconds" || second.Break != 45 {
		t.Errorf("Unexpected second exercise: %+v", second)
	}
}

func TestParsePlanBackfillsMissingDays(t *testing.T) {
	raw := "# Wednesday\n# Core Blast\nDuration: 30 minutes\n* Sit-ups\n20 reps x 3\n"

	plan := ParsePlan(raw)
	if len(plan) != 7 {
		t.Fatalf("Expected exactly 7 days, got %d", len(plan))
	}
	for _, day := range Weekdays {
		entry, ok := plan[day]
		if !ok {
			t.Fatalf("Missing weekday %s", day)
		}
		if day == "Wednesday" {
			if entry.Kind != DayWorkout {
				t.Errorf("Expected Wednesday workout, got %s", entry.Kind)
			}
			continue
		}
		if entry.Kind != DayRest || entry.Rest != "no activity" {
			t.Errorf("Expected %s backfilled as rest day, got %+v", day, entry)
		}
	}
}

func TestParsePlanFullWeek(t *testing.T) {
	raw := `# Monday
# Rest
no activity
# Tuesday
# Upper Body
Duration: 45 minutes
* Push-ups
10 reps x 3
> Break: 30 seconds
# Wednesday
no activity
# Thursday
# Swim Session
Duration: 60 minutes
Equipment:
* Goggles
* Swim cap
# Friday
# Leg Day
Duration: 50 minutes
* Squats
12 reps x 4
> Break: 60 seconds
* Walking Lunges
20 steps x 2
# Saturday
No Activity
# Sunday
no activity
`

	plan := ParsePlan(raw)

	wantKinds := map[string]DayKind{
		"Monday":    DayRest,
		"Tuesday":   DayWorkout,
		"Wednesday": DayRest,
		"Thursday":  DayActivity,
		"Friday":    DayWorkout,
		"Saturday":  DayRest, // case-insensitive "no activity" match
		"Sunday":    DayRest,
	}
	for day, want := range wantKinds {
		if plan[day].Kind != want {
			t.Errorf("Expected %s to be %s, got %s", day, want, plan[day].Kind)
		}
	}

	lunges := plan["Friday"].Workout.Activities[1]
	if lunges.Duration != 20 || lunges.DurationUnit != "steps" || lunges.Break != 0 {
		t.Errorf("Unexpected lunges exercise: %+v", lunges)
	}
}

func TestParsePlanIdempotent(t *testing.T) {
	raw := "# Monday\n# Upper Body\nDuration: 40 minutes\n* Push-ups\n10 reps x 3\n"

	first := ParsePlan(raw)
	second := ParsePlan(raw)
	if !reflect.DeepEqual(first, second) {
		t.Error("Parsing the same markdown twice must yield structurally equal plans")
	}
}

func TestParsePlanMalformedInputDefaults(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"Empty", ""},
		{"NoHeadings", "just some text without any structure"},
		{"MissingTitle", "# Monday\nDuration: 30 minutes\nEquipment:\n* Mat\n"},
		{"MissingDuration", "# Monday\n# Stretching\nEquipment:\n* Mat\n"},
		{"GarbageExercise", "# Monday\n# Chaos\n* \n* x x x\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := ParsePlan(tc.raw) // must not panic
			if len(plan) != 7 {
				t.Errorf("Expected 7 days, got %d", len(plan))
			}
		})
	}

	plan := ParsePlan("# Monday\nDuration: 30 minutes\nEquipment:\n* Mat\n")
	if plan["Monday"].Activity.Name != "Unknown Activity" {
		t.Errorf("Expected title fallback, got '%s'", plan["Monday"].Activity.Name)
	}

	plan = ParsePlan("# Monday\n# Stretching\nEquipment:\n* Mat\n")
	if plan["Monday"].Activity.Duration != 0 {
		t.Errorf("Expected duration fallback 0, got %d", plan["Monday"].Activity.Duration)
	}

	plan = ParsePlan("# Monday\nDuration: 30 minutes\n* Mystery move\n")
	if plan["Monday"].Workout.Name != "Unknown Workout" {
		t.Errorf("Expected workout title fallback, got '%s'", plan["Monday"].Workout.Name)
	}
}
