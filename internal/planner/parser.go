package planner

import (
	"regexp"
	"strconv"
	"strings"
)

// The LLM returns the weekly plan as markdown with a fixed shape:
//
//	# <Weekday>
//	# <Title>
//	Duration: <N> minutes
//	Equipment:            (single-activity day)
//	* <item>
//	...or, without an Equipment marker, one bullet block per exercise:
//	* <Exercise name>
//	  <N> reps|steps|seconds|minutes ... x <M>
//	  > Break: <N> seconds
//
// Parsing is best-effort: unmatched patterns fall back to defaults and the
// parser never fails a whole plan over malformed markdown.

const (
	restDayText      = "no activity"
	defaultIntensity = "medium"
	unknownActivity  = "Unknown Activity"
	unknownWorkout   = "Unknown Workout"
	equipmentMarker  = "Equipment:"
)

var (
	dayHeadingRe = regexp.MustCompile(`(?m)^#\s*(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\s*$`)
	titleRe      = regexp.MustCompile(`(?m)^#\s*(\S.*)$`)
	durationRe   = regexp.MustCompile(`Duration:\s*(\d+)\s*minutes`)
	bulletRe     = regexp.MustCompile(`(?m)^\*\s+(.+)$`)
	metricRe     = regexp.MustCompile(`(\d+)\s*(reps|steps|seconds|minutes)\b.*x\s*(\d+)`)
	breakRe      = regexp.MustCompile(`>\s*Break:\s*(\d+)\s*seconds`)
	noActivityRe = regexp.MustCompile(`(?i)no activity`)
)

// ParsePlan converts the LLM's markdown response into a WeeklyPlan with
// exactly the 7 canonical weekday keys. Weekdays absent from the markdown
// are backfilled as rest days.
func ParsePlan(raw string) WeeklyPlan {
	plan := NewRestWeek()

	headings := dayHeadingRe.FindAllStringSubmatchIndex(raw, -1)
	for i, loc := range headings {
		day := raw[loc[2]:loc[3]]
		bodyStart := loc[1]
		bodyEnd := len(raw)
		if i+1 < len(headings) {
			bodyEnd = headings[i+1][0]
		}
		plan[day] = parseDay(raw[bodyStart:bodyEnd])
	}

	return plan
}

// parseDay classifies one day body as rest, activity or workout.
func parseDay(body string) DayEntry {
	body = strings.TrimSpace(body)
	if body == "" || noActivityRe.MatchString(body) {
		return RestDay(restDayText)
	}
	if strings.Contains(body, equipmentMarker) {
		return parseActivity(body)
	}
	return parseWorkout(body)
}

func parseActivity(body string) DayEntry {
	a := &Activity{
		Name:      unknownActivity,
		Equipment: []string{},
	}
	if m := titleRe.FindStringSubmatch(body); m != nil {
		a.Name = strings.TrimSpace(m[1])
	}
	if m := durationRe.FindStringSubmatch(body); m != nil {
		a.Duration, _ = strconv.Atoi(m[1])
	}
	for _, m := range bulletRe.FindAllStringSubmatch(body, -1) {
		a.Equipment = append(a.Equipment, strings.TrimSpace(m[1]))
	}
	return ActivityDay(a)
}

func parseWorkout(body string) DayEntry {
	w := &Workout{
		Name:       unknownWorkout,
		Activities: []Exercise{},
	}
	if m := titleRe.FindStringSubmatch(body); m != nil {
		w.Name = strings.TrimSpace(m[1])
	}
	if m := durationRe.FindStringSubmatch(body); m != nil {
		w.Time, _ = strconv.Atoi(m[1])
	}

	// Everything before the first bullet is the day header; each bullet
	// starts one exercise block.
	blocks := strings.Split(body, "* ")
	for _, block := range blocks[1:] {
		w.Activities = append(w.Activities, parseExercise(block))
	}

	return WorkoutDay(w)
}

func parseExercise(block string) Exercise {
	ex := Exercise{
		Intensity:    defaultIntensity,
		MuscleGroups: []string{},
		Equipment:    []string{},
	}

	for _, line := range strings.Split(block, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			ex.Name = name
			break
		}
	}

	if m := metricRe.FindStringSubmatch(block); m != nil {
		ex.Duration, _ = strconv.Atoi(m[1])
		ex.DurationUnit = m[2]
	}
	if m := breakRe.FindStringSubmatch(block); m != nil {
		ex.Break, _ = strconv.Atoi(m[1])
	}

	return ex
}
