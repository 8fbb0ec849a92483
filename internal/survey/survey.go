// Package survey models the answers collected by the survey wizard and
// turns them into the sanitized payload sent to the LLM.
package survey

import (
	"gym-planner/internal/weather"
)

const (
	answerNo      = "no"
	answerYes     = "yes"
	equipmentNone = "none"
)

// Answers is the flat record of the user's selections, produced by the
// survey UI. It is never persisted; it lives for one request cycle.
type Answers struct {
	FitnessLevel                string            `json:"fitnessLevel"`
	CurrentFitness              []int             `json:"currentFitness"`
	BiologicalSex               string            `json:"biologicalSex,omitempty"`
	Height                      string            `json:"height,omitempty"`
	Weight                      string            `json:"weight,omitempty"`
	Activities                  []string          `json:"activities"`
	HasExistingPlan             string            `json:"hasExistingPlan,omitempty"`
	TrainingForSpecific         string            `json:"trainingForSpecific,omitempty"`
	Goals                       []string          `json:"goals"`
	PlanPreference              string            `json:"planPreference"`
	VarietyImportance           []int             `json:"varietyImportance"`
	InterestedActivities        []string          `json:"interestedActivities"`
	SelectedActivitiesEquipment map[string]string `json:"selectedActivitiesEquipment,omitempty"`
	AvoidActivities             []string          `json:"avoidActivities"`
	WorkoutFrequency            []int             `json:"workoutFrequency"`
	WorkoutDays                 []string          `json:"workoutDays"`
	WorkoutDuration             string            `json:"workoutDuration"`
	ConsiderWeather             string            `json:"considerWeather"`
	Location                    string            `json:"location,omitempty"`
	Longitude                   *float64          `json:"longitude,omitempty"`
	Latitude                    *float64          `json:"latitude,omitempty"`
	WorkoutPartner              string            `json:"workoutPartner"`
	WorkoutTime                 string            `json:"workoutTime"`
	AdditionalConsiderations    string            `json:"additionalConsiderations,omitempty"`
}

// WantsWeather reports whether weather enrichment should run: the user opted
// in and coordinates are present.
func (a Answers) WantsWeather() bool {
	return a.ConsiderWeather == answerYes && a.Latitude != nil && a.Longitude != nil
}

// PromptPayload is the sanitized object embedded as the LLM user message.
// It never carries coordinates or the free-text location.
type PromptPayload struct {
	FitnessLevel                string            `json:"fitnessLevel"`
	CurrentFitness              []int             `json:"currentFitness"`
	BiologicalSex               string            `json:"biologicalSex,omitempty"`
	Height                      string            `json:"height,omitempty"`
	Weight                      string            `json:"weight,omitempty"`
	Activities                  []string          `json:"activities"`
	HasExistingPlan             string            `json:"hasExistingPlan,omitempty"`
	TrainingForSpecific         string            `json:"trainingForSpecific,omitempty"`
	Goals                       []string          `json:"goals"`
	PlanPreference              string            `json:"planPreference"`
	VarietyImportance           []int             `json:"varietyImportance"`
	InterestedActivities        []string          `json:"interestedActivities"`
	SelectedActivitiesEquipment map[string]string `json:"selectedActivitiesEquipment,omitempty"`
	AvoidActivities             []string          `json:"avoidActivities"`
	WorkoutFrequency            []int             `json:"workoutFrequency"`
	WorkoutDays                 []string          `json:"workoutDays"`
	WorkoutDuration             string            `json:"workoutDuration"`
	ConsiderWeather             string            `json:"considerWeather"`
	WorkoutPartner              string            `json:"workoutPartner"`
	WorkoutTime                 string            `json:"workoutTime"`
	AdditionalConsiderations    string            `json:"additionalConsiderations,omitempty"`
	Weather                     weather.Summary   `json:"weather,omitempty"`
}

// BuildPromptPayload produces the LLM user payload from the survey answers
// and the (possibly empty) weather summary. Pure function of its inputs:
//   - hasExistingPlan and trainingForSpecific are dropped when answered "no"
//   - the equipment selection is dropped when any entry is "none"
//   - latitude, longitude and location are always stripped
func BuildPromptPayload(a Answers, w weather.Summary) PromptPayload {
	p := PromptPayload{
		FitnessLevel:                a.FitnessLevel,
		CurrentFitness:              a.CurrentFitness,
		BiologicalSex:               a.BiologicalSex,
		Height:                      a.Height,
		Weight:                      a.Weight,
		Activities:                  a.Activities,
		Goals:                       a.Goals,
		PlanPreference:              a.PlanPreference,
		VarietyImportance:           a.VarietyImportance,
		InterestedActivities:        a.InterestedActivities,
		SelectedActivitiesEquipment: a.SelectedActivitiesEquipment,
		AvoidActivities:             a.AvoidActivities,
		WorkoutFrequency:            a.WorkoutFrequency,
		WorkoutDays:                 a.WorkoutDays,
		WorkoutDuration:             a.WorkoutDuration,
		ConsiderWeather:             a.ConsiderWeather,
		WorkoutPartner:              a.WorkoutPartner,
		WorkoutTime:                 a.WorkoutTime,
		AdditionalConsiderations:    a.AdditionalConsiderations,
	}

	if a.HasExistingPlan != answerNo {
		p.HasExistingPlan = a.HasExistingPlan
	}
	if a.TrainingForSpecific != answerNo {
		p.TrainingForSpecific = a.TrainingForSpecific
	}

	for _, v := range a.SelectedActivitiesEquipment {
		if v == equipmentNone {
			p.SelectedActivitiesEquipment = nil
			break
		}
	}

	if len(w) > 0 {
		p.Weather = w
	}

	return p
}
