package ftracker

import "fmt"

const message = "Training type: %s; Duration: %.3f h.; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f."

// Summary is the derived result of a single workout
type Summary struct {
	Type      string  `json:"type"`
	Duration  float64 `json:"duration"`
	Distance  float64 `json:"distance"`
	MeanSpeed float64 `json:"speed"`
	Calories  float64 `json:"calories"`
}

// Message renders the summary as a single human-readable line
func (s *Summary) Message() string {
	return fmt.Sprintf(message, s.Type, s.Duration, s.Distance, s.MeanSpeed, s.Calories)
}

func (s *Summary) String() string {
	return s.Message()
}

// Total accumulates the summaries of one workout kind
type Total struct {
	Type      string     `json:"type"`
	Workouts  int        `json:"workouts"`
	Duration  float64    `json:"duration"`
	Distance  float64    `json:"distance"`
	Calories  float64    `json:"calories"`
	Summaries []*Summary `json:"summaries"`
}

// Package is one batch of raw sensor readings
type Package struct {
	Type string    `json:"type" yaml:"type"`
	Data []float64 `json:"data" yaml:"data"`
}

type Config struct {
	Packages []Package `json:"packages" yaml:"packages"`
}
