package ftracker

import "math"

const (
	mInKm    = 1000
	minInHr  = 60
	lenStep  = 0.65
	swimStep = 1.38

	runSpeedMultiplier = 18
	runSpeedShift      = 20

	walkWeightMultiplier = 0.035
	walkSpeedMultiplier  = 0.029

	swimSpeedShift       = 1.1
	swimWeightMultiplier = 2
)

// Workout computes the metrics of one kind of training
//
// The set of implementations is closed: Running, Walking and Swimming.
type Workout interface {
	Kind() Kind
	// Distance in kilometers
	Distance() float64
	// MeanSpeed in kilometers per hour
	MeanSpeed() float64
	// Calories burned
	Calories() float64
	Summary() *Summary

	reading() Training
}

// Training holds the readings shared by every kind of workout
//
// Duration is a divisor for the mean speed and must be non-zero.
type Training struct {
	Action   int     `json:"action"`
	Duration float64 `json:"duration"`
	Weight   float64 `json:"weight"`
}

func (t Training) reading() Training {
	return t
}

// Distance returns the stride-based distance in kilometers
func (t Training) Distance() float64 {
	return float64(t.Action) * lenStep / mInKm
}

// MeanSpeed returns the stride-based mean speed in kilometers per hour
func (t Training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

func summarize(w Workout) *Summary {
	return &Summary{
		Type:      w.Kind().Name(),
		Duration:  w.reading().Duration,
		Distance:  w.Distance(),
		MeanSpeed: w.MeanSpeed(),
		Calories:  w.Calories(),
	}
}

type Running struct {
	Training
}

func (r Running) Kind() Kind {
	return KindRunning
}

func (r Running) Calories() float64 {
	return (runSpeedMultiplier*r.MeanSpeed() - runSpeedShift) * r.Weight / mInKm * r.Duration * minInHr
}

func (r Running) Summary() *Summary {
	return summarize(r)
}

// Walking carries the walker's height in centimeters
type Walking struct {
	Training
	Height float64 `json:"height"`
}

func (w Walking) Kind() Kind {
	return KindWalking
}

// Calories floor-divides the squared mean speed by the height
func (w Walking) Calories() float64 {
	speed := w.MeanSpeed()
	return (walkWeightMultiplier*w.Weight +
		math.Floor(speed*speed/w.Height)*walkSpeedMultiplier*w.Weight) * w.Duration * minInHr
}

func (w Walking) Summary() *Summary {
	return summarize(w)
}

// Swimming carries the pool length in meters and the number of lengths swum
type Swimming struct {
	Training
	PoolLength float64 `json:"pool_length"`
	PoolCount  int     `json:"pool_count"`
}

func (s Swimming) Kind() Kind {
	return KindSwimming
}

// Distance uses the stroke length rather than the stride length
func (s Swimming) Distance() float64 {
	return float64(s.Action) * swimStep / mInKm
}

// MeanSpeed is derived from the pool lengths swum and ignores the stroke count
func (s Swimming) MeanSpeed() float64 {
	return s.PoolLength * float64(s.PoolCount) / mInKm / s.Duration
}

func (s Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimSpeedShift) * swimWeightMultiplier * s.Weight
}

func (s Swimming) Summary() *Summary {
	return summarize(s)
}
