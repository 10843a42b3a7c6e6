package ftracker

import (
	"math"
	"sort"
)

// Kind is the code identifying a kind of workout in a sensor package
type Kind string

const (
	KindRunning  Kind = "RUN"
	KindWalking  Kind = "WLK"
	KindSwimming Kind = "SWM"
)

type check int

const (
	finite check = iota
	positive
	count
)

// maxCount bounds the integral fields so the conversion to int is exact
const maxCount = math.MaxInt32

type field struct {
	name  string
	check check
}

type kind struct {
	name   string
	fields []field
	build  func(data []float64) Workout
}

var trainingFields = []field{{"action", count}, {"duration", positive}, {"weight", finite}}

var kinds = map[Kind]kind{
	KindRunning: {
		name:   "Running",
		fields: trainingFields,
		build: func(data []float64) Workout {
			return Running{Training: training(data)}
		},
	},
	KindWalking: {
		name:   "Walking",
		fields: append(trainingFields[:len(trainingFields):len(trainingFields)], field{"height", positive}),
		build: func(data []float64) Workout {
			return Walking{Training: training(data), Height: data[3]}
		},
	},
	KindSwimming: {
		name:   "Swimming",
		fields: append(trainingFields[:len(trainingFields):len(trainingFields)], field{"pool_length", finite}, field{"pool_count", count}),
		build: func(data []float64) Workout {
			return Swimming{Training: training(data), PoolLength: data[3], PoolCount: int(data[4])}
		},
	},
}

// training truncates the action count toward zero
func training(data []float64) Training {
	return Training{Action: int(data[0]), Duration: data[1], Weight: data[2]}
}

// validate reports the first field unusable as a divisor or a count
func (k kind) validate(code Kind, data []float64) error {
	for i, f := range k.fields {
		val := data[i]
		ok := !math.IsNaN(val) && !math.IsInf(val, 0)
		switch f.check {
		case positive:
			ok = ok && val > 0
		case count:
			ok = ok && val >= 0 && val <= maxCount && val == math.Trunc(val)
		}
		if !ok {
			return &InvalidReadingError{Kind: code, Field: f.name, Value: val}
		}
	}
	return nil
}

// Kinds returns all registered kinds sorted by code
func Kinds() []Kind {
	res := make([]Kind, 0, len(kinds))
	for k := range kinds {
		res = append(res, k)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// Valid reports whether the kind is registered
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Name returns the human-readable name of the kind or the empty string if unknown
func (k Kind) Name() string {
	return kinds[k].name
}

// Arity returns the number of data fields the kind expects or zero if unknown
func (k Kind) Arity() int {
	return len(kinds[k].fields)
}

// Fields returns the names of the data fields in package order
func (k Kind) Fields() []string {
	var res []string
	for _, f := range kinds[k].fields {
		res = append(res, f.name)
	}
	return res
}
