package ftracker

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// ReadPackage validates the type and field count of the sensor package and returns the workout it describes
//
// The readings themselves are not checked: callers guarantee a non-zero duration.
func ReadPackage(code string, data []float64) (Workout, error) {
	k := Kind(code)
	if !k.Valid() {
		return nil, &UnknownKindError{Code: code}
	}
	if len(data) != k.Arity() {
		return nil, &ArityMismatchError{Kind: k, Expected: k.Arity(), Actual: len(data)}
	}
	return kinds[k].build(data), nil
}

// Workout reads the package and checks every reading is usable, returning an
// *InvalidReadingError for a non-positive duration or height, a fractional,
// negative or overflowing count, or a non-finite value
func (p Package) Workout() (Workout, error) {
	w, err := ReadPackage(p.Type, p.Data)
	if err != nil {
		return nil, err
	}
	if err := kinds[w.Kind()].validate(w.Kind(), p.Data); err != nil {
		return nil, err
	}
	return w, nil
}

// Process reads and checks each package in order and returns their summaries
func Process(pkgs []Package) ([]*Summary, error) {
	res := make([]*Summary, 0, len(pkgs))
	for i, pkg := range pkgs {
		w, err := pkg.Workout()
		if err != nil {
			return nil, fmt.Errorf("package %d: %w", i, err)
		}
		sum := w.Summary()
		log.Debug().
			Int("index", i).
			Str("type", pkg.Type).
			Float64("distance", sum.Distance).
			Float64("calories", sum.Calories).
			Msg("process")
		res = append(res, sum)
	}
	return res, nil
}

// Tally totals the summaries by workout type
func Tally(sums []*Summary) []*Total {
	// group all summaries by type
	g := make(map[string][]*Summary)
	for _, sum := range sums {
		g[sum.Type] = append(g[sum.Type], sum)
	}
	// accumulate duration, distance and calories
	res := make([]*Total, 0, len(g))
	for typ, sums := range g {
		t := &Total{Type: typ, Workouts: len(sums), Summaries: sums}
		for _, sum := range sums {
			t.Duration += sum.Duration
			t.Distance += sum.Distance
			t.Calories += sum.Calories
		}
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Type < res[j].Type })
	return res
}
