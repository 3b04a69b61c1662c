package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/xmath-go/xmath/internal/errprof"
)

// sweepFile is the layout of a --config file:
//
//	[[sweep]]
//	func = "sqrt"
//	from = 1e-3
//	to = 1e3
//	log = true
//	max_rel = 1e-3
type sweepFile struct {
	Sweep []sweepEntry `toml:"sweep"`
}

// sweepEntry fields left out of the file fall back to the function defaults.
type sweepEntry struct {
	Func   string   `toml:"func"`
	From   *float64 `toml:"from"`
	To     *float64 `toml:"to"`
	Steps  *int     `toml:"steps"`
	Log    *bool    `toml:"log"`
	MaxAbs float64  `toml:"max_abs"`
	MaxRel float64  `toml:"max_rel"`
}

// sweepJob is a resolved sweep ready to run.
type sweepJob struct {
	fn    errprof.Func
	rng   errprof.Range
	limit thresholds
}

func loadSweepFile(path string) ([]sweepJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sweep config: %w", err)
	}
	return parseSweepFile(data)
}

func parseSweepFile(data []byte) ([]sweepJob, error) {
	var file sweepFile
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing sweep config: %w", err)
	}
	if len(file.Sweep) == 0 {
		return nil, errors.New("sweep config has no [[sweep]] entries")
	}

	jobs := make([]sweepJob, 0, len(file.Sweep))
	for i, e := range file.Sweep {
		fn, err := errprof.Lookup(e.Func)
		if err != nil {
			return nil, fmt.Errorf("sweep entry %d: %w", i+1, err)
		}
		if fn.Arity != 1 {
			return nil, fmt.Errorf("sweep entry %d: %w: %s takes %d arguments", i+1, errprof.ErrArity, fn.Name, fn.Arity)
		}
		r := fn.Range
		if e.From != nil {
			r.From = *e.From
		}
		if e.To != nil {
			r.To = *e.To
		}
		if e.Steps != nil {
			r.Steps = *e.Steps
		}
		if e.Log != nil {
			r.Log = *e.Log
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("sweep entry %d (%s): %w", i+1, fn.Name, err)
		}
		jobs = append(jobs, sweepJob{
			fn:    fn,
			rng:   r,
			limit: thresholds{maxAbs: e.MaxAbs, maxRel: e.MaxRel},
		})
	}
	return jobs, nil
}
