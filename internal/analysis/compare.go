package analysis

import (
	"fmt"

	"davisbacon/internal/metrics"
	"davisbacon/internal/model"

	"golang.org/x/sync/errgroup"
)

// Entry is one column of a comparison: either a catalog preset name, applied
// to the comparison base, or a fully specified ParameterSet.
type Entry struct {
	Label    string
	Scenario string
	Params   *model.ParameterSet
}

// Row is one evaluated comparison entry.
type Row struct {
	Label    string
	Scenario string // empty for custom entries
	Result   model.CalculationResult
}

// Compare evaluates entries in order. Every entry is resolved before anything
// is evaluated, so one bad name fails the whole request and no rows come back.
// Duplicate labels are kept as given. An entry may not carry both a
// scenario name and parameters.
func (a *Analyzer) Compare(base model.ParameterSet, entries []Entry) ([]Row, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}
	resolved := make([]model.ParameterSet, len(entries))
	rows := make([]Row, len(entries))
	for i, e := range entries {
		switch {
		case e.Scenario != "" && e.Params != nil:
			return nil, fmt.Errorf("entry %d: give a scenario name or parameters, not both", i)
		case e.Scenario != "":
			p, err := a.catalog.Resolve(e.Scenario, base)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			resolved[i] = p
			rows[i].Scenario = e.Scenario
			rows[i].Label = e.Label
			if rows[i].Label == "" {
				rows[i].Label = e.Scenario
			}
		case e.Params != nil:
			if err := e.Params.Validate(); err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			resolved[i] = *e.Params
			rows[i].Label = e.Label
			if rows[i].Label == "" {
				rows[i].Label = fmt.Sprintf("Custom %d", i+1)
			}
		default:
			return nil, fmt.Errorf("entry %d: either a scenario name or parameters is required", i)
		}
	}

	var g errgroup.Group
	g.SetLimit(a.workers)
	for i := range resolved {
		i := i
		g.Go(func() error {
			rows[i].Result = a.eval.Evaluate(resolved[i])
			return nil
		})
	}
	_ = g.Wait() // evaluation cannot fail once every entry has resolved

	metrics.Evaluations.WithLabelValues("compare").Add(float64(len(rows)))
	return rows, nil
}

// CompareAll evaluates every catalog preset against base, in catalog order.
func (a *Analyzer) CompareAll(base model.ParameterSet) ([]Row, error) {
	names := a.catalog.Names()
	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = Entry{Scenario: name}
	}
	return a.Compare(base, entries)
}
