// Package analysis builds multi-point result sets on top of the cost model:
// sensitivity grids, one-axis sweeps and scenario comparisons.
package analysis

import (
	"runtime"

	"davisbacon/internal/costmodel"
	"davisbacon/internal/model"
	"davisbacon/internal/scenario"
)

// Evaluator computes one CalculationResult. costmodel.Model and
// cache.ResultCache both satisfy it.
type Evaluator interface {
	Evaluate(p model.ParameterSet) model.CalculationResult
}

// Analyzer runs grids, sweeps and comparisons. It is safe for concurrent use.
type Analyzer struct {
	eval    Evaluator
	catalog *scenario.Catalog
	workers int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWorkers bounds how many grid rows or comparison entries run at once.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.workers = n
		}
	}
}

// New returns an Analyzer. A nil eval uses the plain cost model; a nil
// catalog uses the built-in presets.
func New(eval Evaluator, catalog *scenario.Catalog, opts ...Option) *Analyzer {
	if eval == nil {
		eval = costmodel.New()
	}
	if catalog == nil {
		catalog = scenario.Default()
	}
	a := &Analyzer{
		eval:    eval,
		catalog: catalog,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Analyzer) Catalog() *scenario.Catalog { return a.catalog }

// Evaluate runs a single point through the configured evaluator.
func (a *Analyzer) Evaluate(p model.ParameterSet) model.CalculationResult {
	return a.eval.Evaluate(p)
}
