package rodrigues

import (
	"fmt"
	"sort"
	"strings"
)

// Evaluator computes the six tabulated Rodrigues coefficients at a rotation
// angle theta. Implementations are pure and safe for concurrent use across
// independent inputs.
type Evaluator interface {
	// Name returns the strategy identifier used for selection and display.
	Name() string

	A0(theta float64) float64
	A1(theta float64) float64
	A2(theta float64) float64
	B0(theta float64) float64
	B1(theta float64) float64
	B2(theta float64) float64
}

// CoefficientLabels lists the tabulated coefficients in their fixed row order.
var CoefficientLabels = []string{"a0", "a1", "a2", "b0", "b1", "b2"}

// CoefficientFuncs returns the evaluator's coefficient functions in the same
// order as CoefficientLabels.
func CoefficientFuncs(e Evaluator) []func(float64) float64 {
	return []func(float64) float64{e.A0, e.A1, e.A2, e.B0, e.B1, e.B2}
}

// EvaluatorFactory provides access to the registered evaluation strategies.
type EvaluatorFactory interface {
	// Get returns the evaluator registered under name.
	Get(name string) (Evaluator, error)
	// List returns the registered names in sorted order for reproducible
	// selection and display.
	List() []string
	// GetAll returns all registered evaluators keyed by name.
	GetAll() map[string]Evaluator
}

// defaultFactory is a map-backed EvaluatorFactory.
type defaultFactory struct {
	evaluators map[string]Evaluator
}

// NewDefaultFactory creates a factory with the three standard strategies
// registered: direct, hyperdual, and series.
func NewDefaultFactory() EvaluatorFactory {
	f := &defaultFactory{evaluators: make(map[string]Evaluator)}
	for _, e := range []Evaluator{
		ClosedForm{},
		NewAutoDiff(),
		NewSeries(),
	} {
		f.evaluators[e.Name()] = e
	}
	return f
}

// NewFactory creates a factory with the three standard strategies configured
// with explicit hyper-dual steps and series switchover threshold.
func NewFactory(h1, h2, seriesThreshold float64) EvaluatorFactory {
	ad := NewAutoDiff()
	ad.SetSteps(h1, h2)
	series := NewSeries()
	series.Threshold = seriesThreshold

	f := &defaultFactory{evaluators: make(map[string]Evaluator)}
	for _, e := range []Evaluator{ClosedForm{}, ad, series} {
		f.evaluators[e.Name()] = e
	}
	return f
}

func (f *defaultFactory) Get(name string) (Evaluator, error) {
	e, ok := f.evaluators[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluation mode %q (available: %s)",
			name, strings.Join(f.List(), ", "))
	}
	return e, nil
}

func (f *defaultFactory) List() []string {
	names := make([]string, 0, len(f.evaluators))
	for name := range f.evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (f *defaultFactory) GetAll() map[string]Evaluator {
	all := make(map[string]Evaluator, len(f.evaluators))
	for name, e := range f.evaluators {
		all[name] = e
	}
	return all
}
