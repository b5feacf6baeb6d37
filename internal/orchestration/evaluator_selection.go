package orchestration

import (
	"github.com/agbru/rotcoef/internal/rodrigues"
)

// GetEvaluatorsToRun resolves the configured mode to the evaluators to sweep.
// Mode "all" selects every registered strategy in the factory's sorted order,
// anything else selects the single named strategy.
func GetEvaluatorsToRun(factory rodrigues.EvaluatorFactory, mode string) ([]rodrigues.Evaluator, error) {
	if mode == "all" {
		names := factory.List()
		evaluators := make([]rodrigues.Evaluator, 0, len(names))
		for _, name := range names {
			e, err := factory.Get(name)
			if err != nil {
				return nil, err
			}
			evaluators = append(evaluators, e)
		}
		return evaluators, nil
	}

	e, err := factory.Get(mode)
	if err != nil {
		return nil, err
	}
	return []rodrigues.Evaluator{e}, nil
}
