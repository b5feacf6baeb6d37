// Package progress defines the progress update type shared between the
// orchestration layer and its presentation consumers.
package progress

// Update reports the fractional completion of one evaluator's grid sweep.
type Update struct {
	// EvaluatorIndex identifies which concurrent evaluator the update is for.
	EvaluatorIndex int
	// Value is the completion fraction in [0, 1].
	Value float64
}
