package cli

import (
	"fmt"
	"io"

	"github.com/briandowns/spinner"

	"github.com/agbru/rotcoef/internal/progress"
)

// DisplayProgress drives a spinner with a consolidated progress bar while the
// grid sweeps run. It consumes updates until the channel closes, which is the
// orchestrator's signal that every strategy has finished.
//
// Parameters:
//   - updates: The progress channel fed by the orchestrator.
//   - names: The strategy names, one per evaluator index.
//   - out: The writer the spinner renders to.
func DisplayProgress(updates <-chan progress.Update, names []string, out io.Writer) {
	if len(names) == 0 {
		for range updates {
		}
		return
	}

	state := NewSweepState(len(names))
	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(fmt.Sprintf(" sweeping grid [%s] 0%%", progressBar(0, ProgressBarWidth)))
	sp.Start()
	defer sp.Stop()

	for u := range updates {
		state.Update(u.EvaluatorIndex, u.Value)
		avg := state.Average()
		sp.UpdateSuffix(fmt.Sprintf(" sweeping grid [%s] %.0f%%",
			progressBar(avg, ProgressBarWidth), avg*100))
	}
}
