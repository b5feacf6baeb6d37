package orchestration

import (
	"context"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/rotcoef/internal/errors"
	"github.com/agbru/rotcoef/internal/logging"
	"github.com/agbru/rotcoef/internal/metrics"
	"github.com/agbru/rotcoef/internal/progress"
	"github.com/agbru/rotcoef/internal/rodrigues"
)

const tracerName = "github.com/agbru/rotcoef/internal/orchestration"

// progressBufferMultiplier sizes the update channel so short sweeps finish
// without ever blocking on a slow consumer.
const progressBufferMultiplier = 5

// Orchestrator runs evaluation strategies concurrently over a grid of angles
// and checks their results against each other.
type Orchestrator struct {
	logger logging.Logger
}

// NewOrchestrator creates an Orchestrator. A nil logger falls back to the
// no-op logger.
func NewOrchestrator(logger logging.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Orchestrator{logger: logger}
}

// EvaluateGrid sweeps every evaluator over the grid concurrently. Each
// strategy runs in its own goroutine; progress updates flow to the reporter
// until all sweeps finish. The returned slice is ordered like evaluators.
//
// Parameters:
//   - ctx: Controls cancellation and timeout of the whole sweep.
//   - evaluators: The strategies to run.
//   - thetas: The grid angles, usually from BuildGrid.
//   - reporter: Receives progress updates; must drain them.
//
// Returns:
//   - []EvaluationResult: One result per evaluator, in input order.
//   - error: The first sweep failure, or the context error on cancellation.
func (o *Orchestrator) EvaluateGrid(ctx context.Context, evaluators []rodrigues.Evaluator, thetas []float64, reporter ProgressReporter) ([]EvaluationResult, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "EvaluateGrid")
	defer span.End()
	span.SetAttributes(
		attribute.Int("grid.points", len(thetas)),
		attribute.Int("evaluators", len(evaluators)),
	)

	if reporter == nil {
		reporter = NullProgressReporter{}
	}

	names := make([]string, len(evaluators))
	for i, e := range evaluators {
		names[i] = e.Name()
	}

	results := make([]EvaluationResult, len(evaluators))
	updates := make(chan progress.Update, len(evaluators)*progressBufferMultiplier)

	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		reporter.Consume(ctx, updates, names)
	}()

	g, gctx := errgroup.WithContext(ctx)
	for i, ev := range evaluators {
		g.Go(func() error {
			start := time.Now()
			rows, err := o.sweep(gctx, ev, thetas, i, updates)
			duration := time.Since(start)
			if err != nil {
				metrics.RecordEvaluationError(ev.Name())
				results[i] = EvaluationResult{Name: ev.Name(), Duration: duration, Err: err}
				return err
			}
			metrics.RecordEvaluation(ev.Name(), duration.Seconds())
			results[i] = EvaluationResult{Name: ev.Name(), Rows: rows, Duration: duration}
			o.logger.Debug("grid sweep complete",
				logging.String("mode", ev.Name()),
				logging.Int("points", len(thetas)),
				logging.String("duration", duration.String()),
			)
			return nil
		})
	}

	err := g.Wait()
	close(updates)
	<-reporterDone

	if err != nil {
		span.RecordError(err)
		if apperrors.IsContextError(err) {
			return results, err
		}
		return results, apperrors.EvaluationError{Cause: err}
	}
	return results, nil
}

// sweep evaluates all six coefficients of one strategy over the grid, sending
// one progress update per completed coefficient row.
func (o *Orchestrator) sweep(ctx context.Context, ev rodrigues.Evaluator, thetas []float64, index int, updates chan<- progress.Update) ([]Row, error) {
	funcs := rodrigues.CoefficientFuncs(ev)
	rows := make([]Row, len(funcs))
	for r, fn := range funcs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		values := make([]float64, len(thetas))
		for j, theta := range thetas {
			values[j] = fn(theta)
		}
		rows[r] = Row{Label: rodrigues.CoefficientLabels[r], Values: values}

		select {
		case updates <- progress.Update{EvaluatorIndex: index, Value: float64(r+1) / float64(len(funcs))}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return rows, nil
}

// AnalyzeComparisonResults cross-checks every strategy against the first
// successful one and reports the worst absolute deviation. Grid points where
// either side is non-finite are skipped: the closed forms are expected to
// produce NaN at the singularity, and that disagreement is the study's
// subject, not a defect.
//
// Returns nil when all finite values agree within tolerance, a MismatchError
// otherwise.
func (o *Orchestrator) AnalyzeComparisonResults(thetas []float64, results []EvaluationResult, tolerance float64) error {
	var ref *EvaluationResult
	for i := range results {
		if results[i].Err == nil && len(results[i].Rows) > 0 {
			ref = &results[i]
			break
		}
	}
	if ref == nil {
		return nil
	}

	worst := MismatchReport{}
	for i := range results {
		r := &results[i]
		if r == ref || r.Err != nil || len(r.Rows) == 0 {
			continue
		}
		for rowIdx := range ref.Rows {
			refValues := ref.Rows[rowIdx].Values
			gotValues := r.Rows[rowIdx].Values
			for j := range refValues {
				a, b := refValues[j], gotValues[j]
				if !isFinite(a) || !isFinite(b) {
					continue
				}
				dev := math.Abs(a - b)
				if dev > worst.Deviation {
					worst = MismatchReport{
						Coefficient: ref.Rows[rowIdx].Label,
						Theta:       thetas[j],
						Deviation:   dev,
						Modes:       [2]string{ref.Name, r.Name},
					}
				}
			}
		}
	}

	o.logger.Debug("comparison complete",
		logging.String("coefficient", worst.Coefficient),
		logging.Float64("worst_deviation", worst.Deviation),
	)

	if worst.Deviation > tolerance {
		metrics.MismatchesTotal.Inc()
		return apperrors.MismatchError{
			Coefficient: worst.Coefficient,
			Theta:       worst.Theta,
			Deviation:   worst.Deviation,
			Tolerance:   tolerance,
		}
	}
	return nil
}

// MismatchReport captures the worst deviation found during a comparison.
type MismatchReport struct {
	Coefficient string
	Theta       float64
	Deviation   float64
	Modes       [2]string
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
