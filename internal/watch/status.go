package watch

import (
	"time"

	"github.com/aristath/warden/internal/domain"
	"github.com/aristath/warden/internal/modules/reserves"
	"github.com/aristath/warden/internal/modules/risk"
)

// Status is the current evaluation of a watch entry. Exactly one of
// Assessment or Evaluation is set, per the entry's kind.
type Status struct {
	Entry       Entry                `json:"entry"`
	EvaluatedAt time.Time            `json:"evaluated_at"`
	Assessment  *risk.Assessment     `json:"assessment,omitempty"`
	Evaluation  *reserves.Evaluation `json:"evaluation,omitempty"`
}

// Evaluator re-runs the engine against watch entries on demand.
type Evaluator struct {
	assessor *risk.Assessor
	monitor  *reserves.Monitor
}

// NewEvaluator creates an evaluator with default engine thresholds.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		assessor: risk.NewAssessor(),
		monitor:  reserves.NewMonitor(),
	}
}

// Evaluate runs the engine appropriate to the entry's kind.
func (e *Evaluator) Evaluate(entry Entry) (*Status, error) {
	status := &Status{
		Entry:       entry,
		EvaluatedAt: time.Now().UTC(),
	}

	switch entry.Kind {
	case KindPortfolio:
		assessment, err := e.assessor.Assess(*entry.Portfolio)
		if err != nil {
			return nil, err
		}
		status.Assessment = assessment
	case KindReserves:
		evaluation, err := e.monitor.Evaluate(*entry.Reserves)
		if err != nil {
			return nil, err
		}
		status.Evaluation = evaluation
	default:
		return nil, domain.Invalidf("unknown watch target kind %q", entry.Kind)
	}

	return status, nil
}
