package watch

import (
	"github.com/aristath/warden/internal/domain"
	"github.com/aristath/warden/internal/modules/risk"
	"github.com/rs/zerolog"
)

// SweepJob re-evaluates every registered watch entry and logs findings.
// It satisfies the scheduler's Job interface.
type SweepJob struct {
	registry  *Registry
	evaluator *Evaluator
	log       zerolog.Logger
}

// NewSweepJob creates a sweep job over the given registry.
func NewSweepJob(registry *Registry, log zerolog.Logger) *SweepJob {
	return &SweepJob{
		registry:  registry,
		evaluator: NewEvaluator(),
		log:       log.With().Str("component", "watch_sweep").Logger(),
	}
}

// Name returns the job name used in scheduler logs.
func (j *SweepJob) Name() string {
	return "watch_sweep"
}

// Run evaluates all entries. Per-entry failures are logged and do not
// stop the sweep; Run only reports the sweep itself as failed when
// every entry failed.
func (j *SweepJob) Run() error {
	entries := j.registry.List()
	if len(entries) == 0 {
		j.log.Debug().Msg("No watch entries registered")
		return nil
	}

	failures := 0
	for _, entry := range entries {
		status, err := j.evaluator.Evaluate(entry)
		if err != nil {
			failures++
			j.log.Error().
				Err(err).
				Str("entry_id", entry.ID).
				Str("kind", string(entry.Kind)).
				Msg("Watch entry evaluation failed")
			continue
		}
		j.report(entry, status)
	}

	j.log.Info().
		Int("entries", len(entries)).
		Int("failures", failures).
		Msg("Watch sweep completed")

	if failures == len(entries) {
		return domain.Invalidf("all %d watch entries failed evaluation", failures)
	}
	return nil
}

func (j *SweepJob) report(entry Entry, status *Status) {
	log := j.log.With().
		Str("entry_id", entry.ID).
		Str("label", entry.Label).
		Logger()

	if status.Assessment != nil {
		event := log.Info()
		if status.Assessment.RiskLevel == risk.LevelAggressive {
			event = log.Warn()
		}
		event.
			Str("risk_level", string(status.Assessment.RiskLevel)).
			Float64("var_95", status.Assessment.Metrics.ValueAtRisk95).
			Msg("Portfolio watch status")
	}

	if status.Evaluation != nil {
		event := log.Info()
		switch highestSeverity(status.Evaluation.Alerts) {
		case domain.SeverityCritical:
			event = log.Error()
		case domain.SeverityWarning:
			event = log.Warn()
		}
		event.
			Str("reserve_status", status.Evaluation.ReserveStatus.String()).
			Float64("months_coverage", status.Evaluation.MonthsCoverage).
			Msg("Reserve watch status")
	}
}

func highestSeverity(alerts []domain.Alert) domain.Severity {
	highest := domain.SeverityInfo
	for _, alert := range alerts {
		switch alert.Severity {
		case domain.SeverityCritical:
			return domain.SeverityCritical
		case domain.SeverityWarning:
			highest = domain.SeverityWarning
		}
	}
	return highest
}
