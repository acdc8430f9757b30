package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateCost(t *testing.T) {
	t.Run(
		"1. two-task chain completes at 5",
		func(t *testing.T) {
			inst := mustBuildInstance(t, twoTaskChainDescription())

			solution := mustConstruct(t, inst, OrderByReleaseAscending)

			report, errEvaluate := EvaluateCost(inst, solution)
			require.NoError(t, errEvaluate)

			require.Equal(t, int64(5), report.CompletionTimes[0])
			require.Equal(t, 0, report.TardinessIndicators[0])
			require.Equal(t, int64(0), report.TardinessAmounts[0])
			require.InDelta(t, 5, report.Total, 1e-9)
		},
	)

	t.Run(
		"2. tardy job pays unit and per-time penalties",
		func(t *testing.T) {
			description := twoTaskChainDescription()
			description.Parameters.Costs = CostsDescription{
				UnitPenalty: 10,
				Tardiness:   2,
			}
			description.Jobs[0].DueDate = 3
			description.Jobs[0].Weight = 4

			inst := mustBuildInstance(t, description)

			solution := Solution{
				{Task: 0, Start: 0, Machine: 1, Operator: 1},
				{Task: 1, Start: 3, Machine: 2, Operator: 2},
			}

			report, errEvaluate := EvaluateCost(inst, solution)
			require.NoError(t, errEvaluate)

			require.Equal(t, int64(5), report.CompletionTimes[0])
			require.Equal(t, 1, report.TardinessIndicators[0])
			require.Equal(t, int64(2), report.TardinessAmounts[0])

			// 4 * (5 + 10*1 + 2*2)
			require.InDelta(t, 76, report.Total, 1e-9)
		},
	)

	t.Run(
		"3. missing entry is fatal",
		func(t *testing.T) {
			inst := mustBuildInstance(t, twoTaskChainDescription())

			report, errEvaluate := EvaluateCost(
				inst,
				Solution{
					{Task: 0, Start: 0, Machine: 1, Operator: 1},
				},
			)
			require.Nil(t, report)

			var missing ErrMissingScheduleEntry
			require.ErrorAs(t, errEvaluate, &missing)
			require.Equal(t, TaskID(1), missing.Task)
			require.Equal(t, JobID(0), missing.Job)
		},
	)
}

// The oracle re-derives the objective from raw start times, independently of
// the evaluator's internals.
func TestEvaluateCostAgainstOracle(t *testing.T) {
	description := contentionDescription()
	description.Parameters.Costs = CostsDescription{
		UnitPenalty: 3,
		Tardiness:   1.5,
	}
	description.Jobs[0].DueDate = 2
	description.Jobs[1].Weight = 2.5

	inst := mustBuildInstance(t, description)
	solution := mustConstruct(t, inst, OrderByReleaseAscending)

	report, errEvaluate := EvaluateCost(inst, solution)
	require.NoError(t, errEvaluate)

	entries, _ := solution.Entries()

	var expectedTotal float64

	for _, jobID := range inst.JobsInDeclaredOrder() {
		job := inst.Jobs[jobID]

		lastTask := job.Sequence[len(job.Sequence)-1]
		completion := entries[lastTask].Start + inst.Tasks[lastTask].ProcessingTime

		var late float64
		var tardiness float64

		if completion > job.DueDate {
			late = 1
			tardiness = float64(completion - job.DueDate)
		}

		expectedTotal += job.Weight * (float64(completion) +
			inst.UnitPenalty*late +
			inst.Tardiness*tardiness)
	}

	require.InDelta(t, expectedTotal, report.Total, 1e-9)
}
