package scheduler

import (
	"fmt"
)

// ErrMissingScheduleEntry signals cost evaluation over a Solution that does
// not cover a task. The evaluator is defined only over feasible solutions;
// feasibility should have been checked first.
type ErrMissingScheduleEntry struct {
	Task TaskID
	Job  JobID
}

func (e ErrMissingScheduleEntry) Error() string {
	return fmt.Sprintf(
		"no schedule entry for task %d of job %d",

		e.Task,
		e.Job,
	)
}

// CostReport is the objective value with its per-job breakdown.
type CostReport struct {
	// Total is sum over jobs of weight * (completion + alpha*late + beta*tardiness).
	Total float64

	CompletionTimes     map[JobID]int64
	TardinessIndicators map[JobID]int
	TardinessAmounts    map[JobID]int64
}

// EvaluateCost computes the weighted objective of a Solution assumed
// feasible. A job's completion time is the completion of the last task in
// its sequence; an empty job completes at its release date.
func EvaluateCost(inst *Instance, sol Solution) (*CostReport, error) {
	entries, _ := sol.Entries()

	report := CostReport{
		CompletionTimes:     make(map[JobID]int64, len(inst.Jobs)),
		TardinessIndicators: make(map[JobID]int, len(inst.Jobs)),
		TardinessAmounts:    make(map[JobID]int64, len(inst.Jobs)),
	}

	for _, jobID := range inst.JobsInDeclaredOrder() {
		job := inst.Jobs[jobID]

		completion := job.ReleaseDate

		for _, taskID := range job.Sequence {
			entry, scheduled := entries[taskID]
			if !scheduled {
				return nil,
					ErrMissingScheduleEntry{
						Task: taskID,
						Job:  jobID,
					}
			}

			completion = entry.Start + inst.Tasks[taskID].ProcessingTime
		}

		var lateIndicator int
		var tardiness int64

		if completion > job.DueDate {
			lateIndicator = 1
			tardiness = completion - job.DueDate
		}

		report.CompletionTimes[jobID] = completion
		report.TardinessIndicators[jobID] = lateIndicator
		report.TardinessAmounts[jobID] = tardiness

		report.Total += job.Weight * (float64(completion) +
			inst.UnitPenalty*float64(lateIndicator) +
			inst.Tardiness*float64(tardiness))
	}

	return &report, nil
}
