package scheduler

import (
	"fmt"
	"sort"
)

type ViolationKind uint8

const (
	ViolationDuplicateEntry ViolationKind = iota + 1
	ViolationMissingEntry
	ViolationNegativeStart
	ViolationReleaseBreach
	ViolationPrecedenceBreach
	ViolationMachineNotAllowed
	ViolationOperatorNotAllowed
	ViolationResourceOverlap
)

func (kind ViolationKind) String() string {
	switch kind {
	case ViolationDuplicateEntry:
		return "duplicate entry"
	case ViolationMissingEntry:
		return "missing entry"
	case ViolationNegativeStart:
		return "negative start"
	case ViolationReleaseBreach:
		return "release date breach"
	case ViolationPrecedenceBreach:
		return "precedence breach"
	case ViolationMachineNotAllowed:
		return "machine not allowed"
	case ViolationOperatorNotAllowed:
		return "operator not allowed"
	case ViolationResourceOverlap:
		return "resource overlap"
	default:
		return "unknown"
	}
}

// Violation is one hard-constraint breach. Violations are values, not errors:
// a caller debugging a hand-edited solution needs every defect at once.
type Violation struct {
	Kind   ViolationKind
	Task   TaskID
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf(
		"%s: task %d: %s",

		v.Kind,
		v.Task,
		v.Detail,
	)
}

// CheckFeasibility verifies any Solution against any Instance and returns the
// verdict plus every violation found. The checks never short-circuit each
// other and rebuild all resource timelines from the Solution alone, so
// externally supplied solutions are validated on equal footing.
func CheckFeasibility(inst *Instance, sol Solution) (bool, []Violation) {
	var violations []Violation

	entries, occurrences := sol.Entries()

	// Coverage: exactly one entry per instance task.
	for _, taskID := range sortedTaskIDs(inst) {
		switch count := occurrences[taskID]; {
		case count == 0:
			violations = append(
				violations,
				Violation{
					Kind:   ViolationMissingEntry,
					Task:   taskID,
					Detail: "no schedule entry",
				},
			)

		case count > 1:
			violations = append(
				violations,
				Violation{
					Kind:   ViolationDuplicateEntry,
					Task:   taskID,
					Detail: fmt.Sprintf("%d schedule entries", count),
				},
			)
		}
	}

	// Non-negativity.
	for _, entry := range sol {
		if entry.Start < 0 {
			violations = append(
				violations,
				Violation{
					Kind:   ViolationNegativeStart,
					Task:   entry.Task,
					Detail: fmt.Sprintf("start %d", entry.Start),
				},
			)
		}
	}

	// Precedence: release date for the first task, completion chaining after.
	// Missing entries were reported under coverage and are skipped here.
	for _, jobID := range inst.JobsInDeclaredOrder() {
		job := inst.Jobs[jobID]
		previousCompletion := int64(-1)

		for ixTask, taskID := range job.Sequence {
			entry, scheduled := entries[taskID]
			if !scheduled {
				continue
			}

			if ixTask == 0 || previousCompletion == -1 {
				if entry.Start < job.ReleaseDate {
					violations = append(
						violations,
						Violation{
							Kind: ViolationReleaseBreach,
							Task: taskID,
							Detail: fmt.Sprintf(
								"start %d before release date %d of job %d",
								entry.Start,
								job.ReleaseDate,
								jobID,
							),
						},
					)
				}
			} else if entry.Start < previousCompletion {
				violations = append(
					violations,
					Violation{
						Kind: ViolationPrecedenceBreach,
						Task: taskID,
						Detail: fmt.Sprintf(
							"start %d before completion %d of predecessor in job %d",
							entry.Start,
							previousCompletion,
							jobID,
						),
					},
				)
			}

			previousCompletion = entry.Start + inst.Tasks[taskID].ProcessingTime
		}
	}

	// Resource compatibility: machine among the task's options, operator in
	// that option's set.
	for _, entry := range sol {
		task, known := inst.Tasks[entry.Task]
		if !known {
			violations = append(
				violations,
				Violation{
					Kind:   ViolationMachineNotAllowed,
					Task:   entry.Task,
					Detail: "task not part of the instance",
				},
			)

			continue
		}

		option := optionForMachine(task, entry.Machine)
		if option == nil {
			violations = append(
				violations,
				Violation{
					Kind:   ViolationMachineNotAllowed,
					Task:   entry.Task,
					Detail: fmt.Sprintf("machine %d not among allowed options", entry.Machine),
				},
			)

			continue
		}

		if !option.AllowsOperator(entry.Operator) {
			violations = append(
				violations,
				Violation{
					Kind: ViolationOperatorNotAllowed,
					Task: entry.Task,
					Detail: fmt.Sprintf(
						"operator %d not qualified on machine %d",
						entry.Operator,
						entry.Machine,
					),
				},
			)
		}
	}

	violations = append(
		violations,
		overlapViolations(inst, sol)...,
	)

	return len(violations) == 0, violations
}

func optionForMachine(task *Task, machine MachineID) *MachineOption {
	for ix := range task.Options {
		if task.Options[ix].Machine == machine {
			return &task.Options[ix]
		}
	}

	return nil
}

type committedInterval struct {
	Task     TaskID
	Interval TimeInterval
}

// overlapViolations rebuilds per-resource interval sets from the Solution and
// reports every pair of overlapping intervals on the same resource.
func overlapViolations(inst *Instance, sol Solution) []Violation {
	machineIntervals := make(map[MachineID][]committedInterval)
	operatorIntervals := make(map[OperatorID][]committedInterval)

	for _, entry := range sol {
		task, known := inst.Tasks[entry.Task]
		if !known {
			continue
		}

		interval := TimeInterval{
			TimeStart: entry.Start,
			TimeEnd:   entry.Start + task.ProcessingTime,
		}

		machineIntervals[entry.Machine] = append(
			machineIntervals[entry.Machine],
			committedInterval{Task: entry.Task, Interval: interval},
		)
		operatorIntervals[entry.Operator] = append(
			operatorIntervals[entry.Operator],
			committedInterval{Task: entry.Task, Interval: interval},
		)
	}

	var violations []Violation

	for _, machineID := range sortedKeys(machineIntervals) {
		violations = append(
			violations,
			resourceOverlaps(
				fmt.Sprintf("machine %d", machineID),
				machineIntervals[machineID],
			)...,
		)
	}

	for _, operatorID := range sortedKeys(operatorIntervals) {
		violations = append(
			violations,
			resourceOverlaps(
				fmt.Sprintf("operator %d", operatorID),
				operatorIntervals[operatorID],
			)...,
		)
	}

	return violations
}

func resourceOverlaps(resource string, committed []committedInterval) []Violation {
	sort.SliceStable(
		committed,
		func(i, j int) bool {
			if committed[i].Interval.TimeStart != committed[j].Interval.TimeStart {
				return committed[i].Interval.TimeStart < committed[j].Interval.TimeStart
			}

			return committed[i].Task < committed[j].Task
		},
	)

	var violations []Violation

	for ix := range committed {
		for ixNext := ix + 1; ixNext < len(committed); ixNext++ {
			if !committed[ix].Interval.Overlaps(&committed[ixNext].Interval) {
				if committed[ixNext].Interval.TimeStart >= committed[ix].Interval.TimeEnd {
					break // sorted by start, nothing further can overlap ix
				}

				continue
			}

			violations = append(
				violations,
				Violation{
					Kind: ViolationResourceOverlap,
					Task: committed[ix].Task,
					Detail: fmt.Sprintf(
						"[%d-%d) collides with task %d [%d-%d) on %s",
						committed[ix].Interval.TimeStart,
						committed[ix].Interval.TimeEnd,
						committed[ixNext].Task,
						committed[ixNext].Interval.TimeStart,
						committed[ixNext].Interval.TimeEnd,
						resource,
					),
				},
			)
		}
	}

	return violations
}

func sortedTaskIDs(inst *Instance) []TaskID {
	ids := make([]TaskID, 0, len(inst.Tasks))
	for id := range inst.Tasks {
		ids = append(ids, id)
	}

	sort.Slice(
		ids,
		func(i, j int) bool { return ids[i] < ids[j] },
	)

	return ids
}

func sortedKeys[K ~int, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Slice(
		keys,
		func(i, j int) bool { return keys[i] < keys[j] },
	)

	return keys
}
