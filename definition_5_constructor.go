package scheduler

import (
	"fmt"
	"sort"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderPolicy decides the order in which jobs are scheduled.
type OrderPolicy uint8

const (
	OrderByReleaseAscending OrderPolicy = iota + 1
	OrderByWeightDescending
)

func ParseOrderPolicy(raw string) (OrderPolicy, error) {
	switch raw {
	case "by_release_ascending":
		return OrderByReleaseAscending, nil

	case "by_weight_descending":
		return OrderByWeightDescending, nil

	default:
		return 0,
			goerrors.ErrValidation{
				Caller: "ParseOrderPolicy",
				Issue: goerrors.ErrInvalidInput{
					InputName: fmt.Sprintf("order policy %q", raw),
				},
			}
	}
}

// _HorizonSafetyMargin pads the derived horizon so a feasible instance does
// not fail construction on an exact-fit bound.
const _HorizonSafetyMargin = 50

// DefaultHorizon is max release date + total processing time + safety margin.
func (inst *Instance) DefaultHorizon() int64 {
	var maxRelease, totalProcessing int64

	for _, job := range inst.Jobs {
		if job.ReleaseDate > maxRelease {
			maxRelease = job.ReleaseDate
		}
	}

	for _, task := range inst.Tasks {
		totalProcessing += task.ProcessingTime
	}

	return maxRelease + totalProcessing + _HorizonSafetyMargin
}

// ErrConstructionExhausted reports that no (machine, operator, start) choice
// exists within the horizon for a task. The caller decides whether to retry
// with a larger horizon or another ordering policy.
type ErrConstructionExhausted struct {
	Task    TaskID
	Job     JobID
	Horizon int64
}

func (e ErrConstructionExhausted) Error() string {
	return fmt.Sprintf(
		"no feasible slot for task %d of job %d within horizon %d",

		e.Task,
		e.Job,
		e.Horizon,
	)
}

type ParamsConstructSolution struct {
	Instance *Instance

	OrderPolicy OrderPolicy

	// Horizon caps start times; zero means Instance.DefaultHorizon().
	Horizon int64

	// Logger enables per-task construction traces when set.
	Logger *zerolog.Logger
}

// IsValid is hand-written: the Instance maps are beyond what struct-tag
// validation can express.
func (params *ParamsConstructSolution) IsValid() error {
	if params.Instance == nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsConstructSolution",
			Issue: goerrors.ErrNilInput{
				InputName: "Instance",
			},
		}
	}

	if params.OrderPolicy != OrderByReleaseAscending &&
		params.OrderPolicy != OrderByWeightDescending {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsConstructSolution",
			Issue: goerrors.ErrInvalidInput{
				InputName: "OrderPolicy",
			},
		}
	}

	if params.Horizon < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsConstructSolution",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Horizon",
			},
		}
	}

	return nil
}

// ConstructSolution builds one feasible Solution greedily: jobs in policy
// order, tasks in sequence order, each task placed at the smallest start time
// any compatible (machine, operator) pair can agree on. It either covers
// every task or fails with ErrConstructionExhausted, never returning a
// partial Solution.
func ConstructSolution(params *ParamsConstructSolution) (Solution, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	inst := params.Instance

	horizon := params.Horizon
	if horizon == 0 {
		horizon = inst.DefaultHorizon()
	}

	logger := zerolog.Nop()
	if params.Logger != nil {
		logger = params.Logger.With().
			Str("run_id", uuid.NewString()).
			Logger()
	}

	machines := make(map[MachineID]*Timeline)
	operators := make(map[OperatorID]*Timeline)

	timelineOfMachine := func(id MachineID) *Timeline {
		if _, exists := machines[id]; !exists {
			machines[id] = NewTimeline()
		}

		return machines[id]
	}

	timelineOfOperator := func(id OperatorID) *Timeline {
		if _, exists := operators[id]; !exists {
			operators[id] = NewTimeline()
		}

		return operators[id]
	}

	solution := make(Solution, 0, len(inst.Tasks))

	for _, jobID := range orderJobs(inst, params.OrderPolicy) {
		job := inst.Jobs[jobID]
		earliest := job.ReleaseDate

		for _, taskID := range job.Sequence {
			task := inst.Tasks[taskID]

			bestStart := _NoAvailability

			var bestMachine MachineID
			var bestOperator OperatorID

			for ixOption := range task.Options {
				option := &task.Options[ixOption]
				machine := timelineOfMachine(option.Machine)

				machineSlot := machine.EarliestFreeSlot(
					earliest,
					task.ProcessingTime,
					horizon,
				)
				if machineSlot == _NoAvailability {
					continue
				}

				for _, operatorID := range option.Operators {
					operator := timelineOfOperator(operatorID)

					operatorSlot := operator.EarliestFreeSlot(
						earliest,
						task.ProcessingTime,
						horizon,
					)
					if operatorSlot == _NoAvailability {
						continue
					}

					start := earliestJointSlot(
						machine,
						operator,
						max(machineSlot, operatorSlot),
						task.ProcessingTime,
						horizon,
					)
					if start == _NoAvailability {
						continue
					}

					// Strict comparison keeps the first-listed pair on ties.
					if bestStart == _NoAvailability || start < bestStart {
						bestStart = start
						bestMachine = option.Machine
						bestOperator = operatorID
					}
				}
			}

			if bestStart == _NoAvailability {
				return nil,
					ErrConstructionExhausted{
						Task:    taskID,
						Job:     jobID,
						Horizon: horizon,
					}
			}

			timelineOfMachine(bestMachine).Commit(bestStart, task.ProcessingTime)
			timelineOfOperator(bestOperator).Commit(bestStart, task.ProcessingTime)

			solution = append(
				solution,
				ScheduleEntry{
					Task:     taskID,
					Start:    bestStart,
					Machine:  bestMachine,
					Operator: bestOperator,
				},
			)

			earliest = bestStart + task.ProcessingTime

			logger.Debug().
				Int("job", int(jobID)).
				Int("task", int(taskID)).
				Int64("start", bestStart).
				Int("machine", int(bestMachine)).
				Int("operator", int(bestOperator)).
				Msg("task placed")
		}
	}

	logger.Info().
		Int("tasks", len(solution)).
		Int64("horizon", horizon).
		Msg("construction finished")

	return solution, nil
}

// earliestJointSlot scans forward from timeStart until machine and operator
// are free at the same start. One resource free is necessary but not
// sufficient, both must agree on the same time.
func earliestJointSlot(
	machine *Timeline,
	operator *Timeline,
	timeStart, duration, horizon int64,
) int64 {
	for candidate := timeStart; candidate <= horizon; candidate++ {
		if machine.IsFree(candidate, duration) &&
			operator.IsFree(candidate, duration) {
			return candidate
		}
	}

	return _NoAvailability
}

// orderJobs sorts stably over the declared job order, so equal keys fall back
// to input order.
func orderJobs(inst *Instance, policy OrderPolicy) []JobID {
	ordered := inst.JobsInDeclaredOrder()

	switch policy {
	case OrderByReleaseAscending:
		sort.SliceStable(
			ordered,
			func(i, j int) bool {
				return inst.Jobs[ordered[i]].ReleaseDate < inst.Jobs[ordered[j]].ReleaseDate
			},
		)

	case OrderByWeightDescending:
		sort.SliceStable(
			ordered,
			func(i, j int) bool {
				return inst.Jobs[ordered[i]].Weight > inst.Jobs[ordered[j]].Weight
			},
		)
	}

	return ordered
}
