package scheduler

import (
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

type (
	JobID      int
	TaskID     int
	MachineID  int
	OperatorID int
)

// MachineOption pairs one machine with the operators qualified to run the
// owning task on it.
type MachineOption struct {
	Machine   MachineID
	Operators []OperatorID
}

func (option *MachineOption) AllowsOperator(id OperatorID) bool {
	for _, operator := range option.Operators {
		if operator == id {
			return true
		}
	}

	return false
}

type Task struct {
	ID             TaskID
	ProcessingTime int64
	Options        []MachineOption
}

// Job is an ordered chain of tasks sharing release date, due date and weight.
type Job struct {
	ID          JobID
	Sequence    []TaskID
	ReleaseDate int64
	DueDate     int64
	Weight      float64
}

// Instance is the static problem description, read-only after BuildInstance.
type Instance struct {
	NumberJobs      int
	NumberTasks     int
	NumberMachines  int
	NumberOperators int

	UnitPenalty float64 // per-job penalty when the job finishes late at all
	Tardiness   float64 // per-time-unit lateness penalty

	Jobs  map[JobID]*Job
	Tasks map[TaskID]*Task

	jobOfTask map[TaskID]JobID
	jobOrder  []JobID // declared order, the stable fallback for job sorting
}

// JobOfTask resolves the owning job of a task.
func (inst *Instance) JobOfTask(id TaskID) (JobID, bool) {
	job, exists := inst.jobOfTask[id]

	return job, exists
}

// JobsInDeclaredOrder returns the job ids as listed in the description.
func (inst *Instance) JobsInDeclaredOrder() []JobID {
	result := make([]JobID, len(inst.jobOrder))
	copy(result, inst.jobOrder)

	return result
}

// InstanceDescription is the structured document consumed by BuildInstance.
type InstanceDescription struct {
	Parameters ParametersDescription `json:"parameters"`
	Jobs       []JobDescription      `json:"jobs"`
	Tasks      []TaskDescription     `json:"tasks"`
}

type ParametersDescription struct {
	Size  SizeDescription  `json:"size"`
	Costs CostsDescription `json:"costs"`
}

type SizeDescription struct {
	NumberJobs      int `json:"nb_jobs"`
	NumberTasks     int `json:"nb_tasks"`
	NumberMachines  int `json:"nb_machines"`
	NumberOperators int `json:"nb_operators"`
}

type CostsDescription struct {
	UnitPenalty float64 `json:"unit_penalty"`
	Tardiness   float64 `json:"tardiness"`
}

type JobDescription struct {
	Job         int     `json:"job"`
	Sequence    []int   `json:"sequence"`
	ReleaseDate int64   `json:"release_date"`
	DueDate     int64   `json:"due_date"`
	Weight      float64 `json:"weight"`
}

type TaskDescription struct {
	Task           int                  `json:"task"`
	ProcessingTime int64                `json:"processing_time"`
	Machines       []MachineDescription `json:"machines"`
}

type MachineDescription struct {
	Machine   int   `json:"machine"`
	Operators []int `json:"operators"`
}

type ParamsBuildInstance struct {
	Description *InstanceDescription `valid:"required"`
}

// BuildInstance validates a description and produces the immutable Instance.
// Every task referenced by a job sequence must exist and belong to exactly
// one job.
func BuildInstance(params *ParamsBuildInstance) (*Instance, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "BuildInstance",
				Issue:  errValidation,
			}
	}

	description := params.Description

	tasks := make(map[TaskID]*Task, len(description.Tasks))

	for ix := range description.Tasks {
		taskDescription := description.Tasks[ix]

		if taskDescription.ProcessingTime < 0 {
			return nil,
				goerrors.ErrValidation{
					Caller: "BuildInstance",
					Issue: goerrors.ErrNegativeInput{
						InputName: fmt.Sprintf("tasks[%d].processing_time", ix),
					},
				}
		}

		if len(taskDescription.Machines) == 0 {
			return nil,
				goerrors.ErrValidation{
					Caller: "BuildInstance",
					Issue: goerrors.ErrInvalidInput{
						InputName: fmt.Sprintf("tasks[%d].machines is empty", ix),
					},
				}
		}

		options := make([]MachineOption, 0, len(taskDescription.Machines))

		for ixMachine, machineDescription := range taskDescription.Machines {
			if len(machineDescription.Operators) == 0 {
				return nil,
					goerrors.ErrValidation{
						Caller: "BuildInstance",
						Issue: goerrors.ErrInvalidInput{
							InputName: fmt.Sprintf(
								"tasks[%d].machines[%d].operators is empty",
								ix,
								ixMachine,
							),
						},
					}
			}

			operators := make([]OperatorID, 0, len(machineDescription.Operators))
			for _, operator := range machineDescription.Operators {
				operators = append(operators, OperatorID(operator))
			}

			options = append(
				options,
				MachineOption{
					Machine:   MachineID(machineDescription.Machine),
					Operators: operators,
				},
			)
		}

		id := TaskID(taskDescription.Task)

		if _, exists := tasks[id]; exists {
			return nil,
				goerrors.ErrValidation{
					Caller: "BuildInstance",
					Issue: goerrors.ErrInvalidInput{
						InputName: fmt.Sprintf("task %d declared twice", id),
					},
				}
		}

		tasks[id] = &Task{
			ID:             id,
			ProcessingTime: taskDescription.ProcessingTime,
			Options:        options,
		}
	}

	jobs := make(map[JobID]*Job, len(description.Jobs))
	jobOfTask := make(map[TaskID]JobID, len(tasks))
	jobOrder := make([]JobID, 0, len(description.Jobs))

	for ix := range description.Jobs {
		jobDescription := description.Jobs[ix]
		id := JobID(jobDescription.Job)

		if _, exists := jobs[id]; exists {
			return nil,
				goerrors.ErrValidation{
					Caller: "BuildInstance",
					Issue: goerrors.ErrInvalidInput{
						InputName: fmt.Sprintf("job %d declared twice", id),
					},
				}
		}

		if jobDescription.Weight <= 0 {
			return nil,
				goerrors.ErrValidation{
					Caller: "BuildInstance",
					Issue: goerrors.ErrInvalidInput{
						InputName: fmt.Sprintf("job %d weight must be positive", id),
					},
				}
		}

		if jobDescription.ReleaseDate < 0 {
			return nil,
				goerrors.ErrValidation{
					Caller: "BuildInstance",
					Issue: goerrors.ErrNegativeInput{
						InputName: fmt.Sprintf("job %d release_date", id),
					},
				}
		}

		sequence := make([]TaskID, 0, len(jobDescription.Sequence))

		for _, rawTask := range jobDescription.Sequence {
			taskID := TaskID(rawTask)

			if _, exists := tasks[taskID]; !exists {
				return nil,
					goerrors.ErrValidation{
						Caller: "BuildInstance",
						Issue: goerrors.ErrInvalidInput{
							InputName: fmt.Sprintf(
								"job %d references unknown task %d",
								id,
								taskID,
							),
						},
					}
			}

			if owner, owned := jobOfTask[taskID]; owned {
				return nil,
					goerrors.ErrValidation{
						Caller: "BuildInstance",
						Issue: goerrors.ErrInvalidInput{
							InputName: fmt.Sprintf(
								"task %d claimed by jobs %d and %d",
								taskID,
								owner,
								id,
							),
						},
					}
			}

			jobOfTask[taskID] = id
			sequence = append(sequence, taskID)
		}

		jobs[id] = &Job{
			ID:          id,
			Sequence:    sequence,
			ReleaseDate: jobDescription.ReleaseDate,
			DueDate:     jobDescription.DueDate,
			Weight:      jobDescription.Weight,
		}

		jobOrder = append(jobOrder, id)
	}

	return &Instance{
			NumberJobs:      description.Parameters.Size.NumberJobs,
			NumberTasks:     description.Parameters.Size.NumberTasks,
			NumberMachines:  description.Parameters.Size.NumberMachines,
			NumberOperators: description.Parameters.Size.NumberOperators,

			UnitPenalty: description.Parameters.Costs.UnitPenalty,
			Tardiness:   description.Parameters.Costs.Tardiness,

			Jobs:  jobs,
			Tasks: tasks,

			jobOfTask: jobOfTask,
			jobOrder:  jobOrder,
		},
		nil
}
