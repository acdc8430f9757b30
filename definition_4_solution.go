package scheduler

// ScheduleEntry assigns one task a start time and a (machine, operator) pair.
type ScheduleEntry struct {
	Task     TaskID     `json:"task"`
	Start    int64      `json:"start"`
	Machine  MachineID  `json:"machine"`
	Operator OperatorID `json:"operator"`
}

// Solution is one schedule entry per task, order-independent. It is an
// immutable value object once produced; checker and evaluator never mutate it.
type Solution []ScheduleEntry

// Entries indexes the solution by task id. The second map counts occurrences
// so callers can spot duplicates; the indexed entry is the first occurrence.
func (sol Solution) Entries() (map[TaskID]ScheduleEntry, map[TaskID]int) {
	entries := make(map[TaskID]ScheduleEntry, len(sol))
	occurrences := make(map[TaskID]int, len(sol))

	for _, entry := range sol {
		if _, exists := entries[entry.Task]; !exists {
			entries[entry.Task] = entry
		}

		occurrences[entry.Task]++
	}

	return entries, occurrences
}
