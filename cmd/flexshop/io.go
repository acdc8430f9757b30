package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/flexshop/scheduler"
)

func readInstance(path string) (*scheduler.Instance, error) {
	raw, errRead := os.ReadFile(path)
	if errRead != nil {
		return nil, fmt.Errorf("read instance: %w", errRead)
	}

	var description scheduler.InstanceDescription
	if errDecode := json.Unmarshal(raw, &description); errDecode != nil {
		return nil, fmt.Errorf("decode instance: %w", errDecode)
	}

	return scheduler.BuildInstance(
		&scheduler.ParamsBuildInstance{
			Description: &description,
		},
	)
}

func readSolution(path string) (scheduler.Solution, error) {
	raw, errRead := os.ReadFile(path)
	if errRead != nil {
		return nil, fmt.Errorf("read solution: %w", errRead)
	}

	var solution scheduler.Solution
	if errDecode := json.Unmarshal(raw, &solution); errDecode != nil {
		return nil, fmt.Errorf("decode solution: %w", errDecode)
	}

	return solution, nil
}

func writeSolution(path string, solution scheduler.Solution) error {
	raw, errEncode := json.MarshalIndent(solution, "", "  ")
	if errEncode != nil {
		return fmt.Errorf("encode solution: %w", errEncode)
	}

	if path == "" {
		_, errWrite := fmt.Println(string(raw))

		return errWrite
	}

	return os.WriteFile(path, append(raw, '\n'), 0o644)
}
