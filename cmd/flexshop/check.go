package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flexshop/scheduler"
)

var (
	checkInstancePath string
	checkSolutionPath string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify a solution against every hard constraint",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkInstancePath, "instance", "i", "", "instance description file")
	checkCmd.Flags().StringVarP(&checkSolutionPath, "solution", "s", "", "solution file")

	for _, flag := range []string{"instance", "solution"} {
		if err := checkCmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	inst, errInstance := readInstance(checkInstancePath)
	if errInstance != nil {
		return errInstance
	}

	solution, errSolution := readSolution(checkSolutionPath)
	if errSolution != nil {
		return errSolution
	}

	feasible, violations := scheduler.CheckFeasibility(inst, solution)
	if feasible {
		fmt.Println("feasible")

		return nil
	}

	for _, violation := range violations {
		fmt.Println(violation.String())
	}

	return fmt.Errorf("solution is infeasible: %d violations", len(violations))
}
