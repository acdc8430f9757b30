package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/flexshop/scheduler"
)

var (
	evaluateInstancePath string
	evaluateSolutionPath string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Compute the weighted objective of a feasible solution",
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateInstancePath, "instance", "i", "", "instance description file")
	evaluateCmd.Flags().StringVarP(&evaluateSolutionPath, "solution", "s", "", "solution file")

	for _, flag := range []string{"instance", "solution"} {
		if err := evaluateCmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	inst, errInstance := readInstance(evaluateInstancePath)
	if errInstance != nil {
		return errInstance
	}

	solution, errSolution := readSolution(evaluateSolutionPath)
	if errSolution != nil {
		return errSolution
	}

	report, errEvaluate := scheduler.EvaluateCost(inst, solution)
	if errEvaluate != nil {
		return errEvaluate
	}

	jobs := make([]scheduler.JobID, 0, len(report.CompletionTimes))
	for jobID := range report.CompletionTimes {
		jobs = append(jobs, jobID)
	}

	sort.Slice(
		jobs,
		func(i, j int) bool { return jobs[i] < jobs[j] },
	)

	for _, jobID := range jobs {
		fmt.Printf(
			"job %d: completion %d, late %d, tardiness %d\n",

			jobID,
			report.CompletionTimes[jobID],
			report.TardinessIndicators[jobID],
			report.TardinessAmounts[jobID],
		)
	}

	fmt.Printf("total cost: %.4f\n", report.Total)

	return nil
}
