package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flexshop/scheduler"
	"github.com/flexshop/scheduler/config"
	"github.com/flexshop/scheduler/logger"
)

var (
	solveInstancePath string
	solveOutputPath   string
	solvePolicy       string
	solveHorizon      int64
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Construct a feasible schedule for an instance",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveInstancePath, "instance", "i", "", "instance description file")
	solveCmd.Flags().StringVarP(&solveOutputPath, "output", "o", "", "solution output file (stdout when empty)")
	solveCmd.Flags().StringVar(&solvePolicy, "policy", "", "job ordering policy, overrides config")
	solveCmd.Flags().Int64Var(&solveHorizon, "horizon", 0, "start-time bound, overrides config")

	if err := solveCmd.MarkFlagRequired("instance"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, errLoad := config.Load(cfgPath)
	if errLoad != nil {
		return fmt.Errorf("load config: %w", errLoad)
	}

	logger.SetLevel(cfg.Logging.Level)
	logg := logger.New("solve")

	rawPolicy := cfg.Solver.OrderPolicy
	if solvePolicy != "" {
		rawPolicy = solvePolicy
	}

	policy, errParse := scheduler.ParseOrderPolicy(rawPolicy)
	if errParse != nil {
		return errParse
	}

	horizon := cfg.Solver.Horizon
	if solveHorizon != 0 {
		horizon = solveHorizon
	}

	inst, errInstance := readInstance(solveInstancePath)
	if errInstance != nil {
		return errInstance
	}

	solution, errConstruct := scheduler.ConstructSolution(
		&scheduler.ParamsConstructSolution{
			Instance:    inst,
			OrderPolicy: policy,
			Horizon:     horizon,
			Logger:      &logg,
		},
	)
	if errConstruct != nil {
		return fmt.Errorf("construction failed: %w", errConstruct)
	}

	if feasible, violations := scheduler.CheckFeasibility(inst, solution); !feasible {
		for _, violation := range violations {
			logg.Error().Msg(violation.String())
		}

		return fmt.Errorf("constructed solution is infeasible: %d violations", len(violations))
	}

	report, errEvaluate := scheduler.EvaluateCost(inst, solution)
	if errEvaluate != nil {
		return errEvaluate
	}

	logg.Info().
		Float64("total_cost", report.Total).
		Int("tasks", len(solution)).
		Msg("schedule constructed")

	return writeSolution(solveOutputPath, solution)
}
