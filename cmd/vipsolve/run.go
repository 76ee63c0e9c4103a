package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/varineq/varineq/convex"
	"github.com/varineq/varineq/extragrad"
	"github.com/varineq/varineq/vip"
)

var (
	scenarioName string
	methodName   string
	maxSteps     int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a solver on a bundled scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		prob, err := buildScenario(scenarioName)
		if err != nil {
			return err
		}

		var seq vip.Sequence
		var inner func() int64
		switch methodName {
		case "basic":
			run, err := extragrad.NewMethod(prob, extragrad.DefaultOptions())
			if err != nil {
				return err
			}
			seq, inner = run, run.InnerSteps
		case "inexact":
			run, err := extragrad.NewInexactMethod(prob, extragrad.DefaultInexactOptions())
			if err != nil {
				return err
			}
			seq, inner = run, run.InnerSteps
		default:
			return fmt.Errorf("unknown method %q (want basic or inexact)", methodName)
		}

		logger.Info("starting run", "scenario", scenarioName, "method", methodName, "steps", maxSteps)

		err = vip.Enumerate(seq, func(k int, x []float64) bool {
			logger.Info("iterate", "k", k, "norm", floats.Norm(x, 2))
			logger.Debug("iterate detail", "k", k, "x", x)

			return k < maxSteps
		})
		if err != nil {
			return fmt.Errorf("run failed: %w", err)
		}

		logger.Info("run finished", "inner_steps", inner())

		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&scenarioName, "scenario", "ball", "Scenario: ball (unit ball, F=x) or box (box, affine F)")
	runCmd.Flags().StringVar(&methodName, "method", "basic", "Solver: basic or inexact")
	runCmd.Flags().IntVar(&maxSteps, "steps", 50, "Maximum outer iterations")
}

// buildScenario assembles one of the bundled problems.
func buildScenario(name string) (*vip.Problem, error) {
	switch name {
	case "ball":
		// Unit ball, F(x) = x: unique solution at the origin.
		set, err := convex.NewBall([]float64{0, 0}, 1)
		if err != nil {
			return nil, err
		}

		return vip.New(set, func(x []float64) []float64 {
			return []float64{x[0], x[1]}
		}, vip.WithLipschitz(1))
	case "box":
		// Box [−1,2]², affine F(x) = x − (3, 3): solution pinned at (2, 2).
		set, err := convex.NewBox([]float64{-1, -1}, []float64{2, 2})
		if err != nil {
			return nil, err
		}

		return vip.New(set, func(x []float64) []float64 {
			return []float64{x[0] - 3, x[1] - 3}
		}, vip.WithLipschitz(1))
	default:
		return nil, fmt.Errorf("unknown scenario %q (want ball or box)", name)
	}
}
