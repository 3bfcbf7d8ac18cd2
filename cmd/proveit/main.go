// Package main implements proveit, the demonstration CLI for the inference
// engine core (spec.md §6's "As a standalone tool" surface).
//
// It wires the five provers (resolution, modal tableau, CLP, SMT bridge,
// analogical) behind the coordinator and runs one of a handful of built-in
// scenarios drawn from spec.md §8, printing the resulting ProofObject. There
// is no text-to-AST parser in this module (goals are built programmatically
// as ast.Node values, not parsed from a surface syntax), so "run a scenario
// by name" stands in for "type a logic query" — see DESIGN.md.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Steake/godelos-core/obslog"
)

var (
	verbose      bool
	maxTimeMs    int64
	maxSteps     int
	strategyHint string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "proveit",
	Short: "proveit - multi-strategy inference engine demonstration CLI",
	Long: `proveit dispatches logic goals across five proof strategies
(resolution, modal tableau, constraint logic programming, an SMT bridge,
and analogical reasoning) through a priority-ordered coordinator.

Run without arguments to list the built-in scenarios.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		obslog.Replace(logger)
		obslog.SetEnabled(verbose)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return listScenarios(cmd, args)
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Int64Var(&maxTimeMs, "max-time-ms", 5000, "wall-clock budget per goal")
	rootCmd.PersistentFlags().IntVar(&maxSteps, "max-steps", 10000, "step budget per goal")
	rootCmd.PersistentFlags().StringVar(&strategyHint, "strategy", "", "force a specific prover by name")

	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the built-in demonstration scenarios",
	RunE:  listScenarios,
}

func listScenarios(cmd *cobra.Command, args []string) error {
	fmt.Println("Built-in scenarios (run with: proveit run <name>):")
	for _, s := range allScenarios() {
		fmt.Printf("  %-16s %s\n", s.Name, s.Description)
	}
	return nil
}

var runCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "Submit a built-in scenario's goal to the coordinator",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenario,
}

func runScenario(cmd *cobra.Command, args []string) error {
	name := args[0]
	var chosen *scenario
	for _, s := range allScenarios() {
		if s.Name == name {
			sc := s
			chosen = &sc
			break
		}
	}
	if chosen == nil {
		return fmt.Errorf("unknown scenario %q (see: proveit scenarios)", name)
	}

	coord := buildCoordinator()
	budget := chosen.Budget
	if maxTimeMs > 0 {
		budget.MaxTimeMs = maxTimeMs
	}
	if maxSteps > 0 {
		budget.MaxSteps = maxSteps
	}

	hint := strategyHint
	if hint == "" {
		hint = chosen.StrategyHint
	}

	start := time.Now()
	result := coord.SubmitGoal(chosen.Goal, chosen.Context, hint, budget)

	fmt.Printf("scenario:   %s\n", chosen.Name)
	fmt.Printf("engine:     %s\n", result.Engine)
	fmt.Printf("achieved:   %v\n", result.Achieved)
	fmt.Printf("status:     %s\n", result.Status)
	fmt.Printf("time_ms:    %.2f (wall %.2f)\n", result.TimeMs, float64(time.Since(start))/float64(time.Millisecond))
	if result.ConclusionText != "" {
		fmt.Printf("conclusion: %s\n", result.ConclusionText)
	}
	if len(result.BindingsText) > 0 {
		fmt.Println("bindings:")
		for k, v := range result.BindingsText {
			fmt.Printf("  %s = %s\n", k, v)
		}
	}
	for i, step := range result.Steps {
		fmt.Printf("step %3d: [%s] %s (%s)\n", i, step.RuleName, step.FormulaText, step.Explanation)
	}
	if !result.Achieved {
		os.Exit(1)
	}
	return nil
}
