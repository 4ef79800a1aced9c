// Command planner computes a shortest macro-operation plan for the
// arithmetic chaining domain and prints it step by step. The problem is
// given either via flags or a YAML file:
//
//	planner --left 3 --right 2 --target 32
//	planner --config problem.yaml --log-level debug
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/skoeber/policykit"
	"github.com/skoeber/policykit/arith"
	"github.com/skoeber/policykit/engine"
	"github.com/skoeber/policykit/logging"
)

// problem is the YAML shape of a planning task.
type problem struct {
	Left     int      `yaml:"left"`
	Right    int      `yaml:"right"`
	Target   int      `yaml:"target"`
	Ops      []string `yaml:"ops"`
	MaxValue int      `yaml:"max_value"`
	CostMode string   `yaml:"cost_mode"`
}

func main() {
	var (
		configPath string
		logLevel   string
		prob       problem
	)

	cmd := &cobra.Command{
		Use:           "planner",
		Short:         "Plan a shortest chain of arithmetic macro operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				data, err := os.ReadFile(configPath)
				if err != nil {
					return fmt.Errorf("failed to read config: %w", err)
				}
				if err := yaml.Unmarshal(data, &prob); err != nil {
					return fmt.Errorf("failed to parse config: %w", err)
				}
			}
			return run(prob, logLevel)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML problem file (overrides the numeric flags)")
	cmd.Flags().IntVar(&prob.Left, "left", 3, "initial left operand")
	cmd.Flags().IntVar(&prob.Right, "right", 2, "initial right operand")
	cmd.Flags().IntVar(&prob.Target, "target", 32, "target value")
	cmd.Flags().StringSliceVar(&prob.Ops, "ops", nil, "allowed operations (default +,-,#)")
	cmd.Flags().IntVar(&prob.MaxValue, "max-value", 0, "operand bound (default 10000)")
	cmd.Flags().StringVar(&prob.CostMode, "cost-mode", "", "cost mode: uniform or realistic")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "planner:", err)
		os.Exit(1)
	}
}

func run(prob problem, logLevel string) error {
	dom, err := arith.NewDomain(prob.Left, prob.Right, prob.Target, func(o *arith.Options) {
		if len(prob.Ops) > 0 {
			o.Ops = o.Ops[:0]
			for _, op := range prob.Ops {
				o.Ops = append(o.Ops, arith.Op(op))
			}
		}
		if prob.MaxValue > 0 {
			o.MaxValue = prob.MaxValue
		}
		if prob.CostMode != "" {
			o.CostMode = arith.CostMode(prob.CostMode)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid problem: %w", err)
	}

	logger := logging.NewSlogLogger(parseLevel(logLevel), "text", false)

	eng, err := policykit.FromDomain(dom, func(o *engine.Options[arith.State, arith.Op]) {
		o.Logger = logger
	})
	if err != nil {
		return fmt.Errorf("failed to compute policy: %w", err)
	}

	start := dom.InitialState()
	path := eng.FullPath(start)

	fmt.Printf("plan %s -> %d (%d steps, %d states expanded)\n",
		start, dom.Target(), len(path), eng.Expanded())
	current := start
	for i, step := range path {
		fmt.Printf("  %2d. %s  %s -> %s\n", i+1, step.Action, current, step.State)
		current = step.State
	}
	if current.Left != dom.Target() || current.Right != 0 {
		return fmt.Errorf("no plan from %s to %d within bounds", start, dom.Target())
	}
	return nil
}

func parseLevel(s string) logging.LogLevel {
	switch s {
	case "debug":
		return logging.LogLevelDebug
	case "info":
		return logging.LogLevelInfo
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelWarn
	}
}
