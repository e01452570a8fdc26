package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/homkit/condition"
	"github.com/katalvlaran/homkit/format"
	"github.com/katalvlaran/homkit/indicator"
	"github.com/katalvlaran/homkit/solver"
)

var (
	flagConditionArity int
	flagLevelWise      bool
	flagConservative   bool
	flagIdempotent     bool
)

var polymorphismCmd = &cobra.Command{
	Use:   "polymorphism <graph> <condition>",
	Short: "decide whether a digraph admits a polymorphism of the given equational condition",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := parseGraph(args[0], flagFormat)
		if err != nil {
			return err
		}
		cond, err := condition.Lookup(args[1], flagConditionArity)
		if err != nil {
			return err
		}

		cfg := indicator.Config{
			LevelWise:    flagLevelWise,
			Conservative: flagConservative,
			Idempotent:   flagIdempotent,
			Log:          log,
		}
		inst, _, err := indicator.Build(h, cond, cfg)
		if err != nil {
			return err
		}

		s := solver.New(inst, solver.WithRecordStats(true), solver.WithLogger(log))
		start := time.Now()
		assign := s.SolveFirst()
		total := time.Since(start)

		if assign == nil {
			printFailure("no polymorphism of type " + args[1])
		} else {
			printSuccess("polymorphism of type " + args[1] + " exists")
		}

		if flagStats != "" {
			stats := s.Stats()
			return appendStats(flagStats, format.ResultRecord{
				Tree:       args[0] + " / " + args[1],
				Found:      assign != nil,
				Backtracks: stats.Backtracks,
				AC3Time:    stats.AC3Time.Seconds(),
				MAC3Time:   stats.SearchTime.Seconds(),
				TotalTime:  total.Seconds(),
			})
		}
		return nil
	},
}

func init() {
	polymorphismCmd.Flags().IntVar(&flagConditionArity, "n", 3,
		"arity or chain-length parameter for conditions that take one (nu, wnu, jonsson, kearnes-kiss, hagemann-mitschke, hobby-mckenzie, noname)")
	polymorphismCmd.Flags().BoolVar(&flagLevelWise, "level-wise", false,
		"restrict the power graph to level-homogeneous tuples (requires H balanced)")
	polymorphismCmd.Flags().BoolVar(&flagConservative, "conservative", false,
		"restrict each label's domain to the tuple's own value set")
	polymorphismCmd.Flags().BoolVar(&flagIdempotent, "idempotent", false,
		"precolor constant tuples to their own value")
}
