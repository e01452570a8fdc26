package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/homkit/csp"
	"github.com/katalvlaran/homkit/digraph"
	"github.com/katalvlaran/homkit/format"
	"github.com/katalvlaran/homkit/solver"
)

var flagPrecolor string

var homomorphismCmd = &cobra.Command{
	Use:   "homomorphism <from> <to>",
	Short: "decide whether a homomorphism from one digraph to another exists",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := parseGraph(args[0], flagFormat)
		if err != nil {
			return err
		}
		h, err := parseGraph(args[1], flagFormat)
		if err != nil {
			return err
		}
		return runHomomorphism(g, h, args[0])
	},
}

var endomorphismCmd = &cobra.Command{
	Use:   "endomorphism <graph>",
	Short: "decide whether an endomorphism (a homomorphism to itself) of a digraph exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := parseGraph(args[0], flagFormat)
		if err != nil {
			return err
		}
		return runHomomorphism(g, g, args[0])
	},
}

func init() {
	homomorphismCmd.Flags().StringVar(&flagPrecolor, "precolor", "", "precolouring, e.g. \"0:1,2:3\"")
	endomorphismCmd.Flags().StringVar(&flagPrecolor, "precolor", "", "precolouring, e.g. \"0:1,2:3\"")
}

func runHomomorphism(g, h *digraph.Matrix, treeLabel string) error {
	var inst *csp.Instance
	if flagPrecolor != "" {
		p, err := format.ParsePrecolor(flagPrecolor)
		if err != nil {
			return err
		}
		inst = csp.Precolor(g, h, p)
	} else {
		inst = csp.NoList(g, h)
	}

	s := solver.New(inst, solver.WithRecordStats(true), solver.WithLogger(log))
	start := time.Now()
	assign := s.SolveFirst()
	total := time.Since(start)

	if assign == nil {
		printFailure("does not exist")
	} else {
		printSuccess("exists")
		log.Info("homomorphism found", "assignment", assign)
	}

	if flagStats != "" {
		stats := s.Stats()
		return appendStats(flagStats, format.ResultRecord{
			Tree:       treeLabel,
			Found:      assign != nil,
			Backtracks: stats.Backtracks,
			AC3Time:    stats.AC3Time.Seconds(),
			MAC3Time:   stats.SearchTime.Seconds(),
			TotalTime:  total.Seconds(),
		})
	}
	return nil
}
