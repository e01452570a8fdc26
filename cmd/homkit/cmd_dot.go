package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/homkit/format"
)

var dotCmd = &cobra.Command{
	Use:   "dot <graph>",
	Short: "render a digraph as Graphviz DOT",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mat, err := parseGraph(args[0], flagFormat)
		if err != nil {
			return err
		}
		fmt.Print(format.EmitDOT(mat))
		return nil
	},
}
