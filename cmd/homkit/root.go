package main

import (
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/homkit/internal/logx"
)

// Global flags shared by every subcommand (spec §4.9).
var (
	flagFormat  string
	flagStats   string
	flagWorkers int
	flagColor   string

	log = logx.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "homkit",
	Short: "homomorphism, core, and polymorphism decisions for finite digraphs",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		colorEnabled = resolveColorMode(colorMode(flagColor))
		log = logx.New(nil, slog.LevelInfo)
		log.Info("homkit invoked", "command", cmd.Name())
		if flagWorkers <= 0 {
			flagWorkers = runtime.GOMAXPROCS(0)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "auto",
		"graph input format: auto, edgelist, csv, named, triad")
	rootCmd.PersistentFlags().StringVar(&flagStats, "stats", "",
		"write the persisted-result CSV to this path")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0,
		"worker count for parallel core filtering (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"colorize output: force, auto, never")

	rootCmd.AddCommand(endomorphismCmd)
	rootCmd.AddCommand(homomorphismCmd)
	rootCmd.AddCommand(polymorphismCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(dotCmd)
}
