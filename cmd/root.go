// Package cmd is for command line interactions with the chromdetect
// application
package cmd

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shandley/chromdetect/internal/chromdetect"
)

// Exit codes follow sysexits.h conventions.
const (
	exitError   = 1
	exitDataErr = 65
	exitNoInput = 66
	exitConfig  = 78
)

var (
	logger = log.New(os.Stderr)

	verbose bool
	quiet   bool
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "chromdetect",
	Short: `Detect chromosome-level scaffolds in genome assemblies.
Classification combines naming conventions, size heuristics, and optional
karyotype or NCBI assembly-report information`,
	Version: "0.3.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch {
		case quiet:
			logger.SetLevel(log.ErrorLevel)
		case verbose:
			logger.SetLevel(log.DebugLevel)
		default:
			logger.SetLevel(log.InfoLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(exitError)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show detailed processing information")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress messages")
}

// fail logs the error and exits with a code matching its taxonomy:
// configuration faults, data faults, and missing inputs each get their
// own sysexits code.
func fail(err error) {
	logger.Error(err.Error())
	switch {
	case errors.Is(err, chromdetect.ErrConfig):
		os.Exit(exitConfig)
	case errors.Is(err, chromdetect.ErrData):
		os.Exit(exitDataErr)
	case errors.Is(err, os.ErrNotExist):
		os.Exit(exitNoInput)
	default:
		os.Exit(exitError)
	}
}
