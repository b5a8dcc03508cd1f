package main

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var logLevel string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vhdlang",
		Short:         "vhdlang analyzes VHDL sources",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "off", "log level (off, error, info, debug, trace)")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newDumpTokensCmd())
	root.AddCommand(newDumpAstCmd())
	return root
}

func newLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  "vhdlang",
		Level: hclog.LevelFromString(logLevel),
	})
}
