package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd(log *logrus.Logger) *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "chiton",
		Short:         "Lowest-risk path search over a chiton cave map",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("%w: --log-level: %v", errBadFlag, err)
			}
			log.SetLevel(lvl)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "warning", "Log level: trace|debug|info|warning|error")

	root.AddCommand(newSolveCmd(log), newServeCmd(log))
	return root
}
