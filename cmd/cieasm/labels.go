package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/cieasm/cpu"
)

func newLabelsCmd(opts *options) (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "labels file.cie",
		Short: f("List the labels defined by a program"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			inf, err := os.Open(args[0])
			if err != nil {
				return
			}
			defer inf.Close()

			labels, err := cpu.Labels(inf)
			if err != nil {
				return
			}

			for _, label := range labels {
				fmt.Fprintln(cmd.OutOrStdout(), label)
			}

			return
		},
	}

	return
}
