package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTraceCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "trace <name>",
		Short: "Like demo, but log every production enter/exit and token match to stderr",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(input)
			if err != nil {
				return err
			}
			stderr := cmd.ErrOrStderr()
			trace := func(format string, traceArgs ...any) {
				fmt.Fprintf(stderr, format+"\n", traceArgs...)
			}
			value, errs, err := runDemo(args[0], src, trace)
			if err != nil {
				return err
			}
			if len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintln(stderr, e)
				}
				return fmt.Errorf("%d error(s) parsing %s", len(errs), args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%#v\n", value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (default: stdin)")

	return cmd
}
