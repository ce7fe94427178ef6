package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "demo <name>",
		Short: "Parse input against a bundled demo grammar (json, yaml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(input)
			if err != nil {
				return err
			}
			value, errs, err := runDemo(args[0], src, nil)
			if err != nil {
				return err
			}
			if len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintln(cmd.ErrOrStderr(), e)
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
