// Command comb runs the bundled demonstration grammars (examples/json,
// examples/yaml) against stdin or a file, grounded on dhamidi-sai's
// cmd/sai: one cobra.Command factory per subcommand, wired into a root
// command in main.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "comb",
		Short: "Run the comb library's bundled demonstration grammars",
	}

	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newTraceCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
