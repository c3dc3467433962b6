package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "readinput",
	Short: "readinput asks for a value until one is valid",
	Long: `readinput prompts on stderr, reads lines from stdin and prints the first
value that parses and passes every test on stdout, so shell scripts can
capture it:

  age=$(readinput int --prompt "Age: " --min 0 --max 150)`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML file with default options (or $READINPUT_CONFIG)")
}
