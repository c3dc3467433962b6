package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/readinput"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of readinput",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("readinput version %s\n", strings.TrimSpace(readinput.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
