package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "eqcheck",
	Short: "Check two quantum circuits for equivalence",
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
