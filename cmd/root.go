package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "analysis-model",
	Short: "analysis-model - normalizes static-analysis tool reports into uniform issues",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
