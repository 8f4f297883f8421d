package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sw33tLie/epicurve/pkg/cases"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Prints a CSV template with the expected columns",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(cases.Template())
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
