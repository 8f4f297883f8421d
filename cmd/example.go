package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sw33tLie/epicurve/pkg/cases"
	"github.com/sw33tLie/epicurve/pkg/curve"
)

// exampleCmd represents the example command
var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Prints the bundled example outbreak line list or its chart file",
	Example: `  epicurve example > wedding.csv
  epicurve example --chart > wedding.yaml
  epicurve curve wedding.csv -c wedding.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if chart, _ := cmd.Flags().GetBool("chart"); chart {
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(curve.ExampleConfig()); err != nil {
				return err
			}
			return enc.Close()
		}

		repo := cases.NewRepository()
		repo.AddMany(cases.ExampleInputs())
		fmt.Println(repo.ExportCSV())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
	exampleCmd.Flags().Bool("chart", false, "Print the chart configuration (YAML) instead of the cases")
}
