package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sw33tLie/epicurve/internal/utils"
	"github.com/sw33tLie/epicurve/pkg/curve"
	"github.com/sw33tLie/epicurve/pkg/report"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [FILE|-]...",
	Short: "Normalizes line lists and writes them as one CSV or Excel file",
	Long: `Normalizes line lists and writes them in the standard column layout.

Output goes to stdout as CSV unless --out names a file; a .xlsx file gets a
Cases sheet and, with --curve, a Curve sheet of binned counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadCases(cmd, args)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")

		if strings.EqualFold(filepath.Ext(out), ".xlsx") {
			var c *curve.Curve
			if withCurve, _ := cmd.Flags().GetBool("curve"); withCurve {
				cfg, err := chartConfig(cmd)
				if err != nil {
					return err
				}
				built := curve.Build(repo.All(), cfg)
				c = &built
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := report.WriteXLSX(f, repo.All(), c); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			utils.Log.Infof("Wrote %d cases to %s", repo.Len(), out)
			return nil
		}

		if out == "" {
			if err := repo.WriteCSV(os.Stdout); err != nil {
				return err
			}
			fmt.Println()
			return nil
		}
		if err := os.WriteFile(out, []byte(repo.ExportCSV()), 0o644); err != nil {
			return err
		}
		utils.Log.Infof("Wrote %d cases to %s", repo.Len(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addInputFlags(exportCmd)
	addChartFlags(exportCmd)
	exportCmd.Flags().StringP("out", "o", "", "Output file (.csv or .xlsx); stdout when empty")
	exportCmd.Flags().Bool("curve", false, "Add a Curve sheet to .xlsx output")
}
