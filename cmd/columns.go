package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sw33tLie/epicurve/pkg/ingest"
)

// columnsCmd represents the columns command
var columnsCmd = &cobra.Command{
	Use:   "columns FILE|-",
	Short: "Shows which field each column of a line list was detected as",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := readTable(cmd.Context(), args[0])
		if err != nil && !errors.Is(err, ingest.ErrMissingDateColumn) {
			return err
		}

		mapping := ingest.DetectColumns(table.Headers)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "COLUMN\tFIELD\t")
		for _, h := range table.Headers {
			field := "-"
			if f, ok := mapping[h]; ok {
				field = string(f)
			}
			fmt.Fprintf(w, "%s\t%s\t\n", h, field)
		}
		w.Flush()

		if err != nil {
			return err
		}
		fmt.Printf("\n%d data rows\n", len(table.Rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}
