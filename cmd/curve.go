package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sw33tLie/epicurve/pkg/curve"
	"github.com/sw33tLie/epicurve/pkg/report"
)

// curveCmd represents the curve command
var curveCmd = &cobra.Command{
	Use:   "curve [FILE|-]...",
	Short: "Bins case onsets into an epidemic curve",
	Long: `Bins case onsets into calendar-aligned intervals and prints the curve.

The table format draws one bar per interval; the json format is the document
chart renderers consume.`,
	Example: `  epicurve curve cases.csv -b 6hour -s classification
  epicurve curve --example --format json
  epicurve curve -u https://example.org/linelist.xlsx -p norovirus`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadCases(cmd, args)
		if err != nil {
			return err
		}
		cfg, err := chartConfig(cmd)
		if err != nil {
			return err
		}

		c := curve.Build(repo.All(), cfg)
		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			return report.WriteJSON(os.Stdout, c)
		case "table", "":
			if c.Empty() {
				fmt.Println("No cases with a valid onset date to plot.")
				return nil
			}
			printCurve(os.Stdout, c)
			return nil
		}
		return fmt.Errorf("unknown format %q (use table or json)", format)
	},
}

func swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("█")
}

func printCurve(out io.Writer, c curve.Curve) {
	title := lipgloss.NewStyle().Bold(true)
	if c.Config.Title != "" {
		fmt.Fprintln(out, title.Render(c.Config.Title))
	}
	fmt.Fprintf(out, "%s bins, %s on x, %s on y\n", c.Config.BinSize.Name(), c.Config.XAxisLabel, c.Config.YAxisLabel)

	legend := make([]string, len(c.Legend))
	colors := make(map[string]string, len(c.Legend))
	for i, l := range c.Legend {
		legend[i] = swatch(l.Color) + " " + l.Category
		colors[l.Category] = l.Color
	}
	fmt.Fprintln(out, strings.Join(legend, "   "))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := []string{"BIN", "START"}
	for _, l := range c.Legend {
		header = append(header, strings.ToUpper(l.Category))
	}
	header = append(header, "TOTAL", "")
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for i, b := range c.Bins {
		counts := make(map[string]int, len(b.Stacks))
		var bar strings.Builder
		for _, s := range b.Stacks {
			counts[s.Category] = s.Count
			bar.WriteString(strings.Repeat(swatch(colors[s.Category]), s.Count))
		}
		row := []string{c.Labels[i], b.Start.Format("2006-01-02 15:04")}
		for _, l := range c.Legend {
			row = append(row, fmt.Sprint(counts[l.Category]))
		}
		row = append(row, fmt.Sprint(b.Total), bar.String())
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	if len(c.Markers) > 0 || c.Incubation != nil {
		fmt.Fprintln(out)
	}
	for _, m := range c.Markers {
		fmt.Fprintf(out, "| %s: %s\n", m.Label, m.At.Format("2006-01-02 15:04"))
	}
	if w := c.Incubation; w != nil {
		fmt.Fprintf(out, "~ %s: %s to %s\n", w.Label, w.Start.Format("2006-01-02 15:04"), w.End.Format("2006-01-02 15:04"))
	}
}

func init() {
	rootCmd.AddCommand(curveCmd)
	addInputFlags(curveCmd)
	addChartFlags(curveCmd)
	curveCmd.Flags().StringP("format", "f", "table", "Output format: table, json")
}
