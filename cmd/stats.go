package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sw33tLie/epicurve/pkg/cases"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [FILE|-]...",
	Short: "Prints summary counts for a line list",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadCases(cmd, args)
		if err != nil {
			return err
		}
		printSummary(os.Stdout, repo.Summary())
		return nil
	},
}

func printSummary(out io.Writer, s cases.Summary) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "Cases\t%d\t\n", s.Total)
	fmt.Fprintf(w, "With onset\t%d\t\n", s.WithOnset)
	fmt.Fprintf(w, "Without onset\t%d\t\n", s.WithoutOnset)
	fmt.Fprintf(w, "Deaths\t%d\t\n", s.Deaths)
	if !s.First.IsZero() {
		fmt.Fprintf(w, "First onset\t%s\t\n", s.First.Format("2006-01-02 15:04"))
		fmt.Fprintf(w, "Last onset\t%s\t\n", s.Last.Format("2006-01-02 15:04"))
	}
	w.Flush()

	section(out, "CLASSIFICATION", stringCounts(s.ByClassification))
	section(out, "SEX", stringCounts(s.BySex))
	section(out, "AGE GROUP", stringCounts(s.ByAgeGroup))
	section(out, "OUTCOME", stringCounts(s.ByOutcome))
}

func stringCounts[K ~string](m map[K]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

func section(out io.Writer, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "%s\tCASES\t\n", title)
	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%d\t\n", k, counts[k])
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(statsCmd)
	addInputFlags(statsCmd)
}
