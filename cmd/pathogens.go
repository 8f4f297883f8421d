package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sw33tLie/epicurve/pkg/curve"
	"github.com/sw33tLie/epicurve/pkg/pathogens"
)

// pathogensCmd represents the parent `pathogens` command.
var pathogensCmd = &cobra.Command{
	Use:   "pathogens",
	Short: "Incubation period reference for common outbreak pathogens",
}

var pathogensListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists every pathogen by category",
	Run: func(cmd *cobra.Command, args []string) {
		lib := pathogens.Default()
		groups := lib.ByCategory()
		for i, category := range lib.Categories() {
			if i > 0 {
				fmt.Println()
			}
			printPathogens(os.Stdout, category, groups[category])
		}
	},
}

var pathogensSearchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Finds pathogens by name or category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		found := pathogens.Default().Search(args[0])
		if len(found) == 0 {
			fmt.Printf("No pathogen matches %q.\n", args[0])
			return
		}
		printPathogens(os.Stdout, "MATCH", found)
	},
}

var pathogensShowCmd = &cobra.Command{
	Use:   "show KEY",
	Short: "Shows one pathogen",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pathogens.Default().Get(args[0])
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "Key\t%s\n", p.Key)
		fmt.Fprintf(w, "Name\t%s\n", p.Name)
		fmt.Fprintf(w, "Category\t%s\n", p.Category)
		fmt.Fprintf(w, "Incubation\t%s (%g-%g hours)\n", p.Display, p.MinHours, p.MaxHours)
		fmt.Fprintf(w, "Typical\t%s\n", p.Typical)
		fmt.Fprintf(w, "Suggested bin\t%s (%s)\n", p.SuggestedBin, p.SuggestedBin.Name())
		return w.Flush()
	},
}

var pathogensSuggestCmd = &cobra.Command{
	Use:   "suggest MIN_INCUBATION_HOURS",
	Short: "Suggests a bin size of about a quarter of the shortest incubation period",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil || hours < 0 {
			return fmt.Errorf("invalid number of hours: %q", args[0])
		}
		b := curve.SuggestBinSize(hours)
		fmt.Printf("%s (%s)\n", b, b.Name())
		return nil
	},
}

func printPathogens(out io.Writer, title string, list []pathogens.Pathogen) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "%s\tKEY\tINCUBATION\tBIN\t\n", title)
	for _, p := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", p.Name, p.Key, p.Display, p.SuggestedBin)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(pathogensCmd)
	pathogensCmd.AddCommand(pathogensListCmd)
	pathogensCmd.AddCommand(pathogensSearchCmd)
	pathogensCmd.AddCommand(pathogensShowCmd)
	pathogensCmd.AddCommand(pathogensSuggestCmd)
}
