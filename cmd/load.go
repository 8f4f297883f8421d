package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sw33tLie/epicurve/internal/utils"
	"github.com/sw33tLie/epicurve/pkg/cases"
	"github.com/sw33tLie/epicurve/pkg/curve"
	"github.com/sw33tLie/epicurve/pkg/ingest"
	"github.com/sw33tLie/epicurve/pkg/pathogens"
)

// sources lists the positional inputs followed by any --url values.
func sources(cmd *cobra.Command, args []string) []string {
	urls, _ := cmd.Flags().GetStringSlice("url")
	return append(append([]string{}, args...), urls...)
}

func fetchOptions() utils.FetchOptions {
	return utils.FetchOptions{
		Proxy:   viper.GetString("http.proxy"),
		Retries: viper.GetInt("http.retries"),
		Timeout: viper.GetDuration("http.timeout"),
	}
}

func readTable(ctx context.Context, source string) (*ingest.Table, error) {
	name, data, err := utils.ReadInput(ctx, source, os.Stdin, fetchOptions())
	if err != nil {
		return nil, err
	}
	utils.Log.Debugf("Read %d bytes from %s", len(data), source)
	return ingest.ParseFile(name, data)
}

// loadCases imports every source into a fresh repository. A source that
// yields no cases is reported and skipped; it is an error only when nothing
// at all could be imported.
func loadCases(cmd *cobra.Command, args []string) (*cases.Repository, error) {
	repo := cases.NewRepository()
	if example, _ := cmd.Flags().GetBool("example"); example {
		repo.AddMany(cases.ExampleInputs())
	}

	srcs := sources(cmd, args)
	if len(srcs) == 0 && repo.Len() == 0 {
		return nil, errors.New("no input: pass a file, - for stdin, --url, or --example")
	}

	in := ingest.New(utils.Log)
	for _, src := range srcs {
		table, err := readTable(cmd.Context(), src)
		if err != nil {
			if len(srcs) == 1 && repo.Len() == 0 {
				return nil, fmt.Errorf("%s: %w", src, err)
			}
			utils.Log.Errorf("%s: %s", src, err)
			continue
		}
		rep, err := in.Import(table, nil, repo)
		if err != nil {
			if len(srcs) == 1 && repo.Len() == 0 {
				return nil, fmt.Errorf("%s: %w", src, err)
			}
			utils.Log.Errorf("%s: %s", src, err)
			continue
		}
		utils.Log.Infof("%s: imported %d of %d rows", src, rep.Imported, rep.Rows)
	}
	if repo.Len() == 0 {
		return nil, ingest.ErrNoValidRows
	}
	return repo, nil
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("example", false, "Include the bundled example outbreak")
}

func addChartFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("bin", "b", "", "Bin size: "+binSizeList())
	cmd.Flags().StringP("stratify", "s", "", "Stratify by: none, classification, sex, ageGroup, outcome, custom")
	cmd.Flags().String("colors", "", "Colour scheme: default, colorblind, grayscale")
	cmd.Flags().StringP("chart", "c", "", "Chart configuration file (YAML)")
	cmd.Flags().StringP("pathogen", "p", "", "Pathogen key: pre-fills incubation period and bin size")
	cmd.Flags().String("title", "", "Chart title")
}

func binSizeList() string {
	names := make([]string, len(curve.BinSizes))
	for i, b := range curve.BinSizes {
		names[i] = string(b)
	}
	return strings.Join(names, ", ")
}

// chartConfig assembles the chart configuration. Precedence, lowest first:
// config file and EPICURVE_ environment, the example chart with --example,
// a --chart file, a --pathogen, then explicit flags.
func chartConfig(cmd *cobra.Command) (curve.Config, error) {
	flags := cmd.Flags()
	cfg := curve.Config{
		BinSize:     curve.BinSize(viper.GetString("chart.bin_size")),
		StratifyBy:  cases.Field(viper.GetString("chart.stratify_by")),
		ColorScheme: curve.ColorScheme(viper.GetString("chart.color_scheme")),
	}

	if example, _ := flags.GetBool("example"); example {
		cfg = curve.ExampleConfig()
	}

	if path, _ := flags.GetString("chart"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse chart file %s: %w", path, err)
		}
	}

	key := viper.GetString("pathogen")
	if flags.Changed("pathogen") {
		key, _ = flags.GetString("pathogen")
	}
	if key != "" {
		lib := pathogens.Default()
		p, err := lib.Get(key)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.WithPathogen(lib, key)
		utils.Log.Infof("Using %s incubation period (%s), %s bins", p.Name, p.Display, cfg.BinSize.Name())
	}

	if flags.Changed("bin") {
		v, _ := flags.GetString("bin")
		cfg.BinSize = curve.BinSize(v)
	}
	if flags.Changed("stratify") {
		v, _ := flags.GetString("stratify")
		cfg.StratifyBy = cases.Field(v)
	}
	if flags.Changed("colors") {
		v, _ := flags.GetString("colors")
		cfg.ColorScheme = curve.ColorScheme(v)
	}
	if flags.Changed("title") {
		cfg.Title, _ = flags.GetString("title")
	}

	if _, ok := curve.ParseBinSize(string(cfg.BinSize)); !ok {
		utils.Log.Warnf("Unknown bin size %q, using day", cfg.BinSize)
	}
	if s := string(cfg.StratifyBy); s != "" && s != curve.NoStratification && !cfg.Stratified() {
		utils.Log.Warnf("Cannot stratify by %q, showing totals only", s)
	}
	return cfg, nil
}
