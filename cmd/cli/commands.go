package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"davisbacon/internal/analysis"
	"davisbacon/internal/config"
	"davisbacon/internal/costmodel"
	"davisbacon/internal/export"
	"davisbacon/internal/model"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app is what every subcommand works from once the config is loaded.
type app struct {
	out      io.Writer
	cfg      *config.Config
	base     model.ParameterSet
	analyzer *analysis.Analyzer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}
	var cfgPath string

	root := &cobra.Command{
		Use:   "cli",
		Short: "Davis-Bacon housing cost calculator",
		Long: `Estimates how prevailing-wage (Davis-Bacon) rules move the sale price of a
new home: labor is a share of construction cost, construction is a share of
the sale price, and the wage premium applies to the labor portion.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			base, err := cfg.BaseParams()
			if err != nil {
				return err
			}
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.base = base
			a.analyzer = analysis.New(costmodel.New(), catalog)
			return nil
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config (optional)")

	root.AddCommand(
		a.calcCmd(),
		a.gridCmd(),
		a.compareCmd(),
		a.scenariosCmd(),
		a.exportCmd(),
	)
	return root
}

// paramFlags mirrors model.Inputs; only flags the user set are applied.
type paramFlags struct {
	homePrice, constructionShare, laborShare, premium, rate float64
	term                                                    int
}

func (pf *paramFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&pf.homePrice, "home-price", 0, "Home sale price in dollars")
	fs.Float64Var(&pf.constructionShare, "construction-share", 0, "Construction cost share of the sale price")
	fs.Float64Var(&pf.laborShare, "labor-share", 0, "Labor share of construction cost")
	fs.Float64Var(&pf.premium, "premium", 0, "Wage premium (negative for a decrease)")
	fs.Float64Var(&pf.rate, "rate", 0, "Annual mortgage rate, e.g. 0.07")
	fs.IntVar(&pf.term, "term", 0, "Mortgage term in years")
}

func (pf *paramFlags) inputs(fs *pflag.FlagSet) model.Inputs {
	var in model.Inputs
	if fs.Changed("home-price") {
		in.HomePrice = &pf.homePrice
	}
	if fs.Changed("construction-share") {
		in.ConstructionCostShare = &pf.constructionShare
	}
	if fs.Changed("labor-share") {
		in.LaborShare = &pf.laborShare
	}
	if fs.Changed("premium") {
		in.WagePremium = &pf.premium
	}
	if fs.Changed("rate") {
		in.MortgageRate = &pf.rate
	}
	if fs.Changed("term") {
		in.MortgageTermYears = &pf.term
	}
	return in
}

func (a *app) calcCmd() *cobra.Command {
	var pf paramFlags
	var scenarioName string

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Evaluate one set of parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pf.inputs(cmd.Flags()).Build(a.base)
			if err != nil {
				return err
			}
			if scenarioName != "" {
				if p, err = a.analyzer.Catalog().Resolve(scenarioName, p); err != nil {
					return err
				}
			}
			printResult(a.out, a.analyzer.Evaluate(p))
			return nil
		},
	}
	pf.register(cmd.Flags())
	cmd.Flags().StringVar(&scenarioName, "scenario", "", "Apply a preset's labor share and wage premium")
	return cmd
}

func (a *app) gridCmd() *cobra.Command {
	var pf paramFlags
	var rows, cols, metricName, outPath string
	var steps int

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Write a two-axis sensitivity table as CSV",
		Long: `Axes are given as field or field:min:max, for example
  cli grid --rows labor_share:0.30:0.50 --cols wage_premium --steps 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			metric, err := model.ParseMetric(metricName)
			if err != nil {
				return err
			}
			base, err := pf.inputs(cmd.Flags()).Build(a.base)
			if err != nil {
				return err
			}
			rowSpec, err := parseAxis(rows, steps)
			if err != nil {
				return err
			}
			colSpec, err := parseAxis(cols, steps)
			if err != nil {
				return err
			}
			g, err := a.analyzer.Grid(analysis.GridRequest{Base: base, Rows: rowSpec, Columns: colSpec})
			if err != nil {
				return err
			}
			return writeTo(a.out, outPath, func(w io.Writer) error {
				return export.WriteGridCSV(w, g, metric)
			})
		},
	}
	pf.register(cmd.Flags())
	cmd.Flags().StringVar(&rows, "rows", string(model.FieldLaborShare), "Row axis")
	cmd.Flags().StringVar(&cols, "cols", string(model.FieldWagePremium), "Column axis")
	cmd.Flags().IntVar(&steps, "steps", 20, "Samples per axis")
	cmd.Flags().StringVar(&metricName, "metric", string(model.MetricWageIncrease), "Metric to tabulate")
	cmd.Flags().StringVar(&outPath, "out", "", "Output CSV path (stdout when empty)")
	return cmd
}

// parseAxis reads "field" or "field:min:max".
func parseAxis(s string, steps int) (analysis.AxisSpec, error) {
	parts := strings.Split(s, ":")
	spec := analysis.AxisSpec{Field: model.Field(parts[0]), Steps: steps}
	switch len(parts) {
	case 1:
		return spec, nil
	case 3:
		lo, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return spec, fmt.Errorf("axis %q: min: %w", s, err)
		}
		hi, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return spec, fmt.Errorf("axis %q: max: %w", s, err)
		}
		spec.Bounds = &model.Range{Min: lo, Max: hi}
		return spec, nil
	default:
		return spec, fmt.Errorf("axis %q: want field or field:min:max", s)
	}
}

func (a *app) compareCmd() *cobra.Command {
	var pf paramFlags
	var byImpact bool

	cmd := &cobra.Command{
		Use:   "compare [scenario...]",
		Short: "Compare presets side by side (all presets when none are named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := a.compare(pf.inputs(cmd.Flags()), args)
			if err != nil {
				return err
			}
			if byImpact {
				rows = analysis.RankByImpact(rows)
			}
			printComparison(a.out, rows)
			return nil
		},
	}
	pf.register(cmd.Flags())
	cmd.Flags().BoolVar(&byImpact, "by-impact", false, "Sort by descending wage increase")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var pf paramFlags
	var outPath string

	cmd := &cobra.Command{
		Use:   "export [scenario...]",
		Short: "Write the scenario comparison as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := a.compare(pf.inputs(cmd.Flags()), args)
			if err != nil {
				return err
			}
			if err := writeTo(a.out, outPath, func(w io.Writer) error {
				return export.WriteComparisonCSV(w, rows)
			}); err != nil {
				return err
			}
			if outPath != "" {
				fmt.Fprintf(a.out, "Wrote %d rows to %s\n", len(rows), outPath)
			}
			return nil
		},
	}
	pf.register(cmd.Flags())
	cmd.Flags().StringVar(&outPath, "out", "results/scenario_comparison.csv", "Output CSV path (stdout when empty)")
	return cmd
}

func (a *app) compare(in model.Inputs, names []string) ([]analysis.Row, error) {
	base, err := in.Build(a.base)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return a.analyzer.CompareAll(base)
	}
	entries := make([]analysis.Entry, len(names))
	for i, n := range names {
		entries[i] = analysis.Entry{Scenario: n}
	}
	return a.analyzer.Compare(base, entries)
}

func (a *app) scenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the scenario presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.out, "%-24s %-8s %-8s %s\n", "name", "labor", "premium", "description")
			for _, s := range a.analyzer.Catalog().All() {
				fmt.Fprintf(a.out, "%-24s %-8.2f %-8.2f %s\n", s.Name, s.LaborShare, s.WagePremium, s.Description)
			}
			if len(a.cfg.Sources) > 0 {
				fmt.Fprintln(a.out)
				fmt.Fprintln(a.out, "sources:")
				for _, src := range a.cfg.Sources {
					fmt.Fprintf(a.out, "  [%s] %s: %s\n", src.Key, src.Title, src.Finding)
				}
			}
			return nil
		},
	}
}

// writeTo writes to path, creating its directory, or to out when path is empty.
func writeTo(out io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(out)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printResult(w io.Writer, r model.CalculationResult) {
	p := r.Params
	fmt.Fprintf(w, "Home price:            $%s\n", export.Money(p.HomePrice()))
	fmt.Fprintf(w, "Construction share:    %.1f%%\n", p.ConstructionCostShare()*100)
	fmt.Fprintf(w, "Labor share:           %.1f%%\n", p.LaborShare()*100)
	fmt.Fprintf(w, "Wage premium:          %.1f%%\n", p.WagePremium()*100)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Construction cost:     $%s\n", export.Money(r.ConstructionCost))
	fmt.Fprintf(w, "Labor cost:            $%s\n", export.Money(r.LaborCost))
	fmt.Fprintf(w, "Wage increase:         $%s (%s)\n", export.Money(r.WageIncrease), r.Direction)
	fmt.Fprintf(w, "Percent increase:      %.2f%%\n", r.PercentIncrease*100)
	fmt.Fprintf(w, "Adjusted home price:   $%s\n", export.Money(r.AdjustedHomePrice))
	if r.HasMortgage {
		rate, _ := p.MortgageRate()
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Mortgage:              %.2f%% over %d years\n", rate*100, p.MortgageTermYears())
		fmt.Fprintf(w, "Monthly payment:       $%s -> $%s\n", export.Money(r.MonthlyPayment), export.Money(r.AdjustedMonthlyPayment))
		fmt.Fprintf(w, "Monthly change:        $%s\n", export.Money(r.MonthlyPaymentDelta))
		fmt.Fprintf(w, "Lifetime change:       $%s\n", export.Money(r.LifetimePaymentDelta))
	}
}

func printComparison(w io.Writer, rows []analysis.Row) {
	fmt.Fprintf(w, "%-24s %-7s %-8s %-14s %-8s %-12s\n", "scenario", "labor", "premium", "increase$", "pct", "monthly$")
	for _, r := range rows {
		res := r.Result
		monthly := "-"
		if res.HasMortgage {
			monthly = export.Money(res.MonthlyPaymentDelta)
		}
		fmt.Fprintf(w, "%-24s %-7.2f %-8.2f %-14s %-8s %-12s\n",
			r.Label,
			res.Params.LaborShare(),
			res.Params.WagePremium(),
			export.Money(res.WageIncrease),
			fmt.Sprintf("%.2f%%", res.PercentIncrease*100),
			monthly,
		)
	}
}
