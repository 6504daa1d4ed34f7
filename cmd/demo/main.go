package main

import (
	"fmt"
	"io"
	"os"

	"davisbacon/internal/analysis"
	"davisbacon/internal/config"
	"davisbacon/internal/costmodel"
	"davisbacon/internal/export"
	"davisbacon/internal/model"

	"github.com/spf13/cobra"
)

// Demo:
// - Load the configured defaults
// - Walk one home price through the cost waterfall
// - Show every preset side by side at that price
func main() {
	var cfgPath string
	var homePrice float64

	cmd := &cobra.Command{
		Use:           "demo",
		Short:         "Print the cost waterfall and the preset comparison",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in model.Inputs
			if cmd.Flags().Changed("home-price") {
				in.HomePrice = &homePrice
			}
			return run(os.Stdout, cfgPath, in)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to YAML config (optional)")
	cmd.Flags().Float64Var(&homePrice, "home-price", 0, "Override the default home price")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfgPath string, in model.Inputs) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	base, err := cfg.BaseParams()
	if err != nil {
		return err
	}
	if base, err = in.Build(base); err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	a := analysis.New(costmodel.New(), catalog)
	res := a.Evaluate(base)
	bd := costmodel.BreakdownOf(res)

	fmt.Fprintln(w, "Cost waterfall")
	for _, step := range bd.Steps {
		note := ""
		if step.Measure == costmodel.MeasureRelative && step.Amount == 0 {
			note = " (already in price)"
		}
		fmt.Fprintf(w, "  %-22s %-9s $%14s%s\n", step.Label, step.Measure, export.Money(step.Reference), note)
	}
	fmt.Fprintf(w, "  shares: other %.1f%%  materials %.1f%%  labor %.1f%%\n",
		bd.OtherShare*100, bd.MaterialsShare*100, bd.LaborShare*100)
	fmt.Fprintln(w)

	rows, err := a.CompareAll(base)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "All scenarios at $%s\n", export.Money(base.HomePrice()))
	fmt.Fprintf(w, "  %-24s %-7s %-8s %-14s %-8s %-10s\n", "scenario", "labor", "premium", "increase$", "pct", "monthly$")
	for _, r := range rows {
		monthly := "-"
		if r.Result.HasMortgage {
			monthly = export.Money(r.Result.MonthlyPaymentDelta)
		}
		fmt.Fprintf(w, "  %-24s %-7.2f %-8.2f %-14s %-8s %-10s\n",
			r.Label,
			r.Result.Params.LaborShare(),
			r.Result.Params.WagePremium(),
			export.Money(r.Result.WageIncrease),
			fmt.Sprintf("%.2f%%", r.Result.PercentIncrease*100),
			monthly,
		)
	}
	return nil
}
