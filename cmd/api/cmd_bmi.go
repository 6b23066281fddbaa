package main

import (
	"errors"
	"fmt"

	"nutriguide/internal/advice"

	"github.com/spf13/cobra"
)

var (
	bmiWeight float64
	bmiHeight float64
)

// bmiCmd evaluates measurements without storing anything
var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Compute BMI, category and water target for one measurement",
	Example: `  nutriguide bmi --weight 70 --height 175`,
	Args:    cobra.NoArgs,
	RunE:    runBMI,
}

func init() {
	bmiCmd.Flags().Float64Var(&bmiWeight, "weight", 0, "Weight in kg")
	bmiCmd.Flags().Float64Var(&bmiHeight, "height", 0, "Height in cm")
	_ = bmiCmd.MarkFlagRequired("weight")
	_ = bmiCmd.MarkFlagRequired("height")
}

func runBMI(cmd *cobra.Command, args []string) error {
	if bmiHeight <= 0 || bmiWeight <= 0 {
		return errors.New("--weight and --height must be positive")
	}
	a := advice.NewEngine(loadCatalog(cfg.AdviceCatalogPath)).Assess(bmiWeight, bmiHeight)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "BMI:      %.1f\n", a.BMI)
	fmt.Fprintf(out, "Category: %s\n", a.Category)
	fmt.Fprintf(out, "Water:    %.1f L/day\n", a.WaterLiters)
	return nil
}
