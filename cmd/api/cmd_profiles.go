package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"nutriguide/internal/advice"
	"nutriguide/internal/models"
	"nutriguide/internal/storage"

	"github.com/spf13/cobra"
)

var profilesJSON bool

// profilesCmd dumps every stored submission
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List every stored profile (debug)",
	Long: `Prints all submissions in insertion order with their BMI and category.
Reads DB_PATH; the database is created if it does not exist yet.`,
	Args: cobra.NoArgs,
	RunE: runProfiles,
}

func init() {
	profilesCmd.Flags().BoolVar(&profilesJSON, "json", false, "Print JSON instead of a table")
}

type profileRow struct {
	models.Profile
	BMI      float64         `json:"bmi"`
	Category advice.Category `json:"category"`
}

func runProfiles(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(cmd.Context(), cfg.DBPath, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	profiles, err := store.ListAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	rows := make([]profileRow, 0, len(profiles))
	for _, p := range profiles {
		bmi := advice.ComputeBMI(p.WeightKG, p.HeightCM)
		rows = append(rows, profileRow{Profile: p, BMI: bmi, Category: advice.Categorize(bmi)})
	}

	out := cmd.OutOrStdout()
	if profilesJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, "No profiles stored.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAGE\tGENDER\tHEIGHT\tWEIGHT\tBMI\tCATEGORY\tCREATED")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%.1f\t%.1f\t%.1f\t%s\t%s\n",
			r.ID, r.Name, r.Age, r.Gender, r.HeightCM, r.WeightKG, r.BMI, r.Category,
			r.CreatedAt.Format(models.TimestampLayout))
	}
	return w.Flush()
}
