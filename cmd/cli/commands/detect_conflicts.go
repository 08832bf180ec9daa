package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kesterhols/volunteer-engine/pkg/core/services"
)

// DetectConflictsCmd creates the detectConflicts command
func DetectConflictsCmd(app *AppContext) *cobra.Command {
	var personID string

	cmd := &cobra.Command{
		Use:   "detectConflicts",
		Short: "Scan upcoming assignments for time overlaps and weekly overload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := services.DetectConflicts(app.Ctx, app.Database, app.Logger, app.Cfg.TenantID, personID)
			if err != nil {
				return err
			}

			// Display results
			fmt.Printf("\n✓ Conflict detection complete\n\n")
			fmt.Printf("Total Conflicts: %d\n", report.Summary.TotalConflicts)
			fmt.Printf("  Critical:      %d\n", report.Summary.CriticalConflicts)
			fmt.Printf("  High:          %d\n", report.Summary.HighConflicts)
			fmt.Printf("  Overlaps:      %d\n", report.Summary.TimeOverlaps)
			fmt.Printf("  Overloads:     %d\n\n", report.Summary.Overloads)

			for _, conflict := range report.Conflicts {
				fmt.Printf("  [%s] %s\n", conflict.Severity, conflict.Description)
				for _, resolution := range conflict.Resolutions {
					fmt.Printf("      → %s: %s\n", resolution.Type, resolution.Description)
				}
			}
			fmt.Println()

			printWarnings(report.Warnings)

			return nil
		},
	}

	cmd.Flags().StringVarP(&personID, "person", "p", "", "Restrict detection to one person")

	return cmd
}
