package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kesterhols/volunteer-engine/pkg/core/services"
)

// IdentifyGapsCmd creates the identifyGaps command
func IdentifyGapsCmd(app *AppContext) *cobra.Command {
	var daysAhead int
	var notify bool

	cmd := &cobra.Command{
		Use:   "identifyGaps",
		Short: "Find understaffed events and ministries in the lookahead window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if daysAhead == 0 {
				daysAhead = app.Cfg.DaysAhead
			}

			report, err := services.IdentifyGaps(app.Ctx, app.Database, app.Cfg, app.Logger, daysAhead)
			if err != nil {
				return err
			}

			if notify && report.Summary.CriticalGaps > 0 {
				if app.Cfg.AlertRecipient == "" {
					return fmt.Errorf("cannot notify: alertRecipient is not set in config")
				}
				notifier, err := app.Notifier()
				if err != nil {
					return err
				}
				services.NotifyCriticalGaps(app.Logger, notifier, app.Cfg.AlertRecipient, report)
			}

			// Display results
			fmt.Printf("\n✓ Gap analysis complete (%d days ahead)\n\n", daysAhead)
			fmt.Printf("Total Gaps:    %d\n", report.Summary.TotalGaps)
			fmt.Printf("  Critical:    %d\n", report.Summary.CriticalGaps)
			fmt.Printf("  High:        %d\n", report.Summary.HighPriorityGaps)
			fmt.Printf("  Medium:      %d\n", report.Summary.MediumPriorityGaps)
			fmt.Printf("  Low:         %d\n", report.Summary.LowPriorityGaps)
			fmt.Printf("Avg Urgency:   %.1f\n\n", report.AverageGapUrgency)

			if len(report.TopPriorityAreas) > 0 {
				fmt.Printf("Top Priority Areas:\n")
				for i, area := range report.TopPriorityAreas {
					fmt.Printf("  %2d. %-30s urgency %3d, short %d\n", i+1, area.Area, area.Urgency, area.Shortfall)
				}
				fmt.Println()
			}

			for _, gap := range report.Gaps {
				fmt.Printf("  [%s] %s on %s %s-%s: %d/%d filled\n",
					gap.Priority, gap.Title, gap.Date, gap.StartTime, gap.EndTime,
					gap.CurrentVolunteers, gap.RequiredVolunteers)
			}
			fmt.Println()

			printWarnings(report.Warnings)

			return nil
		},
	}

	cmd.Flags().IntVarP(&daysAhead, "days", "d", 0, "Lookahead window in days (defaults to config)")
	cmd.Flags().BoolVarP(&notify, "notify", "n", false, "Email the alert recipient when critical gaps exist")

	return cmd
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Printf("Warnings:\n")
	for _, warning := range warnings {
		fmt.Printf("  ! %s\n", warning)
	}
	fmt.Println()
}
