package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kesterhols/volunteer-engine/pkg/core/services"
)

// ResolveConflictsCmd creates the resolveConflicts command
func ResolveConflictsCmd(app *AppContext) *cobra.Command {
	var personID string
	var apply bool

	cmd := &cobra.Command{
		Use:   "resolveConflicts",
		Short: "Detect conflicts and apply time-shift resolutions to critical ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conflictReport, err := services.DetectConflicts(app.Ctx, app.Database, app.Logger, app.Cfg.TenantID, personID)
			if err != nil {
				return err
			}

			report, err := services.ResolveConflicts(app.Ctx, app.Database, app.Logger, conflictReport.Conflicts, apply)
			if err != nil {
				return err
			}

			// Display results
			fmt.Printf("\n✓ Resolution run complete\n\n")
			fmt.Printf("Conflicts Found:  %d\n", conflictReport.Summary.TotalConflicts)
			fmt.Printf("Auto-Applied:     %d\n", len(report.Applied))
			fmt.Printf("Report-Only:      %d\n\n", report.ReportOnly)

			if len(report.Applied) > 0 {
				fmt.Printf("Applied Resolutions:\n")
				for _, applied := range report.Applied {
					fmt.Printf("  • %s (conflict %s)\n", applied.Description, applied.ConflictID)
				}
				fmt.Println()
			}

			if !apply && conflictReport.Summary.CriticalConflicts > 0 {
				fmt.Printf("Run again with --apply to auto-resolve critical conflicts.\n\n")
			}

			printWarnings(append(conflictReport.Warnings, report.Warnings...))

			return nil
		},
	}

	cmd.Flags().StringVarP(&personID, "person", "p", "", "Restrict detection to one person")
	cmd.Flags().BoolVarP(&apply, "apply", "a", false, "Apply time-shift resolutions to critical conflicts")

	return cmd
}
