package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kesterhols/volunteer-engine/pkg/core/services"
)

// AnalyzeWorkloadCmd creates the analyzeWorkload command
func AnalyzeWorkloadCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "analyzeWorkload",
		Short: "Profile volunteer workloads and recommend rebalancing actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := services.AnalyzeWorkload(app.Ctx, app.Database, app.Logger, app.Cfg.TenantID)
			if err != nil {
				return err
			}

			// Display results
			fmt.Printf("\n✓ Workload analysis complete\n\n")
			fmt.Printf("Volunteers Analyzed: %d\n", report.Summary.TotalVolunteers)
			fmt.Printf("Average Workload:    %.1f\n", report.Summary.AverageWorkloadScore)
			fmt.Printf("High Burnout Risk:   %d\n", report.Summary.HighBurnoutRisk)
			fmt.Printf("Underutilized:       %d\n", report.Summary.Underutilized)
			fmt.Printf("Balance Score:       %.1f\n\n", report.Summary.BalanceScore)

			if len(report.MostOverloaded) > 0 {
				fmt.Printf("Most Overloaded:\n")
				for _, insight := range report.MostOverloaded {
					fmt.Printf("  %-25s score %3d [%s] %d upcoming\n",
						insight.Name, insight.Score, insight.Risk, insight.Assignments)
				}
				fmt.Println()
			}

			if len(report.MostAvailable) > 0 {
				fmt.Printf("Most Available:\n")
				for _, insight := range report.MostAvailable {
					fmt.Printf("  %-25s score %3d [%s] %d upcoming\n",
						insight.Name, insight.Score, insight.Risk, insight.Assignments)
				}
				fmt.Println()
			}

			if len(report.Recommendations) > 0 {
				fmt.Printf("Recommendations:\n")
				for _, rec := range report.Recommendations {
					fmt.Printf("  [%s] %s: %s\n", rec.Priority, rec.Type, rec.Description)
				}
				fmt.Println()
			}

			printWarnings(report.Warnings)

			return nil
		},
	}
}
