package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kesterhols/volunteer-engine/pkg/core/services"
)

// ScoreMatchesCmd creates the scoreMatches command
func ScoreMatchesCmd(app *AppContext) *cobra.Command {
	var daysAhead int
	var topN int

	cmd := &cobra.Command{
		Use:   "scoreMatches",
		Short: "Rank volunteer candidates against each identified gap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if daysAhead == 0 {
				daysAhead = app.Cfg.DaysAhead
			}
			if topN == 0 {
				topN = app.Cfg.TopMatches
			}

			gapReport, err := services.IdentifyGaps(app.Ctx, app.Database, app.Cfg, app.Logger, daysAhead)
			if err != nil {
				return err
			}

			report, err := services.ScoreMatches(app.Ctx, app.Database, app.Logger, app.Cfg.TenantID, gapReport.Gaps, topN)
			if err != nil {
				return err
			}

			// Display results
			fmt.Printf("\n✓ Match scoring complete\n\n")
			fmt.Printf("Candidates Considered: %d\n", report.Summary.TotalCandidates)
			fmt.Printf("Qualified Matches:     %d\n", report.Summary.QualifiedMatches)
			fmt.Printf("Gaps With Matches:     %d of %d\n\n", report.Summary.GapsCovered, len(gapReport.Gaps))

			for _, gap := range gapReport.Gaps {
				matches := report.Matches[gap.ID]
				if len(matches) == 0 {
					continue
				}
				fmt.Printf("%s (%s %s-%s):\n", gap.Title, gap.Date, gap.StartTime, gap.EndTime)
				for i, match := range matches {
					fmt.Printf("  %2d. %-25s %.0f [%s]\n", i+1, match.PersonName, match.CompositeScore, match.Priority)
					for _, reason := range match.Reasoning {
						fmt.Printf("      - %s\n", reason)
					}
				}
				fmt.Println()
			}

			printWarnings(append(gapReport.Warnings, report.Warnings...))

			return nil
		},
	}

	cmd.Flags().IntVarP(&daysAhead, "days", "d", 0, "Lookahead window in days (defaults to config)")
	cmd.Flags().IntVarP(&topN, "top", "t", 0, "Matches to keep per gap (defaults to config)")

	return cmd
}
