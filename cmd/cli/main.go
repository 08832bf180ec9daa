package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kesterhols/volunteer-engine/cmd/cli/commands"
	"github.com/kesterhols/volunteer-engine/internal/config"
	"github.com/kesterhols/volunteer-engine/pkg/postgres"
	"github.com/kesterhols/volunteer-engine/pkg/utils/logging"
)

var (
	env     string
	verbose bool
	app     = &commands.AppContext{}
	dbConn  *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "volunteer-engine",
		Short: "Volunteer scheduling intelligence engine",
		Long:  `Analyzes volunteer schedules: identifies staffing gaps, ranks candidates, detects conflicts, and flags burnout risk.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if dbConn != nil {
				dbConn.Close()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output on the console")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.IdentifyGapsCmd(app))
	rootCmd.AddCommand(commands.ScoreMatchesCmd(app))
	rootCmd.AddCommand(commands.DetectConflictsCmd(app))
	rootCmd.AddCommand(commands.ResolveConflictsCmd(app))
	rootCmd.AddCommand(commands.AnalyzeWorkloadCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, and database
func initApp() error {
	app.Ctx = context.Background()
	app.Env = env

	logger, err := logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger

	logger.Info("Starting application", zap.String("environment", env))

	logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("Configuration loaded successfully")

	logger.Info("Connecting to database")
	dbConn, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbConn.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Debug("Database ready")

	app.Database = dbConn

	return nil
}
