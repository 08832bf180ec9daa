package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kesterhols/volunteer-engine/internal/config"
	"github.com/kesterhols/volunteer-engine/pkg/clients/gmailclient"
	"github.com/kesterhols/volunteer-engine/pkg/db"
	"github.com/kesterhols/volunteer-engine/pkg/utils"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
	Env      string

	gmailClient *gmailclient.Client
}

// Notifier lazily builds the Gmail client. The OAuth flow may prompt the
// user, so it only runs for commands that actually send mail.
func (app *AppContext) Notifier() (db.Notifier, error) {
	if app.gmailClient != nil {
		return app.gmailClient, nil
	}

	oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return nil, err
	}

	token, err := utils.GetTokenWithFlow(app.Ctx, oauthConfig, app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain OAuth token: %w", err)
	}

	app.gmailClient, err = gmailclient.NewClient(app.Ctx, oauthCfg, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail client: %w", err)
	}

	return app.gmailClient, nil
}
