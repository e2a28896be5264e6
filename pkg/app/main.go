package app

import (
	"github.com/ghuser/aquacatalog/pkg/assethost"
	"github.com/ghuser/aquacatalog/pkg/auth"
	"github.com/ghuser/aquacatalog/pkg/database"
	"github.com/ghuser/aquacatalog/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route-registration calls during server initialization.
//
// Logging: app.Logger is backed by a request-aware handler — use slog's
// context methods and request_id is injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing model", "model_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db     *database.Database
	Assets *assethost.Client
	Auth   *auth.Service
	Logger logger.Logger
}
