// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	userstore "github.com/atoengine/portal/internal/app/store/users"
	"github.com/atoengine/portal/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. The
// portal uses it to configure operation timeouts and ensure the bootstrap
// admin account exists, so a fresh deployment is sign-in-able immediately.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeout overrides applied", zap.Int("count", n))
	}

	if appCfg.AdminEmail != "" {
		adminCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
		defer cancel()

		users := userstore.New(deps.MongoDatabase)
		if err := users.EnsureAdmin(adminCtx, appCfg.AdminName, appCfg.AdminEmail, appCfg.AdminPassword); err != nil {
			logger.Error("bootstrap admin setup failed", zap.Error(err))
			return err
		}
		logger.Info("bootstrap admin ensured", zap.String("email", appCfg.AdminEmail))
	}

	return nil
}
