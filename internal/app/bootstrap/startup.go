// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/consulthub/internal/app/resources"
	"github.com/dalemusser/consulthub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It
// registers the shared templates and applies the configured timeouts.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	timeouts.Configure(timeouts.Config{
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
	})
	logger.Info("startup complete",
		zap.String("backend", deps.Backend),
		zap.Duration("timeout_short", timeouts.Short()),
		zap.Duration("timeout_medium", timeouts.Medium()))
	return nil
}
