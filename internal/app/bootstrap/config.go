// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"github.com/dalemusser/consulthub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Consultation Hub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: store_backend, mongo_uri, etc.
//   - Environment variables: CONSULTHUB_STORE_BACKEND, CONSULTHUB_MONGO_URI, etc.
//   - Command-line flags: --store_backend, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	// Record store
	{Name: "store_backend", Default: catalog.BackendMemory, Desc: "Record store backend: 'memory' or 'mongo'"},
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "consult_hub", Desc: "MongoDB database name"},
	{Name: "seed_on_start", Default: true, Desc: "Upsert the embedded reference records into MongoDB at startup"},

	// Sessions and CSRF
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "consulthub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "csrf_key", Default: "dev-only-csrf-key-0123456789ABCDEF", Desc: "CSRF authentication key (32 bytes)"},

	// Start-consultation form
	{Name: "upload_max_mb", Default: 10, Desc: "Maximum upload size for the policy document, in MB"},
	{Name: "submit_per_minute", Default: 20, Desc: "Form submissions allowed per client per minute (0 disables)"},

	// Display
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Site name shown in the header"},
	{Name: "ending_soon_days", Default: 2, Desc: "Dashboard window, in days, for consultations ending soon"},

	// Repository timeouts
	{Name: "timeout_short", Default: "5s", Desc: "Timeout for single lookups (e.g., 5s)"},
	{Name: "timeout_medium", Default: "10s", Desc: "Timeout for list pages and the dashboard (e.g., 10s)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, CONSULTHUB_* for app) and
// command-line flags, merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CONSULTHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		StoreBackend:  appValues.String("store_backend"),
		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),
		SeedOnStart:   appValues.Bool("seed_on_start"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		CSRFKey:       appValues.String("csrf_key"),

		UploadMaxMB:     appValues.Int("upload_max_mb"),
		SubmitPerMinute: appValues.Int("submit_per_minute"),

		SiteName:       appValues.String("site_name"),
		EndingSoonDays: appValues.Int("ending_soon_days"),

		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 10*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The Mongo URI is only checked when the mongo backend is selected.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	return validateAppConfig(appCfg, logger)
}

func validateAppConfig(appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.StoreBackend {
	case catalog.BackendMemory:
	case catalog.BackendMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" {
			return fmt.Errorf("mongo_database must be set for the mongo backend")
		}
	default:
		return fmt.Errorf("unknown store_backend %q (want %q or %q)", appCfg.StoreBackend, catalog.BackendMemory, catalog.BackendMongo)
	}

	if appCfg.UploadMaxMB <= 0 {
		return fmt.Errorf("upload_max_mb must be positive, got %d", appCfg.UploadMaxMB)
	}
	if appCfg.SubmitPerMinute < 0 {
		return fmt.Errorf("submit_per_minute must not be negative, got %d", appCfg.SubmitPerMinute)
	}
	if appCfg.EndingSoonDays < 0 {
		return fmt.Errorf("ending_soon_days must not be negative, got %d", appCfg.EndingSoonDays)
	}
	if len(appCfg.CSRFKey) < 32 {
		return fmt.Errorf("csrf_key must be at least 32 bytes")
	}
	if len(appCfg.SessionKey) < 32 {
		return fmt.Errorf("session_key must be at least 32 bytes")
	}
	return nil
}
