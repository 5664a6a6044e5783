// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like ports, TLS,
// logging level and CORS. AppConfig is everything specific to Consultation
// Hub: where the reference records live, cookie settings for the
// notification queue, upload limits and display options.
type AppConfig struct {
	// Record store
	StoreBackend  string // "memory" (embedded seed) or "mongo"
	MongoURI      string // MongoDB connection string (mongo backend only)
	MongoDatabase string // Database name within MongoDB
	SeedOnStart   bool   // Upsert the embedded catalog into Mongo at startup

	// Session cookie carrying pending notifications
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name (default: consulthub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// CSRF protection for form posts
	CSRFKey string // 32-byte authentication key

	// Start-consultation form
	UploadMaxMB     int // Multipart body cap in megabytes
	SubmitPerMinute int // Submissions allowed per client per minute (0 disables)

	// Display
	SiteName       string
	EndingSoonDays int // Dashboard "ending soon" window

	// Repository timeouts
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
}

// UploadMaxBytes converts UploadMaxMB to bytes.
func (c AppConfig) UploadMaxBytes() int64 {
	return int64(c.UploadMaxMB) << 20
}
