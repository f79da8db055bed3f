// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for the portal.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging level, CORS); AppConfig is
// everything specific to this application.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions
	SessionDomain string // Cookie domain (blank means current host)

	// External geo services used for travel-cost resolution
	PostcodesBaseURL string // postcodes.io-compatible geocoding endpoint
	OSRMBaseURL      string // OSRM-compatible routing endpoint

	// Bootstrap admin account, created or promoted at startup
	AdminName     string
	AdminEmail    string
	AdminPassword string
}
