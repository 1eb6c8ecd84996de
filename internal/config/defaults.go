// Package config provides configuration loading and defaults for mindwell.
package config

// DefaultConfigDir is the default location for mindwell configuration and data.
const DefaultConfigDir = "~/.config/mindwell"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "mindwell.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// EnvPrefix is the prefix for environment overrides, e.g. MINDWELL_DB_PATH.
const EnvPrefix = "MINDWELL"

// DefaultAnalytics holds the default analysis windows.
var DefaultAnalytics = Analytics{
	Window:              7,
	JournalWindow:       5,
	RecommendationLimit: 4,
	JournalListLimit:    10,
}

// DefaultServer holds the default local API settings.
var DefaultServer = Server{
	Addr:        "127.0.0.1:7420",
	CORSOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
