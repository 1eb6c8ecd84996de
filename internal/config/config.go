package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the top-level mindwell configuration.
type Config struct {
	DBPath    string    `mapstructure:"db_path"`
	Analytics Analytics `mapstructure:"analytics"`
	Server    Server    `mapstructure:"server"`
	Output    Output    `mapstructure:"output"`
}

// Analytics controls the windows used by the aggregators and rules.
type Analytics struct {
	// Window is the number of recent check-ins averaged for mood and
	// wellness and inspected by activity rules.
	Window int `mapstructure:"window"`

	// JournalWindow is the number of recent journal entries the sentiment
	// rule inspects.
	JournalWindow int `mapstructure:"journal_window"`

	RecommendationLimit int `mapstructure:"recommendation_limit"`
	JournalListLimit    int `mapstructure:"journal_list_limit"`
}

// Server defines the local HTTP API settings.
type Server struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`

	// LogFile, when set, also writes request logs to a size-rotated file.
	LogFile string `mapstructure:"log_file"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A .env file in the
// working directory and MINDWELL_* environment variables override file
// values.
func Load(cfgFile string) (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("db_path", filepath.Join(DefaultConfigDir, DefaultDBName))
	v.SetDefault("analytics.window", DefaultAnalytics.Window)
	v.SetDefault("analytics.journal_window", DefaultAnalytics.JournalWindow)
	v.SetDefault("analytics.recommendation_limit", DefaultAnalytics.RecommendationLimit)
	v.SetDefault("analytics.journal_list_limit", DefaultAnalytics.JournalListLimit)
	v.SetDefault("server.addr", DefaultServer.Addr)
	v.SetDefault("server.cors_origins", DefaultServer.CORSOrigins)
	v.SetDefault("server.log_file", DefaultServer.LogFile)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(ConfigDir())
		v.SetConfigName(strings.TrimSuffix(DefaultConfigFile, filepath.Ext(DefaultConfigFile)))
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Analytics.Window <= 0 {
		cfg.Analytics.Window = DefaultAnalytics.Window
	}
	if cfg.Analytics.JournalWindow <= 0 {
		cfg.Analytics.JournalWindow = DefaultAnalytics.JournalWindow
	}

	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.Server.LogFile = expandPath(cfg.Server.LogFile)

	return &cfg, nil
}

// ConfigDir returns the expanded default configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
