// Package config loads application configuration from file and environment
// and bootstraps the global logger.
package config

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Sheets SheetsConfig `yaml:"sheets" mapstructure:"sheets"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Ingest IngestConfig `yaml:"ingest" mapstructure:"ingest"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// SheetsConfig holds the spreadsheet collaborator settings. CredentialsJSON
// is the full service-account key, supplied as one JSON blob through the
// deployment environment (PANCAKE_SHEETS_CREDENTIALS_JSON).
type SheetsConfig struct {
	CredentialsJSON string  `yaml:"credentials_json" mapstructure:"credentials_json"`
	SpreadsheetID   string  `yaml:"spreadsheet_id" mapstructure:"spreadsheet_id"`
	RateLimitRPS    float64 `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
}

// ServerConfig configures the webhook server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// IngestConfig configures partition creation and store call behavior.
type IngestConfig struct {
	StoreTimeoutSecs int   `yaml:"store_timeout_secs" mapstructure:"store_timeout_secs"`
	PartitionRows    int64 `yaml:"partition_rows" mapstructure:"partition_rows"`
	PartitionCols    int64 `yaml:"partition_cols" mapstructure:"partition_cols"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from an optional config.yaml in the working
// directory, overridden by PANCAKE_-prefixed environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PANCAKE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. The empty sheets defaults also register the keys so
	// AutomaticEnv can populate them through Unmarshal.
	v.SetDefault("sheets.credentials_json", "")
	v.SetDefault("sheets.spreadsheet_id", "")
	v.SetDefault("sheets.rate_limit_rps", 1.0)
	v.SetDefault("server.port", 5000)
	v.SetDefault("ingest.store_timeout_secs", 10)
	v.SetDefault("ingest.partition_rows", 2000)
	v.SetDefault("ingest.partition_cols", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// ValidateSheets checks the settings the spreadsheet collaborator cannot run
// without. Commands that touch the store call this before doing anything;
// a failure here is startup-fatal, never a per-request error.
func (c *Config) ValidateSheets() error {
	if c.Sheets.SpreadsheetID == "" {
		return eris.New("config: sheets.spreadsheet_id is required (PANCAKE_SHEETS_SPREADSHEET_ID)")
	}
	if c.Sheets.CredentialsJSON == "" {
		return eris.New("config: sheets.credentials_json is required (PANCAKE_SHEETS_CREDENTIALS_JSON)")
	}
	if !json.Valid([]byte(c.Sheets.CredentialsJSON)) {
		return eris.New("config: sheets.credentials_json is not valid JSON")
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
