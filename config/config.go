package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	LogAPI LogAPIConfig
	Viewer ViewerConfig
	Export ExportConfig
}

type ServerConfig struct {
	Port string
}

type LogAPIConfig struct {
	BaseURL     string // Production endpoint, with %s for the log name
	TestBaseURL string // UAT endpoint, same shape
	Timeout     time.Duration
}

type ViewerConfig struct {
	Timezone string // IANA zone the canonical timestamps are rendered in
	PageSize int
}

type ExportConfig struct {
	Directory       string
	CleanupSchedule string        // Cron spec (with seconds) for the temp-file sweep
	TempMaxAge      time.Duration // Orphaned .tmp files older than this are removed
}

func NewConfig() (*Config, error) {
	// Configure Viper to read .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Enable automatic environment variable loading
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_API_BASE_URL", "https://api.1111job.app/logs/%s")
	viper.SetDefault("LOG_API_TEST_BASE_URL", "https://uat-api.1111job.app/logs/%s")
	viper.SetDefault("LOG_API_TIMEOUT", "30s")
	viper.SetDefault("LOG_TIMEZONE", "Asia/Taipei")
	viper.SetDefault("PAGE_SIZE", 10)
	viper.SetDefault("EXPORT_DIRECTORY", "./exports")
	viper.SetDefault("EXPORT_CLEANUP_SCHEDULE", "0 */10 * * * *") // Every 10 minutes
	viper.SetDefault("EXPORT_TEMP_MAX_AGE", "1h")

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config
	config.Server.Port = viper.GetString("SERVER_PORT")

	config.LogAPI.BaseURL = viper.GetString("LOG_API_BASE_URL")
	config.LogAPI.TestBaseURL = viper.GetString("LOG_API_TEST_BASE_URL")
	config.LogAPI.Timeout = viper.GetDuration("LOG_API_TIMEOUT")

	config.Viewer.Timezone = viper.GetString("LOG_TIMEZONE")
	config.Viewer.PageSize = viper.GetInt("PAGE_SIZE")

	config.Export.Directory = viper.GetString("EXPORT_DIRECTORY")
	config.Export.CleanupSchedule = viper.GetString("EXPORT_CLEANUP_SCHEDULE")
	config.Export.TempMaxAge = viper.GetDuration("EXPORT_TEMP_MAX_AGE")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
