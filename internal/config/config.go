package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppConfig struct {
	APP struct {
		Name  string `mapstructure:"NAME"`
		Port  string `mapstructure:"PORT"`
		State string `mapstructure:"STATE"`
	}

	DATABASE struct {
		Mongo struct {
			URI      string `mapstructure:"URI"`
			Database string `mapstructure:"DATABASE"`
		}
		Redis struct {
			Addr     string `mapstructure:"ADDR"`
			Password string `mapstructure:"PASSWORD"`
		}
	}

	APP_SECRET struct {
		JWT struct {
			Secret            string `mapstructure:"SECRET"`
			AccessTTLMinutes  int    `mapstructure:"ACCESS_TTL_MINUTES"`
			RefreshTTLMinutes int    `mapstructure:"REFRESH_TTL_MINUTES"`
		}
	}

	MAILTRAP struct {
		Sandbox struct {
			SandboxAPI    string `mapstructure:"SANDBOX_API"`
			SandboxURL    string `mapstructure:"SANDBOX_URL"`
			SandboxDomain string `mapstructure:"SANDBOX_DOMAIN"`
		}
		API struct {
			MailtrapTokenAPI string `mapstructure:"MAILTRAP_TOKEN_API"`
			MailtrapURL      string `mapstructure:"MAILTRAP_URL"`
			MailtrapDomain   string `mapstructure:"MAILTRAP_DOMAIN"`
		}
	}
}

func LoadConfig() *AppConfig {
	viper.SetConfigName("application")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Error().Err(err).Msg("Failed to read config file")
		return nil
	}

	var config AppConfig
	if err := viper.Unmarshal(&config); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal config")
		return nil
	}

	if config.APP.Port == "" {
		config.APP.Port = "8080"
	}

	if config.DATABASE.Mongo.URI == "" {
		log.Error().Msg("Mongo URI is not configured")
		return nil
	}

	if config.DATABASE.Mongo.Database == "" {
		config.DATABASE.Mongo.Database = "to-do"
	}

	if config.APP_SECRET.JWT.Secret == "" {
		log.Error().Msg("JWT secret is not configured")
		return nil
	}

	if config.APP_SECRET.JWT.AccessTTLMinutes == 0 {
		config.APP_SECRET.JWT.AccessTTLMinutes = 15
	}

	if config.APP_SECRET.JWT.RefreshTTLMinutes == 0 {
		config.APP_SECRET.JWT.RefreshTTLMinutes = 60 * 24 * 7
	}

	log.Info().Msg("Configuration loaded...")
	return &config
}
