package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "ROWIFY"
	FileName  = "rowify"
)

type ServerConfig struct {
	Port        string
	CorsOrigins []string
}

type Config struct {
	OutputDir string
	LogLevel  string
	Server    ServerConfig
}

// SetDefaults registers every key so environment variables are picked up
// even without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output_dir", ".")
	v.SetDefault("log_level", "info")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.cors_origins", []string{"*"})
}

// New returns a viper instance reading ROWIFY_* variables and an optional
// rowify.yaml from the working directory or $HOME.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads .env, the config file and the environment into a Config.
func Load(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("Skipping .env ...", "error", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		slog.Debug("No config file found, using defaults and environment")
	}

	cfg := &Config{
		OutputDir: v.GetString("output_dir"),
		LogLevel:  v.GetString("log_level"),
		Server: ServerConfig{
			Port:        v.GetString("server.port"),
			CorsOrigins: parseOrigins(v.GetStringSlice("server.cors_origins")),
		},
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	if err := validatePort(cfg.Server.Port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	return cfg, nil
}

func parseOrigins(raw []string) []string {
	var origins []string
	for _, entry := range raw {
		// ROWIFY_SERVER_CORS_ORIGINS arrives as one comma separated string
		for _, origin := range strings.Split(entry, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
