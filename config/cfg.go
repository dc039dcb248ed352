package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	httpapi "github.com/jekabolt/currency-exchange/internal/api/http"
	"github.com/jekabolt/currency-exchange/internal/rates"
	"github.com/jekabolt/currency-exchange/internal/reference"
	"github.com/jekabolt/currency-exchange/log"
)

// Config represents the global configuration for the service.
type Config struct {
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Rates     rates.Config     `mapstructure:"rates"`
	Reference reference.Config `mapstructure:"reference"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// A .env file in the working directory is loaded first when present,
// variables already set in the environment are not overridden.
func LoadConfig(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %v", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	v.AutomaticEnv()
	// e.g., http.port -> HTTP__PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			// If config file doesn't exist, continue with env vars only
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/currency-exchange")
		v.AddConfigPath("/etc/currency-exchange")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if isDevelopment() {
		config.HTTP.Development = true
		config.Logger.Pretty = true
	}

	return &config, nil
}

// isDevelopment mirrors the usual APP_ENV / NODE_ENV switch.
func isDevelopment() bool {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = os.Getenv("NODE_ENV")
	}
	return strings.EqualFold(env, "development")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.pretty", false)

	v.SetDefault("http.port", "4001")
	v.SetDefault("http.address", "")
	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("http.development", false)
	v.SetDefault("http.host", "localhost:4001")
	v.SetDefault("http.scheme", "http")
	v.SetDefault("http.request_timeout", "60s")
	v.SetDefault("http.shutdown_timeout", "5s")

	v.SetDefault("rates.base_url", "https://api.exchangeratesapi.io/")
	v.SetDefault("rates.api_key", "")
	v.SetDefault("rates.timeout", "10s")
	v.SetDefault("rates.default_base", "EUR")

	v.SetDefault("reference.dataset_path", "")
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (HTTP__PORT) and flat keys (HTTP_PORT)
func bindEnvVars(v *viper.Viper) {
	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")
	v.BindEnv("logger.pretty", "LOG_PRETTY")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT", "PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.development", "HTTP_DEVELOPMENT")
	v.BindEnv("http.host", "HTTP_HOST", "HOST_IP")
	v.BindEnv("http.scheme", "HTTP_SCHEME", "SCHEME")
	v.BindEnv("http.request_timeout", "HTTP_REQUEST_TIMEOUT")
	v.BindEnv("http.shutdown_timeout", "HTTP_SHUTDOWN_TIMEOUT")

	// Rates
	v.BindEnv("rates.base_url", "RATES_BASE_URL")
	v.BindEnv("rates.api_key", "RATES_API_KEY")
	v.BindEnv("rates.timeout", "RATES_TIMEOUT")
	v.BindEnv("rates.default_base", "RATES_DEFAULT_BASE")

	// Reference
	v.BindEnv("reference.dataset_path", "REFERENCE_DATASET_PATH")
}
