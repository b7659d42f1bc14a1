package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"weblog-stats/internal/shared/validators"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix = "WEBLOG"
	envFile   = ".env"

	defaultReportDir   = "reports"
	defaultChartHeight = 10

	defaultStatsBurst      = 1
	defaultWatchDebounceMs = 200
)

// LoadConfig reads configuration from file, applies environment overrides and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	// A .env next to the config file is optional
	envPath := filepath.Join(filepath.Dir(configPath), envFile)
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load env file %q: %w", envPath, err)
		}
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v, reflect.TypeOf(Config{}), "")

	v.SetDefault("report.dir", defaultReportDir)
	v.SetDefault("report.chart_height", defaultChartHeight)
	v.SetDefault("server.stats_burst", defaultStatsBurst)
	v.SetDefault("input.watch_debounce_ms", defaultWatchDebounceMs)

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// bindEnvs registers every mapstructure key with viper. AutomaticEnv only
// consults the environment for keys viper already knows, so keys missing
// from the file would otherwise never pick up their WEBLOG_* override.
func bindEnvs(v *viper.Viper, t reflect.Type, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if field.Type.Kind() == reflect.Struct {
			bindEnvs(v, field.Type, key)
			continue
		}
		// BindEnv only fails when called without a key
		_ = v.BindEnv(key)
	}
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path from the mapstructure names (e.g., "server.stats_rate_limit")
	if e.Namespace() != "" {
		// "Config.server.stats_rate_limit" -> "server.stats_rate_limit"
		parts := strings.Split(e.Namespace(), ".")
		if len(parts) >= 2 {
			field = strings.Join(parts[1:], ".")
		}
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
