package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Input       InputConfig       `mapstructure:"input" validate:"required"`
	Report      ReportConfig      `mapstructure:"report"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)

	// StatsRateLimit caps stats requests per second across all clients; 0 disables the limit.
	StatsRateLimit float64 `mapstructure:"stats_rate_limit" validate:"min=0"`
	StatsBurst     int     `mapstructure:"stats_burst" validate:"min=0"`
}

// LogConfig holds logging configuration.
// File is optional; when set, log output is also written to a rotating file.
type LogConfig struct {
	Level      string `mapstructure:"level" validate:"required"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"min=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"min=0"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// InputConfig selects the access log files, relative to the file storage root.
type InputConfig struct {
	Pattern         string `mapstructure:"pattern" validate:"required,glob"`
	WatchDebounceMs int    `mapstructure:"watch_debounce_ms" validate:"min=0"`
}

// ReportConfig holds report output configuration.
type ReportConfig struct {
	Dir         string `mapstructure:"dir"`
	ChartHeight int    `mapstructure:"chart_height" validate:"min=0,max=100"`
}
