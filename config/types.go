package config

// Config represents the complete configuration structure
type Config struct {
	Curated CuratedConfig `mapstructure:"curated"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CuratedConfig holds Curated API connection details
type CuratedConfig struct {
	URL           string `mapstructure:"url"`
	APIKey        string `mapstructure:"api_key"`
	PublicationID string `mapstructure:"publication_id"`
	PageSize      int    `mapstructure:"page_size"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
