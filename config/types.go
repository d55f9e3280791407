package config

// Config represents the complete configuration structure
type Config struct {
	Qonqr   QonqrConfig   `mapstructure:"qonqr"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// QonqrConfig holds zones API credentials and connection details
type QonqrConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
