package config

import "time"

// Config represents the application configuration
type Config struct {
	Docs    DocsConfig    `mapstructure:"docs" yaml:"docs"`
	Cache   CacheConfig   `mapstructure:"cache" yaml:"cache"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Strict  bool          `mapstructure:"strict" yaml:"strict"`
}

// DocsConfig contains documentation-tree settings
type DocsConfig struct {
	// Dir is the root directory leaf paths resolve against
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// CacheConfig contains report cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl"`
	Directory string        `mapstructure:"directory" yaml:"directory"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, repairing out-of-range values
func (c *Config) Validate() error {
	if c.Docs.Dir == "" {
		c.Docs.Dir = DefaultDocsDir
	}
	if c.Cache.TTL < time.Minute {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
