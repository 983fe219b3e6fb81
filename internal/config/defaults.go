package config

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultPriority: "low",
		DateLayout:      "1/2/2006",
		ConfirmDelete:   true,
		Color:           true,
		LogLevel:        "warn",
	}
}
