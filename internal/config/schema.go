package config

// Config represents the full tasklist configuration
type Config struct {
	// Priority given to new tasks until the user picks another
	DefaultPriority string `yaml:"default_priority" mapstructure:"default_priority"`

	// Go time layout used for a task's creation date
	DateLayout string `yaml:"date_layout" mapstructure:"date_layout"`

	// Ask before deleting a task
	ConfirmDelete bool `yaml:"confirm_delete" mapstructure:"confirm_delete"`

	// Colored shell output
	Color bool `yaml:"color" mapstructure:"color"`

	// Log level: debug, info, warn or error
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}
