package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Generator GeneratorConfig `mapstructure:"generator" validate:"required"`
	Request   RequestConfig   `mapstructure:"request"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// GeneratorConfig contains the tuning knobs of the code generator.
type GeneratorConfig struct {
	FailureBudget    int    `mapstructure:"failure_budget" validate:"required,gte=1,lte=10000"`
	EnumerationLimit int    `mapstructure:"enumeration_limit" validate:"required,gte=1,lte=50000000"`
	Workers          int    `mapstructure:"workers" validate:"required,gte=1,lte=64"`
	Seed             uint64 `mapstructure:"seed"`
	Strategy         string `mapstructure:"strategy" validate:"required,oneof=auto enumerate sample"`
}

// RequestConfig describes the batch the command produces. Field contents
// are checked when the request is parsed, not at load time, so a config
// without a request still loads.
type RequestConfig struct {
	Sex      string `mapstructure:"sex"`
	DateFrom string `mapstructure:"date_from"`
	DateTo   string `mapstructure:"date_to"`
	Count    int    `mapstructure:"count" validate:"gte=0"`
}
