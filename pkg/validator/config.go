package validator

import (
	"log/slog"

	"github.com/dmitrymomot/paravaly/pkg/config"
	"github.com/dmitrymomot/paravaly/pkg/logger"
)

// Config holds process-wide defaults for validation sessions.
type Config struct {
	Mode      Mode   `env:"VALIDATION_MODE" envDefault:"throw_first"`
	LogLevel  string `env:"VALIDATION_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"VALIDATION_LOG_FORMAT" envDefault:"json"`
	LogFile   string `env:"VALIDATION_LOG_FILE"`
}

// LoadConfig reads Config from the environment (and .env, if present) and
// validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	mode := CollectAll("mode", c.Mode).
		Validate(Check(KindEnum, "unknown mode", Mode.Valid, nil))

	level := And(mode, "log_level", c.LogLevel).
		Validate(OneOf("debug", "info", "warn", "error"))

	return And(level, "log_format", c.LogFormat).
		Validate(OneOf(string(logger.FormatJSON), string(logger.FormatText))).
		Apply()
}

// Logger builds the logger described by the configuration.
func (c Config) Logger() *slog.Logger {
	return logger.New(
		logger.WithLevel(logger.ParseLevel(c.LogLevel)),
		logger.WithFormat(logger.Format(c.LogFormat)),
		logger.WithFile(c.LogFile),
		logger.WithAttr(logger.Component("validator")),
	)
}

// Defaults is a mode plus session options, built once from a Config and
// reused for every session.
type Defaults struct {
	Mode    Mode
	Options []Option
}

// Defaults builds a new logger; call it once and keep the result.
func (c Config) Defaults() Defaults {
	return Defaults{Mode: c.Mode, Options: []Option{WithLogger(c.Logger())}}
}

// Param starts a session for name with the given defaults.
// It panics if name is empty or blank.
func Param[T any](d Defaults, name string, value T) *Parameter[T] {
	return must(New(name, value, d.Mode, d.Options...))
}
