// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (reading .env files) and
// github.com/caarlos0/env/v11 (parsing the environment into tagged structs).
// Each configuration type is parsed once and cached for the life of the
// process; ResetCache clears the cache for tests.
//
//	type Settings struct {
//	    Mode     string `env:"VALIDATION_MODE" envDefault:"throw_first"`
//	    LogLevel string `env:"VALIDATION_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// Fields whose types implement encoding.TextUnmarshaler are decoded through it.
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrInvalidConfigType, ErrNilPointer and ErrLoadingEnvFile.
package config
