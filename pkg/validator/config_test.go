package validator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paravaly/pkg/config"
	"github.com/dmitrymomot/paravaly/pkg/logger"
	"github.com/dmitrymomot/paravaly/pkg/validator"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		cfg, err := validator.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, validator.ThrowFirst, cfg.Mode)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Empty(t, cfg.LogFile)
	})

	t.Run("from environment", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("VALIDATION_MODE", "collect_all")
		t.Setenv("VALIDATION_LOG_LEVEL", "debug")
		t.Setenv("VALIDATION_LOG_FORMAT", "text")

		cfg, err := validator.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, validator.ThrowAll, cfg.Mode)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("unknown mode", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("VALIDATION_MODE", "sometimes")

		_, err := validator.LoadConfig()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid log settings", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("VALIDATION_LOG_LEVEL", "loud")
		t.Setenv("VALIDATION_LOG_FORMAT", "xml")

		_, err := validator.LoadConfig()
		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"log_level", "log_format"}, errs.Fields())
	})
}

func TestConfig_Validate(t *testing.T) {
	cfg := validator.Config{Mode: validator.Mode(5), LogLevel: "trace", LogFormat: "yaml"}

	errs := validator.ExtractValidationErrors(cfg.Validate())
	require.Len(t, errs, 3)
	assert.Equal(t, []string{"mode", "log_level", "log_format"}, errs.Fields())
	assert.ErrorIs(t, errs, validator.ErrInvalidEnum)
	assert.ErrorIs(t, errs, validator.ErrNotAllowed)

	valid := validator.Config{Mode: validator.Ignore, LogLevel: "warn", LogFormat: "text"}
	assert.NoError(t, valid.Validate())
}

func TestConfig_Logger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validation.log")
	cfg := validator.Config{Mode: validator.ThrowAll, LogLevel: "debug", LogFormat: "json", LogFile: path}

	d := cfg.Defaults()
	assert.Equal(t, validator.ThrowAll, d.Mode)
	require.Len(t, d.Options, 1)

	err := validator.Param(d, "age", 200).Validate(validator.InRange(0, 150)).Apply()
	require.Error(t, err)

	l := cfg.Logger()
	l.Info("probe")
	require.NoError(t, logger.Close(l))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"validator"`)
	assert.Contains(t, string(data), `"msg":"probe"`)
}

func TestParam(t *testing.T) {
	d := validator.Defaults{Mode: validator.Ignore}

	p := validator.Param(d, "name", "")
	assert.Equal(t, validator.Ignore, p.Mode())
	assert.NoError(t, p.Validate(validator.NotEmpty[string]()).Apply())

	assert.Panics(t, func() { validator.Param(d, " ", 1) })
}
