package config_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paravaly/pkg/config"
)

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type TestConfigSingleton struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type TestConfigDifferent1 struct {
	Value string `env:"VALUE_TYPE1" envDefault:"default1"`
}

type TestConfigDifferent2 struct {
	Value string `env:"VALUE_TYPE2" envDefault:"default2"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error with valid environment variables")
	assert.Equal(t, "test_value", cfg.TestString, "TestString should match environment variable")
	assert.Equal(t, 100, cfg.TestInt, "TestInt should match environment variable")
	assert.Equal(t, false, cfg.TestBool, "TestBool should match environment variable")
}

func TestLoad_DefaultValues(t *testing.T) {
	// Clean environment variables to ensure defaults are used
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")

	var cfg TestConfigDefault
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error when using default values")
	assert.Equal(t, "default_value", cfg.TestString, "TestString should use default value")
	assert.Equal(t, 42, cfg.TestInt, "TestInt should use default value")
	assert.Equal(t, true, cfg.TestBool, "TestBool should use default value")
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err, "Load should return an error when a required value is missing")
	assert.True(t, errors.Is(err, config.ErrParsingConfig), "Error should be ErrParsingConfig")
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_STRING_SINGLETON", "first_value")

	var firstConfig TestConfigSingleton
	err := config.Load(&firstConfig)
	require.NoError(t, err, "First load should not return an error")

	// Change environment variable to verify caching behavior
	t.Setenv("TEST_STRING_SINGLETON", "second_value")

	var secondConfig TestConfigSingleton
	err = config.Load(&secondConfig)
	require.NoError(t, err, "Second load should not return an error")

	// Both configs should have the same value due to singleton pattern
	assert.Equal(t, firstConfig.TestString, secondConfig.TestString,
		"Both configs should have the same value due to singleton pattern")
	assert.Equal(t, "first_value", secondConfig.TestString,
		"Second config should have the first value due to caching")
}

func TestLoad_DifferentTypes(t *testing.T) {
	t.Setenv("VALUE_TYPE1", "test_type1")
	t.Setenv("VALUE_TYPE2", "test_type2")

	var config1 TestConfigDifferent1
	err := config.Load(&config1)
	require.NoError(t, err, "Loading first config type should not error")

	var config2 TestConfigDifferent2
	err = config.Load(&config2)
	require.NoError(t, err, "Loading second config type should not error")

	assert.Equal(t, "test_type1", config1.Value, "First config should have its own value")
	assert.Equal(t, "test_type2", config2.Value, "Second config should have its own value")
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess = nil
	err := config.Load(cfg)

	require.Error(t, err, "Load should return an error when given a nil pointer")
	assert.ErrorIs(t, err, config.ErrNilPointer, "Error should be ErrNilPointer")
}

func TestLoad_NotAStruct(t *testing.T) {
	var n int
	err := config.Load(&n)
	assert.ErrorIs(t, err, config.ErrInvalidConfigType)
}

type upper string

func (u *upper) UnmarshalText(text []byte) error {
	*u = upper(strings.ToUpper(string(text)))
	return nil
}

type TextUnmarshalerConfig struct {
	Value upper `env:"TEST_TEXT_UNMARSHALER" envDefault:"lower"`
}

func TestLoad_TextUnmarshaler(t *testing.T) {
	os.Unsetenv("TEST_TEXT_UNMARSHALER")

	var cfg TextUnmarshalerConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, upper("LOWER"), cfg.Value)
}

type CustomEnvConfig struct {
	TestString    string `env:"TEST_CUSTOM_STRING"`
	TestInt       int    `env:"TEST_CUSTOM_INT"`
	TestWithQuote string `env:"TEST_CUSTOM_WITH_QUOTES"`
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads custom file", func(t *testing.T) {
		t.Setenv("TEST_CUSTOM_STRING", "")
		t.Setenv("TEST_CUSTOM_INT", "")
		t.Setenv("TEST_CUSTOM_WITH_QUOTES", "")
		config.ResetCache()

		require.NoError(t, config.LoadEnv("testdata/.env.custom"))

		var cfg CustomEnvConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "custom_value", cfg.TestString)
		assert.Equal(t, 1234, cfg.TestInt)
		assert.Equal(t, "quoted value", cfg.TestWithQuote)
	})

	t.Run("later files take precedence", func(t *testing.T) {
		t.Setenv("TEST_CUSTOM_STRING", "")
		t.Setenv("TEST_CUSTOM_INT", "")
		t.Setenv("TEST_CUSTOM_WITH_QUOTES", "")
		config.ResetCache()

		require.NoError(t, config.LoadEnv("testdata/.env.custom", "testdata/.env.override"))

		var cfg CustomEnvConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "override_value", cfg.TestString)
		assert.Equal(t, 9999, cfg.TestInt)
		assert.Equal(t, "quoted value", cfg.TestWithQuote)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/non_existent_file.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
	})

	t.Setenv("REQUIRED_VALUE", "set")
	assert.NotPanics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
		assert.Equal(t, "set", cfg.Required)
	})
}
