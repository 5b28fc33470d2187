package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paravaly/pkg/validator"
)

func TestMode_String(t *testing.T) {
	assert.Equal(t, "throw_first", validator.ThrowFirst.String())
	assert.Equal(t, "throw_all", validator.ThrowAll.String())
	assert.Equal(t, "ignore", validator.Ignore.String())
	assert.Equal(t, "mode(9)", validator.Mode(9).String())
}

func TestMode_ZeroValueIsThrowFirst(t *testing.T) {
	var m validator.Mode
	assert.Equal(t, validator.ThrowFirst, m)
	assert.True(t, m.Valid())
	assert.False(t, validator.Mode(3).Valid())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want validator.Mode
	}{
		{"throw_first", validator.ThrowFirst},
		{"FAIL_FAST", validator.ThrowFirst},
		{" first ", validator.ThrowFirst},
		{"throw_all", validator.ThrowAll},
		{"collect", validator.ThrowAll},
		{"All", validator.ThrowAll},
		{"ignore", validator.Ignore},
		{"noop", validator.Ignore},
		{"none", validator.Ignore},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := validator.ParseMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := validator.ParseMode("sometimes")
		assert.ErrorIs(t, err, validator.ErrUnknownMode)
	})
}

func TestMode_Text(t *testing.T) {
	for _, m := range []validator.Mode{validator.ThrowFirst, validator.ThrowAll, validator.Ignore} {
		text, err := m.MarshalText()
		require.NoError(t, err)

		var back validator.Mode
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, m, back)
	}

	_, err := validator.Mode(7).MarshalText()
	assert.ErrorIs(t, err, validator.ErrUnknownMode)

	m := validator.Ignore
	assert.Error(t, m.UnmarshalText([]byte("bogus")))
	assert.Equal(t, validator.Ignore, m, "failed unmarshal leaves the value alone")
}
