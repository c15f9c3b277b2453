package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvironmentVariable(t *testing.T) {
	t.Setenv("TRAVIGO_TEST_VALUE", "set")

	assert.Equal(t, "set", GetEnvironmentVariable("TRAVIGO_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnvironmentVariable("TRAVIGO_TEST_MISSING", "fallback"))
	assert.Equal(t, "set", GetEnvironmentVariables()["TRAVIGO_TEST_VALUE"])
}

func TestParseDuration(t *testing.T) {
	tests := map[string]time.Duration{
		"90m":     90 * time.Minute,
		"PT90M":   90 * time.Minute,
		"P1D":     24 * time.Hour,
		"PT1H30M": 90 * time.Minute,
	}

	for input, expected := range tests {
		duration, err := ParseDuration(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, duration, input)
	}

	_, err := ParseDuration("ninety minutes")
	assert.Error(t, err)
}
