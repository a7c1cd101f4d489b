package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSAPDate_Wrapped(t *testing.T) {
	decoded, ok := DecodeSAPDate("/Date(1704067200000)/")

	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), decoded)
}

func TestDecodeSAPDate_Rejects(t *testing.T) {
	cases := []string{
		"2024-01-01",
		"",
		"/Date()/",
		"/Date(abc)/",
		"Date(1704067200000)",
		"/Date(1704067200000)",
	}

	for _, input := range cases {
		_, ok := DecodeSAPDate(input)
		assert.False(t, ok, "input %q should not decode", input)
	}
}

func TestFormatSAPDate_RoundTrip(t *testing.T) {
	assert.Equal(t, "2024-01-01", FormatSAPDate("/Date(1704067200000)/"))
}

// Non-wrapped inputs pass through unchanged, so already-plain dates survive.
func TestFormatSAPDate_PassThrough(t *testing.T) {
	assert.Equal(t, "2024-01-01", FormatSAPDate("2024-01-01"))
	assert.Equal(t, "", FormatSAPDate(""))
	assert.Equal(t, "not a date", FormatSAPDate("not a date"))
}
