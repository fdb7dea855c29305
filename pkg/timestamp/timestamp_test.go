package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	at := time.Date(2024, time.March, 7, 9, 5, 2, 0, time.UTC)
	assert.Equal(t, "2024-03-07 09:05:02", Format(at))
}

func TestFormatZeroPadding(t *testing.T) {
	at := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01 00:00:00", Format(at))
}

func TestParseRoundTrip(t *testing.T) {
	at := time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC)

	parsed, err := Parse(Format(at))
	require.NoError(t, err)
	assert.True(t, at.Equal(parsed))
}

func TestParseRejectsOtherLayouts(t *testing.T) {
	_, err := Parse("2024-03-07T09:05:02Z")
	assert.Error(t, err)
}
