package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())

	// A full timestamp truncates to its calendar date.
	d, err = ParseDate("2026-03-15T18:45:00Z")
	require.NoError(t, err)
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, 15, d.Day())

	_, err = ParseDate("15/03/2026")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-03-15T18:45:00Z")
	require.NoError(t, err)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-15"`, string(out))

	var parsed Date
	require.NoError(t, json.Unmarshal(out, &parsed))
	assert.True(t, parsed.Equal(d.Time))
}
