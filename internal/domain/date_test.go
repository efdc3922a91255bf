package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, "2024-01-15", d.String())

	for _, bad := range []string{"", "15/01/2024", "2024-1-15", "2024-13-01", "yesterday"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", bad)
	}
}

func TestDate_DaysUntil(t *testing.T) {
	today := NewDate(2024, time.March, 10)

	assert.Equal(t, 5, today.DaysUntil(NewDate(2024, time.March, 15)))
	assert.Equal(t, 0, today.DaysUntil(today))
	assert.Equal(t, -9, today.DaysUntil(NewDate(2024, time.March, 1)))
	// Across a month boundary.
	assert.Equal(t, 22, today.DaysUntil(NewDate(2024, time.April, 1)))
}

func TestDate_AddDays(t *testing.T) {
	d := NewDate(2024, time.March, 1)

	assert.Equal(t, NewDate(2024, time.February, 29), d.AddDays(-1), "2024 is a leap year")
	assert.Equal(t, NewDate(2024, time.March, 31), d.AddDays(30))
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.December, 31)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-31"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, d.Equal(decoded))

	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &decoded))
}
