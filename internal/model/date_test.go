package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", d.String())
	assert.True(t, d.SameMonth(2024, time.March))
	assert.False(t, d.SameMonth(2024, time.April))
	assert.False(t, d.SameMonth(2023, time.March))

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateMonthKey(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want string
	}{
		{name: "regular date", date: NewDate(2024, time.March, 15), want: "2024-03"},
		{name: "single digit month pads", date: NewDate(2024, time.January, 5), want: "2024-01"},
		{name: "zero date is empty", date: Date{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.MonthKey())
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.December, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-01"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, d.Equal(back))
}

func TestDateUnmarshalLenient(t *testing.T) {
	// Malformed or absent dates become the zero date instead of failing the
	// surrounding collection.
	for _, raw := range []string{`""`, `null`, `"garbage"`, `"2024-13-99"`} {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(raw), &d), "input %s", raw)
		assert.True(t, d.IsZero(), "input %s", raw)
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2024, time.January, 5)
	b := NewDate(2024, time.March, 2)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}
