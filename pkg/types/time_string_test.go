package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"09:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"9:00", true},
		{"09:60", true},
		{"0900", true},
		{"", true},
		{"noon", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2024, 6, 10, 14, 5, 30, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:30")

	later, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), later)

	earlier, err := ts.AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), earlier)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err, "overflow past midnight")

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.Error(t, err, "underflow before midnight")
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:30"))
	assert.False(t, TimeString("09:30").IsAfter("09:30"))
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("01:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 90, minutes)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("12:45"))
	assert.Equal(t, TimeString("12:45"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.Equal(t, TimeString(""), ts)

	assert.Error(t, ts.Scan(42))
}
