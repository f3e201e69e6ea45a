package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    TimeString
		wantErr bool
	}{
		{name: "standard time", in: "10:30", want: "10:30"},
		{name: "midnight", in: "00:00", want: "00:00"},
		{name: "missing leading zero is normalized", in: "9:00", want: "09:00"},
		{name: "hour out of range", in: "25:00", wantErr: true},
		{name: "minute out of range", in: "10:60", wantErr: true},
		{name: "wrong separator", in: "10-30", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	morning := TimeString("09:30")
	noon := TimeString("12:00")

	assert.True(t, morning.IsBefore(noon))
	assert.False(t, noon.IsBefore(morning))
	assert.True(t, noon.IsAfter(morning))
	assert.False(t, noon.IsBefore(noon))
	assert.False(t, noon.IsAfter(noon))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("21:30")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("22:00"), next)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	anchored, err := TimeString("19:30").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 1, 19, 30, 0, 0, time.UTC), anchored)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, time.June, 1, 7, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("07:05"), ts)
	assert.False(t, ts.IsZero())
	assert.True(t, TimeString("").IsZero())
}
