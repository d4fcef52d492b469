package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "hh:mm", input: "09:00", want: "09:00"},
		{name: "postgres time", input: "17:00:00", want: "17:00"},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "no leading zero", input: "9:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Clock(t *testing.T) {
	h, m, err := TimeString("14:30").Clock()
	require.NoError(t, err)
	assert.Equal(t, 14, h)
	assert.Equal(t, 30, m)

	assert.True(t, TimeString("10:00").IsWholeHour())
	assert.False(t, TimeString("10:30").IsWholeHour())
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan([]byte("12:00:00")))
	assert.Equal(t, TimeString("12:00"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:00"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Start TimeString `json:"start"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"10:00"}`), &payload))
	assert.Equal(t, TimeString("10:00"), payload.Start)

	assert.Error(t, json.Unmarshal([]byte(`{"start":"10"}`), &payload))
}
