package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONTimeUnmarshalFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", `"2025-08-12T09:30:00Z"`, time.Date(2025, 8, 12, 9, 30, 0, 0, time.UTC)},
		{"no zone with millis", `"2025-08-12T09:30:00.000"`, time.Date(2025, 8, 12, 9, 30, 0, 0, time.UTC)},
		{"no zone", `"2025-08-12T09:30:00"`, time.Date(2025, 8, 12, 9, 30, 0, 0, time.UTC)},
		{"date only", `"2025-08-12"`, time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var jt JSONTime
			require.NoError(t, json.Unmarshal([]byte(tt.input), &jt))
			assert.True(t, tt.want.Equal(jt.Time()), "got %v", jt.Time())
		})
	}
}

func TestJSONTimeRoundTrip(t *testing.T) {
	original := JSONTime(time.Date(2025, 8, 12, 9, 30, 0, 0, time.UTC))
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded JSONTime
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, original.Time().Equal(decoded.Time()))
}

func TestDocumentNumberFormat(t *testing.T) {
	number := NewDocumentNumber(PrefixWorkOrder)
	assert.True(t, strings.HasPrefix(number, "WO-"))

	parts := strings.Split(number, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[1], 8)
	assert.Len(t, parts[2], 3)
}

func TestStockTakeNumberFormat(t *testing.T) {
	number := NewStockTakeNumber()
	assert.True(t, strings.HasPrefix(number, "ST"))
	assert.Len(t, number, 16)
}
