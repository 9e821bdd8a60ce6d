package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalFormats(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"naive iso", `"2024-06-10T14:30:00"`, time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)},
		{"naive iso with micros", `"2024-06-10T14:30:00.123456"`, time.Date(2024, 6, 10, 14, 30, 0, 123456000, time.UTC)},
		{"rfc3339", `"2024-06-10T14:30:00Z"`, time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)},
		{"bare date", `"2024-06-10"`, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tc.in), &ts))
			assert.True(t, ts.Equal(tc.want), "got %v, want %v", ts.Time, tc.want)
		})
	}
}

func TestTimestamp_UnmarshalNull(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte("null"), &ts))
	assert.True(t, ts.IsZero())
}

func TestTimestamp_UnmarshalGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"not a time"`), &ts))
}

func TestFeed_Filter(t *testing.T) {
	feed := Feed{
		{ID: 1, Kind: KindOuting},
		{ID: 2, Kind: KindXerox},
		{ID: 3, Kind: KindOuting},
	}

	assert.Len(t, feed.Filter(FilterAll), 3)

	outings := feed.Filter("outing")
	require.Len(t, outings, 2)
	assert.Equal(t, int64(1), outings[0].ID)
	assert.Equal(t, int64(3), outings[1].ID)

	assert.Empty(t, feed.Filter("mess"))
}

func TestServiceKind_Endpoints(t *testing.T) {
	assert.Equal(t, "outing-requests", KindOuting.Endpoint())
	assert.Equal(t, "requests", KindOuting.ListKey())
	assert.Equal(t, "request", KindOuting.ItemKey())

	assert.Equal(t, "xerox-orders", KindXerox.Endpoint())
	assert.Equal(t, "orders", KindXerox.ListKey())
	assert.Equal(t, "order", KindCCD.ItemKey())
	assert.Equal(t, "stationary-orders", KindStationary.Endpoint())
}
