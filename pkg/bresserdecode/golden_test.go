package bresserdecode

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matthias-bs/bresser-decode/internal/testutil"
)

func TestGolden(t *testing.T) {
	fixtures := []struct {
		name    string
		profile string
	}{
		{name: "reference"},
		{name: "frost", profile: "weather-ble-soil"},
		{name: "weather_only", profile: "weather"},
	}
	for _, tc := range fixtures {
		t.Run(tc.name, func(t *testing.T) {
			hexStr := testutil.LoadHex(t, "bresser/"+tc.name+".hex")
			result, err := DecodeHex(context.Background(), hexStr, DecodeOptions{Profile: tc.profile})
			require.NoError(t, err)

			want := testutil.LoadJSON(t, "bresser/"+tc.name+".json")
			got, err := json.Marshal(result.Fields)
			require.NoError(t, err)
			require.JSONEq(t, string(want), string(got))
			require.Equal(t, string(want), string(got), "field order differs")
		})
	}
}
