package bresserdecode

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matthias-bs/bresser-decode/internal/mask"
	"github.com/matthias-bs/bresser-decode/internal/profile"
	"github.com/matthias-bs/bresser-decode/internal/scalar"
	"github.com/matthias-bs/bresser-decode/internal/testutil"
)

func TestDecodeDefaultProfile(t *testing.T) {
	payload := testutil.LoadPayload(t, "bresser/reference.hex")
	result, err := Decode(context.Background(), payload, DecodeOptions{})
	require.NoError(t, err)
	require.Equal(t, profile.DefaultName, result.Profile)
	require.Equal(t, 26, result.ByteCount)
	require.Equal(t, "C00898372D001E000E0B000048411C0D740E03E808342AFF3819", result.RawHex)
	require.Equal(t, 14, result.Fields.Len())
}

func TestDecodeBase64(t *testing.T) {
	result, err := DecodeBase64(context.Background(), "wAiYNy0AHgAOCwAASEEcDXQOA+gINCr/OBk=", DecodeOptions{})
	require.NoError(t, err)
	temp, err := result.FieldSet().String("air_temp_c")
	require.NoError(t, err)
	require.Equal(t, "22.0", temp)
}

func TestDecodeShortPayload(t *testing.T) {
	_, err := DecodeHex(context.Background(), "C00898", DecodeOptions{})
	require.True(t, errors.Is(err, mask.ErrInsufficientBuffer))
	var ib *mask.InsufficientBufferError
	require.ErrorAs(t, err, &ib)
	require.Equal(t, 26, ib.Expected)
	require.Equal(t, 3, ib.Actual)
}

func TestDecodeUnknownProfile(t *testing.T) {
	_, err := DecodeHex(context.Background(), "00", DecodeOptions{Profile: "nope"})
	require.EqualError(t, err, `profile "nope" not found`)
}

func TestDecodeFeatures(t *testing.T) {
	// status_node, status, air temp, humidity, 3x wind, rain, supply voltage
	payload := []byte{
		0x00, 0xC0, 0x00, 0xC8, 0x32,
		0x0A, 0x00, 0x05, 0x00, 0x84, 0x03,
		0x00, 0x00, 0x00, 0x00,
		0x1C, 0x0D,
	}
	result, err := Decode(context.Background(), payload, DecodeOptions{Features: []string{"ADC_EN"}})
	require.NoError(t, err)
	require.Equal(t, []string{
		"status_node", "status", "air_temp_c", "humidity", "wind_gust_meter_sec",
		"wind_avg_meter_sec", "wind_direction_deg", "rain_mm", "supply_v",
	}, result.FieldSet().Keys())
	supply, err := result.FieldSet().Int("supply_v")
	require.NoError(t, err)
	require.Equal(t, int64(3356), supply)
}

func TestDecodeContextProfile(t *testing.T) {
	p := profile.New("ctx", profile.Field(scalar.Uint16, "counter"))
	ctx := WithProfile(context.Background(), p)
	result, err := Decode(ctx, []byte{0x01, 0x02}, DecodeOptions{})
	require.NoError(t, err)
	require.Equal(t, "ctx", result.Profile)
	n, err := result.FieldSet().Int("counter")
	require.NoError(t, err)
	require.Equal(t, int64(0x0201), n)

	result, err = Decode(ctx, testutil.LoadPayload(t, "bresser/weather_only.hex"), DecodeOptions{Profile: "weather"})
	require.NoError(t, err)
	require.Equal(t, "weather", result.Profile)
}

func TestDecodeIdempotent(t *testing.T) {
	payload := testutil.LoadPayload(t, "bresser/frost.hex")
	a, err := Decode(context.Background(), payload, DecodeOptions{})
	require.NoError(t, err)
	b, err := Decode(context.Background(), payload, DecodeOptions{})
	require.NoError(t, err)
	require.Equal(t, a.String(), b.String())
}

func TestResultString(t *testing.T) {
	profile.Register(profile.New("test-two-bytes", profile.Field(scalar.Uint8, "a"), profile.Field(scalar.Uint8, "b")))
	result, err := DecodeHex(context.Background(), "0102", DecodeOptions{Profile: "test-two-bytes"})
	require.NoError(t, err)
	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.String()), &summary))
	require.Equal(t, "0102", summary["raw_hex"])
	require.Equal(t, float64(2), summary["byte_count"])
	require.Equal(t, map[string]any{"a": float64(1), "b": float64(2)}, summary["fields"])
}

func TestProfiles(t *testing.T) {
	require.Subset(t, Profiles(), []string{"weather", "weather-ble", "weather-ble-soil"})
}
