package bresserdecode

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matthias-bs/bresser-decode/internal/profile"
	"github.com/matthias-bs/bresser-decode/internal/scalar"
	"github.com/matthias-bs/bresser-decode/internal/testutil"
)

func TestFieldSetAccessors(t *testing.T) {
	result, err := Decode(context.Background(), testutil.LoadPayload(t, "bresser/frost.hex"), DecodeOptions{})
	require.NoError(t, err)
	fs := result.FieldSet()

	temp, err := fs.Float("air_temp_c")
	require.NoError(t, err)
	require.InDelta(t, -5.0, temp, 1e-9)

	hum, err := fs.Float("humidity")
	require.NoError(t, err)
	require.Equal(t, 90.0, hum)

	moisture, err := fs.Int("soil_moisture")
	require.NoError(t, err)
	require.Equal(t, int64(0), moisture)

	status, err := fs.Int("status")
	require.NoError(t, err)
	require.Equal(t, int64(0x40), status)

	decOK, err := fs.Flag("status", "ws_dec_ok")
	require.NoError(t, err)
	require.True(t, decOK)
	battOK, err := fs.Flag("status", "ws_batt_ok")
	require.NoError(t, err)
	require.False(t, battOK)

	s, err := fs.String("soil_temp_c")
	require.NoError(t, err)
	require.Equal(t, "-1.3", s)

	m := fs.Map()
	require.Equal(t, "-1.4", m["water_temp_c"])
	require.Equal(t, int64(3584), m["battery_v"])
}

func TestFieldSetErrors(t *testing.T) {
	result, err := Decode(context.Background(), testutil.LoadPayload(t, "bresser/reference.hex"), DecodeOptions{})
	require.NoError(t, err)
	fs := result.FieldSet()

	_, err = fs.Float("missing")
	require.EqualError(t, err, `field "missing" missing`)
	_, err = fs.Int("air_temp_c")
	require.ErrorContains(t, err, "unsupported type")
	_, err = fs.Float("status")
	require.ErrorContains(t, err, "unsupported type")
	_, err = fs.Flag("humidity", "ok")
	require.ErrorContains(t, err, "unsupported type")
	_, err = fs.Flag("status", "nope")
	require.EqualError(t, err, `field "status" has no flag "nope"`)
	_, _, err = fs.Coordinates("status")
	require.ErrorContains(t, err, "unsupported type")
}

func TestFieldSetCoordinates(t *testing.T) {
	p := profile.New("tracker", profile.Field(scalar.Unixtime, "time"), profile.Field(scalar.LatLng, "position"))
	ctx := WithProfile(context.Background(), p)
	result, err := DecodeHex(ctx, "80510100 48642103E67433FF", DecodeOptions{})
	require.NoError(t, err)
	lat, lng, err := result.FieldSet().Coordinates("position")
	require.NoError(t, err)
	require.Equal(t, 52.520008, lat)
	require.Equal(t, -13.404954, lng)
	ts, err := result.FieldSet().Int("time")
	require.NoError(t, err)
	require.Equal(t, int64(86400), ts)
}
