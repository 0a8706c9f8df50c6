package mask

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"github.com/matthias-bs/bresser-decode/internal/profile"
	"github.com/matthias-bs/bresser-decode/internal/scalar"
)

const referencePayload = "C00898372D001E000E0B000048411C0D740E03E808342AFF3819"

func TestDecodeReferenceProfile(t *testing.T) {
	buf := decodeHex(t, referencePayload)
	f, err := Decode(buf, profile.WeatherBLESoil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	names := profile.WeatherBLESoil.Names()
	keys := f.Keys()
	if len(keys) != len(names) {
		t.Fatalf("got %d fields want %d", len(keys), len(names))
	}
	for i := range names {
		if keys[i] != names[i] {
			t.Fatalf("field %d: got %s want %s", i, keys[i], names[i])
		}
	}
	checks := map[string]scalar.Value{
		"air_temp_c":          scalar.Decimal("22.0"),
		"humidity":            scalar.Integer(55),
		"wind_gust_meter_sec": scalar.Decimal("4.5"),
		"wind_direction_deg":  scalar.Decimal("283.0"),
		"rain_mm":             scalar.Decimal("12.5"),
		"battery_v":           scalar.Integer(3700),
		"soil_temp_c":         scalar.Decimal("-2.0"),
		"soil_moisture":       scalar.Integer(25),
	}
	for name, want := range checks {
		got, ok := f.Get(name)
		if !ok || got != want {
			t.Fatalf("%s: got %v want %v", name, got, want)
		}
	}
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	buf := append(decodeHex(t, referencePayload), 0xDE, 0xAD)
	f, err := Decode(buf, profile.WeatherBLESoil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Len() != len(profile.WeatherBLESoil.Fields) {
		t.Fatalf("Len = %d", f.Len())
	}
}

func TestDecodeInsufficientBuffer(t *testing.T) {
	buf := decodeHex(t, referencePayload)
	f, err := Decode(buf[:25], profile.WeatherBLESoil)
	if f != nil {
		t.Fatalf("expected no partial frame")
	}
	if !errors.Is(err, ErrInsufficientBuffer) {
		t.Fatalf("expected ErrInsufficientBuffer, got %v", err)
	}
	var ib *InsufficientBufferError
	if !errors.As(err, &ib) {
		t.Fatalf("expected *InsufficientBufferError, got %T", err)
	}
	if ib.Expected != 26 || ib.Actual != 25 {
		t.Fatalf("unexpected values %+v", ib)
	}
	if err.Error() != "mask length is 26 whereas input is 25" {
		t.Fatalf("unexpected message %q", err)
	}
}

func TestDecodeUnnamedFields(t *testing.T) {
	p := profile.New("anon",
		profile.Field(scalar.Uint8, ""),
		profile.Field(scalar.Uint16, "named"),
		profile.Field(scalar.Uint8, ""),
	)
	f, err := Decode([]byte{1, 2, 0, 3}, p)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"0":1,"named":2,"2":3}` {
		t.Fatalf("unexpected json %s", data)
	}
}

func TestDecodeEmptyProfile(t *testing.T) {
	f, err := Decode(nil, profile.New("empty"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Len() != 0 {
		t.Fatalf("Len = %d", f.Len())
	}
}

var errBroken = errors.New("broken sensor")

type failingDecoder struct{}

func (failingDecoder) Name() string { return "failing" }
func (failingDecoder) Width() int   { return 2 }
func (failingDecoder) Decode([]byte) (scalar.Value, error) {
	return nil, errBroken
}

func TestDecodeAbortsOnFieldError(t *testing.T) {
	p := profile.New("broken",
		profile.Field(scalar.Uint8, "first"),
		profile.Field(failingDecoder{}, "second"),
		profile.Field(scalar.Uint8, "third"),
	)
	f, err := Decode([]byte{1, 2, 3, 4}, p)
	if f != nil {
		t.Fatalf("expected no partial frame")
	}
	if !errors.Is(err, errBroken) {
		t.Fatalf("expected wrapped decoder error, got %v", err)
	}
	if err.Error() != `field "second": broken sensor` {
		t.Fatalf("unexpected message %q", err)
	}
}

func TestDecodeFieldCountProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	profiles := []profile.Profile{profile.Weather, profile.WeatherBLE, profile.WeatherBLESoil}
	for i := 0; i < 200; i++ {
		p := profiles[i%len(profiles)]
		n := p.Width() + rng.Intn(8)
		buf := make([]byte, n)
		rng.Read(buf)
		f, err := Decode(buf, p)
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		if f.Len() != len(p.Fields) {
			t.Fatalf("iteration %d: got %d fields want %d", i, f.Len(), len(p.Fields))
		}
		again, err := Decode(buf, p)
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		a, _ := json.Marshal(f)
		b, _ := json.Marshal(again)
		if string(a) != string(b) {
			t.Fatalf("iteration %d: decode not idempotent:\n%s\n%s", i, a, b)
		}

		short := buf[:rng.Intn(p.Width())]
		_, err = Decode(short, p)
		var ib *InsufficientBufferError
		if !errors.As(err, &ib) || ib.Expected != p.Width() || ib.Actual != len(short) {
			t.Fatalf("iteration %d: unexpected error %v", i, err)
		}
	}
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex decode: %v", err)
	}
	return b
}
