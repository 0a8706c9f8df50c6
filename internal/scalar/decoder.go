// Package scalar implements the fixed-width field decoders used by the
// Bresser weather sensor LoRaWAN uplink format.
package scalar

import (
	"errors"
	"fmt"
	"sort"
)

// ErrWidthMismatch is matched by every *WidthMismatchError.
var ErrWidthMismatch = errors.New("field width mismatch")

// WidthMismatchError reports a byte slice whose length differs from the
// decoder's declared width.
type WidthMismatchError struct {
	Decoder  string
	Expected int
	Actual   int
}

func (e *WidthMismatchError) Error() string {
	unit := "bytes"
	if e.Expected == 1 {
		unit = "byte"
	}
	return fmt.Sprintf("%s must have exactly %d %s, got %d", e.Decoder, e.Expected, unit, e.Actual)
}

// Is makes errors.Is(err, ErrWidthMismatch) succeed.
func (e *WidthMismatchError) Is(target error) bool {
	return target == ErrWidthMismatch
}

// Decoder converts a byte field of a fixed width into a Value.
type Decoder interface {
	Name() string
	Width() int
	Decode([]byte) (Value, error)
}

type fixedDecoder struct {
	name  string
	width int
	fn    func([]byte) Value
}

func (d fixedDecoder) Name() string { return d.name }
func (d fixedDecoder) Width() int   { return d.width }

func (d fixedDecoder) Decode(b []byte) (Value, error) {
	if len(b) != d.width {
		return nil, &WidthMismatchError{Decoder: d.name, Expected: d.width, Actual: len(b)}
	}
	return d.fn(b), nil
}

// Built-in decoders, named after the wire types of the uplink format.
var (
	Unixtime    Decoder = fixedDecoder{name: "unixtime", width: 4, fn: decodeUnsigned}
	Uint8       Decoder = fixedDecoder{name: "uint8", width: 1, fn: decodeUnsigned}
	Uint16      Decoder = fixedDecoder{name: "uint16", width: 2, fn: decodeUnsigned}
	Uint32      Decoder = fixedDecoder{name: "uint32", width: 4, fn: decodeUnsigned}
	Uint16FP1   Decoder = fixedDecoder{name: "uint16fp1", width: 2, fn: decodeUint16FP1}
	LatLng      Decoder = fixedDecoder{name: "latLng", width: 8, fn: decodeLatLng}
	Temperature Decoder = fixedDecoder{name: "temperature", width: 2, fn: decodeTemperature}
	Humidity    Decoder = fixedDecoder{name: "humidity", width: 2, fn: decodeHumidity}
	RawFloat    Decoder = fixedDecoder{name: "rawfloat", width: 4, fn: decodeRawFloat}
	Bitmap      Decoder = NewBitmap("bitmap", StatusFlags)

	WeatherBitmap    Decoder = NewBitmap("bitmap_ws", WeatherFlags)
	WeatherBLEBitmap Decoder = NewBitmap("bitmap_ws_ble", WeatherBLEFlags)
)

var builtin = map[string]Decoder{}

func init() {
	for _, d := range []Decoder{
		Unixtime, Uint8, Uint16, Uint32, Uint16FP1,
		LatLng, Temperature, Humidity, RawFloat, Bitmap,
		WeatherBitmap, WeatherBLEBitmap,
	} {
		builtin[d.Name()] = d
	}
}

// Lookup returns the built-in decoder registered under name.
func Lookup(name string) (Decoder, bool) {
	d, ok := builtin[name]
	return d, ok
}

// Names returns the sorted names of all built-in decoders.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
