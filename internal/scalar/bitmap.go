package scalar

// Flag layouts, most significant bit first.
var (
	// StatusFlags covers weather sensor, soil sensor and BLE thermometer.
	StatusFlags = [8]string{"ws_batt_ok", "ws_dec_ok", "s1_batt_ok", "s1_dec_ok", "ble_ok", "res0", "res1", "res2"}
	// WeatherFlags covers the weather sensor only.
	WeatherFlags = [8]string{"batt_ok", "dec_ok", "res0", "res1", "res2", "res3", "res4", "res5"}
	// WeatherBLEFlags covers weather sensor and BLE thermometer.
	WeatherBLEFlags = [8]string{"batt_ok", "dec_ok", "ble_ok", "res0", "res1", "res2", "res3", "res4"}
)

// NewBitmap returns a one-byte decoder mapping the bits of its input, most
// significant first, onto flags.
func NewBitmap(name string, flags [8]string) Decoder {
	layout := flags
	return fixedDecoder{
		name:  name,
		width: 1,
		fn: func(b []byte) Value {
			return Flags{layout: &layout, bits: b[0]}
		},
	}
}

// expandBits returns the binary digits of b, most significant first.
func expandBits(b byte) [8]bool {
	var out [8]bool
	for i := range out {
		out[i] = b&(0x80>>i) != 0
	}
	return out
}
