package scalar

import (
	"math"
	"strconv"
)

// littleEndian accumulates up to eight bytes, least significant byte first.
func littleEndian(b []byte) uint64 {
	var v uint64
	for i, x := range b {
		v |= uint64(x) << (8 * i)
	}
	return v
}

func decodeUnsigned(b []byte) Value {
	return Integer(littleEndian(b))
}

func decodeUint16FP1(b []byte) Value {
	return Decimal(FormatFixed1(float64(littleEndian(b)) * 0.1))
}

func decodeHumidity(b []byte) Value {
	return Float(float64(littleEndian(b)) / 1e2)
}

// decodeLatLng reads each 4-byte half as a 32-bit two's-complement integer in
// millionths of a degree.
func decodeLatLng(b []byte) Value {
	lat := int32(uint32(littleEndian(b[:4])))
	lng := int32(uint32(littleEndian(b[4:8])))
	return Coordinates{float64(lat) / 1e6, float64(lng) / 1e6}
}

// decodeTemperature reads a 16-bit value with the first byte most significant.
// Negative values are recovered via invertIncrement16.
func decodeTemperature(b []byte) Value {
	raw := uint16(b[0])<<8 | uint16(b[1])
	t := float64(raw)
	if b[0]&0x80 != 0 {
		t = -float64(invertIncrement16(raw))
	}
	return Decimal(FormatFixed1(t / 1e2))
}

// invertIncrement16 returns the magnitude of a negative 16-bit two's-complement
// value. 0x8000 yields 32768.
func invertIncrement16(v uint16) uint32 {
	return uint32(^v) + 1
}

func decodeRawFloat(b []byte) Value {
	bits := uint32(littleEndian(b))
	return Decimal(FormatFixed1(float32FromBits(bits)))
}

// float32FromBits rebuilds a single-precision value from its sign, exponent and
// mantissa fields. A zero exponent shifts the mantissa left by one with no
// implicit leading bit. Exponent 255 is not special-cased, so the result is
// always finite.
func float32FromBits(bits uint32) float64 {
	sign := 1.0
	if bits>>31 != 0 {
		sign = -1.0
	}
	e := int(bits >> 23 & 0xff)
	var m uint32
	if e == 0 {
		m = (bits & 0x7fffff) << 1
	} else {
		m = bits&0x7fffff | 0x800000
	}
	return sign * math.Ldexp(float64(m), e-150)
}

// FormatFixed1 renders x with exactly one decimal digit. Rounding is based on
// the exact binary value of x; exact ties round away from zero. Negative zero
// renders as "0.0" and magnitudes of 1e21 or more use exponent notation.
func FormatFixed1(x float64) string {
	if x == 0 {
		return "0.0"
	}
	if math.Abs(x) >= 1e21 {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	// Only odd multiples of 0.25 sit exactly halfway between two tenths.
	if q := math.Abs(x) * 4; q == math.Trunc(q) && math.Mod(q, 2) == 1 {
		x = math.Round(x*10) / 10
	}
	return strconv.FormatFloat(x, 'f', 1, 64)
}
