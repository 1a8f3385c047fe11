// Package f16 implements IEEE-754 binary16 (float16) conversion.
//
// G3D stores float16 channels as raw 2-byte values; this package exists so
// callers can read them as float32 without an external half-float library.
package f16

import (
	"math"
)

// Bits is the raw IEEE-754 binary16 bit-pattern: 1 sign bit, 5 exponent bits
// (bias 15), 10 fraction bits.
type Bits uint16

const (
	signMask Bits = 0x8000
	expMask  Bits = 0x7C00
	fracMask Bits = 0x03FF

	f32ExpMask  uint32 = 0x7F800000
	f32FracMask uint32 = 0x007FFFFF
)

// ToFloat32 converts a binary16 bit-pattern to float32. The conversion is
// exact: every binary16 value is representable in binary32.
func ToFloat32(h Bits) float32 {
	sign := uint32(h&signMask) << 16
	exp := uint32(h&expMask) >> 10
	frac := uint32(h & fracMask)

	switch exp {
	case 0:
		if frac == 0 {
			return math.Float32frombits(sign) // +/- zero
		}
		// Subnormal: shift the fraction up until the leading 1 becomes the
		// implicit bit, adjusting the exponent from the binary16 minimum.
		e := int32(-14)
		m := frac
		for m&0x0400 == 0 {
			m <<= 1
			e--
		}
		m &= 0x03FF
		return math.Float32frombits(sign | uint32(e+127)<<23 | m<<13)
	case 0x1F:
		if frac == 0 {
			return math.Float32frombits(sign | f32ExpMask) // infinity
		}
		return math.Float32frombits(sign | f32ExpMask | frac<<13) // NaN
	default:
		return math.Float32frombits(sign | uint32(exp-15+127)<<23 | frac<<13)
	}
}

// FromFloat32 converts a float32 value to a binary16 bit-pattern, rounding
// to nearest with ties to even.
func FromFloat32(f float32) Bits {
	bits := math.Float32bits(f)
	sign := Bits((bits >> 16) & uint32(signMask))
	exp := int32((bits & f32ExpMask) >> 23)
	frac := bits & f32FracMask

	if exp == 0xFF {
		if frac == 0 {
			return sign | expMask // infinity
		}
		// Keep the NaN quiet and non-zero.
		payload := Bits(frac>>13) | 0x0200
		return sign | expMask | (payload & fracMask)
	}
	if exp == 0 {
		// float32 subnormals are far below the binary16 range.
		return sign
	}

	e16 := exp - 127 + 15
	if e16 >= 0x1F {
		return sign | expMask // overflow to infinity
	}
	if e16 <= 0 {
		if e16 < -10 {
			return sign // underflow to zero
		}
		// Binary16 subnormal: denormalize with the implicit bit explicit.
		mant := frac | 0x00800000
		shift := uint32(1-e16) + 13
		m := mant >> shift
		rem := mant & (1<<shift - 1)
		half := uint32(1) << (shift - 1)
		if rem > half || (rem == half && m&1 == 1) {
			m++
		}
		return sign | Bits(m)
	}

	m := frac >> 13
	rem := frac & 0x1FFF
	if rem > 0x1000 || (rem == 0x1000 && m&1 == 1) {
		m++
		if m == 0x0400 {
			m = 0
			e16++
			if e16 >= 0x1F {
				return sign | expMask
			}
		}
	}
	return sign | Bits(uint32(e16)<<10) | Bits(m)
}

// Decode converts a slice of binary16 bit-patterns to a new float32 slice.
func Decode(src []Bits) []float32 {
	dst := make([]float32, len(src))
	for i, h := range src {
		dst[i] = ToFloat32(h)
	}
	return dst
}

// Encode converts a slice of float32 values to a new binary16 slice.
func Encode(src []float32) []Bits {
	dst := make([]Bits, len(src))
	for i, f := range src {
		dst[i] = FromFloat32(f)
	}
	return dst
}
