package main

import "math"

// float16ToFloat32 expands IEEE 754-2008 binary16 data into float32 values.
// dst must be at least len(src).
func float16ToFloat32(dst []float32, src []uint16) {
	for i, v := range src {
		dst[i] = float16BitsToFloat32(v)
	}
}

func float16BitsToFloat32(h uint16) float32 {
	sign := uint32(h>>15) << 31
	exp := int((h >> 10) & 0x1f)
	mant := uint32(h & 0x3ff)

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// subnormal: normalise the mantissa
		exp = -14
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		mant &= 0x3ff
		return math.Float32frombits(sign | uint32(exp+127)<<23 | mant<<13)
	case 0x1f:
		bits := sign | 0x7f800000 | mant<<13
		if mant != 0 {
			bits |= 1
		}
		return math.Float32frombits(bits)
	default:
		return math.Float32frombits(sign | uint32(exp-15+127)<<23 | mant<<13)
	}
}
