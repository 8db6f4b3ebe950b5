package vmath

import "math"

// Q15.16 fixed point constants
const (
	Q16Shift = 16
	Q16Scale = 1 << Q16Shift
	Q16Mask  = Q16Scale - 1

	Q16One  Q16 = Q16Scale
	Q16Half Q16 = Q16Scale >> 1
	Q16Max  Q16 = math.MaxInt32
	Q16Min  Q16 = math.MinInt32
)

// Q16 is a signed Q15.16 value backed by int32
// Canonical format for positions, directions and distances
type Q16 int32

// --- Construction ---

// Q16FromInt shifts i into Q15.16
// i must fit in 15 bits plus sign; overflow is not checked
func Q16FromInt(i int) Q16 { return Q16(int32(i) << Q16Shift) }

// Q16FromFloat rounds f to nearest, ties away from zero
// Use for constants and table generation only
func Q16FromFloat(f float64) Q16 {
	return Q16(saturate32(roundAway(f * Q16Scale)))
}

// Q16FromRaw wraps a pre-scaled raw value
func Q16FromRaw(raw int32) Q16 { return Q16(raw) }

// --- Conversion ---

// Raw returns the underlying scaled integer
func (a Q16) Raw() int32 { return int32(a) }

// Int floors toward negative infinity (arithmetic shift)
// -0.5 maps to -1, which grid indexing relies on
func (a Q16) Int() int { return int(int32(a) >> Q16Shift) }

// Frac returns the fractional bits as a non-negative Q15.16 value in [0, 1)
func (a Q16) Frac() Q16 { return a & Q16Mask }

// Float is for diagnostics and tests
func (a Q16) Float() float64 { return float64(a) / Q16Scale }

// Q8 narrows to Q7.8, dropping 8 fractional bits and saturating the range
func (a Q16) Q8() Q8 {
	v := int32(a) >> (Q16Shift - Q8Shift)
	if v > math.MaxInt16 {
		return Q8Max
	}
	if v < math.MinInt16 {
		return Q8Min
	}
	return Q8(v)
}

// --- Arithmetic ---

// Add is unchecked raw addition
func (a Q16) Add(b Q16) Q16 { return a + b }

// Sub is unchecked raw subtraction
func (a Q16) Sub(b Q16) Q16 { return a - b }

// AddSat adds with saturation at the Q15.16 limits
func (a Q16) AddSat(b Q16) Q16 {
	return Q16(saturate32(int64(a) + int64(b)))
}

// Neg negates; Q16Min maps to Q16Max
func (a Q16) Neg() Q16 {
	if a == Q16Min {
		return Q16Max
	}
	return -a
}

// Abs returns |a|; Q16Min maps to Q16Max
func (a Q16) Abs() Q16 {
	if a < 0 {
		return a.Neg()
	}
	return a
}

// Mul widens to 64 bits, shifts right (truncating toward -inf) and saturates back to 32
func (a Q16) Mul(b Q16) Q16 {
	return Q16(saturate32((int64(a) * int64(b)) >> Q16Shift))
}

// MulInt multiplies by a plain integer with saturation
func (a Q16) MulInt(i int) Q16 {
	return Q16(saturate32(int64(a) * int64(i)))
}

// Div divides with a 64-bit widened dividend
// Zero divisor returns Q16Max; out-of-range quotients saturate
func (a Q16) Div(b Q16) Q16 {
	if b == 0 {
		return Q16Max
	}
	return Q16(saturate32((int64(a) << Q16Shift) / int64(b)))
}

// DivSigned is Div with a sign-aware zero policy:
// zero divisor returns Q16Max for a >= 0 and Q16Min for a < 0
func (a Q16) DivSigned(b Q16) Q16 {
	if b == 0 {
		if a < 0 {
			return Q16Min
		}
		return Q16Max
	}
	return a.Div(b)
}

// DivAbs returns |a / b| for call sites that need a non-negative magnitude
// The absolute value is taken on the wide quotient before narrowing, so tiny
// divisors clamp to Q16Max instead of wrapping negative. Zero divisor returns Q16Max
func (a Q16) DivAbs(b Q16) Q16 {
	if b == 0 {
		return Q16Max
	}
	q := (int64(a) << Q16Shift) / int64(b)
	if q < 0 {
		q = -q
	}
	if q > math.MaxInt32 {
		return Q16Max
	}
	return Q16(q)
}

// --- Helpers ---

func saturate32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

func saturate16(v int32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// roundAway rounds half away from zero, clamped to int64 range
func roundAway(f float64) int64 {
	if f >= 0 {
		f += 0.5
	} else {
		f -= 0.5
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	if f <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(f)
}

// --- Integer Square Root ---

// ISqrt returns floor(sqrt(n)) using the digit-by-digit base-4 method
func ISqrt[T ~uint32 | ~uint64](n T) T {
	if n < 2 {
		return n
	}

	var root T
	bit := T(1) << (bitWidth(n) - 2)

	// Largest power of four <= n
	for bit > n {
		bit >>= 2
	}

	for bit != 0 {
		if n >= root+bit {
			n -= root + bit
			root = (root >> 1) + bit
		} else {
			root >>= 1
		}
		bit >>= 2
	}
	return root
}

func bitWidth[T ~uint32 | ~uint64](n T) uint {
	var probe T = ^T(0)
	if uint64(probe) == math.MaxUint32 {
		return 32
	}
	return 64
}
