package vmath

import "math"

// Q7.8 fixed point constants
const (
	Q8Shift = 8
	Q8Scale = 1 << Q8Shift
	Q8Mask  = Q8Scale - 1

	Q8One Q8 = Q8Scale
	Q8Max Q8 = math.MaxInt16
	Q8Min Q8 = math.MinInt16
)

// Q8 is a signed Q7.8 value backed by int16, range [-128, 127.996]
// Compact companion to Q16; convert explicitly with Q8.Q16 and Q16.Q8
type Q8 int16

// Q8FromInt shifts i into Q7.8; i must fit in 7 bits plus sign
func Q8FromInt(i int) Q8 { return Q8(int16(i) << Q8Shift) }

// Q8FromFloat rounds f to nearest, ties away from zero, saturating the range
func Q8FromFloat(f float64) Q8 {
	return Q8(saturate16(saturate32(roundAway(f * Q8Scale))))
}

func (a Q8) Raw() int16     { return int16(a) }
func (a Q8) Int() int       { return int(int16(a) >> Q8Shift) }
func (a Q8) Frac() Q8       { return a & Q8Mask }
func (a Q8) Float() float64 { return float64(a) / Q8Scale }

// Q16 widens losslessly to Q15.16
func (a Q8) Q16() Q16 { return Q16(int32(a) << (Q16Shift - Q8Shift)) }

func (a Q8) Add(b Q8) Q8 { return a + b }
func (a Q8) Sub(b Q8) Q8 { return a - b }

// AddSat adds with saturation at the Q7.8 limits
func (a Q8) AddSat(b Q8) Q8 {
	return Q8(saturate16(int32(a) + int32(b)))
}

// Abs returns |a|; Q8Min maps to Q8Max
func (a Q8) Abs() Q8 {
	if a == Q8Min {
		return Q8Max
	}
	if a < 0 {
		return -a
	}
	return a
}

// Mul widens to 32 bits, shifts right and saturates back to 16
func (a Q8) Mul(b Q8) Q8 {
	return Q8(saturate16((int32(a) * int32(b)) >> Q8Shift))
}

// Div widens the dividend to 32 bits; zero divisor returns Q8Max
func (a Q8) Div(b Q8) Q8 {
	if b == 0 {
		return Q8Max
	}
	return Q8(saturate16((int32(a) << Q8Shift) / int32(b)))
}

// DivSigned returns the signed extreme matching a's sign on a zero divisor
func (a Q8) DivSigned(b Q8) Q8 {
	if b == 0 {
		if a < 0 {
			return Q8Min
		}
		return Q8Max
	}
	return a.Div(b)
}

// DivAbs returns |a / b| clamped to Q8Max; zero divisor returns Q8Max
func (a Q8) DivAbs(b Q8) Q8 {
	if b == 0 {
		return Q8Max
	}
	q := (int32(a) << Q8Shift) / int32(b)
	if q < 0 {
		q = -q
	}
	if q > math.MaxInt16 {
		return Q8Max
	}
	return Q8(q)
}
