package vmath

//go:generate go run ../cmd/lutgen -out tables_gen.go

// --- Trigonometry ---

// SinDeg returns sin(deg) in Q15.16 from the quarter-wave table
func SinDeg(deg int) Q16 {
	deg %= 360
	if deg < 0 {
		deg += 360
	}

	switch {
	case deg <= 90:
		return Q16(sinQuarter[deg])
	case deg <= 180:
		return Q16(sinQuarter[180-deg])
	case deg <= 270:
		return -Q16(sinQuarter[deg-180])
	default:
		return -Q16(sinQuarter[360-deg])
	}
}

// CosDeg returns cos(deg) as the sine of the complementary angle
func CosDeg(deg int) Q16 {
	return SinDeg(90 - deg)
}

// --- Reciprocal ---

// Reciprocal approximates 1/d in Q15.16 for d >= 0
// d < 1 saturates to Q16One, d beyond the table returns 0
// Between integer distances the adjacent entries are linearly interpolated
// with the fractional part of d; the result is non-increasing in d
func Reciprocal(d Q16) Q16 {
	if d < Q16One {
		return Q16One
	}
	whole := d.Int()
	if whole > RecipTableSize {
		return 0
	}

	base := recipTable[whole-1]
	frac := int64(d.Frac())
	if frac == 0 {
		return Q16(base)
	}

	next := recipTable[whole]
	return Q16(int64(base) + ((int64(next-base) * frac) >> Q16Shift))
}

// RecipMaxDistance is the first distance that projects to zero height
func RecipMaxDistance() Q16 {
	return Q16FromInt(RecipTableSize + 1)
}
