package vmath

// Vec2 is a 2D position or direction in Q15.16
type Vec2 struct {
	X, Y Q16
}

// V2 builds a vector from two Q15.16 components
func V2(x, y Q16) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale multiplies both components by s
func (v Vec2) Scale(s Q16) Vec2 { return Vec2{v.X.Mul(s), v.Y.Mul(s)} }

// MulAdd returns v + o*s, the ray direction form dir + plane*cameraX
func (v Vec2) MulAdd(o Vec2, s Q16) Vec2 {
	return Vec2{v.X.AddSat(o.X.Mul(s)), v.Y.AddSat(o.Y.Mul(s))}
}

// Dot returns x1*x2 + y1*y2
func (v Vec2) Dot(o Vec2) Q16 {
	return v.X.Mul(o.X).AddSat(v.Y.Mul(o.Y))
}

// Perpendicular returns the vector rotated 90° counter-clockwise
func (v Vec2) Perpendicular() Vec2 { return Vec2{v.Y.Neg(), v.X} }

// Rotate applies the 2x2 rotation [cos -sin; sin cos]
// Each product is formed in 64 bits before the shift back to Q15.16
func (v Vec2) Rotate(sin, cos Q16) Vec2 {
	x := (int64(v.X)*int64(cos) - int64(v.Y)*int64(sin)) >> Q16Shift
	y := (int64(v.X)*int64(sin) + int64(v.Y)*int64(cos)) >> Q16Shift
	return Vec2{Q16(saturate32(x)), Q16(saturate32(y))}
}

// RotateDeg rotates by whole degrees using the sine table
func (v Vec2) RotateDeg(deg int) Vec2 {
	return v.Rotate(SinDeg(deg), CosDeg(deg))
}

// MagnitudeSq returns x² + y² as raw Q32.32 in an unsigned 64-bit intermediate
func (v Vec2) MagnitudeSq() uint64 {
	x, y := int64(v.X), int64(v.Y)
	return uint64(x*x) + uint64(y*y)
}

// Magnitude returns the Euclidean length via ISqrt, saturated to Q16Max
func (v Vec2) Magnitude() Q16 {
	m := ISqrt(v.MagnitudeSq())
	if m > uint64(Q16Max) {
		return Q16Max
	}
	return Q16(m)
}

// Normalize returns the unit vector; zero vector is returned unchanged
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return v
	}
	return Vec2{v.X.Div(mag), v.Y.Div(mag)}
}

// Cell returns the grid cell containing the point
func (v Vec2) Cell() (int, int) { return v.X.Int(), v.Y.Int() }
