package gamemath

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampVec clamps each component of v into the box [min, max].
func ClampVec(v, min, max Vec2) Vec2 {
	return Vec2{
		X: Clamp(v.X, min.X, max.X),
		Y: Clamp(v.Y, min.Y, max.Y),
	}
}

// Step advances pos by dir normalized to the given speed, so diagonal
// movement covers the same distance per frame as cardinal movement.
func Step(pos, dir Vec2, speed float32) Vec2 {
	return pos.Add(dir.Normalize().Scale(speed))
}
