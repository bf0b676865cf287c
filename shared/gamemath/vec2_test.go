package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func assertVecNear(t *testing.T, want, got Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
}

func TestVec2Basics(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	assert.Equal(t, V(4, -2), a.Add(b))
	assert.Equal(t, V(-2, 6), a.Sub(b))
	assert.Equal(t, V(2.5, 5), a.Scale(2.5))
	assert.Equal(t, V(3, -8), a.MulComponents(b))
	assert.Equal(t, V(-1, -2), a.Negate())
	assert.Equal(t, float32(5), b.Magnitude())
}

func TestAddCommutativeAndAssociative(t *testing.T) {
	vs := []Vec2{V(0.1, -3), V(12.5, 7.25), V(-1e3, 4e-3), V(0, 0)}
	for _, a := range vs {
		for _, b := range vs {
			assert.Equal(t, a.Add(b), b.Add(a))
			for _, c := range vs {
				lhs := a.Add(b).Add(c)
				rhs := a.Add(b.Add(c))
				assert.InDelta(t, lhs.X, rhs.X, 1e-3)
				assert.InDelta(t, lhs.Y, rhs.Y, 1e-3)
			}
		}
	}
}

func TestScaleByZero(t *testing.T) {
	assert.Equal(t, Zero, V(13, -7).Scale(0))
}

func TestDivByZero(t *testing.T) {
	for _, a := range []Vec2{V(1, 1), V(-5, 3), Zero, V(float32(math.Inf(1)), 2)} {
		assert.Equal(t, Zero, a.Div(0))
	}
	assert.Equal(t, V(2, -1), V(4, -2).Div(2))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Zero, Zero.Normalize())

	for _, a := range []Vec2{V(1, 0), V(1, 1), V(-3, 4), V(0.001, 0), V(250, -1000)} {
		n := a.Normalize()
		require.Greater(t, a.Magnitude(), float32(0))
		assert.InDelta(t, 1, n.Magnitude(), eps)
	}

	assertVecNear(t, V(-0.6, 0.8), V(-3, 4).Normalize())
}

func TestLerp(t *testing.T) {
	a := V(0, 10)
	b := V(100, 20)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assertVecNear(t, V(5, 10.5), a.Lerp(b, 0.05))
	// t is not clamped
	assertVecNear(t, V(200, 30), a.Lerp(b, 2))
}

func TestClampVec(t *testing.T) {
	min := Zero
	max := V(1152, 592)

	assert.Equal(t, Zero, ClampVec(V(-5, -5), min, max))
	assert.Equal(t, max, ClampVec(V(1200, 600), min, max))
	assert.Equal(t, V(10, 20), ClampVec(V(10, 20), min, max))
}

func TestStepDiagonalMatchesCardinal(t *testing.T) {
	const speed = 10
	cardinal := Step(Zero, V(1, 0), speed)
	diagonal := Step(Zero, V(1, 1), speed)

	assert.InDelta(t, speed, cardinal.Magnitude(), eps)
	assert.InDelta(t, speed, diagonal.Magnitude(), eps)
	assert.Equal(t, V(3, 4), Step(V(3, 4), Zero, speed))
}
