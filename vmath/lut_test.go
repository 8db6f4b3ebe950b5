package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinDeg_KnownValues(t *testing.T) {
	assert.Equal(t, Q16(0), SinDeg(0))
	assert.Equal(t, Q16One, SinDeg(90))
	assert.Equal(t, Q16(0), SinDeg(180))
	assert.Equal(t, -Q16One, SinDeg(270))
	assert.Equal(t, Q16(0), SinDeg(360))
	assert.Equal(t, Q16Half, SinDeg(30))
	assert.Equal(t, -Q16Half, SinDeg(-30))
	assert.Equal(t, Q16One, CosDeg(0))
	assert.Equal(t, -Q16One, CosDeg(180))
}

func TestSinDeg_MatchesFloat(t *testing.T) {
	for d := -720; d <= 720; d++ {
		want := math.Sin(float64(d) * math.Pi / 180)
		got := SinDeg(d).Float()
		require.InDelta(t, want, got, 1.0/Q16Scale, "deg=%d", d)
	}
}

func TestSinDeg_Symmetry(t *testing.T) {
	for d := -400; d <= 400; d++ {
		require.Equal(t, SinDeg(d), SinDeg(180-d), "sin(d) == sin(180-d), d=%d", d)
		require.Equal(t, SinDeg(d), -SinDeg(d+180), "sin(d) == -sin(d+180), d=%d", d)
		require.Equal(t, SinDeg(d), SinDeg(d+360), "period, d=%d", d)
	}
}

func TestReciprocal_Clamps(t *testing.T) {
	assert.Equal(t, Q16One, Reciprocal(0))
	assert.Equal(t, Q16One, Reciprocal(Q16FromFloat(0.99)))
	assert.Equal(t, Q16(0), Reciprocal(RecipMaxDistance()))
	assert.Equal(t, Q16(0), Reciprocal(Q16Max))
	assert.Greater(t, Reciprocal(RecipMaxDistance()-1), Q16(0))
}

func TestReciprocal_TableAndInterpolation(t *testing.T) {
	assert.Equal(t, Q16(recipFirst()), Reciprocal(Q16One))
	assert.Equal(t, Q16FromFloat(0.25), Reciprocal(Q16FromInt(4)))

	// 4.5 sits halfway between 1/4 and 1/5
	got := Reciprocal(Q16FromFloat(4.5)).Float()
	assert.InDelta(t, 0.225, got, 1.0/Q16Scale)

	for d := 2.0; d < float64(RecipTableSize); d += 0.125 {
		got := Reciprocal(Q16FromFloat(d)).Float()
		assert.InDelta(t, 1/d, got, 0.02, "d=%v", d)
	}
}

func TestReciprocal_Monotonic(t *testing.T) {
	prev := Reciprocal(0)
	for raw := int32(0); raw <= int32(RecipMaxDistance())+Q16Scale; raw += 97 {
		cur := Reciprocal(Q16FromRaw(raw))
		require.LessOrEqual(t, cur, prev, "raw=%d", raw)
		prev = cur
	}
}

func recipFirst() int32 { return recipTable[0] }
