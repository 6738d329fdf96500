package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestV3Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"zero stays zero", Vec3{}, Vec3{}},
		{"axis", Vec3{0, 5, 0}, Vec3{0, 1, 0}},
		{"diagonal", Vec3{3, 0, 4}, Vec3{0.6, 0, 0.8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := V3Normalize(tt.in)
			assert.True(t, V3ApproxEqual(got, tt.want, eps), "got %+v", got)
			assert.False(t, math.IsNaN(got.X) || math.IsNaN(got.Y) || math.IsNaN(got.Z))
		})
	}
}

func TestV3CrossDot(t *testing.T) {
	assert.Equal(t, AxisZ, V3Cross(AxisX, AxisY))
	assert.Equal(t, AxisX, V3Cross(AxisY, AxisZ))
	assert.Equal(t, 0.0, V3Dot(AxisX, AxisY))
	assert.Equal(t, 32.0, V3Dot(Vec3{1, 2, 3}, Vec3{4, 5, 6}))
}

func TestQuatRoundTrip(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 200; i++ {
		q := QFromAxisAngle(r.UnitSphere(), r.Range(-math.Pi, math.Pi))
		v := V3Scale(r.UnitSphere(), r.Range(0.1, 100))

		back := QRotate(QConj(q), QRotate(q, v))
		require.True(t, V3ApproxEqual(back, v, 1e-9), "iteration %d: %+v != %+v", i, back, v)
	}
}

func TestQFromAxisAngle(t *testing.T) {
	q := QFromAxisAngle(AxisY, math.Pi/2)
	got := QRotate(q, AxisZ)
	assert.True(t, V3ApproxEqual(got, AxisX, eps), "got %+v", got)

	assert.Equal(t, QIdentity, QFromAxisAngle(Vec3{}, 1.0))
}

func TestQMulComposition(t *testing.T) {
	a := QFromAxisAngle(AxisY, 0.3)
	b := QFromAxisAngle(AxisX, -0.7)
	v := Vec3{1, 2, 3}

	composed := QRotate(QMul(a, b), v)
	sequential := QRotate(a, QRotate(b, v))
	assert.True(t, V3ApproxEqual(composed, sequential, eps))
}

func TestQFromForwardUp(t *testing.T) {
	tests := []struct {
		name    string
		forward Vec3
		up      Vec3
	}{
		{"identity frame", AxisZ, AxisY},
		{"looking right", AxisX, AxisY},
		{"oblique", Vec3{1, 1, -2}, Vec3{0, 1, 0}},
		{"up parallel to forward", AxisY, AxisY},
		{"zero up", Vec3{0, 0, -1}, Vec3{}},
		{"zero forward", Vec3{}, AxisY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QFromForwardUp(tt.forward, tt.up)
			want := V3Normalize(tt.forward)
			if V3IsZero(want) {
				want = AxisZ
			}
			fwd := QForward(q)
			assert.True(t, V3ApproxEqual(fwd, want, 1e-9), "forward %+v want %+v", fwd, want)

			// Result must stay a proper orthonormal frame
			assert.InDelta(t, 1.0, V3Mag(QUp(q)), 1e-9)
			assert.InDelta(t, 0.0, V3Dot(QUp(q), fwd), 1e-9)
			assert.InDelta(t, 0.0, V3Dot(QRight(q), fwd), 1e-9)
		})
	}
}

func TestQFromForwardUpKeepsUp(t *testing.T) {
	q := QFromForwardUp(Vec3{1, 0, 1}, AxisY)
	assert.True(t, V3ApproxEqual(QUp(q), AxisY, 1e-9))
}

func TestFastRandUnitSphere(t *testing.T) {
	r := NewFastRand(7)
	var sum Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		d := r.UnitSphere()
		require.InDelta(t, 1.0, V3Mag(d), 1e-9)
		sum = V3Add(sum, d)
	}
	// Uniform sampling centres on the origin
	assert.Less(t, V3Mag(V3Scale(sum, 1.0/n)), 0.03)
}
