package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(z float64) []Vec3 {
	return []Vec3{{-1, -1, z}, {1, -1, z}, {1, 1, z}, {-1, 1, z}}
}

func TestFaceNormal(t *testing.T) {
	tests := []struct {
		name  string
		verts []Vec3
		zero  bool
	}{
		{"square", square(5), false},
		{"triangle", []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, false},
		{"collinear", []Vec3{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}, true},
		{"coincident", []Vec3{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, true},
		{"too few", []Vec3{{0, 0, 0}, {1, 0, 0}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := FaceNormal(tt.verts)
			if tt.zero {
				assert.True(t, V3IsZero(n))
				return
			}
			assert.InDelta(t, 1.0, V3Mag(n), 1e-12)
		})
	}
}

func TestPlaneBasisOrthonormal(t *testing.T) {
	normals := []Vec3{AxisX, AxisY, AxisZ, {1, 1, 1}, {0.001, 1, 0}, {-1, 0.0001, 0}}
	for _, n := range normals {
		b := NewPlaneBasis(Vec3{}, n)
		assert.InDelta(t, 1.0, V3Mag(b.U), 1e-12)
		assert.InDelta(t, 1.0, V3Mag(b.V), 1e-12)
		assert.InDelta(t, 0.0, V3Dot(b.U, b.V), 1e-12)
		assert.InDelta(t, 0.0, V3Dot(b.U, b.Normal), 1e-12)
		assert.InDelta(t, 0.0, V3Dot(b.V, b.Normal), 1e-12)
	}
}

func TestOrderPolygonFixesBowtie(t *testing.T) {
	// Diagonal order would self-intersect
	bowtie := []Vec3{{-1, -1, 0}, {1, 1, 0}, {1, -1, 0}, {-1, 1, 0}}
	f, ok := PrepareFace(bowtie)
	require.True(t, ok)

	assert.True(t, PointInPolygon(Vec2{0.5, 0}, f.Polygon))
	assert.True(t, PointInPolygon(Vec2{0, 0.5}, f.Polygon))
	assert.True(t, PointInPolygon(Vec2{-0.5, 0}, f.Polygon))
	assert.True(t, PointInPolygon(Vec2{0, -0.5}, f.Polygon))
}

func TestPrepareFaceAnyOrder(t *testing.T) {
	tests := []struct {
		name  string
		verts []Vec3
		count int
	}{
		{"square in order", []Vec3{{0, 0, 5}, {1, 0, 5}, {1, 1, 5}, {0, 1, 5}}, 4},
		{"square crossed", []Vec3{{0, 0, 5}, {1, 1, 5}, {1, 0, 5}, {0, 1, 5}}, 4},
		{"split near-duplicate", []Vec3{{0, 0, 0}, {1, 0, 0}, {1e-12, 0, 0}, {0, 1, 0}}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := PrepareFace(tt.verts)
			require.True(t, ok)
			assert.Len(t, f.Verts, tt.count)
			assert.Len(t, f.Polygon, tt.count)
			assert.InDelta(t, 1.0, math.Abs(f.Basis.Normal.Z), 1e-9)
			assert.True(t, PointInPolygon(f.Basis.Project(Centroid(f.Verts)), f.Polygon))
		})
	}
}

func TestPrepareFaceKeepsWinding(t *testing.T) {
	ccw := []Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	f, ok := PrepareFace(ccw)
	require.True(t, ok)
	assert.InDelta(t, 1.0, f.Basis.Normal.Z, 1e-9)

	cw := []Vec3{{0, 1, 0}, {1, 1, 0}, {1, 0, 0}, {0, 0, 0}}
	f, ok = PrepareFace(cw)
	require.True(t, ok)
	assert.InDelta(t, -1.0, f.Basis.Normal.Z, 1e-9)
}

func TestSpanNormal(t *testing.T) {
	assert.True(t, V3IsZero(SpanNormal([]Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}})))
	assert.True(t, V3IsZero(SpanNormal([]Vec3{{0, 0, 0}, {1, 0, 0}})))
	n := SpanNormal([]Vec3{{0, 0, 0}, {1, 1, 0}, {1, 0, 0}, {0, 1, 0}})
	assert.InDelta(t, 1.0, math.Abs(n.Z), 1e-9)
}

func TestDedupeVertices(t *testing.T) {
	in := []Vec3{{0, 0, 0}, {0, 0, 1e-12}, {1, 0, 0}, {1, 1, 0}, {0, 0, 0}}
	out := DedupeVertices(in, DedupeEpsilon)
	assert.Equal(t, []Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}, out)

	assert.Nil(t, DedupeVertices(nil, DedupeEpsilon))
}

func TestPrepareFaceDegenerate(t *testing.T) {
	_, ok := PrepareFace([]Vec3{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {1e-12, 0, 0}})
	assert.False(t, ok)
	_, ok = PrepareFace([]Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}})
	assert.False(t, ok)
}

func TestPointInPolygon(t *testing.T) {
	poly := []Vec2{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	tests := []struct {
		name string
		pt   Vec2
		want bool
	}{
		{"centre", Vec2{2, 2}, true},
		{"outside right", Vec2{5, 2}, false},
		{"outside below", Vec2{2, -1}, false},
		{"near corner inside", Vec2{0.01, 0.01}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointInPolygon(tt.pt, poly))
		})
	}
}

func TestPointInPolygonEdgeConsistent(t *testing.T) {
	poly := []Vec2{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	// Same edge point classified the same on repeated evaluation and in the
	// reversed winding
	rev := []Vec2{{0, 4}, {4, 4}, {4, 0}, {0, 0}}
	for _, pt := range []Vec2{{0, 2}, {4, 2}, {2, 0}, {2, 4}} {
		assert.Equal(t, PointInPolygon(pt, poly), PointInPolygon(pt, rev), "pt %+v", pt)
	}
}

func TestClipNear(t *testing.T) {
	tests := []struct {
		name  string
		verts []Vec3
		want  int
	}{
		{"fully in front", square(5), 4},
		{"fully behind", square(-5), 0},
		{"straddling", []Vec3{{-1, 0, -1}, {1, 0, -1}, {1, 0, 3}, {-1, 0, 3}}, 4},
		{"one vertex behind", []Vec3{{0, 0, -1}, {1, 0, 3}, {-1, 0, 3}}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ClipNear(tt.verts, 0.1)
			assert.Len(t, out, tt.want)
			for _, v := range out {
				assert.GreaterOrEqual(t, v.Z, 0.1)
			}
		})
	}
}
