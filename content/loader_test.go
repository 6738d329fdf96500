package content

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/star-hauler/component"
)

const twoBodies = `
name: Tau
index: 4
bodies:
  - name: Tau A
    kind: star
    radius_au: 0.01
  - name: Outpost
    kind: station
    radius_au: 1e-6
    parent: Tau A
    orbit: {semi_major_axis_au: 0.5, period_days: 10, phase_offset: 0.25, inclination_deg: 90}
`

func TestLoadYAMLNormalizes(t *testing.T) {
	sys, err := LoadYAML(strings.NewReader(twoBodies))
	require.NoError(t, err)

	assert.Equal(t, "Tau", sys.Name)
	assert.Equal(t, 4, sys.Index)
	require.Len(t, sys.Bodies, 2)

	star := sys.Bodies[0]
	assert.Equal(t, component.KindStar, star.Kind)
	assert.Equal(t, 1.0, star.Luminosity, "missing luminosity defaults to 1")
	assert.Equal(t, component.NoParent, star.Parent)
	assert.Nil(t, star.Orbit)
	assert.Equal(t, BodyID("Tau", "Tau A"), star.ID)

	st := sys.Bodies[1]
	assert.True(t, st.Dockable, "stations dock unless disabled")
	assert.Equal(t, 0, st.Parent)
	require.NotNil(t, st.Orbit)
	assert.InDelta(t, math.Pi/2, st.Orbit.InclinationRad, 1e-12)
	assert.Zero(t, st.Luminosity)
}

func TestBodyIDStable(t *testing.T) {
	assert.Equal(t, BodyID("Sol", "Earth"), BodyID("Sol", "Earth"))
	assert.NotEqual(t, BodyID("Sol", "Earth"), BodyID("Sol", "Mars"))
	assert.NotEqual(t, BodyID("Sol", "Earth"), BodyID("Tau", "Earth"))
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name string
		file SystemFile
		want error
	}{
		{"no bodies", SystemFile{Name: "Void"}, ErrNoBodies},
		{"unknown kind", SystemFile{Bodies: []BodyFile{{Name: "X", Kind: "comet"}}}, ErrInvalidBody},
		{"unnamed", SystemFile{Bodies: []BodyFile{{Kind: "star"}}}, ErrInvalidBody},
		{"duplicate", SystemFile{Bodies: []BodyFile{{Name: "A", Kind: "star"}, {Name: "A", Kind: "planet"}}}, ErrInvalidBody},
		{"unknown parent", SystemFile{Bodies: []BodyFile{{Name: "A", Kind: "planet", Parent: "B"}}}, ErrInvalidBody},
		{"self parent", SystemFile{Bodies: []BodyFile{{Name: "A", Kind: "planet", Parent: "A"}}}, ErrInvalidBody},
		{"negative radius", SystemFile{Bodies: []BodyFile{{Name: "A", Kind: "star", RadiusAU: -1}}}, ErrInvalidBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(&tt.file)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNormalizeKeepsExplicitFields(t *testing.T) {
	no := false
	sys, err := Normalize(&SystemFile{Name: "S", Bodies: []BodyFile{
		{ID: "fixed", Name: "Star", Kind: "STAR", Luminosity: 3},
		{Name: "Closed", Kind: "station", Dockable: &no},
	}})
	require.NoError(t, err)
	assert.Equal(t, "fixed", sys.Bodies[0].ID)
	assert.Equal(t, 3.0, sys.Bodies[0].Luminosity)
	assert.False(t, sys.Bodies[1].Dockable)
}

func TestLoadYAMLRejectsUnknownFields(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("name: X\nbodies: []\nmass: 3\n"))
	assert.Error(t, err)
}

func TestLoadBuiltin(t *testing.T) {
	sys, err := LoadBuiltin()
	require.NoError(t, err)
	assert.Equal(t, "Sol", sys.Name)
	assert.Len(t, sys.Stars(), 1)
	assert.NotEmpty(t, sys.Stations())

	for i, b := range sys.Bodies {
		assert.NotEmpty(t, b.ID, "body %d", i)
		assert.Less(t, b.Parent, len(sys.Bodies))
		if b.Name == "Relay Nine" {
			assert.False(t, b.Dockable)
			assert.True(t, b.Orbit.Stationary())
		}
	}
}

func TestManagerDiscover(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tau.yaml"), []byte(twoBodies), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.yaml"), []byte(twoBodies), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0755))

	m := NewManager(dir, nil)
	require.NoError(t, m.Discover())
	require.Equal(t, []string{filepath.Join(dir, "tau.yaml")}, m.Files())

	systems, err := m.LoadAll()
	require.NoError(t, err)
	require.Len(t, systems, 1)
	assert.Equal(t, "Tau", systems[0].Name)
}

func TestManagerMissingDirectory(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent"), nil)
	require.NoError(t, m.Discover())
	assert.Empty(t, m.Files())
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Empty\nbodies: []\n"), 0644))
	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrNoBodies)
}
