package content

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/star-hauler/component"
)

var (
	// ErrNoBodies rejects a system without any body
	ErrNoBodies = errors.New("system has no bodies")

	// ErrInvalidBody wraps per-body validation failures
	ErrInvalidBody = errors.New("invalid body")
)

// bodyNamespace scopes derived body IDs
var bodyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("star-hauler/bodies"))

//go:embed systems/*.yaml
var builtin embed.FS

// BuiltinSystem is the fixture used when no system file is configured
const BuiltinSystem = "systems/sol.yaml"

// LoadYAML decodes a system fixture from r and normalizes it
func LoadYAML(r io.Reader) (*component.System, error) {
	var f SystemFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode system: %w", err)
	}
	return Normalize(&f)
}

// LoadBuiltin returns the embedded default system
func LoadBuiltin() (*component.System, error) {
	fh, err := builtin.Open(BuiltinSystem)
	if err != nil {
		return nil, fmt.Errorf("open builtin system: %w", err)
	}
	defer fh.Close()
	return LoadYAML(fh)
}

// BodyID derives a stable identifier from system and body names
func BodyID(system, body string) string {
	return uuid.NewSHA1(bodyNamespace, []byte(system+"/"+body)).String()
}

// Normalize resolves optional fields once so read sites never branch on
// absence: IDs, star luminosity, station dockability, parent indices
func Normalize(f *SystemFile) (*component.System, error) {
	if len(f.Bodies) == 0 {
		return nil, fmt.Errorf("system %q: %w", f.Name, ErrNoBodies)
	}

	byName := make(map[string]int, len(f.Bodies))
	for i, b := range f.Bodies {
		if b.Name == "" {
			return nil, fmt.Errorf("%w: body %d has no name", ErrInvalidBody, i)
		}
		if _, dup := byName[b.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate body name %q", ErrInvalidBody, b.Name)
		}
		byName[b.Name] = i
	}

	sys := &component.System{
		Index:  f.Index,
		Name:   f.Name,
		Bodies: make([]component.CelestialBody, len(f.Bodies)),
	}
	for i, b := range f.Bodies {
		kind, ok := component.ParseBodyKind(strings.ToLower(b.Kind))
		if !ok {
			return nil, fmt.Errorf("%w: %q has unknown kind %q", ErrInvalidBody, b.Name, b.Kind)
		}
		if b.RadiusAU < 0 || math.IsNaN(b.RadiusAU) {
			return nil, fmt.Errorf("%w: %q radius %v", ErrInvalidBody, b.Name, b.RadiusAU)
		}

		body := component.CelestialBody{
			ID:       b.ID,
			Name:     b.Name,
			Kind:     kind,
			Type:     b.Type,
			RadiusAU: b.RadiusAU,
			Parent:   component.NoParent,
		}
		if body.ID == "" {
			body.ID = BodyID(f.Name, b.Name)
		}

		if kind == component.KindStar {
			body.Luminosity = b.Luminosity
			if body.Luminosity <= 0 {
				body.Luminosity = 1
			}
		}

		if kind == component.KindStation {
			body.Dockable = b.Dockable == nil || *b.Dockable
		}

		if b.Parent != "" {
			p, ok := byName[b.Parent]
			if !ok {
				return nil, fmt.Errorf("%w: %q has unknown parent %q", ErrInvalidBody, b.Name, b.Parent)
			}
			if p == i {
				return nil, fmt.Errorf("%w: %q is its own parent", ErrInvalidBody, b.Name)
			}
			body.Parent = p
		}

		if b.Orbit != nil {
			body.Orbit = &component.OrbitalElement{
				SemiMajorAxisAU: b.Orbit.SemiMajorAxisAU,
				PeriodDays:      b.Orbit.PeriodDays,
				PhaseOffset:     b.Orbit.PhaseOffset,
				InclinationRad:  b.Orbit.InclinationDeg * math.Pi / 180,
			}
		}
		sys.Bodies[i] = body
	}
	return sys, nil
}
