package loaders

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var (
	ErrUnknownShape   = errors.New("unknown shape")
	ErrUnknownLight   = errors.New("unknown light type")
	ErrUnknownPattern = errors.New("unknown pattern")
	ErrMissingSection = errors.New("missing section")
	ErrInvalidValue   = errors.New("invalid value")
)

// Defaults applied to values a scene file leaves out
const (
	DefaultWidth       = 400
	DefaultHeight      = 300
	DefaultFieldOfView = 60.0
)

// ExampleSceneFile documents every section and variable the loader understands.
const ExampleSceneFile = `# Scene: Example
# Description: One sphere on a checkered floor
# Group: Examples

[render]
width = 400
height = 300
# threads = 0 uses every CPU
threads = 0
maxdepth = 5
background = black

[camera]
from = 0 1.5 -5
to = 0 1 0
up = 0 1 0
fieldofview = 60

[light "key"]
type = point
position = -10 10 -10
intensity = white

[material "floor"]
pattern = checker
patterna = white
patternb = 0.2 0.2 0.2
specular = 0

[material "red"]
color = crimson
diffuse = 0.7
specular = 0.3
reflective = 0.1

[object "floor"]
shape = plane
material = floor

[object "ball"]
shape = sphere
material = red
transform = scale 0.5 0.5 0.5
transform = translate 0 0.5 0
`

// sceneConfig mirrors the file layout; every section is read by gcfg and
// then checked and converted by CheckInit.
type sceneConfig struct {
	Render   renderConfig
	Camera   cameraConfig
	Light    map[string]*lightConfig
	Material map[string]*materialConfig
	Object   map[string]*objectConfig
}

type renderConfig struct {
	Width      int
	Height     int
	Threads    int
	MaxDepth   string
	Background string
}

type cameraConfig struct {
	From        string
	To          string
	Up          string
	FieldOfView float64
}

type lightConfig struct {
	Type      string
	Position  string
	Target    string
	Intensity string
	ConeAngle float64
	ConeDelta float64
}

// Numeric material fields are strings so that an absent value can fall
// back to the preset while an explicit 0 still overrides it.
type materialConfig struct {
	Preset          string
	Color           string
	Ambient         string
	Diffuse         string
	Specular        string
	Shininess       string
	Reflective      string
	Transparency    string
	RefractiveIndex string

	Pattern          string
	PatternA         string
	PatternB         string
	PatternTransform []string
	Perturb          float64
	PerturbSeed      int
}

type objectConfig struct {
	Shape     string
	Radius    float64
	Material  string
	Transform []string
}

// RenderSettings holds the [render] section
type RenderSettings struct {
	Width      int
	Height     int
	Threads    int // 0 means one worker per CPU
	MaxDepth   *int // nil means the world default; 0 disables bounces
	Background core.Color
}

// CameraSettings holds the [camera] section
type CameraSettings struct {
	From        core.Point3
	To          core.Point3
	Up          core.Vec3
	FieldOfView float64 // degrees
}

// LightDescription is one [light "name"] section
type LightDescription struct {
	Name      string
	Type      string // "point" or "spot"
	Position  core.Point3
	Target    core.Point3
	Intensity core.Color
	ConeAngle float64 // degrees, spot only
	ConeDelta float64 // degrees, spot only
}

// PatternDescription describes a material pattern
type PatternDescription struct {
	Type      string // solid, stripe, ring, checker or gradient
	A, B      core.Color
	Transform core.Matrix
	Perturb   float64
	Seed      int64
}

// MaterialDescription is one [material "name"] section. Nil fields keep
// the preset's value.
type MaterialDescription struct {
	Name            string
	Preset          string // "default" or "glass"
	Color           *core.Color
	Ambient         *float64
	Diffuse         *float64
	Specular        *float64
	Shininess       *float64
	Reflective      *float64
	Transparency    *float64
	RefractiveIndex *float64
	Pattern         *PatternDescription
}

// ObjectDescription is one [object "name"] section
type ObjectDescription struct {
	Name      string
	Shape     string // "sphere" or "plane"
	Radius    float64
	Material  string // empty for the default material
	Transform core.Matrix
}

// SceneDescription is a checked scene file. Lights, materials and objects
// are ordered by section name.
type SceneDescription struct {
	Render    RenderSettings
	Camera    CameraSettings
	Lights    []LightDescription
	Materials []MaterialDescription
	Objects   []ObjectDescription
}

// Material looks up a material description by name
func (d *SceneDescription) Material(name string) (MaterialDescription, bool) {
	for _, m := range d.Materials {
		if m.Name == name {
			return m, true
		}
	}
	return MaterialDescription{}, false
}

// LoadSceneFile reads and checks a scene file
func LoadSceneFile(filename string) (*SceneDescription, error) {
	var config sceneConfig
	if err := gcfg.ReadFileInto(&config, filename); err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", filename, err)
	}
	desc, err := config.CheckInit()
	if err != nil {
		return nil, fmt.Errorf("invalid scene file %s: %w", filename, err)
	}
	return desc, nil
}

// ParseScene reads and checks scene file text
func ParseScene(text string) (*SceneDescription, error) {
	var config sceneConfig
	if err := gcfg.ReadStringInto(&config, text); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return config.CheckInit()
}

// CheckInit validates every section and converts it into a SceneDescription
func (config *sceneConfig) CheckInit() (*SceneDescription, error) {
	desc := &SceneDescription{}

	render, err := config.Render.CheckInit()
	if err != nil {
		return nil, err
	}
	desc.Render = render

	camera, err := config.Camera.CheckInit()
	if err != nil {
		return nil, err
	}
	desc.Camera = camera

	if len(config.Light) == 0 {
		return nil, fmt.Errorf("%w: at least one [light] is required", ErrMissingSection)
	}
	for _, name := range sortedKeys(config.Light) {
		light, err := config.Light[name].CheckInit(name)
		if err != nil {
			return nil, err
		}
		desc.Lights = append(desc.Lights, light)
	}

	for _, name := range sortedKeys(config.Material) {
		mat, err := config.Material[name].CheckInit(name)
		if err != nil {
			return nil, err
		}
		desc.Materials = append(desc.Materials, mat)
	}

	for _, name := range sortedKeys(config.Object) {
		obj, err := config.Object[name].CheckInit(name)
		if err != nil {
			return nil, err
		}
		if obj.Material != "" {
			if _, ok := desc.Material(obj.Material); !ok {
				return nil, fmt.Errorf("object %q: %w: material %q is not defined", name, ErrInvalidValue, obj.Material)
			}
		}
		desc.Objects = append(desc.Objects, obj)
	}

	return desc, nil
}

func (r *renderConfig) CheckInit() (RenderSettings, error) {
	settings := RenderSettings{
		Width:   r.Width,
		Height:  r.Height,
		Threads: r.Threads,
	}
	if settings.Width == 0 {
		settings.Width = DefaultWidth
	}
	if settings.Height == 0 {
		settings.Height = DefaultHeight
	}
	switch {
	case settings.Width < 0 || settings.Height < 0:
		return settings, fmt.Errorf("[render]: %w: size %dx%d", ErrInvalidValue, settings.Width, settings.Height)
	case settings.Threads < 0:
		return settings, fmt.Errorf("[render]: %w: threads %d", ErrInvalidValue, settings.Threads)
	}
	if r.MaxDepth != "" {
		depth, err := strconv.Atoi(strings.TrimSpace(r.MaxDepth))
		if err != nil || depth < 0 {
			return settings, fmt.Errorf("[render]: %w: maxdepth %q", ErrInvalidValue, r.MaxDepth)
		}
		settings.MaxDepth = &depth
	}
	if r.Background != "" {
		bg, err := ParseColor(r.Background)
		if err != nil {
			return settings, fmt.Errorf("[render] background: %w", err)
		}
		settings.Background = bg
	}
	return settings, nil
}

func (c *cameraConfig) CheckInit() (CameraSettings, error) {
	if c.From == "" || c.To == "" {
		return CameraSettings{}, fmt.Errorf("%w: [camera] needs from and to", ErrMissingSection)
	}
	settings := CameraSettings{
		Up:          core.NewVec3(0, 1, 0),
		FieldOfView: c.FieldOfView,
	}
	var err error
	if settings.From, err = parsePoint(c.From); err != nil {
		return settings, fmt.Errorf("[camera] from: %w", err)
	}
	if settings.To, err = parsePoint(c.To); err != nil {
		return settings, fmt.Errorf("[camera] to: %w", err)
	}
	if c.Up != "" {
		if settings.Up, err = ParseVec3(c.Up); err != nil {
			return settings, fmt.Errorf("[camera] up: %w", err)
		}
	}
	if settings.FieldOfView == 0 {
		settings.FieldOfView = DefaultFieldOfView
	}
	if settings.FieldOfView <= 0 || settings.FieldOfView >= 180 {
		return settings, fmt.Errorf("[camera]: %w: fieldofview %g", ErrInvalidValue, settings.FieldOfView)
	}
	if settings.From.Equals(settings.To) {
		return settings, fmt.Errorf("[camera]: %w: from and to are the same point", ErrInvalidValue)
	}
	return settings, nil
}

func (l *lightConfig) CheckInit(name string) (LightDescription, error) {
	desc := LightDescription{
		Name:      name,
		Type:      strings.ToLower(l.Type),
		Intensity: core.White(),
		ConeAngle: l.ConeAngle,
		ConeDelta: l.ConeDelta,
	}
	if desc.Type == "" {
		desc.Type = "point"
	}
	if l.Position == "" {
		return desc, fmt.Errorf("light %q: %w: position is required", name, ErrMissingSection)
	}
	var err error
	if desc.Position, err = parsePoint(l.Position); err != nil {
		return desc, fmt.Errorf("light %q position: %w", name, err)
	}
	if l.Intensity != "" {
		if desc.Intensity, err = ParseColor(l.Intensity); err != nil {
			return desc, fmt.Errorf("light %q intensity: %w", name, err)
		}
	}

	switch desc.Type {
	case "point":
	case "spot":
		if l.Target == "" {
			return desc, fmt.Errorf("light %q: %w: spot lights need a target", name, ErrMissingSection)
		}
		if desc.Target, err = parsePoint(l.Target); err != nil {
			return desc, fmt.Errorf("light %q target: %w", name, err)
		}
		if desc.ConeAngle <= 0 || desc.ConeAngle >= 90 {
			return desc, fmt.Errorf("light %q: %w: coneangle %g", name, ErrInvalidValue, desc.ConeAngle)
		}
		if desc.ConeDelta < 0 || desc.ConeDelta > desc.ConeAngle {
			return desc, fmt.Errorf("light %q: %w: conedelta %g", name, ErrInvalidValue, desc.ConeDelta)
		}
	default:
		return desc, fmt.Errorf("light %q: %w: %q", name, ErrUnknownLight, l.Type)
	}
	return desc, nil
}

func (m *materialConfig) CheckInit(name string) (MaterialDescription, error) {
	desc := MaterialDescription{Name: name, Preset: strings.ToLower(m.Preset)}
	switch desc.Preset {
	case "":
		desc.Preset = "default"
	case "default", "glass":
	default:
		return desc, fmt.Errorf("material %q: %w: preset %q", name, ErrInvalidValue, m.Preset)
	}

	if m.Color != "" {
		c, err := ParseColor(m.Color)
		if err != nil {
			return desc, fmt.Errorf("material %q color: %w", name, err)
		}
		desc.Color = &c
	}

	fields := []struct {
		label string
		raw   string
		dst   **float64
	}{
		{"ambient", m.Ambient, &desc.Ambient},
		{"diffuse", m.Diffuse, &desc.Diffuse},
		{"specular", m.Specular, &desc.Specular},
		{"shininess", m.Shininess, &desc.Shininess},
		{"reflective", m.Reflective, &desc.Reflective},
		{"transparency", m.Transparency, &desc.Transparency},
		{"refractiveindex", m.RefractiveIndex, &desc.RefractiveIndex},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(f.raw), 64)
		if err != nil {
			return desc, fmt.Errorf("material %q %s: %w: %q", name, f.label, ErrInvalidValue, f.raw)
		}
		*f.dst = &v
	}

	if m.Pattern != "" {
		pattern, err := m.checkPattern()
		if err != nil {
			return desc, fmt.Errorf("material %q: %w", name, err)
		}
		desc.Pattern = &pattern
	}
	return desc, nil
}

func (m *materialConfig) checkPattern() (PatternDescription, error) {
	pattern := PatternDescription{
		Type:    strings.ToLower(m.Pattern),
		A:       core.White(),
		B:       core.Black(),
		Perturb: m.Perturb,
		Seed:    int64(m.PerturbSeed),
	}
	switch pattern.Type {
	case "solid", "stripe", "ring", "checker", "gradient":
	default:
		return pattern, fmt.Errorf("%w: %q", ErrUnknownPattern, m.Pattern)
	}

	var err error
	if m.PatternA != "" {
		if pattern.A, err = ParseColor(m.PatternA); err != nil {
			return pattern, fmt.Errorf("patterna: %w", err)
		}
	}
	if m.PatternB != "" {
		if pattern.B, err = ParseColor(m.PatternB); err != nil {
			return pattern, fmt.Errorf("patternb: %w", err)
		}
	}
	if pattern.Transform, err = ParseTransform(m.PatternTransform); err != nil {
		return pattern, fmt.Errorf("patterntransform: %w", err)
	}
	if pattern.Perturb < 0 {
		return pattern, fmt.Errorf("%w: perturb %g", ErrInvalidValue, pattern.Perturb)
	}
	return pattern, nil
}

func (o *objectConfig) CheckInit(name string) (ObjectDescription, error) {
	desc := ObjectDescription{
		Name:     name,
		Shape:    strings.ToLower(o.Shape),
		Radius:   o.Radius,
		Material: o.Material,
	}
	switch desc.Shape {
	case "sphere":
		if desc.Radius == 0 {
			desc.Radius = 1
		}
		if desc.Radius < 0 {
			return desc, fmt.Errorf("object %q: %w: radius %g", name, ErrInvalidValue, desc.Radius)
		}
	case "plane":
	default:
		return desc, fmt.Errorf("object %q: %w: %q", name, ErrUnknownShape, o.Shape)
	}

	transform, err := ParseTransform(o.Transform)
	if err != nil {
		return desc, fmt.Errorf("object %q transform: %w", name, err)
	}
	if !transform.IsInvertible() {
		return desc, fmt.Errorf("object %q: %w: transform is not invertible", name, ErrInvalidValue)
	}
	desc.Transform = transform
	return desc, nil
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
