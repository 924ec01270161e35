package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/tiledot/common"
	"github.com/milk9111/tiledot/obj"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SizeSpec struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (r RectSpec) Rect() common.Rect {
	return common.NewRect(r.X, r.Y, r.W, r.H)
}

type CircleSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	R float64 `yaml:"r"`
}

func (c CircleSpec) Circle() common.Circle {
	return common.Circle{X: c.X, Y: c.Y, Radius: max(c.R, 0)}
}

type LevelSpec struct {
	Name        string     `yaml:"name"`
	Map         string     `yaml:"map"`
	Screen      SizeSpec   `yaml:"screen"`
	Level       SizeSpec   `yaml:"level"`
	Tile        SizeSpec   `yaml:"tile"`
	SpriteCount int        `yaml:"sprite_count"`
	Tileset     string     `yaml:"tileset"`
	Background  *YAMLColor `yaml:"background"`
}

// Layout returns the grid layout the level map is parsed against.
func (s *LevelSpec) Layout() obj.Layout {
	return obj.Layout{
		TileWidth:   s.Tile.W,
		TileHeight:  s.Tile.H,
		LevelWidth:  s.Level.W,
		LevelHeight: s.Level.H,
		SpriteCount: s.SpriteCount,
	}
}

func (s *LevelSpec) validate() error {
	if s.Map == "" {
		return fmt.Errorf("%w: level %q has no map", ErrInvalidSpec, s.Name)
	}
	if s.Screen.W <= 0 || s.Screen.H <= 0 {
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidSpec, s.Screen.W, s.Screen.H)
	}
	if s.SpriteCount < 1 || s.SpriteCount > int(obj.TileKindCount) {
		return fmt.Errorf("%w: sprite_count %d outside [1, %d]", ErrInvalidSpec, s.SpriteCount, obj.TileKindCount)
	}
	return nil
}

func LoadLevelSpec(name string) (*LevelSpec, error) {
	if name == "" {
		name = "level.yaml"
	}
	spec, err := LoadSpec[LevelSpec](name)
	if err != nil {
		return nil, err
	}
	if spec.SpriteCount == 0 {
		spec.SpriteCount = int(obj.TileKindCount)
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

type ParticleSpec struct {
	Count   int    `yaml:"count"`
	Alpha   uint8  `yaml:"alpha"`
	Red     string `yaml:"red"`
	Green   string `yaml:"green"`
	Blue    string `yaml:"blue"`
	Shimmer string `yaml:"shimmer"`
}

type DotSpec struct {
	Name      string               `yaml:"name"`
	Width     float64              `yaml:"width"`
	Height    float64              `yaml:"height"`
	Speed     float64              `yaml:"speed"`
	Spawn     PointSpec            `yaml:"spawn"`
	Collider  string               `yaml:"collider"`
	PixelRows []obj.PixelRow       `yaml:"pixel_rows"`
	Image     string               `yaml:"image"`
	Particles ParticleSpec         `yaml:"particles"`
	Bindings  map[string]obj.Delta `yaml:"bindings"`
}

// NewCollider builds the collider named by kind, falling back to the spec's
// own collider setting when kind is empty.
func (s *DotSpec) NewCollider(kind string) (obj.Collider, error) {
	if kind == "" {
		kind = s.Collider
	}
	switch strings.ToLower(kind) {
	case "", "box":
		return obj.NewBoxCollider(s.Width, s.Height), nil
	case "pixel":
		rows := s.PixelRows
		if len(rows) == 0 {
			rows = obj.DotRows
		}
		return obj.NewPixelCollider(s.Width, rows), nil
	case "circle":
		return obj.NewCircleCollider(s.Width / 2), nil
	default:
		return nil, fmt.Errorf("%w: unknown collider %q", ErrInvalidSpec, kind)
	}
}

// KeyBindings converts the configured bindings, or returns the defaults
// when none are configured.
func (s *DotSpec) KeyBindings() obj.Bindings {
	if len(s.Bindings) == 0 {
		return obj.DefaultBindings()
	}
	out := make(obj.Bindings, len(s.Bindings))
	for k, d := range s.Bindings {
		out[obj.ParseKey(k)] = d
	}
	return out
}

func LoadDotSpec() (*DotSpec, error) {
	spec, err := LoadSpec[DotSpec]("dot.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("%w: dot size %vx%v", ErrInvalidSpec, spec.Width, spec.Height)
	}
	if spec.Speed <= 0 {
		return nil, fmt.Errorf("%w: dot speed %v", ErrInvalidSpec, spec.Speed)
	}
	return &spec, nil
}

type CollisionsSpec struct {
	Screen SizeSpec   `yaml:"screen"`
	Speed  float64    `yaml:"speed"`
	Dot    PointSpec  `yaml:"dot"`
	Wall   RectSpec   `yaml:"wall"`
	Circle CircleSpec `yaml:"circle"`
}

func LoadCollisionsSpec() (*CollisionsSpec, error) {
	spec, err := LoadSpec[CollisionsSpec]("collisions.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Screen.W <= 0 || spec.Screen.H <= 0 {
		return nil, fmt.Errorf("%w: screen %dx%d", ErrInvalidSpec, spec.Screen.W, spec.Screen.H)
	}
	return &spec, nil
}

// Demo is the collision demo scene: a movable dot and the shapes it must
// not enter.
type Demo struct {
	Dot       *obj.Dot
	Obstacles obj.Obstacles
	// Other is the static dot of the pixel variant, nil otherwise.
	Other *obj.Dot
}

// Build lays out the demo for a collider variant. The box variant faces the
// wall only, the pixel variant adds a static dot with the same row shape at
// the circle position and the circle variant adds the circle.
func (s *CollisionsSpec) Build(dot *DotSpec, variant string) (*Demo, error) {
	collider, err := dot.NewCollider(variant)
	if err != nil {
		return nil, err
	}
	x, y := s.Dot.X, s.Dot.Y
	if _, ok := collider.(*obj.CircleCollider); ok {
		x += dot.Width / 2
		y += dot.Height / 2
	}

	demo := &Demo{
		Dot:       obj.NewDot(x, y, dot.Width, dot.Height, collider),
		Obstacles: obj.Obstacles{Rects: []common.Rect{s.Wall.Rect()}},
	}
	switch collider.(type) {
	case *obj.PixelCollider:
		other, err := dot.NewCollider("pixel")
		if err != nil {
			return nil, err
		}
		demo.Other = obj.NewDot(s.Circle.X-dot.Width/2, s.Circle.Y-dot.Height/2, dot.Width, dot.Height, other)
		demo.Obstacles.Rects = append(demo.Obstacles.Rects, other.(*obj.PixelCollider).Boxes()...)
	case *obj.CircleCollider:
		demo.Obstacles.Circles = []common.Circle{s.Circle.Circle()}
	}
	return demo, nil
}

// DelaySpec is a uniformly random delay in [Min, Max] milliseconds.
type DelaySpec struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (d DelaySpec) Range() (time.Duration, time.Duration) {
	lo, hi := d.Min, d.Max
	if hi < lo {
		hi = lo
	}
	return time.Duration(lo) * time.Millisecond, time.Duration(hi) * time.Millisecond
}

type ThreadsSpec struct {
	Iterations   int       `yaml:"iterations"`
	StartJitter  DelaySpec `yaml:"start_jitter_ms"`
	ProduceDelay DelaySpec `yaml:"produce_delay_ms"`
	WorkDelay    DelaySpec `yaml:"work_delay_ms"`
	IdleDelay    DelaySpec `yaml:"idle_delay_ms"`
}

func LoadThreadsSpec() (*ThreadsSpec, error) {
	spec, err := LoadSpec[ThreadsSpec]("threads.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Iterations <= 0 {
		return nil, fmt.Errorf("%w: iterations %d", ErrInvalidSpec, spec.Iterations)
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
