// Package scene holds the state of one running level: the tile grid, the
// dot, the camera and the particle trail. It has no window dependency.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/milk9111/tiledot/levels"
	"github.com/milk9111/tiledot/obj"
	"github.com/milk9111/tiledot/prefabs"
)

var ErrNotReloadable = errors.New("scene: file is not hot reloadable")

// Scene is advanced once per tick by Step.
type Scene struct {
	Level *prefabs.LevelSpec
	Dot   *prefabs.DotSpec

	grid     *obj.Grid
	world    *obj.CollisionWorld
	dot      *obj.Dot
	camera   *obj.Camera
	emitter  *obj.Emitter
	bindings obj.Bindings
	held     map[obj.Key]bool
	frame    int
}

// Load reads the named level spec, dot.yaml and the level's map.
func Load(levelSpec string, rng *rand.Rand) (*Scene, error) {
	level, err := prefabs.LoadLevelSpec(levelSpec)
	if err != nil {
		return nil, err
	}
	dot, err := prefabs.LoadDotSpec()
	if err != nil {
		return nil, err
	}
	data, err := levels.Load(level.Map)
	if err != nil {
		return nil, err
	}
	return New(level, dot, data, rng)
}

// New builds a scene from already loaded specs and map data.
func New(level *prefabs.LevelSpec, dot *prefabs.DotSpec, mapData []byte, rng *rand.Rand) (*Scene, error) {
	if level == nil || dot == nil {
		return nil, fmt.Errorf("scene: nil spec")
	}
	grid, err := obj.LoadGrid(bytes.NewReader(mapData), level.Layout())
	if err != nil {
		return nil, fmt.Errorf("scene: load map %s: %w", level.Map, err)
	}
	collider, err := dot.NewCollider("")
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Level:    level,
		Dot:      dot,
		grid:     grid,
		world:    obj.NewCollisionWorld(grid),
		dot:      obj.NewDot(dot.Spawn.X, dot.Spawn.Y, dot.Width, dot.Height, collider),
		camera:   obj.NewCamera(float64(level.Screen.W), float64(level.Screen.H)),
		bindings: dot.KeyBindings(),
		held:     map[obj.Key]bool{},
	}
	s.emitter = obj.NewEmitter(dot.Particles.Count, s.dot.X, s.dot.Y, rng)
	s.camera.Follow(s.dot.Box(), grid.Bounds())
	return s, nil
}

// Step applies events then advances the dot, camera and particles by one
// tick. It returns true once a quit event is seen; the world is not advanced
// on that tick.
func (s *Scene) Step(events []obj.Event) bool {
	for _, ev := range events {
		if ev.Kind == obj.QuitEvent {
			return true
		}
		if s.track(ev) {
			s.bindings.Apply(s.dot, ev, s.Dot.Speed)
		}
	}

	s.dot.Move(s.world, s.grid.Bounds())
	s.camera.Follow(s.dot.Box(), s.grid.Bounds())
	s.emitter.Update(s.dot.X, s.dot.Y)
	s.frame++
	return false
}

// track records ev in the held set. A press of a key already held or a
// release of a key that is not held reports false and must not be applied.
func (s *Scene) track(ev obj.Event) bool {
	if ev.Repeat {
		return false
	}
	switch ev.Kind {
	case obj.KeyDownEvent:
		if s.held[ev.Key] {
			return false
		}
		s.held[ev.Key] = true
	case obj.KeyUpEvent:
		if !s.held[ev.Key] {
			return false
		}
		delete(s.held, ev.Key)
	}
	return true
}

// ReleaseAll forgets every held key and stops the dot. Called when the
// input source stops delivering events, e.g. while paused.
func (s *Scene) ReleaseAll() {
	clear(s.held)
	s.dot.VelX, s.dot.VelY = 0, 0
}

// Held reports whether key is currently held.
func (s *Scene) Held(key obj.Key) bool { return s.held[key] }

// Reload refreshes the scene after a watched file changes. A file that no
// longer parses leaves the current state in place and returns the error.
func (s *Scene) Reload(path string) error {
	base := strings.ToLower(filepath.Base(path))
	switch {
	case base == strings.ToLower(filepath.Base(s.Level.Map)):
		data, err := levels.Load(s.Level.Map)
		if err != nil {
			return err
		}
		return s.ReloadMap(data)
	case base == "dot.yaml":
		spec, err := prefabs.LoadDotSpec()
		if err != nil {
			return err
		}
		s.Dot.Speed = spec.Speed
		s.Dot.Bindings = spec.Bindings
		s.Dot.Image = spec.Image
		// the emitter is sized once, keep its count
		count := s.Dot.Particles.Count
		s.Dot.Particles = spec.Particles
		s.Dot.Particles.Count = count
		s.bindings = spec.KeyBindings()
		s.dot.VelX, s.dot.VelY = s.bindings.Velocity(s.held, s.Dot.Speed)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrNotReloadable, path)
	}
}

// ReloadMap swaps in a grid parsed from data. On a parse error the old grid
// is kept. A dot left inside a wall by the new map goes back to its spawn.
func (s *Scene) ReloadMap(data []byte) error {
	grid, err := obj.LoadGrid(bytes.NewReader(data), s.Level.Layout())
	if err != nil {
		return fmt.Errorf("scene: reload map %s: %w", s.Level.Map, err)
	}
	s.grid = grid
	s.world = obj.NewCollisionWorld(grid)
	if s.world.Blocked(s.dot.Collider()) {
		log.Printf("scene: dot inside a wall after reload, respawning")
		s.dot.Place(s.Dot.Spawn.X, s.Dot.Spawn.Y)
	}
	s.camera.Follow(s.dot.Box(), grid.Bounds())
	return nil
}

func (s *Scene) Grid() *obj.Grid { return s.grid }
func (s *Scene) World() *obj.CollisionWorld { return s.world }
func (s *Scene) Player() *obj.Dot { return s.dot }
func (s *Scene) Camera() *obj.Camera { return s.camera }
func (s *Scene) Particles() []obj.Particle { return s.emitter.Particles() }
func (s *Scene) Frame() int { return s.frame }
func (s *Scene) Bindings() obj.Bindings { return s.bindings }
func (s *Scene) VisibleTiles() []obj.Tile { return s.grid.Visible(s.camera.View) }
