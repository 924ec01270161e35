// Package autopilot drives the dot from a tengo script instead of the
// keyboard.
//
// The host sets the global `frame` before every run. After the run it reads
// `up` and `down` (arrays of key names) and `quit` (bool). Missing outputs
// count as empty.
package autopilot

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/tiledot/obj"
	"github.com/milk9111/tiledot/prefabs"
)

var ErrBadOutput = errors.New("autopilot: bad script output")

type Script struct {
	compiled *tengo.Compiled
}

// New compiles src with the tengo standard library available for import.
func New(src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	_ = script.Add("frame", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autopilot: compile: %w", err)
	}
	return &Script{compiled: compiled}, nil
}

// Load compiles a script from the prefabs scripts directory.
func Load(name string) (*Script, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	return New(src)
}

// Poll runs the script for frame and returns its events. Releases come
// before presses so a key swap never doubles the velocity.
func (s *Script) Poll(frame int) ([]obj.Event, error) {
	if s == nil || s.compiled == nil {
		return nil, nil
	}
	if err := s.compiled.Set("frame", frame); err != nil {
		return nil, err
	}
	if err := s.compiled.Run(); err != nil {
		return nil, fmt.Errorf("autopilot: run frame %d: %w", frame, err)
	}

	var events []obj.Event
	for _, out := range []struct {
		name string
		kind obj.EventKind
	}{
		{"up", obj.KeyUpEvent},
		{"down", obj.KeyDownEvent},
	} {
		keys, err := s.keys(out.name)
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			events = append(events, obj.Event{Kind: out.kind, Key: k})
		}
	}

	if s.compiled.IsDefined("quit") && s.compiled.Get("quit").Bool() {
		events = append(events, obj.Event{Kind: obj.QuitEvent})
	}
	return events, nil
}

func (s *Script) keys(name string) ([]obj.Key, error) {
	if !s.compiled.IsDefined(name) {
		return nil, nil
	}
	v := s.compiled.Get(name)
	switch v.Object().(type) {
	case *tengo.Array, *tengo.ImmutableArray:
	default:
		return nil, fmt.Errorf("%w: %s is %s, not an array", ErrBadOutput, name, v.ValueType())
	}

	raw := v.Array()
	keys := make([]obj.Key, 0, len(raw))
	for i, item := range raw {
		str, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is %T, not a key name", ErrBadOutput, name, i, item)
		}
		keys = append(keys, obj.ParseKey(str))
	}
	return keys, nil
}
