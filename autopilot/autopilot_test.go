package autopilot

import (
	"errors"
	"testing"

	"github.com/milk9111/tiledot/obj"
)

func TestPatrolScript(t *testing.T) {
	s, err := Load("autopilot")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cases := []struct {
		frame int
		want  []obj.Event
	}{
		{0, []obj.Event{{Kind: obj.KeyDownEvent, Key: obj.KeyRight}}},
		{1, nil},
		{89, nil},
		{90, []obj.Event{
			{Kind: obj.KeyUpEvent, Key: obj.KeyRight},
			{Kind: obj.KeyDownEvent, Key: obj.KeyDown},
		}},
		{360, []obj.Event{
			{Kind: obj.KeyUpEvent, Key: obj.KeyUp},
			{Kind: obj.KeyDownEvent, Key: obj.KeyRight},
		}},
	}

	for _, c := range cases {
		got, err := s.Poll(c.frame)
		if err != nil {
			t.Fatalf("frame %d: %v", c.frame, err)
		}
		if len(got) != len(c.want) {
			t.Fatalf("frame %d: got %v, want %v", c.frame, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("frame %d event %d: got %+v, want %+v", c.frame, i, got[i], c.want[i])
			}
		}
	}
}

func TestPatrolReturnsHome(t *testing.T) {
	s, err := Load("autopilot")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	d := obj.NewDot(0, 0, 20, 20, nil)
	bindings := obj.DefaultBindings()
	for frame := 0; frame < 360; frame++ {
		events, err := s.Poll(frame)
		if err != nil {
			t.Fatalf("frame %d: %v", frame, err)
		}
		for _, ev := range events {
			bindings.Apply(d, ev, 1)
		}
		d.X += d.VelX
		d.Y += d.VelY
	}
	if d.X != 0 || d.Y != 0 {
		t.Fatalf("patrol should end where it started, got (%v, %v)", d.X, d.Y)
	}
}

func TestScriptOutputs(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		want    []obj.Event
		wantErr error
	}{
		{
			name: "no_outputs",
			src:  `x := frame + 1`,
		},
		{
			name: "quit_after_release",
			src:  "up := [\"Left\"]\nquit := frame > 2",
			want: []obj.Event{
				{Kind: obj.KeyUpEvent, Key: obj.KeyLeft},
				{Kind: obj.QuitEvent},
			},
		},
		{
			name: "stdlib_import",
			src:  "text := import(\"text\")\ndown := [text.to_lower(\"UP\")]",
			want: []obj.Event{{Kind: obj.KeyDownEvent, Key: obj.KeyUp}},
		},
		{
			name:    "not_an_array",
			src:     `down := "up"`,
			wantErr: ErrBadOutput,
		},
		{
			name:    "not_a_name",
			src:     `down := [1]`,
			wantErr: ErrBadOutput,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := New([]byte(c.src))
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			got, err := s.Poll(3)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("poll: %v", err)
			}
			if len(got) != len(c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Fatalf("event %d: got %+v, want %+v", i, got[i], c.want[i])
				}
			}
		})
	}
}

func TestScriptErrors(t *testing.T) {
	if _, err := New([]byte(`down := [`)); err == nil {
		t.Fatalf("expected compile error")
	}

	s, err := New([]byte(`down := [1 / (frame - frame)]`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := s.Poll(4); err == nil {
		t.Fatalf("expected runtime error")
	}

	var nilScript *Script
	if events, err := nilScript.Poll(0); events != nil || err != nil {
		t.Fatalf("nil script should be inert")
	}
}
