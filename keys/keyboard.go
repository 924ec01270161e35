// Package keys turns ebiten keyboard and gamepad state into input events.
package keys

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tiledot/obj"
)

var keyTable = map[ebiten.Key]obj.Key{
	ebiten.KeyArrowUp:    obj.KeyUp,
	ebiten.KeyArrowDown:  obj.KeyDown,
	ebiten.KeyArrowLeft:  obj.KeyLeft,
	ebiten.KeyArrowRight: obj.KeyRight,
	ebiten.KeyW:          "w",
	ebiten.KeyA:          "a",
	ebiten.KeyS:          "s",
	ebiten.KeyD:          "d",
}

var padTable = map[ebiten.StandardGamepadButton]obj.Key{
	ebiten.StandardGamepadButtonLeftTop:    obj.KeyUp,
	ebiten.StandardGamepadButtonLeftBottom: obj.KeyDown,
	ebiten.StandardGamepadButtonLeftLeft:   obj.KeyLeft,
	ebiten.StandardGamepadButtonLeftRight:  obj.KeyRight,
}

// Keyboard collects each tick's key and d-pad transitions.
type Keyboard struct {
	keys []ebiten.Key
	pads []ebiten.GamepadID
}

// Poll returns releases before presses so a key swap never doubles the
// velocity.
func (k *Keyboard) Poll() []obj.Event {
	var events []obj.Event

	k.keys = inpututil.AppendJustReleasedKeys(k.keys[:0])
	for _, key := range k.keys {
		if name, ok := keyTable[key]; ok {
			events = append(events, obj.Event{Kind: obj.KeyUpEvent, Key: name})
		}
	}
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		if name, ok := keyTable[key]; ok {
			events = append(events, obj.Event{Kind: obj.KeyDownEvent, Key: name})
		}
	}

	k.pads = ebiten.AppendGamepadIDs(k.pads[:0])
	for _, id := range k.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for button, name := range padTable {
			if inpututil.IsStandardGamepadButtonJustReleased(id, button) {
				events = append(events, obj.Event{Kind: obj.KeyUpEvent, Key: name})
			}
			if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
				events = append(events, obj.Event{Kind: obj.KeyDownEvent, Key: name})
			}
		}
	}
	return events
}
