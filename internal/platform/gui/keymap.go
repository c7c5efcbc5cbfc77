package gui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/checker-snake/internal/config"
	"github.com/vovakirdan/checker-snake/internal/core"
)

// chord is a key with an optional Ctrl modifier.
type chord struct {
	key  ebiten.Key
	ctrl bool
}

// KeyMap maps window keys to game actions.
type KeyMap struct {
	bindings map[chord]core.Action
}

// namedKeys translates terminal key names to Ebitengine keys.
var namedKeys = map[string]ebiten.Key{
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"esc":       ebiten.KeyEscape,
	"enter":     ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"space":     ebiten.KeySpace,
	"backspace": ebiten.KeyBackspace,

	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3, "4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7, "8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,
}

// parseChord translates a configured key name like "w" or "ctrl+c".
func parseChord(name string) (chord, bool) {
	name = config.NormalizeKey(name)
	ctrl := false
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		ctrl = true
		name = rest
	}
	k, ok := namedKeys[name]
	if !ok {
		return chord{}, false
	}
	return chord{key: k, ctrl: ctrl}, true
}

// DefaultKeyMap returns the arrow keys plus q, Escape and Ctrl+C to quit.
func DefaultKeyMap() KeyMap {
	km, _ := NewKeyMap(config.Default().Controls)
	return km
}

// NewKeyMap builds a KeyMap from configured controls. Names with no window
// equivalent are skipped and returned so the caller can report them.
func NewKeyMap(c config.ControlsConfig) (KeyMap, []string) {
	km := KeyMap{bindings: make(map[chord]core.Action)}
	var skipped []string
	bind := func(names []string, action core.Action) {
		for _, name := range names {
			ch, ok := parseChord(name)
			if !ok {
				skipped = append(skipped, name)
				continue
			}
			km.bindings[ch] = action
		}
	}
	bind(c.Up, core.ActionUp)
	bind(c.Down, core.ActionDown)
	bind(c.Left, core.ActionLeft)
	bind(c.Right, core.ActionRight)
	bind(c.Quit, core.ActionQuit)
	return km, skipped
}

// Action returns the action bound to key, or ActionNone.
func (km KeyMap) Action(key ebiten.Key, ctrl bool) core.Action {
	if a, ok := km.bindings[chord{key: key, ctrl: ctrl}]; ok {
		return a
	}
	// A plain binding still fires with Ctrl held.
	if ctrl {
		return km.bindings[chord{key: key}]
	}
	return core.ActionNone
}
