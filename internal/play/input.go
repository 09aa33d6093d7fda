package play

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/tetris"
)

const (
	// repeatDelay and repeatEvery are in ticks.
	repeatDelay = 12
	repeatEvery = 3
)

type binding struct {
	keys   []ebiten.Key
	intent tetris.Intent
	repeat bool
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, tetris.MoveLeft, true},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, tetris.MoveRight, true},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, tetris.SoftDrop, true},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyX}, tetris.Rotate, false},
	{[]ebiten.Key{ebiten.KeySpace}, tetris.HardDrop, false},
	{[]ebiten.Key{ebiten.KeyR}, tetris.Restart, false},
}

// fires reports whether a key held for duration ticks emits this tick.
func fires(duration int, repeat bool) bool {
	switch {
	case duration == 1:
		return true
	case !repeat || duration < repeatDelay:
		return false
	default:
		return (duration-repeatDelay)%repeatEvery == 0
	}
}

// pressedIntents returns the intents for this tick in binding order.
func pressedIntents(duration func(ebiten.Key) int) []tetris.Intent {
	var out []tetris.Intent
	for _, b := range bindings {
		for _, k := range b.keys {
			if fires(duration(k), b.repeat) {
				out = append(out, b.intent)
				break
			}
		}
	}
	return out
}

func keyboardIntents() []tetris.Intent {
	return pressedIntents(inpututil.KeyPressDuration)
}
