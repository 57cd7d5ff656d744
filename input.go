package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"quasicrystal/wave"
)

// keyBinding maps keys to a wave action. Repeating bindings fire again
// while the key is held.
type keyBinding struct {
	keys   []ebiten.Key
	action wave.Action
	repeat bool
}

var keyBindings = []keyBinding{
	{keys: []ebiten.Key{ebiten.KeyArrowUp}, action: wave.ActionMoreWaves},
	{keys: []ebiten.Key{ebiten.KeyArrowDown}, action: wave.ActionFewerWaves},
	{keys: []ebiten.Key{ebiten.KeyArrowLeft}, action: wave.ActionSelectLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight}, action: wave.ActionSelectRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyPageUp}, action: wave.ActionIncrease, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyPageDown}, action: wave.ActionDecrease, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyTab}, action: wave.ActionNextArray},
	{keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyKPAdd}, action: wave.ActionFreqUp, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyKPSubtract}, action: wave.ActionFreqDown, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyBracketRight}, action: wave.ActionFaster},
	{keys: []ebiten.Key{ebiten.KeyBracketLeft}, action: wave.ActionSlower},
	{keys: []ebiten.Key{ebiten.KeySpace}, action: wave.ActionTogglePause},
	{keys: []ebiten.Key{ebiten.KeyH}, action: wave.ActionToggleAdjuster},
	{keys: []ebiten.Key{ebiten.KeyR}, action: wave.ActionReset},
}

// Keys handled by the window itself rather than the wave controller.
const (
	keyQuit          = ebiten.KeyEscape
	keyCycleRenderer = ebiten.KeyG
	keySnapshot      = ebiten.KeyP
	keyToggleOverlay = ebiten.KeyF1
)

// repeatingKeyPressed fires on the first frame and then every
// keyRepeatInterval ticks once the key has been held for keyRepeatDelay.
func repeatingKeyPressed(key ebiten.Key) bool {
	return shouldRepeat(inpututil.KeyPressDuration(key))
}

func shouldRepeat(d int) bool {
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

// pressedActions lists the actions triggered this tick.
func pressedActions() []wave.Action {
	var actions []wave.Action
	for _, b := range keyBindings {
		for _, k := range b.keys {
			fired := false
			if b.repeat {
				fired = repeatingKeyPressed(k)
			} else {
				fired = inpututil.IsKeyJustPressed(k)
			}
			if fired {
				actions = append(actions, b.action)
				break
			}
		}
	}
	return actions
}
