package components

import (
	cfg "github.com/automoto/confetti-cannon/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// PointerData carries mouse and touch polling state between ticks.
type PointerData struct {
	CursorX, CursorY int
	HasCursor        bool // false until the first poll
	ActiveTouch      ebiten.TouchID
	TouchActive      bool // only the first finger aims
}

var Pointer = donburi.NewComponentType[PointerData]()
