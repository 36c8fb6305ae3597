package systems

import (
	"github.com/automoto/confetti-cannon/burst"
	"github.com/automoto/confetti-cannon/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable buffers to avoid allocations every tick
var (
	touchIDs      []ebiten.TouchID
	pointerEvents []PointerEvent
)

// UpdatePointer polls mouse and touch input, feeds it through the aim gesture
// and calls fire for every completed gesture.
func UpdatePointer(ecs *ecs.ECS, fire func(burst.Options)) {
	aim := GetAim(ecs)
	for _, ev := range pollPointer(GetPointer(ecs)) {
		if opts, ok := HandlePointer(aim, ev); ok {
			fire(opts)
		}
	}
}

// pollPointer translates this tick's ebiten input into pointer events,
// tracking cursor and touch state in state. The returned slice is reused on
// the next call.
func pollPointer(state *components.PointerData) []PointerEvent {
	pointerEvents = pointerEvents[:0]

	// Mouse
	cx, cy := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		pointerEvents = append(pointerEvents, PointerEvent{Kind: PointerDown, X: float64(cx), Y: float64(cy)})
	}
	if pointerMoved(state, cx, cy) {
		pointerEvents = append(pointerEvents, PointerEvent{Kind: PointerMove, X: float64(cx), Y: float64(cy)})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		pointerEvents = append(pointerEvents, PointerEvent{Kind: PointerUp, X: float64(cx), Y: float64(cy)})
	}

	// Touch: only the first finger aims
	if !state.TouchActive {
		touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
		if len(touchIDs) > 0 {
			state.ActiveTouch = touchIDs[0]
			state.TouchActive = true
			tx, ty := ebiten.TouchPosition(state.ActiveTouch)
			pointerEvents = append(pointerEvents, PointerEvent{Kind: PointerDown, X: float64(tx), Y: float64(ty), Touch: true})
			return pointerEvents
		}
	}
	if state.TouchActive {
		if inpututil.IsTouchJustReleased(state.ActiveTouch) {
			state.TouchActive = false
			tx, ty := inpututil.TouchPositionInPreviousTick(state.ActiveTouch)
			pointerEvents = append(pointerEvents, PointerEvent{Kind: PointerUp, X: float64(tx), Y: float64(ty), Touch: true})
			return pointerEvents
		}
		tx, ty := ebiten.TouchPosition(state.ActiveTouch)
		px, py := inpututil.TouchPositionInPreviousTick(state.ActiveTouch)
		if tx != px || ty != py {
			pointerEvents = append(pointerEvents, PointerEvent{Kind: PointerMove, X: float64(tx), Y: float64(ty), Touch: true})
		}
	}
	return pointerEvents
}

// pointerMoved records the cursor position and reports whether it changed
// since the last poll.
func pointerMoved(state *components.PointerData, x, y int) bool {
	if state.HasCursor && state.CursorX == x && state.CursorY == y {
		return false
	}
	state.CursorX, state.CursorY = x, y
	state.HasCursor = true
	return true
}
