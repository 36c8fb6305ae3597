package systems

import "testing"

func TestPointerStateIsPerCannon(t *testing.T) {
	e1, _ := newWorld(t)
	e2, _ := newWorld(t)
	p1, p2 := GetPointer(e1), GetPointer(e2)

	if !pointerMoved(p1, 10, 20) {
		t.Fatal("first poll should report a move")
	}
	if pointerMoved(p1, 10, 20) {
		t.Error("unchanged cursor reported as a move")
	}
	// The second cannon has not seen the cursor yet.
	if !pointerMoved(p2, 10, 20) {
		t.Error("second cannon shares pointer state with the first")
	}
	if p1.CursorX != 10 || p1.CursorY != 20 || p2.CursorX != 10 {
		t.Errorf("cursor state = %+v, %+v", *p1, *p2)
	}
	if !pointerMoved(p1, 11, 20) || p2.CursorX != 10 {
		t.Error("moving one cannon's cursor changed the other")
	}
}
