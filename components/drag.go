package components

import "github.com/yohamta/donburi"

// DragData tracks a window drag started on the empty area of the surface
type DragData struct {
	Active bool
	StartX int // Cursor position on screen when the drag began
	StartY int
	WinX   int // Window position when the drag began
	WinY   int
	Moved  bool // Window position changed during this drag
}

var Drag = donburi.NewComponentType[DragData]()
