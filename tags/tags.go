package tags

import "github.com/yohamta/donburi"

var (
	Overlay   = donburi.NewTag().SetName("Overlay")
	Character = donburi.NewTag().SetName("Character")
	Pointer   = donburi.NewTag().SetName("Pointer")
)

// Resolv tags for the character bounds and the pointer probe
const (
	ResolvCharacter = "character"
	ResolvPointer   = "pointer"
)
