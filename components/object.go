package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision space shared by the character bounds and the pointer probe
var Space = donburi.NewComponentType[resolv.Space]()
