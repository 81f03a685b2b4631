package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HintData drives the startup hint fade
type HintData struct {
	Fade  *gween.Tween
	Alpha uint8
}

var Hint = donburi.NewComponentType[HintData]()
