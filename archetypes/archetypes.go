package archetypes

import (
	"github.com/deskling/deskling/components"
	cfg "github.com/deskling/deskling/config"
	"github.com/deskling/deskling/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Overlay = newArchetype(
		tags.Overlay,
		components.Overlay,
		components.FrameInput,
		components.Hint,
		components.Drag,
	)
	Character = newArchetype(
		tags.Character,
		components.Object,
	)
	Pointer = newArchetype(
		tags.Pointer,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
