package factory

import (
	"github.com/deskling/deskling/archetypes"
	"github.com/deskling/deskling/components"
	cfg "github.com/deskling/deskling/config"
	"github.com/deskling/deskling/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateCharacterHitbox adds the square bounds of the character's hit circle
// to the space. The square is the no-drag zone; clicks use the exact circle.
func CreateCharacterHitbox(ecs *ecs.ECS, space *resolv.Space) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	r := cfg.Overlay.HitRadius
	obj := resolv.NewObject(cfg.Overlay.CenterX-r, cfg.Overlay.CenterY-r, r*2, r*2, tags.ResolvCharacter)
	obj.Data = character
	components.Object.SetValue(character, components.ObjectData{Object: obj})
	space.Add(obj)

	return character
}

// CreatePointerProbe adds a 1x1 object that follows the cursor.
func CreatePointerProbe(ecs *ecs.ECS, space *resolv.Space) *donburi.Entry {
	pointer := archetypes.Pointer.Spawn(ecs)

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvPointer)
	obj.Data = pointer
	components.Object.SetValue(pointer, components.ObjectData{Object: obj})
	space.Add(obj)

	return pointer
}
