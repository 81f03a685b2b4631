package scenes

import (
	"sync"

	"github.com/deskling/deskling/components"
	cfg "github.com/deskling/deskling/config"
	"github.com/deskling/deskling/systems"
	"github.com/deskling/deskling/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OverlayScene is the only scene: the character, its bubble and the hint
type OverlayScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewOverlayScene() *OverlayScene {
	return &OverlayScene{}
}

func (s *OverlayScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *OverlayScene) Draw(screen *ebiten.Image) {
	// The window is transparent; anything not drawn this frame must vanish
	screen.Clear()

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *OverlayScene) configure() {
	s.ecs = newOverlayECS()

	// Host input first, then state, then host-facing effects
	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddSystem(systems.UpdateHitbox)
	s.ecs.AddSystem(systems.UpdateOverlay)
	s.ecs.AddSystem(systems.UpdateHint)
	s.ecs.AddSystem(systems.UpdateDrag)
	s.ecs.AddSystem(systems.UpdateRepaint)

	// Bubble first so the character is drawn over its pointer
	s.ecs.AddRenderer(cfg.Default, systems.DrawSpeechBubble)
	s.ecs.AddRenderer(cfg.Default, systems.DrawCharacter)
	s.ecs.AddRenderer(cfg.Default, systems.DrawHint)
	s.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
}

// newOverlayECS creates the world and its entities, without systems
func newOverlayECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateOverlay(e)

	spaceEntry := factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 10, 10)
	space := components.Space.Get(spaceEntry)
	factory.CreateCharacterHitbox(e, space)
	factory.CreatePointerProbe(e, space)

	return e
}
