package main

import (
	"flag"
	"log"

	cfg "github.com/deskling/deskling/config"
	"github.com/deskling/deskling/fonts"
	"github.com/deskling/deskling/scenes"
	"github.com/deskling/deskling/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	return &Game{
		scene: scenes.NewOverlayScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	flag.BoolVar(&cfg.Debug.Enabled, "debug", cfg.Debug.Enabled, "Draw the hitbox and state overlay")
	noPersist := flag.Bool("no-persist", false, "Do not load or save the window position")
	flag.Parse()
	if *noPersist {
		cfg.Persistence.Enabled = false
	}

	if err := fonts.LoadDefaultFonts(cfg.Bubble.FontSize, cfg.Hint.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Borderless, always on top, fixed size
	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	// Initialize persistence and restore the last window position
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.RestoreWindowState()

	op := &ebiten.RunGameOptions{ScreenTransparent: true}
	if err := ebiten.RunGameWithOptions(NewGame(), op); err != nil {
		log.Fatal(err)
	}
}
