package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/deskling/deskling/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// WindowState represents the window placement stored on disk
type WindowState struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for window state storage
func InitPersistence() error {
	if !cfg.Persistence.Enabled {
		return nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadWindowState loads the last saved window position. It returns nil
// without error when nothing has been saved yet.
func LoadWindowState() (*WindowState, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Persistence.ItemKey)
	if err != nil {
		return nil, err
	}
	return decodeWindowState(data)
}

// SaveWindowState saves the window position to disk
func SaveWindowState(s *WindowState) error {
	if !gdataInitialized || gdataManager == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(cfg.Persistence.ItemKey, data)
}

// ApplyWindowState moves the window to a saved position
func ApplyWindowState(s *WindowState) {
	if s == nil {
		return
	}
	ebiten.SetWindowPosition(s.X, s.Y)
}

// RestoreWindowState loads and applies the saved position, logging failures
func RestoreWindowState() {
	saved, err := LoadWindowState()
	if err != nil {
		log.Printf("Warning: Could not load window position: %v", err)
		return
	}
	ApplyWindowState(saved)
}

func decodeWindowState(data []byte) (*WindowState, error) {
	if len(data) == 0 {
		// No saved state yet, keep the platform default placement
		return nil, nil
	}

	var s WindowState
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
