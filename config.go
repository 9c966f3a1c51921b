package bramble

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig controls the window and loop settings used by [Run]. The zero
// value is not usable directly; call [DefaultRunConfig] or load one with
// [LoadRunConfig].
type RunConfig struct {
	Title        string  `toml:"title"`
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	Fullscreen   bool    `toml:"fullscreen"`
	Resizable    bool    `toml:"resizable"`
	TPS          int     `toml:"tps"`
	DragDeadZone float64 `toml:"drag_dead_zone"`
}

// DefaultRunConfig returns a RunConfig with sensible defaults:
// 640x480 window, 60 TPS, 4px drag dead zone.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:        "bramble",
		Width:        640,
		Height:       480,
		TPS:          60,
		DragDeadZone: defaultDragDeadZone,
	}
}

// LoadRunConfig reads a TOML config file. Missing keys keep their defaults.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("load run config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return RunConfig{}, fmt.Errorf("load run config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg RunConfig) validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", cfg.TPS)
	}
	if cfg.DragDeadZone < 0 {
		return fmt.Errorf("invalid drag dead zone %v", cfg.DragDeadZone)
	}
	return nil
}

// Run creates a window per cfg and drives g with the Ebitengine game loop.
// It blocks until the window closes and returns the loop's error, if any.
func Run(g *Game, cfg RunConfig) error {
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetFullscreen(cfg.Fullscreen)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.TPS)
	g.width = cfg.Width
	g.height = cfg.Height
	g.dragDeadZone = cfg.DragDeadZone
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
