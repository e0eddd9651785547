package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/geoviz/assets"
	"github.com/meghashyamc/geoviz/config"
	"github.com/meghashyamc/geoviz/logger"
	"github.com/meghashyamc/geoviz/scene"
)

type Game struct {
	cfg         *config.Config
	coordinator *scene.Coordinator
	scene       *scene.Scene
	screen      *Screen
	pointer     pointerTracker
	needsRedraw bool
	logger      logger.Logger
}

func NewGame(cfg *config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	g := &Game{
		cfg:         cfg,
		screen:      NewScreen(assets.LabelFont, color.White),
		needsRedraw: true,
		logger:      logger.New(logger.ParseLevel(cfg.GetLogLevel())),
	}
	g.coordinator = scene.NewCoordinator(g.logger, g.requestRedraw)
	g.scene = buildDemo(g.coordinator, demoOptions{
		pointRadius:    cfg.GetPointRadius(),
		arrowHitRadius: cfg.GetArrowHitRadius(),
	})

	g.logger.Info("scene initialized",
		"drawables", len(g.scene.Drawables()),
		"interactive", len(g.coordinator.Objects()),
		"pointRadius", cfg.GetPointRadius(),
		"arrowHitRadius", cfg.GetArrowHitRadius(),
	)
	return g, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting visualizer")
	g.setupWindow()

	// The screen keeps its content between frames; Draw only repaints on request
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetScreenClearedEveryFrame(false)
}

func (g *Game) requestRedraw() {
	g.needsRedraw = true
}

func (g *Game) Update() error {
	g.pointer.update(g.coordinator, currentPointerFrame())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.needsRedraw {
		return
	}
	g.needsRedraw = false

	g.screen.SetTarget(screen)
	g.scene.Render(g.screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight()
}
