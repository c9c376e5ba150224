package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/critterswap/clock"
	"github.com/milk9111/critterswap/common"
	"github.com/milk9111/critterswap/ecs/entity"
	"github.com/milk9111/critterswap/input"
	"github.com/milk9111/critterswap/prefabs"
	"github.com/milk9111/critterswap/settings"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

type Game struct {
	frames int
	debug  bool
	paused bool

	sessionName string
	clock       *clock.Session
	dispatcher  *input.Dispatcher
	tracker     input.Tracker
	session     *entity.Session
	colors      map[string]color.RGBA

	presenter *presenter
	store     *settings.Store
	watcher   *prefabs.Watcher

	ui         *ebitenui.UI
	volumeText *widget.Text
	face       text.Face
	world      *ebiten.Image
}

func NewGame(sessionName string, debug bool, store *settings.Store, watcher *prefabs.Watcher) (*Game, error) {
	g := &Game{
		debug:       debug,
		sessionName: sessionName,
		clock:       clock.NewSession(),
		dispatcher:  input.NewDispatcher(),
		presenter:   newPresenter(store),
		store:       store,
		watcher:     watcher,
		face:        text.NewGoXFace(basicfont.Face7x13),
	}
	if err := g.rebuild(); err != nil {
		return nil, err
	}
	g.ui = NewSettingsUI(g)
	return g, nil
}

// rebuild loads the session prefabs from scratch. On failure the running
// session, if any, is kept.
func (g *Game) rebuild() error {
	cfg, err := entity.LoadConfig(g.sessionName)
	if err != nil {
		return err
	}
	saved := g.store.Progress()
	view := g.presenter.fresh()
	cfg.Dispatcher = g.dispatcher
	cfg.Clock = g.clock
	cfg.Presenter = view
	cfg.Collected = saved.Collected
	cfg.Unlocked = saved.Unlocked

	g.tracker.Release(g.dispatcher)
	session, err := entity.NewSession(cfg)
	if err != nil {
		return err
	}
	if g.session != nil {
		g.session.Close()
	}
	g.session = session
	g.presenter = view
	g.tracker = input.Tracker{}

	g.colors = make(map[string]color.RGBA, len(cfg.Roster.Critters))
	for _, c := range cfg.Roster.Critters {
		if rgba, ok := colornames.Map[c.Color]; ok {
			g.colors[c.Name] = rgba
		} else {
			g.colors[c.Name] = colornames.White
		}
	}
	return nil
}

func (g *Game) Update() error {
	g.frames++

	if pausePressed() {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	if g.watcher != nil {
		for _, err := range g.watcher.DrainErrors() {
			log.Printf("prefabs: watch: %v", err)
		}
		if changed := g.watcher.Drain(); len(changed) > 0 {
			log.Printf("prefabs: %d file(s) changed, rebuilding session", len(changed))
			if err := g.rebuild(); err != nil {
				log.Printf("prefabs: reload: %v (keeping current session)", err)
			}
		}
	}

	g.clock.Tick(1 / float64(ebiten.TPS()))
	g.tracker.Apply(sampleInput(), g.dispatcher)
	g.session.Update()

	if err := g.session.Progress.Err(); err != nil && g.frames%600 == 1 {
		log.Printf("progress: %v", err)
	}
	g.saveProgress()
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		g.tracker.Release(g.dispatcher)
	}
}

func (g *Game) saveProgress() {
	collected, unlocked := g.session.Progression()
	if !g.store.RecordProgress(collected, unlocked) {
		return
	}
	if err := g.store.Save(); err != nil {
		log.Printf("settings: %v", err)
	}
}

func (g *Game) changeVolume(delta float64) {
	g.store.SetVolume(g.store.Settings().Volume + delta)
	if err := g.store.Save(); err != nil {
		log.Printf("settings: %v", err)
	}
	if g.volumeText != nil {
		g.volumeText.Label = volumeLabel(g.store.Settings().Volume)
	}
}

func volumeLabel(v float64) string {
	return fmt.Sprintf("Volume %3.0f%%", v*100)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Lightskyblue)
	g.drawWorld(screen)
	g.drawHUD(screen)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
