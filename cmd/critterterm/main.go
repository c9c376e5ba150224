// Command critterterm plays a session in the terminal with tcell for input and
// drawing and beep for sound.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/critterswap/clock"
	"github.com/milk9111/critterswap/ecs/entity"
	"github.com/milk9111/critterswap/input"
	"github.com/milk9111/critterswap/prefabs"
	"github.com/milk9111/critterswap/settings"
)

const (
	frameInterval = 16 * time.Millisecond
	maxFrameStep  = 0.1
	sampleRate    = beep.SampleRate(44100)
)

type Game struct {
	screen    tcell.Screen
	width     int
	height    int
	audioInit bool

	clock      *clock.Session
	wall       *clock.Wall
	dispatcher *input.Dispatcher
	tracker    input.Tracker
	latch      *input.Latch
	session    *entity.Session
	presenter  *termPresenter
	store      *settings.Store
	styles     map[string]critterStyle
}

type critterStyle struct {
	glyph rune
	style tcell.Style
}

func NewGame(sessionName string, store *settings.Store) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableFocus()

	g := &Game{
		screen:     screen,
		clock:      clock.NewSession(),
		dispatcher: input.NewDispatcher(),
		latch:      input.NewLatch(input.DefaultLatchHold),
		store:      store,
	}
	g.wall = clock.NewWall(g.clock, maxFrameStep)
	g.width, g.height = screen.Size()

	if err := g.initAudio(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio: init: %v", err)
	}
	g.presenter = newTermPresenter(store, g.audioInit)

	if err := g.load(sessionName); err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

func (g *Game) initAudio() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		g.audioInit = true
	}
	return err
}

func (g *Game) load(sessionName string) error {
	cfg, err := entity.LoadConfig(sessionName)
	if err != nil {
		return err
	}
	saved := g.store.Progress()
	cfg.Dispatcher = g.dispatcher
	cfg.Clock = g.clock
	cfg.Presenter = g.presenter
	cfg.Collected = saved.Collected
	cfg.Unlocked = saved.Unlocked

	session, err := entity.NewSession(cfg)
	if err != nil {
		return err
	}
	g.session = session

	g.styles = make(map[string]critterStyle, len(cfg.Roster.Critters))
	for _, c := range cfg.Roster.Critters {
		glyph := '@'
		if r := []rune(c.Glyph); len(r) > 0 {
			glyph = r[0]
		}
		g.styles[c.Name] = critterStyle{
			glyph: glyph,
			style: tcell.StyleDefault.Foreground(tcell.GetColor(c.Color)).Bold(true),
		}
	}
	return nil
}

// handleInput latches keys and reports false when the player quits.
func (g *Game) handleInput(ev tcell.Event) bool {
	now := time.Now()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		switch ev.Key() {
		case tcell.KeyLeft:
			g.latch.Press("left", now)
		case tcell.KeyRight:
			g.latch.Press("right", now)
		case tcell.KeyUp:
			g.latch.Press("up", now)
		case tcell.KeyDown:
			g.latch.Press("down", now)
		case tcell.KeyTab:
			g.latch.Press("cycle", now)
		case tcell.KeyRune:
			switch r := ev.Rune(); r {
			case 'q':
				return false
			case 'a', 'h':
				g.latch.Press("left", now)
			case 'd', 'l':
				g.latch.Press("right", now)
			case 'w', 'k':
				g.latch.Press("up", now)
			case 's', 'j':
				g.latch.Press("down", now)
			case ' ':
				g.latch.Press("use", now)
			case 'f':
				g.latch.Press("sprint", now)
			case '+', '=':
				g.changeVolume(0.1)
			case '-':
				g.changeVolume(-0.1)
			default:
				if r >= '1' && r <= '9' {
					g.latch.Press(string(r), now)
				}
			}
		}
	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
		g.screen.Sync()
	case *tcell.EventFocus:
		if !ev.Focused {
			g.latch.Clear()
		}
	}
	return true
}

func (g *Game) sample(now time.Time) input.Sample {
	var s input.Sample
	if g.latch.Held("left", now) {
		s.Move.X -= 1
	}
	if g.latch.Held("right", now) {
		s.Move.X += 1
	}
	if g.latch.Held("up", now) {
		s.Move.Y += 1
	}
	if g.latch.Held("down", now) {
		s.Move.Y -= 1
	}
	s.Use = g.latch.Held("use", now)
	s.Sprint = g.latch.Held("sprint", now)
	s.Cycle = g.latch.Held("cycle", now)
	for i := range s.Select {
		s.Select[i] = g.latch.Held(fmt.Sprint(i+1), now)
	}
	return s
}

func (g *Game) changeVolume(delta float64) {
	g.store.SetVolume(g.store.Settings().Volume + delta)
	if err := g.store.Save(); err != nil {
		log.Printf("settings: %v", err)
	}
}

func (g *Game) update(now time.Time) {
	g.wall.Tick(now)
	g.tracker.Apply(g.sample(now), g.dispatcher)
	g.session.Update()

	collected, unlocked := g.session.Progression()
	if g.store.RecordProgress(collected, unlocked) {
		if err := g.store.Save(); err != nil {
			log.Printf("settings: %v", err)
		}
	}
}

func (g *Game) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			g.update(now)
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	g.session.Close()
	if g.audioInit {
		speaker.Close()
	}
	g.screen.Fini()
}

func main() {
	sessionName := flag.String("session", "session.yaml", "session prefab to load")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory whose prefabs override the embedded ones")
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	prefabs.Dir = *prefabDir

	// the terminal owns stdout and stderr while the screen is up
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	store := settings.Open("critterswap")

	game, err := NewGame(*sessionName, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
