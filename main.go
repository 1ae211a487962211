package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"chosenoffset.com/buffon/board"
	"chosenoffset.com/buffon/config"
	"chosenoffset.com/buffon/hud"
	"chosenoffset.com/buffon/renderer"
	ebitenrenderer "chosenoffset.com/buffon/renderer/ebiten"
	"chosenoffset.com/buffon/sim"
)

// Game drives the simulation one frame at a time: handle input, pick the
// drop batch size and frame-rate target for the current backlog, generate
// needles, and render the board and sidebar.
type Game struct {
	cfg     *config.Config
	palette config.Palette

	run   *sim.Run
	rates sim.RateController

	gameHUD  *hud.HUD
	renderer renderer.Renderer
	inputMgr renderer.InputManager
	engine   renderer.Engine

	// Rates are recomputed only when new drops are requested or the backlog
	// was empty on the previous frame, so a running batch keeps its pace.
	resetRates    bool
	dropsPerFrame int
	targetFPS     int
}

// Update handles one simulation tick.
func (g *Game) Update() error {
	// Escape stops any pending drops; Delete erases everything.
	if g.inputMgr.IsKeyJustPressed(renderer.KeyEscape) && g.run.DropsLeft() > 0 {
		g.run.Stop()
		log.Printf("escape pressed, stopping drops at %d", g.run.Drops)
	}
	if g.inputMgr.IsKeyJustPressed(renderer.KeyDelete) {
		g.run.Clear()
		log.Printf("delete pressed, erased drops")
	}

	if value, ok := g.gameHUD.DropsInput.Update(g.inputMgr); ok {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			log.Printf("invalid input box input, expected a non-negative int, got: %q", value)
		} else {
			g.run.Add(n)
			g.resetRates = true
			log.Printf("adding %d to target drops", n)
		}
	}

	dropsLeft := g.run.DropsLeft()

	if g.resetRates {
		g.dropsPerFrame, g.targetFPS = g.rates.Rates(dropsLeft)
		g.engine.SetTPS(g.targetFPS)
	}
	g.resetRates = dropsLeft == 0

	if dropsLeft > 0 {
		g.run.Step(g.dropsPerFrame)
		g.run.Truncate(g.cfg.DrawLimit)
	}

	return nil
}

// Draw renders one frame: needles, column lines, then the sidebar on top.
func (g *Game) Draw(screen renderer.Image) {
	screen.Fill(g.palette.Background)

	g.drawNeedles(screen)
	g.drawColumns(screen)

	g.gameHUD.Draw(g.renderer, screen, hud.Stats{
		FPS:   g.engine.ActualFPS(),
		Drops: g.run.Drops,
		Hits:  g.run.Hits,
		Pi:    g.run.Pi(),
	})
}

func (g *Game) drawNeedles(screen renderer.Image) {
	offset := float32(g.cfg.SidebarWidth)

	// Hit dots are only worth showing while the board is sparse.
	markLimit := g.cfg.MarkHitLocationsLimit
	markHits := markLimit < 0 || g.run.Drops <= markLimit

	for _, n := range g.run.Needles {
		clr := g.palette.NeedleMiss
		if n.Hit != nil {
			clr = g.palette.NeedleHit
		}
		g.renderer.StrokeLine(screen,
			float32(n.P1.X)+offset, float32(n.P1.Y),
			float32(n.P2.X)+offset, float32(n.P2.Y),
			float32(g.cfg.NeedleThickness), clr)

		if n.Hit != nil && markHits {
			g.renderer.FillCircle(screen,
				float32(n.Hit.X)+offset, float32(n.Hit.Y),
				float32(g.cfg.HitMarkSize), g.palette.HitLocation)
		}
	}
}

func (g *Game) drawColumns(screen renderer.Image) {
	height := float32(g.cfg.WindowHeight)
	for _, c := range g.run.Board.Columns {
		x := float32(g.cfg.SidebarWidth) + float32(c)
		g.renderer.StrokeLine(screen, x, 0, x, height,
			float32(g.cfg.ColumnLineThickness), g.palette.ColumnLine)
	}
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth(), g.cfg.WindowHeight
}

func main() {
	configPath := flag.String("config", "buffon.json", "Config file path (defaults apply if missing)")
	logPath := flag.String("log", "latest.log", "Log file path, truncated on start (empty = stderr)")
	flag.Parse()

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}
	log.Printf("Logging setup complete.")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	b := board.New(cfg.ColumnSpace, cfg.ColumnCount, float64(cfg.WindowHeight))
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	palette := cfg.Palette()

	rend := ebitenrenderer.NewRenderer()
	inputMgr := ebitenrenderer.NewInputManager()
	engine := ebitenrenderer.NewEngine()

	game := &Game{
		cfg:        cfg,
		palette:    palette,
		run:        sim.NewRun(b, cfg.NeedleLength, rng),
		rates:      sim.RateController{DefaultTargetFPS: cfg.DefaultTargetFPS},
		gameHUD:    hud.New(cfg.SidebarWidth, cfg.WindowHeight, palette.Sidebar, palette.Text),
		renderer:   rend,
		inputMgr:   inputMgr,
		engine:     engine,
		resetRates: true,
	}

	engine.SetWindowSize(cfg.WindowWidth(), cfg.WindowHeight)
	engine.SetWindowTitle("Buffon's Needle")
	engine.SetTPS(int(cfg.DefaultTargetFPS))

	log.Printf("Starting window...")
	if err := engine.RunGame(game); err != nil {
		log.Fatal(err)
	}
	log.Printf("Closing window...")
}
