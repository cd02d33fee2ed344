package main

import (
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/lifegrid/internal/core/grid"
	"chosenoffset.com/lifegrid/internal/entity/ability"
	"chosenoffset.com/lifegrid/internal/entity/animal"
	"chosenoffset.com/lifegrid/internal/entity/organism"
	"chosenoffset.com/lifegrid/internal/entity/player"
	"chosenoffset.com/lifegrid/internal/entity/turn"
	"chosenoffset.com/lifegrid/internal/game"
	ebitenrender "chosenoffset.com/lifegrid/internal/render/ebiten"
	"chosenoffset.com/lifegrid/internal/simulation"
	"chosenoffset.com/lifegrid/internal/ui/hud"
	"chosenoffset.com/lifegrid/internal/world"
)

func main() {
	configPath := flag.String("config", "data/simulation.json", "simulation config file")
	envPath := flag.String("env", ".env", "environment overrides file")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ApplyEnv(*envPath); err != nil {
		logrus.Fatalf("Failed to apply environment: %v", err)
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", cfg.Log.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	stop := simulation.Shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		stop.Set()
	}()

	// Build the world
	board := grid.NewSquare(cfg.Board.Width, cfg.Board.Height, cfg.Board.Diagonal)
	organisms := organism.NewIndex()
	view := game.NewBoardView(organisms)
	w := world.New(board, organisms, view)

	screenWidth := cfg.Board.Width * cfg.Board.TileSize
	screenHeight := cfg.Board.Height * cfg.Board.TileSize
	gameHUD := hud.New(nil, screenWidth, screenHeight)

	p := player.New(grid.Point{X: cfg.Board.Width / 2, Y: cfg.Board.Height / 2}, stop)
	p.SetPollInterval(cfg.PollInterval())
	p.SetStatusSink(gameHUD)
	sweep := ability.NewSweepWithDuration(p, organism.Tick(cfg.Ability.DurationTicks))
	sweep.SetLogger(logrus.WithField("organism", p.ID()))
	p.SetAbility(sweep)
	organisms.Add(p)

	rng := rand.New(rand.NewSource(cfg.Population.Seed))
	spawnStrays(w, rng, cfg.Population.Strays)
	logrus.WithFields(logrus.Fields{
		"width":     cfg.Board.Width,
		"height":    cfg.Board.Height,
		"organisms": organisms.Len(),
	}).Info("world created")

	manager := turn.NewManager(stop)
	manager.SetDelay(cfg.TickDelay())
	manager.OnTurnEnd = func(turnNumber int) {
		gameHUD.SetTurnNumber(turnNumber)
		gameHUD.SetPopulation(organisms.Len())
	}
	gameHUD.SetPopulation(organisms.Len())
	p.ShowAbility()
	view.Draw()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		manager.Run(w)
	}()

	// Initialize the renderer backend (ebiten)
	engine := ebitenrender.NewEngine()
	g := &game.Game{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		TileSize:     cfg.Board.TileSize,
		Renderer:     ebitenrender.NewRenderer(),
		InputMgr:     ebitenrender.NewInputManager(),
		World:        w,
		Player:       p,
		View:         view,
		HUD:          gameHUD,
		Interrupt:    stop,
	}

	engine.SetWindowSize(screenWidth, screenHeight)
	engine.SetWindowTitle("lifegrid")
	engine.SetWindowResizable(true)

	runErr := engine.RunGame(g)
	stop.Set()
	wg.Wait()
	if runErr != nil {
		logrus.Fatal(runErr)
	}
}

// spawnStrays scatters n strays over free legal cells.
func spawnStrays(w *world.World, rng *rand.Rand, n int) {
	sq, ok := w.Board().(*grid.Square)
	if !ok {
		return
	}
	width, height := sq.Size()
	for placed, tries := 0, 0; placed < n && tries < n*20; tries++ {
		pos := grid.Point{X: rng.Intn(width), Y: rng.Intn(height)}
		if !w.Board().IsLegal(pos) || w.Occupied(pos) {
			continue
		}
		w.Organisms().Add(animal.NewStray(pos, rng))
		placed++
	}
}
