package main

import (
	"flag"
	"log"

	"github.com/davecgh/go-spew/spew"
	"github.com/jdeal-mediamath/clockwork"

	"chosenoffset.com/raywalk/internal/config"
	"chosenoffset.com/raywalk/internal/game"
	ebitenrender "chosenoffset.com/raywalk/internal/render/ebiten"
	"chosenoffset.com/raywalk/internal/world/maze"
)

var (
	configFlag  = flag.String("config", "", "path to a JSON config file")
	mazeFlag    = flag.String("maze", "", "path to a JSON maze file (default: built-in demo maze)")
	raysFlag    = flag.Int("rays", 0, "override the number of rays cast per frame")
	fovFlag     = flag.Float64("fov", 0, "override the field of view in degrees")
	fisheyeFlag = flag.Bool("fisheye", false, "start with raw radial distances (fisheye distortion)")
	debugFlag   = flag.Bool("debug", false, "show the FPS and pose overlay")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		cfg, err = config.Load(*configFlag)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		log.Printf("Loaded config: %s", *configFlag)
	}

	// Explicit flags win over the config file.
	if *raysFlag > 0 {
		cfg.NumRays = *raysFlag
	}
	if *fovFlag > 0 {
		cfg.FOVDegrees = *fovFlag
	}
	if *fisheyeFlag {
		cfg.Fisheye = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	layout := maze.Demo()
	if *mazeFlag != "" {
		var err error
		layout, err = maze.Load(*mazeFlag)
		if err != nil {
			log.Fatalf("Failed to load maze: %v", err)
		}
	}
	log.Printf("Loaded maze %q with %d walls", layout.Name, len(layout.Walls))

	if *debugFlag {
		log.Printf("Resolved config:\n%s", spew.Sdump(cfg))
	}

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()
	stats := game.NewFrameStats(clockwork.NewRealClock())

	g, err := game.New(cfg, layout, renderer, inputMgr, stats)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	g.Debug = *debugFlag

	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle("Raywalk")

	log.Printf("Starting: %d rays, %.0f degree fov", cfg.NumRays, cfg.FOVDegrees)
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
