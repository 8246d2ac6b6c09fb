// Landing runs the Celest orbit page: scroll to rotate the planets, click a
// planet to fly there, click the ship to send it away.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/quasilyte/gdata/v2"

	"github.com/phanxgames/celest"
	"github.com/phanxgames/celest/scene"
)

const (
	windowTitle = "Celest"
	screenW     = 1280
	screenH     = 720
)

var (
	configPath = flag.String("config", "", "YAML config file (defaults are used when empty)")
	scriptPath = flag.String("script", "", "JSON test script to drive the page")
	debugFlag  = flag.Bool("debug", false, "log sequencer events and frame stats")
	seedFlag   = flag.Uint64("seed", 0, "random seed (0 = from clock)")
	navFlag    = flag.Bool("nav", true, "follow planet selections to their pages")
	fpsFlag    = flag.Bool("fps", true, "show the FPS widget")
	shipDelay  = flag.Duration("ship-delay", 300*time.Millisecond, "delay before the ship appears")
	exitFlag   = flag.Bool("exit", false, "exit when the test script finishes")
)

func main() {
	flag.Parse()

	cfg := celest.DefaultConfig()
	if *configPath != "" {
		loaded, err := celest.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	if !*navFlag {
		cfg.NavigationEnabled = false
	}

	var script *scene.TestRunner
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("failed to read script: %v", err)
		}
		script, err = scene.LoadTestScript(data)
		if err != nil {
			log.Fatalf("failed to load script: %v", err)
		}
	}

	manager, err := gdata.Open(gdata.Config{AppName: "celest"})
	if err != nil {
		log.Printf("[main] Warning: gdata unavailable: %v", err)
		manager = nil
	}

	game, err := scene.NewGame(scene.RunConfig{
		Title:   windowTitle,
		Width:   screenW,
		Height:  screenH,
		ShowFPS: *fpsFlag,
		Debug:   *debugFlag,
	}, scene.GameOptions{
		Config:             cfg,
		Seed:               *seedFlag,
		Store:              scene.NewVisitStore(manager),
		ShipLoadDelay:      *shipDelay,
		Script:             script,
		ExitWhenScriptDone: *exitFlag,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := scene.Run(game); err != nil {
		log.Fatal(err)
	}
}
