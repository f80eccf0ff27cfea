package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	ebitengine "github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"stardrift/pkg/engine/console"
	"stardrift/pkg/game/commands"
	"stardrift/pkg/game/config"
	"stardrift/pkg/game/renderer/ebiten"
	"stardrift/pkg/game/renderer/tui"
)

const version = "0.1.0"

func initGettext() {
	gotext.Configure("mo/", "en_GB.utf8", "default")
}

func main() {
	verbose := flag.Bool("verbose", false, "enable debug logging")
	mirror := flag.Bool("mirror", false, "mirror console output to stdout")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	initGettext()

	cfg := config.Load()

	fonts, err := ebiten.NewFonts(cfg.Font.Size)
	if err != nil {
		logrus.WithError(err).Fatal("cannot load console font")
	}

	scene := ebiten.NewScene(rand.New(rand.NewSource(time.Now().UnixNano())))
	capture := ebiten.NewCapture()

	interp := commands.New(map[string]string{
		"version": version,
	})

	var sink console.LineSink
	if *mirror || cfg.Console.Mirror {
		sink = tui.New(os.Stdout)
	}

	c := console.New(console.Options{
		AppName:       fmt.Sprintf("Stardrift %s", version),
		MaxLines:      cfg.Console.MaxLines,
		HistorySize:   cfg.Console.HistorySize,
		InputCapacity: cfg.Console.InputCapacity,
		Height:        cfg.Console.Height,
		BlinkCycle:    cfg.Console.BlinkCycle,
		BlinkOnTicks:  cfg.Console.BlinkOnTicks,
		Metrics:       fonts,
		Capture:       capture,
		Executor:      interp,
		Invalidator:   scene,
		Sink:          sink,
	})
	interp.Attach(c)

	app := ebiten.NewApp(scene, c, capture, ebiten.NewRenderer(fonts))

	ebitengine.SetWindowSize(1280, 720)
	ebitengine.SetWindowTitle("Stardrift")
	ebitengine.SetWindowResizingMode(ebitengine.WindowResizingModeEnabled)

	if err := ebitengine.RunGame(app); err != nil {
		logrus.WithError(err).Fatal("game loop failed")
	}
}
