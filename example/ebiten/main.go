package main

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/picarlo/picarlo"
	"github.com/picarlo/picarlo/canvas"
	"github.com/picarlo/picarlo/settings"
	"github.com/picarlo/picarlo/simulation"
	"github.com/sirupsen/logrus"
)

// Game hosts an Engine in an ebiten window. Left click pauses and resumes, right click resets while paused.
type Game struct {
	engine *simulation.Engine
	buf    *canvas.Buffer
	screen *ebiten.Image
	last   time.Time
}

func (g *Game) Update() error {
	now := time.Now()
	delta := now.Sub(g.last)
	g.last = now

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.engine.TogglePause()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && g.engine.Phase() == simulation.PhasePaused {
		g.engine.Reset()
	}

	g.engine.OnFrame(delta)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.WritePixels(g.buf.Image().Pix)
	screen.DrawImage(g.screen, nil)

	text := fmt.Sprintf("samples: %d\ninside: %d", g.engine.TotalSamples(), g.engine.InsideCount())
	if est, err := g.engine.Estimate(); err == nil {
		text = fmt.Sprintf("pi ~ %.10f\n%s", est, text)
	}
	ebitenutil.DebugPrintAt(screen, text, 4, 4)
	if g.engine.Phase() == simulation.PhasePaused {
		ebitenutil.DebugPrintAt(screen, "Paused. Right click to reset.", 4, g.buf.Geometry().Height-20)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	geom := g.buf.Geometry()
	return geom.Width, geom.Height
}

func main() {
	s, err := settings.LoadOrCreate("config.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading settings: %v\n", err)
		os.Exit(1)
	}
	log, err := picarlo.NewLogger(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}

	buf := canvas.NewBuffer(s.Canvas.Width, s.Canvas.Height)
	snapshots := 0
	buf.OnSnapshot(func(img *image.RGBA) {
		snapshots++
		path := fmt.Sprintf("pause-%d.png", snapshots)
		canvas.WritePNGAsync(path, img, func(err error) {
			if err != nil {
				log.Errorf("writing snapshot %s: %v", path, err)
			}
		})
	})
	e, err := picarlo.NewEngine(s, log, buf)
	if err != nil {
		log.Fatalf("creating engine: %v", err)
	}

	g := &Game{
		engine: e,
		buf:    buf,
		screen: ebiten.NewImage(s.Canvas.Width, s.Canvas.Height),
		last:   time.Now(),
	}
	ebiten.SetWindowSize(s.Canvas.Width, s.Canvas.Height)
	ebiten.SetWindowTitle("picarlo")
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.WithFields(logrus.Fields{"samples": e.TotalSamples()}).Errorf("game loop: %v", err)
		os.Exit(1)
	}
}
