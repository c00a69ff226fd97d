package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/google/uuid"
	"github.com/picarlo/picarlo"
	"github.com/picarlo/picarlo/canvas"
	"github.com/picarlo/picarlo/settings"
	"github.com/picarlo/picarlo/simulation"
	"github.com/picarlo/picarlo/utils"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

var (
	configPath = flag.String("config", "config.toml", "settings file, created with defaults if missing")
	frames     = flag.Int("frames", 2000, "number of frames to run")
	frameDelta = flag.Duration("frame", time.Second/60, "duration of a single frame")
	realtime   = flag.Bool("realtime", false, "pace frames with the wall clock instead of running as fast as possible")
	pauseAt    = flag.Int("pause-at", -1, "frame at which to pause")
	resetAt    = flag.Int("reset-at", -1, "frame at which to reset, ignored unless paused")
	resumeAt   = flag.Int("resume-at", -1, "frame at which to resume")
	reportEach = flag.Int("report", 200, "log a progress line every n frames")
	outPath    = flag.String("out", "picarlo.png", "where to write the final canvas")
)

// The following program runs the estimator without a window, optionally following a scripted
// pause/reset/resume schedule, and writes the final canvas as a PNG.
func main() {
	flag.Parse()

	s, err := settings.LoadOrCreate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading settings: %v\n", err)
		os.Exit(1)
	}
	logger, err := picarlo.NewLogger(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.WithField("run", uuid.NewString())

	if s.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: s.Sentry.DSN}); err != nil {
			log.Errorf("sentry init failed: %v", err)
		}
	}
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("simulation crashed: %v", err)
			hub := sentry.CurrentHub().Clone()
			hub.Recover(err)
			hub.Flush(time.Second * 5)
			os.Exit(1)
		}
	}()

	if s.Stats.Enabled {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(s.Stats.Addr))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
		log.Infof("statsview listening on %s", s.Stats.Addr)
	}

	if err := run(s, log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(s settings.Settings, log *logrus.Entry) error {
	buf := canvas.NewBuffer(s.Canvas.Width, s.Canvas.Height)

	var pending sync.WaitGroup
	defer pending.Wait()

	snapshots := 0
	buf.OnSnapshot(func(img *image.RGBA) {
		snapshots++
		path := snapshotPath(*outPath, snapshots)
		pending.Add(1)
		canvas.WritePNGAsync(path, img, func(err error) {
			defer pending.Done()
			if err != nil {
				log.Errorf("writing snapshot %s: %v", path, err)
				return
			}
			log.Infof("snapshot written to %s", path)
		})
	})

	e, err := picarlo.NewEngine(s, log, buf)
	if err != nil {
		return err
	}

	var stop atomic.Bool
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)
	go func() {
		if _, ok := <-sig; ok {
			stop.Store(true)
		}
	}()

	var ticker *time.Ticker
	if *realtime {
		ticker = time.NewTicker(*frameDelta)
		defer ticker.Stop()
	}

	last := time.Now()
	for frame := 0; frame < *frames && !stop.Load(); frame++ {
		switch frame {
		case *pauseAt:
			if e.Phase() == simulation.PhaseRunning {
				e.TogglePause()
			}
		case *resetAt:
			if e.Phase() == simulation.PhasePaused {
				e.Reset()
			} else {
				log.Warnf("frame %d: reset requested while running, ignoring", frame)
			}
		case *resumeAt:
			if e.Phase() == simulation.PhasePaused {
				e.TogglePause()
			}
		}

		delta := *frameDelta
		if ticker != nil {
			now := <-ticker.C
			delta, last = now.Sub(last), now
		}
		e.OnFrame(delta)

		if *reportEach > 0 && frame%*reportEach == 0 {
			log.WithFields(utils.KeyValsToFields(e.Summary())).Info("progress")
		}
	}

	fmt.Println(utils.KeyValsToString(e.Summary()))
	if err := canvas.WritePNG(*outPath, buf.Image()); err != nil {
		return err
	}
	log.Infof("canvas written to %s", *outPath)
	return nil
}

// snapshotPath derives "out-pause-n.png" from "out.png".
func snapshotPath(out string, n int) string {
	base := strings.TrimSuffix(out, ".png")
	return fmt.Sprintf("%s-pause-%d.png", base, n)
}
