package picarlo

import (
	"fmt"

	"github.com/picarlo/picarlo/batch"
	"github.com/picarlo/picarlo/sampler"
	"github.com/picarlo/picarlo/settings"
	"github.com/picarlo/picarlo/simulation"
	"github.com/sirupsen/logrus"
)

// NewEngine builds a simulation engine from s, drawing onto r. log may be nil, or a *logrus.Logger or
// *logrus.Entry.
func NewEngine(s settings.Settings, log simulation.Logger, r simulation.Renderer) (*simulation.Engine, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	step, err := s.TickInterval()
	if err != nil {
		return nil, err
	}

	var sizer batch.Sizer = batch.NewController(s.Simulation.BatchCeiling)
	if s.Simulation.BatchMode == settings.BatchModeFixed {
		sizer = batch.Fixed(s.Simulation.FixedBatch)
	}

	cfg := simulation.Config{
		Source:      sampler.NewSource(sampler.SeedFromString(s.Simulation.Seed)),
		Sizer:       sizer,
		Step:        step,
		Renderer:    r,
		HistorySize: s.Simulation.HistorySize,
		Log:         log,
	}
	return simulation.New(cfg)
}

// NewLogger returns a logger writing text with full timestamps at the level named in s.
func NewLogger(s settings.Settings) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(s.Log.Level)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	log.SetLevel(lvl)
	return log, nil
}
