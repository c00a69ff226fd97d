package settings

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for a simulation run.
type Settings struct {
	Simulation struct {
		// Seed is hashed into the seed of the random source. An empty seed gives a different run every time.
		Seed string
		// TickInterval is the simulated time covered by one tick, e.g. "60ms".
		TickInterval string
		// HistorySize is the number of per-tick estimates used for the spread statistic.
		HistorySize int
		// BatchMode is either "grow" or "fixed".
		BatchMode string
		// FixedBatch is the batch size used in fixed mode.
		FixedBatch uint64
		// BatchCeiling caps the growing batch size. 0 selects half the counter range.
		BatchCeiling uint64
	}
	Canvas struct {
		Width  int
		Height int
	}
	Log struct {
		// Level is a logrus level name such as "info" or "debug".
		Level string
	}
	Sentry struct {
		// DSN enables crash reporting when set.
		DSN string
	}
	Stats struct {
		// Enabled starts the statsview dashboard.
		Enabled bool
		Addr    string
	}
}

const (
	BatchModeGrow  = "grow"
	BatchModeFixed = "fixed"
)

// DefaultSettings returns a 400x400 canvas with one tick every 60ms and a growing batch size.
func DefaultSettings() Settings {
	s := Settings{}
	s.Simulation.TickInterval = "60ms"
	s.Simulation.HistorySize = 64
	s.Simulation.BatchMode = BatchModeGrow
	s.Simulation.FixedBatch = 1
	s.Canvas.Width = 400
	s.Canvas.Height = 400
	s.Log.Level = "info"
	s.Stats.Addr = "localhost:8080"
	return s
}

// Validate checks values that cannot be fixed up by defaults.
func (s Settings) Validate() error {
	if _, err := s.TickInterval(); err != nil {
		return err
	}
	switch s.Simulation.BatchMode {
	case BatchModeGrow, BatchModeFixed:
	default:
		return fmt.Errorf("unknown batch mode %q", s.Simulation.BatchMode)
	}
	if s.Simulation.BatchMode == BatchModeFixed && s.Simulation.FixedBatch == 0 {
		return errors.New("fixed batch mode requires a batch size above zero")
	}
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", s.Canvas.Width, s.Canvas.Height)
	}
	return nil
}

// TickInterval parses Simulation.TickInterval.
func (s Settings) TickInterval() (time.Duration, error) {
	d, err := time.ParseDuration(s.Simulation.TickInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid tick interval: %v", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("tick interval must be positive, got %v", d)
	}
	return d, nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %v", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %v", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist. Keys
// missing from the file keep their default values.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	var settings Settings
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	settings.fillDefaults()
	return settings, settings.Validate()
}

// fillDefaults replaces zero values with their defaults. Seed, FixedBatch with a grow mode, BatchCeiling,
// the sentry DSN and the stats flag are meaningful when zero and left alone.
func (s *Settings) fillDefaults() {
	def := DefaultSettings()
	if s.Simulation.TickInterval == "" {
		s.Simulation.TickInterval = def.Simulation.TickInterval
	}
	if s.Simulation.HistorySize == 0 {
		s.Simulation.HistorySize = def.Simulation.HistorySize
	}
	if s.Simulation.BatchMode == "" {
		s.Simulation.BatchMode = def.Simulation.BatchMode
	}
	if s.Canvas.Width == 0 {
		s.Canvas.Width = def.Canvas.Width
	}
	if s.Canvas.Height == 0 {
		s.Canvas.Height = def.Canvas.Height
	}
	if s.Log.Level == "" {
		s.Log.Level = def.Log.Level
	}
	if s.Stats.Addr == "" {
		s.Stats.Addr = def.Stats.Addr
	}
}

// LoadOrCreate loads the settings at path, writing the defaults there first if the file does not exist.
func LoadOrCreate(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveDefault(path); err != nil {
			return Settings{}, err
		}
	}
	return Load(path)
}
