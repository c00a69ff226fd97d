package simulation

import (
	"iter"
	"math"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/picarlo/picarlo/batch"
	"github.com/picarlo/picarlo/canvas"
	"github.com/picarlo/picarlo/estimator"
	"github.com/picarlo/picarlo/perror"
	"github.com/picarlo/picarlo/pmath"
	"github.com/picarlo/picarlo/sampler"
	"github.com/picarlo/picarlo/timestep"
	"github.com/picarlo/picarlo/utils"
)

// DefaultHistorySize is the number of per-tick estimates kept for Spread when Config.HistorySize is 0.
const DefaultHistorySize = 64

// Config holds the collaborators of an Engine. Source and Step are required.
type Config struct {
	// Source provides the uniform reals points are drawn from.
	Source sampler.Source
	// Sizer decides the batch size of every tick. It defaults to a batch.Controller with the default ceiling.
	Sizer batch.Sizer
	// Step is the length of one simulation tick.
	Step time.Duration
	// Renderer receives the classifications. It defaults to a NopRenderer of a 1x1 canvas.
	Renderer Renderer
	Log      Logger
	// HistorySize is the number of per-tick estimates kept for Spread.
	HistorySize int
}

// Engine runs the Monte Carlo estimation: it converts frame time into ticks, draws a batch of points on
// every tick, counts them and hands their pixel classifications to the renderer.
//
// An Engine is not safe for concurrent use. All methods are expected to be called from the host's frame
// loop.
type Engine struct {
	log      Logger
	renderer Renderer
	geom     canvas.Geometry

	sampler *sampler.Sampler
	est     estimator.Estimator
	sizer   batch.Sizer
	clock   *timestep.Accumulator

	history *utils.CircularQueue[float64]
	phase   Phase
	ticks   uint64
}

// New creates an Engine in the running phase. It returns perror.ErrGeometryMismatch if the renderer's canvas
// cannot be mapped onto and perror.ErrInvalidStep for a non-positive step.
func New(cfg Config) (*Engine, error) {
	if cfg.Source == nil {
		return nil, perror.NewError("simulation: no random source configured")
	}
	if cfg.Renderer == nil {
		cfg.Renderer = NopRenderer{Geom: canvas.Geometry{Width: 1, Height: 1, Stride: 4, BytesPerPixel: 4}}
	}
	if cfg.Sizer == nil {
		cfg.Sizer = batch.NewController(0)
	}
	if cfg.Log == nil {
		cfg.Log = nopLogger{}
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultHistorySize
	}

	geom := cfg.Renderer.Geometry()
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	clock, err := timestep.New(cfg.Step)
	if err != nil {
		return nil, err
	}
	return &Engine{
		log:      cfg.Log,
		renderer: cfg.Renderer,
		geom:     geom,
		sampler:  sampler.New(cfg.Source),
		sizer:    cfg.Sizer,
		clock:    clock,
		history:  utils.NewCircularQueue[float64](cfg.HistorySize),
		phase:    PhaseRunning,
	}, nil
}

// OnFrame advances the simulation by a frame of the given duration and runs every tick that elapsed. It does
// nothing while the engine is paused. If the sample counters are about to overflow, the engine resets
// instead of running the tick.
func (e *Engine) OnFrame(delta time.Duration) {
	if e.phase != PhaseRunning {
		return
	}
	ticks := e.clock.Advance(delta)
	for i := 0; i < ticks; i++ {
		if e.nearOverflow() {
			e.log.Warnf("sample counter at %d is within one batch of overflowing, resetting", e.est.Total())
			e.Reset()
			return
		}
		e.tick()
	}
}

// nearOverflow reports whether the counters could wrap during the next tick, including the growth the batch
// size may apply before it.
func (e *Engine) nearOverflow() bool {
	need, step := e.sizer.Peek(), e.sizer.NextStep()
	if need > math.MaxUint64-step {
		return true
	}
	return e.est.Headroom() < need+step
}

func (e *Engine) tick() {
	n := e.sizer.Next()
	seq, drain := e.batch(n)
	e.renderer.Paint(seq)
	drain()

	e.ticks++
	if est, err := e.est.Estimate(); err == nil {
		_ = e.history.Append(est)
	}
}

// batch returns a single-use sequence of n classifications, recorded as they are consumed, and a function
// recording whatever the sequence did not yield.
func (e *Engine) batch(n uint64) (iter.Seq[canvas.Classification], func()) {
	var (
		drawn uint64
		used  bool
	)
	seq := func(yield func(canvas.Classification) bool) {
		if used {
			return
		}
		used = true
		for drawn < n {
			p := e.sampler.Next()
			inside := e.est.Classify(p)
			drawn++
			if !yield(canvas.Classification{Offset: canvas.MapToPixel(p.X(), p.Y(), e.geom), Inside: inside}) {
				return
			}
		}
	}
	drain := func() {
		used = true
		for ; drawn < n; drawn++ {
			e.est.Classify(e.sampler.Next())
		}
	}
	return seq, drain
}

// TogglePause switches between running and paused. Pausing asks the renderer for a snapshot.
func (e *Engine) TogglePause() {
	if e.phase == PhaseRunning {
		e.setPhase(PhasePaused)
		e.renderer.Snapshot()
		return
	}
	e.setPhase(PhaseRunning)
}

// Reset clears the counters, the batch size, carried-over frame time and the estimate history, clears the
// renderer's canvas and leaves the engine paused.
func (e *Engine) Reset() {
	e.est.Reset()
	e.sizer.Reset()
	e.clock.Reset()
	e.history.Clear()
	e.ticks = 0
	e.renderer.Clear()
	e.setPhase(PhasePaused)
	e.log.Infof("simulation reset")
}

func (e *Engine) setPhase(p Phase) {
	if e.phase != p {
		e.log.Debugf("simulation %s -> %s after %d samples", e.phase, p, e.est.Total())
	}
	e.phase = p
}

// Estimate returns the current approximation of π, or perror.ErrDivisionByZero before the first sample.
func (e *Engine) Estimate() (float64, error) {
	return e.est.Estimate()
}

// StandardError returns the standard error of Estimate.
func (e *Engine) StandardError() (float64, error) {
	return e.est.StandardError()
}

// Spread returns the standard deviation of the estimates recorded after the most recent ticks.
func (e *Engine) Spread() float64 {
	return pmath.StandardDeviation(e.history.Values())
}

func (e *Engine) TotalSamples() uint64 { return e.est.Total() }
func (e *Engine) InsideCount() uint64  { return e.est.Inside() }
func (e *Engine) Phase() Phase         { return e.phase }
func (e *Engine) Ticks() uint64        { return e.ticks }

// BatchSize returns the batch size of the most recent tick.
func (e *Engine) BatchSize() uint64 { return e.sizer.Peek() }

// Geometry returns the canvas geometry the engine maps onto.
func (e *Engine) Geometry() canvas.Geometry { return e.geom }

// Summary returns the state of the engine as ordered key/value pairs, for display or logging. Estimate
// related keys are only present once samples were recorded.
func (e *Engine) Summary() *orderedmap.OrderedMap[string, any] {
	m := orderedmap.NewOrderedMap[string, any]()
	m.Set("phase", e.phase.String())
	m.Set("ticks", e.ticks)
	m.Set("batch", e.sizer.Peek())
	m.Set("samples", e.est.Total())
	m.Set("inside", e.est.Inside())
	if est, err := e.est.Estimate(); err == nil {
		m.Set("estimate", pmath.Round(est, 10))
		m.Set("abs_error", pmath.Round(math.Abs(est-math.Pi), 10))
	}
	if se, err := e.est.StandardError(); err == nil {
		m.Set("std_error", pmath.Round(se, 10))
	}
	m.Set("spread", pmath.Round(e.Spread(), 10))
	return m
}
