package simulation

import (
	"iter"

	"github.com/picarlo/picarlo/canvas"
)

// Renderer turns classifications into pixels. The engine calls it synchronously from OnFrame, TogglePause
// and Reset, and never concurrently.
type Renderer interface {
	// Geometry returns the layout of the canvas classifications are mapped onto. It is read once, when the
	// engine is created.
	Geometry() canvas.Geometry
	// Paint is called once per tick with that tick's classifications. The sequence can be ranged over once,
	// and only during the call; samples the renderer does not consume are still counted.
	Paint(seq iter.Seq[canvas.Classification])
	// Clear is called on reset.
	Clear()
	// Snapshot is called when the engine is paused.
	Snapshot()
}

// NopRenderer discards everything. It is useful for running the estimator without a canvas.
type NopRenderer struct {
	Geom canvas.Geometry
}

func (n NopRenderer) Geometry() canvas.Geometry           { return n.Geom }
func (NopRenderer) Paint(iter.Seq[canvas.Classification]) {}
func (NopRenderer) Clear()                                {}
func (NopRenderer) Snapshot()                             {}
