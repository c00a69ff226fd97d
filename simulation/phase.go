package simulation

// Phase is the run state of an Engine.
type Phase byte

const (
	PhaseRunning Phase = iota
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}
