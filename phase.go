package foreman

// Phase decides when registered systems run relative to one simulation
// tick. Phases are fixed and ordered; each holds its systems in
// registration order.
type Phase int

const (
	PhaseInit Phase = iota
	PhasePreUpdate
	PhaseUpdate
	PhasePostUpdate
	PhaseDraw
	PhaseUnload

	numPhases
)

var phaseNames = [numPhases]string{
	"init",
	"preupdate",
	"update",
	"postupdate",
	"draw",
	"unload",
}

func (p Phase) String() string {
	if !p.valid() {
		return "unknown"
	}
	return phaseNames[p]
}

func (p Phase) valid() bool {
	return p >= 0 && p < numPhases
}
