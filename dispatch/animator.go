package dispatch

import "time"

// AnimState is the play/pause state of the animation loop.
type AnimState int

const (
	Stopped AnimState = iota
	Running
)

// Animator is the STOPPED/RUNNING state machine behind the play button.
// The host owns the actual timer; the animator owns its validity. Each Start
// issues a new generation token, and a tick is only honored while its
// generation is current and the animator is running. Stopping bumps the
// generation, so a tick already scheduled when Stop lands is dropped instead
// of advancing one more period.
type Animator struct {
	state    AnimState
	gen      int
	interval time.Duration
}

func NewAnimator(interval time.Duration) *Animator {
	return &Animator{interval: interval}
}

func (a *Animator) Interval() time.Duration { return a.interval }

func (a *Animator) State() AnimState { return a.state }

func (a *Animator) Running() bool { return a.state == Running }

// Start moves to RUNNING and returns the generation the host should stamp on
// its timer. A second Start without an intervening Stop is a no-op: ok is
// false and no new generation is issued, so two timers can never be live.
func (a *Animator) Start() (gen int, ok bool) {
	if a.state == Running {
		return a.gen, false
	}
	a.state = Running
	a.gen++
	return a.gen, true
}

// Stop moves to STOPPED and invalidates the outstanding generation.
func (a *Animator) Stop() {
	if a.state == Stopped {
		return
	}
	a.state = Stopped
	a.gen++
}

// ValidTick reports whether a tick stamped with gen should be acted on.
func (a *Animator) ValidTick(gen int) bool {
	return a.state == Running && gen == a.gen
}
