package animation

import "iter"

// Frame is the state handed to a renderer for one redraw.
type Frame struct {
	Step     int
	Progress float64
}

// Repeat selects what happens after the last step of a sequence.
type Repeat int

const (
	// RepeatOnce ends the sequence after TotalSteps frames.
	RepeatOnce Repeat = iota
	// RepeatRestart starts over at step 0.
	RepeatRestart
	// RepeatLoop keeps counting steps; progress wraps every TotalSteps.
	RepeatLoop
)

// Sequence describes a frame timeline.
type Sequence struct {
	TotalSteps int
	Repeat     Repeat
}

// Presets of the interactive demos.
var (
	SignalPropagation = Sequence{TotalSteps: 3000, Repeat: RepeatRestart}
	L1Acquisition     = Sequence{TotalSteps: 300, Repeat: RepeatLoop}
	Playground        = Sequence{TotalSteps: 200, Repeat: RepeatLoop}
)

// At returns the frame for absolute step counter n.
func (s Sequence) At(n int) Frame {
	if s.TotalSteps <= 0 {
		return Frame{Step: n}
	}
	wrapped := n % s.TotalSteps
	f := Frame{Step: n, Progress: float64(wrapped) / float64(s.TotalSteps)}
	if s.Repeat == RepeatRestart {
		f.Step = wrapped
	}

	return f
}

// Frames yields the frames of s. Endless sequences never stop on their own;
// the consumer breaks out of the loop. A non-positive TotalSteps yields
// nothing.
func (s Sequence) Frames() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		if s.TotalSteps <= 0 {
			return
		}
		for n := 0; s.Repeat != RepeatOnce || n < s.TotalSteps; n++ {
			if !yield(s.At(n)) {
				return
			}
		}
	}
}

// Player owns at most one running sequence. It is not safe for concurrent
// use.
type Player struct {
	name string
	next func() (Frame, bool)
	stop func()
}

// Start cancels the active sequence, if any, and begins s under name.
func (p *Player) Start(name string, s Sequence) {
	p.Stop()
	p.name = name
	p.next, p.stop = iter.Pull(s.Frames())
}

// Next returns the next frame of the active sequence. ok is false when
// nothing is running or a finite sequence has finished; the player is idle
// afterwards.
func (p *Player) Next() (f Frame, ok bool) {
	if p.next == nil {
		return Frame{}, false
	}
	if f, ok = p.next(); !ok {
		p.Stop()
	}

	return f, ok
}

// Stop cancels the active sequence. Stopping an idle player is a no-op.
func (p *Player) Stop() {
	if p.stop != nil {
		p.stop()
	}
	p.name, p.next, p.stop = "", nil, nil
}

// Active reports the name of the running sequence.
func (p *Player) Active() (string, bool) {
	return p.name, p.next != nil
}
