package entity

// BlinkPhase is the visibility phase of a blink sequence
type BlinkPhase int

const (
	BlinkVisible BlinkPhase = iota
	BlinkHidden
)

// Blink toggles visibility every Interval seconds, advanced by frame time.
// After Steps intervals it stops and calls the completion callback once.
type Blink struct {
	Interval float64
	Steps    int

	phase   BlinkPhase
	elapsed float64
	step    int
	running bool
	done    func()
}

// NewBlink starts a blink sequence in the given phase
func NewBlink(interval float64, steps int, start BlinkPhase, done func()) *Blink {
	return &Blink{
		Interval: interval,
		Steps:    steps,
		phase:    start,
		running:  steps > 0 && interval > 0,
		done:     done,
	}
}

// Update advances the sequence by dt seconds
func (b *Blink) Update(dt float64) {
	if !b.running {
		return
	}

	b.elapsed += dt
	for b.running && b.elapsed >= b.Interval {
		b.elapsed -= b.Interval
		b.step++

		if b.step >= b.Steps {
			b.running = false
			b.phase = BlinkVisible
			if b.done != nil {
				b.done()
			}
			return
		}

		if b.phase == BlinkVisible {
			b.phase = BlinkHidden
		} else {
			b.phase = BlinkVisible
		}
	}
}

// Phase returns the current phase
func (b *Blink) Phase() BlinkPhase { return b.phase }

// Visible reports whether the sequence is in the visible phase
func (b *Blink) Visible() bool { return b.phase == BlinkVisible }

// Running reports whether the sequence has not finished
func (b *Blink) Running() bool { return b.running }
