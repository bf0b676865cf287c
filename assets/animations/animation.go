package animations

// Animation cycles a frame index from First to Last, Step frames at a time,
// holding each frame for SpeedInTps extra ticks.
type Animation struct {
	First      int
	Last       int
	Step       int
	SpeedInTps float32

	frameCounter float32
	frame        int
}

// Update advances the animation by one tick.
func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// NewAnimation returns an animation over [first, last]. A speed of 0 advances
// one frame per tick.
func NewAnimation(first, last, step int, speed float32) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}
