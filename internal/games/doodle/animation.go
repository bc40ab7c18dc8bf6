package doodle

// Animation plays a frame sequence at a fractional speed.
// The cursor wraps cyclically; one-shot users compare Index against Len.
type Animation struct {
	frames []Frame
	speed  float64 // Frames advanced per tick
	index  float64
}

// NewAnimation creates an animation positioned on the first frame.
// Panics if frames is empty.
func NewAnimation(frames []Frame, speed float64) Animation {
	if len(frames) == 0 {
		panic("doodle: animation without frames")
	}
	return Animation{frames: frames, speed: speed}
}

// Advance moves the cursor forward by the playback speed and returns the
// new current frame. wrapped reports that the cursor passed the last frame
// and restarted from the beginning.
func (a *Animation) Advance() (frame Frame, wrapped bool) {
	a.index += a.speed
	n := float64(len(a.frames))
	for a.index >= n {
		a.index -= n
		wrapped = true
	}
	return a.Current(), wrapped
}

// Current returns the frame under the cursor.
func (a *Animation) Current() Frame {
	return a.frames[int(a.index)]
}

// Index returns the fractional play cursor.
func (a *Animation) Index() float64 {
	return a.index
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	return len(a.frames)
}

// OnLastFrame reports whether a one-shot playback has reached the final frame.
func (a *Animation) OnLastFrame() bool {
	return a.index >= float64(len(a.frames)-1)
}
