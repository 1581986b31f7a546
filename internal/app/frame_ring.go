package app

// FrameRing is a circular buffer of frame intervals in seconds.
type FrameRing struct {
	buf   []float64
	pos   int
	count int
}

// NewFrameRing creates a new circular buffer with the given capacity.
func NewFrameRing(capacity int) *FrameRing {
	return &FrameRing{
		buf: make([]float64, capacity),
	}
}

// Push adds a value to the ring buffer.
func (r *FrameRing) Push(val float64) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored values in chronological order.
func (r *FrameRing) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		start := r.pos
		n := copy(result, r.buf[start:])
		copy(result[n:], r.buf[:start])
	}
	return result
}

// Last returns the most recent value, or 0 if empty.
func (r *FrameRing) Last() float64 {
	if r.count == 0 {
		return 0
	}
	idx := (r.pos - 1 + len(r.buf)) % len(r.buf)
	return r.buf[idx]
}

// Len returns the number of stored values.
func (r *FrameRing) Len() int {
	return r.count
}

// Rate returns frames per second over the stored intervals.
func (r *FrameRing) Rate() float64 {
	total := 0.0
	for _, v := range r.Values() {
		total += v
	}
	if total <= 0 {
		return 0
	}
	return float64(r.count) / total
}
