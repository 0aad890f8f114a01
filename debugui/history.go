package debugui

// History is a fixed-size ring of samples laid out for PlotLinesFloatPtr.
type History struct {
	samples []float32
	index   int
	filled  bool
}

// NewHistory returns a history holding the last size samples.
func NewHistory(size int) *History {
	return &History{samples: make([]float32, max(size, 1))}
}

// Push records v, overwriting the oldest sample once full.
func (h *History) Push(v float32) {
	h.samples[h.index] = v
	h.index = (h.index + 1) % len(h.samples)
	if h.index == 0 {
		h.filled = true
	}
}

// Values returns the samples oldest first.
func (h *History) Values() []float32 {
	if !h.filled {
		return append([]float32(nil), h.samples[:h.index]...)
	}
	out := make([]float32, 0, len(h.samples))
	out = append(out, h.samples[h.index:]...)
	return append(out, h.samples[:h.index]...)
}

// Last returns the most recent sample, or 0 when empty.
func (h *History) Last() float32 {
	if !h.filled && h.index == 0 {
		return 0
	}
	return h.samples[(h.index+len(h.samples)-1)%len(h.samples)]
}

// Average returns the mean of the recorded samples.
func (h *History) Average() float32 {
	values := h.Values()
	if len(values) == 0 {
		return 0
	}
	var sum float32
	for _, v := range values {
		sum += v
	}
	return sum / float32(len(values))
}
