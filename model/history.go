package model

const (
	// DefaultHistorySize is how many recent generations a History keeps
	DefaultHistorySize = 5
	// maxDetectedPeriod is the longest cycle IsStagnant looks for
	maxDetectedPeriod = 3
)

// History remembers fingerprints of recent generations to spot still lifes and short cycles
type History struct {
	size         int
	fingerprints []string
}

// NewHistory keeps the last size fingerprints, never fewer than the longest detected period
func NewHistory(size int) *History {
	size = max(size, maxDetectedPeriod)
	return &History{size: size}
}

// Len returns the number of remembered generations
func (h *History) Len() int {
	return len(h.fingerprints)
}

// Record adds the board's current state and drops the oldest entry once full
func (h *History) Record(b *Board) {
	h.fingerprints = append(h.fingerprints, b.Fingerprint())
	if len(h.fingerprints) > h.size {
		h.fingerprints = h.fingerprints[1:]
	}
}

// IsStagnant reports whether the board repeats one of the last few recorded generations
func (h *History) IsStagnant(b *Board) bool {
	current := b.Fingerprint()
	for i := 1; i <= maxDetectedPeriod && i <= len(h.fingerprints); i++ {
		if h.fingerprints[len(h.fingerprints)-i] == current {
			return true
		}
	}
	return false
}

// Observe checks the board for stagnation and then records it
func (h *History) Observe(b *Board) bool {
	stagnant := h.IsStagnant(b)
	h.Record(b)
	return stagnant
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.fingerprints = nil
}
