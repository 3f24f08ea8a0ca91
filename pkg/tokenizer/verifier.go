package tokenizer

import "sync"

// Metrics describes one integrity check.
type Metrics struct {
	Valid               bool
	OriginalLength      int
	ReconstructedLength int
	TokenCount          int
	CharacterAccuracy   float64
	SuccessRate         float64
}

// Summary aggregates all integrity checks a verifier has performed.
type Summary struct {
	Total       int
	Successful  int
	Failed      int
	SuccessRate float64
}

// Verifier checks the lossless property: joining the tokens must
// reproduce the original text byte for byte. Counters are shared across
// goroutines, so they sit behind a mutex.
type Verifier struct {
	mu         sync.Mutex
	total      int
	successful int
	failed     int
}

// NewVerifier returns a verifier with zeroed counters.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyIntegrity reports whether tokens reconstruct original exactly.
func (v *Verifier) VerifyIntegrity(original string, tokens []string) (bool, Metrics) {
	var n int
	for _, t := range tokens {
		n += len(t)
	}
	buf := make([]byte, 0, n)
	for _, t := range tokens {
		buf = append(buf, t...)
	}
	reconstructed := string(buf)
	valid := reconstructed == original

	v.mu.Lock()
	v.total++
	if valid {
		v.successful++
	} else {
		v.failed++
	}
	rate := float64(v.successful) / float64(v.total)
	v.mu.Unlock()

	return valid, Metrics{
		Valid:               valid,
		OriginalLength:      len([]rune(original)),
		ReconstructedLength: len([]rune(reconstructed)),
		TokenCount:          len(tokens),
		CharacterAccuracy:   characterAccuracy(original, reconstructed),
		SuccessRate:         rate,
	}
}

// characterAccuracy is the fraction of aligned positions that match,
// over the longer of the two strings.
func characterAccuracy(original, reconstructed string) float64 {
	or := []rune(original)
	rr := []rune(reconstructed)
	if len(or) == 0 {
		if len(rr) == 0 {
			return 1.0
		}
		return 0.0
	}
	matches := 0
	for i := 0; i < len(or) && i < len(rr); i++ {
		if or[i] == rr[i] {
			matches++
		}
	}
	total := len(or)
	if len(rr) > total {
		total = len(rr)
	}
	return float64(matches) / float64(total)
}

// SuccessRate returns the fraction of checks that passed, zero before
// any check has run.
func (v *Verifier) SuccessRate() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.total == 0 {
		return 0
	}
	return float64(v.successful) / float64(v.total)
}

// MetricsSummary returns the aggregate counters.
func (v *Verifier) MetricsSummary() Summary {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := Summary{
		Total:      v.total,
		Successful: v.successful,
		Failed:     v.failed,
	}
	if v.total > 0 {
		s.SuccessRate = float64(v.successful) / float64(v.total)
	}
	return s
}

// Reset zeroes the counters.
func (v *Verifier) Reset() {
	v.mu.Lock()
	v.total = 0
	v.successful = 0
	v.failed = 0
	v.mu.Unlock()
}
