package scoring

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// KeyphraseModel proposes weighted keyword candidates for text fragments.
// Construction is the expensive part (the language detector preloads its
// models), and Score keeps mutable scratch state between calls, so a single
// instance must never be shared across goroutines — route all callers
// through an Arbiter.
type KeyphraseModel struct {
	detector lingua.LanguageDetector
	scratch  map[string]int
}

// NewKeyphraseModel builds the one model instance for the process.
func NewKeyphraseModel() *KeyphraseModel {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Spanish, lingua.French, lingua.German).
		Build()
	return &KeyphraseModel{
		detector: detector,
		scratch:  make(map[string]int),
	}
}

// Score returns, for each fragment, candidate keywords weighted by
// normalized in-fragment term frequency. Fragments the detector does not
// read as English yield no candidates; job-posting boilerplate and stopwords
// are dropped before counting.
func (m *KeyphraseModel) Score(fragments []string) ([][]Candidate, error) {
	results := make([][]Candidate, len(fragments))
	for i, fragment := range fragments {
		results[i] = m.scoreFragment(fragment)
	}
	return results, nil
}

func (m *KeyphraseModel) scoreFragment(fragment string) []Candidate {
	if strings.TrimSpace(fragment) == "" {
		return nil
	}

	if lang, ok := m.detector.DetectLanguageOf(fragment); ok && lang != lingua.English {
		return nil
	}

	clear(m.scratch)
	total := 0
	for _, raw := range strings.Fields(strings.ToLower(fragment)) {
		word := strings.TrimFunc(raw, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9') && r != '-' && r != '+' && r != '#'
		})
		if len(word) < 2 || isStopword(word) {
			continue
		}
		m.scratch[word]++
		total++
	}
	if total == 0 {
		return nil
	}

	candidates := make([]Candidate, 0, len(m.scratch))
	for word, count := range m.scratch {
		candidates = append(candidates, Candidate{
			Text:   word,
			Weight: float64(count) / float64(total),
		})
	}
	return candidates
}
