// Package classifier loads the trained model and vectorizer artifacts embedded in
// the binary and turns free text into a harm label. Both artifacts are parsed and
// cross-checked once at startup; a bad artifact is fatal since the whole service
// is useless without a working model
package classifier

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"

	"harmwatch/internal/core/textnorm"
)

//go:embed vectorizer.json
var embeddedVectorizer []byte

//go:embed model.json
var embeddedModel []byte

type rawVectorizer struct {
	Version    int            `json:"version"`
	Analyzer   string         `json:"analyzer"`
	Lowercase  bool           `json:"lowercase"`
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

type rawModel struct {
	Version      int         `json:"version"`
	Classes      []int       `json:"classes"`
	Intercepts   []float64   `json:"intercepts"`
	Coefficients [][]float64 `json:"coefficients"`
}

// Model is the compiled text classifier. Safe for concurrent use; Classify is a
// pure function of the input text and the fixed artifact state
type Model struct {
	vocab      map[string]int
	idf        []float64
	intercepts []float64
	coef       [][]float64
	norm       *textnorm.Normalizer
}

// Load parses the embedded artifacts and cross-checks their shapes
func Load() (*Model, error) {
	var v rawVectorizer
	if err := json.Unmarshal(embeddedVectorizer, &v); err != nil {
		return nil, fmt.Errorf("classifier: parse vectorizer: %w", err)
	}
	var m rawModel
	if err := json.Unmarshal(embeddedModel, &m); err != nil {
		return nil, fmt.Errorf("classifier: parse model: %w", err)
	}

	nfeat := len(v.Vocabulary)
	if nfeat == 0 {
		return nil, fmt.Errorf("classifier: empty vocabulary")
	}
	if len(v.IDF) != nfeat {
		return nil, fmt.Errorf("classifier: idf length %d != vocabulary size %d", len(v.IDF), nfeat)
	}
	if len(m.Classes) != len(labelNames) {
		return nil, fmt.Errorf("classifier: expected %d classes, artifact has %d", len(labelNames), len(m.Classes))
	}
	if len(m.Intercepts) != len(m.Classes) || len(m.Coefficients) != len(m.Classes) {
		return nil, fmt.Errorf("classifier: intercept/coefficient rows do not match class count")
	}
	for i, row := range m.Coefficients {
		if len(row) != nfeat {
			return nil, fmt.Errorf("classifier: coefficient row %d has %d features, want %d", i, len(row), nfeat)
		}
	}
	for tok, idx := range v.Vocabulary {
		if idx < 0 || idx >= nfeat {
			return nil, fmt.Errorf("classifier: vocabulary index out of range for %q", tok)
		}
	}

	return &Model{
		vocab:      v.Vocabulary,
		idf:        v.IDF,
		intercepts: m.Intercepts,
		coef:       m.Coefficients,
		norm:       textnorm.New(),
	}, nil
}

// Features returns the number of vectorizer features, handy for diagnostics
func (m *Model) Features() int { return len(m.idf) }

// Classify maps text to its predicted label. Callers must not pass empty or
// whitespace-only text; that contract is enforced upstream
func (m *Model) Classify(text string) Label {
	x := m.vectorize(text)

	best := 0
	bestScore := math.Inf(-1)
	for c := range m.coef {
		score := m.intercepts[c]
		for i, xi := range x {
			if xi != 0 {
				score += m.coef[c][i] * xi
			}
		}
		// strict greater-than keeps ties on the lowest class index
		if score > bestScore {
			best = c
			bestScore = score
		}
	}
	return Label(best)
}

// vectorize builds the l2-normalized tf-idf feature vector for text
// accumulation is dense and index-ordered so float rounding is reproducible
func (m *Model) vectorize(text string) []float64 {
	x := make([]float64, len(m.idf))
	for _, tok := range textnorm.Tokens(m.norm.Normalize(text)) {
		if idx, ok := m.vocab[tok]; ok {
			x[idx]++
		}
	}
	var sq float64
	for i := range x {
		if x[i] != 0 {
			x[i] *= m.idf[i]
			sq += x[i] * x[i]
		}
	}
	if sq > 0 {
		inv := 1 / math.Sqrt(sq)
		for i := range x {
			x[i] *= inv
		}
	}
	return x
}
