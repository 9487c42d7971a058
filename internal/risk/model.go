package risk

import (
	"math"
	"strings"
)

// Prediction is the outcome of scoring one observation.
type Prediction struct {
	HighRisk    bool    `json:"high_risk"`
	Probability float64 `json:"probability"`
}

// Model is the injected text-classification capability. Implementations
// return a raw score; the Predictor layers the keyword override on top.
type Model interface {
	Score(observation string) Prediction
}

// bayesModel is the default Model: a naive-Bayes token scorer trained from
// stored observations, self-labeled by the keyword rule. Immutable after
// construction.
type bayesModel struct {
	riskTokens map[string]int
	safeTokens map[string]int
	riskTotal  int
	safeTotal  int
	riskDocs   int
	safeDocs   int
	vocab      map[string]struct{}
}

// TrainModel builds the default model. Observations with no usable text are
// skipped; when the remaining set cannot cover both classes, a minimal
// balanced seed set is used instead so scoring never degenerates.
func TrainModel(observations []string) Model {
	type example struct {
		text string
		risk bool
	}

	var examples []example
	for _, obs := range observations {
		if strings.TrimSpace(obs) == "" {
			continue
		}
		examples = append(examples, example{text: obs, risk: HasRiskKeyword(obs)})
	}

	hasRisk, hasSafe := false, false
	for _, ex := range examples {
		if ex.risk {
			hasRisk = true
		} else {
			hasSafe = true
		}
	}
	if len(examples) < 2 || !hasRisk || !hasSafe {
		examples = []example{
			{text: "sem observações", risk: false},
			{text: "tanque arranhado", risk: true},
		}
	}

	m := &bayesModel{
		riskTokens: map[string]int{},
		safeTokens: map[string]int{},
		vocab:      map[string]struct{}{},
	}
	for _, ex := range examples {
		tokens := tokenize(ex.text)
		for _, tok := range tokens {
			m.vocab[tok] = struct{}{}
			if ex.risk {
				m.riskTokens[tok]++
				m.riskTotal++
			} else {
				m.safeTokens[tok]++
				m.safeTotal++
			}
		}
		if ex.risk {
			m.riskDocs++
		} else {
			m.safeDocs++
		}
	}
	return m
}

func (m *bayesModel) Score(observation string) Prediction {
	tokens := tokenize(observation)
	if len(tokens) == 0 {
		return Prediction{}
	}

	docs := float64(m.riskDocs + m.safeDocs)
	logRisk := math.Log(float64(m.riskDocs) / docs)
	logSafe := math.Log(float64(m.safeDocs) / docs)

	// Laplace-smoothed token likelihoods.
	v := float64(len(m.vocab))
	for _, tok := range tokens {
		logRisk += math.Log((float64(m.riskTokens[tok]) + 1) / (float64(m.riskTotal) + v))
		logSafe += math.Log((float64(m.safeTokens[tok]) + 1) / (float64(m.safeTotal) + v))
	}

	// Posterior for the risk class via the log-sum trick.
	p := 1.0 / (1.0 + math.Exp(logSafe-logRisk))
	return Prediction{HighRisk: p > 0.5, Probability: p}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r < 128
	})
}
