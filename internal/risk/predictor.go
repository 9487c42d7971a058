package risk

import (
	"math"
	"strings"
)

// Predictor merges the model score with the keyword rule. The keyword check
// wins on disagreement: a known damage term always yields a high-risk result
// with a sane probability floor.
type Predictor struct {
	model Model
}

func NewPredictor(model Model) *Predictor {
	return &Predictor{model: model}
}

func (p *Predictor) Predict(observation string) Prediction {
	if strings.TrimSpace(observation) == "" {
		return Prediction{HighRisk: false, Probability: 0}
	}

	pred := p.model.Score(observation)

	if HasRiskKeyword(observation) && !pred.HighRisk {
		pred.HighRisk = true
		if pred.Probability < 0.5 {
			pred.Probability = 0.7
		}
	}

	if pred.HighRisk && pred.Probability < 0.5 {
		pred.Probability = math.Max(pred.Probability, 0.6)
	}

	return pred
}
