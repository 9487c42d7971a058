package risk

import (
	"context"

	"motoyard/internal/repository"
)

// CheckinRisk is one row of the bulk report.
type CheckinRisk struct {
	CheckinID   int     `json:"checkin_id"`
	MotoID      int     `json:"moto_id"`
	Observation string  `json:"observation"`
	HighRisk    bool    `json:"high_risk"`
	Probability float64 `json:"probability"`
}

// Report aggregates predictions over every stored check-in.
type Report struct {
	TotalCheckins   int           `json:"total_checkins"`
	MeanProbability float64       `json:"mean_probability"`
	HighRiskCount   int           `json:"high_risk_count"`
	HighRiskPercent float64       `json:"high_risk_percent"`
	Details         []CheckinRisk `json:"details"`
}

// Service runs the predictor over stored check-ins. The analysis is
// read-only; nothing here mutates the store.
type Service struct {
	predictor *Predictor
	checkins  repository.CheckinRepository
}

func NewService(predictor *Predictor, checkins repository.CheckinRepository) *Service {
	return &Service{predictor: predictor, checkins: checkins}
}

// BootstrapModel trains the default model from the observations already in
// the store. Called once at startup.
func BootstrapModel(ctx context.Context, checkins repository.CheckinRepository) (Model, error) {
	stored, err := checkins.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	observations := make([]string, 0, len(stored))
	for _, c := range stored {
		observations = append(observations, c.Observation)
	}
	return TrainModel(observations), nil
}

func (s *Service) Predict(observation string) Prediction {
	return s.predictor.Predict(observation)
}

func (s *Service) AnalyzeAll(ctx context.Context) (*Report, error) {
	checkins, err := s.checkins.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Details: make([]CheckinRisk, 0, len(checkins))}
	var probabilitySum float64
	for _, c := range checkins {
		pred := s.predictor.Predict(c.Observation)
		probabilitySum += pred.Probability
		if pred.HighRisk {
			report.HighRiskCount++
		}
		report.Details = append(report.Details, CheckinRisk{
			CheckinID:   c.ID,
			MotoID:      c.MotoID,
			Observation: c.Observation,
			HighRisk:    pred.HighRisk,
			Probability: pred.Probability,
		})
	}

	report.TotalCheckins = len(checkins)
	if report.TotalCheckins > 0 {
		report.MeanProbability = probabilitySum / float64(report.TotalCheckins)
		report.HighRiskPercent = float64(report.HighRiskCount) * 100 / float64(report.TotalCheckins)
	}
	return report, nil
}
