package services

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"stroke_risk/features"
	"stroke_risk/models"
)

type stubPredictor struct {
	prediction int
	err        error
	panicWith  any
	got        features.Vector
}

func (p *stubPredictor) Predict(vec features.Vector) (int, error) {
	p.got = vec
	if p.panicWith != nil {
		panic(p.panicWith)
	}
	return p.prediction, p.err
}

type memoryStore struct {
	saved []*models.Assessment
	err   error
}

func (m *memoryStore) SaveAssessment(_ context.Context, a *models.Assessment) error {
	m.saved = append(m.saved, a)
	return m.err
}

func TestAssess_ClampedMaleNoSymptoms(t *testing.T) {
	req := require.New(t)
	p := &stubPredictor{prediction: 1}
	svc := NewAssessmentService(p, nil)

	payload, err := svc.Assess(context.Background(), url.Values{"age": {"150"}, "gender": {"Male"}})
	req.NoError(err)

	want := make(features.Vector, 17)
	want[0], want[16] = 85, 1
	req.Equal(want, p.got)
	req.Equal(models.PayloadForPrediction(1), payload)
	req.Len(payload.Recommendations, 7)
}

func TestAssess_NoFields(t *testing.T) {
	req := require.New(t)
	p := &stubPredictor{prediction: 0}
	svc := NewAssessmentService(p, nil)

	payload, err := svc.Assess(context.Background(), url.Values{})
	req.NoError(err)

	want := make(features.Vector, 17)
	want[0] = 30
	req.Equal(want, p.got)
	req.Equal(models.RiskLow, payload.RiskLevel)
	req.Len(payload.Recommendations, 8)
}

func TestAssess_PayloadIgnoresInputsBeyondBranch(t *testing.T) {
	svc := NewAssessmentService(&stubPredictor{prediction: 0}, nil)

	a, err := svc.Assess(context.Background(), url.Values{"age": {"20"}})
	require.NoError(t, err)
	b, err := svc.Assess(context.Background(), url.Values{"age": {"80"}, "dizziness": {"1"}, "gender": {"male"}})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestAssess_Errors(t *testing.T) {
	tests := []struct {
		name      string
		predictor *stubPredictor
		form      url.Values
		contains  string
	}{
		{
			name:      "unparseable age",
			predictor: &stubPredictor{},
			form:      url.Values{"age": {"old"}},
			contains:  "age",
		},
		{
			name:      "unparseable symptom",
			predictor: &stubPredictor{},
			form:      url.Values{"chest_pain": {"on"}},
			contains:  "chest_pain",
		},
		{
			name:      "model failure",
			predictor: &stubPredictor{err: errors.New("scaler expects 18 features, got 17")},
			form:      url.Values{},
			contains:  "scaler expects 18 features",
		},
		{
			name:      "model panic",
			predictor: &stubPredictor{panicWith: "index out of range"},
			form:      url.Values{},
			contains:  "index out of range",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryStore{}
			svc := NewAssessmentService(tt.predictor, store)

			payload, err := svc.Assess(context.Background(), tt.form)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.contains)
			require.Empty(t, payload.RiskLevel)
			require.Empty(t, store.saved)

			shown := models.ErrorPayload(err)
			require.Equal(t, models.RiskError, shown.RiskLevel)
			require.Len(t, shown.Recommendations, 1)
			require.Contains(t, shown.Recommendations[0], tt.contains)
		})
	}
}

func TestAssess_RecordsHistory(t *testing.T) {
	req := require.New(t)
	store := &memoryStore{}
	svc := NewAssessmentService(&stubPredictor{prediction: 1}, store)

	_, err := svc.Assess(context.Background(), url.Values{"age": {"64"}, "gender": {"MALE"}, "anxiety_doom": {"1"}})
	req.NoError(err)
	req.Len(store.saved, 1)

	a := store.saved[0]
	req.Equal(64, a.Age)
	req.True(a.GenderMale)
	req.Equal(1, a.Prediction)
	req.Equal(models.RiskPotential, a.RiskLevel)
	req.Len(a.Features, 17)
	req.Equal(1.0, a.Features[15])
}

func TestAssess_StoreFailureDoesNotChangeResult(t *testing.T) {
	store := &memoryStore{err: errors.New("db down")}
	svc := NewAssessmentService(&stubPredictor{prediction: 0}, store)

	payload, err := svc.Assess(context.Background(), url.Values{})
	require.NoError(t, err)
	require.Equal(t, models.PayloadForPrediction(0), payload)
	require.Len(t, store.saved, 1)
}
