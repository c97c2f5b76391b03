package artifacts

import (
	"errors"
	"fmt"
)

var (
	ErrDimensionMismatch = errors.New("feature dimension mismatch")
	ErrUnsupportedKind   = errors.New("unsupported artifact kind")
)

// Classifier 预训练的二分类器
type Classifier interface {
	Predict(x []float64) (int, error)
}

// LinearClassifier 线性模型（逻辑回归 / 线性SVM），decision > 0 判为 classes[1]
type LinearClassifier struct {
	Kind      string    `json:"kind"`
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
	Classes   []int     `json:"classes"`
}

func (m *LinearClassifier) validate() error {
	switch m.Kind {
	case "logistic_regression", "linear_svc":
	default:
		return fmt.Errorf("%w: classifier %q", ErrUnsupportedKind, m.Kind)
	}
	if len(m.Classes) == 0 {
		m.Classes = []int{0, 1}
	}
	if len(m.Classes) != 2 {
		return fmt.Errorf("binary classifier needs 2 classes, got %d", len(m.Classes))
	}
	return nil
}

// Decision 返回线性决策值
func (m *LinearClassifier) Decision(x []float64) (float64, error) {
	if len(x) != len(m.Coef) {
		return 0, fmt.Errorf("%w: classifier expects %d features, got %d", ErrDimensionMismatch, len(m.Coef), len(x))
	}
	z := m.Intercept
	for i, c := range m.Coef {
		z += c * x[i]
	}
	return z, nil
}

func (m *LinearClassifier) Predict(x []float64) (int, error) {
	z, err := m.Decision(x)
	if err != nil {
		return 0, err
	}
	if z > 0 {
		return m.Classes[1], nil
	}
	return m.Classes[0], nil
}
