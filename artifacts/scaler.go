package artifacts

import "fmt"

// Scaler 预拟合的特征缩放
type Scaler interface {
	Transform(x []float64) ([]float64, error)
}

// FittedScaler 支持 standard: (x-mean)/scale 与 minmax: x*scale+min
type FittedScaler struct {
	Kind  string    `json:"kind"`
	Mean  []float64 `json:"mean,omitempty"`
	Min   []float64 `json:"min,omitempty"`
	Scale []float64 `json:"scale"`
}

func (s *FittedScaler) validate() error {
	var offset []float64
	switch s.Kind {
	case "standard":
		offset = s.Mean
	case "minmax":
		offset = s.Min
	default:
		return fmt.Errorf("%w: scaler %q", ErrUnsupportedKind, s.Kind)
	}
	if len(offset) != len(s.Scale) {
		return fmt.Errorf("%w: scaler %s has %d offsets and %d scales", ErrDimensionMismatch, s.Kind, len(offset), len(s.Scale))
	}
	return nil
}

func (s *FittedScaler) Dim() int {
	return len(s.Scale)
}

func (s *FittedScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Scale) {
		return nil, fmt.Errorf("%w: scaler expects %d features, got %d", ErrDimensionMismatch, len(s.Scale), len(x))
	}
	out := make([]float64, len(x))
	for i, v := range x {
		if s.Kind == "minmax" {
			out[i] = v*s.Scale[i] + s.Min[i]
			continue
		}
		scale := s.Scale[i]
		// 方差为零的列按 1 处理
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out, nil
}
