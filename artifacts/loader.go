package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"stroke_risk/config"
	"stroke_risk/features"
)

// Bundle 启动时加载的只读模型工件，可在并发请求间共享
type Bundle struct {
	classifier Classifier
	scaler     Scaler
	columns    []string
	order      []int
}

// NewBundle 组装工件并按训练列顺序建立映射
func NewBundle(classifier Classifier, scaler Scaler, columns []string) (*Bundle, error) {
	order, err := features.ColumnOrder(columns)
	if err != nil {
		return nil, err
	}
	return &Bundle{
		classifier: classifier,
		scaler:     scaler,
		columns:    append([]string(nil), columns...),
		order:      order,
	}, nil
}

// Load 从配置的目录读取分类器、缩放器和列名三个工件
func Load(cfg *config.Config) (*Bundle, error) {
	dir := cfg.Artifacts.Dir

	var model LinearClassifier
	if err := readJSON(filepath.Join(dir, cfg.Artifacts.ModelFile), &model); err != nil {
		return nil, err
	}
	if err := model.validate(); err != nil {
		return nil, err
	}

	var scaler FittedScaler
	if err := readJSON(filepath.Join(dir, cfg.Artifacts.ScalerFile), &scaler); err != nil {
		return nil, err
	}
	if err := scaler.validate(); err != nil {
		return nil, err
	}

	var columns []string
	if err := readJSON(filepath.Join(dir, cfg.Artifacts.ColumnsFile), &columns); err != nil {
		return nil, err
	}

	if len(model.Coef) != len(columns) || scaler.Dim() != len(columns) {
		return nil, fmt.Errorf("%w: %d columns, %d coefficients, %d scaler features",
			ErrDimensionMismatch, len(columns), len(model.Coef), scaler.Dim())
	}
	return NewBundle(&model, &scaler, columns)
}

// Columns 返回训练时的列顺序
func (b *Bundle) Columns() []string {
	return append([]string(nil), b.columns...)
}

// Predict 按训练列重排向量，缩放后调用分类器
func (b *Bundle) Predict(vec features.Vector) (int, error) {
	if len(vec) != features.Size {
		return 0, fmt.Errorf("%w: vector has %d values, want %d", ErrDimensionMismatch, len(vec), features.Size)
	}
	scaled, err := b.scaler.Transform(vec.Arrange(b.order))
	if err != nil {
		return 0, fmt.Errorf("scale features: %w", err)
	}
	prediction, err := b.classifier.Predict(scaled)
	if err != nil {
		return 0, fmt.Errorf("predict: %w", err)
	}
	return prediction, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode artifact %s: %w", path, err)
	}
	return nil
}
