package services

import (
	"context"
	"fmt"
	"net/url"

	"stroke_risk/features"
	"stroke_risk/logger"
	"stroke_risk/models"
)

// AssessmentService 表单解析、向量组装、预测与结果映射
type AssessmentService struct {
	predictor Predictor
	store     AssessmentStore
}

func NewAssessmentService(predictor Predictor, store AssessmentStore) *AssessmentService {
	return &AssessmentService{predictor: predictor, store: store}
}

// Assess 评估一次表单提交；返回的错误由调用方转换为 ERROR 结果
func (s *AssessmentService) Assess(ctx context.Context, form url.Values) (payload models.Payload, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	vec, err := features.Extract(form)
	if err != nil {
		return models.Payload{}, err
	}

	prediction, err := s.predictor.Predict(vec)
	if err != nil {
		return models.Payload{}, err
	}

	payload = models.PayloadForPrediction(prediction)
	logger.Debug("风险评估完成", "age", vec.Age(), "prediction", prediction, "risk_level", payload.RiskLevel)

	s.record(ctx, vec, prediction, payload.RiskLevel)
	return payload, nil
}

// record 保存失败只记录日志，不影响返回给用户的结果
func (s *AssessmentService) record(ctx context.Context, vec features.Vector, prediction int, riskLevel string) {
	if s.store == nil {
		return
	}
	a := &models.Assessment{
		Age:        vec.Age(),
		GenderMale: vec[len(vec)-1] == 1,
		Features:   append([]float64(nil), vec...),
		Prediction: prediction,
		RiskLevel:  riskLevel,
	}
	if err := s.store.SaveAssessment(ctx, a); err != nil {
		logger.Warn("保存评估记录失败", "error", err)
	}
}
