package services

import (
	"context"

	"stroke_risk/features"
	"stroke_risk/models"
)

// Predictor 对按 Schema 排列的特征向量给出 0/1 预测
type Predictor interface {
	Predict(vec features.Vector) (int, error)
}

// AssessmentStore 评估历史存储，未启用数据库时为 nil
type AssessmentStore interface {
	// 保存一次成功的评估
	SaveAssessment(ctx context.Context, a *models.Assessment) error
}
