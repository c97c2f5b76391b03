package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"stroke_risk/models"
)

const createAssessmentsTable = `
	CREATE TABLE IF NOT EXISTS stroke_assessments (
		id          CHAR(36)     NOT NULL PRIMARY KEY,
		age         INT          NOT NULL,
		gender_male TINYINT(1)   NOT NULL,
		features    JSON         NOT NULL,
		prediction  INT          NOT NULL,
		risk_level  VARCHAR(32)  NOT NULL,
		created_at  DATETIME     NOT NULL,
		INDEX idx_created_at (created_at)
	)`

// AssessmentRepo 评估历史的MySQL存储
type AssessmentRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewAssessmentRepo(db *sql.DB) *AssessmentRepo {
	return &AssessmentRepo{db: db, now: time.Now}
}

// EnsureSchema 表不存在时创建
func (r *AssessmentRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAssessmentsTable); err != nil {
		return fmt.Errorf("create stroke_assessments: %w", err)
	}
	return nil
}

// SaveAssessment 保存一次评估，未设置的ID和时间自动补齐
func (r *AssessmentRepo) SaveAssessment(ctx context.Context, a *models.Assessment) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = r.now().UTC()
	}

	featuresJSON, err := json.Marshal(a.Features)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO stroke_assessments (id, age, gender_male, features, prediction, risk_level, created_at)
		VALUES (?, ?, ?, CAST(? AS JSON), ?, ?, ?)
	`, a.ID, a.Age, a.GenderMale, string(featuresJSON), a.Prediction, a.RiskLevel, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert assessment %s: %w", a.ID, err)
	}
	return nil
}

// CountByRiskLevel 统计指定时间之后各风险等级的评估数量
func (r *AssessmentRepo) CountByRiskLevel(ctx context.Context, since time.Time) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT risk_level, COUNT(*)
		FROM stroke_assessments
		WHERE created_at >= ?
		GROUP BY risk_level
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int)
	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, err
		}
		result[level] = count
	}
	return result, rows.Err()
}
