package models

import "time"

// 风险等级
const (
	RiskPotential = "POTENTIAL RISK"
	RiskLow       = "LOW RISK"
	RiskError     = "ERROR"
	RiskNoResult  = "No result"
)

var potentialRiskRecommendations = []string{
	"🚑 Consult a doctor immediately for evaluation",
	"💊 Monitor blood pressure and cholesterol weekly",
	"🏥 Schedule a full cardiovascular check-up",
	"🏃 Start with 30 mins daily walking if inactive",
	"🧘 Practice daily stress management (yoga/meditation)",
	"🚭 Quit smoking completely - seek help if needed",
	"🍷 Eliminate alcohol or limit to 1 drink/week",
}

var lowRiskRecommendations = []string{
	"🩺 Continue annual health check-ups",
	"⚖️ Maintain current healthy habits",
	"🥦 Consider adding more leafy greens to your diet",
	"🚶‍♂️ Try adding 10% more daily steps",
	"💧 Stay well hydrated (2-3L water daily)",
	"🌱 Explore new healthy recipes monthly",
	"🧠 Learn about stroke warning signs (FAST method)",
	"🛌 Ensure consistent sleep schedule",
}

// Payload 展示给用户的结果：风险等级与有序建议列表
type Payload struct {
	RiskLevel       string   `json:"risk_level" example:"LOW RISK"`
	Recommendations []string `json:"recommendations"`
}

// PayloadForPrediction 预测值为 1 返回潜在风险，其余返回低风险
func PayloadForPrediction(prediction int) Payload {
	if prediction == 1 {
		return Payload{RiskLevel: RiskPotential, Recommendations: clone(potentialRiskRecommendations)}
	}
	return Payload{RiskLevel: RiskLow, Recommendations: clone(lowRiskRecommendations)}
}

// ErrorPayload 任何失败都以 ERROR 展示，错误信息作为唯一建议
func ErrorPayload(err error) Payload {
	return Payload{
		RiskLevel:       RiskError,
		Recommendations: []string{"An error occurred: " + err.Error()},
	}
}

// Assessment 一次成功评估的历史记录
type Assessment struct {
	ID         string    `db:"id" json:"id"`
	Age        int       `db:"age" json:"age"`
	GenderMale bool      `db:"gender_male" json:"gender_male"`
	Features   []float64 `db:"features" json:"features"` // 按 Schema 顺序
	Prediction int       `db:"prediction" json:"prediction"`
	RiskLevel  string    `db:"risk_level" json:"risk_level"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

func clone(in []string) []string {
	return append([]string(nil), in...)
}
