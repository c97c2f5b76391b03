package models

// APIResponse 通用API响应
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// AssessmentResponse 风险评估响应
type AssessmentResponse struct {
	Code    int     `json:"code" example:"0"`
	Message string  `json:"message" example:"success"`
	Data    Payload `json:"data"`
}

// AssessmentRequest 风险评估请求体，症状字段取值 0/1，缺省为 0
type AssessmentRequest struct {
	Age                int    `json:"age" example:"45"`
	Gender             string `json:"gender" example:"male"`
	ChestPain          int    `json:"chest_pain" example:"0"`
	HighBloodPressure  int    `json:"high_blood_pressure" example:"1"`
	IrregularHeartbeat int    `json:"irregular_heartbeat" example:"0"`
	ShortnessOfBreath  int    `json:"shortness_of_breath" example:"0"`
	FatigueWeakness    int    `json:"fatigue_weakness" example:"0"`
	Dizziness          int    `json:"dizziness" example:"1"`
	SwellingEdema      int    `json:"swelling_edema" example:"0"`
	NeckJawPain        int    `json:"neck_jaw_pain" example:"0"`
	ExcessiveSweating  int    `json:"excessive_sweating" example:"0"`
	PersistentCough    int    `json:"persistent_cough" example:"0"`
	NauseaVomiting     int    `json:"nausea_vomiting" example:"0"`
	ChestDiscomfort    int    `json:"chest_discomfort" example:"0"`
	ColdHandsFeet      int    `json:"cold_hands_feet" example:"0"`
	SnoringSleepApnea  int    `json:"snoring_sleep_apnea" example:"0"`
	AnxietyDoom        int    `json:"anxiety_doom" example:"0"`
}
