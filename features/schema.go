package features

import (
	"strings"
	"unicode"
)

// Kind 表单字段类型
type Kind int

const (
	KindAge Kind = iota
	KindSymptom
	KindGender
)

const (
	MinAge     = 18
	MaxAge     = 85
	DefaultAge = 30
)

// Field 表单字段定义：表单键、训练时的列名以及缺省值
type Field struct {
	Key     string
	Column  string
	Kind    Kind
	Default string
}

// Schema 与训练列顺序一致的固定字段表
var Schema = []Field{
	{Key: "age", Column: "age", Kind: KindAge, Default: "30"},
	{Key: "chest_pain", Column: "chest_pain", Kind: KindSymptom, Default: "0"},
	{Key: "high_blood_pressure", Column: "high_blood_pressure", Kind: KindSymptom, Default: "0"},
	{Key: "irregular_heartbeat", Column: "irregular_heartbeat", Kind: KindSymptom, Default: "0"},
	{Key: "shortness_of_breath", Column: "shortness_of_breath", Kind: KindSymptom, Default: "0"},
	{Key: "fatigue_weakness", Column: "fatigue_weakness", Kind: KindSymptom, Default: "0"},
	{Key: "dizziness", Column: "dizziness", Kind: KindSymptom, Default: "0"},
	{Key: "swelling_edema", Column: "swelling_edema", Kind: KindSymptom, Default: "0"},
	{Key: "neck_jaw_pain", Column: "neck_jaw_pain", Kind: KindSymptom, Default: "0"},
	{Key: "excessive_sweating", Column: "excessive_sweating", Kind: KindSymptom, Default: "0"},
	{Key: "persistent_cough", Column: "persistent_cough", Kind: KindSymptom, Default: "0"},
	{Key: "nausea_vomiting", Column: "nausea_vomiting", Kind: KindSymptom, Default: "0"},
	{Key: "chest_discomfort", Column: "chest_discomfort", Kind: KindSymptom, Default: "0"},
	{Key: "cold_hands_feet", Column: "cold_hands_feet", Kind: KindSymptom, Default: "0"},
	{Key: "snoring_sleep_apnea", Column: "snoring_sleep_apnea", Kind: KindSymptom, Default: "0"},
	{Key: "anxiety_doom", Column: "anxiety_doom", Kind: KindSymptom, Default: "0"},
	{Key: "gender", Column: "gender_male", Kind: KindGender, Default: "female"},
}

// Size 特征向量长度
var Size = len(Schema)

// Symptoms 返回全部症状字段
func Symptoms() []Field {
	out := make([]Field, 0, len(Schema))
	for _, f := range Schema {
		if f.Kind == KindSymptom {
			out = append(out, f)
		}
	}
	return out
}

// NormalizeColumn 列名归一化：小写并去掉非字母数字字符，"Chest Pain" 与 chest_pain 等价
func NormalizeColumn(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
