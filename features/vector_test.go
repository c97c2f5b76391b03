package features

import (
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_Shape(t *testing.T) {
	req := require.New(t)
	req.Len(Schema, 17)
	req.Equal(17, Size)
	req.Equal(KindAge, Schema[0].Kind)
	req.Equal("gender_male", Schema[16].Column)
	req.Len(Symptoms(), 15)
}

func TestClampAge(t *testing.T) {
	for a := -200; a <= 300; a++ {
		want := a
		if want < 18 {
			want = 18
		}
		if want > 85 {
			want = 85
		}
		require.Equal(t, want, ClampAge(a), a)
	}
}

func TestGenderFlag(t *testing.T) {
	tests := map[string]float64{
		"male":   1,
		"Male":   1,
		"MALE":   1,
		"female": 0,
		"":       0,
		" male":  0,
		"m":      0,
		"other":  0,
	}
	for in, want := range tests {
		assert.Equal(t, want, GenderFlag(in), in)
	}
}

func TestExtract_NoFields(t *testing.T) {
	vec, err := Extract(url.Values{})
	require.NoError(t, err)
	require.Len(t, vec, 17)

	want := make(Vector, 17)
	want[0] = 30
	require.Equal(t, want, vec)
	require.Equal(t, 30, vec.Age())
}

func TestExtract_ClampsAndFlags(t *testing.T) {
	form := url.Values{
		"age":        {"150"},
		"gender":     {"Male"},
		"dizziness":  {"1"},
		"chest_pain": {" 1 "},
	}
	vec, err := Extract(form)
	require.NoError(t, err)
	require.Len(t, vec, 17)

	assert.Equal(t, 85.0, vec[0])
	assert.Equal(t, 1.0, vec[1], "chest_pain")
	assert.Equal(t, 1.0, vec[6], "dizziness")
	assert.Equal(t, 1.0, vec[16], "gender_male")
	for i, f := range Schema {
		if f.Kind == KindSymptom && f.Key != "chest_pain" && f.Key != "dizziness" {
			assert.Zero(t, vec[i], f.Key)
		}
	}
}

func TestExtract_EachSymptomLandsInItsSlot(t *testing.T) {
	for i, f := range Schema {
		if f.Kind != KindSymptom {
			continue
		}
		vec, err := Extract(url.Values{f.Key: {"1"}})
		require.NoError(t, err)
		for j := 1; j < 16; j++ {
			want := 0.0
			if j == i {
				want = 1
			}
			require.Equal(t, want, vec[j], "%s slot %d", f.Key, j)
		}
	}
}

func TestExtract_AgeBounds(t *testing.T) {
	for _, a := range []int{-5, 0, 17, 18, 40, 85, 86, 1000} {
		vec, err := Extract(url.Values{"age": {strconv.Itoa(a)}})
		require.NoError(t, err)
		require.Equal(t, float64(max(18, min(85, a))), vec[0], a)
	}
}

func TestExtract_AgeBeyondIntRange(t *testing.T) {
	tests := map[string]float64{
		"99999999999999999999":   85,
		"-99999999999999999999":  18,
		" 99999999999999999999 ": 85,
	}
	for raw, want := range tests {
		vec, err := Extract(url.Values{"age": {raw}})
		require.NoError(t, err, raw)
		require.Equal(t, want, vec[0], raw)
	}

	// 症状字段不做饱和处理
	_, err := Extract(url.Values{"chest_pain": {"99999999999999999999"}})
	require.ErrorIs(t, err, ErrInvalidInteger)
}

func TestExtract_DigitGroupUnderscores(t *testing.T) {
	vec, err := Extract(url.Values{"age": {"4_5"}, "dizziness": {"0_1"}})
	require.NoError(t, err)
	require.Equal(t, 45.0, vec[0])
	require.Equal(t, 1.0, vec[6])

	vec, err = Extract(url.Values{"age": {"1_00"}})
	require.NoError(t, err)
	require.Equal(t, 85.0, vec[0])

	for _, raw := range []string{"_45", "45_", "4__5", "+_45", "4_ 5"} {
		_, err := Extract(url.Values{"age": {raw}})
		require.ErrorIs(t, err, ErrInvalidInteger, raw)
	}
}

func TestExtract_InvalidInteger(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{name: "age text", form: url.Values{"age": {"abc"}}},
		{name: "age empty", form: url.Values{"age": {""}}},
		{name: "age float", form: url.Values{"age": {"45.5"}}},
		{name: "symptom on", form: url.Values{"fatigue_weakness": {"on"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.form)
			require.ErrorIs(t, err, ErrInvalidInteger)
		})
	}
}

func TestExtract_SymptomValueIsNotRangeChecked(t *testing.T) {
	vec, err := Extract(url.Values{"persistent_cough": {"3"}})
	require.NoError(t, err)
	require.Equal(t, 3.0, vec[10])
}

func TestColumnOrder(t *testing.T) {
	req := require.New(t)

	columns := make([]string, 0, len(Schema))
	for _, f := range Schema {
		columns = append(columns, f.Column)
	}
	order, err := ColumnOrder(columns)
	req.NoError(err)
	for i, idx := range order {
		req.Equal(i, idx)
	}

	// 训练列顺序不同：性别在前，列名带空格和大写
	reordered := append([]string{"Gender_Male", "Age"}, columns[1:16]...)
	reordered[2] = "Chest Pain"
	order, err = ColumnOrder(reordered)
	req.NoError(err)
	req.Equal(16, order[0])
	req.Equal(0, order[1])
	req.Equal(1, order[2])

	vec := make(Vector, 17)
	vec[0], vec[1], vec[16] = 50, 1, 1
	arranged := vec.Arrange(order)
	req.Len(arranged, 17)
	req.Equal([]float64{1, 50, 1}, arranged[:3])
}

func TestColumnOrder_Errors(t *testing.T) {
	columns := make([]string, 0, len(Schema))
	for _, f := range Schema {
		columns = append(columns, f.Column)
	}

	_, err := ColumnOrder(columns[:16])
	assert.ErrorIs(t, err, ErrColumnCount)

	unknown := append([]string{}, columns...)
	unknown[3] = "blood_sugar"
	_, err = ColumnOrder(unknown)
	assert.ErrorIs(t, err, ErrUnknownColumn)

	dup := append([]string{}, columns...)
	dup[3] = "Chest-Pain"
	_, err = ColumnOrder(dup)
	assert.ErrorIs(t, err, ErrDuplicateColumn)
}
