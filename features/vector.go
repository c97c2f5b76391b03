package features

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrInvalidInteger  = errors.New("invalid literal for integer")
	ErrColumnCount     = errors.New("column count does not match feature schema")
	ErrUnknownColumn   = errors.New("unknown feature column")
	ErrDuplicateColumn = errors.New("duplicate feature column")
)

// Vector 按 Schema 顺序排列的特征值
type Vector []float64

// Extract 从表单中按字段表读取并组装特征向量
func Extract(form url.Values) (Vector, error) {
	vec := make(Vector, len(Schema))
	for i, f := range Schema {
		raw := lookup(form, f)
		switch f.Kind {
		case KindAge:
			age, err := parseInt(f.Key, raw, true)
			if err != nil {
				return nil, err
			}
			vec[i] = float64(ClampAge(age))
		case KindSymptom:
			v, err := parseInt(f.Key, raw, false)
			if err != nil {
				return nil, err
			}
			vec[i] = float64(v)
		case KindGender:
			vec[i] = GenderFlag(raw)
		}
	}
	return vec, nil
}

// ClampAge 年龄越界时修正到 [MinAge, MaxAge]，不拒绝
func ClampAge(age int) int {
	return max(MinAge, min(MaxAge, age))
}

// GenderFlag 仅当小写后等于 "male" 时为 1
func GenderFlag(gender string) float64 {
	if strings.ToLower(gender) == "male" {
		return 1
	}
	return 0
}

// Age 读取向量中的年龄
func (v Vector) Age() int {
	return int(v[0])
}

// Arrange 按训练列顺序重排，order[i] 为第 i 列对应的 Schema 下标
func (v Vector) Arrange(order []int) []float64 {
	return lo.Map(order, func(idx int, _ int) float64 {
		return v[idx]
	})
}

// ColumnOrder 将训练时记录的列名映射为 Schema 下标
func ColumnOrder(columns []string) ([]int, error) {
	if len(columns) != len(Schema) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(columns), len(Schema))
	}

	index := make(map[string]int, len(Schema))
	for i, f := range Schema {
		index[NormalizeColumn(f.Column)] = i
	}

	order := make([]int, len(columns))
	seen := make(map[int]bool, len(columns))
	for pos, name := range columns {
		idx, ok := index[NormalizeColumn(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		seen[idx] = true
		order[pos] = idx
	}
	return order, nil
}

func lookup(form url.Values, f Field) string {
	if vs, ok := form[f.Key]; ok && len(vs) > 0 {
		return vs[0]
	}
	return f.Default
}

// parseInt 按十进制整数解析；saturate 为 true 时超出 int 范围的值取 ±MaxInt，交给调用方修正
func parseInt(key, raw string, saturate bool) (int, error) {
	digits, ok := stripDigitGroups(strings.TrimSpace(raw))
	if !ok {
		return 0, fmt.Errorf("%w %s: %q", ErrInvalidInteger, key, raw)
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		if saturate && errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, fmt.Errorf("%w %s: %q", ErrInvalidInteger, key, raw)
	}
	return v, nil
}

// stripDigitGroups 去掉数字之间的单个下划线（1_000），其他位置出现下划线视为非法
func stripDigitGroups(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
