package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
)

// ErrUnsupportedValue JSON 字段值不是字符串、数字或布尔
var ErrUnsupportedValue = errors.New("unsupported field value")

// DecodeJSONForm 将 JSON 对象转换为表单键值；数字保留原文，布尔映射为 1/0，null 视为缺省
func DecodeJSONForm(r io.Reader) (url.Values, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var body map[string]interface{}
	if err := decoder.Decode(&body); err != nil {
		return nil, fmt.Errorf("decode request body: %w", err)
	}

	form := make(url.Values, len(body))
	for key, raw := range body {
		switch v := raw.(type) {
		case nil:
			continue
		case string:
			form.Set(key, v)
		case json.Number:
			form.Set(key, v.String())
		case bool:
			if v {
				form.Set(key, "1")
			} else {
				form.Set(key, "0")
			}
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, key)
		}
	}
	return form, nil
}
