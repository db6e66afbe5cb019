package value

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// 树中允许的值类型
type Type string

const (
	Int    Type = "int"
	Float  Type = "float"
	String Type = "string"
)

func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if t == "" {
		return Int, nil
	}
	if !lo.Contains([]Type{Int, Float, String}, t) {
		return "", errors.Errorf("unknown value type %q, want int, float or string", s)
	}
	return t, nil
}

// 把用户输入的文本反序列化为T。字符串可以不加引号。
func Parse[T any](text string) (T, error) {
	var value T
	text = strings.TrimSpace(text)
	if text == "" {
		return value, errors.New("empty value")
	}
	_, isString := any(value).(string)
	// null 会让Unmarshal留下零值，字符串当作单词"null"，其它类型报错
	if text == "null" {
		if isString {
			return any(text).(T), nil
		}
		return value, errors.Errorf("invalid value %q", text)
	}
	err := json.Unmarshal([]byte(text), &value)
	if err == nil {
		return value, nil
	}
	if isString && !strings.HasPrefix(text, `"`) {
		err = json.Unmarshal([]byte(strconv.Quote(text)), &value)
	}
	return value, errors.Wrapf(err, "invalid value %q", text)
}

// 逗号或空白分隔的一串值
func ParseList[T any](text string) ([]T, error) {
	fields := lo.Filter(strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}), func(field string, _ int) bool {
		return field != ""
	})

	values := make([]T, 0, len(fields))
	for _, field := range fields {
		v, err := Parse[T](field)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// 把值序列化为文本，字符串不加引号
func Format[T any](value T) string {
	if s, ok := any(value).(string); ok {
		return s
	}
	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(data)
}

func FormatList[T any](values []T) []string {
	return lo.Map(values, func(v T, _ int) string {
		return Format(v)
	})
}

// 序列输出为JSON数组
func Encode[T any](values []T) ([]byte, error) {
	if values == nil {
		values = []T{}
	}
	return json.Marshal(values)
}
