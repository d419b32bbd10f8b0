package jsonx

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// StringifyLeaves 把树中所有非容器的叶子节点转换为字符串，对象与数组保持原有结构
// 推送供应商只接受字符串类型的 data 值
func StringifyLeaves(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	res := make(map[string]any, len(data))
	for k, v := range data {
		res[k] = stringify(v)
	}
	return res
}

func stringify(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return StringifyLeaves(val)
	case []any:
		res := make([]any, len(val))
		for i := range val {
			res[i] = stringify(val[i])
		}
		return res
	default:
		return leafString(val)
	}
}

func leafString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case fmt.Stringer:
		return val.String()
	default:
		// 其他类型按 JSON 编码，保证下游拿到的一定是字符串
		bs, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(bs)
	}
}

// FlattenStrings 把顶层已经字符串化的树转换为 map[string]string
// 嵌套的对象和数组编码为 JSON 字符串
func FlattenStrings(data map[string]any) map[string]string {
	if data == nil {
		return nil
	}
	res := make(map[string]string, len(data))
	for k, v := range data {
		if s, ok := v.(string); ok {
			res[k] = s
			continue
		}
		bs, err := json.Marshal(v)
		if err != nil {
			res[k] = fmt.Sprint(v)
			continue
		}
		res[k] = string(bs)
	}
	return res
}
