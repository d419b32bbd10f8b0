package jsonx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringifyLeaves(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  map[string]any
	}{
		{
			name:  "数字和布尔转字符串",
			input: `{"ride_id":"R1","amount":42,"ratio":1.5,"paid":true}`,
			want: map[string]any{
				"ride_id": "R1",
				"amount":  "42",
				"ratio":   "1.5",
				"paid":    "true",
			},
		},
		{
			name:  "嵌套对象与数组保持结构",
			input: `{"pass":{"days":3,"tags":[1,"a",{"x":false}]}}`,
			want: map[string]any{
				"pass": map[string]any{
					"days": "3",
					"tags": []any{"1", "a", map[string]any{"x": "false"}},
				},
			},
		},
		{
			name:  "null转为空串",
			input: `{"extra":null}`,
			want:  map[string]any{"extra": ""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var data map[string]any
			require.NoError(t, json.Unmarshal([]byte(tc.input), &data))

			got := StringifyLeaves(data)
			assert.Equal(t, tc.want, got)

			// 再经过一次序列化与反序列化，结构不变
			bs, err := json.Marshal(got)
			require.NoError(t, err)
			var parsed map[string]any
			require.NoError(t, json.Unmarshal(bs, &parsed))
			assert.Equal(t, tc.want, parsed)
		})
	}
}

func TestStringifyLeaves_Nil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, StringifyLeaves(nil))
}

func TestFlattenStrings(t *testing.T) {
	t.Parallel()
	got := FlattenStrings(map[string]any{
		"ride_id": "R1",
		"pass":    map[string]any{"days": "3"},
		"tags":    []any{"a", "b"},
	})
	assert.Equal(t, map[string]string{
		"ride_id": "R1",
		"pass":    `{"days":"3"}`,
		"tags":    `["a","b"]`,
	}, got)
}
