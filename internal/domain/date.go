package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date 宽松解析的日期，无法解析时为零值
// 数据接口可能给出带时区的时间戳、不带时区的时间戳或纯日期
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	d.Time = time.Time{}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return nil
}
