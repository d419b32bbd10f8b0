package dao

import (
	"bytes"
	"context"
	"encoding/json"

	"gitee.com/flycash/ride-notification/internal/pkg/graphql"
	"github.com/pkg/errors"
)

// PreferenceParameterKey 通知偏好在用户参数表中的键
const PreferenceParameterKey = "notification_preference"

const getUserParameterQuery = `query GetUserParameter($user_id: uuid!, $key: String!) {
  user_parameters(where: {user_id: {_eq: $user_id}, key: {_eq: $key}}, limit: 1) {
    value
  }
}`

type PreferenceDAO interface {
	// GetByUserID 没有记录时返回 nil
	GetByUserID(ctx context.Context, userID string) (map[string]any, error)
}

// UserParameter 用户参数表，value 为 jsonb
type UserParameter struct {
	Value json.RawMessage `json:"value"`
}

type preferenceDAO struct {
	client graphql.Client
}

func NewPreferenceDAO(client graphql.Client) PreferenceDAO {
	return &preferenceDAO{client: client}
}

func (d *preferenceDAO) GetByUserID(ctx context.Context, userID string) (map[string]any, error) {
	var resp struct {
		Parameters []UserParameter `json:"user_parameters"`
	}
	err := d.client.Run(ctx, getUserParameterQuery, map[string]any{
		"user_id": userID,
		"key":     PreferenceParameterKey,
	}, &resp)
	if err != nil {
		return nil, errors.Wrapf(err, "查询通知偏好失败 user_id=%s", userID)
	}
	if len(resp.Parameters) == 0 {
		return nil, nil
	}
	return decodeParameterValue(resp.Parameters[0].Value)
}

// decodeParameterValue 兼容 value 直接存对象，以及存成 JSON 字符串两种写法
func decodeParameterValue(raw json.RawMessage) (map[string]any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, errors.Wrap(err, "解析通知偏好失败")
		}
		raw = []byte(s)
	}
	var bag map[string]any
	if err := json.Unmarshal(raw, &bag); err != nil {
		return nil, errors.Wrap(err, "解析通知偏好失败")
	}
	return bag, nil
}
