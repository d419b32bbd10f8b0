package dao

import (
	"context"

	"gitee.com/flycash/ride-notification/internal/pkg/graphql"
	"github.com/pkg/errors"
)

const findPushRegistrationsQuery = `query FindPushRegistrations($user_id: uuid!, $platform: String!) {
  push_registrations(where: {user_id: {_eq: $user_id}, platform: {_eq: $platform}}) {
    id
    token
    platform
    provider
    device_id
  }
}`

type PushRegistrationDAO interface {
	FindByUserAndPlatform(ctx context.Context, userID, platform string) ([]PushRegistration, error)
}

// PushRegistration 设备推送注册表
type PushRegistration struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Platform string `json:"platform"`
	Provider string `json:"provider"`
	DeviceID string `json:"device_id"`
}

type pushRegistrationDAO struct {
	client graphql.Client
}

func NewPushRegistrationDAO(client graphql.Client) PushRegistrationDAO {
	return &pushRegistrationDAO{client: client}
}

func (d *pushRegistrationDAO) FindByUserAndPlatform(ctx context.Context, userID, platform string) ([]PushRegistration, error) {
	var resp struct {
		Registrations []PushRegistration `json:"push_registrations"`
	}
	err := d.client.Run(ctx, findPushRegistrationsQuery, map[string]any{
		"user_id":  userID,
		"platform": platform,
	}, &resp)
	if err != nil {
		return nil, errors.Wrapf(err, "查询推送设备失败 user_id=%s platform=%s", userID, platform)
	}
	return resp.Registrations, nil
}
