package dao

import (
	"context"
	"time"

	"gitee.com/flycash/ride-notification/internal/pkg/graphql"
	"github.com/ecodeclub/ekit/slice"
	"github.com/pkg/errors"
)

const insertNotificationMutation = `mutation InsertNotification($object: notifications_insert_input!) {
  insert_notifications_one(object: $object) {
    id
    content
    priority
    sender_user_id
    target
    user_id
    created_at
  }
}`

const countNotificationsQuery = `query CountNotifications($where: notifications_bool_exp!) {
  notifications_aggregate(where: $where) {
    aggregate {
      count
    }
  }
}`

const countReadStatusQuery = `query CountReadStatus($user_id: uuid!) {
  notification_read_status_aggregate(where: {user_id: {_eq: $user_id}}) {
    aggregate {
      count
    }
  }
}`

type NotificationDAO interface {
	// Insert 追加一条站内信
	Insert(ctx context.Context, data Notification) (Notification, error)
	// CountByTypes 统计用户指定类型的站内信数量
	CountByTypes(ctx context.Context, userID string, types []string) (int64, error)
	// CountRead 统计用户的已读记录数量
	CountRead(ctx context.Context, userID string) (int64, error)
}

// NotificationContent 站内信内容，jsonb
type NotificationContent struct {
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// Notification 站内信表
type Notification struct {
	ID           string              `json:"id,omitempty"`
	Content      NotificationContent `json:"content"`
	Priority     string              `json:"priority"`
	SenderUserID *string             `json:"sender_user_id"`
	Target       string              `json:"target"`
	UserID       string              `json:"user_id"`
	CreatedAt    *time.Time          `json:"created_at,omitempty"`
}

type notificationDAO struct {
	client graphql.Client
}

func NewNotificationDAO(client graphql.Client) NotificationDAO {
	return &notificationDAO{client: client}
}

func (d *notificationDAO) Insert(ctx context.Context, data Notification) (Notification, error) {
	// created_at 由数据库生成
	data.CreatedAt = nil
	var resp struct {
		Notification *Notification `json:"insert_notifications_one"`
	}
	err := d.client.Run(ctx, insertNotificationMutation, map[string]any{"object": data}, &resp)
	if err != nil {
		return Notification{}, errors.Wrapf(err, "插入站内信失败 user_id=%s", data.UserID)
	}
	if resp.Notification == nil {
		return Notification{}, errors.Errorf("插入站内信没有返回记录 user_id=%s", data.UserID)
	}
	return *resp.Notification, nil
}

func (d *notificationDAO) CountByTypes(ctx context.Context, userID string, types []string) (int64, error) {
	where := map[string]any{
		"user_id": map[string]any{"_eq": userID},
		"_or": slice.Map(types, func(_ int, src string) any {
			return map[string]any{
				"content": map[string]any{
					"_contains": map[string]any{
						"data": map[string]any{"notification_type": src},
					},
				},
			}
		}),
	}
	var resp struct {
		Aggregate aggregateCount `json:"notifications_aggregate"`
	}
	err := d.client.Run(ctx, countNotificationsQuery, map[string]any{"where": where}, &resp)
	if err != nil {
		return 0, errors.Wrapf(err, "统计站内信失败 user_id=%s", userID)
	}
	return resp.Aggregate.Aggregate.Count, nil
}

func (d *notificationDAO) CountRead(ctx context.Context, userID string) (int64, error) {
	var resp struct {
		Aggregate aggregateCount `json:"notification_read_status_aggregate"`
	}
	err := d.client.Run(ctx, countReadStatusQuery, map[string]any{"user_id": userID}, &resp)
	if err != nil {
		return 0, errors.Wrapf(err, "统计已读记录失败 user_id=%s", userID)
	}
	return resp.Aggregate.Aggregate.Count, nil
}
