package repository

import (
	"context"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gofrs/uuid"
)

// NotificationRepository 站内信仓储
//
//go:generate mockgen -source=./notification.go -destination=./mocks/notification.mock.go -package=repomocks NotificationRepository
type NotificationRepository interface {
	// Create 追加一条站内信，ID 为空时生成 uuid
	Create(ctx context.Context, record domain.NotificationRecord) (domain.NotificationRecord, error)
	// CountByTypes 统计用户指定类型的站内信数量
	CountByTypes(ctx context.Context, userID string, types ...domain.NotificationType) (int64, error)
	// CountRead 统计用户的已读记录数量
	CountRead(ctx context.Context, userID string) (int64, error)
}

type notificationRepository struct {
	dao dao.NotificationDAO
}

func NewNotificationRepository(d dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{dao: d}
}

func (r *notificationRepository) Create(ctx context.Context, record domain.NotificationRecord) (domain.NotificationRecord, error) {
	if record.ID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return domain.NotificationRecord{}, err
		}
		record.ID = id.String()
	}
	n, err := r.dao.Insert(ctx, r.toEntity(record))
	if err != nil {
		return domain.NotificationRecord{}, err
	}
	return r.toDomain(n), nil
}

func (r *notificationRepository) CountByTypes(ctx context.Context, userID string, types ...domain.NotificationType) (int64, error) {
	if len(types) == 0 {
		return 0, nil
	}
	return r.dao.CountByTypes(ctx, userID, slice.Map(types, func(_ int, src domain.NotificationType) string {
		return string(src)
	}))
}

func (r *notificationRepository) CountRead(ctx context.Context, userID string) (int64, error) {
	return r.dao.CountRead(ctx, userID)
}

func (r *notificationRepository) toEntity(record domain.NotificationRecord) dao.Notification {
	return dao.Notification{
		ID: record.ID,
		Content: dao.NotificationContent{
			Title:   record.Content.Title,
			Message: record.Content.Message,
			Data:    record.Content.Data,
		},
		Priority:     string(record.Priority),
		SenderUserID: record.SenderUserID,
		Target:       record.Target.String(),
		UserID:       record.UserID,
	}
}

func (r *notificationRepository) toDomain(n dao.Notification) domain.NotificationRecord {
	record := domain.NotificationRecord{
		ID: n.ID,
		Content: domain.NotificationContent{
			Title:   n.Content.Title,
			Message: n.Content.Message,
			Data:    n.Content.Data,
		},
		Priority:     domain.Priority(n.Priority),
		SenderUserID: n.SenderUserID,
		Target:       domain.Platform(n.Target),
		UserID:       n.UserID,
	}
	if n.CreatedAt != nil {
		record.CreatedAt = *n.CreatedAt
	}
	return record
}
