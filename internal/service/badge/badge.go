package badge

import (
	"context"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/repository"
)

// Service 计算用户的未读角标数
//
//go:generate mockgen -source=./badge.go -destination=./mocks/badge.mock.go -package=badgemocks Service
type Service interface {
	// Count 参与计数的站内信总数减去已读数，最小为 0
	Count(ctx context.Context, userID string) (int, error)
}

type service struct {
	repo repository.NotificationRepository
}

func NewService(repo repository.NotificationRepository) Service {
	return &service{repo: repo}
}

func (s *service) Count(ctx context.Context, userID string) (int, error) {
	total, err := s.repo.CountByTypes(ctx, userID, domain.BadgeNotificationTypes...)
	if err != nil {
		return 0, err
	}
	read, err := s.repo.CountRead(ctx, userID)
	if err != nil {
		return 0, err
	}
	// 已读记录不区分类型，可能比参与计数的总数还多
	return int(max(total-read, 0)), nil
}
