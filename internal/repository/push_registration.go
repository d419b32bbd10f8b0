package repository

import (
	"context"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./push_registration.go -destination=./mocks/push_registration.mock.go -package=repomocks PushRegistrationRepository
type PushRegistrationRepository interface {
	// FindByUserAndPlatform 查找用户在某个应用上注册的全部设备
	FindByUserAndPlatform(ctx context.Context, userID string, platform domain.Platform) ([]domain.PushRegistration, error)
}

type pushRegistrationRepository struct {
	dao dao.PushRegistrationDAO
}

func NewPushRegistrationRepository(d dao.PushRegistrationDAO) PushRegistrationRepository {
	return &pushRegistrationRepository{dao: d}
}

func (r *pushRegistrationRepository) FindByUserAndPlatform(ctx context.Context, userID string, platform domain.Platform) ([]domain.PushRegistration, error) {
	regs, err := r.dao.FindByUserAndPlatform(ctx, userID, platform.String())
	if err != nil {
		return nil, err
	}
	return slice.Map(regs, func(_ int, src dao.PushRegistration) domain.PushRegistration {
		return domain.PushRegistration{
			ID:       src.ID,
			Token:    src.Token,
			Platform: domain.Platform(src.Platform),
			Provider: src.Provider,
			DeviceID: src.DeviceID,
		}
	}), nil
}
