package repository

import (
	"context"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/repository/dao"
)

//go:generate mockgen -source=./preference.go -destination=./mocks/preference.mock.go -package=repomocks PreferenceRepository
type PreferenceRepository interface {
	// GetByUserID 用户没有偏好记录时返回 nil, nil
	GetByUserID(ctx context.Context, userID string) (domain.PreferenceBag, error)
}

type preferenceRepository struct {
	dao dao.PreferenceDAO
}

func NewPreferenceRepository(d dao.PreferenceDAO) PreferenceRepository {
	return &preferenceRepository{dao: d}
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID string) (domain.PreferenceBag, error) {
	bag, err := r.dao.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if bag == nil {
		return nil, nil
	}
	return domain.PreferenceBag(bag), nil
}
