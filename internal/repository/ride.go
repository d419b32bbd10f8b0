package repository

import (
	"context"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/repository/dao"
)

//go:generate mockgen -source=./ride.go -destination=./mocks/ride.mock.go -package=repomocks RideRepository
type RideRepository interface {
	GetByID(ctx context.Context, id string) (domain.Ride, error)
	// CountRatings 统计用户对某次行程已经提交的评价数
	CountRatings(ctx context.Context, rideID, userID string) (int64, error)
}

type rideRepository struct {
	dao dao.RideDAO
}

func NewRideRepository(d dao.RideDAO) RideRepository {
	return &rideRepository{dao: d}
}

func (r *rideRepository) GetByID(ctx context.Context, id string) (domain.Ride, error) {
	ride, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Ride{}, err
	}
	res := domain.Ride{
		ID:           ride.ID,
		UserID:       ride.UserID,
		DriverUserID: ride.DriverUserID,
	}
	if ride.Rider != nil {
		res.Rider = toDomainUser(*ride.Rider)
	}
	if ride.Driver != nil {
		res.Driver = toDomainUser(*ride.Driver)
	}
	return res, nil
}

func (r *rideRepository) CountRatings(ctx context.Context, rideID, userID string) (int64, error) {
	return r.dao.CountRatings(ctx, rideID, userID)
}
