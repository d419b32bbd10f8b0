package dao

import (
	"context"
	"fmt"

	"gitee.com/flycash/ride-notification/internal/errs"
	"gitee.com/flycash/ride-notification/internal/pkg/graphql"
	"github.com/pkg/errors"
)

const getRideByIDQuery = `query GetRideByID($id: uuid!) {
  rides_by_pk(id: $id) {
    id
    user_id
    driver_user_id
    rider: user {
      id
      full_name
      email
      country_code
      mobile
    }
    driver: driver_user {
      id
      full_name
      email
      country_code
      mobile
    }
  }
}`

const countRideRatingsQuery = `query CountRideRatings($ride_id: uuid!, $user_id: uuid!) {
  ride_ratings_aggregate(where: {ride_id: {_eq: $ride_id}, user_id: {_eq: $user_id}}) {
    aggregate {
      count
    }
  }
}`

type RideDAO interface {
	GetByID(ctx context.Context, id string) (Ride, error)
	// CountRatings 统计某个用户对某次行程提交过的评价数量
	CountRatings(ctx context.Context, rideID, userID string) (int64, error)
}

// Ride 行程表
type Ride struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	DriverUserID string `json:"driver_user_id"`
	Rider        *User  `json:"rider"`
	Driver       *User  `json:"driver"`
}

type rideDAO struct {
	client graphql.Client
}

func NewRideDAO(client graphql.Client) RideDAO {
	return &rideDAO{client: client}
}

func (d *rideDAO) GetByID(ctx context.Context, id string) (Ride, error) {
	var resp struct {
		Ride *Ride `json:"rides_by_pk"`
	}
	err := d.client.Run(ctx, getRideByIDQuery, map[string]any{"id": id}, &resp)
	if err != nil {
		return Ride{}, errors.Wrapf(err, "查询行程失败 id=%s", id)
	}
	if resp.Ride == nil {
		return Ride{}, fmt.Errorf("%w: id = %s", errs.ErrRideNotFound, id)
	}
	return *resp.Ride, nil
}

func (d *rideDAO) CountRatings(ctx context.Context, rideID, userID string) (int64, error) {
	var resp struct {
		Aggregate aggregateCount `json:"ride_ratings_aggregate"`
	}
	err := d.client.Run(ctx, countRideRatingsQuery, map[string]any{
		"ride_id": rideID,
		"user_id": userID,
	}, &resp)
	if err != nil {
		return 0, errors.Wrapf(err, "统计行程评价失败 ride_id=%s user_id=%s", rideID, userID)
	}
	return resp.Aggregate.Aggregate.Count, nil
}
