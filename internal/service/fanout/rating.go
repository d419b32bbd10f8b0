package fanout

import (
	"context"
	"fmt"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// RatingService 行程结束后提醒还没有评价的一方
type RatingService struct {
	rides        repository.RideRepository
	orchestrator *Orchestrator
	logger       *elog.Component
}

func NewRatingService(rides repository.RideRepository, orchestrator *Orchestrator) *RatingService {
	return &RatingService{
		rides:        rides,
		orchestrator: orchestrator,
		logger:       elog.DefaultLogger,
	}
}

type ratingParty struct {
	userID   string
	platform domain.Platform
	title    string
	body     string
}

func (s *RatingService) Remind(ctx context.Context, evt domain.RideRatingEvent) []domain.DispatchResult {
	if err := evt.Validate(); err != nil {
		s.logger.Warn("行程评价事件缺少字段", elog.Any("event", evt), elog.FieldErr(err))
		return nil
	}
	ride, err := s.rides.GetByID(ctx, evt.RideID)
	if err != nil {
		s.logger.Error("查询行程失败", elog.String("rideID", evt.RideID), elog.FieldErr(err))
		return nil
	}

	parties := []ratingParty{
		{
			userID:   evt.UserID,
			platform: domain.PlatformRider,
			title:    "How was your ride?",
			body:     greeting("Let us know how your trip with %s went.", "Let us know how your trip went.", ride.Driver),
		},
		{
			userID:   evt.DriverUserID,
			platform: domain.PlatformDriver,
			title:    "Rate your rider",
			body:     greeting("How was your trip with %s?", "How was your last trip?", ride.Rider),
		},
	}

	envelopes := make([]domain.Envelope, 0, len(parties))
	for _, p := range parties {
		cnt, err := s.rides.CountRatings(ctx, evt.RideID, p.userID)
		if err != nil {
			s.logger.Error("查询行程评价失败",
				elog.String("rideID", evt.RideID),
				elog.String("userID", p.userID),
				elog.FieldErr(err))
			continue
		}
		if cnt > 0 {
			continue
		}
		envelopes = append(envelopes, s.envelope(evt, p))
	}
	if len(envelopes) == 0 {
		s.logger.Info("双方都已评价，无需提醒", elog.String("rideID", evt.RideID))
		return nil
	}
	return s.orchestrator.FanOut(ctx, evt.EventID, envelopes)
}

func (s *RatingService) envelope(evt domain.RideRatingEvent, p ratingParty) domain.Envelope {
	data := map[string]any{
		domain.DataKeyNotificationType: string(domain.NotificationTypeRideRating),
		"ride_id":                      evt.RideID,
	}
	return domain.Envelope{
		UserID: p.userID,
		Record: &domain.NotificationRecord{
			Content: domain.NotificationContent{
				Title:   p.title,
				Message: p.body,
				Data:    data,
			},
			Priority: domain.PriorityNormal,
			Target:   p.platform,
			UserID:   p.userID,
		},
		Push: &domain.PushMessage{
			UserID:       p.userID,
			Platform:     p.platform,
			Notification: domain.PushNotification{Title: p.title, Body: p.body},
			Data:         data,
		},
	}
}

// greeting 有名字时带上对方的名字
func greeting(withName, fallback string, u domain.User) string {
	if name := u.FirstName(); name != "" {
		return fmt.Sprintf(withName, name)
	}
	return fallback
}
