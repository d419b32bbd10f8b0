package fanout

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/errs"
	repomocks "gitee.com/flycash/ride-notification/internal/repository/mocks"
	"gitee.com/flycash/ride-notification/internal/service/preference"
	preferencemocks "gitee.com/flycash/ride-notification/internal/service/preference/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRatingService_Remind(t *testing.T) {
	t.Parallel()

	ride := domain.Ride{
		ID:           "R1",
		UserID:       "U1",
		DriverUserID: "D1",
		Rider:        domain.User{ID: "U1", FullName: "Ada Lovelace"},
		Driver:       domain.User{ID: "D1", FullName: "Charles Babbage"},
	}
	evt := domain.RideRatingEvent{EventID: "m-1", RideID: "R1", UserID: "U1", DriverUserID: "D1"}

	testCases := []struct {
		name        string
		evt         domain.RideRatingEvent
		mock        func(ctrl *gomock.Controller) (*repomocks.MockRideRepository, *repomocks.MockNotificationRepository, *preferencemocks.MockResolver)
		wantPushes  []string
		wantRecords []string
	}{
		{
			name: "双方都没有评价",
			evt:  evt,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockRideRepository, *repomocks.MockNotificationRepository, *preferencemocks.MockResolver) {
				rides := repomocks.NewMockRideRepository(ctrl)
				rides.EXPECT().GetByID(gomock.Any(), "R1").Return(ride, nil)
				rides.EXPECT().CountRatings(gomock.Any(), "R1", "U1").Return(int64(0), nil)
				rides.EXPECT().CountRatings(gomock.Any(), "R1", "D1").Return(int64(0), nil)
				notifications := repomocks.NewMockNotificationRepository(ctrl)
				notifications.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r domain.NotificationRecord) (domain.NotificationRecord, error) {
						return r, nil
					}).Times(2)
				resolver := preferencemocks.NewMockResolver(ctrl)
				resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), domain.ChannelPush).Return(true, nil).Times(2)
				return rides, notifications, resolver
			},
			wantPushes:  []string{"U1", "D1"},
			wantRecords: []string{"U1", "D1"},
		},
		{
			name: "关闭推送也会写站内信",
			evt:  evt,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockRideRepository, *repomocks.MockNotificationRepository, *preferencemocks.MockResolver) {
				rides := repomocks.NewMockRideRepository(ctrl)
				rides.EXPECT().GetByID(gomock.Any(), "R1").Return(ride, nil)
				rides.EXPECT().CountRatings(gomock.Any(), "R1", gomock.Any()).Return(int64(0), nil).Times(2)
				notifications := repomocks.NewMockNotificationRepository(ctrl)
				notifications.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r domain.NotificationRecord) (domain.NotificationRecord, error) {
						return r, nil
					}).Times(2)
				resolver := preferencemocks.NewMockResolver(ctrl)
				resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), domain.ChannelPush).Return(false, nil).Times(2)
				return rides, notifications, resolver
			},
			wantRecords: []string{"U1", "D1"},
		},
		{
			name: "乘客已经评价",
			evt:  evt,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockRideRepository, *repomocks.MockNotificationRepository, *preferencemocks.MockResolver) {
				rides := repomocks.NewMockRideRepository(ctrl)
				rides.EXPECT().GetByID(gomock.Any(), "R1").Return(ride, nil)
				rides.EXPECT().CountRatings(gomock.Any(), "R1", "U1").Return(int64(1), nil)
				rides.EXPECT().CountRatings(gomock.Any(), "R1", "D1").Return(int64(0), nil)
				notifications := repomocks.NewMockNotificationRepository(ctrl)
				notifications.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r domain.NotificationRecord) (domain.NotificationRecord, error) {
						return r, nil
					})
				resolver := preferencemocks.NewMockResolver(ctrl)
				resolver.EXPECT().Resolve(gomock.Any(), "D1", domain.ChannelPush).Return(true, nil)
				return rides, notifications, resolver
			},
			wantPushes:  []string{"D1"},
			wantRecords: []string{"D1"},
		},
		{
			name: "缺少司机",
			evt:  domain.RideRatingEvent{RideID: "R1", UserID: "U1"},
			mock: func(ctrl *gomock.Controller) (*repomocks.MockRideRepository, *repomocks.MockNotificationRepository, *preferencemocks.MockResolver) {
				return repomocks.NewMockRideRepository(ctrl), repomocks.NewMockNotificationRepository(ctrl), preferencemocks.NewMockResolver(ctrl)
			},
		},
		{
			name: "行程不存在",
			evt:  evt,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockRideRepository, *repomocks.MockNotificationRepository, *preferencemocks.MockResolver) {
				rides := repomocks.NewMockRideRepository(ctrl)
				rides.EXPECT().GetByID(gomock.Any(), "R1").Return(domain.Ride{}, errs.ErrRideNotFound)
				return rides, repomocks.NewMockNotificationRepository(ctrl), preferencemocks.NewMockResolver(ctrl)
			},
		},
		{
			name: "查询评价失败只跳过这一方",
			evt:  evt,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockRideRepository, *repomocks.MockNotificationRepository, *preferencemocks.MockResolver) {
				rides := repomocks.NewMockRideRepository(ctrl)
				rides.EXPECT().GetByID(gomock.Any(), "R1").Return(ride, nil)
				rides.EXPECT().CountRatings(gomock.Any(), "R1", "U1").Return(int64(0), nil)
				rides.EXPECT().CountRatings(gomock.Any(), "R1", "D1").Return(int64(0), errors.New("timeout"))
				notifications := repomocks.NewMockNotificationRepository(ctrl)
				notifications.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r domain.NotificationRecord) (domain.NotificationRecord, error) {
						return r, nil
					})
				resolver := preferencemocks.NewMockResolver(ctrl)
				resolver.EXPECT().Resolve(gomock.Any(), "U1", domain.ChannelPush).Return(true, nil)
				return rides, notifications, resolver
			},
			wantPushes:  []string{"U1"},
			wantRecords: []string{"U1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			rides, notifications, resolver := tc.mock(ctrl)
			sub := newFakeSubmitter()
			o := NewOrchestrator(notifications, preference.NewGate(resolver, preference.PolicyFailOpen), sub, nil)
			svc := NewRatingService(rides, o)

			results := svc.Remind(t.Context(), tc.evt)

			var records []string
			for _, r := range results {
				if r.Channel == domain.ChannelInApp && r.Status == domain.DispatchStatusSent {
					records = append(records, r.UserID)
				}
			}
			assert.Equal(t, tc.wantRecords, records)

			var pushes []string
			for _, p := range sub.pushes.AsSlice() {
				pushes = append(pushes, p.UserID)
				assert.Equal(t, string(domain.NotificationTypeRideRating), p.Data[domain.DataKeyNotificationType])
				assert.Equal(t, "R1", p.Data["ride_id"])
			}
			assert.ElementsMatch(t, tc.wantPushes, pushes)
		})
	}
}

func TestRatingService_PushText(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	rides := repomocks.NewMockRideRepository(ctrl)
	rides.EXPECT().GetByID(gomock.Any(), "R1").Return(domain.Ride{
		ID:     "R1",
		Rider:  domain.User{FullName: "Ada Lovelace"},
		Driver: domain.User{FullName: ""},
	}, nil)
	rides.EXPECT().CountRatings(gomock.Any(), "R1", gomock.Any()).Return(int64(0), nil).Times(2)
	notifications := repomocks.NewMockNotificationRepository(ctrl)
	notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.NotificationRecord{}, nil).Times(2)
	resolver := preferencemocks.NewMockResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

	sub := newFakeSubmitter()
	svc := NewRatingService(rides, NewOrchestrator(notifications, preference.NewGate(resolver, ""), sub, nil))
	svc.Remind(t.Context(), domain.RideRatingEvent{RideID: "R1", UserID: "U1", DriverUserID: "D1"})

	bodies := map[domain.Platform]string{}
	for _, p := range sub.pushes.AsSlice() {
		bodies[p.Platform] = p.Notification.Body
	}
	require.Len(t, bodies, 2)
	assert.Equal(t, "Let us know how your trip went.", bodies[domain.PlatformRider])
	assert.Equal(t, "How was your trip with Ada?", bodies[domain.PlatformDriver])
}
