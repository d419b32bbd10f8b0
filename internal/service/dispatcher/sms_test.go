package dispatcher

import (
	"errors"
	"testing"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/errs"
	"gitee.com/flycash/ride-notification/internal/service/preference"
	preferencemocks "gitee.com/flycash/ride-notification/internal/service/preference/mocks"
	"gitee.com/flycash/ride-notification/internal/service/provider/sms/client"
	smsmocks "gitee.com/flycash/ride-notification/internal/service/provider/sms/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSMS_Dispatch(t *testing.T) {
	t.Parallel()

	valid := domain.SMSMessage{Sender: "RIDE", Message: "Your pass expires soon", PhoneNumber: "+447700900000", UserID: "u1"}

	testCases := []struct {
		name       string
		policy     preference.Policy
		msg        domain.SMSMessage
		mock       func(ctrl *gomock.Controller) (*smsmocks.MockClient, *preferencemocks.MockResolver)
		wantStatus domain.DispatchStatus
	}{
		{
			name: "发送成功",
			msg:  valid,
			mock: func(ctrl *gomock.Controller) (*smsmocks.MockClient, *preferencemocks.MockResolver) {
				cli := smsmocks.NewMockClient(ctrl)
				resolver := preferencemocks.NewMockResolver(ctrl)
				resolver.EXPECT().Resolve(gomock.Any(), "u1", domain.ChannelSMS).Return(true, nil)
				cli.EXPECT().Send(gomock.Any(), client.SendReq{
					PhoneNumber: "+447700900000",
					SignName:    "RIDE",
					Message:     "Your pass expires soon",
				}).Return(client.SendResp{MessageID: "m-1"}, nil)
				return cli, resolver
			},
			wantStatus: domain.DispatchStatusSent,
		},
		{
			name: "缺少手机号",
			msg:  domain.SMSMessage{Sender: "RIDE", Message: "hi"},
			mock: func(ctrl *gomock.Controller) (*smsmocks.MockClient, *preferencemocks.MockResolver) {
				return smsmocks.NewMockClient(ctrl), preferencemocks.NewMockResolver(ctrl)
			},
			wantStatus: domain.DispatchStatusInvalid,
		},
		{
			name:   "查询偏好失败按策略拦截",
			policy: preference.PolicyFailClosed,
			msg:    valid,
			mock: func(ctrl *gomock.Controller) (*smsmocks.MockClient, *preferencemocks.MockResolver) {
				resolver := preferencemocks.NewMockResolver(ctrl)
				resolver.EXPECT().Resolve(gomock.Any(), "u1", domain.ChannelSMS).
					Return(false, errs.ErrPreferenceLookup)
				return smsmocks.NewMockClient(ctrl), resolver
			},
			wantStatus: domain.DispatchStatusSuppressed,
		},
		{
			name:   "查询偏好失败默认放行",
			policy: preference.PolicyFailOpen,
			msg:    valid,
			mock: func(ctrl *gomock.Controller) (*smsmocks.MockClient, *preferencemocks.MockResolver) {
				cli := smsmocks.NewMockClient(ctrl)
				resolver := preferencemocks.NewMockResolver(ctrl)
				resolver.EXPECT().Resolve(gomock.Any(), "u1", domain.ChannelSMS).
					Return(false, errs.ErrPreferenceLookup)
				cli.EXPECT().Send(gomock.Any(), gomock.Any()).Return(client.SendResp{}, nil)
				return cli, resolver
			},
			wantStatus: domain.DispatchStatusSent,
		},
		{
			name: "下游失败",
			msg:  valid,
			mock: func(ctrl *gomock.Controller) (*smsmocks.MockClient, *preferencemocks.MockResolver) {
				cli := smsmocks.NewMockClient(ctrl)
				resolver := preferencemocks.NewMockResolver(ctrl)
				resolver.EXPECT().Resolve(gomock.Any(), "u1", domain.ChannelSMS).Return(true, nil)
				cli.EXPECT().Send(gomock.Any(), gomock.Any()).Return(client.SendResp{}, errors.New("boom"))
				return cli, resolver
			},
			wantStatus: domain.DispatchStatusFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			cli, resolver := tc.mock(ctrl)
			d := NewSMS(cli, preference.NewGate(resolver, tc.policy))

			res := d.Dispatch(t.Context(), tc.msg)
			assert.Equal(t, tc.wantStatus, res.Status)
			assert.Equal(t, domain.ChannelSMS, res.Channel)
		})
	}
}
