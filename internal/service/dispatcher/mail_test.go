package dispatcher

import (
	"errors"
	"testing"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/service/preference"
	preferencemocks "gitee.com/flycash/ride-notification/internal/service/preference/mocks"
	mailmocks "gitee.com/flycash/ride-notification/internal/service/provider/mail/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validMail() domain.MailMessage {
	return domain.MailMessage{
		Sender:       "Ride",
		Source:       "no-reply@example.com",
		Template:     "pass-expiring",
		ToAddresses:  []string{"ada@example.com"},
		TemplateData: map[string]any{"name": "Ada"},
		UserID:       "u1",
	}
}

func TestMail_Dispatch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		msg        func() domain.MailMessage
		mock       func(ctrl *gomock.Controller) (*mailmocks.MockClient, *preferencemocks.MockResolver)
		wantStatus domain.DispatchStatus
		wantAttrs  []string
	}{
		{
			name: "发送成功",
			msg:  validMail,
			mock: func(ctrl *gomock.Controller) (*mailmocks.MockClient, *preferencemocks.MockResolver) {
				cli := mailmocks.NewMockClient(ctrl)
				resolver := preferencemocks.NewMockResolver(ctrl)
				resolver.EXPECT().Resolve(gomock.Any(), "u1", domain.ChannelEmail).Return(true, nil)
				cli.EXPECT().SendTemplated(gomock.Any(), validMail()).Return("mid-1", nil)
				return cli, resolver
			},
			wantStatus: domain.DispatchStatusSent,
		},
		{
			name: "收件人为空不调用下游",
			msg: func() domain.MailMessage {
				m := validMail()
				m.ToAddresses = nil
				return m
			},
			mock: func(ctrl *gomock.Controller) (*mailmocks.MockClient, *preferencemocks.MockResolver) {
				return mailmocks.NewMockClient(ctrl), preferencemocks.NewMockResolver(ctrl)
			},
			wantStatus: domain.DispatchStatusInvalid,
			wantAttrs:  []string{"ToAddresses"},
		},
		{
			name: "收集全部校验错误",
			msg: func() domain.MailMessage {
				m := validMail()
				m.Sender = ""
				m.Template = ""
				m.CcAddresses = []string{"not-an-email"}
				return m
			},
			mock: func(ctrl *gomock.Controller) (*mailmocks.MockClient, *preferencemocks.MockResolver) {
				return mailmocks.NewMockClient(ctrl), preferencemocks.NewMockResolver(ctrl)
			},
			wantStatus: domain.DispatchStatusInvalid,
			wantAttrs:  []string{"Sender", "Template", "CcAddresses[0]"},
		},
		{
			name: "用户关闭邮件",
			msg:  validMail,
			mock: func(ctrl *gomock.Controller) (*mailmocks.MockClient, *preferencemocks.MockResolver) {
				resolver := preferencemocks.NewMockResolver(ctrl)
				resolver.EXPECT().Resolve(gomock.Any(), "u1", domain.ChannelEmail).Return(false, nil)
				return mailmocks.NewMockClient(ctrl), resolver
			},
			wantStatus: domain.DispatchStatusSuppressed,
		},
		{
			name: "没有用户不查偏好",
			msg: func() domain.MailMessage {
				m := validMail()
				m.UserID = ""
				return m
			},
			mock: func(ctrl *gomock.Controller) (*mailmocks.MockClient, *preferencemocks.MockResolver) {
				cli := mailmocks.NewMockClient(ctrl)
				cli.EXPECT().SendTemplated(gomock.Any(), gomock.Any()).Return("mid-1", nil)
				return cli, preferencemocks.NewMockResolver(ctrl)
			},
			wantStatus: domain.DispatchStatusSent,
		},
		{
			name: "下游失败",
			msg:  validMail,
			mock: func(ctrl *gomock.Controller) (*mailmocks.MockClient, *preferencemocks.MockResolver) {
				cli := mailmocks.NewMockClient(ctrl)
				resolver := preferencemocks.NewMockResolver(ctrl)
				resolver.EXPECT().Resolve(gomock.Any(), "u1", domain.ChannelEmail).Return(true, nil)
				cli.EXPECT().SendTemplated(gomock.Any(), gomock.Any()).Return("", errors.New("throttled"))
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
			d := NewMail(cli, preference.NewGate(resolver, preference.PolicyFailOpen))

			res := d.Dispatch(t.Context(), tc.msg())
			assert.Equal(t, tc.wantStatus, res.Status)
			assert.Equal(t, domain.ChannelEmail, res.Channel)
			if tc.wantAttrs != nil {
				var ves domain.ValidationErrors
				require.ErrorAs(t, res.Err, &ves)
				assert.ElementsMatch(t, tc.wantAttrs, ves.Attrs())
			}
		})
	}
}
