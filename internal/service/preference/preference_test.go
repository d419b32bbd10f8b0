package preference

import (
	"errors"
	"testing"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/errs"
	repomocks "gitee.com/flycash/ride-notification/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		bag     domain.PreferenceBag
		repoErr error
		channel domain.Channel
		want    bool
		wantErr error
	}{
		{
			name:    "没有偏好记录",
			channel: domain.ChannelEmail,
			want:    true,
		},
		{
			name:    "缺少渠道键",
			bag:     domain.PreferenceBag{"push": false},
			channel: domain.ChannelEmail,
			want:    true,
		},
		{
			name:    "值为 null",
			bag:     domain.PreferenceBag{"sms": nil},
			channel: domain.ChannelSMS,
			want:    true,
		},
		{
			name:    "值为字符串 false",
			bag:     domain.PreferenceBag{"sms": "false"},
			channel: domain.ChannelSMS,
			want:    true,
		},
		{
			name:    "显式开启",
			bag:     domain.PreferenceBag{"push": true},
			channel: domain.ChannelPush,
			want:    true,
		},
		{
			name:    "显式关闭",
			bag:     domain.PreferenceBag{"email": false},
			channel: domain.ChannelEmail,
			want:    false,
		},
		{
			name:    "查询失败",
			repoErr: errors.New("timeout"),
			channel: domain.ChannelPush,
			wantErr: errs.ErrPreferenceLookup,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockPreferenceRepository(ctrl)
			repo.EXPECT().GetByUserID(gomock.Any(), "u1").Return(tc.bag, tc.repoErr)

			got, err := NewResolver(repo).Resolve(t.Context(), "u1", tc.channel)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGate_Allow(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		policy  Policy
		userID  string
		bag     domain.PreferenceBag
		repoErr error
		want    bool
	}{
		{
			name:   "没有用户不检查",
			policy: PolicyFailClosed,
			want:   true,
		},
		{
			name:   "显式关闭",
			policy: PolicyFailOpen,
			userID: "u1",
			bag:    domain.PreferenceBag{"push": false},
			want:   false,
		},
		{
			name:    "查询失败默认放行",
			policy:  "",
			userID:  "u1",
			repoErr: errors.New("timeout"),
			want:    true,
		},
		{
			name:    "查询失败按策略拦截",
			policy:  PolicyFailClosed,
			userID:  "u1",
			repoErr: errors.New("timeout"),
			want:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockPreferenceRepository(ctrl)
			if tc.userID != "" {
				repo.EXPECT().GetByUserID(gomock.Any(), tc.userID).Return(tc.bag, tc.repoErr)
			}

			gate := NewGate(NewResolver(repo), tc.policy)
			assert.Equal(t, tc.want, gate.Allow(t.Context(), tc.userID, domain.ChannelPush))
		})
	}
}
