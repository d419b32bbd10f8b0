package client

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (f *fakeSNS) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("m-1")}, nil
}

func TestSNSSMS_Send(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		req       SendReq
		apiErr    error
		wantErr   error
		wantCalls int
		after     func(t *testing.T, in *sns.PublishInput)
	}{
		{
			name:      "发送成功",
			req:       SendReq{PhoneNumber: "+447700900000", SignName: "RIDE", Message: "hello"},
			wantCalls: 1,
			after: func(t *testing.T, in *sns.PublishInput) {
				assert.Equal(t, "+447700900000", aws.ToString(in.PhoneNumber))
				assert.Equal(t, "hello", aws.ToString(in.Message))
				assert.Equal(t, "RIDE", aws.ToString(in.MessageAttributes[senderIDAttribute].StringValue))
			},
		},
		{
			name:      "没有签名",
			req:       SendReq{PhoneNumber: "+447700900000", Message: "hello"},
			wantCalls: 1,
			after: func(t *testing.T, in *sns.PublishInput) {
				assert.Empty(t, in.MessageAttributes)
			},
		},
		{
			name:    "手机号为空",
			req:     SendReq{Message: "hello"},
			wantErr: ErrInvalidParameter,
		},
		{
			name:      "下游失败",
			req:       SendReq{PhoneNumber: "+447700900000", Message: "hello"},
			apiErr:    errors.New("throttled"),
			wantErr:   ErrSendFailed,
			wantCalls: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			api := &fakeSNS{err: tc.apiErr}
			resp, err := NewSNSSMS(api).Send(t.Context(), tc.req)
			require.Len(t, api.inputs, tc.wantCalls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "m-1", resp.MessageID)
			tc.after(t, api.inputs[0])
		})
	}
}
