package client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

const senderIDAttribute = "AWS.SNS.SMS.SenderID"

// SNSAPI SNS 客户端中用到的方法
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

var _ Client = (*SNSSMS)(nil)

// SNSSMS 直接向手机号发布消息
type SNSSMS struct {
	api SNSAPI
}

func NewSNSSMS(api SNSAPI) *SNSSMS {
	return &SNSSMS{api: api}
}

func (s *SNSSMS) Send(ctx context.Context, req SendReq) (SendResp, error) {
	if req.PhoneNumber == "" {
		return SendResp{}, fmt.Errorf("%w: %v", ErrInvalidParameter, "手机号码不能为空")
	}
	input := &sns.PublishInput{
		PhoneNumber: aws.String(req.PhoneNumber),
		Message:     aws.String(req.Message),
	}
	if req.SignName != "" {
		input.MessageAttributes = map[string]types.MessageAttributeValue{
			senderIDAttribute: {
				DataType:    aws.String("String"),
				StringValue: aws.String(req.SignName),
			},
		}
	}
	out, err := s.api.Publish(ctx, input)
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	return SendResp{MessageID: aws.ToString(out.MessageId)}, nil
}
