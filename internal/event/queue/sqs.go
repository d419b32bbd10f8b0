package queue

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSAPI SQS 客户端中用到的方法
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

var _ Producer = (*SQSProducer)(nil)

type SQSProducer struct {
	api SQSAPI
}

func NewSQSProducer(api SQSAPI) *SQSProducer {
	return &SQSProducer{api: api}
}

func (p *SQSProducer) Send(ctx context.Context, msg Message) error {
	_, err := p.api.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:     aws.String(msg.Queue),
		MessageBody:  aws.String(string(msg.Body)),
		DelaySeconds: msg.DelaySeconds,
	})
	if err != nil {
		return fmt.Errorf("发送 SQS 消息失败 queue=%s: %w", msg.Queue, err)
	}
	return nil
}
