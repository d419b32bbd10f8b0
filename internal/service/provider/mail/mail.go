package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/mail"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/errs"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Client 模板邮件发送
//
//go:generate mockgen -source=./mail.go -destination=./mocks/mail.mock.go -package=mailmocks Client
type Client interface {
	// SendTemplated 发送一封模板邮件，返回下游的消息 ID
	SendTemplated(ctx context.Context, msg domain.MailMessage) (string, error)
}

// SESAPI SES 客户端中用到的方法
type SESAPI interface {
	SendTemplatedEmail(ctx context.Context, params *ses.SendTemplatedEmailInput, optFns ...func(*ses.Options)) (*ses.SendTemplatedEmailOutput, error)
}

var _ Client = (*SESClient)(nil)

type SESClient struct {
	api SESAPI
}

func NewSESClient(api SESAPI) *SESClient {
	return &SESClient{api: api}
}

func (c *SESClient) SendTemplated(ctx context.Context, msg domain.MailMessage) (string, error) {
	data, err := json.Marshal(msg.TemplateData)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
	}
	input := &ses.SendTemplatedEmailInput{
		Source:   aws.String(formatSource(msg.Sender, msg.Source)),
		Template: aws.String(msg.Template),
		Destination: &types.Destination{
			ToAddresses:  msg.ToAddresses,
			CcAddresses:  msg.CcAddresses,
			BccAddresses: msg.BccAddresses,
		},
		TemplateData: aws.String(string(data)),
	}
	if msg.ConfigurationSetName != "" {
		input.ConfigurationSetName = aws.String(msg.ConfigurationSetName)
	}
	out, err := c.api.SendTemplatedEmail(ctx, input)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}
	return aws.ToString(out.MessageId), nil
}

// formatSource Sender 作为发件人显示名，Source 已经带显示名时原样使用
func formatSource(sender, source string) string {
	addr, err := mail.ParseAddress(source)
	if err != nil || addr.Name != "" || sender == "" {
		return source
	}
	return (&mail.Address{Name: sender, Address: addr.Address}).String()
}
