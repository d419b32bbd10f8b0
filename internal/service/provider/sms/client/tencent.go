package client

import (
	"context"
	"fmt"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	sms "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/sms/v20210111"
)

var _ Client = (*TencentCloudSMS)(nil)

// TencentCloudSMS 腾讯云短信实现，正文作为模板的第一个参数
type TencentCloudSMS struct {
	client     *sms.Client
	appID      *string
	templateID *string
}

// NewTencentCloudSMS 创建腾讯云短信实例
func NewTencentCloudSMS(regionID, secretID, secretKey, appID, templateID string) (*TencentCloudSMS, error) {
	client, err := sms.NewClient(common.NewCredential(secretID, secretKey), regionID, profile.NewClientProfile())
	if err != nil {
		return nil, err
	}
	return &TencentCloudSMS{
		client:     client,
		appID:      common.StringPtr(appID),
		templateID: common.StringPtr(templateID),
	}, nil
}

func (t *TencentCloudSMS) Send(ctx context.Context, req SendReq) (SendResp, error) {
	if req.PhoneNumber == "" {
		return SendResp{}, fmt.Errorf("%w: %v", ErrInvalidParameter, "手机号码不能为空")
	}

	request := sms.NewSendSmsRequest()
	request.SmsSdkAppId = t.appID
	request.SignName = common.StringPtr(req.SignName)
	request.TemplateId = t.templateID
	request.TemplateParamSet = common.StringPtrs([]string{req.Message})
	request.PhoneNumberSet = common.StringPtrs([]string{req.PhoneNumber})

	response, err := t.client.SendSmsWithContext(ctx, request)
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	if response.Response == nil || len(response.Response.SendStatusSet) == 0 {
		return SendResp{}, fmt.Errorf("%w: %v", ErrSendFailed, "响应异常")
	}

	status := response.Response.SendStatusSet[0]
	if status.Code == nil || *status.Code != "Ok" {
		return SendResp{}, fmt.Errorf("%w: Code = %s, Message = %s",
			ErrSendFailed, stringValue(status.Code), stringValue(status.Message))
	}
	return SendResp{
		RequestID: stringValue(response.Response.RequestId),
		MessageID: stringValue(status.SerialNo),
	}, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
