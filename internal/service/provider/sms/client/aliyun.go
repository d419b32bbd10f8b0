package client

import (
	"context"
	"encoding/json"
	"fmt"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi "github.com/alibabacloud-go/dysmsapi-20170525/v4/client"
	"github.com/alibabacloud-go/tea/tea"
)

var _ Client = (*AliyunSMS)(nil)

// AliyunSMS 阿里云短信实现
// 阿里云只能按模板发送，正文作为模板中的 content 参数
type AliyunSMS struct {
	client       *dysmsapi.Client
	templateCode string
}

// NewAliyunSMS 创建阿里云短信实例
func NewAliyunSMS(regionID, accessKeyID, accessKeySecret, templateCode string) (*AliyunSMS, error) {
	config := &openapi.Config{
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
		RegionId:        tea.String(regionID),
		Endpoint:        tea.String("dysmsapi.aliyuncs.com"),
	}

	client, err := dysmsapi.NewClient(config)
	if err != nil {
		return nil, err
	}
	return &AliyunSMS{client: client, templateCode: templateCode}, nil
}

func (a *AliyunSMS) Send(_ context.Context, req SendReq) (SendResp, error) {
	if req.PhoneNumber == "" {
		return SendResp{}, fmt.Errorf("%w: %v", ErrInvalidParameter, "手机号码不能为空")
	}
	templateParam, err := json.Marshal(map[string]string{"content": req.Message})
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	request := &dysmsapi.SendSmsRequest{
		PhoneNumbers:  tea.String(req.PhoneNumber),
		SignName:      tea.String(req.SignName),
		TemplateCode:  tea.String(a.templateCode),
		TemplateParam: tea.String(string(templateParam)),
	}

	response, err := a.client.SendSms(request)
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	if response.Body == nil || response.Body.Code == nil || *response.Body.Code != OK {
		return SendResp{}, fmt.Errorf("%w: %v", ErrSendFailed, "响应异常")
	}

	return SendResp{
		RequestID: tea.StringValue(response.Body.RequestId),
		MessageID: tea.StringValue(response.Body.BizId),
	}, nil
}
