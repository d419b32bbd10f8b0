package ioc

import (
	"fmt"

	"gitee.com/flycash/ride-notification/internal/service/provider/sms/client"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/gotomicro/ego/core/econf"
)

// InitSMSClient 按 sms.provider 选择短信供应商，默认 SNS
func InitSMSClient(awsCfg aws.Config) client.Client {
	provider := econf.GetString("sms.provider")
	switch provider {
	case "", "sns":
		return client.NewSNSSMS(sns.NewFromConfig(awsCfg))
	case "aliyun":
		return initAliyunSms()
	case "tencentcloud":
		return initTxSms()
	default:
		panic(fmt.Sprintf("未知的短信供应商 %s", provider))
	}
}

func initAliyunSms() client.Client {
	type Config struct {
		RegionID        string `yaml:"regionId"`
		AccessKeyID     string `yaml:"accessKeyId"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		TemplateCode    string `yaml:"templateCode"`
	}
	var cfg Config
	err := econf.UnmarshalKey("sms.aliyun", &cfg)
	if err != nil {
		panic(err)
	}
	cli, err := client.NewAliyunSMS(cfg.RegionID, cfg.AccessKeyID, cfg.AccessKeySecret, cfg.TemplateCode)
	if err != nil {
		panic(err)
	}
	return cli
}

func initTxSms() client.Client {
	type Config struct {
		RegionID   string `yaml:"regionId"`
		SecretID   string `yaml:"secretId"`
		SecretKey  string `yaml:"secretKey"`
		AppID      string `yaml:"appId"`
		TemplateID string `yaml:"templateId"`
	}
	var cfg Config
	err := econf.UnmarshalKey("sms.tx", &cfg)
	if err != nil {
		panic(err)
	}
	cli, err := client.NewTencentCloudSMS(cfg.RegionID, cfg.SecretID, cfg.SecretKey, cfg.AppID, cfg.TemplateID)
	if err != nil {
		panic(err)
	}
	return cli
}
