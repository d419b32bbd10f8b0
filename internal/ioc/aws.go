package ioc

import (
	"context"
	"time"

	"gitee.com/flycash/ride-notification/internal/service/provider/mail"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/gotomicro/ego/core/econf"
)

func InitAWSConfig() aws.Config {
	type Config struct {
		Region string `yaml:"region"`
		// Endpoint 本地联调时指向 localstack
		Endpoint string `yaml:"endpoint"`
	}
	var cfg Config
	err := econf.UnmarshalKey("aws", &cfg)
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		panic(err)
	}
	if cfg.Endpoint != "" {
		awsCfg.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return awsCfg
}

func InitMailClient(awsCfg aws.Config) mail.Client {
	return mail.NewSESClient(ses.NewFromConfig(awsCfg))
}
