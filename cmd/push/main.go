package main

import (
	"gitee.com/flycash/ride-notification/cmd/ioc"
	prodioc "gitee.com/flycash/ride-notification/internal/ioc"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gotomicro/ego"
)

// 推送函数，由 SQS 触发
func main() {
	ego.New()
	prodioc.InitZipkinTracer()
	h := ioc.InitPushFunction()
	lambda.Start(h.Handle)
}
