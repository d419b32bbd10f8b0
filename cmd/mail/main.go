package main

import (
	"gitee.com/flycash/ride-notification/cmd/ioc"
	prodioc "gitee.com/flycash/ride-notification/internal/ioc"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gotomicro/ego"
)

// 邮件函数，由 SQS 触发
func main() {
	ego.New()
	prodioc.InitZipkinTracer()
	h := ioc.InitMailFunction()
	lambda.Start(h.Handle)
}
