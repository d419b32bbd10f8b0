package main

import (
	"context"
	"time"

	"gitee.com/flycash/ride-notification/cmd/ioc"
	prodioc "gitee.com/flycash/ride-notification/internal/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

// 长期运行的 worker，消费 kafka 或进程内队列，同时提供动作回调
func main() {
	egoApp := ego.New()
	tp := prodioc.InitZipkinTracer()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			elog.Error("Shutdown zipkinTracer", elog.FieldErr(err))
		}
	}()

	app := ioc.InitApp()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.StartConsumers(ctx)

	if err := egoApp.Serve(
		egovernor.Load("server.governor").Build(),
		app.Web,
	).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
