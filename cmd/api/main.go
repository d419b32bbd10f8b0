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

// 数据 API 的动作回调
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

	if err := egoApp.Serve(
		egovernor.Load("server.governor").Build(),
		ioc.InitWebServer(),
	).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
