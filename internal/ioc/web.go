package ioc

import (
	"gitee.com/flycash/ride-notification/internal/web/action"
	"github.com/gotomicro/ego/server/egin"
)

func InitWebServer(handler *action.Handler) *egin.Component {
	server := egin.Load("server.http").Build()
	handler.PublicRoutes(server.Engine)
	return server
}
