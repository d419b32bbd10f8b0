package ioc

import (
	"gitee.com/flycash/ride-notification/internal/pkg/graphql"
	"github.com/gotomicro/ego/core/econf"
)

func InitGraphQLClient() graphql.Client {
	var cfg graphql.Config
	err := econf.UnmarshalKey("dataapi", &cfg)
	if err != nil {
		panic(err)
	}
	return graphql.NewClient(cfg)
}
