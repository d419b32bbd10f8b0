package graphql

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gitee.com/flycash/ride-notification/internal/errs"
	"github.com/machinebox/graphql"
)

const adminSecretHeader = "x-hasura-admin-secret"

// Client 数据接口客户端，请求体为 {query, variables}，响应体为 {data, errors}
//
//go:generate mockgen -source=./client.go -destination=./mocks/client.mock.go -package=graphqlmocks Client
type Client interface {
	// Run 执行查询或变更，resp 对应响应中的 data 部分
	// errors 不为空时整次调用失败，返回第一个错误的 message
	Run(ctx context.Context, query string, vars map[string]any, resp any) error
}

type Config struct {
	Endpoint    string        `yaml:"endpoint"`
	AdminSecret string        `yaml:"adminSecret"`
	Timeout     time.Duration `yaml:"timeout"`
}

type client struct {
	cli         *graphql.Client
	adminSecret string
}

// NewClient 创建数据接口客户端，配置在构造时显式传入
func NewClient(cfg Config) Client {
	const defaultTimeout = 10 * time.Second
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc := &http.Client{Timeout: timeout}
	return &client{
		cli:         graphql.NewClient(cfg.Endpoint, graphql.WithHTTPClient(hc)),
		adminSecret: cfg.AdminSecret,
	}
}

func (c *client) Run(ctx context.Context, query string, vars map[string]any, resp any) error {
	req := graphql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}
	if c.adminSecret != "" {
		req.Header.Set(adminSecretHeader, c.adminSecret)
	}
	if err := c.cli.Run(ctx, req, resp); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrDataAPI, err)
	}
	return nil
}
