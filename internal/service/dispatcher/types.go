package dispatcher

import (
	"context"

	"gitee.com/flycash/ride-notification/internal/domain"
)

// Dispatcher 单个渠道的终端投递
// 任何错误都收敛在返回的 DispatchResult 中，不向调用方抛出
type Dispatcher[M any] interface {
	Dispatch(ctx context.Context, msg M) domain.DispatchResult
}

type (
	MailDispatcher = Dispatcher[domain.MailMessage]
	SMSDispatcher  = Dispatcher[domain.SMSMessage]
	PushDispatcher = Dispatcher[domain.PushMessage]
)

// Func 把函数适配为 Dispatcher
type Func[M any] func(ctx context.Context, msg M) domain.DispatchResult

func (f Func[M]) Dispatch(ctx context.Context, msg M) domain.DispatchResult {
	return f(ctx, msg)
}
