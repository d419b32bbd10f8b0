package tracing

import (
	"context"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/service/dispatcher"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Dispatcher 为渠道投递添加链路追踪的装饰器
type Dispatcher[M any] struct {
	dispatcher dispatcher.Dispatcher[M]
	channel    domain.Channel
	tracer     trace.Tracer
}

func NewDispatcher[M any](channel domain.Channel, d dispatcher.Dispatcher[M]) *Dispatcher[M] {
	return &Dispatcher[M]{
		dispatcher: d,
		channel:    channel,
		tracer:     otel.Tracer("ride-notification/dispatcher"),
	}
}

func (d *Dispatcher[M]) Dispatch(ctx context.Context, msg M) domain.DispatchResult {
	ctx, span := d.tracer.Start(ctx, "Dispatcher.Dispatch",
		trace.WithAttributes(attribute.String("dispatch.channel", d.channel.String())))
	defer span.End()

	res := d.dispatcher.Dispatch(ctx, msg)

	span.SetAttributes(
		attribute.String("dispatch.userId", res.UserID),
		attribute.String("dispatch.status", string(res.Status)),
		attribute.Int("dispatch.success", res.SuccessCount),
		attribute.Int("dispatch.failure", res.FailureCount),
	)
	if res.Err != nil {
		span.RecordError(res.Err)
		if res.Failed() {
			span.SetStatus(codes.Error, res.Err.Error())
		}
	}
	return res
}
