package dispatcher

import (
	"context"
	"fmt"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/errs"
	"gitee.com/flycash/ride-notification/internal/pkg/jsonx"
	"gitee.com/flycash/ride-notification/internal/repository"
	"gitee.com/flycash/ride-notification/internal/service/badge"
	"gitee.com/flycash/ride-notification/internal/service/preference"
	"gitee.com/flycash/ride-notification/internal/service/provider/push"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var _ PushDispatcher = (*Push)(nil)

type Push struct {
	factory       push.ClientFactory
	registrations repository.PushRegistrationRepository
	badges        badge.Service
	gate          *preference.Gate
	logger        *elog.Component
}

func NewPush(
	factory push.ClientFactory,
	registrations repository.PushRegistrationRepository,
	badges badge.Service,
	gate *preference.Gate,
) *Push {
	return &Push{
		factory:       factory,
		registrations: registrations,
		badges:        badges,
		gate:          gate,
		logger:        elog.DefaultLogger,
	}
}

func (d *Push) Dispatch(ctx context.Context, msg domain.PushMessage) domain.DispatchResult {
	res := domain.DispatchResult{Channel: domain.ChannelPush, UserID: msg.UserID}
	if ves := msg.Validate(); len(ves) > 0 {
		d.logger.Warn("推送参数校验失败",
			elog.String("userID", msg.UserID),
			elog.Any("errors", ves))
		res.Status, res.Err = domain.DispatchStatusInvalid, ves
		return res
	}
	if !d.gate.Allow(ctx, msg.UserID, domain.ChannelPush) {
		res.Status = domain.DispatchStatusSuppressed
		return res
	}
	if msg.IsBroadcast() {
		return d.broadcast(ctx, msg, res)
	}

	regs, err := d.registrations.FindByUserAndPlatform(ctx, msg.UserID, msg.Platform)
	if err != nil {
		d.logger.Error("查询推送设备失败",
			elog.String("userID", msg.UserID),
			elog.String("platform", msg.Platform.String()),
			elog.FieldErr(err))
		res.Status, res.Err = domain.DispatchStatusFailed, err
		return res
	}
	tokens := d.tokens(regs)
	if len(tokens) == 0 {
		d.logger.Info("用户没有注册推送设备",
			elog.String("userID", msg.UserID),
			elog.String("platform", msg.Platform.String()))
		res.Status = domain.DispatchStatusSkipped
		return res
	}

	tmpl := d.payload(ctx, msg)
	payloads := slice.Map(tokens, func(_ int, token string) push.Payload {
		p := tmpl
		p.Token = token
		return p
	})
	return d.sendEach(ctx, msg, payloads, res)
}

// tokens 去掉空的和重复的 token，保持原有顺序
func (d *Push) tokens(regs []domain.PushRegistration) []string {
	seen := make(map[string]struct{}, len(regs))
	tokens := make([]string, 0, len(regs))
	for _, reg := range regs {
		if reg.Token == "" {
			continue
		}
		if _, ok := seen[reg.Token]; ok {
			continue
		}
		seen[reg.Token] = struct{}{}
		tokens = append(tokens, reg.Token)
	}
	return tokens
}

// payload 构造公共部分，token 和 topic 由调用方填
func (d *Push) payload(ctx context.Context, msg domain.PushMessage) push.Payload {
	return push.Payload{
		Notification: msg.Notification,
		Data:         jsonx.FlattenStrings(jsonx.StringifyLeaves(msg.Data)),
		Badge:        d.badge(ctx, msg.UserID),
		Android:      msg.Android,
		Webpush:      msg.Webpush,
	}
}

// badge 角标查询失败不影响推送，只是不带角标
func (d *Push) badge(ctx context.Context, userID string) *int {
	if d.badges == nil || userID == "" {
		return nil
	}
	cnt, err := d.badges.Count(ctx, userID)
	if err != nil {
		d.logger.Warn("查询角标数失败",
			elog.String("userID", userID),
			elog.FieldErr(err))
		return nil
	}
	return &cnt
}

func (d *Push) open(ctx context.Context, platform domain.Platform) (push.Client, func(), error) {
	cli, err := d.factory.Open(ctx, platform)
	if err != nil {
		return nil, nil, err
	}
	return cli, func() {
		if err := cli.Close(); err != nil {
			d.logger.Warn("关闭推送客户端失败", elog.FieldErr(err))
		}
	}, nil
}

func (d *Push) sendEach(ctx context.Context, msg domain.PushMessage, payloads []push.Payload, res domain.DispatchResult) domain.DispatchResult {
	cli, release, err := d.open(ctx, msg.Platform)
	if err != nil {
		d.logger.Error("打开推送客户端失败",
			elog.String("platform", msg.Platform.String()),
			elog.FieldErr(err))
		res.Status, res.Err = domain.DispatchStatusFailed, err
		return res
	}
	defer release()

	br, err := cli.SendEach(ctx, payloads)
	res.SuccessCount, res.FailureCount = br.SuccessCount, br.FailureCount
	if err != nil && br.SuccessCount == 0 {
		d.logger.Error("批量推送失败",
			elog.String("userID", msg.UserID),
			elog.Int("tokens", len(payloads)),
			elog.FieldErr(err))
		res.Status, res.Err = domain.DispatchStatusFailed, err
		return res
	}
	if err != nil {
		d.logger.Warn("部分批次推送失败",
			elog.String("userID", msg.UserID),
			elog.FieldErr(err))
	}

	if br.FailureCount > 0 {
		d.logger.Warn("部分设备推送失败",
			elog.String("userID", msg.UserID),
			elog.Int("success", br.SuccessCount),
			elog.Int("failure", br.FailureCount),
			elog.Any("failedTokens", slice.Map(br.Failures, func(_ int, src push.TokenFailure) string {
				return src.Token
			})))
	} else {
		d.logger.Info("推送成功",
			elog.String("userID", msg.UserID),
			elog.Int("success", br.SuccessCount))
	}
	if br.SuccessCount == 0 && br.FailureCount > 0 {
		res.Status = domain.DispatchStatusFailed
		res.Err = fmt.Errorf("%w: 全部 %d 台设备推送失败", errs.ErrSendNotificationFailed, br.FailureCount)
		return res
	}
	res.Status = domain.DispatchStatusSent
	return res
}

func (d *Push) broadcast(ctx context.Context, msg domain.PushMessage, res domain.DispatchResult) domain.DispatchResult {
	cli, release, err := d.open(ctx, msg.Platform)
	if err != nil {
		d.logger.Error("打开推送客户端失败",
			elog.String("platform", msg.Platform.String()),
			elog.FieldErr(err))
		res.Status, res.Err = domain.DispatchStatusFailed, err
		return res
	}
	defer release()

	p := d.payload(ctx, msg)
	p.Topic = msg.Filter
	id, err := cli.Send(ctx, p)
	if err != nil {
		d.logger.Error("人群推送失败",
			elog.String("filter", msg.Filter),
			elog.FieldErr(err))
		res.Status, res.Err = domain.DispatchStatusFailed, err
		return res
	}
	d.logger.Info("人群推送成功",
		elog.String("filter", msg.Filter),
		elog.String("messageID", id))
	res.Status, res.SuccessCount = domain.DispatchStatusSent, 1
	return res
}
