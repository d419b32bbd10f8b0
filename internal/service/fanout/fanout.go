package fanout

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/errs"
	"gitee.com/flycash/ride-notification/internal/pkg/idempotent"
	"gitee.com/flycash/ride-notification/internal/repository"
	"gitee.com/flycash/ride-notification/internal/service/preference"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// Orchestrator 把一个业务事件扇出到多个接收人和多个渠道
type Orchestrator struct {
	notifications repository.NotificationRepository
	gate          *preference.Gate
	submitter     Submitter
	// guard 为 nil 表示不去重，同一事件重投会重复通知
	guard  idempotent.IdempotencyService
	logger *elog.Component
}

func NewOrchestrator(
	notifications repository.NotificationRepository,
	gate *preference.Gate,
	submitter Submitter,
	guard idempotent.IdempotencyService,
) *Orchestrator {
	return &Orchestrator{
		notifications: notifications,
		gate:          gate,
		submitter:     submitter,
		guard:         guard,
		logger:        elog.DefaultLogger,
	}
}

type task struct {
	channel domain.Channel
	userID  string
	run     func(ctx context.Context) domain.DispatchResult
}

// FanOut 并发提交全部消息并等待全部完成，单个渠道失败不影响其他渠道
// 返回结果的顺序与 envelopes 一致，同一接收人内按 站内信、推送、邮件、短信 排列
func (o *Orchestrator) FanOut(ctx context.Context, eventID string, envelopes []domain.Envelope) []domain.DispatchResult {
	tasks := o.tasks(envelopes)
	results := make([]domain.DispatchResult, len(tasks))

	var eg errgroup.Group
	for i, t := range tasks {
		eg.Go(func() error {
			results[i] = o.execute(ctx, eventID, t)
			return nil
		})
	}
	_ = eg.Wait()

	var merr error
	for _, res := range results {
		if res.Failed() {
			merr = multierror.Append(merr, fmt.Errorf("%s %s: %w", res.Channel, res.UserID, res.Err))
		}
	}
	if merr != nil {
		o.logger.Warn("部分渠道投递失败",
			elog.String("eventID", eventID),
			elog.Int("total", len(results)),
			elog.FieldErr(merr))
	}
	return results
}

func (o *Orchestrator) tasks(envelopes []domain.Envelope) []task {
	tasks := make([]task, 0, len(envelopes)*4)
	for _, env := range envelopes {
		if env.Record != nil {
			record := *env.Record
			record.UserID = env.UserID
			tasks = append(tasks, task{
				channel: domain.ChannelInApp,
				userID:  env.UserID,
				run: func(ctx context.Context) domain.DispatchResult {
					return o.createRecord(ctx, record)
				},
			})
		}
		if env.Push != nil {
			msg := *env.Push
			tasks = append(tasks, task{
				channel: domain.ChannelPush,
				userID:  env.UserID,
				run: func(ctx context.Context) domain.DispatchResult {
					return o.submitter.SubmitPush(ctx, msg)
				},
			})
		}
		if env.Mail != nil {
			msg := *env.Mail
			tasks = append(tasks, task{
				channel: domain.ChannelEmail,
				userID:  env.UserID,
				run: func(ctx context.Context) domain.DispatchResult {
					return o.submitter.SubmitMail(ctx, msg)
				},
			})
		}
		if env.SMS != nil {
			msg := *env.SMS
			tasks = append(tasks, task{
				channel: domain.ChannelSMS,
				userID:  env.UserID,
				run: func(ctx context.Context) domain.DispatchResult {
					return o.submitter.SubmitSMS(ctx, msg)
				},
			})
		}
	}
	return tasks
}

func (o *Orchestrator) execute(ctx context.Context, eventID string, t task) domain.DispatchResult {
	// 站内信不受渠道偏好控制
	if t.channel.IsExternal() && !o.gate.Allow(ctx, t.userID, t.channel) {
		return domain.DispatchResult{Channel: t.channel, UserID: t.userID, Status: domain.DispatchStatusSuppressed}
	}
	if o.duplicated(ctx, eventID, t) {
		return domain.DispatchResult{
			Channel: t.channel,
			UserID:  t.userID,
			Status:  domain.DispatchStatusSkipped,
			Err:     errs.ErrDuplicateEvent,
		}
	}
	return t.run(ctx)
}

// duplicated 去重服务出错时照常投递
func (o *Orchestrator) duplicated(ctx context.Context, eventID string, t task) bool {
	if o.guard == nil || eventID == "" {
		return false
	}
	key := IdempotencyKey(eventID, t.channel, t.userID)
	exists, err := o.guard.Exists(ctx, key)
	if err != nil {
		o.logger.Warn("检查事件是否重复失败",
			elog.String("eventID", eventID),
			elog.String("channel", t.channel.String()),
			elog.FieldErr(err))
		return false
	}
	if exists {
		o.logger.Info("重复的事件，跳过",
			elog.String("eventID", eventID),
			elog.String("channel", t.channel.String()),
			elog.String("userID", t.userID))
	}
	return exists
}

func (o *Orchestrator) createRecord(ctx context.Context, record domain.NotificationRecord) domain.DispatchResult {
	res := domain.DispatchResult{Channel: domain.ChannelInApp, UserID: record.UserID}
	created, err := o.notifications.Create(ctx, record)
	if err != nil {
		o.logger.Error("创建站内信失败",
			elog.String("userID", record.UserID),
			elog.String("type", string(record.Type())),
			elog.FieldErr(err))
		res.Status, res.Err = domain.DispatchStatusFailed, fmt.Errorf("%w: %w", errs.ErrCreateNotificationFailed, err)
		return res
	}
	o.logger.Info("创建站内信成功",
		elog.String("userID", record.UserID),
		elog.String("id", created.ID))
	res.Status, res.SuccessCount = domain.DispatchStatusSent, 1
	return res
}

// IdempotencyKey sha256(eventID|channel|recipient)
func IdempotencyKey(eventID string, ch domain.Channel, userID string) string {
	sum := sha256.Sum256([]byte(eventID + "|" + ch.String() + "|" + userID))
	return hex.EncodeToString(sum[:])
}
