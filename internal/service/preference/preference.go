package preference

import (
	"context"
	"fmt"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/errs"
	"gitee.com/flycash/ride-notification/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// Policy 查询偏好失败时的处理策略
type Policy string

const (
	PolicyFailOpen   Policy = "fail_open"   // 查询失败照常投递
	PolicyFailClosed Policy = "fail_closed" // 查询失败不投递
)

// Resolver 用户投递偏好查询，只读
//
//go:generate mockgen -source=./preference.go -destination=./mocks/preference.mock.go -package=preferencemocks Resolver
type Resolver interface {
	// Resolve 渠道是否允许投递，查询失败时返回 errs.ErrPreferenceLookup
	Resolve(ctx context.Context, userID string, ch domain.Channel) (bool, error)
}

type resolver struct {
	repo repository.PreferenceRepository
}

func NewResolver(repo repository.PreferenceRepository) Resolver {
	return &resolver{repo: repo}
}

func (r *resolver) Resolve(ctx context.Context, userID string, ch domain.Channel) (bool, error) {
	bag, err := r.repo.GetByUserID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errs.ErrPreferenceLookup, err)
	}
	return bag.Allows(ch), nil
}

// Gate 在 Resolver 之上套用统一的失败策略，所有渠道共用
type Gate struct {
	resolver Resolver
	policy   Policy
	logger   *elog.Component
}

func NewGate(resolver Resolver, policy Policy) *Gate {
	if policy != PolicyFailClosed {
		policy = PolicyFailOpen
	}
	return &Gate{
		resolver: resolver,
		policy:   policy,
		logger:   elog.DefaultLogger,
	}
}

// Allow 返回是否投递，查询失败时按策略决定
// userID 为空表示消息不属于任何用户，不做偏好检查
func (g *Gate) Allow(ctx context.Context, userID string, ch domain.Channel) bool {
	if userID == "" {
		return true
	}
	ok, err := g.resolver.Resolve(ctx, userID, ch)
	if err != nil {
		allowed := g.policy == PolicyFailOpen
		g.logger.Error("查询通知偏好失败",
			elog.String("userID", userID),
			elog.String("channel", ch.String()),
			elog.String("policy", string(g.policy)),
			elog.Any("allowed", allowed),
			elog.FieldErr(err))
		return allowed
	}
	if !ok {
		g.logger.Info("用户关闭了该渠道的通知",
			elog.String("userID", userID),
			elog.String("channel", ch.String()))
	}
	return ok
}

// Policy 当前使用的失败策略
func (g *Gate) Policy() Policy {
	return g.policy
}
