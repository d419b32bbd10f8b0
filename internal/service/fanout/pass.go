package fanout

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

const passDateLayout = "January 2, 2006"

// PassConfig 乘车卡通知的邮件和短信发送方
type PassConfig struct {
	MailSender           string `yaml:"mailSender"`
	MailSource           string `yaml:"mailSource"`
	ExpiringTemplate     string `yaml:"expiringTemplate"`
	ConfigurationSetName string `yaml:"configurationSetName"`
	SMSSender            string `yaml:"smsSender"`
}

// PassService 乘车卡到期提醒与新卡发放通知
type PassService struct {
	users        repository.UserRepository
	orchestrator *Orchestrator
	cfg          PassConfig
	logger       *elog.Component
}

func NewPassService(users repository.UserRepository, orchestrator *Orchestrator, cfg PassConfig) *PassService {
	return &PassService{
		users:        users,
		orchestrator: orchestrator,
		cfg:          cfg,
		logger:       elog.DefaultLogger,
	}
}

// Expiring 站内信和推送一定发送，有邮箱时发邮件，有手机号时发短信
func (s *PassService) Expiring(ctx context.Context, evt domain.BoardingPassEvent) []domain.DispatchResult {
	if err := evt.Validate(); err != nil {
		s.logger.Warn("乘车卡事件缺少字段", elog.Any("event", evt), elog.FieldErr(err))
		return nil
	}
	pass := evt.BoardingPass
	user, err := s.users.GetByID(ctx, pass.UserID)
	if err != nil {
		s.logger.Error("查询用户失败", elog.String("userID", pass.UserID), elog.FieldErr(err))
		return nil
	}

	title := "Your boarding pass is expiring"
	body := fmt.Sprintf("Your %s pass expires %s. Renew it to keep riding.", planName(pass), expiresOn(pass.ValidUntil.Time))
	env := s.envelope(pass, domain.NotificationTypeBoardingPassExpired, title, body)

	if user.Email != "" {
		env.Mail = &domain.MailMessage{
			Sender:               s.cfg.MailSender,
			Source:               s.cfg.MailSource,
			Template:             s.cfg.ExpiringTemplate,
			ConfigurationSetName: s.cfg.ConfigurationSetName,
			ToAddresses:          []string{user.Email},
			TemplateData: map[string]any{
				"first_name":  user.FirstName(),
				"plan_name":   planName(pass),
				"valid_until": formatDate(pass.ValidUntil.Time),
			},
			UserID: user.ID,
		}
	}
	if phone := user.PhoneNumber(); phone != "" {
		env.SMS = &domain.SMSMessage{
			Sender:      s.cfg.SMSSender,
			Message:     body,
			PhoneNumber: phone,
			UserID:      user.ID,
		}
	}
	return s.orchestrator.FanOut(ctx, evt.EventID, []domain.Envelope{env})
}

// Issued 新卡只发站内信和推送
func (s *PassService) Issued(ctx context.Context, evt domain.BoardingPassEvent) []domain.DispatchResult {
	if err := evt.Validate(); err != nil {
		s.logger.Warn("乘车卡事件缺少字段", elog.Any("event", evt), elog.FieldErr(err))
		return nil
	}
	pass := evt.BoardingPass
	title := "Your new boarding pass is ready"
	body := fmt.Sprintf("Your %s pass is active until %s.", planName(pass), formatDate(pass.ValidUntil.Time))
	env := s.envelope(pass, domain.NotificationTypeNewBoardingPass, title, body)
	return s.orchestrator.FanOut(ctx, evt.EventID, []domain.Envelope{env})
}

func (s *PassService) envelope(pass domain.BoardingPass, typ domain.NotificationType, title, body string) domain.Envelope {
	data := map[string]any{
		domain.DataKeyNotificationType: string(typ),
		"boarding_pass_id":             pass.ID,
		"plan_name":                    pass.PlanName,
	}
	if !pass.ValidUntil.IsZero() {
		data["valid_until"] = pass.ValidUntil.UTC().Format(time.RFC3339)
	}
	return domain.Envelope{
		UserID: pass.UserID,
		Record: &domain.NotificationRecord{
			Content:  domain.NotificationContent{Title: title, Message: body, Data: data},
			Priority: domain.PriorityHigh,
			Target:   domain.PlatformRider,
			UserID:   pass.UserID,
		},
		Push: &domain.PushMessage{
			UserID:       pass.UserID,
			Platform:     domain.PlatformRider,
			Notification: domain.PushNotification{Title: title, Body: body},
			Data:         data,
		},
	}
}

func planName(pass domain.BoardingPass) string {
	if pass.PlanName == "" {
		return "boarding"
	}
	return pass.PlanName
}

// formatDate 没有日期时返回 soon
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "soon"
	}
	return t.UTC().Format(passDateLayout)
}

func expiresOn(t time.Time) string {
	if t.IsZero() {
		return "soon"
	}
	return "on " + t.UTC().Format(passDateLayout)
}
