package domain

import (
	"fmt"

	"gitee.com/flycash/ride-notification/internal/errs"
)

// RideRatingEvent 行程结束后提醒双方评价
type RideRatingEvent struct {
	EventID      string `json:"-"`
	RideID       string `json:"ride_id"`
	UserID       string `json:"user_id"`
	DriverUserID string `json:"driver_user_id"`
}

func (e RideRatingEvent) Validate() error {
	if e.RideID == "" {
		return fmt.Errorf("%w: ride_id 不能为空", errs.ErrInvalidParameter)
	}
	if e.UserID == "" {
		return fmt.Errorf("%w: user_id 不能为空", errs.ErrInvalidParameter)
	}
	if e.DriverUserID == "" {
		return fmt.Errorf("%w: driver_user_id 不能为空", errs.ErrInvalidParameter)
	}
	return nil
}

// Ride 行程，附带乘客与司机的用户信息
type Ride struct {
	ID           string
	UserID       string
	DriverUserID string
	Rider        User
	Driver       User
}

// BoardingPass 乘车卡快照
type BoardingPass struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	PlanName   string `json:"plan_name"`
	Code       string `json:"code"`
	Status     string `json:"status"`
	ValidFrom  Date   `json:"valid_from"`
	ValidUntil Date   `json:"valid_until"`
}

// BoardingPassEvent 乘车卡事件，到期提醒和新卡发放共用
type BoardingPassEvent struct {
	EventID      string       `json:"-"`
	BoardingPass BoardingPass `json:"boarding_pass"`
}

func (e BoardingPassEvent) Validate() error {
	if e.BoardingPass.ID == "" {
		return fmt.Errorf("%w: boarding_pass.id 不能为空", errs.ErrInvalidParameter)
	}
	if e.BoardingPass.UserID == "" {
		return fmt.Errorf("%w: boarding_pass.user_id 不能为空", errs.ErrInvalidParameter)
	}
	return nil
}

// Envelope 一次扇出中某个接收人的全部消息
// Record 为站内信，不受偏好控制；其余为外部渠道，为 nil 表示不投递
type Envelope struct {
	UserID string
	Record *NotificationRecord
	Push   *PushMessage
	Mail   *MailMessage
	SMS    *SMSMessage
}
