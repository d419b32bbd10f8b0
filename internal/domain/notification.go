package domain

import "time"

// NotificationType 站内信业务类型，存放在 content.data.notification_type
type NotificationType string

const (
	NotificationTypeRideRating          NotificationType = "RIDE_RATING"           // 行程评价提醒
	NotificationTypeBoardingPassExpired NotificationType = "BOARDING_PASS_EXPIRED" // 乘车卡到期
	NotificationTypeNewBoardingPass     NotificationType = "NEW_BOARDING_PASS"     // 新乘车卡
)

// DataKeyNotificationType 推送和站内信 data 中类型字段的键
const DataKeyNotificationType = "notification_type"

// BadgeNotificationTypes 参与角标计数的站内信类型
var BadgeNotificationTypes = []NotificationType{
	NotificationTypeBoardingPassExpired,
	NotificationTypeNewBoardingPass,
}

// Priority 站内信优先级
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
)

// NotificationContent 站内信内容
type NotificationContent struct {
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// NotificationRecord 站内信记录，只追加不修改
type NotificationRecord struct {
	ID           string
	Content      NotificationContent
	Priority     Priority
	SenderUserID *string // nil 表示系统发送
	Target       Platform
	UserID       string
	CreatedAt    time.Time
}

// Type 取出 content.data 中的业务类型
func (n NotificationRecord) Type() NotificationType {
	if n.Content.Data == nil {
		return ""
	}
	s, _ := n.Content.Data[DataKeyNotificationType].(string)
	return NotificationType(s)
}
