package domain

import "strings"

// User 用户，由外部系统创建，这里只读
type User struct {
	ID          string
	FullName    string
	Email       string
	CountryCode string
	Mobile      string
}

// PhoneNumber 返回 E.164 格式的手机号，没有手机号时返回空串
func (u User) PhoneNumber() string {
	mobile := strings.TrimSpace(u.Mobile)
	if mobile == "" {
		return ""
	}
	if strings.HasPrefix(mobile, "+") {
		return mobile
	}
	cc := strings.TrimPrefix(strings.TrimSpace(u.CountryCode), "+")
	if cc == "" {
		return mobile
	}
	return "+" + cc + mobile
}

// FirstName 用于推送文案
func (u User) FirstName() string {
	name := strings.TrimSpace(u.FullName)
	if idx := strings.IndexByte(name, ' '); idx > 0 {
		return name[:idx]
	}
	return name
}

// PushRegistration 设备推送注册信息，一个用户每台设备一条
type PushRegistration struct {
	ID       string
	Token    string
	Platform Platform
	Provider string
	DeviceID string
}
