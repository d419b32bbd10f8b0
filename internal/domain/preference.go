package domain

// PreferenceBag 用户通知偏好参数，按 user_id 存储的键值对
// nil 表示用户没有偏好记录
type PreferenceBag map[string]any

// Allows 判断渠道是否允许投递
// 只有显式的 false 才会拦截，缺失、null 或其他任何值都视为允许
func (b PreferenceBag) Allows(ch Channel) bool {
	if b == nil {
		return true
	}
	val, ok := b[ch.PreferenceKey()]
	if !ok {
		return true
	}
	enabled, isBool := val.(bool)
	return !isBool || enabled
}
