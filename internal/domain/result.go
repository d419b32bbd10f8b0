package domain

// DispatchStatus 单个渠道的投递结果
type DispatchStatus string

const (
	DispatchStatusSent       DispatchStatus = "SENT"       // 已提交给下游
	DispatchStatusSuppressed DispatchStatus = "SUPPRESSED" // 用户偏好关闭
	DispatchStatusSkipped    DispatchStatus = "SKIPPED"    // 没有可投递的设备，或者重复事件
	DispatchStatusInvalid    DispatchStatus = "INVALID"    // 参数校验失败
	DispatchStatusFailed     DispatchStatus = "FAILED"     // 下游调用失败
)

// DispatchResult 一次投递的结果，渠道内部的错误都收敛在这里，不向上抛
type DispatchResult struct {
	Channel      Channel
	UserID       string
	Status       DispatchStatus
	SuccessCount int // 推送批量发送时成功的条数
	FailureCount int // 推送批量发送时失败的条数
	Err          error
}

// Failed 是否为需要关注的失败
func (r DispatchResult) Failed() bool {
	return r.Status == DispatchStatusFailed || r.Status == DispatchStatusInvalid
}
