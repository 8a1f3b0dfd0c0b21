package common

import "errors"

var (
	// ErrValidation 输入校验失败 (非法分钟数、未知事件类型等)
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition 当前阶段不允许该阶段转换
	ErrInvalidTransition = errors.New("invalid phase transition")

	// ErrMatchClosed 比赛已结束，拒绝任何变更
	ErrMatchClosed = errors.New("match closed")

	// ErrDuplicatePlayer 球员已占用其他位置或替补席
	ErrDuplicatePlayer = errors.New("duplicate player")

	// ErrUnknownSlot 阵型中不存在该位置
	ErrUnknownSlot = errors.New("unknown slot")

	// ErrBenchFull 替补席已满
	ErrBenchFull = errors.New("bench full")

	// ErrUnknownFormat 未知的比赛赛制
	ErrUnknownFormat = errors.New("unknown match format")

	// ErrNotFound 未找到错误
	ErrNotFound = errors.New("not found")
)

// AppError 应用错误，携带错误码供 web 层映射 HTTP 状态
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError 创建应用错误
func NewAppError(code string, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
