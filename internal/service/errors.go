package service

import "errors"

var (
	// ErrInvalidCredentials 用户名或密码错误，对外不区分是哪个错
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionInvalid 会话不存在、过期或已注销
	ErrSessionInvalid = errors.New("invalid session")
)

// ValidationError 请求字段校验失败，边界层映射为 400
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(msg string) error { return &ValidationError{Message: msg} }
