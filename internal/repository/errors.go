package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound 按 id 查询不到记录
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate 唯一键冲突（如重复的用户名）
	ErrDuplicate = errors.New("duplicate record")
)

// translate 把 gorm 错误翻译成仓储层的哨兵错误
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
