package model

import "time"

// User 后台账号（当前系统只有一个 admin）
type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"type:varchar(80);uniqueIndex:ux_user_username;not null"`
	PasswordHash string     `json:"-" gorm:"type:varchar(128);not null"`
	Online       bool       `json:"online" gorm:"not null;default:false"`
	LastSeen     *time.Time `json:"last_seen"`
}

func (User) TableName() string { return "users" }
