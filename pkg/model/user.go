package model

import "strings"

const (
	// RoleAdmin 管理员
	RoleAdmin = "admin"
	// RoleBlogger 博主
	RoleBlogger = "blogger"
)

const (
	// UserStatusActive 正常
	UserStatusActive = "active"
	// UserStatusDeactivated 已停用
	UserStatusDeactivated = "deactivated"
)

// User 用户（角色、认证由外部服务管理，这里仅保留标注结果所需的字段）
type User struct {
	BaseModel
	ID        int64  `json:"id" gorm:"primaryKey"`
	FirstName string `json:"firstname" gorm:"column:firstname;type:varchar(64);not null"`
	LastName  string `json:"lastname" gorm:"column:lastname;type:varchar(64);not null"`
	Email     string `json:"email" gorm:"type:varchar(128);uniqueIndex;not null"`
	Role      string `json:"role" gorm:"type:varchar(16);not null;default:blogger"`
	Status    string `json:"status" gorm:"type:varchar(16);not null;default:active"`
}

// DisplayName 展示名称：姓名为空时回退到邮箱，都为空时回退到 Unknown
func (u *User) DisplayName() string {
	if u == nil {
		return "Unknown"
	}
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}
	if u.Email != "" {
		return u.Email
	}
	return "Unknown"
}
