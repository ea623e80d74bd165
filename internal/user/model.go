package user

import (
	"time"
)

// User 定义了用户在主数据库中的持久化模型。
type User struct {
	// ID 是用户的自增主键，也是follows和ratings表中引用用户的外键。
	ID uint `gorm:"primarykey"`

	// Username 是用户登录名，全局唯一。
	Username string `gorm:"uniqueIndex;not null"`

	// Password 存储bcrypt哈希后的密码，绝不存储明文。
	Password string `gorm:"not null"`

	// 由GORM自动管理
	CreatedAt time.Time
	UpdatedAt time.Time
}
