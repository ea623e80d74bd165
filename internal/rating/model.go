package rating

import (
	"time"
)

// Rating 定义了一条专辑评分记录。
// 每个 (user_id, album_id) 组合至多一行：重复提交就地更新rating字段，
// 行的ID和CreatedAt保持不变，因此评分在时间线上的位置不会因为改分而前移。
type Rating struct {
	// ID 是单调递增的代理主键，同时充当评分的创建顺序
	ID uint `gorm:"primarykey"`

	UserID  uint `gorm:"not null;index;uniqueIndex:idx_ratings_user_album"`
	AlbumID uint `gorm:"not null;index;uniqueIndex:idx_ratings_user_album"`

	// Rating 是0到10之间保留一位小数的评分值
	Rating float64 `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
