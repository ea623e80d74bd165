package follow

import (
	"time"
)

// Follow 定义了一条有向的关注边。
// (follower_id, followee_id) 全局唯一，关注关系只有存在与否，取消关注时整行删除。
type Follow struct {
	ID uint `gorm:"primarykey"`

	// FollowerID 是发起关注的用户
	FollowerID uint `gorm:"not null;index;uniqueIndex:idx_follows_edge"`

	// FolloweeID 是被关注的用户
	FolloweeID uint `gorm:"not null;index;uniqueIndex:idx_follows_edge"`

	CreatedAt time.Time
}
