package feed

import (
	"time"
)

// Priority 是动态的优先级类别，决定粗排顺序。
type Priority int

const (
	// PriorityFollowed 表示来自关注用户的评分，永远排在发现内容之前
	PriorityFollowed Priority = 1
	// PriorityDiscovery 表示来自未关注用户的发现内容
	PriorityDiscovery Priority = 2
)

// feedRow 是选择器从数据库中扫描出的一行评分，
// 连带作者和专辑的展示字段。Priority和seq在查询后由Go侧标注。
type feedRow struct {
	ID          uint      `gorm:"column:id"`
	UserID      uint      `gorm:"column:user_id"`
	Username    string    `gorm:"column:username"`
	AlbumID     uint      `gorm:"column:album_id"`
	AlbumName   string    `gorm:"column:album_name"`
	ArtistName  string    `gorm:"column:artist_name"`
	ReleaseYear string    `gorm:"column:release_year"`
	RecordType  string    `gorm:"column:record_type"`
	RecordImage string    `gorm:"column:record_image"`
	Rating      float64   `gorm:"column:rating"`
	CreatedAt   time.Time `gorm:"column:created_at"`

	// priority 是本行的优先级类别
	priority Priority
	// seq 是发现内容在洗牌后的序号，关注内容不使用
	seq int
}

// FeedEntry 是动态接口返回的单条内容。
// 每次请求都从两张表现场构造，从不缓存，构造后不再修改。
type FeedEntry struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Username    string    `json:"username"`
	AlbumID     uint      `json:"album_id"`
	AlbumName   string    `json:"album_name"`
	ArtistName  string    `json:"artist_name"`
	ReleaseYear string    `json:"release_year"`
	RecordType  string    `json:"record_type"`
	RecordImage string    `json:"record_image"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	IsFollowing bool      `json:"is_following"`
}

// FeedPage 是一次分页请求的完整结果。
type FeedPage struct {
	Posts      []FeedEntry `json:"posts"`
	HasMore    bool        `json:"hasMore"`
	Page       int         `json:"page"`
	TotalPosts int         `json:"totalPosts"`
}
