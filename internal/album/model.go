package album

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Album 定义了专辑在主数据库中的持久化模型。
// 专辑没有外部权威ID，由五元组 (专辑名, 艺术家, 发行年份, 类型, 封面) 唯一确定，
// 语义相同的提交必须复用已有的行。
type Album struct {
	ID uint `gorm:"primarykey"`

	AlbumName   string `gorm:"not null;uniqueIndex:idx_albums_identity"`
	ArtistName  string `gorm:"not null;uniqueIndex:idx_albums_identity"`
	ReleaseYear string `gorm:"uniqueIndex:idx_albums_identity"`
	RecordType  string `gorm:"uniqueIndex:idx_albums_identity"`
	RecordImage string `gorm:"uniqueIndex:idx_albums_identity"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FindOrCreate 按五元组查找专辑，不存在时插入新行。
// 两个并发的相同提交依赖唯一索引兜底，冲突时重查一次已有的行。
func FindOrCreate(db *gorm.DB, candidate Album) (*Album, error) {
	lookup := func() (*Album, error) {
		var existing Album
		err := db.Where(
			"album_name = ? AND artist_name = ? AND release_year = ? AND record_type = ? AND record_image = ?",
			candidate.AlbumName, candidate.ArtistName, candidate.ReleaseYear, candidate.RecordType, candidate.RecordImage,
		).First(&existing).Error
		if err != nil {
			return nil, err
		}
		return &existing, nil
	}

	existing, err := lookup()
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查询专辑时数据库出错: %w", err)
	}

	if err := db.Create(&candidate).Error; err != nil {
		// 可能与并发插入撞上了唯一索引，重试一次查询
		if existing, lookupErr := lookup(); lookupErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("插入专辑失败: %w", err)
	}
	return &candidate, nil
}
