package rating

import (
	"errors"
	"fmt"
	"math"

	"github.com/SlpAus/turntable-backend/internal/album"
	"github.com/SlpAus/turntable-backend/internal/platform/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrRatingOutOfRange 表示评分值不在0到10的区间内。
var ErrRatingOutOfRange = errors.New("评分必须在0到10之间")

// LogRating 为用户记录一次对专辑的评分。
// 专辑按五元组去重复用，评分通过ON CONFLICT就地更新，
// 保证同一 (用户, 专辑) 永远只有一行，且改分不改变行的ID。
func LogRating(userID uint, candidate album.Album, value float64) (*Rating, error) {
	if value < 0 || value > 10 {
		return nil, ErrRatingOutOfRange
	}
	// 评分保留一位小数
	value = math.Round(value*10) / 10

	var result *Rating
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		target, err := album.FindOrCreate(tx, candidate)
		if err != nil {
			return err
		}

		r := Rating{UserID: userID, AlbumID: target.ID, Rating: value}
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "album_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).Create(&r).Error
		if err != nil {
			return fmt.Errorf("写入评分失败: %w", err)
		}

		// 冲突路径下GORM不回填原有行的ID，统一重查一次拿到权威状态
		var stored Rating
		if err := tx.Where("user_id = ? AND album_id = ?", userID, target.ID).First(&stored).Error; err != nil {
			return fmt.Errorf("回读评分失败: %w", err)
		}
		result = &stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UserRatingRow 是一条带专辑信息的评分记录。
type UserRatingRow struct {
	ID          uint    `json:"id"`
	AlbumName   string  `json:"album_name"`
	ArtistName  string  `json:"artist_name"`
	ReleaseYear string  `json:"release_year"`
	RecordType  string  `json:"record_type"`
	RecordImage string  `json:"record_image"`
	UserRating  float64 `json:"user_rating"`
}

// RatingsForUser 返回一个用户的全部评分，连带专辑字段。
func RatingsForUser(userID uint) ([]UserRatingRow, error) {
	var rows []UserRatingRow
	err := database.DB.Table("ratings").
		Select("albums.id AS id, albums.album_name, albums.artist_name, albums.release_year, albums.record_type, albums.record_image, ratings.rating AS user_rating").
		Joins("JOIN albums ON albums.id = ratings.album_id").
		Where("ratings.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("查询用户评分失败: %w", err)
	}
	return rows, nil
}
