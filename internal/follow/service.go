package follow

import (
	"errors"
	"fmt"

	"github.com/SlpAus/turntable-backend/internal/platform/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSelfFollow 表示用户试图关注自己。
var ErrSelfFollow = errors.New("不能关注自己")

// CreateFollow 建立一条关注边。重复关注是幂等的，不会产生第二条边。
func CreateFollow(followerID, followeeID uint) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}

	edge := Follow{FollowerID: followerID, FolloweeID: followeeID}
	// 撞上唯一索引时什么都不做，保持幂等
	err := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
	if err != nil {
		return fmt.Errorf("创建关注关系失败: %w", err)
	}
	return nil
}

// RemoveFollow 删除一条关注边。边不存在时同样视为成功。
func RemoveFollow(followerID, followeeID uint) error {
	err := database.DB.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&Follow{}).Error
	if err != nil {
		return fmt.Errorf("删除关注关系失败: %w", err)
	}
	return nil
}

// FolloweeIDs 返回指定用户关注的全部用户ID。
// 没有任何关注时返回空切片，不是错误。
func FolloweeIDs(db *gorm.DB, userID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&Follow{}).Where("follower_id = ?", userID).Pluck("followee_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("查询关注列表失败: %w", err)
	}
	return ids, nil
}

// FolloweeSubquery 返回“userID关注的所有用户”的子查询，
// 供feed模块的选择器在SQL层组合谓词，避免空ID列表在IN子句中的退化行为。
func FolloweeSubquery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&Follow{}).Select("followee_id").Where("follower_id = ?", userID)
}

// IsFollowing 判断follower是否关注了followee。
func IsFollowing(followerID, followeeID uint) (bool, error) {
	var count int64
	err := database.DB.Model(&Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("查询关注关系失败: %w", err)
	}
	return count > 0, nil
}
