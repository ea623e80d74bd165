package feed

import (
	"fmt"
	"time"

	"github.com/SlpAus/turntable-backend/internal/follow"
	"github.com/SlpAus/turntable-backend/internal/platform/database"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// feedColumns 是两个选择器共用的查询列。
const feedColumns = "ratings.id, ratings.user_id, users.username, ratings.album_id, " +
	"albums.album_name, albums.artist_name, albums.release_year, albums.record_type, albums.record_image, " +
	"ratings.rating, ratings.created_at"

// baseQuery 构造评分连带作者与专辑信息的基础查询。
// 两个选择器只在作者集合的谓词上不同。
func baseQuery(db *gorm.DB) *gorm.DB {
	return db.Table("ratings").
		Select(feedColumns).
		Joins("JOIN users ON users.id = ratings.user_id").
		Joins("JOIN albums ON albums.id = ratings.album_id")
}

// fetchFollowedRows 是关注内容选择器：
// 返回“请求者关注的用户”发表的全部评分，按评分ID降序。
// 改分是就地更新，ID不变，所以重新评分不会把行顶回最前面。
// 请求者自己的评分被显式排除，尽管自关注本身就是被禁止的。
func fetchFollowedRows(db *gorm.DB, userID uint) ([]feedRow, error) {
	var rows []feedRow
	err := baseQuery(db).
		Where("ratings.user_id IN (?)", follow.FolloweeSubquery(db, userID)).
		Where("ratings.user_id <> ?", userID).
		Order("ratings.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("查询关注动态失败: %w", err)
	}
	for i := range rows {
		rows[i].priority = PriorityFollowed
	}
	return rows, nil
}

// fetchDiscoveryRows 是发现内容选择器：
// 返回“既不是请求者也不被请求者关注”的用户发表的全部评分。
// 先按评分ID降序取出稳定基序，再由调用方用当日种子洗牌。
// NOT IN子查询对空关注集合返回全部候选行，不需要对零关注做特判。
func fetchDiscoveryRows(db *gorm.DB, userID uint) ([]feedRow, error) {
	var rows []feedRow
	err := baseQuery(db).
		Where("ratings.user_id NOT IN (?)", follow.FolloweeSubquery(db, userID)).
		Where("ratings.user_id <> ?", userID).
		Order("ratings.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("查询发现内容失败: %w", err)
	}
	for i := range rows {
		rows[i].priority = PriorityDiscovery
	}
	return rows, nil
}

// GetFeed 为一个用户组装一页动态。
// 两个选择器的查询相互独立，并发执行；任意一个失败则整个请求失败，
// 绝不返回缺了一半内容的页面。
//
// 一致性模型：本函数是纯读路径，不加锁也不在事务中运行。
// 两次翻页之间发生的写入（新评分、新关注）可能让totalPosts变化，
// 这是偏移分页在持续变化的数据集上已知的弱一致性取舍。
func GetFeed(userID uint, page, limit int) (*FeedPage, error) {
	return getFeedAt(database.DB, userID, page, limit, time.Now())
}

// getFeedAt 是GetFeed的实现，显式接收数据库句柄和当前时间以便测试。
func getFeedAt(db *gorm.DB, userID uint, page, limit int, now time.Time) (*FeedPage, error) {
	var followed, discovery []feedRow

	var g errgroup.Group
	g.Go(func() error {
		rows, err := fetchFollowedRows(db, userID)
		if err != nil {
			return err
		}
		followed = rows
		return nil
	})
	g.Go(func() error {
		rows, err := fetchDiscoveryRows(db, userID)
		if err != nil {
			return err
		}
		discovery = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	shuffleDiscovery(discovery, discoverySeed(userID, now))
	ordered := orderFeed(followed, discovery)

	total := len(ordered)
	start, end, hasMore := pageBounds(total, page, limit)

	posts := make([]FeedEntry, 0, end-start)
	for _, row := range ordered[start:end] {
		posts = append(posts, FeedEntry{
			ID:          row.ID,
			UserID:      row.UserID,
			Username:    row.Username,
			AlbumID:     row.AlbumID,
			AlbumName:   row.AlbumName,
			ArtistName:  row.ArtistName,
			ReleaseYear: row.ReleaseYear,
			RecordType:  row.RecordType,
			RecordImage: row.RecordImage,
			Rating:      row.Rating,
			CreatedAt:   row.CreatedAt,
			IsFollowing: row.priority == PriorityFollowed,
		})
	}

	return &FeedPage{
		Posts:      posts,
		HasMore:    hasMore,
		Page:       page,
		TotalPosts: total,
	}, nil
}
