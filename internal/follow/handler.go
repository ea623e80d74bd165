package follow

import (
	"errors"
	"net/http"

	"github.com/SlpAus/turntable-backend/internal/platform/database"
	"github.com/SlpAus/turntable-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// --- API请求模型 ---

type FollowRequestBody struct {
	FollowerID uint `json:"followerId" binding:"required"`
	FolloweeID uint `json:"followeeId" binding:"required"`
}

type FollowCountRequestBody struct {
	Username string `json:"username" binding:"required"`
}

// --- API响应模型 ---

// RelationshipResponse 是关系列表中的一行，
// relationship_type 为 "following" 或 "follower"。
type RelationshipResponse struct {
	Username         string `json:"username"`
	RelationshipType string `json:"relationship_type"`
}

// --- 控制器函数 ---

// SubmitFollow 建立一条关注关系
func SubmitFollow(c *gin.Context) {
	var body FollowRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "followerId and followeeId are required"})
		return
	}

	if err := CreateFollow(body.FollowerID, body.FolloweeID); err != nil {
		if errors.Is(err, ErrSelfFollow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Followed successfully"})
}

// SubmitUnfollow 删除一条关注关系
func SubmitUnfollow(c *gin.Context) {
	var body FollowRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "followerId and followeeId are required"})
		return
	}

	if err := RemoveFollow(body.FollowerID, body.FolloweeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed successfully"})
}

// GetFollowData 返回一个用户的关注与粉丝列表（合并为一张关系表）
func GetFollowData(c *gin.Context) {
	var body FollowCountRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	u, err := user.GetUserByUsername(body.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// 正向：我关注的人
	var relationships []RelationshipResponse
	err = database.DB.Table("follows").
		Select("users.username AS username, 'following' AS relationship_type").
		Joins("JOIN users ON users.id = follows.followee_id").
		Where("follows.follower_id = ?", u.ID).
		Scan(&relationships).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch follow data"})
		return
	}

	// 反向：关注我的人
	var followers []RelationshipResponse
	err = database.DB.Table("follows").
		Select("users.username AS username, 'follower' AS relationship_type").
		Joins("JOIN users ON users.id = follows.follower_id").
		Where("follows.followee_id = ?", u.ID).
		Scan(&followers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch follow data"})
		return
	}

	relationships = append(relationships, followers...)
	if relationships == nil {
		relationships = []RelationshipResponse{}
	}
	c.JSON(http.StatusOK, relationships)
}
