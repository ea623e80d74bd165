package feed

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// defaultLimit 是未指定limit时的每页条数
	defaultLimit = 10
	// maxLimit 是服务端强制的每页条数上限，防止单次请求拖垮数据库
	maxLimit = 100
)

// FeedRequestBody 定义了动态请求的JSON结构。
// Page和Limit用指针区分“未提供”和“显式传0”。
type FeedRequestBody struct {
	UserID uint `json:"userId"`
	Page   *int `json:"page"`
	Limit  *int `json:"limit"`
}

// GetFeedHandler 处理动态分页请求
func GetFeedHandler(c *gin.Context) {
	var body FeedRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	if body.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	page := 0
	if body.Page != nil {
		page = *body.Page
	}
	if page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must not be negative"})
		return
	}

	limit := defaultLimit
	if body.Limit != nil {
		limit = *body.Limit
	}
	if limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be positive"})
		return
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	result, err := GetFeed(body.UserID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
