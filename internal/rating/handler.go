package rating

import (
	"errors"
	"net/http"

	"github.com/SlpAus/turntable-backend/internal/album"
	"github.com/SlpAus/turntable-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// --- API请求模型 ---

// SelectedAlbumBody 是前端从搜索结果中选中的专辑，
// 字段名与搜索接口返回的JSON一致。
type SelectedAlbumBody struct {
	AlbumName   string `json:"album_name" binding:"required"`
	ArtistName  string `json:"artist_name" binding:"required"`
	ReleaseDate string `json:"release_date"`
	RecordType  string `json:"record_type"`
	ImageURL    string `json:"image_url"`
}

type LogRatingRequestBody struct {
	Username      string             `json:"username" binding:"required"`
	SelectedAlbum *SelectedAlbumBody `json:"selectedAlbum" binding:"required"`
	Rating        *float64           `json:"rating" binding:"required"`
}

type UserRatingsRequestBody struct {
	Username string `json:"username" binding:"required"`
}

// --- 控制器函数 ---

// SubmitRating 记录（或就地更新）一次专辑评分
func SubmitRating(c *gin.Context) {
	var body LogRatingRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required data"})
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

	candidate := album.Album{
		AlbumName:   body.SelectedAlbum.AlbumName,
		ArtistName:  body.SelectedAlbum.ArtistName,
		ReleaseYear: body.SelectedAlbum.ReleaseDate,
		RecordType:  body.SelectedAlbum.RecordType,
		RecordImage: body.SelectedAlbum.ImageURL,
	}

	if _, err := LogRating(u.ID, candidate, *body.Rating); err != nil {
		if errors.Is(err, ErrRatingOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 0 and 10"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating logged successfully"})
}

// GetUserRatings 返回一个用户的全部评分记录
func GetUserRatings(c *gin.Context) {
	var body UserRatingsRequestBody
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

	rows, err := RatingsForUser(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch joined data"})
		return
	}
	if rows == nil {
		rows = []UserRatingRow{}
	}
	c.JSON(http.StatusOK, rows)
}
