package user

import (
	"errors"
	"net/http"
	"time"

	"github.com/SlpAus/turntable-backend/internal/platform/config"
	"github.com/SlpAus/turntable-backend/internal/platform/database"
	"github.com/gin-gonic/gin"
)

// --- API请求模型 ---

type CredentialsRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SearchUserRequestBody struct {
	Query string `json:"query" binding:"required"`
}

// --- API响应模型 ---

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type RatedAlbumResponse struct {
	AlbumID     uint    `json:"album_id"`
	AlbumName   string  `json:"album_name"`
	ArtistName  string  `json:"artist_name"`
	ReleaseYear string  `json:"release_year"`
	RecordType  string  `json:"record_type"`
	RecordImage string  `json:"record_image"`
	Rating      float64 `json:"rating"`
}

type UserProfileResponse struct {
	Username     string               `json:"username"`
	Followers    []uint               `json:"followers"`
	Following    []uint               `json:"following"`
	RatingsCount int                  `json:"ratings_count"`
	Albums       []RatedAlbumResponse `json:"albums"`
}

// --- 控制器函数 ---

// Register 处理新用户注册
func Register(c *gin.Context) {
	var body CredentialsRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	if _, err := RegisterUser(body.Username, body.Password); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration successful"})
}

// Login 校验凭证并建立Redis会话，会话ID通过签名Cookie下发
func Login(c *gin.Context) {
	if !database.IsRedisHealthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
		return
	}

	var body CredentialsRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	u, err := AuthenticateUser(body.Username, body.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "username/password combination not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	ttl := time.Duration(config.Cfg.Session.TTLHours) * time.Hour
	cookieValue, err := CreateSession(u.ID, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	c.SetCookie(CookieName, cookieValue, int(ttl.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    UserResponse{ID: u.ID, Username: u.Username},
	})
}

// LoginStatus 根据会话Cookie报告当前登录状态
func LoginStatus(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false})
		return
	}

	u, err := GetUserByID(userID)
	if err != nil || u == nil {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"loggedIn": true,
		"user":     UserResponse{ID: u.ID, Username: u.Username},
	})
}

// Logout 删除Redis中的会话并清除Cookie
func Logout(c *gin.Context) {
	if cookieValue, err := c.Cookie(CookieName); err == nil {
		_ = DeleteSession(cookieValue)
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// SearchUser 按用户名精确查找用户，返回其完整的公开主页数据
func SearchUser(c *gin.Context) {
	var body SearchUserRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	u, err := GetUserByUsername(body.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// 用户的全部评分，按分数从高到低
	var albums []RatedAlbumResponse
	err = database.DB.Table("ratings").
		Select("albums.id AS album_id, albums.album_name, albums.artist_name, albums.release_year, albums.record_type, albums.record_image, ratings.rating").
		Joins("JOIN albums ON albums.id = ratings.album_id").
		Where("ratings.user_id = ?", u.ID).
		Order("ratings.rating DESC").
		Scan(&albums).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// 关注关系的两个方向
	var followers []uint
	if err := database.DB.Table("follows").Where("followee_id = ?", u.ID).Pluck("follower_id", &followers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	var following []uint
	if err := database.DB.Table("follows").Where("follower_id = ?", u.ID).Pluck("followee_id", &following).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if albums == nil {
		albums = []RatedAlbumResponse{}
	}
	if followers == nil {
		followers = []uint{}
	}
	if following == nil {
		following = []uint{}
	}

	c.JSON(http.StatusOK, UserProfileResponse{
		Username:     u.Username,
		Followers:    followers,
		Following:    following,
		RatingsCount: len(albums),
		Albums:       albums,
	})
}
