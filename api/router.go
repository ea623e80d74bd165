package api

import (
	"github.com/SlpAus/turntable-backend/internal/album"
	"github.com/SlpAus/turntable-backend/internal/feed"
	"github.com/SlpAus/turntable-backend/internal/follow"
	"github.com/SlpAus/turntable-backend/internal/rating"
	"github.com/SlpAus/turntable-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	// 动态接口，请求体中显式携带userId
	router.POST("/feed", feed.GetFeedHandler)

	api := router.Group("/api")
	{
		// 账号相关的路由
		api.POST("/register", user.Register)
		api.POST("/login", user.Login)
		api.GET("/loginStatus", user.LoadSessionMiddleware(), user.LoginStatus)
		api.POST("/logout", user.Logout)
		api.POST("/searchUser", user.SearchUser)

		// 评分相关的路由
		api.POST("/log", rating.SubmitRating)
		api.POST("/userRatings", rating.GetUserRatings)

		// 关注关系相关的路由
		api.POST("/follow", follow.SubmitFollow)
		api.POST("/unfollow", follow.SubmitUnfollow)
		api.POST("/followCount", follow.GetFollowData)

		// 专辑搜索
		api.POST("/searchAlbum", album.SearchAlbum)
	}
}
