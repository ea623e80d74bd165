package user

import (
	"github.com/gin-gonic/gin"
)

const (
	// CookieName 是承载会话的Cookie名称。
	CookieName = "session-id"

	// UserIDKey 是会话解析成功后，用户ID在Gin上下文中的键。
	UserIDKey = "userID"
)

// LoadSessionMiddleware 尝试解析请求中的会话Cookie，并把用户ID放入Gin上下文。
// 未登录的请求正常放行，处理器通过 CurrentUserID 判断是否有身份。
func LoadSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieValue, err := c.Cookie(CookieName)
		if err == nil {
			if userID, ok, err := ResolveSession(cookieValue); err == nil && ok {
				c.Set(UserIDKey, userID)
			}
		}
		c.Next()
	}
}

// CurrentUserID 从Gin上下文中取出已解析的用户ID。
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
