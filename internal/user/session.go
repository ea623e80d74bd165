package user

import (
	"fmt"
	"strconv"
	"time"

	"github.com/SlpAus/turntable-backend/internal/platform/database"
	"github.com/SlpAus/turntable-backend/pkg/token"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// --- Redis 键名常量 ---

const (
	// SessionKeyPrefix 是登录会话在Redis中的键前缀。
	// Key: "session:<会话UUID>"
	// Value: 用户ID的十进制字符串
	// 过期时间由配置中的 session.ttlHours 决定。
	SessionKeyPrefix = "session:"
)

// CreateSession 为一个已通过认证的用户建立新的登录会话。
// 它生成UUID v7作为会话ID写入Redis，并返回带HMAC签名的Cookie值。
func CreateSession(userID uint, ttl time.Duration) (string, error) {
	sessionUUID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("无法生成会话UUID: %w", err)
	}
	sessionID := sessionUUID.String()

	key := SessionKeyPrefix + sessionID
	if err := database.RDB.Set(database.Ctx, key, strconv.FormatUint(uint64(userID), 10), ttl).Err(); err != nil {
		return "", fmt.Errorf("无法写入会话到Redis: %w", err)
	}

	return token.SignSessionID(sessionID), nil
}

// ResolveSession 校验Cookie值并从Redis中查出对应的用户ID。
// 签名无效、会话不存在或已过期时返回 (0, false, nil)。
func ResolveSession(cookieValue string) (uint, bool, error) {
	sessionID, ok := token.VerifySessionCookie(cookieValue)
	if !ok {
		return 0, false, nil
	}

	value, err := database.RDB.Get(database.Ctx, SessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("查询会话时Redis出错: %w", err)
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		// 会话内容损坏，按无效会话处理
		return 0, false, nil
	}
	return uint(userID), true, nil
}

// DeleteSession 删除一个会话，使对应的Cookie立即失效。
// 签名无效的Cookie直接忽略。
func DeleteSession(cookieValue string) error {
	sessionID, ok := token.VerifySessionCookie(cookieValue)
	if !ok {
		return nil
	}
	return database.RDB.Del(database.Ctx, SessionKeyPrefix+sessionID).Err()
}
