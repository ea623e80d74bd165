package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// secretKey 是一个全局变量，用于存储服务器在启动时生成的32字节密钥。
// 密钥不持久化，服务重启后所有旧的会话Cookie都会失效，与Redis中会话的生命周期一致。
var secretKey []byte

// GenerateSecretKey 生成一个密码学安全的32字节随机密钥。
func GenerateSecretKey() {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	if err != nil {
		panic("无法生成安全的密钥: " + err.Error())
	}
	secretKey = key
	fmt.Println("HMAC密钥已成功生成。")
}

// SignSessionID 为一个会话ID生成带HMAC签名的Cookie值。
// 格式为 "<sessionID>.<base64签名>"，中间件可以在不访问Redis的情况下先过滤伪造值。
func SignSessionID(sessionID string) string {
	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(sessionID))
	signature := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	return sessionID + "." + signature
}

// VerifySessionCookie 校验一个Cookie值的签名，并返回其中携带的会话ID。
// 签名无效或格式错误时返回false。
func VerifySessionCookie(cookieValue string) (string, bool) {
	sessionID, signatureB64, found := strings.Cut(cookieValue, ".")
	if !found || sessionID == "" {
		return "", false
	}

	actualSignature, err := base64.RawURLEncoding.DecodeString(signatureB64)
	if err != nil {
		return "", false // 签名解码失败
	}

	// 重新计算预期的签名
	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(sessionID))
	expectedSignature := mac.Sum(nil)

	// 使用 hmac.Equal 进行安全的、时间恒定的比较，防止时序攻击
	if !hmac.Equal(expectedSignature, actualSignature) {
		return "", false
	}
	return sessionID, true
}
