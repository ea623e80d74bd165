package user

import (
	"errors"
	"fmt"

	"github.com/SlpAus/turntable-backend/internal/platform/database"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost 是bcrypt哈希的计算成本，10是bcrypt的默认推荐值。
const bcryptCost = 10

// ErrUsernameTaken 表示注册时用户名已被占用。
var ErrUsernameTaken = errors.New("用户名已被占用")

// ErrInvalidCredentials 表示用户名或密码不匹配。
// 为避免用户枚举，不区分“用户不存在”和“密码错误”两种情况。
var ErrInvalidCredentials = errors.New("用户名或密码不正确")

// RegisterUser 创建一个新用户，密码经过bcrypt哈希后入库。
func RegisterUser(username, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("无法哈希密码: %w", err)
	}

	var existing User
	err = database.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查询用户名时数据库出错: %w", err)
	}

	newUser := User{Username: username, Password: string(hash)}
	if err := database.DB.Create(&newUser).Error; err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}
	return &newUser, nil
}

// AuthenticateUser 校验用户名和密码，成功时返回用户记录。
func AuthenticateUser(username, password string) (*User, error) {
	var u User
	err := database.DB.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("查询用户时数据库出错: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// GetUserByID 根据主键查找用户，不存在时返回 (nil, nil)。
func GetUserByID(id uint) (*User, error) {
	var u User
	err := database.DB.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询用户时数据库出错: %w", err)
	}
	return &u, nil
}

// GetUserByUsername 根据用户名查找用户，不存在时返回 (nil, nil)。
func GetUserByUsername(username string) (*User, error) {
	var u User
	err := database.DB.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询用户时数据库出错: %w", err)
	}
	return &u, nil
}
