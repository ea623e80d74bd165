package rating

import (
	"fmt"

	"github.com/SlpAus/turntable-backend/internal/platform/database"
)

// MigrateDB 负责自动迁移rating模块的数据库表结构
func MigrateDB() error {
	if err := database.DB.AutoMigrate(&Rating{}); err != nil {
		return fmt.Errorf("无法迁移ratings表: %w", err)
	}
	fmt.Println("Rating数据库表迁移成功。")
	return nil
}
