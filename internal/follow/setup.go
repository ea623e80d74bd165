package follow

import (
	"fmt"

	"github.com/SlpAus/turntable-backend/internal/platform/database"
)

// MigrateDB 负责自动迁移follow模块的数据库表结构
func MigrateDB() error {
	if err := database.DB.AutoMigrate(&Follow{}); err != nil {
		return fmt.Errorf("无法迁移follows表: %w", err)
	}
	fmt.Println("Follow数据库表迁移成功。")
	return nil
}
