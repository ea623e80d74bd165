package album

import (
	"fmt"

	"github.com/SlpAus/turntable-backend/internal/platform/database"
)

// MigrateDB 负责自动迁移album模块的数据库表结构
func MigrateDB() error {
	if err := database.DB.AutoMigrate(&Album{}); err != nil {
		return fmt.Errorf("无法迁移albums表: %w", err)
	}
	fmt.Println("Album数据库表迁移成功。")
	return nil
}
