package testutil

import (
	"path/filepath"
	"testing"

	"github.com/SlpAus/turntable-backend/internal/platform/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB 在临时目录中创建一个独立的SQLite数据库，迁移给定的模型，
// 并在测试期间把它挂到全局的 database.DB 上。
// 测试结束后临时文件随 t.TempDir 一起清理，全局句柄恢复原值。
func NewTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("无法打开测试数据库: %v", err)
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			t.Fatalf("无法迁移测试表结构: %v", err)
		}
	}

	previous := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = previous
	})

	return db
}
