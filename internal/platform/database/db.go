package database

import (
	"fmt"
	"log"
	"os"

	"github.com/SlpAus/turntable-backend/internal/platform/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 是一个全局的GORM数据库实例，供项目其他部分使用
var DB *gorm.DB

// InitDB 根据配置初始化主数据库连接
// driver为"postgres"时连接PostgreSQL，否则使用本地SQLite
func InitDB(cfg config.DatabaseConfig) {
	var err error

	// GORM日志配置
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 0,
			LogLevel:      logger.Silent, // 在生产环境中可以设为Silent
			Colorful:      true,
		},
	)

	switch cfg.Driver {
	case "postgres":
		DB, err = gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{
			Logger: newLogger,
		})
	default:
		DB, err = gorm.Open(sqlite.Open(cfg.Sqlite.Path), &gorm.Config{
			Logger: newLogger,
		})
	}

	if err != nil {
		fmt.Println("连接数据库失败", err)
		panic(err)
	}

	fmt.Println("数据库连接成功！")
}
