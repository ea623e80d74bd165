package startup

import (
	"fmt"

	"github.com/SlpAus/turntable-backend/internal/album"
	"github.com/SlpAus/turntable-backend/internal/follow"
	"github.com/SlpAus/turntable-backend/internal/rating"
	"github.com/SlpAus/turntable-backend/internal/user"
)

// InitializeApplication 是应用首次启动时执行的总入口。
// 按外键依赖顺序迁移各模块的表结构；feed模块没有自己的表，
// 它只读取ratings和follows，因此不出现在这里。
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	if err := user.MigrateDB(); err != nil {
		return err
	}
	if err := album.MigrateDB(); err != nil {
		return err
	}
	if err := rating.MigrateDB(); err != nil {
		return err
	}
	if err := follow.MigrateDB(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}
