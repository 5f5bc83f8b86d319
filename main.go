// @title Workshop Hub 后端 API
// @version 1.0
// @description 工作坊管理平台的后端服务器：工作坊、作业、报名、提交与结业证书。

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"workshop_hub_backend/internal/app"
	"workshop_hub_backend/internal/config"
	"workshop_hub_backend/pkg/configwatcher"
	"workshop_hub_backend/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 配置热更新：JWT密钥等安全项不热替换，仅更新限流与CORS等非敏感配置
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		if updated, ok := newCfg.(*config.Config); ok {
			cfg.RateLimit = updated.RateLimit
			cfg.CORS = updated.CORS
			logger.Log.Info("configuration reloaded")
		}
	})

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("database migration completed, exiting")
		return
	}

	application.Run()
}
