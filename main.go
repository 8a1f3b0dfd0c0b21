package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"matchday-service/config"
	"matchday-service/database"
	"matchday-service/pkg/common"
	"matchday-service/pkg/formation"
	"matchday-service/services"
	"matchday-service/web"
)

func main() {
	log.Println("Starting Matchday Service...")

	// 加载配置
	cfg := config.Load()

	// 连接数据库
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 运行数据库迁移
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database connected and migrated")

	// 阵型目录: 启动时构建一次，只读共享
	catalog := formation.NewCatalog()

	// 事件外发 broker: 配置了 AMQP 用 AMQP，否则用内存实现
	var broker services.MessageBroker
	if cfg.AMQPURL != "" {
		amqpBroker, err := services.NewAMQPBroker(cfg.AMQPURL, cfg.EventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to AMQP: %v", err)
		}
		broker = amqpBroker
		log.Println("AMQP broker connected")
	} else {
		broker = services.NewInMemoryBroker()
		log.Println("AMQP_URL not set, using in-memory broker")
	}
	defer broker.Close()

	// 球队管理服务客户端 (名册提示性校验)
	teamsClient := services.NewTeamsClient(cfg.TeamsAPIBaseURL)

	// 比赛注册表
	store := services.NewMatchStore(db)
	registry := services.NewMatchRegistry(cfg, catalog, store, broker, teamsClient, common.NewLogger("Registry"))

	// 恢复未完赛的比赛
	if err := registry.LoadOpen(); err != nil {
		log.Fatalf("Failed to restore open matches: %v", err)
	}

	// WebSocket Hub
	wsHub := web.NewHub()
	go wsHub.Run()
	registry.SetBroadcaster(wsHub)

	// 启动Web服务器
	server := web.NewServer(cfg, registry, catalog, wsHub)
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Web server error: %v", err)
		}
	}()

	log.Printf("Web server started on port %s", cfg.Port)
	log.Println("Service is running. Press Ctrl+C to stop.")

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down service...")

	// 清理资源: 停掉所有比赛时钟，再关 HTTP
	registry.Shutdown()
	server.Stop()

	log.Println("Service stopped")
}
