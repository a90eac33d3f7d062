package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Katzuo/LevelEngine/config"
	"github.com/Katzuo/LevelEngine/internal/consumer"
	"github.com/Katzuo/LevelEngine/internal/gateway"
	"github.com/Katzuo/LevelEngine/internal/handlers"
	"github.com/Katzuo/LevelEngine/internal/models"
	"github.com/Katzuo/LevelEngine/internal/notify"
	"github.com/Katzuo/LevelEngine/internal/repositories"
	"github.com/Katzuo/LevelEngine/internal/routers"
	"github.com/Katzuo/LevelEngine/internal/services"
	"github.com/Katzuo/LevelEngine/internal/storage"
	"github.com/Katzuo/LevelEngine/internal/ws"
	"github.com/Katzuo/LevelEngine/middleware/jwt"
	logger "github.com/Katzuo/LevelEngine/middleware/log"
	"github.com/Katzuo/LevelEngine/utils/keymutex"
)

func main() {
	cfg, err := config.LoadConfig("./config.toml")
	if err != nil {
		log.Fatalf("配置初始化失败: %v", err)
	}

	zlog, err := logger.NewLogger(&cfg.Logging)
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer zlog.Sync()

	// 初始化 PostgreSQL（含启动迁移）
	dsn := storage.BuildDSN(cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.DBName)
	postgres, err := storage.InitPostgres(dsn, cfg.Postgres.MaxIdleConns, cfg.Postgres.MaxOpenConns)
	if err != nil {
		log.Fatalf("postgres 初始化失败: %v", err)
	}

	// 初始化 Redis（配置缓存）
	redisClient, err := storage.InitRedis(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize, cfg.Redis.MinIdleConns)
	if err != nil {
		log.Fatalf("redis 初始化失败: %v", err)
	}

	// 初始化仓储层
	settingsRepo := repositories.NewSettingsRepository(postgres, redisClient)
	memberRepo := repositories.NewMemberRepository(postgres)
	rewardRepo := repositories.NewRewardRepository(postgres)
	ignoreRepo := repositories.NewIgnoreRepository(postgres)

	// 外部身份组网关：优先 gRPC 直连网关进程，未配置时退回 HTTP
	gatewayTimeout := time.Duration(cfg.Gateway.TimeoutSeconds) * time.Second
	var roleGateway gateway.RoleGateway
	if cfg.Gateway.GRPCAddr != "" {
		grpcGateway, err := gateway.NewGRPCGateway(cfg.Gateway.GRPCAddr, gatewayTimeout)
		if err != nil {
			log.Fatalf("网关连接失败: %v", err)
		}
		defer grpcGateway.Close()
		roleGateway = grpcGateway
	} else {
		roleGateway = gateway.NewHTTPGateway(cfg.Gateway.BaseURL, gatewayTimeout)
	}

	// 通知出口：Kafka（网关进程消费后投递）+ 运维审计流
	hub := ws.NewHub(zlog.Logger)
	go hub.Run()

	var notifier notify.Notifier = hub
	kafkaNotifier, err := notify.NewKafkaNotifier(cfg.Kafka.Brokers, cfg.Kafka.NotifyTopic)
	if err != nil {
		zlog.Warn("Kafka 通知出口初始化失败，通知只进入审计流")
	} else {
		defer kafkaNotifier.Close()
		notifier = notify.Multi(kafkaNotifier, hub)
	}

	defaults := models.GuildSettings{
		CooldownMinutes: cfg.Leveling.CooldownMinutes,
		Base:            cfg.Leveling.Base,
		Modifier:        cfg.Leveling.Modifier,
		RewardAmount:    cfg.Leveling.RewardAmount,
	}

	// 初始化服务层
	// 参与事件路径与管理命令共用同一把成员锁，读-判-写互不覆盖
	memberLocks := keymutex.New(keymutex.DefaultShards)
	rewardService := services.NewRewardService(settingsRepo, memberRepo, rewardRepo, roleGateway, notifier, defaults, zlog)
	levelingService := services.NewLevelingService(settingsRepo, memberRepo, ignoreRepo, rewardService, notifier, memberLocks, defaults, zlog)
	rankService := services.NewRankService(memberRepo)
	adminService := services.NewAdminService(settingsRepo, memberRepo, rewardRepo, ignoreRepo, notifier, memberLocks, defaults, zlog)

	// 参与事件消费端
	eventConsumer := consumer.NewEventConsumer(levelingService, zlog)
	if err := consumer.Start(context.Background(), cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.EventTopic, eventConsumer, zlog); err != nil {
		log.Fatalf("Kafka 消费端启动失败: %v", err)
	}

	// 运维接口
	tm := jwt.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.ExpireHours)
	authHandler := handlers.NewAuthHandler(&cfg.Auth, tm)
	settingsHandler := handlers.NewSettingsHandler(adminService)
	rewardHandler := handlers.NewRewardHandler(rewardService)
	memberHandler := handlers.NewMemberHandler(adminService)
	leaderboardHandler := handlers.NewLeaderboardHandler(rankService, cfg.Leaderboard)

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	routers.SetupRoutes(r, tm, authHandler, settingsHandler, rewardHandler, memberHandler, leaderboardHandler, hub)

	zlog.Info("等级引擎启动")
	if err := r.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		log.Fatalf("启动服务器失败: %v", err)
	}
}
