package main

import (
	"fmt"
	"log"

	"github.com/techzu/social_go_server/config"
	"github.com/techzu/social_go_server/internal/api"
	"github.com/techzu/social_go_server/internal/api/handler"
	"github.com/techzu/social_go_server/internal/database"
	"github.com/techzu/social_go_server/internal/repository"
	"github.com/techzu/social_go_server/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	log.Println("Database connected")

	// 初始化 Redis
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	log.Println("Redis connected")

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	voteRepo := repository.NewVoteRepository(db)

	// 初始化 Service
	authService := service.NewAuthService(userRepo, cfg)
	userService := service.NewUserService(userRepo, cfg)
	commentService := service.NewCommentService(commentRepo, voteRepo, userRepo, cfg)
	statsService := service.NewStatsService(commentRepo, voteRepo, rdb)

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	commentHandler := handler.NewCommentHandler(commentService)
	statsHandler := handler.NewStatsHandler(statsService)

	// 初始化 Router
	router := api.NewRouter(
		authHandler,
		userHandler,
		commentHandler,
		statsHandler,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
