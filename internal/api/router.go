package api

import (
	"github.com/gin-gonic/gin"

	"github.com/techzu/social_go_server/config"
	"github.com/techzu/social_go_server/internal/api/handler"
	"github.com/techzu/social_go_server/internal/api/middleware"
)

type Router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	commentHandler *handler.CommentHandler
	statsHandler   *handler.StatsHandler
	cfg            *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	commentHandler *handler.CommentHandler,
	statsHandler *handler.StatsHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:    authHandler,
		userHandler:    userHandler,
		commentHandler: commentHandler,
		statsHandler:   statsHandler,
		cfg:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api/v1")
	{
		// 公开接口 - 认证
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/github", r.authHandler.GithubAuth)
			auth.GET("/github/callback", r.authHandler.GithubCallback)
		}

		// 需要认证的接口
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.cfg.JWT.Secret))
		{
			// 用户
			user := authenticated.Group("/user")
			{
				user.GET("/profile", r.userHandler.GetProfile)
				user.PUT("/profile", r.userHandler.UpdateProfile)
			}

			// 评论
			comments := authenticated.Group("/comments")
			{
				comments.POST("", r.commentHandler.Create)
				comments.GET("", r.commentHandler.List)
				comments.GET("/statistics", r.statsHandler.Statistics)
				comments.GET("/:id", r.commentHandler.Get)
				comments.PATCH("/:id", r.commentHandler.Update)
				comments.DELETE("/:id", r.commentHandler.Delete)
				comments.POST("/:id/like", r.commentHandler.Like)
				comments.POST("/:id/dislike", r.commentHandler.Dislike)
				comments.GET("/:id/replies", r.commentHandler.Replies)
			}
		}
	}

	return engine
}
