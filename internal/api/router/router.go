package router

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/gin-blog/config"
	"github.com/d60-Lab/gin-blog/internal/api/handler"
	"github.com/d60-Lab/gin-blog/internal/api/middleware"
	"github.com/d60-Lab/gin-blog/internal/service"
)

// New 组装路由与中间件
func New(cfg *config.Config, h *handler.Handler, auth service.AuthService) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()

	r.Use(middleware.AccessLog())
	r.Use(gin.Recovery())
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if cfg.Trace.Endpoint != "" {
		r.Use(otelgin.Middleware(cfg.Trace.ServiceName))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 公共路由
	r.GET("/", h.Home)
	r.GET("/post/:id", h.PostDetail)
	r.POST("/add_comment", h.AddComment)
	r.GET("/health", h.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 后台：登录入口不设门禁，其余都要会话
	admin := r.Group("/admin")
	{
		admin.GET("", h.LoginForm)
		admin.POST("", h.Login)

		authed := admin.Group("", middleware.AdminAuth(auth))
		{
			authed.GET("/dashboard", h.Dashboard)
			authed.GET("/posts", h.ListPosts)
			authed.POST("/posts", h.MutatePosts)
			authed.GET("/comments", h.ListComments)
			authed.POST("/comments", h.MutateComments)
			authed.GET("/new_post", h.NewPostForm)
			authed.POST("/new_post", h.CreatePost)
			authed.GET("/logout", h.Logout)
		}
	}

	return r
}
