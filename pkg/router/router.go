package router

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/narasux/bloghub/pkg/envs"
	"github.com/narasux/bloghub/pkg/handler"
	"github.com/narasux/bloghub/pkg/middleware"
	"github.com/narasux/bloghub/pkg/model"
)

// New 初始化路由
func New() *gin.Engine {
	gin.SetMode(envs.GinRunMode)
	router := gin.New()
	_ = router.SetTrustedProxies(nil)

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Cors())
	router.Use(middleware.Auth())
	router.Use(gin.Recovery())

	// 探活 & 版本
	router.GET("healthz", handler.Healthz)
	router.GET("version", handler.Version)

	api := router.Group("api")

	// 公开路由（无需认证）
	{
		publicRg := api.Group("public")
		// 博客列表
		publicRg.GET("blogs", handler.ListBlogs)
		// 热门博客
		publicRg.GET("blogs/trending", handler.ListTrendingBlogs)
		// 博客详情（触发浏览计数）
		publicRg.GET("blogs/:id", handler.RetrieveBlog)
		// RSS
		publicRg.GET("rss", handler.GetRSS)
	}

	// 博主路由
	{
		bloggerRg := api.Group("blogger", middleware.RequireRole(model.RoleBlogger))
		// 名下博客列表（带浏览量）
		bloggerRg.GET("blogs", handler.ListOwnBlogs)
		// 名下最热博客
		bloggerRg.GET("most-viewed-blogs", handler.ListMostViewedOwnBlogs)
	}

	// 管理端路由
	{
		adminRg := api.Group("admin", middleware.RequireRole(model.RoleAdmin))
		// 看板：汇总数据
		adminRg.GET("dashboard/summary", handler.GetDashboardSummary)
		// 看板：流量趋势
		adminRg.GET("dashboard/trends", handler.GetTrafficTrends)
		// 看板：排行榜
		adminRg.GET("dashboard/leaderboards", handler.GetLeaderboards)
		// 看板：最近动态
		adminRg.GET("dashboard/activity", handler.GetRecentActivity)
	}

	return router
}

// Run 启动 web 服务
func Run() {
	if err := New().Run(":" + envs.ServerPort); err != nil {
		panic(fmt.Sprintf("failed to start server: %s", err.Error()))
	}
}
