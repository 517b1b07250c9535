package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/narasux/bloghub/pkg/infras/database"
	"github.com/narasux/bloghub/pkg/service"
	"github.com/narasux/bloghub/pkg/utils/ginx"
)

// GetDashboardSummary 管理端看板：汇总数据
func GetDashboardSummary(c *gin.Context) {
	svc := service.NewDashboardService(database.Client(c.Request.Context()))

	summary, err := svc.Summary(c.Request.Context())
	if err != nil {
		setDependencyErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, summary)
}

// GetTrafficTrends 管理端看板：近 12 个自然月的流量趋势
func GetTrafficTrends(c *gin.Context) {
	svc := service.NewDashboardService(database.Client(c.Request.Context()))

	trends, err := svc.TrafficTrends(c.Request.Context())
	if err != nil {
		setDependencyErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, trends)
}

// GetLeaderboards 管理端看板：博客 / 博主浏览量排行榜
func GetLeaderboards(c *gin.Context) {
	svc := service.NewDashboardService(database.Client(c.Request.Context()))

	leaderboards, err := svc.Leaderboards(c.Request.Context())
	if err != nil {
		setDependencyErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, leaderboards)
}

// GetRecentActivity 管理端看板：最近创建的博客动态
func GetRecentActivity(c *gin.Context) {
	svc := service.NewDashboardService(database.Client(c.Request.Context()))

	blogs, err := svc.RecentActivity(c.Request.Context(), ginx.GetLimitFromQuery(c, "perPage"))
	if err != nil {
		setDependencyErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, gin.H{"recentBlogs": blogs})
}
