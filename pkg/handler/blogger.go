package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/narasux/bloghub/pkg/infras/database"
	"github.com/narasux/bloghub/pkg/service"
	"github.com/narasux/bloghub/pkg/utils/ginx"
)

// 博主侧最热博客展示条数
const mostViewedOwnBlogsLimit = 3

// ListOwnBlogs 博主侧：名下博客列表（带浏览量，按创建时间倒序）
func ListOwnBlogs(c *gin.Context) {
	// 路由组已要求登录，这里必然取得用户 ID
	userID, _ := ginx.GetUserID(c)
	svc := service.NewDashboardService(database.Client(c.Request.Context()))

	blogs, err := svc.UserBlogs(c.Request.Context(), userID)
	if err != nil {
		setDependencyErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, blogs)
}

// ListMostViewedOwnBlogs 博主侧：名下浏览量最高的博客
func ListMostViewedOwnBlogs(c *gin.Context) {
	userID, _ := ginx.GetUserID(c)
	svc := service.NewDashboardService(database.Client(c.Request.Context()))

	blogs, err := svc.UserTopBlogs(c.Request.Context(), userID, mostViewedOwnBlogsLimit)
	if err != nil {
		setDependencyErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, blogs)
}
