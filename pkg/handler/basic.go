package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/narasux/bloghub/pkg/common/errcode"
	"github.com/narasux/bloghub/pkg/common/runmode"
	"github.com/narasux/bloghub/pkg/common/runtime"
	"github.com/narasux/bloghub/pkg/utils/ginx"
	"github.com/narasux/bloghub/pkg/version"
)

func Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func Version(c *gin.Context) {
	ginx.SetResp(c, http.StatusOK, version.GetVersion())
}

// 数据库等底层依赖异常统一按不可用处理，正式环境不向调用方透出细节
func setDependencyErrResp(c *gin.Context, err error) {
	ginx.SetError(c, err)

	message := "dependency unavailable"
	if runtime.RunMode != runmode.Release {
		message = fmt.Sprintf("%s: %s", message, err)
	}
	ginx.SetErrResp(c, http.StatusInternalServerError, errcode.DependencyUnavailable, message)
}
