package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/narasux/bloghub/pkg/common/errcode"
	"github.com/narasux/bloghub/pkg/envs"
	"github.com/narasux/bloghub/pkg/infras/database"
	"github.com/narasux/bloghub/pkg/logging"
	"github.com/narasux/bloghub/pkg/model"
	"github.com/narasux/bloghub/pkg/service"
	"github.com/narasux/bloghub/pkg/utils/ginx"
	"github.com/narasux/bloghub/pkg/utils/markdownx"
)

type blogListItem struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Subheader     string    `json:"subheader"`
	Slug          string    `json:"slug"`
	FeaturedImage string    `json:"featuredImage"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListBlogs 博客列表（公开，分页）
func ListBlogs(c *gin.Context) {
	db := database.Client(c.Request.Context())

	query := db.Model(&model.Blog{})
	if keyword := c.Query("search"); keyword != "" {
		query = query.Where("title LIKE ?", "%"+keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		setDependencyErrResp(c, err)
		return
	}

	page, pageSize := ginx.GetPageNumFromQuery(c), ginx.GetPageSizeFromQuery(c)
	var blogs []model.Blog
	err := query.Preload("User").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&blogs).Error
	if err != nil {
		setDependencyErrResp(c, err)
		return
	}

	results := lo.Map(blogs, func(blog model.Blog, _ int) blogListItem {
		return blogListItem{
			ID:            blog.ID,
			Title:         blog.Title,
			Subheader:     blog.Subheader,
			Slug:          blog.Slug,
			FeaturedImage: blog.FeaturedImage,
			Author:        blog.User.DisplayName(),
			CreatedAt:     blog.CreatedAt,
		}
	})
	ginx.SetResp(c, http.StatusOK, gin.H{"total": total, "results": results})
}

// RetrieveBlog 博客详情（公开），附带触发浏览计数
func RetrieveBlog(c *gin.Context) {
	blogID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.SetErrResp(c, http.StatusNotFound, errcode.NotFound, "blog not found")
		return
	}

	ctx := c.Request.Context()
	db := database.Client(ctx)

	var blog model.Blog
	if err = db.Preload("User").Take(&blog, blogID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ginx.SetErrResp(c, http.StatusNotFound, errcode.NotFound, "blog not found")
			return
		}
		setDependencyErrResp(c, err)
		return
	}

	// 浏览计数（冷却窗口内同一访客去重），失败只记日志，不影响正文返回
	var userID *int64
	if id, ok := ginx.GetUserID(c); ok {
		userID = &id
	}
	viewer := service.ViewerContext{
		UserID:    userID,
		IP:        ginx.GetClientIP(c),
		UserAgent: c.Request.UserAgent(),
	}
	if _, err = service.NewBlogViewService(db).RecordView(ctx, blog.ID, viewer, 0); err != nil {
		logging.GetApiLogger().Warnf("failed to record view for blog %d: %s", blog.ID, err)
	}

	var views int64
	if err = db.Model(&model.BlogView{}).Where("blog_id = ?", blog.ID).Count(&views).Error; err != nil {
		setDependencyErrResp(c, err)
		return
	}

	ginx.SetResp(c, http.StatusOK, gin.H{
		"id":            blog.ID,
		"title":         blog.Title,
		"subheader":     blog.Subheader,
		"slug":          blog.Slug,
		"featuredImage": blog.FeaturedImage,
		"author":        blog.User.DisplayName(),
		"contentHTML":   markdownx.ToHTML(blog.Content),
		"views":         views,
		"createdAt":     blog.CreatedAt,
	})
}

// ListTrendingBlogs 热门博客（公开，按浏览量排序）
func ListTrendingBlogs(c *gin.Context) {
	svc := service.NewDashboardService(database.Client(c.Request.Context()))

	blogs, err := svc.TrendingBlogs(c.Request.Context(), ginx.GetLimitFromQuery(c, "limit"))
	if err != nil {
		setDependencyErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, blogs)
}

// GetRSS 最新博客的 Atom 订阅
func GetRSS(c *gin.Context) {
	db := database.Client(c.Request.Context())

	var blogs []model.Blog
	err := db.Preload("User").Order("created_at DESC, id DESC").Limit(20).Find(&blogs).Error
	if err != nil {
		setDependencyErrResp(c, err)
		return
	}

	feed := &feeds.Feed{
		Title:       "BlogHub",
		Link:        &feeds.Link{Href: fmt.Sprintf("%s://%s/blogs", envs.DomainScheme, envs.Domain)},
		Description: "latest posts from the BlogHub community",
		Author:      &feeds.Author{Name: "BlogHub", Email: envs.ContactEmail},
		Updated:     time.Now(),
	}
	for _, blog := range blogs {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          strconv.FormatInt(blog.ID, 10),
			Title:       blog.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s://%s/blogs/%d", envs.DomainScheme, envs.Domain, blog.ID)},
			Description: blog.Subheader,
			Author:      &feeds.Author{Name: blog.User.DisplayName()},
			Created:     blog.CreatedAt,
			Updated:     blog.UpdatedAt,
		})
	}
	atom, err := feed.ToAtom()
	if err != nil {
		ginx.SetError(c, err)
		ginx.SetErrResp(c, http.StatusInternalServerError, errcode.Unknown, "failed to render feed")
		return
	}

	// 不直接使用 c.XML() 以避免被包装 <string></string>
	c.Writer.Header().Set("Content-Type", "application/xml; charset=utf-8")
	c.Writer.WriteHeader(http.StatusOK)
	_, _ = c.Writer.Write([]byte(atom))
}
