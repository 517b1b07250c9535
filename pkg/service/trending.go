package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/narasux/bloghub/pkg/model"
)

// BlogStat 带浏览量的博客条目（热门榜 / 博主侧列表展示）
type BlogStat struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Subheader     string    `json:"subheader"`
	Slug          string    `json:"slug"`
	FeaturedImage string    `json:"featuredImage"`
	Author        string    `json:"author"`
	Views         int64     `json:"views"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TrendingBlogs 按总浏览量排序的热门博客（无浏览事件的博客计零参与排序）
func (s *DashboardService) TrendingBlogs(ctx context.Context, limit int) ([]BlogStat, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	limit = lo.Min([]int{limit, maxRecentActivityLimit})

	return s.queryBlogStats(ctx, nil, "views DESC, blogs.id ASC", limit)
}

// UserTopBlogs 指定博主名下按浏览量排序的博客
func (s *DashboardService) UserTopBlogs(ctx context.Context, userID int64, limit int) ([]BlogStat, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	return s.queryBlogStats(ctx, &userID, "views DESC, blogs.id ASC", limit)
}

// UserBlogs 指定博主名下的博客（按创建时间倒序）
func (s *DashboardService) UserBlogs(ctx context.Context, userID int64) ([]BlogStat, error) {
	return s.queryBlogStats(ctx, &userID, "blogs.created_at DESC, blogs.id DESC", 0)
}

type blogStatRow struct {
	ID            int64
	UserID        int64
	Title         string
	Subheader     string
	Slug          string
	FeaturedImage string
	CreatedAt     time.Time
	Views         int64
}

// 查询带浏览量的博客列表，userID 不为空时限定博主，limit <= 0 表示不限制数量
func (s *DashboardService) queryBlogStats(
	ctx context.Context, userID *int64, order string, limit int,
) ([]BlogStat, error) {
	db := s.db.WithContext(ctx)

	query := db.Model(&model.Blog{}).
		Select(
			"blogs.id, blogs.user_id, blogs.title, blogs.subheader, blogs.slug, "+
				"blogs.featured_image, blogs.created_at, COUNT(blog_views.id) AS views",
		).
		Joins("LEFT JOIN blog_views ON blog_views.blog_id = blogs.id").
		Group(
			"blogs.id, blogs.user_id, blogs.title, blogs.subheader, blogs.slug, " +
				"blogs.featured_image, blogs.created_at",
		).
		Order(order)
	if userID != nil {
		query = query.Where("blogs.user_id = ?", *userID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []blogStatRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list blogs with view counts")
	}

	// 批量加载作者信息用于标注展示名称
	userIDs := lo.Uniq(lo.Map(rows, func(row blogStatRow, _ int) int64 { return row.UserID }))
	userMap := map[int64]model.User{}
	if len(userIDs) > 0 {
		var users []model.User
		if err := db.Find(&users, userIDs).Error; err != nil {
			return nil, errors.Wrap(err, "list blog authors")
		}
		userMap = lo.KeyBy(users, func(user model.User) int64 { return user.ID })
	}

	return lo.Map(rows, func(row blogStatRow, _ int) BlogStat {
		user := userMap[row.UserID]
		return BlogStat{
			ID:            row.ID,
			Title:         row.Title,
			Subheader:     row.Subheader,
			Slug:          row.Slug,
			FeaturedImage: row.FeaturedImage,
			Author:        user.DisplayName(),
			Views:         row.Views,
			CreatedAt:     row.CreatedAt,
		}
	}), nil
}
