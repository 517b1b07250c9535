package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/narasux/bloghub/pkg/model"
)

const (
	// 排行榜默认条数
	defaultLeaderboardLimit = 5
	// 最近动态默认条数
	defaultRecentActivityLimit = 10
	// 最近动态最大条数
	maxRecentActivityLimit = 50
	// 流量趋势统计月份数（含当月）
	trendMonths = 12
	// 月份格式
	monthLayout = "2006-01"
)

// Summary 管理端汇总数据
type Summary struct {
	TotalBlogs      int64 `json:"totalBlogs"`
	TotalBloggers   int64 `json:"totalBloggers"`
	TotalViews      int64 `json:"totalViews"`
	TotalViewsMonth int64 `json:"totalViewsMonth"`
	TotalViewsWeek  int64 `json:"totalViewsWeek"`
}

// MonthlyViews 单月浏览量
type MonthlyViews struct {
	Month string `json:"month"`
	Views int64  `json:"views"`
}

// MonthlyNewBlogs 单月新增博客数
type MonthlyNewBlogs struct {
	Month    string `json:"month"`
	NewBlogs int64  `json:"newBlogs"`
}

// TrafficTrends 流量趋势（近 12 个自然月）
type TrafficTrends struct {
	TrafficOverTime []MonthlyViews    `json:"trafficOverTime"`
	BlogsPerMonth   []MonthlyNewBlogs `json:"blogsPerMonth"`
}

// BlogRank 博客排行榜条目
type BlogRank struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Views int64  `json:"views"`
}

// BloggerRank 博主排行榜条目
type BloggerRank struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Views int64  `json:"views"`
}

// Leaderboards 排行榜
type Leaderboards struct {
	TopBlogs    []BlogRank    `json:"topBlogs"`
	TopBloggers []BloggerRank `json:"topBloggers"`
}

// RecentBlog 最近动态条目
type RecentBlog struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Created string `json:"created"`
}

// DashboardService 统计聚合服务，基于浏览事件与博客 / 用户元数据
// 产出管理端看板数据，全部为只读快照查询，不要求事务一致性
type DashboardService struct {
	db *gorm.DB
	// 当前时间（便于测试注入）
	now func() time.Time
}

// NewDashboardService ...
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db, now: time.Now}
}

// Summary 汇总各项总量
//
// 近一月浏览量按自然月往前推算（如 3 月 31 日推至 2 月底溢出到 3 月初），
// 而非固定 30 天窗口，与前端展示口径保持一致。
func (s *DashboardService) Summary(ctx context.Context) (*Summary, error) {
	db := s.db.WithContext(ctx)
	now := s.now()

	summary := Summary{}
	if err := db.Model(&model.Blog{}).Count(&summary.TotalBlogs).Error; err != nil {
		return nil, errors.Wrap(err, "count blogs")
	}
	if err := db.Model(&model.User{}).Where(
		"role = ?", model.RoleBlogger,
	).Count(&summary.TotalBloggers).Error; err != nil {
		return nil, errors.Wrap(err, "count bloggers")
	}
	if err := db.Model(&model.BlogView{}).Count(&summary.TotalViews).Error; err != nil {
		return nil, errors.Wrap(err, "count views")
	}
	if err := db.Model(&model.BlogView{}).Where(
		"created_at >= ?", now.AddDate(0, -1, 0),
	).Count(&summary.TotalViewsMonth).Error; err != nil {
		return nil, errors.Wrap(err, "count views last month")
	}
	if err := db.Model(&model.BlogView{}).Where(
		"created_at >= ?", now.AddDate(0, 0, -7),
	).Count(&summary.TotalViewsWeek).Error; err != nil {
		return nil, errors.Wrap(err, "count views last week")
	}
	return &summary, nil
}

// TrafficTrends 近 12 个自然月（含当月）的流量趋势
//
// 浏览量序列固定 12 个月且按月份升序，无事件的月份补零；
// 新增博客序列不补零，只包含有新增的月份（与前端图表约定保持一致）
func (s *DashboardService) TrafficTrends(ctx context.Context) (*TrafficTrends, error) {
	db := s.db.WithContext(ctx)
	now := s.now()
	curMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	trends := TrafficTrends{
		TrafficOverTime: make([]MonthlyViews, 0, trendMonths),
		BlogsPerMonth:   []MonthlyNewBlogs{},
	}
	for idx := trendMonths - 1; idx >= 0; idx-- {
		monthStart := curMonthStart.AddDate(0, -idx, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)
		month := monthStart.Format(monthLayout)

		var views int64
		if err := db.Model(&model.BlogView{}).Where(
			"created_at >= ? AND created_at < ?", monthStart, monthEnd,
		).Count(&views).Error; err != nil {
			return nil, errors.Wrapf(err, "count views in month %s", month)
		}
		trends.TrafficOverTime = append(trends.TrafficOverTime, MonthlyViews{Month: month, Views: views})

		var newBlogs int64
		if err := db.Model(&model.Blog{}).Where(
			"created_at >= ? AND created_at < ?", monthStart, monthEnd,
		).Count(&newBlogs).Error; err != nil {
			return nil, errors.Wrapf(err, "count new blogs in month %s", month)
		}
		if newBlogs > 0 {
			trends.BlogsPerMonth = append(trends.BlogsPerMonth, MonthlyNewBlogs{Month: month, NewBlogs: newBlogs})
		}
	}
	return &trends, nil
}

// Leaderboards 博客 / 博主浏览量排行榜（各取前 5）
func (s *DashboardService) Leaderboards(ctx context.Context) (*Leaderboards, error) {
	topBlogs, err := s.topBlogs(ctx, defaultLeaderboardLimit)
	if err != nil {
		return nil, err
	}
	topBloggers, err := s.topBloggers(ctx, defaultLeaderboardLimit)
	if err != nil {
		return nil, err
	}
	return &Leaderboards{TopBlogs: topBlogs, TopBloggers: topBloggers}, nil
}

// 按浏览事件总数排序的博客排行榜
func (s *DashboardService) topBlogs(ctx context.Context, limit int) ([]BlogRank, error) {
	db := s.db.WithContext(ctx)

	var rows []struct {
		BlogID int64
		Views  int64
	}
	// 浏览量相同按博客 ID 升序，保证结果稳定
	err := db.Model(&model.BlogView{}).
		Select("blog_id, COUNT(*) AS views").
		Group("blog_id").
		Order("views DESC, blog_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count views by blog")
	}

	ranks := make([]BlogRank, 0, len(rows))
	for _, row := range rows {
		// 事件引用的博客可能已不存在，此时仍计入排行，标题展示 Unknown
		title := "Unknown"
		var blog model.Blog
		if err = db.Select("title").Take(&blog, row.BlogID).Error; err == nil {
			title = blog.Title
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(err, "get blog %d", row.BlogID)
		}
		ranks = append(ranks, BlogRank{ID: row.BlogID, Title: title, Views: row.Views})
	}
	return ranks, nil
}

type bloggerViewRow struct {
	UserID    int64
	FirstName string `gorm:"column:firstname"`
	LastName  string `gorm:"column:lastname"`
	Email     string
	Views     int64
}

// 按名下博客浏览事件总数排序的博主排行榜
func (s *DashboardService) topBloggers(ctx context.Context, limit int) ([]BloggerRank, error) {
	var rows []bloggerViewRow
	err := s.db.WithContext(ctx).Model(&model.BlogView{}).
		Select("users.id AS user_id, users.firstname, users.lastname, users.email, COUNT(blog_views.id) AS views").
		Joins("JOIN blogs ON blogs.id = blog_views.blog_id").
		Joins("JOIN users ON users.id = blogs.user_id").
		Group("users.id, users.firstname, users.lastname, users.email").
		Order("views DESC, user_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count views by blogger")
	}

	return lo.Map(rows, func(row bloggerViewRow, _ int) BloggerRank {
		user := model.User{FirstName: row.FirstName, LastName: row.LastName, Email: row.Email}
		return BloggerRank{ID: row.UserID, Name: user.DisplayName(), Views: row.Views}
	}), nil
}

// RecentActivity 最近创建的博客动态
//
// limit 静默修正：非正数回退默认值 10，超出上限截断到 50
func (s *DashboardService) RecentActivity(ctx context.Context, limit int) ([]RecentBlog, error) {
	if limit <= 0 {
		limit = defaultRecentActivityLimit
	}
	limit = lo.Min([]int{limit, maxRecentActivityLimit})

	var blogs []model.Blog
	err := s.db.WithContext(ctx).Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&blogs).Error
	if err != nil {
		return nil, errors.Wrap(err, "list recent blogs")
	}

	return lo.Map(blogs, func(blog model.Blog, _ int) RecentBlog {
		return RecentBlog{
			ID:      blog.ID,
			Title:   blog.Title,
			Author:  blog.User.DisplayName(),
			Created: blog.CreatedAt.Format(time.DateTime),
		}
	}), nil
}
