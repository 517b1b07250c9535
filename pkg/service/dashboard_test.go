package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/bloghub/pkg/model"
)

func TestSummary(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	ctx := context.Background()

	// 选取 3 月 30 日作为当前时间：往前推一个自然月会溢出到 3 月 2 日，
	// 与固定 30 天窗口（2 月 28 日起）产生可观测差异
	now := time.Date(2025, 3, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	blogger := createUser(t, db, model.User{FirstName: "Alice", LastName: "Wang", Email: "alice@example.com", Role: model.RoleBlogger})
	createUser(t, db, model.User{FirstName: "Ben", LastName: "Li", Email: "ben@example.com", Role: model.RoleBlogger})
	createUser(t, db, model.User{FirstName: "Ada", LastName: "Admin", Email: "admin@example.com", Role: model.RoleAdmin})

	blog := createBlog(t, db, model.Blog{UserID: blogger.ID, Title: "Alpha"})

	createView(t, db, blog.ID, nil, time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC)) // 一周内
	createView(t, db, blog.ID, nil, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)) // 一月内，一周外
	createView(t, db, blog.ID, nil, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))  // 自然月窗口外（固定 30 天窗口内）
	createView(t, db, blog.ID, nil, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)) // 很久之前

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.TotalBlogs)
	assert.Equal(t, int64(2), summary.TotalBloggers)
	assert.Equal(t, int64(4), summary.TotalViews)
	assert.Equal(t, int64(2), summary.TotalViewsMonth)
	assert.Equal(t, int64(1), summary.TotalViewsWeek)
}

func TestSummaryEmptyStore(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{}, *summary)
}

func TestTrafficTrendsZeroFill(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	trends, err := svc.TrafficTrends(context.Background())
	require.NoError(t, err)

	// 空数据也必须返回 12 个月份且补零
	require.Len(t, trends.TrafficOverTime, 12)
	assert.Equal(t, "2024-07", trends.TrafficOverTime[0].Month)
	assert.Equal(t, "2025-06", trends.TrafficOverTime[11].Month)
	for idx, item := range trends.TrafficOverTime {
		assert.Equal(t, int64(0), item.Views)
		if idx > 0 {
			assert.Greater(t, item.Month, trends.TrafficOverTime[idx-1].Month)
		}
	}
	// 新增博客序列不补零：空数据时为空
	assert.Empty(t, trends.BlogsPerMonth)
}

func TestTrafficTrendsMonthBuckets(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	curMonthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	blogger := createUser(t, db, model.User{FirstName: "Alice", LastName: "Wang", Email: "alice@example.com", Role: model.RoleBlogger})

	// 近 12 个月每月创建一篇博客，其中 2025-04（倒数第 3 个月）有 7 次浏览
	var aprilBlog model.Blog
	for i := 0; i < 12; i++ {
		createdAt := curMonthStart.AddDate(0, -i, 0).AddDate(0, 0, 3)
		blog := createBlog(t, db, model.Blog{
			UserID:    blogger.ID,
			Title:     fmt.Sprintf("Blog %d", i),
			BaseModel: model.BaseModel{CreatedAt: createdAt},
		})
		if i == 2 {
			aprilBlog = blog
		}
	}
	for i := 0; i < 7; i++ {
		createView(t, db, aprilBlog.ID, nil, time.Date(2025, 4, 10, i, 0, 0, 0, time.UTC))
	}

	trends, err := svc.TrafficTrends(ctx)
	require.NoError(t, err)

	require.Len(t, trends.TrafficOverTime, 12)
	for idx, item := range trends.TrafficOverTime {
		if idx == 9 {
			assert.Equal(t, MonthlyViews{Month: "2025-04", Views: 7}, item)
		} else {
			assert.Equal(t, int64(0), item.Views)
		}
	}

	require.Len(t, trends.BlogsPerMonth, 12)
	for _, item := range trends.BlogsPerMonth {
		assert.Equal(t, int64(1), item.NewBlogs)
	}
}

func TestTrafficTrendsBlogsPerMonthNotZeroFilled(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	blogger := createUser(t, db, model.User{FirstName: "Alice", LastName: "Wang", Email: "alice@example.com", Role: model.RoleBlogger})
	createBlog(t, db, model.Blog{
		UserID:    blogger.ID,
		Title:     "Only One",
		BaseModel: model.BaseModel{CreatedAt: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
	})

	trends, err := svc.TrafficTrends(context.Background())
	require.NoError(t, err)

	// 浏览量序列补零到 12 个月，新增博客序列只包含有新增的月份
	assert.Len(t, trends.TrafficOverTime, 12)
	require.Len(t, trends.BlogsPerMonth, 1)
	assert.Equal(t, MonthlyNewBlogs{Month: "2025-02", NewBlogs: 1}, trends.BlogsPerMonth[0])
}

func TestLeaderboards(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	ctx := context.Background()
	now := time.Now()

	alice := createUser(t, db, model.User{FirstName: "Alice", LastName: "Wang", Email: "alice@example.com", Role: model.RoleBlogger})
	// 姓名为空的博主回退展示邮箱
	noName := createUser(t, db, model.User{Email: "ghost@example.com", Role: model.RoleBlogger})

	alpha := createBlog(t, db, model.Blog{UserID: alice.ID, Title: "Alpha"})
	beta := createBlog(t, db, model.Blog{UserID: noName.ID, Title: "Beta"})

	for i := 0; i < 3; i++ {
		createView(t, db, alpha.ID, nil, now.Add(-time.Duration(i)*time.Hour))
		createView(t, db, beta.ID, nil, now.Add(-time.Duration(i)*time.Hour))
	}
	// 已删除博客的残留浏览事件仍计入排行
	for i := 0; i < 5; i++ {
		createView(t, db, 999, nil, now.Add(-time.Duration(i)*time.Hour))
	}

	leaderboards, err := svc.Leaderboards(ctx)
	require.NoError(t, err)

	require.Len(t, leaderboards.TopBlogs, 3)
	assert.Equal(t, BlogRank{ID: 999, Title: "Unknown", Views: 5}, leaderboards.TopBlogs[0])
	// 浏览量相同按博客 ID 升序
	assert.Equal(t, BlogRank{ID: alpha.ID, Title: "Alpha", Views: 3}, leaderboards.TopBlogs[1])
	assert.Equal(t, BlogRank{ID: beta.ID, Title: "Beta", Views: 3}, leaderboards.TopBlogs[2])

	require.Len(t, leaderboards.TopBloggers, 2)
	assert.Equal(t, BloggerRank{ID: alice.ID, Name: "Alice Wang", Views: 3}, leaderboards.TopBloggers[0])
	assert.Equal(t, BloggerRank{ID: noName.ID, Name: "ghost@example.com", Views: 3}, leaderboards.TopBloggers[1])
}

func TestLeaderboardsEmptyStore(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	leaderboards, err := svc.Leaderboards(context.Background())
	require.NoError(t, err)
	assert.Empty(t, leaderboards.TopBlogs)
	assert.Empty(t, leaderboards.TopBloggers)
}

func TestTopBloggersSumAcrossBlogs(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	now := time.Now()

	alice := createUser(t, db, model.User{FirstName: "Alice", LastName: "Wang", Email: "alice@example.com", Role: model.RoleBlogger})
	first := createBlog(t, db, model.Blog{UserID: alice.ID, Title: "First"})
	second := createBlog(t, db, model.Blog{UserID: alice.ID, Title: "Second"})

	createView(t, db, first.ID, nil, now)
	createView(t, db, first.ID, nil, now.Add(-time.Hour))
	createView(t, db, second.ID, nil, now)

	leaderboards, err := svc.Leaderboards(context.Background())
	require.NoError(t, err)

	// 博主浏览量为名下所有博客浏览事件之和
	require.Len(t, leaderboards.TopBloggers, 1)
	assert.Equal(t, BloggerRank{ID: alice.ID, Name: "Alice Wang", Views: 3}, leaderboards.TopBloggers[0])
}

func TestRecentActivity(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	ctx := context.Background()

	john := createUser(t, db, model.User{FirstName: "John", LastName: "Doe", Email: "john@example.com", Role: model.RoleBlogger})
	noName := createUser(t, db, model.User{Email: "ghost@example.com", Role: model.RoleBlogger})

	createBlog(t, db, model.Blog{
		UserID:    john.ID,
		Title:     "Older",
		BaseModel: model.BaseModel{CreatedAt: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)},
	})
	createBlog(t, db, model.Blog{
		UserID:    noName.ID,
		Title:     "Newer",
		BaseModel: model.BaseModel{CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
	})
	// 作者已不存在的博客展示 Unknown
	createBlog(t, db, model.Blog{
		UserID:    12345,
		Title:     "Orphan",
		BaseModel: model.BaseModel{CreatedAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)},
	})

	blogs, err := svc.RecentActivity(ctx, 10)
	require.NoError(t, err)

	require.Len(t, blogs, 3)
	assert.Equal(t, "Orphan", blogs[0].Title)
	assert.Equal(t, "Unknown", blogs[0].Author)
	assert.Equal(t, "Newer", blogs[1].Title)
	assert.Equal(t, "ghost@example.com", blogs[1].Author)
	assert.Equal(t, "Older", blogs[2].Title)
	assert.Equal(t, "John Doe", blogs[2].Author)
	assert.Equal(t, "2025-05-01 10:00:00", blogs[2].Created)
}

func TestRecentActivityLimitClamp(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	ctx := context.Background()

	blogger := createUser(t, db, model.User{FirstName: "Alice", LastName: "Wang", Email: "alice@example.com", Role: model.RoleBlogger})
	for i := 0; i < 55; i++ {
		createBlog(t, db, model.Blog{
			UserID:    blogger.ID,
			Title:     fmt.Sprintf("Blog %d", i),
			BaseModel: model.BaseModel{CreatedAt: time.Now().Add(-time.Duration(i) * time.Hour)},
		})
	}

	// 非法 limit 静默修正，不报错
	for _, tc := range []struct {
		limit    int
		expected int
	}{
		{limit: 100, expected: 50},
		{limit: 51, expected: 50},
		{limit: 50, expected: 50},
		{limit: 3, expected: 3},
		{limit: 0, expected: 10},
		{limit: -1, expected: 10},
	} {
		blogs, err := svc.RecentActivity(ctx, tc.limit)
		require.NoError(t, err)
		assert.Len(t, blogs, tc.expected, "limit=%d", tc.limit)
	}
}

func TestTrendingBlogs(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	ctx := context.Background()
	now := time.Now()

	alice := createUser(t, db, model.User{FirstName: "Alice", LastName: "Wang", Email: "alice@example.com", Role: model.RoleBlogger})
	hot := createBlog(t, db, model.Blog{UserID: alice.ID, Title: "Hot"})
	cold := createBlog(t, db, model.Blog{UserID: alice.ID, Title: "Cold"})

	createView(t, db, hot.ID, nil, now)
	createView(t, db, hot.ID, lo.ToPtr(alice.ID), now.Add(-time.Hour))

	blogs, err := svc.TrendingBlogs(ctx, 0)
	require.NoError(t, err)

	// 无浏览事件的博客计零参与排序
	require.Len(t, blogs, 2)
	assert.Equal(t, hot.ID, blogs[0].ID)
	assert.Equal(t, int64(2), blogs[0].Views)
	assert.Equal(t, "Alice Wang", blogs[0].Author)
	assert.Equal(t, cold.ID, blogs[1].ID)
	assert.Equal(t, int64(0), blogs[1].Views)
}

func TestUserBlogStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	ctx := context.Background()
	now := time.Now()

	alice := createUser(t, db, model.User{FirstName: "Alice", LastName: "Wang", Email: "alice@example.com", Role: model.RoleBlogger})
	ben := createUser(t, db, model.User{FirstName: "Ben", LastName: "Li", Email: "ben@example.com", Role: model.RoleBlogger})

	mine := createBlog(t, db, model.Blog{UserID: alice.ID, Title: "Mine"})
	others := createBlog(t, db, model.Blog{UserID: ben.ID, Title: "Others"})

	createView(t, db, mine.ID, nil, now)
	createView(t, db, others.ID, nil, now)

	// 只统计指定博主名下的博客
	blogs, err := svc.UserTopBlogs(ctx, alice.ID, 3)
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, mine.ID, blogs[0].ID)
	assert.Equal(t, int64(1), blogs[0].Views)

	blogs, err = svc.UserBlogs(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "Mine", blogs[0].Title)
}
