// Package seeder 生成演示数据（用户、博客与历史浏览事件）
package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/narasux/bloghub/pkg/logging"
	"github.com/narasux/bloghub/pkg/model"
)

const (
	// 演示博主数量
	bloggerCount = 8
	// 单个博主最多博客数
	maxBlogsPerBlogger = 5
	// 单篇博客浏览事件数量范围
	minViewsPerBlog = 25
	maxViewsPerBlog = 150
	// 浏览事件回填天数
	viewBackfillDays = 90
	// 登录态浏览占比（百分比）
	loggedInViewPercent = 50
)

var firstNames = []string{"Alice", "Ben", "Carol", "David", "Eve", "Frank", "Grace", "Henry"}

var lastNames = []string{"Wang", "Li", "Zhang", "Chen", "Liu", "Yang", "Zhao", "Wu"}

var blogTopics = []string{
	"Getting Started with Go", "Thoughts on Remote Work", "My Favorite Recipes",
	"Travel Notes", "Understanding Databases", "A Guide to Markdown",
	"Photography Basics", "Reading List", "Home Office Setup", "Weekend Projects",
}

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 Version/17.0 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148",
}

// Run 生成演示数据（幂等：用户按邮箱、博客按 slug 去重，浏览事件只在博客无事件时生成）
func Run(ctx context.Context, db *gorm.DB) error {
	users, err := seedUsers(ctx, db)
	if err != nil {
		return err
	}
	blogs, err := seedBlogs(ctx, db, users)
	if err != nil {
		return err
	}
	return seedViews(ctx, db, blogs, users)
}

func seedUsers(ctx context.Context, db *gorm.DB) ([]model.User, error) {
	users := []model.User{{
		FirstName: "Ada",
		LastName:  "Admin",
		Email:     "admin@bloghub.example.com",
		Role:      model.RoleAdmin,
		Status:    model.UserStatusActive,
	}}
	for i := 0; i < bloggerCount; i++ {
		firstName, lastName := firstNames[i%len(firstNames)], lastNames[i%len(lastNames)]
		users = append(users, model.User{
			FirstName: firstName,
			LastName:  lastName,
			Email:     fmt.Sprintf("%s.%s@bloghub.example.com", strings.ToLower(firstName), strings.ToLower(lastName)),
			Role:      model.RoleBlogger,
			Status:    model.UserStatusActive,
		})
	}

	for idx := range users {
		err := db.WithContext(ctx).Where("email = ?", users[idx].Email).FirstOrCreate(&users[idx]).Error
		if err != nil {
			return nil, errors.Wrapf(err, "seed user %s", users[idx].Email)
		}
	}
	logging.GetSystemLogger().Infof("seeded %d users", len(users))
	return users, nil
}

func seedBlogs(ctx context.Context, db *gorm.DB, users []model.User) ([]model.Blog, error) {
	bloggers := lo.Filter(users, func(user model.User, _ int) bool {
		return user.Role == model.RoleBlogger
	})

	var blogs []model.Blog
	for _, blogger := range bloggers {
		for i := 0; i < 1+rand.Intn(maxBlogsPerBlogger); i++ {
			title := blogTopics[rand.Intn(len(blogTopics))]
			slug := fmt.Sprintf("%s-%d-%d", slugify(title), blogger.ID, i)
			blog := model.Blog{
				UserID:    blogger.ID,
				Title:     title,
				Subheader: "Notes and thoughts from " + blogger.DisplayName(),
				Slug:      slug,
				Content:   "# " + title + "\n\nDemo content generated by the seeder.",
				BaseModel: model.BaseModel{
					// 创建时间打散到近一年内，让趋势图有内容可看
					CreatedAt: time.Now().AddDate(0, 0, -rand.Intn(330)),
				},
			}
			err := db.WithContext(ctx).Where("slug = ?", slug).FirstOrCreate(&blog).Error
			if err != nil {
				return nil, errors.Wrapf(err, "seed blog %s", slug)
			}
			blogs = append(blogs, blog)
		}
	}
	logging.GetSystemLogger().Infof("seeded %d blogs", len(blogs))
	return blogs, nil
}

func seedViews(ctx context.Context, db *gorm.DB, blogs []model.Blog, users []model.User) error {
	total := 0
	for _, blog := range blogs {
		var count int64
		err := db.WithContext(ctx).Model(&model.BlogView{}).Where("blog_id = ?", blog.ID).Count(&count).Error
		if err != nil {
			return errors.Wrapf(err, "count views of blog %d", blog.ID)
		}
		if count > 0 {
			continue
		}

		viewCount := minViewsPerBlog + rand.Intn(maxViewsPerBlog-minViewsPerBlog+1)
		views := make([]model.BlogView, 0, viewCount)
		for i := 0; i < viewCount; i++ {
			var userID *int64
			if rand.Intn(100) < loggedInViewPercent {
				userID = lo.ToPtr(users[rand.Intn(len(users))].ID)
			}
			views = append(views, model.BlogView{
				BlogID:    blog.ID,
				UserID:    userID,
				IP:        randomIP(),
				UserAgent: userAgents[rand.Intn(len(userAgents))],
				CreatedAt: time.Now().Add(-time.Duration(rand.Intn(viewBackfillDays*24*60)) * time.Minute),
			})
		}
		if err = db.WithContext(ctx).CreateInBatches(views, 100).Error; err != nil {
			return errors.Wrapf(err, "seed views of blog %d", blog.ID)
		}
		total += viewCount
	}
	logging.GetSystemLogger().Infof("seeded %d view events", total)
	return nil
}

// 将标题转换为 slug（非字母数字字符折叠为连字符）
func slugify(title string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func randomIP() string {
	return fmt.Sprintf("%d.%d.%d.%d", 1+rand.Intn(223), rand.Intn(256), rand.Intn(256), 1+rand.Intn(254))
}
