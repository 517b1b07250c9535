package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/narasux/bloghub/pkg/model"
)

// 基于内存 sqlite 初始化测试数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Blog{}, &model.BlogView{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, user model.User) model.User {
	t.Helper()
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createBlog(t *testing.T, db *gorm.DB, blog model.Blog) model.Blog {
	t.Helper()
	require.NoError(t, db.Create(&blog).Error)
	return blog
}

func createView(t *testing.T, db *gorm.DB, blogID int64, userID *int64, createdAt time.Time) {
	t.Helper()
	view := model.BlogView{
		BlogID:    blogID,
		UserID:    userID,
		IP:        "10.0.0.1",
		UserAgent: "test-agent",
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&view).Error)
}

func countViews(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.BlogView{}).Count(&count).Error)
	return count
}
