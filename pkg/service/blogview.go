package service

import (
	"context"
	"time"

	"github.com/TencentBlueKing/gopkg/stringx"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/narasux/bloghub/pkg/envs"
	"github.com/narasux/bloghub/pkg/model"
)

// 浏览事件中 UserAgent 字段的最大长度
const maxUserAgentLength = 512

// ViewerContext 一次浏览请求的访客上下文（由请求层解析提供）
type ViewerContext struct {
	// UserID 已认证用户 ID，匿名请求为空
	UserID *int64
	// IP 客户端网络地址
	IP string
	// UserAgent 客户端 UA
	UserAgent string
}

// BlogViewService 博客浏览计数服务
//
// 同一访客在冷却窗口内对同一博客的重复浏览只计数一次；访客身份：
// 已登录用户按 UserID 匹配（IP / UA 仅留档，不参与匹配），
// 匿名请求按 (IP, UserAgent) 精确匹配，任一变化即视为新访客。
type BlogViewService struct {
	db *gorm.DB
	// 默认冷却时间
	cooldown time.Duration
	// 当前时间（便于测试注入）
	now func() time.Time
}

// NewBlogViewService ...
func NewBlogViewService(db *gorm.DB) *BlogViewService {
	return &BlogViewService{
		db:       db,
		cooldown: time.Duration(envs.ViewCooldownMinutes) * time.Minute,
		now:      time.Now,
	}
}

// RecordView 记录一次浏览事件，返回是否产生了新事件
//
// cooldown <= 0 时使用配置的默认冷却时间。博客是否存在由调用方负责校验，
// 这里不会重复确认。注意：查重与插入并非原子操作，同一访客的并发请求
// 可能产生极少量重复事件，浏览统计按尽力而为处理，不为此引入加锁。
func (s *BlogViewService) RecordView(
	ctx context.Context, blogID int64, viewer ViewerContext, cooldown time.Duration,
) (bool, error) {
	if cooldown <= 0 {
		cooldown = s.cooldown
	}
	userAgent := stringx.Truncate(viewer.UserAgent, maxUserAgentLength)

	query := s.db.WithContext(ctx).Model(&model.BlogView{}).Where(
		"blog_id = ? AND created_at >= ?", blogID, s.now().Add(-cooldown),
	)
	if viewer.UserID != nil {
		query = query.Where("user_id = ?", *viewer.UserID)
	} else {
		query = query.Where("user_id IS NULL AND ip = ? AND user_agent = ?", viewer.IP, userAgent)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check view events in cooldown window")
	}
	if count != 0 {
		return false, nil
	}

	view := model.BlogView{
		BlogID:    blogID,
		UserID:    viewer.UserID,
		IP:        viewer.IP,
		UserAgent: userAgent,
		CreatedAt: s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&view).Error; err != nil {
		return false, errors.Wrap(err, "create view event")
	}
	return true, nil
}
